package unveil

import (
	"encoding/json"
	"fmt"

	"github.com/tanema/gween/ease"
)

// scriptStep represents a single action in a scroll script.
type scriptStep struct {
	Action   string  `json:"action"`
	Label    string  `json:"label,omitempty"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
	DY       float64 `json:"dy,omitempty"`
	Duration float64 `json:"duration,omitempty"`
	Frames   int     `json:"frames,omitempty"`
}

// scrollScript is the top-level JSON structure for a scroll script.
type scrollScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScrollScript sequences scrolling, waits, and screenshots across frames for
// scripted visual checks of reveal behavior. Attach to a Scene via SetScript.
//
// Actions:
//
//	{"action": "scroll", "dy": 300}                    instant scroll by dy
//	{"action": "scrollTo", "y": 1200, "duration": 1.5} animated scroll of the viewport top
//	{"action": "wait", "frames": 30}
//	{"action": "screenshot", "label": "gallery"}
//	{"action": "click", "x": 400, "y": 300}            press and release at screen coordinates
type ScrollScript struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScrollScript parses a JSON scroll script.
func LoadScrollScript(jsonData []byte) (*ScrollScript, error) {
	var script scrollScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse scroll script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse scroll script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "scroll", "scrollTo", "wait", "screenshot", "click":
		default:
			return nil, fmt.Errorf("parse scroll script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScrollScript{steps: script.Steps}, nil
}

// SetScript attaches a ScrollScript to the scene. The script advances one
// step per Update, before cameras move.
func (s *Scene) SetScript(script *ScrollScript) {
	s.script = script
}

// Done reports whether all steps in the script have been executed.
func (r *ScrollScript) Done() bool {
	return r.done
}

// step advances the script by one frame. Called from Scene.UpdateDelta.
func (r *ScrollScript) step(s *Scene) {
	if r.done {
		return
	}
	cam := s.primaryCamera()
	// Let animated scrolls finish before advancing.
	if cam != nil && cam.Scrolling() {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		s.Screenshot(st.Label)
	case "scroll":
		if cam != nil {
			cam.ScrollBy(st.DY)
		}
	case "scrollTo":
		if cam != nil {
			cam.ScrollTopTo(st.Y, float32(st.Duration), ease.InOutQuad)
		}
	case "click":
		s.InjectClick(st.X, st.Y)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && (cam == nil || !cam.Scrolling()) {
		r.done = true
	}
}
