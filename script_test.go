package unveil

import (
	"testing"
)

func TestLoadScrollScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"malformed", `{"steps": [`},
		{"no steps", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "zoom"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadScrollScript([]byte(tt.json)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestScrollScriptDrivesReveal(t *testing.T) {
	s, cam := newTestScene()
	n := addBox(s, "story", 1000, 100)
	r := s.Reveal(n, RevealOptions{Variant: fadeInUp()})

	script, err := LoadScrollScript([]byte(`{"steps": [
		{"action": "scroll", "dy": 700},
		{"action": "wait", "frames": 3},
		{"action": "screenshot", "label": "story"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetScript(script)

	step(t, s, 1)
	if cam.ScrollTop() != 700 {
		t.Errorf("ScrollTop = %v, want 700", cam.ScrollTop())
	}
	if r.State() != RevealVisible {
		t.Error("scrolling the section into view should reveal it in the same frame")
	}

	step(t, s, 3)
	if script.Done() {
		t.Fatal("Done before the screenshot step")
	}
	step(t, s, 1)
	if !script.Done() {
		t.Error("Done = false after the last step")
	}
	if len(s.screenshotQueue) != 1 || s.screenshotQueue[0] != "story" {
		t.Errorf("screenshot queue = %v, want [story]", s.screenshotQueue)
	}
}

func TestScrollScriptWaitsForAnimatedScroll(t *testing.T) {
	s, cam := newTestScene()
	script, err := LoadScrollScript([]byte(`{"steps": [{"action": "scrollTo", "y": 700, "duration": 0.5}]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetScript(script)

	step(t, s, 4)
	if script.Done() {
		t.Error("Done while the scroll is still animating")
	}
	step(t, s, 10)
	if !script.Done() {
		t.Error("Done = false after the scroll finished")
	}
	if !approxEqual(cam.ScrollTop(), 700, 0.01) {
		t.Errorf("ScrollTop = %v, want 700", cam.ScrollTop())
	}
}
