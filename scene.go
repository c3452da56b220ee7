package unveil

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is the top-level object that owns the node tree, the viewport camera,
// the observer registry, and every running reveal and loop.
type Scene struct {
	root   *Node
	debug  bool
	logger *log.Logger

	// ClearColor fills the screen before drawing. Zero alpha skips the fill.
	ClearColor Color

	// OnRevealChange, when set, receives every reveal state entry: hidden at
	// mount and visible on transition.
	OnRevealChange func(RevealChange)

	// ScreenshotDir is where queued screenshots are written.
	ScreenshotDir string

	cameras []*Camera

	// clock is the scene time in seconds, advanced by Update.
	clock float64
	frame uint64

	observers observerRegistry
	reveals   []*Reveal
	loops     []*Loop

	handlers     handlerRegistry
	pointerQueue []pointerEvent
	pointer      pointerState
	hitBuf       []*Node

	updateFunc      func() error
	script          *ScrollScript
	screenshotQueue []string
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	return &Scene{
		root:          NewContainer("root"),
		logger:        log.Default(),
		ScreenshotDir: "screenshots",
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Clock returns the scene time in seconds.
func (s *Scene) Clock() float64 {
	return s.clock
}

// Frame returns the number of updates run so far.
func (s *Scene) Frame() uint64 {
	return s.frame
}

// SetLogger replaces the scene's logger. A nil logger restores log.Default().
func (s *Scene) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.Default()
	}
	s.logger = l
}

// Logger returns the scene's logger.
func (s *Scene) Logger() *log.Logger {
	return s.logger
}

// SetUpdateFunc registers a callback run at the end of every Update. An error
// returned from it stops Run.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// Update advances the scene by one Ebitengine tick.
func (s *Scene) Update() error {
	return s.UpdateDelta(1.0 / float64(ebiten.TPS()))
}

// UpdateDelta advances the scene by dt seconds. Order per frame:
// scroll script, cameras, transforms, one queued pointer event, visibility
// measurement, entry dispatch, reveal and loop interpolation, node callbacks.
func (s *Scene) UpdateDelta(dt float64) error {
	s.clock += dt
	s.frame++

	if s.script != nil {
		s.script.step(s)
	}
	for _, cam := range s.cameras {
		cam.update(float32(dt))
	}

	// Transforms must be current before measuring layout bounds.
	updateWorldTransform(s.root, identityTransform, identityTransform, 1.0, false)
	s.processInput()

	if cam := s.primaryCamera(); cam != nil {
		s.observers.scan(cam.VisibleBounds(), s.clock)
	}
	s.observers.dispatch()

	s.updateReveals()
	s.updateLoops()
	updateNodes(s.root, dt)

	if s.debug {
		s.debugLog()
	}
	if s.updateFunc != nil {
		return s.updateFunc()
	}
	return nil
}

func (s *Scene) updateReveals() {
	kept := s.reveals[:0]
	for _, r := range s.reveals {
		if r.update(s.clock) {
			kept = append(kept, r)
		}
	}
	for i := len(kept); i < len(s.reveals); i++ {
		s.reveals[i] = nil
	}
	s.reveals = kept
}

func (s *Scene) updateLoops() {
	kept := s.loops[:0]
	for _, l := range s.loops {
		if l.update(s.clock) {
			kept = append(kept, l)
		}
	}
	for i := len(kept); i < len(s.loops); i++ {
		s.loops[i] = nil
	}
	s.loops = kept
}

func (s *Scene) emitRevealChange(r *Reveal) {
	if s.OnRevealChange == nil {
		return
	}
	s.OnRevealChange(RevealChange{
		Node:   r.node,
		State:  r.state,
		Visual: Resolve(r.variant, r.state),
		Time:   s.clock,
	})
}

// NewCamera creates a camera with the given viewport and adds it to the scene.
// The first camera is the one visibility observers measure against.
func (s *Scene) NewCamera(viewport Rect) *Camera {
	cam := newCamera(viewport)
	s.cameras = append(s.cameras, cam)
	return cam
}

// RemoveCamera removes a camera from the scene.
func (s *Scene) RemoveCamera(cam *Camera) {
	for i, c := range s.cameras {
		if c == cam {
			s.cameras = append(s.cameras[:i], s.cameras[i+1:]...)
			return
		}
	}
}

// Cameras returns the scene's camera list. The returned slice MUST NOT be mutated.
func (s *Scene) Cameras() []*Camera {
	return s.cameras
}

// primaryCamera returns the first camera, or nil.
func (s *Scene) primaryCamera() *Camera {
	if len(s.cameras) == 0 {
		return nil
	}
	return s.cameras[0]
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth warnings are logged, and per-frame counts are
// logged at debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool
