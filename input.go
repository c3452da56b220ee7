package unveil

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ClickContext carries click event data.
type ClickContext struct {
	Node     *Node
	UserData any
	GlobalX  float64
	GlobalY  float64
	LocalX   float64
	LocalY   float64
}

// pointerEvent is a press or release at screen coordinates, queued by the
// window loop, scroll scripts, or tests.
type pointerEvent struct {
	screenX, screenY float64
	pressed          bool
}

// pointerState tracks the single mouse pointer between press and release.
type pointerState struct {
	down    bool
	hitNode *Node
}

// --- Handler registry ---

type clickHandler struct {
	id uint32
	fn func(ClickContext)
}

type handlerRegistry struct {
	click  []clickHandler
	nextID uint32
}

// CallbackHandle allows removing a registered scene-level callback.
type CallbackHandle struct {
	id  uint32
	reg *handlerRegistry
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	for i, c := range h.reg.click {
		if c.id == h.id {
			h.reg.click = append(h.reg.click[:i], h.reg.click[i+1:]...)
			return
		}
	}
}

// OnClick registers a scene-level callback for click events. It runs before
// the clicked node's own OnClick.
func (s *Scene) OnClick(fn func(ClickContext)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.click = append(s.handlers.click, clickHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers}
}

// --- Queued pointer events ---

// InjectPress queues a left-button press at the given screen coordinates.
// Queued events are consumed one per Update.
func (s *Scene) InjectPress(x, y float64) {
	s.pointerQueue = append(s.pointerQueue, pointerEvent{screenX: x, screenY: y, pressed: true})
}

// InjectRelease queues a left-button release at the given screen coordinates.
func (s *Scene) InjectRelease(x, y float64) {
	s.pointerQueue = append(s.pointerQueue, pointerEvent{screenX: x, screenY: y})
}

// InjectClick queues a press followed by a release at the same screen
// coordinates. Consumes two frames.
func (s *Scene) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// queueMouse forwards the real mouse's press and release edges to the
// pointer queue. Called by the window loop before Update.
func (s *Scene) queueMouse() {
	mx, my := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		s.InjectPress(float64(mx), float64(my))
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		s.InjectRelease(float64(mx), float64(my))
	}
}

// --- Hit testing ---

// nodeContainsLocal tests whether (lx, ly) falls inside a node's layout box.
func nodeContainsLocal(n *Node, lx, ly float64) bool {
	if n.Width == 0 || n.Height == 0 {
		return false
	}
	return lx >= 0 && lx <= n.Width && ly >= 0 && ly <= n.Height
}

// collectInteractable walks the tree in painter order, appending interactable
// sprite and text nodes to buf. Subtrees that are invisible, fully
// transparent, or not Interactable are skipped, so blocks still waiting for
// their reveal cannot be clicked.
func collectInteractable(n *Node, parentAlpha float64, buf []*Node) []*Node {
	alpha := parentAlpha * n.Alpha
	if !n.Visible || !n.Interactable || alpha <= 0 {
		return buf
	}
	if n.Type != NodeTypeContainer {
		buf = append(buf, n)
	}
	for _, child := range n.children {
		buf = collectInteractable(child, alpha, buf)
	}
	return buf
}

// hitTest finds the topmost interactable node at (worldX, worldY).
// Returns nil if nothing is hit.
func (s *Scene) hitTest(worldX, worldY float64) *Node {
	s.hitBuf = collectInteractable(s.root, 1, s.hitBuf[:0])
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		n := s.hitBuf[i]
		lx, ly := n.WorldToLocal(worldX, worldY)
		if nodeContainsLocal(n, lx, ly) {
			return n
		}
	}
	return nil
}

// --- Input processing ---

// processInput pops one queued pointer event, converts it to world space
// through the primary camera, and runs the click state machine. World
// transforms must be current.
func (s *Scene) processInput() {
	if len(s.pointerQueue) == 0 {
		return
	}
	evt := s.pointerQueue[0]
	copy(s.pointerQueue, s.pointerQueue[1:])
	s.pointerQueue = s.pointerQueue[:len(s.pointerQueue)-1]

	wx, wy := evt.screenX, evt.screenY
	if cam := s.primaryCamera(); cam != nil {
		wx, wy = cam.ScreenToWorld(wx, wy)
	}
	s.processPointer(wx, wy, evt.pressed)
}

// processPointer fires a click when a press and the following release land
// on the same node.
func (s *Scene) processPointer(wx, wy float64, pressed bool) {
	ps := &s.pointer
	target := s.hitTest(wx, wy)

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.hitNode = target
	case !pressed && ps.down:
		if ps.hitNode != nil && ps.hitNode == target {
			s.fireClick(target, wx, wy)
		}
		ps.down = false
		ps.hitNode = nil
	}
}

func (s *Scene) fireClick(node *Node, wx, wy float64) {
	lx, ly := node.WorldToLocal(wx, wy)
	ctx := ClickContext{
		Node: node, UserData: node.UserData,
		GlobalX: wx, GlobalY: wy, LocalX: lx, LocalY: ly,
	}
	for _, h := range s.handlers.click {
		h.fn(ctx)
	}
	if node.OnClick != nil {
		node.OnClick(ctx)
	}
}
