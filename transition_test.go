package unveil

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTransitionWaitsForStart(t *testing.T) {
	n := NewContainer("n")
	n.Alpha = 0
	tr := newTransition(n, Fade(0), Fade(1), 1, Transition{Duration: 1, Ease: ease.Linear})

	tr.update(0.5)
	if tr.started || n.Alpha != 0 {
		t.Errorf("started = %v alpha = %v before startAt", tr.started, n.Alpha)
	}
	tr.update(1.5)
	if !approxEqual(n.Alpha, 0.5, 1e-6) {
		t.Errorf("alpha = %v, want 0.5", n.Alpha)
	}
	tr.update(2.25)
	if !tr.done || n.Alpha != 1 {
		t.Errorf("done = %v alpha = %v, want done at 1", tr.done, n.Alpha)
	}
}

func TestTransitionOnlyAnimatesSharedFields(t *testing.T) {
	n := NewContainer("n")
	n.OffsetY = 7
	tr := newTransition(n, Fade(0), FadeOffset(1, 0), 0, Transition{Duration: 1, Ease: ease.Linear})

	tr.update(0.5)
	if n.OffsetY != 0 {
		t.Errorf("offset = %v, want snapped to the end value", n.OffsetY)
	}
	if !approxEqual(n.Alpha, 0.5, 1e-6) {
		t.Errorf("alpha = %v, want 0.5", n.Alpha)
	}
}

func TestTransitionZeroDurationSnaps(t *testing.T) {
	n := NewContainer("n")
	tr := newTransition(n, FadeOffset(0, 60), FadeOffset(1, 0), 0.25, Transition{})
	tr.update(0.25)
	if !tr.done || n.Alpha != 1 || n.OffsetY != 0 {
		t.Errorf("done = %v node = (%v, %v), want snapped", tr.done, n.Alpha, n.OffsetY)
	}
}

func TestTransitionDisposedTarget(t *testing.T) {
	n := NewContainer("n")
	tr := newTransition(n, Fade(0), Fade(1), 0, Transition{Duration: 1})
	n.Dispose()
	tr.update(0.5)
	if !tr.done {
		t.Error("transition on a disposed node should finish immediately")
	}
}

func TestTransitionMarksDirty(t *testing.T) {
	n := NewContainer("n")
	n.transformDirty = false
	tr := newTransition(n, FadeOffset(0, 60), FadeOffset(1, 0), 0, Transition{Duration: 1, Ease: ease.OutCubic})
	tr.update(0.5)
	if !n.transformDirty {
		t.Error("transition should mark the node dirty")
	}
}
