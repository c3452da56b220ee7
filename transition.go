package unveil

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// transition interpolates a node from one VisualState to another, starting at
// an absolute scene time. Up to two gween tweens run in lockstep (opacity and
// offset), the same way TweenGroup drives several fields at once. If the
// target node is disposed, the transition stops immediately.
type transition struct {
	target   *Node
	from, to VisualState
	startAt  float64
	duration float64

	tweens [2]*gween.Tween
	fields [2]Field

	started bool
	done    bool
}

// newTransition prepares an interpolation from -> to that begins at startAt.
// Only the fields set on both ends are animated; fields set only on the end
// state snap when the transition starts.
func newTransition(target *Node, from, to VisualState, startAt float64, tr Transition) *transition {
	fn := tr.Ease
	if fn == nil {
		fn = ease.Linear
	}
	t := &transition{
		target:   target,
		from:     from,
		to:       to,
		startAt:  startAt,
		duration: tr.Duration,
	}
	if tr.Duration <= 0 {
		return t
	}
	d := float32(tr.Duration)
	if from.Has(FieldOpacity) && to.Has(FieldOpacity) {
		t.tweens[0] = gween.New(float32(from.Opacity), float32(to.Opacity), d, fn)
		t.fields[0] = FieldOpacity
	}
	if from.Has(FieldOffsetY) && to.Has(FieldOffsetY) {
		t.tweens[1] = gween.New(float32(from.OffsetY), float32(to.OffsetY), d, fn)
		t.fields[1] = FieldOffsetY
	}
	return t
}

// update positions the transition at scene time now and writes the current
// values to the target. The final frame writes the end state exactly.
func (t *transition) update(now float64) {
	if t.done {
		return
	}
	if t.target == nil || t.target.IsDisposed() {
		t.done = true
		return
	}
	if now < t.startAt {
		return
	}
	t.started = true

	elapsed := now - t.startAt
	if elapsed >= t.duration {
		t.to.apply(t.target)
		t.done = true
		return
	}

	cur := t.current(elapsed)
	cur.apply(t.target)
}

// current returns the interpolated state elapsed seconds after the start.
func (t *transition) current(elapsed float64) VisualState {
	cur := t.to
	for i, tw := range t.tweens {
		if tw == nil {
			continue
		}
		val, _ := tw.Set(float32(elapsed))
		switch t.fields[i] {
		case FieldOpacity:
			cur.Opacity = clamp01(float64(val))
		case FieldOffsetY:
			cur.OffsetY = float64(val)
		}
	}
	return cur
}
