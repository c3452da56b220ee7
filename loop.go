package unveil

import (
	"fmt"
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// RepeatForever makes a LoopSpec cycle until stopped.
const RepeatForever = -1

// LoopSpec describes a continuously repeating vertical-offset animation:
// evenly spaced keyframes traversed over Duration seconds per cycle.
type LoopSpec struct {
	Keyframes []float64
	Duration  float64
	// Repeat is the number of extra cycles after the first, or RepeatForever.
	Repeat int
	// Ease shapes each keyframe segment. Nil means ease.InOutSine.
	Ease ease.TweenFunc
}

// ScrollIndicatorLoop returns the bob of the scroll-down indicator: 0 -> 10 -> 0
// pixels every two seconds, forever.
func ScrollIndicatorLoop() LoopSpec {
	return LoopSpec{
		Keyframes: []float64{0, 10, 0},
		Duration:  2,
		Repeat:    RepeatForever,
		Ease:      ease.InOutSine,
	}
}

// Loop drives a node's OffsetY through a LoopSpec. It starts when created and
// is independent of any reveal or observation.
type Loop struct {
	node      *Node
	spec      LoopSpec
	segments  []*gween.Tween
	startedAt float64
	value     float64
	stopped   bool
}

// StartLoop starts spec on node immediately. Returns ErrInvalidLoop for fewer
// than two keyframes, a non-positive duration, a negative repeat count other
// than RepeatForever, or a nil node.
func (s *Scene) StartLoop(node *Node, spec LoopSpec) (*Loop, error) {
	if node == nil {
		return nil, fmt.Errorf("%w: nil node", ErrInvalidLoop)
	}
	if len(spec.Keyframes) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 keyframes, got %d", ErrInvalidLoop, len(spec.Keyframes))
	}
	if spec.Duration <= 0 || math.IsInf(spec.Duration, 0) || math.IsNaN(spec.Duration) {
		return nil, fmt.Errorf("%w: duration %v", ErrInvalidLoop, spec.Duration)
	}
	if spec.Repeat < RepeatForever {
		return nil, fmt.Errorf("%w: repeat %d", ErrInvalidLoop, spec.Repeat)
	}
	fn := spec.Ease
	if fn == nil {
		fn = ease.InOutSine
	}
	keys := append([]float64(nil), spec.Keyframes...)
	spec.Keyframes = keys

	segDur := float32(spec.Duration / float64(len(keys)-1))
	l := &Loop{node: node, spec: spec, startedAt: s.clock}
	for i := 0; i+1 < len(keys); i++ {
		l.segments = append(l.segments, gween.New(float32(keys[i]), float32(keys[i+1]), segDur, fn))
	}
	l.value = keys[0]
	node.SetOffsetY(l.value)
	s.loops = append(s.loops, l)
	return l, nil
}

// Node returns the animated node.
func (l *Loop) Node() *Node {
	return l.node
}

// Value returns the offset written on the last update.
func (l *Loop) Value() float64 {
	return l.value
}

// Stop halts the loop, leaving the node where it is. Stopping twice is a no-op.
func (l *Loop) Stop() {
	l.stopped = true
}

// Stopped reports whether the loop has stopped, either through Stop, node
// disposal, or running out of repeats.
func (l *Loop) Stopped() bool {
	return l.stopped
}

// ValueAt returns the loop's offset elapsed seconds after it started.
func (l *Loop) ValueAt(elapsed float64) float64 {
	keys := l.spec.Keyframes
	if elapsed <= 0 {
		return keys[0]
	}
	cycle := math.Floor(elapsed / l.spec.Duration)
	if l.spec.Repeat != RepeatForever && cycle >= float64(l.spec.Repeat+1) {
		return keys[len(keys)-1]
	}
	local := elapsed - cycle*l.spec.Duration
	segDur := l.spec.Duration / float64(len(l.segments))
	idx := int(local / segDur)
	if idx >= len(l.segments) {
		idx = len(l.segments) - 1
	}
	val, _ := l.segments[idx].Set(float32(local - float64(idx)*segDur))
	return float64(val)
}

// update writes the loop's value for scene time now. Returns false once the
// loop has stopped.
func (l *Loop) update(now float64) bool {
	if l.stopped {
		return false
	}
	if l.node.IsDisposed() {
		l.stopped = true
		return false
	}
	elapsed := now - l.startedAt
	l.value = l.ValueAt(elapsed)
	l.node.SetOffsetY(l.value)
	if l.spec.Repeat != RepeatForever && elapsed >= float64(l.spec.Repeat+1)*l.spec.Duration {
		l.stopped = true
		return false
	}
	return true
}
