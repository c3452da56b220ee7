package unveil

import (
	"errors"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestScrollIndicatorLoopValues(t *testing.T) {
	s := NewScene()
	n := NewText("chevron", "v")
	s.Root().AddChild(n)

	l, err := s.StartLoop(n, ScrollIndicatorLoop())
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		elapsed float64
		want    float64
	}{
		{0, 0},
		{0.5, 5},
		{1, 10},
		{2, 0},
		{3, 10},
		{101, 10},
	}
	for _, tt := range tests {
		if got := l.ValueAt(tt.elapsed); !approxEqual(got, tt.want, 1e-3) {
			t.Errorf("ValueAt(%v) = %v, want %v", tt.elapsed, got, tt.want)
		}
	}
}

func TestLoopRunsWithoutObserver(t *testing.T) {
	s := NewScene() // no camera: loops do not depend on visibility
	n := NewText("chevron", "v")
	s.Root().AddChild(n)

	l, err := s.StartLoop(n, ScrollIndicatorLoop())
	if err != nil {
		t.Fatal(err)
	}
	step(t, s, 16)
	if n.OffsetY != 10 || l.Value() != 10 {
		t.Errorf("offset after 1s = %v, want 10", n.OffsetY)
	}
	step(t, s, 16)
	if n.OffsetY != 0 {
		t.Errorf("offset after 2s = %v, want 0", n.OffsetY)
	}
	step(t, s, 16*20)
	if l.Stopped() {
		t.Error("an infinite loop should keep running")
	}
}

func TestLoopFiniteRepeat(t *testing.T) {
	s := NewScene()
	n := NewContainer("n")
	s.Root().AddChild(n)

	l, err := s.StartLoop(n, LoopSpec{Keyframes: []float64{0, 4}, Duration: 1, Repeat: 1, Ease: ease.Linear})
	if err != nil {
		t.Fatal(err)
	}
	step(t, s, 24) // 1.5s: second cycle
	if l.Stopped() {
		t.Fatal("stopped during the second cycle")
	}
	step(t, s, 8)
	if !l.Stopped() {
		t.Error("Stopped = false after two cycles")
	}
	if n.OffsetY != 4 {
		t.Errorf("offset = %v, want last keyframe 4", n.OffsetY)
	}
	if len(s.loops) != 0 {
		t.Errorf("loops = %d, want 0", len(s.loops))
	}
}

func TestLoopStopAndDispose(t *testing.T) {
	s := NewScene()
	a := NewContainer("a")
	b := NewContainer("b")
	s.Root().AddChild(a)
	s.Root().AddChild(b)

	la, _ := s.StartLoop(a, ScrollIndicatorLoop())
	lb, _ := s.StartLoop(b, ScrollIndicatorLoop())

	step(t, s, 4)
	la.Stop()
	la.Stop()
	held := a.OffsetY
	b.Dispose()
	step(t, s, 4)

	if a.OffsetY != held {
		t.Errorf("stopped loop moved the node: %v -> %v", held, a.OffsetY)
	}
	if !lb.Stopped() {
		t.Error("loop on a disposed node should stop")
	}
	if len(s.loops) != 0 {
		t.Errorf("loops = %d, want 0", len(s.loops))
	}
}

func TestLoopCopiesKeyframes(t *testing.T) {
	s := NewScene()
	n := NewContainer("n")
	keys := []float64{0, 10, 0}
	l, err := s.StartLoop(n, LoopSpec{Keyframes: keys, Duration: 2, Repeat: RepeatForever})
	if err != nil {
		t.Fatal(err)
	}
	keys[1] = 99
	if got := l.ValueAt(1); !approxEqual(got, 10, 1e-3) {
		t.Errorf("ValueAt(1) = %v after mutating the caller's slice, want 10", got)
	}
}

func TestStartLoopValidation(t *testing.T) {
	s := NewScene()
	n := NewContainer("n")
	tests := []struct {
		name string
		node *Node
		spec LoopSpec
	}{
		{"nil node", nil, ScrollIndicatorLoop()},
		{"one keyframe", n, LoopSpec{Keyframes: []float64{0}, Duration: 1}},
		{"zero duration", n, LoopSpec{Keyframes: []float64{0, 1}}},
		{"bad repeat", n, LoopSpec{Keyframes: []float64{0, 1}, Duration: 1, Repeat: -2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.StartLoop(tt.node, tt.spec); !errors.Is(err, ErrInvalidLoop) {
				t.Errorf("err = %v, want ErrInvalidLoop", err)
			}
		})
	}
}
