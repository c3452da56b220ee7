package unveil

// RevealOptions configures Scene.Reveal.
type RevealOptions struct {
	// Variant describes the node's own hidden and visible states.
	Variant Variant
	// Children is the variant applied to each child of a stagger container.
	// The zero value means fadeIn. Ignored unless Variant staggers.
	Children Variant
	// Observe configures the viewport observation. Once is always forced on.
	Observe ObserveOptions
}

// RevealChange is handed to Scene.OnRevealChange each time a reveal enters a
// state: once at mount (hidden) and once on the hidden -> visible transition.
type RevealChange struct {
	Node   *Node
	State  RevealState
	Visual VisualState
	Time   float64
}

// childSlot tracks a stagger child. A slot exists once the child's hidden
// state has been applied; tr is set once its transition is scheduled.
type childSlot struct {
	tr *transition
}

// Reveal is the one-way state machine bound to a node. It starts hidden and
// becomes visible the first time its observation reports an entry, or when
// OnEnterViewport is called directly. Nothing moves it back.
type Reveal struct {
	scene    *Scene
	node     *Node
	variant  Variant
	children Variant

	state     RevealState
	obs       *Observation
	self      *transition
	slots     map[*Node]*childSlot
	startedAt float64
	released  bool
}

// Reveal binds a reveal state machine to node. The variant's hidden state is
// applied immediately. If the viewport cannot be observed the failure is
// logged and the reveal stays hidden for good; it never panics or retries.
func (s *Scene) Reveal(node *Node, opts RevealOptions) *Reveal {
	r := s.newReveal(node, opts)
	if r.released {
		return r
	}
	obsOpts := opts.Observe
	obsOpts.Once = true
	obs, err := s.Observe(node, obsOpts, func(ViewportEntry) {
		r.OnEnterViewport()
	})
	if err != nil {
		s.logger.Warn("reveal stays hidden", "node", nodeName(node), "err", err)
		return r
	}
	r.obs = obs
	return r
}

// Animate binds a reveal to node and triggers it at once, without observing
// the viewport. The variant's Transition.Delay still applies. Used for
// mount-time intros.
func (s *Scene) Animate(node *Node, v Variant) *Reveal {
	r := s.newReveal(node, RevealOptions{Variant: v})
	r.OnEnterViewport()
	return r
}

func (s *Scene) newReveal(node *Node, opts RevealOptions) *Reveal {
	r := &Reveal{
		scene:    s,
		node:     node,
		variant:  opts.Variant.clone(),
		children: opts.Children.clone(),
	}
	if r.children.Name == "" {
		r.children = defaultVariants.MustGet(VariantFadeIn)
	}
	if node == nil || node.IsDisposed() {
		s.logger.Warn("reveal stays hidden", "node", nodeName(node), "err", ErrObserverUnavailable)
		r.released = true
		return r
	}
	if r.variant.Staggers() {
		r.slots = make(map[*Node]*childSlot)
	}
	r.variant.Hidden.apply(node)
	r.primeChildren()
	s.reveals = append(s.reveals, r)
	s.emitRevealChange(r)
	return r
}

// Node returns the bound node.
func (r *Reveal) Node() *Node {
	return r.node
}

// Variant returns a copy of the reveal's own variant.
func (r *Reveal) Variant() Variant {
	return r.variant.clone()
}

// State returns the current state.
func (r *Reveal) State() RevealState {
	return r.state
}

// Observed reports whether a viewport observation was established.
func (r *Reveal) Observed() bool {
	return r.obs != nil
}

// Observation returns the underlying observation, or nil.
func (r *Reveal) Observation() *Observation {
	return r.obs
}

// StartedAt returns the scene time of the hidden -> visible transition. Only
// meaningful once State is RevealVisible.
func (r *Reveal) StartedAt() float64 {
	return r.startedAt
}

// Visual returns the node's current visual state restricted to the fields
// the variant animates.
func (r *Reveal) Visual() VisualState {
	v := VisualState{Fields: r.variant.Hidden.Fields | r.variant.Visible.Fields}
	if r.node != nil {
		v.Opacity = r.node.Alpha
		v.OffsetY = r.node.OffsetY
	}
	return v
}

// Settled reports whether the reveal is visible and every interpolation it
// started, including stagger children, has finished.
func (r *Reveal) Settled() bool {
	if r.state != RevealVisible {
		return false
	}
	if r.self != nil && !r.self.done {
		return false
	}
	for _, sl := range r.slots {
		if sl.tr != nil && !sl.tr.done {
			return false
		}
	}
	return true
}

// ChildStart returns the scheduled transition start of a stagger child and
// whether the child has been scheduled.
func (r *Reveal) ChildStart(child *Node) (float64, bool) {
	sl, ok := r.slots[child]
	if !ok || sl.tr == nil {
		return 0, false
	}
	return sl.tr.startAt, true
}

// OnEnterViewport moves the reveal to visible. Calling it again, after
// Release, or once the node is disposed does nothing.
func (r *Reveal) OnEnterViewport() {
	if r.released || r.state == RevealVisible {
		return
	}
	if r.node == nil || r.node.IsDisposed() {
		return
	}
	now := r.scene.clock
	r.state = RevealVisible
	r.startedAt = now
	if r.obs != nil {
		r.obs.Release()
	}

	r.self = newTransition(r.node, r.variant.Hidden, r.variant.Visible, now+r.variant.Transition.Delay, r.variant.Transition)
	r.self.update(now)
	r.scheduleChildren(now)
	r.scene.emitRevealChange(r)
}

// Release detaches the observation and drops pending interpolation. The node
// keeps whatever visual state it had. Releasing twice is a no-op.
func (r *Reveal) Release() {
	if r.released {
		return
	}
	r.released = true
	if r.obs != nil {
		r.obs.Release()
	}
	r.self = nil
	r.slots = nil
}

// Released reports whether the reveal has been released.
func (r *Reveal) Released() bool {
	return r.released
}

// primeChildren applies the child hidden state to stagger children seen for
// the first time while the container is still hidden.
func (r *Reveal) primeChildren() {
	if r.slots == nil {
		return
	}
	for _, c := range r.node.children {
		if _, ok := r.slots[c]; ok {
			continue
		}
		r.children.Hidden.apply(c)
		r.slots[c] = &childSlot{}
	}
}

// scheduleChildren gives every unscheduled child a transition starting at
// startedAt + index × increment. Children that mount after the container
// turned visible keep the index-based start, so they may jump straight to
// the visible state when that time has already passed.
func (r *Reveal) scheduleChildren(now float64) {
	if r.slots == nil {
		return
	}
	plan := *r.variant.Stagger
	for i, c := range r.node.children {
		sl, ok := r.slots[c]
		if !ok {
			r.children.Hidden.apply(c)
			sl = &childSlot{}
			r.slots[c] = sl
		}
		if sl.tr != nil {
			continue
		}
		sl.tr = newTransition(c, r.children.Hidden, r.children.Visible, r.startedAt+plan.Delay(i), r.children.Transition)
		sl.tr.update(now)
	}
}

// update advances the reveal's interpolations to now. Returns false once the
// reveal no longer needs per-frame updates.
func (r *Reveal) update(now float64) bool {
	if r.released {
		return false
	}
	if r.node.IsDisposed() {
		r.Release()
		return false
	}
	if r.state == RevealHidden {
		r.primeChildren()
		return true
	}
	if r.self != nil {
		r.self.update(now)
	}
	if r.slots != nil {
		r.scheduleChildren(now)
		for _, sl := range r.slots {
			if sl.tr != nil {
				sl.tr.update(now)
			}
		}
		// Stagger containers stay registered to pick up late children.
		return true
	}
	return !r.Settled()
}

func nodeName(n *Node) string {
	if n == nil {
		return "<nil>"
	}
	return n.Name
}
