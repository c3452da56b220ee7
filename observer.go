package unveil

import "fmt"

// ObserveOptions configures a viewport observation.
type ObserveOptions struct {
	// Once reports a single entered edge and then detaches. Exits are never
	// reported in this mode.
	Once bool
	// Amount is the fraction of the node's layout box that must be inside the
	// viewport to count as intersecting. Zero means any overlap.
	Amount float64
	// Margin grows (or, when negative, shrinks) the viewport on every side
	// before measuring, in world units.
	Margin float64
}

// ViewportEntry is delivered to an observation callback on each edge.
type ViewportEntry struct {
	Node         *Node
	Intersecting bool
	// Ratio is the visible fraction of the node's layout box.
	Ratio float64
	// Time is the scene clock when the edge was measured.
	Time float64
}

// Observation watches one node against the scene's primary camera. Create one
// with Scene.Observe and release it with Release when the owner goes away.
type Observation struct {
	node *Node
	opts ObserveOptions
	fn   func(ViewportEntry)

	inView   bool
	fired    bool // Once mode: an entered edge has been queued
	released bool
}

// Node returns the observed node.
func (o *Observation) Node() *Node {
	return o.node
}

// Release detaches the observation. Queued entries that have not been
// delivered yet are dropped. Releasing twice is a no-op.
func (o *Observation) Release() {
	if o.released {
		return
	}
	o.released = true
	o.fn = nil
}

// Released reports whether the observation has been detached, either through
// Release or after delivering its single Once entry.
func (o *Observation) Released() bool {
	return o.released
}

// live reports whether the observation may still deliver entries.
func (o *Observation) live() bool {
	return !o.released && o.node != nil && !o.node.IsDisposed()
}

type pendingEntry struct {
	obs   *Observation
	entry ViewportEntry
}

// observerRegistry measures observations once per frame and delivers their
// edges afterwards, so callbacks never run in the middle of a measurement.
type observerRegistry struct {
	list  []*Observation
	queue []pendingEntry
}

// Observe starts watching node against the primary camera. fn is called with
// each edge after the frame's measurement pass. A node with zero width or
// height never intersects.
//
// Returns ErrObserverUnavailable when the scene has no camera or node is nil
// or disposed.
func (s *Scene) Observe(node *Node, opts ObserveOptions, fn func(ViewportEntry)) (*Observation, error) {
	if node == nil {
		return nil, fmt.Errorf("%w: nil node", ErrObserverUnavailable)
	}
	if node.IsDisposed() {
		return nil, fmt.Errorf("%w: node %q is disposed", ErrObserverUnavailable, node.Name)
	}
	if s.primaryCamera() == nil {
		return nil, fmt.Errorf("%w: scene has no camera", ErrObserverUnavailable)
	}
	o := &Observation{node: node, opts: opts, fn: fn}
	s.observers.list = append(s.observers.list, o)
	return o, nil
}

// scan measures every live observation against the viewport and queues edges.
// Released observations are compacted out of the list.
func (r *observerRegistry) scan(viewport Rect, now float64) {
	kept := r.list[:0]
	for _, o := range r.list {
		if !o.live() {
			o.released = true
			continue
		}
		kept = append(kept, o)
		if o.fired {
			continue
		}

		ratio := visibleRatio(o.node, viewport.Inset(o.opts.Margin))
		in := ratio > 0 && ratio >= o.opts.Amount
		if in == o.inView {
			continue
		}
		o.inView = in
		if o.opts.Once {
			if !in {
				continue
			}
			o.fired = true
		}
		r.queue = append(r.queue, pendingEntry{
			obs: o,
			entry: ViewportEntry{
				Node:         o.node,
				Intersecting: in,
				Ratio:        ratio,
				Time:         now,
			},
		})
	}
	for i := len(kept); i < len(r.list); i++ {
		r.list[i] = nil
	}
	r.list = kept
}

// dispatch delivers queued entries in measurement order. Entries for
// observations released or disposed since they were queued are discarded.
func (r *observerRegistry) dispatch() {
	for len(r.queue) > 0 {
		p := r.queue[0]
		r.queue[0] = pendingEntry{}
		r.queue = r.queue[1:]

		o := p.obs
		if !o.live() || o.fn == nil {
			continue
		}
		fn := o.fn
		if o.opts.Once {
			o.Release()
		}
		fn(p.entry)
	}
	r.queue = r.queue[:0]
}

// count returns the number of observations still registered.
func (r *observerRegistry) count() int {
	n := 0
	for _, o := range r.list {
		if o.live() {
			n++
		}
	}
	return n
}

// visibleRatio returns the fraction of n's layout box inside viewport.
func visibleRatio(n *Node, viewport Rect) float64 {
	if n.Width <= 0 || n.Height <= 0 {
		return 0
	}
	box := n.LayoutBounds()
	area := box.Width * box.Height
	if area <= 0 {
		return 0
	}
	return box.Overlap(viewport) / area
}
