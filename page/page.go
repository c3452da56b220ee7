// Package page composes the wedding page out of unveil nodes: a fixed
// sequence of sections, each laid out top to bottom and wired to scroll
// reveals.
//
// Compose builds every enabled section under a single page container. Hero
// and footer are shown as-is; every other section binds its blocks to
// reveals that start when the block scrolls into the viewport.
package page

import (
	"errors"
	"fmt"

	"github.com/phanxgames/unveil"
)

// ErrInvalidOptions is returned by Compose for unusable Options.
var ErrInvalidOptions = errors.New("page: invalid options")

// Options configures Compose.
type Options struct {
	// Width is the page width; Height is the viewport height, which the hero
	// fills.
	Width, Height float64
	// Toggles switches sections off. Nil composes every section.
	Toggles Toggles
	// Assets resolves image references. Nil draws placeholders.
	Assets Assets
	// Variants supplies the named animations. Nil means unveil.DefaultVariants().
	Variants *unveil.VariantSet
	// OnLink receives the URL of a clicked link, such as an event's map
	// link. Nil leaves links inert.
	OnLink func(url string)
}

// Section is one composed section of the page.
type Section struct {
	Kind SectionKind
	Node *unveil.Node
	// Reveals are the scroll-triggered reveals bound to the section's blocks.
	Reveals []*unveil.Reveal
	// Intros are reveals triggered at mount, without observing the viewport.
	Intros []*unveil.Reveal
	Loops  []*unveil.Loop
	// Top and Height locate the section on the page.
	Top, Height float64
}

// Page is a composed wedding page.
type Page struct {
	scene     *unveil.Scene
	root      *unveil.Node
	sections  []*Section
	height    float64
	unmounted bool
}

// Compose builds the enabled sections of content in Order under the scene
// root and binds their reveals. When the scene has cameras their scroll
// bounds are set to the page.
func Compose(scene *unveil.Scene, content Content, opts Options) (*Page, error) {
	if scene == nil {
		return nil, fmt.Errorf("%w: nil scene", ErrInvalidOptions)
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: size %vx%v", ErrInvalidOptions, opts.Width, opts.Height)
	}
	toggles, err := opts.Toggles.canonical()
	if err != nil {
		return nil, err
	}
	opts.Toggles = toggles
	if opts.Variants == nil {
		opts.Variants = unveil.DefaultVariants()
	}

	b, err := newBuilder(scene, content, opts)
	if err != nil {
		return nil, err
	}

	p := &Page{scene: scene, root: unveil.NewContainer("page")}
	scene.Root().AddChild(p.root)

	y := 0.0
	for _, kind := range Order {
		if !opts.Toggles.Enabled(kind) {
			continue
		}
		sec := b.build(kind)
		sec.Top = y
		sec.Node.SetPosition(0, y)
		p.root.AddChild(sec.Node)
		p.sections = append(p.sections, sec)
		y += sec.Height
	}
	p.height = y
	p.root.SetSize(opts.Width, y)

	for _, cam := range scene.Cameras() {
		cam.SetBounds(unveil.Rect{Width: opts.Width, Height: y})
	}
	scene.Logger().Debug("page composed", "sections", len(p.sections), "height", y)
	return p, nil
}

// Root returns the page container.
func (p *Page) Root() *unveil.Node {
	return p.root
}

// Height returns the total height of the composed sections.
func (p *Page) Height() float64 {
	return p.height
}

// Sections returns the composed sections in page order.
func (p *Page) Sections() []*Section {
	return p.sections
}

// Section returns the composed section of kind k.
func (p *Page) Section(k SectionKind) (*Section, bool) {
	for _, s := range p.sections {
		if s.Kind == k {
			return s, true
		}
	}
	return nil, false
}

// Reveals returns every scroll-triggered reveal on the page in page order.
func (p *Page) Reveals() []*unveil.Reveal {
	var out []*unveil.Reveal
	for _, s := range p.sections {
		out = append(out, s.Reveals...)
	}
	return out
}

// Unmount releases every reveal and loop and disposes the page's nodes.
// Calling it again does nothing.
func (p *Page) Unmount() {
	if p.unmounted {
		return
	}
	p.unmounted = true
	for _, s := range p.sections {
		for _, r := range s.Reveals {
			r.Release()
		}
		for _, r := range s.Intros {
			r.Release()
		}
		for _, l := range s.Loops {
			l.Stop()
		}
	}
	p.root.Dispose()
	p.scene.Logger().Debug("page unmounted")
}

// Unmounted reports whether Unmount has been called.
func (p *Page) Unmounted() bool {
	return p.unmounted
}
