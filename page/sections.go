package page

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/unveil"
)

// builder lays out individual sections. It resolves every variant the page
// uses up front so Compose fails before touching the scene.
type builder struct {
	scene    *unveil.Scene
	content  Content
	opts     Options
	variants map[string]unveil.Variant
}

var pageVariants = []string{
	unveil.VariantFadeInUp,
	unveil.VariantFadeIn,
	unveil.VariantStaggerContainer,
	unveil.VariantFadeInUpSlow,
	unveil.VariantHeroTitle,
	unveil.VariantHeroSubtitle,
}

func newBuilder(scene *unveil.Scene, content Content, opts Options) (*builder, error) {
	b := &builder{
		scene:    scene,
		content:  content,
		opts:     opts,
		variants: make(map[string]unveil.Variant, len(pageVariants)),
	}
	for _, name := range pageVariants {
		v, err := opts.Variants.Get(name)
		if err != nil {
			return nil, fmt.Errorf("compose page: %w", err)
		}
		b.variants[name] = v
	}
	return b, nil
}

func (b *builder) build(kind SectionKind) *Section {
	switch kind {
	case Hero:
		return b.hero()
	case Story:
		return b.story()
	case Events:
		return b.events()
	case DressCode:
		return b.dressCode()
	case Gallery:
		return b.gallery()
	default:
		return b.footer()
	}
}

// --- shared pieces ---

// open starts a section whose content column begins pad pixels from the top.
func (b *builder) open(kind SectionKind, maxW, pad float64) (*Section, *column) {
	sec := &Section{Kind: kind, Node: unveil.NewContainer(string(kind))}
	x, w := contentBand(b.opts.Width, maxW)
	return sec, &column{parent: sec.Node, x: x, w: w, y: pad}
}

// finish sizes the section to its content plus pad and puts the background
// behind everything else.
func (b *builder) finish(sec *Section, c *column, bg unveil.Color, pad float64) *Section {
	sec.Height = c.end() + pad
	sec.Node.SetSize(b.opts.Width, sec.Height)
	sec.Node.AddChildAt(unveil.NewBox(string(sec.Kind)+"-bg", b.opts.Width, sec.Height, bg), 0)
	return sec
}

func (b *builder) reveal(sec *Section, n *unveil.Node, variant string) {
	sec.Reveals = append(sec.Reveals, b.scene.Reveal(n, unveil.RevealOptions{
		Variant: b.variants[variant],
	}))
}

func (b *builder) stagger(sec *Section, n *unveil.Node, children string) {
	sec.Reveals = append(sec.Reveals, b.scene.Reveal(n, unveil.RevealOptions{
		Variant:  b.variants[unveil.VariantStaggerContainer],
		Children: b.variants[children],
	}))
}

func (b *builder) image(ref string) *unveil.Node {
	img := b.lookup(ref)
	n := unveil.NewImage(ref, img, 0, 0)
	if img == nil {
		n.Color = colorGray200
	}
	return n
}

func (b *builder) lookup(ref string) *ebiten.Image {
	if b.opts.Assets == nil || ref == "" {
		return nil
	}
	return b.opts.Assets.Image(ref)
}

// headingBlock is a centered heading over a short divider bar.
func headingBlock(name, text string, w float64, divider unveil.Color) *unveil.Node {
	block := unveil.NewContainer(name)
	c := column{parent: block, w: w}
	c.add(newTextNode(name+"-text", text, w, styleHeading), 16)
	c.add(unveil.NewBox(name+"-divider", 96, 4, divider), 0)
	block.SetSize(w, c.end())
	return block
}

// --- sections ---

func (b *builder) hero() *Section {
	w, h := b.opts.Width, b.opts.Height
	sec := &Section{Kind: Hero, Node: unveil.NewContainer(string(Hero)), Height: h}
	sec.Node.SetSize(w, h)

	bg := b.image(b.content.HeroImage)
	bg.Name = "hero-image"
	bg.SetSize(w, h)
	if bg.CustomImage() == nil {
		bg.Color = colorGray800
	}
	sec.Node.AddChild(bg)
	sec.Node.AddChild(unveil.NewBox("hero-overlay", w, h, colorHeroOverlay))

	x, bw := contentBand(w, maxContentWidth)
	title := unveil.NewContainer("hero-title")
	c := column{parent: title, w: bw}
	c.add(newTextNode("hero-names", b.content.Names, bw, styleTitle), 16)
	date := c.add(newTextNode("hero-date", b.content.Date, bw, styleSubtitle), 0)
	title.SetSize(bw, c.end())
	title.SetPosition(x, h/2)
	sec.Node.AddChild(title)

	sec.Intros = append(sec.Intros,
		b.scene.Animate(title, b.variants[unveil.VariantHeroTitle]),
		b.scene.Animate(date, b.variants[unveil.VariantHeroSubtitle]),
	)

	chevron := newTextNode("scroll-indicator", "v", 32, textStyle{scale: 2, color: colorWhite, align: unveil.TextAlignCenter})
	chevron.SetAlpha(0.7)
	chevron.SetPosition((w-width(chevron))/2, h-32-height(chevron)-10)
	sec.Node.AddChild(chevron)
	loop, err := b.scene.StartLoop(chevron, unveil.ScrollIndicatorLoop())
	if err != nil {
		b.scene.Logger().Warn("scroll indicator stays still", "err", err)
	} else {
		sec.Loops = append(sec.Loops, loop)
	}
	return sec
}

func (b *builder) story() *Section {
	sec, c := b.open(Story, maxContentWidth, sectionPadding)
	heading := c.add(headingBlock("story-heading", b.content.Story.Heading, c.w, colorBrown), headingGap)
	b.reveal(sec, heading, unveil.VariantFadeInUp)

	if b.opts.Width >= wideLayout {
		colW := (c.w - blockGap) / 2
		photo := b.photoBlock(colW)
		narrative := narrativeBlock(b.content.Story.Paragraphs, colW)
		rowH := max(height(photo), height(narrative))
		photo.SetPosition(c.x, c.y+(rowH-height(photo))/2)
		narrative.SetPosition(c.x+colW+blockGap, c.y+(rowH-height(narrative))/2)
		sec.Node.AddChild(photo)
		sec.Node.AddChild(narrative)
		c.y += rowH
		c.lastGap = 0
		b.reveal(sec, photo, unveil.VariantFadeInUp)
		b.reveal(sec, narrative, unveil.VariantFadeInUp)
	} else {
		photo := c.add(b.photoBlock(c.w), blockGap)
		narrative := c.add(narrativeBlock(b.content.Story.Paragraphs, c.w), 0)
		b.reveal(sec, photo, unveil.VariantFadeInUp)
		b.reveal(sec, narrative, unveil.VariantFadeInUp)
	}
	return b.finish(sec, c, colorWhite, sectionPadding)
}

// photoBlock is the story photo with the heart badge in its corner. Without
// an image it keeps a 4:3 placeholder.
func (b *builder) photoBlock(w float64) *unveil.Node {
	block := unveil.NewContainer("story-photo")
	img := b.image(b.content.Story.Photo)
	h := w * 3 / 4
	if iw, ih := imageSize(img.CustomImage()); iw > 0 {
		h = w * ih / iw
	}
	img.SetSize(w, h)
	block.AddChild(img)

	badge := unveil.NewBox("story-heart", 64, 64, colorBrown)
	badge.SetPosition(w-16-64, h-16-64)
	block.AddChild(badge)
	heart := newTextNode("story-heart-icon", "<3", 64, textStyle{scale: 1, color: colorWhite, align: unveil.TextAlignCenter})
	heart.SetPosition(w-16-64, h-16-32-height(heart)/2)
	block.AddChild(heart)

	block.SetSize(w, h)
	return block
}

func narrativeBlock(paragraphs []string, w float64) *unveil.Node {
	block := unveil.NewContainer("story-narrative")
	c := column{parent: block, w: w}
	for i, p := range paragraphs {
		st := styleBody
		if i == len(paragraphs)-1 {
			st.color = colorGray800
		}
		c.add(newTextNode(fmt.Sprintf("story-paragraph-%d", i), p, w, st), 24)
	}
	block.SetSize(w, c.end())
	return block
}

func (b *builder) events() *Section {
	sec, c := b.open(Events, maxContentWidth, sectionPadding)
	heading := c.add(headingBlock("events-heading", b.content.Events.Heading, c.w, colorBrown), headingGap)
	b.reveal(sec, heading, unveil.VariantFadeInUp)

	cardW := min(c.w, 448)
	cards := unveil.NewContainer("event-cards")
	cc := column{parent: cards, w: cardW}
	for i, ev := range b.content.Events.List {
		cc.add(eventCard(i, ev, cardW, b.opts.OnLink), 32)
	}
	cards.SetSize(cardW, cc.end())
	c.add(cards, 0)
	b.stagger(sec, cards, unveil.VariantFadeInUp)

	return b.finish(sec, c, colorGray50, sectionPadding)
}

// eventCard is a colored title header over a white body listing the date,
// time, venue, address and map link. Clicking the map line hands the link to
// onLink.
func eventCard(i int, ev Event, w float64, onLink func(string)) *unveil.Node {
	name := fmt.Sprintf("event-%d", i)
	card := unveil.NewContainer(name)

	const pad = 32
	title := newTextNode(name+"-title", ev.Title, w-2*pad, textStyle{scale: 2, color: colorWhite, align: unveil.TextAlignCenter})
	headerH := pad + height(title) + pad
	card.AddChild(unveil.NewBox(name+"-header", w, headerH, colorBrown))
	title.SetPosition(pad, pad)
	card.AddChild(title)

	detail := textStyle{scale: 1, color: colorGray800, align: unveil.TextAlignLeft, lineHeight: bodyLineHeight}
	link := detail
	link.color = colorBrown
	var lines []*unveil.Node
	for _, l := range []struct {
		field, text string
		st          textStyle
	}{
		{"date", ev.Date, detail},
		{"time", ev.Time, detail},
		{"venue", ev.Venue, detail},
		{"address", ev.Address, styleBody},
		{"map", ev.MapLink, link},
	} {
		if l.text == "" {
			continue
		}
		lines = append(lines, newTextNode(name+"-"+l.field, l.text, w-2*pad, l.st))
	}
	if ev.MapLink != "" && onLink != nil {
		// The map line is always last.
		link := ev.MapLink
		n := lines[len(lines)-1]
		n.UserData = link
		n.OnClick = func(unveil.ClickContext) { onLink(link) }
	}

	bodyH := 2.0 * pad
	for i, n := range lines {
		bodyH += height(n)
		if i > 0 {
			bodyH += 16
		}
	}
	body := unveil.NewBox(name+"-body", w, bodyH, colorWhite)
	body.SetPosition(0, headerH)
	card.AddChild(body)

	y := headerH + pad
	for _, n := range lines {
		n.SetPosition(pad, y)
		card.AddChild(n)
		y += height(n) + 16
	}
	card.SetSize(w, headerH+bodyH)
	return card
}

func (b *builder) dressCode() *Section {
	const pad = 96
	sec, c := b.open(DressCode, 768, pad)

	cardW := min(c.w, 700)
	card := unveil.NewContainer("dresscode-card")
	inner := column{parent: card, x: 40, w: cardW - 80, y: 56}
	inner.add(newTextNode("dresscode-heading", b.content.DressCode.Heading, inner.w, styleHeading), 16)
	divider := unveil.NewBox("dresscode-divider", 96, 4, colorWhite)
	divider.SetAlpha(0.9)
	inner.add(divider, 32)
	inner.add(newTextNode("dresscode-message", b.content.DressCode.Message, inner.w, styleCenter), 24)
	sub := styleCenter
	sub.color = colorGray700
	inner.add(newTextNode("dresscode-subtext", b.content.DressCode.Subtext, inner.w, sub), 0)
	cardH := inner.end() + 56
	card.AddChildAt(unveil.NewBox("dresscode-card-bg", cardW, cardH, colorDressCard), 0)
	card.SetSize(cardW, cardH)

	c.add(card, 0)
	b.reveal(sec, card, unveil.VariantFadeInUpSlow)
	return b.finish(sec, c, colorGray50, pad)
}

func (b *builder) gallery() *Section {
	sec, c := b.open(Gallery, maxContentWidth, sectionPadding)
	heading := c.add(headingBlock("gallery-heading", b.content.Gallery.Heading, c.w, colorBrown), headingGap)
	b.reveal(sec, heading, unveil.VariantFadeInUp)

	const cellH = 256
	cols := gridColumns(b.opts.Width)
	cellW := (c.w - gridGap*float64(cols-1)) / float64(cols)
	grid := unveil.NewContainer("gallery-grid")
	rows := 0
	for i, ref := range b.content.Gallery.Images {
		row, col := i/cols, i%cols
		cell := b.image(ref)
		cell.Name = fmt.Sprintf("gallery-%d", i)
		cell.SetSize(cellW, cellH)
		cell.SetPosition(float64(col)*(cellW+gridGap), float64(row)*(cellH+gridGap))
		grid.AddChild(cell)
		rows = row + 1
	}
	gridH := 0.0
	if rows > 0 {
		gridH = float64(rows)*cellH + float64(rows-1)*gridGap
	}
	grid.SetSize(c.w, gridH)
	c.add(grid, 0)
	b.stagger(sec, grid, unveil.VariantFadeIn)

	return b.finish(sec, c, colorWhite, sectionPadding)
}

func (b *builder) footer() *Section {
	const pad = 48
	sec, c := b.open(Footer, 896, pad)
	f := b.content.Footer

	c.add(newTextNode("footer-heading", f.Heading, c.w, textStyle{scale: 2, color: colorWhite, align: unveil.TextAlignCenter}), 16)
	c.add(newTextNode("footer-tagline", f.Tagline, c.w, textStyle{scale: 1, color: colorGray300, align: unveil.TextAlignCenter}), 56)
	c.add(unveil.NewBox("footer-rule", c.w, 1, colorGray700), 32)
	c.add(newTextNode("footer-copyright", f.Copyright, c.w, textStyle{scale: 1, color: colorGray400, align: unveil.TextAlignCenter}), 0)

	return b.finish(sec, c, colorGray800, pad)
}
