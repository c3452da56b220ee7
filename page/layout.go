package page

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/phanxgames/unveil"
)

// Palette.
var (
	colorWhite       = unveil.RGB(0xff, 0xff, 0xff)
	colorGray50      = unveil.RGB(0xf9, 0xfa, 0xfb)
	colorGray200     = unveil.RGB(0xe5, 0xe7, 0xeb)
	colorGray300     = unveil.RGB(0xd1, 0xd5, 0xdb)
	colorGray400     = unveil.RGB(0x9c, 0xa3, 0xaf)
	colorGray600     = unveil.RGB(0x4b, 0x55, 0x63)
	colorGray700     = unveil.RGB(0x37, 0x41, 0x51)
	colorGray800     = unveil.RGB(0x1f, 0x29, 0x37)
	colorBrown       = unveil.RGB(0x8b, 0x6f, 0x47)
	colorDressCard   = unveil.RGB(0xd6, 0xbf, 0xa3)
	colorHeroOverlay = unveil.Color{A: 0.3}
)

// Spacing, in page pixels.
const (
	maxContentWidth = 1152 // widest content column
	sidePadding     = 16
	sectionPadding  = 80
	headingGap      = 64
	blockGap        = 48
	gridGap         = 16
	wideLayout      = 768 // page width from which grids use more columns
	bodyLineHeight  = 18
)

// textStyle describes how a text node is sized and drawn.
type textStyle struct {
	scale      float64
	color      unveil.Color
	align      unveil.TextAlign
	lineHeight float64 // unscaled; zero means unveil.GlyphHeight
}

var (
	styleTitle    = textStyle{scale: 4, color: colorWhite, align: unveil.TextAlignCenter}
	styleSubtitle = textStyle{scale: 2, color: colorWhite, align: unveil.TextAlignCenter}
	styleHeading  = textStyle{scale: 3, color: colorGray800, align: unveil.TextAlignCenter}
	styleBody     = textStyle{scale: 1, color: colorGray600, align: unveil.TextAlignLeft, lineHeight: bodyLineHeight}
	styleCenter   = textStyle{scale: 1, color: colorGray800, align: unveil.TextAlignCenter, lineHeight: bodyLineHeight}
)

// plainText swaps typographic punctuation for ASCII so the fixed face can
// draw it.
var plainText = strings.NewReplacer(
	"—", " - ",
	"–", "-",
	"’", "'",
	"‘", "'",
	"“", `"`,
	"”", `"`,
	"♥", "<3",
)

// wrap breaks s into lines no wider than cols cells. Words longer than a
// line are kept whole on their own line.
func wrap(s string, cols int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	if cols < 1 {
		cols = 1
	}
	var lines []string
	line := words[0]
	width := runewidth.StringWidth(line)
	for _, w := range words[1:] {
		ww := runewidth.StringWidth(w)
		if width+1+ww > cols {
			lines = append(lines, line)
			line, width = w, ww
			continue
		}
		line += " " + w
		width += 1 + ww
	}
	return append(lines, line)
}

// newTextNode builds a text node whose layout box is width page pixels wide
// and exactly tall enough for its wrapped lines.
func newTextNode(name, s string, width float64, st textStyle) *unveil.Node {
	lh := st.lineHeight
	if lh == 0 {
		lh = unveil.GlyphHeight
	}
	local := width / st.scale
	lines := wrap(plainText.Replace(s), int(local/unveil.GlyphWidth))

	n := unveil.NewText(name, strings.Join(lines, "\n"))
	n.TextBlock.Color = st.color
	n.TextBlock.Align = st.align
	n.TextBlock.LineHeight = lh
	n.SetSize(local, float64(len(lines))*lh)
	n.SetScale(st.scale, st.scale)
	return n
}

// height returns n's layout height in its parent's units.
func height(n *unveil.Node) float64 {
	return n.Height * n.ScaleY
}

// width returns n's layout width in its parent's units.
func width(n *unveil.Node) float64 {
	return n.Width * n.ScaleX
}

// column stacks nodes vertically inside parent, each horizontally centered
// within a band x..x+w.
type column struct {
	parent  *unveil.Node
	x, w    float64
	y       float64
	lastGap float64
}

// add places n at the cursor and advances it by n's height plus gap.
func (c *column) add(n *unveil.Node, gap float64) *unveil.Node {
	n.SetPosition(c.x+(c.w-width(n))/2, c.y)
	c.parent.AddChild(n)
	c.y += height(n) + gap
	c.lastGap = gap
	return n
}

// end returns the bottom of the last node added, ignoring its trailing gap.
func (c *column) end() float64 {
	return c.y - c.lastGap
}

// contentBand returns the horizontal band of the centered content column for
// a page of the given width, capped at maxW.
func contentBand(pageW, maxW float64) (x, w float64) {
	w = pageW - 2*sidePadding
	if w > maxW {
		w = maxW
	}
	if w < 0 {
		w = 0
	}
	return (pageW - w) / 2, w
}

// gridColumns returns the number of gallery columns for a page width.
func gridColumns(pageW float64) int {
	if pageW >= wideLayout {
		return 3
	}
	return 2
}
