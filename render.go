package unveil

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// whitePixel is a 1x1 white image used for solid color sprites. Created on
// first draw so importing the package never touches the GPU.
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(ColorWhite.toRGBA())
	}
	return whitePixel
}

// defaultFace is the fixed-width face used by text nodes.
var defaultFace = text.NewGoXFace(basicfont.Face7x13)

// Glyph metrics of defaultFace in unscaled pixels. Page layout measures text
// with these.
const (
	GlyphWidth  = 7
	GlyphHeight = 13
)

// drawState carries per-camera values through traversal.
type drawState struct {
	target     *ebiten.Image
	view       [6]float64
	cullBounds Rect
	cull       bool
}

// Draw renders the scene once per camera into that camera's viewport. With
// no camera the scene is drawn untransformed over the whole screen.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}

	if len(s.cameras) == 0 {
		s.drawTree(s.root, drawState{target: screen, view: identityTransform}, 1)
	} else {
		for _, cam := range s.cameras {
			vp := cam.Viewport
			sub := screen.SubImage(image.Rect(
				int(vp.X), int(vp.Y),
				int(vp.X+vp.Width), int(vp.Y+vp.Height),
			)).(*ebiten.Image)
			st := drawState{target: sub, view: cam.computeViewMatrix(), cull: cam.CullEnabled}
			if st.cull {
				st.cullBounds = cam.VisibleBounds()
			}
			s.drawTree(s.root, st, 1)
		}
	}

	s.flushScreenshots(screen)
}

// drawTree walks the tree depth-first and draws visible, renderable nodes.
// Culling only skips a node's own drawing; children are always visited
// because their positions can differ from the parent's box.
func (s *Scene) drawTree(n *Node, st drawState, parentAlpha float64) {
	if !n.Visible {
		return
	}
	alpha := parentAlpha * n.Alpha
	if alpha <= 0 {
		return
	}

	if n.Renderable && !(st.cull && shouldCull(n, st.cullBounds)) {
		m := multiplyAffine(st.view, n.worldTransform)
		switch n.Type {
		case NodeTypeSprite:
			drawSprite(st.target, n, m, alpha)
		case NodeTypeText:
			drawText(st.target, n, m, alpha)
		}
	}

	for _, child := range n.children {
		s.drawTree(child, st, alpha)
	}
}

func geoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

func colorScale(c Color, alpha float64) ebiten.ColorScale {
	var cs ebiten.ColorScale
	a := float32(c.A * alpha)
	cs.Scale(float32(c.R)*a, float32(c.G)*a, float32(c.B)*a, a)
	return cs
}

func drawSprite(dst *ebiten.Image, n *Node, m [6]float64, alpha float64) {
	img := n.customImage
	if img == nil {
		img = ensureWhitePixel()
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	w, h := n.Width, n.Height
	if w == 0 && h == 0 {
		w, h = float64(b.Dx()), float64(b.Dy())
	}

	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Concat(geoM(m))
	op.ColorScale = colorScale(n.Color, alpha)
	dst.DrawImage(img, op)
}

func drawText(dst *ebiten.Image, n *Node, m [6]float64, alpha float64) {
	tb := n.TextBlock
	if tb == nil || tb.Content == "" {
		return
	}
	op := &text.DrawOptions{}
	op.LineSpacing = tb.LineHeight
	if op.LineSpacing == 0 {
		op.LineSpacing = GlyphHeight
	}

	// Width is in local units; the world transform applies the node's scale.
	boxW := n.Width
	switch tb.Align {
	case TextAlignCenter:
		op.PrimaryAlign = text.AlignCenter
		op.GeoM.Translate(boxW/2, 0)
	case TextAlignRight:
		op.PrimaryAlign = text.AlignEnd
		op.GeoM.Translate(boxW, 0)
	}
	op.GeoM.Concat(geoM(m))
	op.ColorScale = colorScale(tb.Color, alpha)
	text.Draw(dst, tb.Content, defaultFace, op)
}
