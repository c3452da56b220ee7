package page

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"

	"github.com/phanxgames/unveil"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name string
		in   string
		cols int
		want []string
	}{
		{"empty", "  ", 10, nil},
		{"fits", "black attire", 20, []string{"black attire"}},
		{"breaks", "a bb ccc dddd", 6, []string{"a bb", "ccc", "dddd"}},
		{"long word", "x supercalifragilistic y", 5, []string{"x", "supercalifragilistic", "y"}},
		{"zero cols", "a b", 0, []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wrap(tt.in, tt.cols))
		})
	}
}

func TestNewTextNodeSizing(t *testing.T) {
	n := newTextNode("p", "one two three four", 70, textStyle{scale: 1, lineHeight: 18})
	assert.Equal(t, "one two\nthree four", n.TextBlock.Content)
	assert.Equal(t, 70.0, width(n))
	assert.Equal(t, 36.0, height(n))

	h := newTextNode("h", "Gallery", 300, styleHeading)
	assert.Equal(t, 300.0, width(h))
	assert.Equal(t, float64(unveil.GlyphHeight)*3, height(h))
}

func TestPlainText(t *testing.T) {
	assert.Equal(t, "we're ready", plainText.Replace("we’re ready"))
	assert.Equal(t, "challenge - different", plainText.Replace("challenge—different"))
	assert.Equal(t, "Made with <3", plainText.Replace("Made with ♥"))
}

func TestColumnCentersAndStacks(t *testing.T) {
	parent := unveil.NewContainer("p")
	c := column{parent: parent, x: 10, w: 200}
	a := c.add(unveil.NewBox("a", 100, 20, unveil.ColorWhite), 8)
	b := c.add(unveil.NewBox("b", 200, 30, unveil.ColorWhite), 8)

	assert.Equal(t, 60.0, a.X)
	assert.Equal(t, 10.0, b.X)
	assert.Equal(t, 28.0, b.Y)
	assert.Equal(t, 58.0, c.end())
}

func TestDirAssetsMissingImage(t *testing.T) {
	a := NewDirAssets(t.TempDir(), log.New(io.Discard))
	assert.Nil(t, a.Image("/missing.jpg"))
	assert.Contains(t, a.cache, "/missing.jpg", "failures are cached")
	path, ok := a.resolve("/galery2.jpg")
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(a.dir, "galery2.jpg"), path)
}

func TestDirAssetsStaysInsideDir(t *testing.T) {
	root := t.TempDir()
	a := NewDirAssets(filepath.Join(root, "public"), log.New(io.Discard))

	for _, ref := range []string{"../secret.jpg", "/../secret.jpg", "photos/../../secret.jpg", ""} {
		_, ok := a.resolve(ref)
		assert.False(t, ok, ref)
	}
	for _, ref := range []string{"galery2.jpg", "/photos/a.jpg", "photos/./a.jpg"} {
		_, ok := a.resolve(ref)
		assert.True(t, ok, ref)
	}
	assert.Nil(t, a.Image("../secret.jpg"))
	assert.Contains(t, a.cache, "../secret.jpg")
}
