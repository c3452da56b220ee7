package page

import (
	_ "image/jpeg" // decoders for ebitenutil.NewImageFromFile
	_ "image/png"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Assets resolves image references from Content. A nil image means the
// reference could not be resolved; the page draws a placeholder instead.
type Assets interface {
	Image(ref string) *ebiten.Image
}

// DirAssets loads images from a directory on first use and caches them,
// including failures.
type DirAssets struct {
	dir    string
	logger *log.Logger
	cache  map[string]*ebiten.Image
}

// NewDirAssets returns Assets rooted at dir. A nil logger uses log.Default().
func NewDirAssets(dir string, logger *log.Logger) *DirAssets {
	if logger == nil {
		logger = log.Default()
	}
	return &DirAssets{dir: dir, logger: logger, cache: make(map[string]*ebiten.Image)}
}

// Image implements Assets.
func (a *DirAssets) Image(ref string) *ebiten.Image {
	if img, ok := a.cache[ref]; ok {
		return img
	}
	var img *ebiten.Image
	if path, ok := a.resolve(ref); !ok {
		a.logger.Warn("image ref outside assets dir, using placeholder", "ref", ref)
	} else if loaded, _, err := ebitenutil.NewImageFromFile(path); err != nil {
		a.logger.Warn("image unavailable, using placeholder", "ref", ref, "err", err)
	} else {
		img = loaded
	}
	a.cache[ref] = img
	return img
}

// resolve joins ref to the asset directory. Leading slashes are dropped so
// web-style references ("/galery2.jpg") resolve inside dir. Refs that would
// climb out of dir are rejected.
func (a *DirAssets) resolve(ref string) (string, bool) {
	rel := filepath.FromSlash(strings.TrimLeft(ref, "/"))
	if !filepath.IsLocal(rel) {
		return "", false
	}
	return filepath.Join(a.dir, rel), true
}

// imageSize returns the pixel size of img, or 0, 0 for nil.
func imageSize(img *ebiten.Image) (float64, float64) {
	if img == nil {
		return 0, 0
	}
	b := img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}
