package unveil

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot asks the next Draw to save the frame as a PNG in ScreenshotDir.
// The file is named after the frame number, label and scroll position so a
// scripted run produces a stable, sortable series.
func (s *Scene) Screenshot(label string) {
	s.screenshotQueue = append(s.screenshotQueue, label)
}

func (s *Scene) flushScreenshots(screen *ebiten.Image) {
	if len(s.screenshotQueue) == 0 {
		return
	}
	labels := s.screenshotQueue
	s.screenshotQueue = s.screenshotQueue[:0]

	if err := os.MkdirAll(s.ScreenshotDir, 0o755); err != nil {
		s.logger.Error("screenshot dir", "dir", s.ScreenshotDir, "err", err)
		return
	}

	b := screen.Bounds()
	pix := make([]byte, 4*b.Dx()*b.Dy())
	screen.ReadPixels(pix)
	img := straightAlpha(pix, b.Dx(), b.Dy())

	var top float64
	if cam := s.primaryCamera(); cam != nil {
		top = cam.ScrollTop()
	}
	for _, label := range labels {
		path := filepath.Join(s.ScreenshotDir, screenshotName(s.frame, label, top))
		if err := writePNG(path, img); err != nil {
			s.logger.Error("screenshot", "label", label, "err", err)
			continue
		}
		s.logger.Info("screenshot saved", "path", path, "reveals", len(s.reveals))
	}
}

// straightAlpha converts Ebitengine's premultiplied RGBA pixels to NRGBA.
func straightAlpha(pix []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	copy(img.Pix, pix)
	for i := 0; i+3 < len(img.Pix); i += 4 {
		a := int(img.Pix[i+3])
		if a == 0 || a == 255 {
			continue
		}
		for c := 0; c < 3; c++ {
			img.Pix[i+c] = uint8(min(int(img.Pix[i+c])*255/a, 255))
		}
	}
	return img
}

// screenshotName builds "<frame>_<label>_y<scrollTop>.png".
func screenshotName(frame uint64, label string, scrollTop float64) string {
	return fmt.Sprintf("%06d_%s_y%d.png", frame, sanitizeLabel(label), int(scrollTop))
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel keeps letters, digits, '-' and '.', maps everything else to
// '_', and names empty labels "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
