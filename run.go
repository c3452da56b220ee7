package unveil

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween/ease"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	// ScrollStep is the world distance moved per wheel notch or arrow-key
	// frame. Zero means 48.
	ScrollStep float64
	// ExitOnScriptDone stops Run once an attached ScrollScript finishes.
	ExitOnScriptDone bool
}

const defaultScrollStep = 48

// errScriptDone ends the game loop after a scroll script finishes.
var errScriptDone = errors.New("unveil: scroll script done")

// game adapts a Scene to ebiten.Game and maps wheel and keyboard input to
// viewport scrolling.
type game struct {
	scene *Scene
	cfg   RunConfig
}

// Run opens a window and drives scene until the window closes or the update
// callback returns an error.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("unveil: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.ScrollStep == 0 {
		cfg.ScrollStep = defaultScrollStep
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	err := ebiten.RunGame(&game{scene: scene, cfg: cfg})
	if errors.Is(err, errScriptDone) {
		return nil
	}
	return err
}

func (g *game) Update() error {
	if cam := g.scene.primaryCamera(); cam != nil {
		g.handleScroll(cam)
	}
	g.scene.queueMouse()
	if err := g.scene.Update(); err != nil {
		return err
	}
	if g.cfg.ExitOnScriptDone && g.scene.script != nil && g.scene.script.Done() {
		return errScriptDone
	}
	return nil
}

func (g *game) handleScroll(cam *Camera) {
	step := g.cfg.ScrollStep
	page := cam.Viewport.Height * 0.9 / cam.Zoom

	if _, wy := ebiten.Wheel(); wy != 0 {
		cam.ScrollBy(-wy * step)
	}
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown):
		cam.ScrollBy(step / 4)
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp):
		cam.ScrollBy(-step / 4)
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		cam.ScrollTopTo(cam.ScrollTop()+page, 0.4, ease.OutCubic)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		cam.ScrollTopTo(cam.ScrollTop()-page, 0.4, ease.OutCubic)
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		cam.ScrollTopTo(0, 0.8, ease.InOutQuad)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		if cam.BoundsEnabled {
			cam.ScrollTopTo(cam.Bounds.Y+cam.Bounds.Height, 0.8, ease.InOutQuad)
		}
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
