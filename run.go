package bough

import "github.com/hajimehoshi/ebiten/v2"

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// Resizable lets the user resize the window; the layout follows it.
	Resizable bool
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene *Scene
	w, h  int
	fixed bool
}

func (g *game) Update() error {
	return g.scene.Update(float32(1.0 / float64(ebiten.TPS())))
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *game) Layout(outsideW, outsideH int) (int, int) {
	if g.fixed {
		return g.w, g.h
	}
	return outsideW, outsideH
}

// Run opens a window and drives scene until the window closes or the
// scene's update func returns an error.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	return ebiten.RunGame(&game{
		scene: scene,
		w:     cfg.Width,
		h:     cfg.Height,
		fixed: !cfg.Resizable && cfg.Width > 0 && cfg.Height > 0,
	})
}
