package tether

import "github.com/hajimehoshi/ebiten/v2"

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// ShowFPS overlays FPS and TPS counters in the top-right corner.
	ShowFPS bool
	// Draw renders the scene. The interaction core has no renderer of its own.
	Draw func(screen *ebiten.Image)
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene *Scene
	cfg   RunConfig
	fps   *fpsOverlay
}

func (g *game) Update() error {
	if g.fps != nil {
		g.fps.update()
	}
	return g.scene.Update()
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.cfg.Draw != nil {
		g.cfg.Draw(screen)
	}
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scene.SetWindowSize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// Run opens a window and drives the scene with ebiten's game loop. Input is
// polled with EbitenInput unless another source was set.
func Run(scene *Scene, cfg RunConfig) error {
	if scene.input == nil {
		scene.SetInputSource(&EbitenInput{})
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
		scene.SetWindowSize(float64(cfg.Width), float64(cfg.Height))
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	g := &game{scene: scene, cfg: cfg}
	if cfg.ShowFPS {
		g.fps = &fpsOverlay{}
	}
	return ebiten.RunGame(g)
}
