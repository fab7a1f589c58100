package tether

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often, in ticks, the overlay text is rebuilt.
const fpsRefresh = 30

// fpsOverlay prints FPS and TPS in the top-right corner of the screen.
type fpsOverlay struct {
	ticks int
	text  string
}

func (f *fpsOverlay) update() {
	if f.ticks%fpsRefresh == 0 {
		f.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
	}
	f.ticks++
}

func (f *fpsOverlay) draw(screen *ebiten.Image) {
	w := screen.Bounds().Dx()
	ebitenutil.DebugPrintAt(screen, f.text, w-90, 0)
}
