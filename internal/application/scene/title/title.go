// Package title provides the start screen.
package title

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/hyunmoon/sidescroll/internal/application/scene"
)

var colorTitleBG = color.RGBA{20, 24, 60, 255}

// Title waits for the player to start a run, then hands off to the
// scene produced by the start callback.
type Title struct {
	seed    int64
	screenW int
	screenH int
	start   func() scene.Scene
}

// New creates the title screen. start builds the gameplay scene when
// the player presses start.
func New(seed int64, screenW, screenH int, start func() scene.Scene) *Title {
	return &Title{seed: seed, screenW: screenW, screenH: screenH, start: start}
}

// Update waits for Enter or Space (implements scene.Scene).
func (t *Title) Update(_ float64) (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return t.start(), nil
	}
	return nil, nil
}

// Draw renders the title text (implements scene.Scene).
func (t *Title) Draw(screen *ebiten.Image) {
	screen.Fill(colorTitleBG)
	text := fmt.Sprintf("SIDESCROLL\n\nSeed: %d\n\nPress Enter to start", t.seed)
	ebitenutil.DebugPrintAt(screen, text, t.screenW/2-60, t.screenH/2-30)
}

// OnEnter is called when the scene becomes current.
func (t *Title) OnEnter() {}

// OnExit is called when the scene is replaced.
func (t *Title) OnExit() {}
