// Package game provides the ebiten game loop shell that hosts scenes.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hyunmoon/sidescroll/internal/application/scene"
)

// Game implements ebiten.Game and routes updates to the current scene.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
}

// New creates the loop shell around an initial scene and enters it.
func New(initial scene.Scene, screenW, screenH, framerate int) *Game {
	if framerate <= 0 {
		framerate = 60
	}
	g := &Game{
		current: initial,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / float64(framerate),
	}
	g.current.OnEnter()
	return g
}

// Update advances the current scene and performs transitions.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}
	return nil
}

// Draw renders the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout reports the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}
