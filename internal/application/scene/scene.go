// Package scene defines the Scene interface for game screens.
//
// The title screen and the gameplay screen each implement Scene; the
// game loop owns exactly one current scene and delegates to it.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one game screen.
//
// Update returns the next scene to switch to, or nil to stay. A
// non-nil error terminates the game loop.
type Scene interface {
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter runs each time the scene becomes current.
	OnEnter()

	// OnExit runs when the scene is replaced.
	OnExit()
}
