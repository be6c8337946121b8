// Package scene defines the screens the game loop switches between.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the game. The loop calls Update once per tick
// and Draw once per frame.
type Scene interface {
	// Update advances the scene by dt seconds.
	// A non-nil next scene replaces this one; an error ends the game
	// (ebiten.Termination ends it cleanly).
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when the scene becomes current.
	OnEnter()

	// OnExit is called when the scene is replaced, e.g. to flush a
	// recording.
	OnExit()
}

// Sized is implemented by scenes that choose their own logical screen
// size. A zero size falls back to the game's default.
type Sized interface {
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}
