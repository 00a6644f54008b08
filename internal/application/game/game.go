// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/blockfall/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	tick    time.Duration
	elapsed time.Duration
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		tick:    time.Second / 60, // Default to 60 TPS
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	g.elapsed += g.tick

	next, err := g.current.Update(g.tick)
	if err != nil {
		return err
	}

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetTPS sets the tick rate the fixed tick length is derived from.
// It should match ebiten.SetTPS.
func (g *Game) SetTPS(tps int) {
	if tps > 0 {
		g.tick = time.Second / time.Duration(tps)
	}
}

// Tick returns the fixed tick length
func (g *Game) Tick() time.Duration {
	return g.tick
}

// Elapsed returns the total time advanced since the game started
func (g *Game) Elapsed() time.Duration {
	return g.elapsed
}

// Close calls OnExit on the current scene. Call it after ebiten.RunGame
// returns so the scene can flush its state.
func (g *Game) Close() {
	g.current.OnExit()
}
