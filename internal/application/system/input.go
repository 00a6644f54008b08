package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSystem reads the keyboard
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds the input of one tick.
// Left, Right and SoftDrop are levels (held); the rest are edges that are
// true only on the tick the key went down.
type InputState struct {
	Left      bool
	Right     bool
	SoftDrop  bool
	HardDrop  bool
	RotateCW  bool
	RotateCCW bool
	Hold      bool
	// Scene controls, not game commands
	Pause   bool
	Restart bool
}

// IsIdle reports whether nothing is pressed
func (in InputState) IsIdle() bool {
	return in == InputState{}
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:      ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:     ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		SoftDrop:  ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		HardDrop:  inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW),
		RotateCW:  inpututil.IsKeyJustPressed(ebiten.KeyA),
		RotateCCW: inpututil.IsKeyJustPressed(ebiten.KeyD),
		Hold:      inpututil.IsKeyJustPressed(ebiten.KeyH),
		Pause:     inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Restart:   inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace),
	}
}
