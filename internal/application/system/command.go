package system

import "github.com/younwookim/blockfall/internal/domain/entity"

// Command is a request the input policy hands to the game session
type Command interface {
	isCommand()
}

// MoveCommand shifts the live piece horizontally
type MoveCommand struct {
	DCol int // -1 for left, 1 for right
}

func (MoveCommand) isCommand() {}

// RotateCommand turns the live piece a quarter
type RotateCommand struct {
	Direction entity.Direction
}

func (RotateCommand) isCommand() {}

// SoftDropCommand moves the live piece down one row, locking it if it cannot
type SoftDropCommand struct{}

func (SoftDropCommand) isCommand() {}

// HardDropCommand drops the live piece to the bottom and locks it
type HardDropCommand struct{}

func (HardDropCommand) isCommand() {}

// HoldCommand exchanges the live piece with the hold slot
type HoldCommand struct{}

func (HoldCommand) isCommand() {}
