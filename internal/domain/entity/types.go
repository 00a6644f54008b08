package entity

import (
	"errors"
	"strconv"
)

// Color is the identity token stored in a playfield cell.
// Empty (0) marks an unoccupied cell; tokens 1..n index the theme palette.
type Color uint8

// Empty is the token of an unoccupied cell
const Empty Color = 0

// PaletteSize is the number of color tokens handed out by the default catalog
const PaletteSize = 7

// IsEmpty reports whether the token marks an unoccupied cell
func (c Color) IsEmpty() bool {
	return c == Empty
}

// MarshalJSON encodes the token as a number. Without it a row of cells
// would encode as a base64 byte string.
func (c Color) MarshalJSON() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(c), 10), nil
}

// Point is a grid coordinate (column, row). Row 0 is the top of the field.
type Point struct {
	Col int
	Row int
}

// Configuration errors. These are programmer errors and are returned at
// construction time, never during play.
var (
	ErrInvalidDimensions = errors.New("playfield dimensions must be positive")
	ErrEmptyShape        = errors.New("shape has no occupied cell")
	ErrRaggedShape       = errors.New("shape rows differ in length")
	ErrInvalidPalette    = errors.New("palette size must be positive")
)
