package entity

import (
	"encoding/json"
	"strings"
)

// Kind identifies one of the seven tetrominoes
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindL
	KindJ
	KindS
	KindZ
)

// KindCount is the number of canonical tetrominoes
const KindCount = 7

// String returns the letter name of the kind
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindL:
		return "L"
	case KindJ:
		return "J"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	default:
		return "?"
	}
}

// Direction is a rotation direction
type Direction int

const (
	Clockwise Direction = iota
	CounterClockwise
)

// Shape is one orientation of a piece: a rectangular matrix of occupied flags.
// Shapes are immutable; rotation returns a new Shape.
type Shape struct {
	cells [][]bool
}

// NewShape builds a shape from a row-major matrix.
// The matrix is copied. It must be rectangular and contain an occupied cell.
func NewShape(rows [][]bool) (Shape, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Shape{}, ErrEmptyShape
	}

	cols := len(rows[0])
	occupied := false
	cells := make([][]bool, len(rows))
	for r, row := range rows {
		if len(row) != cols {
			return Shape{}, ErrRaggedShape
		}
		cells[r] = make([]bool, cols)
		copy(cells[r], row)
		for _, v := range row {
			occupied = occupied || v
		}
	}
	if !occupied {
		return Shape{}, ErrEmptyShape
	}

	return Shape{cells: cells}, nil
}

// MustShape is like NewShape but panics on an invalid matrix.
// Used for the fixed shape table.
func MustShape(rows [][]bool) Shape {
	s, err := NewShape(rows)
	if err != nil {
		panic(err)
	}
	return s
}

// ParseShape builds a shape from strings where '#' is occupied and any other
// rune is empty, e.g. ParseShape("###", ".#.").
func ParseShape(rows ...string) (Shape, error) {
	matrix := make([][]bool, len(rows))
	for r, row := range rows {
		matrix[r] = make([]bool, 0, len(row))
		for _, ch := range row {
			matrix[r] = append(matrix[r], ch == '#')
		}
	}
	return NewShape(matrix)
}

// Rows returns the matrix height
func (s Shape) Rows() int {
	return len(s.cells)
}

// Cols returns the matrix width
func (s Shape) Cols() int {
	if len(s.cells) == 0 {
		return 0
	}
	return len(s.cells[0])
}

// At reports whether the cell at (row, col) of the matrix is occupied.
// Coordinates outside the matrix are empty.
func (s Shape) At(row, col int) bool {
	if row < 0 || row >= s.Rows() || col < 0 || col >= s.Cols() {
		return false
	}
	return s.cells[row][col]
}

// Occupied returns the (col, row) offsets of every occupied cell, top to
// bottom, left to right.
func (s Shape) Occupied() []Point {
	points := make([]Point, 0, 4)
	for r, row := range s.cells {
		for c, v := range row {
			if v {
				points = append(points, Point{Col: c, Row: r})
			}
		}
	}
	return points
}

// Rotate returns the shape turned a quarter in the given direction.
//
// For an R×C shape the result is C×R with
//
//	clockwise:        rot[i][j] = orig[R-1-j][i]
//	counterclockwise: rot[i][j] = orig[j][C-1-i]
func (s Shape) Rotate(dir Direction) Shape {
	rows, cols := s.Rows(), s.Cols()
	rotated := make([][]bool, cols)
	for i := range rotated {
		rotated[i] = make([]bool, rows)
		for j := range rotated[i] {
			if dir == Clockwise {
				rotated[i][j] = s.cells[rows-1-j][i]
			} else {
				rotated[i][j] = s.cells[j][cols-1-i]
			}
		}
	}
	return Shape{cells: rotated}
}

// Equal reports whether both shapes have the same matrix
func (s Shape) Equal(other Shape) bool {
	if s.Rows() != other.Rows() || s.Cols() != other.Cols() {
		return false
	}
	for r := range s.cells {
		for c := range s.cells[r] {
			if s.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// Matrix returns a copy of the underlying matrix
func (s Shape) Matrix() [][]bool {
	out := make([][]bool, len(s.cells))
	for r, row := range s.cells {
		out[r] = make([]bool, len(row))
		copy(out[r], row)
	}
	return out
}

// String renders the shape with '#' and '.', one line per row
func (s Shape) String() string {
	var b strings.Builder
	for r, row := range s.cells {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, v := range row {
			if v {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

// MarshalJSON encodes the shape as its rows in '#'/'.' form
func (s Shape) MarshalJSON() ([]byte, error) {
	return json.Marshal(strings.Split(s.String(), "\n"))
}
