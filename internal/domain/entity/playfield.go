package entity

// Playfield is the fixed-size grid of locked cells.
// Row 0 is the top row. Dimensions never change after construction.
type Playfield struct {
	width   int
	height  int
	cells   [][]Color
	cleared []int
}

// NewPlayfield creates an empty width×height field
func NewPlayfield(width, height int) (*Playfield, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	cells := make([][]Color, height)
	for y := range cells {
		cells[y] = make([]Color, width)
	}

	return &Playfield{
		width:  width,
		height: height,
		cells:  cells,
	}, nil
}

// NewPlayfieldFromRows creates a field whose initial contents are rows.
// All rows must share a non-zero length.
func NewPlayfieldFromRows(rows [][]Color) (*Playfield, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}

	f, err := NewPlayfield(len(rows[0]), len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != f.width {
			return nil, ErrInvalidDimensions
		}
		copy(f.cells[y], row)
	}
	return f, nil
}

// Width returns the number of columns
func (f *Playfield) Width() int {
	return f.width
}

// Height returns the number of rows
func (f *Playfield) Height() int {
	return f.height
}

// Cell returns the token at (col, row), or Empty outside the grid
func (f *Playfield) Cell(col, row int) Color {
	if col < 0 || col >= f.width || row < 0 || row >= f.height {
		return Empty
	}
	return f.cells[row][col]
}

// IsOccupied reports whether a piece cell may not occupy (col, row).
// Left, right and below the grid count as occupied; above the top does not,
// so pieces may spawn partly off the top.
func (f *Playfield) IsOccupied(col, row int) bool {
	if col < 0 || col >= f.width || row >= f.height {
		return true
	}
	if row < 0 {
		return false
	}
	return !f.cells[row][col].IsEmpty()
}

// Collides reports whether shape placed with its top-left cell at
// (col, row) overlaps a locked cell or leaves the grid sideways or downward.
// It is the single legality check for moves, rotations and spawns.
func (f *Playfield) Collides(shape Shape, col, row int) bool {
	for _, p := range shape.Occupied() {
		if f.IsOccupied(col+p.Col, row+p.Row) {
			return true
		}
	}
	return false
}

// Lock writes color into every cell covered by shape at (col, row).
// Cells above the top row are dropped.
func (f *Playfield) Lock(shape Shape, col, row int, color Color) {
	for _, p := range shape.Occupied() {
		x, y := col+p.Col, row+p.Row
		if y < 0 || y >= f.height || x < 0 || x >= f.width {
			continue
		}
		f.cells[y][x] = color
	}
}

// ClearFullRows removes every full row, shifting the rows above it down and
// inserting an empty row at the top. Returns the number of rows removed.
func (f *Playfield) ClearFullRows() int {
	f.cleared = f.cleared[:0]

	// offset maps the current index back to the row's index before clearing
	offset := 0
	for y := f.height - 1; y >= 0; {
		if !f.rowFull(y) {
			y--
			continue
		}

		f.cleared = append(f.cleared, y-offset)
		offset++

		removed := f.cells[y]
		copy(f.cells[1:y+1], f.cells[:y])
		for x := range removed {
			removed[x] = Empty
		}
		f.cells[0] = removed
		// rows above moved into y; check it again
	}

	return len(f.cleared)
}

// ClearedRows returns the indices, as they were before clearing, of the rows
// removed by the last ClearFullRows call, bottom first.
func (f *Playfield) ClearedRows() []int {
	out := make([]int, len(f.cleared))
	copy(out, f.cleared)
	return out
}

func (f *Playfield) rowFull(y int) bool {
	for _, c := range f.cells[y] {
		if c.IsEmpty() {
			return false
		}
	}
	return true
}

// Rows returns a deep copy of the grid, top row first
func (f *Playfield) Rows() [][]Color {
	out := make([][]Color, f.height)
	for y, row := range f.cells {
		out[y] = make([]Color, f.width)
		copy(out[y], row)
	}
	return out
}

// Filled returns the number of non-empty cells
func (f *Playfield) Filled() int {
	n := 0
	for _, row := range f.cells {
		for _, c := range row {
			if !c.IsEmpty() {
				n++
			}
		}
	}
	return n
}
