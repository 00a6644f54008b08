package entity

// PieceDef is a piece without a position: what the hold slot stores
type PieceDef struct {
	Kind  Kind  `json:"kind"`
	Shape Shape `json:"shape"`
	Color Color `json:"color"`
}

// Piece is a live piece on the field.
// Col and Row locate the top-left cell of the shape matrix.
type Piece struct {
	PieceDef
	Col int `json:"col"`
	Row int `json:"row"`
}

// NewPiece places a definition at the given origin
func NewPiece(def PieceDef, col, row int) Piece {
	return Piece{PieceDef: def, Col: col, Row: row}
}

// Def returns the piece's definition without its position
func (p Piece) Def() PieceDef {
	return p.PieceDef
}

// Cells returns the absolute grid coordinates of every occupied cell
func (p Piece) Cells() []Point {
	points := p.Shape.Occupied()
	for i := range points {
		points[i].Col += p.Col
		points[i].Row += p.Row
	}
	return points
}
