package system

import "github.com/younwookim/blockfall/internal/domain/entity"

// PieceController owns the single live piece and validates every change
// against the playfield before committing it.
type PieceController struct {
	field *entity.Playfield
	piece *entity.Piece
}

// NewPieceController creates a controller with no live piece
func NewPieceController(field *entity.Playfield) *PieceController {
	return &PieceController{field: field}
}

// HasPiece reports whether a piece is live
func (c *PieceController) HasPiece() bool {
	return c.piece != nil
}

// Piece returns a copy of the live piece
func (c *PieceController) Piece() (entity.Piece, bool) {
	if c.piece == nil {
		return entity.Piece{}, false
	}
	return *c.piece, true
}

// Place makes p the live piece without any collision check.
// Only the game session calls this.
func (c *PieceController) Place(p entity.Piece) {
	c.piece = &p
}

// Take removes and returns the live piece
func (c *PieceController) Take() (entity.Piece, bool) {
	p, ok := c.Piece()
	c.piece = nil
	return p, ok
}

// MoveBy shifts the piece by (dCol, dRow) if the target position is free
func (c *PieceController) MoveBy(dCol, dRow int) bool {
	if c.piece == nil {
		return false
	}
	col, row := c.piece.Col+dCol, c.piece.Row+dRow
	if c.field.Collides(c.piece.Shape, col, row) {
		return false
	}
	c.piece.Col, c.piece.Row = col, row
	return true
}

// Rotate turns the piece about its unchanged origin.
// There is no wall kick: a colliding rotation is simply rejected.
func (c *PieceController) Rotate(dir entity.Direction) bool {
	if c.piece == nil {
		return false
	}
	candidate := c.piece.Shape.Rotate(dir)
	if c.field.Collides(candidate, c.piece.Col, c.piece.Row) {
		return false
	}
	c.piece.Shape = candidate
	return true
}

// DropToBottom moves the piece down as far as it goes and returns the
// number of rows descended.
func (c *PieceController) DropToBottom() int {
	if c.piece == nil {
		return 0
	}
	rows := c.GhostRow() - c.piece.Row
	c.piece.Row += rows
	return rows
}

// GhostRow returns the row the piece would come to rest on.
// Without a live piece it returns 0.
func (c *PieceController) GhostRow() int {
	if c.piece == nil {
		return 0
	}
	row := c.piece.Row
	for !c.field.Collides(c.piece.Shape, c.piece.Col, row+1) {
		row++
	}
	return row
}
