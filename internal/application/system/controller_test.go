package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/blockfall/internal/domain/entity"
)

func createTestField(t *testing.T) *entity.Playfield {
	t.Helper()
	f, err := entity.NewPlayfield(10, 20)
	require.NoError(t, err)
	return f
}

func createTestController(t *testing.T, kind entity.Kind, col, row int) (*PieceController, *entity.Playfield) {
	t.Helper()
	f := createTestField(t)
	c := NewPieceController(f)
	c.Place(entity.NewPiece(entity.PieceDef{Kind: kind, Shape: entity.ShapeOf(kind), Color: 1}, col, row))
	return c, f
}

func TestPieceController_NoPieceIsNoOp(t *testing.T) {
	c := NewPieceController(createTestField(t))

	assert.False(t, c.HasPiece())
	assert.False(t, c.MoveBy(1, 0))
	assert.False(t, c.Rotate(entity.Clockwise))
	assert.Equal(t, 0, c.DropToBottom())
	assert.Equal(t, 0, c.GhostRow())

	_, ok := c.Piece()
	assert.False(t, ok)
	_, ok = c.Take()
	assert.False(t, ok)
}

func TestPieceController_MoveBy(t *testing.T) {
	c, _ := createTestController(t, entity.KindO, 4, 0)

	t.Run("moves into free space", func(t *testing.T) {
		assert.True(t, c.MoveBy(1, 0))
		p, _ := c.Piece()
		assert.Equal(t, 5, p.Col)
	})

	t.Run("stops at right wall", func(t *testing.T) {
		for c.MoveBy(1, 0) {
		}
		p, _ := c.Piece()
		assert.Equal(t, 8, p.Col, "O is two wide on a ten wide field")
	})

	t.Run("stops at left wall", func(t *testing.T) {
		for c.MoveBy(-1, 0) {
		}
		p, _ := c.Piece()
		assert.Equal(t, 0, p.Col)
		assert.False(t, c.MoveBy(-1, 0))
	})

	t.Run("stops at floor", func(t *testing.T) {
		for c.MoveBy(0, 1) {
		}
		p, _ := c.Piece()
		assert.Equal(t, 18, p.Row)
	})
}

func TestPieceController_MoveByBlockedByLockedCells(t *testing.T) {
	c, f := createTestController(t, entity.KindO, 4, 0)
	// I covers cols 3-6 of row 10, under both O columns
	f.Lock(entity.ShapeOf(entity.KindI), 3, 10, 2)

	for c.MoveBy(0, 1) {
	}
	p, _ := c.Piece()
	assert.Equal(t, 8, p.Row, "rests on the I at row 10")
}

func TestPieceController_Rotate(t *testing.T) {
	c, _ := createTestController(t, entity.KindT, 4, 5)

	assert.True(t, c.Rotate(entity.Clockwise))
	p, _ := c.Piece()
	assert.Equal(t, 3, p.Shape.Rows())
	assert.Equal(t, 2, p.Shape.Cols())
	assert.Equal(t, 4, p.Col, "origin is unchanged")
	assert.Equal(t, 5, p.Row)

	assert.True(t, c.Rotate(entity.CounterClockwise))
	p, _ = c.Piece()
	assert.True(t, entity.ShapeOf(entity.KindT).Equal(p.Shape))
}

func TestPieceController_RotateRejectedAtWall(t *testing.T) {
	// vertical I against the right wall cannot turn flat without a kick
	c, _ := createTestController(t, entity.KindI, 0, 5)
	require.True(t, c.Rotate(entity.Clockwise))
	for c.MoveBy(1, 0) {
	}
	before, _ := c.Piece()
	require.Equal(t, 9, before.Col)

	assert.False(t, c.Rotate(entity.Clockwise))
	after, _ := c.Piece()
	assert.True(t, before.Shape.Equal(after.Shape), "orientation kept after rejected rotation")
	assert.Equal(t, before.Col, after.Col)
}

func TestPieceController_DropToBottom(t *testing.T) {
	c, _ := createTestController(t, entity.KindO, 4, 0)

	assert.Equal(t, 18, c.GhostRow())
	assert.Equal(t, 18, c.DropToBottom())
	p, _ := c.Piece()
	assert.Equal(t, 18, p.Row)

	assert.Equal(t, 0, c.DropToBottom(), "already resting")
}

func TestPieceController_PlaceAndTake(t *testing.T) {
	c, _ := createTestController(t, entity.KindS, 3, 2)

	p, ok := c.Take()
	require.True(t, ok)
	assert.Equal(t, entity.KindS, p.Kind)
	assert.False(t, c.HasPiece())
}

func TestPieceController_PieceIsCopy(t *testing.T) {
	c, _ := createTestController(t, entity.KindO, 4, 0)

	p, _ := c.Piece()
	p.Col = 0

	again, _ := c.Piece()
	assert.Equal(t, 4, again.Col)
}
