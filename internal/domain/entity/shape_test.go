package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShape_Validation(t *testing.T) {
	tests := []struct {
		name    string
		rows    [][]bool
		wantErr error
	}{
		{"nil matrix", nil, ErrEmptyShape},
		{"empty row", [][]bool{{}}, ErrEmptyShape},
		{"all empty", [][]bool{{false, false}, {false, false}}, ErrEmptyShape},
		{"ragged", [][]bool{{true, true}, {true}}, ErrRaggedShape},
		{"single cell", [][]bool{{true}}, nil},
		{"rectangular", [][]bool{{true, true, true}, {false, true, false}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewShape(tt.rows)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestNewShape_CopiesInput(t *testing.T) {
	rows := [][]bool{{true, false}}
	s, err := NewShape(rows)
	require.NoError(t, err)

	rows[0][1] = true
	assert.False(t, s.At(0, 1), "shape must not alias the caller's matrix")
}

func TestMustShape_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { MustShape([][]bool{{false}}) })
	assert.NotPanics(t, func() { MustShape([][]bool{{true}}) })
}

func TestParseShape(t *testing.T) {
	s, err := ParseShape("###", ".#.")
	require.NoError(t, err)

	assert.Equal(t, 2, s.Rows())
	assert.Equal(t, 3, s.Cols())
	assert.True(t, s.At(0, 0))
	assert.False(t, s.At(1, 0))
	assert.True(t, s.At(1, 1))
	assert.False(t, s.At(5, 5), "outside the matrix is empty")
	assert.Equal(t, "###\n.#.", s.String())
}

func TestShape_Occupied(t *testing.T) {
	s := ShapeOf(KindT)

	assert.Equal(t, []Point{{0, 0}, {1, 0}, {2, 0}, {1, 1}}, s.Occupied())
}

func TestShape_RotateClockwise(t *testing.T) {
	// T pointing down turns into T pointing left
	rotated := ShapeOf(KindT).Rotate(Clockwise)

	expected, err := ParseShape(".#", "##", ".#")
	require.NoError(t, err)
	assert.True(t, expected.Equal(rotated), "got\n%s", rotated)
}

func TestShape_RotateCounterClockwise(t *testing.T) {
	rotated := ShapeOf(KindT).Rotate(CounterClockwise)

	expected, err := ParseShape("#.", "##", "#.")
	require.NoError(t, err)
	assert.True(t, expected.Equal(rotated), "got\n%s", rotated)
}

func TestShape_RotateI(t *testing.T) {
	rotated := ShapeOf(KindI).Rotate(Clockwise)

	assert.Equal(t, 4, rotated.Rows())
	assert.Equal(t, 1, rotated.Cols())
}

func TestShape_RotationCycles(t *testing.T) {
	for k := Kind(0); k < KindCount; k++ {
		t.Run(k.String(), func(t *testing.T) {
			original := ShapeOf(k)

			s := original
			for i := 0; i < 4; i++ {
				s = s.Rotate(Clockwise)
			}
			assert.True(t, original.Equal(s), "four clockwise turns should restore the shape")

			back := original.Rotate(Clockwise).Rotate(CounterClockwise)
			assert.True(t, original.Equal(back), "clockwise then counterclockwise should restore the shape")

			back = original.Rotate(CounterClockwise).Rotate(Clockwise)
			assert.True(t, original.Equal(back), "counterclockwise then clockwise should restore the shape")

			assert.Len(t, original.Rotate(Clockwise).Occupied(), 4, "rotation keeps four cells")
		})
	}
}

func TestShape_MatrixIsCopy(t *testing.T) {
	s := ShapeOf(KindO)
	m := s.Matrix()
	m[0][0] = false

	assert.True(t, ShapeOf(KindO).At(0, 0))
}

func TestShape_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(ShapeOf(KindS))
	require.NoError(t, err)

	assert.JSONEq(t, `[".##","##."]`, string(data))
}
