package state

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameState_String(t *testing.T) {
	tests := []struct {
		state    GameState
		expected string
	}{
		{StateSpawning, "Spawning"},
		{StateFalling, "Falling"},
		{StateLocking, "Locking"},
		{StateClearing, "Clearing"},
		{StateGameOver, "GameOver"},
		{GameState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestGameStateConstants(t *testing.T) {
	// Verify the iota ordering
	assert.Equal(t, GameState(0), StateSpawning)
	assert.Equal(t, GameState(1), StateFalling)
	assert.Equal(t, GameState(2), StateLocking)
	assert.Equal(t, GameState(3), StateClearing)
	assert.Equal(t, GameState(4), StateGameOver)
}

func TestGameState_IsTerminal(t *testing.T) {
	assert.True(t, StateGameOver.IsTerminal())
	assert.False(t, StateFalling.IsTerminal())
	assert.False(t, StateSpawning.IsTerminal())
}

func TestGameState_JSON(t *testing.T) {
	data, err := json.Marshal(struct {
		State GameState `json:"state"`
	}{StateClearing})
	require.NoError(t, err)

	assert.JSONEq(t, `{"state":"Clearing"}`, string(data))
}
