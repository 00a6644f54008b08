package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/blockfall/internal/application/replay"
	"github.com/younwookim/blockfall/internal/application/system"
	"github.com/younwookim/blockfall/internal/infrastructure/config"
)

// createTestRecording records a short session the way the live game does
func createTestRecording(seed int64, preset string, inputs []system.InputState) *replay.ReplayData {
	r := replay.NewRecorder(seed, "test-session", preset, 60)
	for _, in := range inputs {
		r.RecordFrame(in)
	}
	data := r.Data()
	return &data
}

func createTestInputs() []system.InputState {
	inputs := []system.InputState{
		{Left: true}, {}, {RotateCW: true}, {HardDrop: true},
		{Right: true}, {}, {Right: true}, {HardDrop: true},
		{Hold: true}, {SoftDrop: true}, {SoftDrop: true}, {HardDrop: true},
	}
	for i := 0; i < 120; i++ {
		inputs = append(inputs, system.InputState{})
	}
	return inputs
}

func TestLoadConfig_Embedded(t *testing.T) {
	loader, cfg, err := loadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Rules.Field.Width)
	assert.Equal(t, 20, cfg.Rules.Field.Height)
	assert.NotEmpty(t, cfg.Theme.Palette)

	preset, err := loadPreset(loader, "staircase")
	require.NoError(t, err)
	assert.Equal(t, "staircase", preset.ID)
}

func TestLoadConfig_Directory(t *testing.T) {
	_, cfg, err := loadConfig("configs")
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.Rules.Display.Framerate)
}

func TestLoadConfig_MissingDirectory(t *testing.T) {
	_, _, err := loadConfig(t.TempDir())
	assert.Error(t, err)
}

func TestLoadPreset(t *testing.T) {
	loader, _, err := loadConfig("")
	require.NoError(t, err)

	preset, err := loadPreset(loader, "")
	assert.NoError(t, err)
	assert.Nil(t, preset)

	_, err = loadPreset(loader, "no-such-preset")
	assert.Error(t, err)
}

func TestRunReplay_Deterministic(t *testing.T) {
	_, cfg, err := loadConfig("")
	require.NoError(t, err)

	data := createTestRecording(12345, "", createTestInputs())

	first, err := runReplay(cfg, nil, data)
	require.NoError(t, err)
	second, err := runReplay(cfg, nil, data)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 3, first.Pieces)
	assert.Equal(t, 1, first.Games)
	assert.Equal(t, data.Length, first.Frames)
	assert.Equal(t, "test-session", first.Session)
	assert.False(t, first.GameOver)
}

func TestRunReplay_WithPreset(t *testing.T) {
	loader, cfg, err := loadConfig("")
	require.NoError(t, err)
	preset, err := loadPreset(loader, "staircase")
	require.NoError(t, err)

	data := createTestRecording(7, "staircase", []system.InputState{{}, {}, {}})

	result, err := runReplay(cfg, preset, data)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Pieces)
	assert.Equal(t, 0, result.Score)
}

func TestRunReplay_FallsBackToConfigTPS(t *testing.T) {
	_, cfg, err := loadConfig("")
	require.NoError(t, err)

	data := createTestRecording(1, "", []system.InputState{{HardDrop: true}})
	data.TPS = 0

	result, err := runReplay(cfg, nil, data)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Pieces)
}

func TestTickRate(t *testing.T) {
	cfg := &config.GameConfig{Rules: config.DefaultRules()}
	cfg.Rules.Display.Framerate = 60

	tests := []struct {
		name string
		data *replay.ReplayData
		want int
	}{
		{"live play", nil, 60},
		{"recorded rate", &replay.ReplayData{TPS: 30}, 30},
		{"rate missing", &replay.ReplayData{}, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tickRate(cfg, tt.data))
		})
	}
}

func TestRunReplay_UsesRecordedRate(t *testing.T) {
	_, cfg, err := loadConfig("")
	require.NoError(t, err)

	data := createTestRecording(5, "", make([]system.InputState, 20))
	data.TPS = 20

	result, err := runReplay(cfg, nil, data)
	require.NoError(t, err)

	// 20 ticks at 20 TPS is one second of game time
	assert.Equal(t, "1s", result.Duration)
}

func TestRunReplay_InvalidTPS(t *testing.T) {
	cfg := &config.GameConfig{Rules: config.DefaultRules()}
	cfg.Rules.Display.Framerate = 0

	data := createTestRecording(1, "", []system.InputState{{}})
	data.TPS = 0

	_, err := runReplay(cfg, nil, data)
	assert.Error(t, err)
}

func TestReplayResult_EncodesForOutput(t *testing.T) {
	out, err := json.MarshalIndent(ReplayResult{Session: "calm-heron", Seed: 3, Frames: 10, Duration: "1s", Games: 1, Score: 400, Lines: 2, Pieces: 9}, "", "  ")
	require.NoError(t, err)

	assert.JSONEq(t, `{"session":"calm-heron","seed":3,"frames":10,"duration":"1s","games":1,"score":400,"lines":2,"pieces":9,"gameOver":false}`, string(out))
}
