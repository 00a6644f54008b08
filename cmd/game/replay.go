package main

import (
	"fmt"
	"time"

	"github.com/younwookim/blockfall/internal/application/replay"
	"github.com/younwookim/blockfall/internal/application/scene/playing"
	"github.com/younwookim/blockfall/internal/infrastructure/config"
)

// ReplayResult summarizes a headless replay run
type ReplayResult struct {
	Session  string `json:"session"`
	Seed     int64  `json:"seed"`
	Frames   int    `json:"frames"`
	Duration string `json:"duration"` // Game time, pauses excluded
	Games    int    `json:"games"`
	Score    int    `json:"score"`
	Lines    int    `json:"lines"`
	Pieces   int    `json:"pieces"`
	GameOver bool   `json:"gameOver"`
}

// tickRate returns the rate a replay was recorded at, or the configured
// framerate for live play and recordings that do not carry one
func tickRate(cfg *config.GameConfig, data *replay.ReplayData) int {
	if data != nil && data.TPS > 0 {
		return data.TPS
	}
	return cfg.Rules.Display.Framerate
}

// runReplay plays data to the end without a window. The scene runs the same
// code path as the windowed game, only the input source differs.
func runReplay(cfg *config.GameConfig, preset *config.PresetConfig, data *replay.ReplayData) (ReplayResult, error) {
	tps := tickRate(cfg, data)
	if tps <= 0 {
		return ReplayResult{}, fmt.Errorf("invalid tick rate %d", tps)
	}
	tick := time.Second / time.Duration(tps)

	replayer := replay.NewReplayer(*data)
	scene, err := playing.New(cfg, playing.Options{
		Seed:   data.Seed,
		Name:   data.Session,
		Preset: preset,
		Input:  replayer,
	})
	if err != nil {
		return ReplayResult{}, err
	}

	for !scene.IsFinished() {
		if _, err := scene.Update(tick); err != nil {
			return ReplayResult{}, fmt.Errorf("frame %d: %w", replayer.CurrentFrame(), err)
		}
	}

	v := scene.Snapshot()
	return ReplayResult{
		Session:  scene.Name(),
		Seed:     data.Seed,
		Frames:   replayer.TotalFrames(),
		Duration: scene.Clock().String(),
		Games:    scene.Games(),
		Score:    v.Score,
		Lines:    v.Lines,
		Pieces:   v.Pieces,
		GameOver: v.GameOver,
	}, nil
}
