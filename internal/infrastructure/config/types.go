package config

import "time"

// RulesConfig is the root config for rules.json
type RulesConfig struct {
	Display DisplayConfig `json:"display"`
	Field   FieldConfig   `json:"field"`
	Timing  TimingConfig  `json:"timing"`
	Scoring ScoringConfig `json:"scoring"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
	CellSize     int `json:"cellSize"` // Pixels per playfield cell
}

// FieldConfig sets the playfield size in cells
type FieldConfig struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// TimingConfig holds the fixed windows of the input/timing policy, in milliseconds
type TimingConfig struct {
	GravityMs        int `json:"gravityMs"`        // Interval between forced drops
	MoveRepeatMs     int `json:"moveRepeatMs"`     // Minimum gap between held horizontal moves
	SoftDropRepeatMs int `json:"softDropRepeatMs"` // Minimum gap between held soft drops (0 = every tick)
}

// Gravity returns the gravity interval
func (t TimingConfig) Gravity() time.Duration {
	return time.Duration(t.GravityMs) * time.Millisecond
}

// MoveRepeat returns the horizontal move window
func (t TimingConfig) MoveRepeat() time.Duration {
	return time.Duration(t.MoveRepeatMs) * time.Millisecond
}

// SoftDropRepeat returns the soft drop window
func (t TimingConfig) SoftDropRepeat() time.Duration {
	return time.Duration(t.SoftDropRepeatMs) * time.Millisecond
}

type ScoringConfig struct {
	// LineClearBase is multiplied by the square of the rows cleared at once
	LineClearBase int `json:"lineClearBase"`
}

// ThemeConfig is the root config for theme.json
type ThemeConfig struct {
	Palette     []string `json:"palette"` // Hex colors, one per color token
	Background  string   `json:"background"`
	Grid        string   `json:"grid"`
	Ghost       string   `json:"ghost"`
	Compliments []string `json:"compliments"`
}

// DefaultRules returns the rules used when no rules.json is available
func DefaultRules() *RulesConfig {
	return &RulesConfig{
		Display: DisplayConfig{
			ScreenWidth:  480,
			ScreenHeight: 640,
			Scale:        1,
			Framerate:    60,
			CellSize:     30,
		},
		Field: FieldConfig{
			Width:  10,
			Height: 20,
		},
		Timing: TimingConfig{
			GravityMs:        1000,
			MoveRepeatMs:     200,
			SoftDropRepeatMs: 50,
		},
		Scoring: ScoringConfig{
			LineClearBase: 100,
		},
	}
}
