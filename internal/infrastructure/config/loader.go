package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Rules *RulesConfig
	Theme *ThemeConfig
}

// Loader loads game configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader was created for
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadRules loads rules.json
func (l *Loader) LoadRules() (*RulesConfig, error) {
	cfg := DefaultRules()
	if err := l.decode("rules.json", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadTheme loads theme.json
func (l *Loader) LoadTheme() (*ThemeConfig, error) {
	var cfg ThemeConfig
	if err := l.decode("theme.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadPreset loads a preset JSON file
func (l *Loader) LoadPreset(name string) (*PresetConfig, error) {
	var cfg PresetConfig
	if err := l.decode("presets/"+name+".json", &cfg); err != nil {
		return nil, fmt.Errorf("preset %s: %w", name, err)
	}
	return &cfg, nil
}

// LoadAll loads and validates all base configurations (rules, theme)
func (l *Loader) LoadAll() (*GameConfig, error) {
	rules, err := l.LoadRules()
	if err != nil {
		return nil, err
	}

	theme, err := l.LoadTheme()
	if err != nil {
		return nil, err
	}

	cfg := &GameConfig{
		Rules: rules,
		Theme: theme,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (l *Loader) decode(path string, v any) error {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return nil
}

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Validate rejects configurations the game cannot be built from
func (c *GameConfig) Validate() error {
	r := c.Rules
	switch {
	case r == nil:
		return fmt.Errorf("%w: missing rules", ErrInvalidConfig)
	case r.Field.Width <= 0 || r.Field.Height <= 0:
		return fmt.Errorf("%w: field %dx%d", ErrInvalidConfig, r.Field.Width, r.Field.Height)
	case r.Timing.GravityMs <= 0:
		return fmt.Errorf("%w: gravityMs must be positive", ErrInvalidConfig)
	case r.Timing.MoveRepeatMs <= 0:
		return fmt.Errorf("%w: moveRepeatMs must be positive", ErrInvalidConfig)
	case r.Timing.SoftDropRepeatMs < 0:
		return fmt.Errorf("%w: softDropRepeatMs must not be negative", ErrInvalidConfig)
	case r.Scoring.LineClearBase < 0:
		return fmt.Errorf("%w: lineClearBase must not be negative", ErrInvalidConfig)
	case r.Display.Framerate <= 0 || r.Display.CellSize <= 0:
		return fmt.Errorf("%w: framerate and cellSize must be positive", ErrInvalidConfig)
	}

	if c.Theme == nil {
		return fmt.Errorf("%w: missing theme", ErrInvalidConfig)
	}
	if len(c.Theme.Palette) == 0 {
		return fmt.Errorf("%w: empty palette", ErrInvalidConfig)
	}
	if _, err := c.Theme.Parse(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}
