// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/younwookim/blockfall/internal/application/replay"
	"github.com/younwookim/blockfall/internal/application/scene"
	"github.com/younwookim/blockfall/internal/application/session"
	"github.com/younwookim/blockfall/internal/application/system"
	"github.com/younwookim/blockfall/internal/domain/entity"
	"github.com/younwookim/blockfall/internal/infrastructure/config"
)

// InputSource supplies one tick of input. ok is false once the source is
// exhausted, which only happens for recordings.
type InputSource interface {
	GetInput() (in system.InputState, ok bool)
}

// Publisher receives session snapshots for remote viewers
type Publisher interface {
	Publish(v any)
}

// Keyboard adapts the live input system to an InputSource
type Keyboard struct {
	input *system.InputSystem
}

// NewKeyboard creates a keyboard input source
func NewKeyboard() *Keyboard {
	return &Keyboard{input: system.NewInputSystem()}
}

// GetInput reads the keyboard; it never runs out
func (k *Keyboard) GetInput() (system.InputState, bool) {
	return k.input.GetInput(), true
}

// Options configures a Playing scene
type Options struct {
	Seed       int64
	Name       string               // Session name shown to spectators and in recordings
	Preset     *config.PresetConfig // Starting garbage, nil for an empty field
	Input      InputSource
	RecordPath string // Empty disables recording
	Publisher  Publisher
}

// Playing is the main gameplay scene
type Playing struct {
	config  *config.GameConfig
	colors  *config.Colors
	preset  *config.PresetConfig
	name    string
	input   InputSource
	policy  *system.InputPolicy
	catalog *entity.Catalog
	session *session.Session
	screenW int
	screenH int

	// Scene clock; stops while paused
	clock    time.Duration
	ticks    int
	paused   bool
	finished bool // recording exhausted
	games    int

	flavor *flavor

	// Deterministic RNG
	seed int64

	// Input recording
	recorder   *replay.Recorder
	recordPath string

	publisher    Publisher
	publishEvery int
}

// New creates a new Playing scene and starts the first game.
func New(cfg *config.GameConfig, opts Options) (*Playing, error) {
	colors, err := cfg.Theme.Parse()
	if err != nil {
		return nil, fmt.Errorf("failed to parse theme: %w", err)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	catalog, err := entity.NewCatalog(rng, len(colors.Palette))
	if err != nil {
		return nil, err
	}

	input := opts.Input
	if input == nil {
		input = NewKeyboard()
	}
	name := opts.Name
	if name == "" {
		name = replay.NewSessionName()
	}

	display := cfg.Rules.Display
	p := &Playing{
		config:       cfg,
		colors:       colors,
		preset:       opts.Preset,
		name:         name,
		input:        input,
		policy:       system.NewInputPolicy(cfg.Rules.Timing),
		catalog:      catalog,
		screenW:      display.ScreenWidth,
		screenH:      display.ScreenHeight,
		flavor:       newFlavor(cfg.Theme.Compliments, opts.Seed),
		seed:         opts.Seed,
		recordPath:   opts.RecordPath,
		publisher:    opts.Publisher,
		publishEvery: max(display.Framerate/10, 1),
	}

	if opts.RecordPath != "" {
		presetID := ""
		if opts.Preset != nil {
			presetID = opts.Preset.ID
		}
		p.recorder = replay.NewRecorder(opts.Seed, name, presetID, display.Framerate)
		log.Printf("Recording enabled: %s (seed: %d)", opts.RecordPath, opts.Seed)
	}

	if err := p.newGame(); err != nil {
		return nil, err
	}
	return p, nil
}

// newGame builds a fresh field and session. The catalog keeps drawing from
// the same RNG so a restart inside a recording replays identically.
func (p *Playing) newGame() error {
	field, err := system.LoadPlayfield(p.config.Rules.Field, p.preset)
	if err != nil {
		return fmt.Errorf("failed to build playfield: %w", err)
	}

	s := session.NewSession(field, p.catalog, p.config.Rules.Timing, p.config.Rules.Scoring)
	s.OnLock = func(entity.Piece) {
		p.flavor.compliment()
	}
	s.OnLinesCleared = func(n int, rows []int) {
		p.flavor.flash(rows)
	}
	s.OnGameOver = func() {
		log.Printf("Game over: %s score %d, %d lines", p.name, s.Score(), s.Lines())
		p.saveRecording()
	}

	p.session = s
	p.policy.Reset()
	p.flavor.reset()
	p.games++
	s.Start(p.clock)
	p.publish()
	return nil
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt time.Duration) (scene.Scene, error) {
	if p.finished {
		return nil, nil
	}

	input, ok := p.input.GetInput()
	if !ok {
		p.finished = true
		log.Printf("Replay finished: score %d", p.session.Score())
		return nil, nil
	}

	// Record input if recording is enabled
	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}

	p.ticks++

	if p.session.IsGameOver() {
		if input.Restart {
			if err := p.newGame(); err != nil {
				return nil, err
			}
		}
		return nil, nil
	}

	if input.Pause {
		p.paused = !p.paused
	}
	if p.paused {
		return nil, nil
	}

	p.clock += dt
	p.session.Update(p.clock, p.policy.Commands(p.clock, input))
	p.flavor.update(dt)

	if p.ticks%p.publishEvery == 0 {
		p.publish()
	}

	return nil, nil // nil = stay on this scene
}

// OnEnter implements scene.Scene
func (p *Playing) OnEnter() {}

// OnExit stops and flushes the recording (implements scene.Scene)
func (p *Playing) OnExit() {
	if p.recorder != nil {
		p.recorder.Stop()
	}
	p.saveRecording()
}

func (p *Playing) publish() {
	if p.publisher == nil {
		return
	}
	p.publisher.Publish(spectatorFrame{Session: p.name, Game: p.games, View: p.session.Snapshot()})
}

func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	if err := p.recorder.Save(p.recordPath); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", p.recordPath, p.recorder.FrameCount())
	}
}

// spectatorFrame is what remote viewers receive
type spectatorFrame struct {
	Session string       `json:"session"`
	Game    int          `json:"game"`
	View    session.View `json:"view"`
}

// Snapshot returns the current session view
func (p *Playing) Snapshot() session.View {
	return p.session.Snapshot()
}

// Seed returns the seed the piece sequence is drawn from
func (p *Playing) Seed() int64 {
	return p.seed
}

// Name returns the session name
func (p *Playing) Name() string {
	return p.name
}

// IsRecording reports whether input is still being recorded
func (p *Playing) IsRecording() bool {
	return p.recorder != nil && p.recorder.IsRecording()
}

// IsFinished reports whether a replayed recording has run out
func (p *Playing) IsFinished() bool {
	return p.finished
}

// Games returns how many games have been started, restarts included
func (p *Playing) Games() int {
	return p.games
}

// Clock returns the scene clock
func (p *Playing) Clock() time.Duration {
	return p.clock
}
