package session

import (
	"time"

	"github.com/younwookim/blockfall/internal/application/state"
	"github.com/younwookim/blockfall/internal/application/system"
	"github.com/younwookim/blockfall/internal/domain/entity"
	"github.com/younwookim/blockfall/internal/infrastructure/config"
)

// PieceSource hands out the definition of the next piece to spawn
type PieceSource interface {
	RandomPiece() entity.PieceDef
}

// Session runs one game: spawn, fall, lock, clear, repeat until a spawn
// collides. It is driven entirely by the clock passed to Update/Tick and is
// not safe for concurrent use.
type Session struct {
	field      *entity.Playfield
	controller *system.PieceController
	source     PieceSource
	gravity    *system.GravityTimer
	lineBase   int

	state   state.GameState
	started bool
	score   int
	lines   int
	pieces  int
	next    entity.PieceDef
	hold    *entity.PieceDef
	canHold bool

	// Event notifications for the presentation layer
	OnLock         func(p entity.Piece)
	OnLinesCleared func(n int, rows []int)
	OnGameOver     func()
	OnHold         func(held entity.PieceDef)
}

// NewSession creates a session over field. Call Start before the first Update.
func NewSession(field *entity.Playfield, source PieceSource, timing config.TimingConfig, scoring config.ScoringConfig) *Session {
	return &Session{
		field:      field,
		controller: system.NewPieceController(field),
		source:     source,
		gravity:    system.NewGravityTimer(timing.Gravity()),
		lineBase:   scoring.LineClearBase,
		state:      state.StateSpawning,
		canHold:    true,
	}
}

// Start draws the preview, spawns the first piece and arms gravity at now.
// Calling it again has no effect.
func (s *Session) Start(now time.Duration) {
	if s.started {
		return
	}
	s.started = true
	s.next = s.source.RandomPiece()
	s.gravity.Reset(now)
	s.spawn()
}

// Update runs one tick: commands first, then gravity. Once a piece locks the
// rest of the tick is skipped, so at most one lock happens per tick.
func (s *Session) Update(now time.Duration, cmds []system.Command) {
	if !s.active() {
		return
	}
	for _, cmd := range cmds {
		if s.Apply(cmd) {
			return
		}
		if !s.active() {
			return
		}
	}
	s.Tick(now)
}

// Apply executes one command against the live piece and reports whether it
// caused a lock.
func (s *Session) Apply(cmd system.Command) bool {
	if !s.active() {
		return false
	}

	switch c := cmd.(type) {
	case system.MoveCommand:
		s.controller.MoveBy(c.DCol, 0)
	case system.RotateCommand:
		s.controller.Rotate(c.Direction)
	case system.SoftDropCommand:
		return s.stepDown()
	case system.HardDropCommand:
		return s.HardDrop() >= 0
	case system.HoldCommand:
		s.Hold()
	}
	return false
}

// Tick applies gravity if its interval has elapsed and reports whether the
// piece locked.
func (s *Session) Tick(now time.Duration) bool {
	if !s.active() || !s.gravity.Due(now) {
		return false
	}
	return s.stepDown()
}

// HardDrop drops the live piece to its landing row and locks it at once.
// It returns the rows descended, or -1 when there is no live piece.
func (s *Session) HardDrop() int {
	if !s.active() {
		return -1
	}
	rows := s.controller.DropToBottom()
	s.lockAndClear()
	return rows
}

// Hold sets the live piece aside. An empty slot takes the piece and a fresh
// one spawns; an occupied slot swaps, placing the held piece at the spawn
// origin without a collision check. Only one hold is allowed per lock cycle.
func (s *Session) Hold() bool {
	if !s.active() || !s.canHold {
		return false
	}
	live, ok := s.controller.Take()
	if !ok {
		return false
	}

	def := live.Def()
	prev := s.hold
	s.hold = &def
	s.canHold = false

	if s.OnHold != nil {
		s.OnHold(def)
	}

	if prev == nil {
		s.state = state.StateSpawning
		s.spawn()
		return true
	}
	col, row := s.spawnOrigin()
	s.controller.Place(entity.NewPiece(*prev, col, row))
	return true
}

// stepDown moves the piece one row; when it cannot, the piece locks
func (s *Session) stepDown() bool {
	if s.controller.MoveBy(0, 1) {
		return false
	}
	s.lockAndClear()
	return true
}

// lockAndClear runs Locking, Clearing and the following spawn
func (s *Session) lockAndClear() {
	s.state = state.StateLocking
	p, ok := s.controller.Take()
	if !ok {
		return
	}
	s.field.Lock(p.Shape, p.Col, p.Row, p.Color)
	s.pieces++
	if s.OnLock != nil {
		s.OnLock(p)
	}

	s.state = state.StateClearing
	n := s.field.ClearFullRows()
	if n > 0 {
		s.score += n * n * s.lineBase
		s.lines += n
		if s.OnLinesCleared != nil {
			s.OnLinesCleared(n, s.field.ClearedRows())
		}
	}
	s.canHold = true

	s.state = state.StateSpawning
	s.spawn()
}

// spawn places the preview piece at the spawn origin, or ends the game when
// that position is blocked.
func (s *Session) spawn() {
	def := s.next
	col, row := s.spawnOrigin()
	if s.field.Collides(def.Shape, col, row) {
		s.state = state.StateGameOver
		if s.OnGameOver != nil {
			s.OnGameOver()
		}
		return
	}
	s.next = s.source.RandomPiece()
	s.controller.Place(entity.NewPiece(def, col, row))
	s.state = state.StateFalling
}

func (s *Session) spawnOrigin() (col, row int) {
	return s.field.Width()/2 - 1, 0
}

func (s *Session) active() bool {
	return s.started && s.state == state.StateFalling
}

// State returns the current phase
func (s *Session) State() state.GameState {
	return s.state
}

// IsGameOver reports whether the session has ended
func (s *Session) IsGameOver() bool {
	return s.state == state.StateGameOver
}

// Score returns the current score
func (s *Session) Score() int {
	return s.score
}

// Lines returns the total number of rows cleared
func (s *Session) Lines() int {
	return s.lines
}

// CanHold reports whether a hold is allowed in the current cycle
func (s *Session) CanHold() bool {
	return s.canHold
}
