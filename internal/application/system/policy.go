package system

import (
	"time"

	"github.com/younwookim/blockfall/internal/domain/entity"
	"github.com/younwookim/blockfall/internal/infrastructure/config"
)

// InputPolicy turns per-tick input into session commands.
// Held horizontal movement and soft drop are throttled to fixed windows so the
// piece speed does not depend on the frame rate.
type InputPolicy struct {
	moveRepeat     time.Duration
	softDropRepeat time.Duration

	lastMove     time.Duration
	lastSoftDrop time.Duration
	moved        bool
	softDropped  bool
}

// NewInputPolicy creates a policy from the timing config
func NewInputPolicy(cfg config.TimingConfig) *InputPolicy {
	return &InputPolicy{
		moveRepeat:     cfg.MoveRepeat(),
		softDropRepeat: cfg.SoftDropRepeat(),
	}
}

// Commands returns the commands for the tick at now, in the order the session
// applies them: move, hard drop, rotations, hold, soft drop.
func (p *InputPolicy) Commands(now time.Duration, in InputState) []Command {
	var cmds []Command

	if in.Left || in.Right {
		if !p.moved || now-p.lastMove >= p.moveRepeat {
			dCol := 1
			if in.Left {
				dCol = -1
			}
			cmds = append(cmds, MoveCommand{DCol: dCol})
			p.lastMove = now
			p.moved = true
		}
	}

	// A hard drop locks, so rotations and hold on the same tick never apply
	if in.HardDrop {
		cmds = append(cmds, HardDropCommand{})
	}
	if in.RotateCW {
		cmds = append(cmds, RotateCommand{Direction: entity.Clockwise})
	}
	if in.RotateCCW {
		cmds = append(cmds, RotateCommand{Direction: entity.CounterClockwise})
	}
	if in.Hold {
		cmds = append(cmds, HoldCommand{})
	}

	if in.SoftDrop {
		if !p.softDropped || now-p.lastSoftDrop >= p.softDropRepeat {
			cmds = append(cmds, SoftDropCommand{})
			p.lastSoftDrop = now
			p.softDropped = true
		}
	}

	return cmds
}

// Reset forgets the throttling history
func (p *InputPolicy) Reset() {
	p.lastMove = 0
	p.lastSoftDrop = 0
	p.moved = false
	p.softDropped = false
}
