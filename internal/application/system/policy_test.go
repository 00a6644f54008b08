package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/blockfall/internal/domain/entity"
	"github.com/younwookim/blockfall/internal/infrastructure/config"
)

const frame = time.Second / 60

func createTestPolicy() *InputPolicy {
	return NewInputPolicy(config.TimingConfig{
		GravityMs:        1000,
		MoveRepeatMs:     200,
		SoftDropRepeatMs: 50,
	})
}

func countMoves(cmds []Command) int {
	n := 0
	for _, c := range cmds {
		if _, ok := c.(MoveCommand); ok {
			n++
		}
	}
	return n
}

func TestInputPolicy_MoveRateLimited(t *testing.T) {
	p := createTestPolicy()

	moves := 0
	// hold right for one second at 60 ticks per second
	for i := 0; i < 60; i++ {
		moves += countMoves(p.Commands(time.Duration(i)*frame, InputState{Right: true}))
	}

	// immediate move, then one per 200ms window
	assert.Equal(t, 5, moves)
}

func TestInputPolicy_MoveRateIndependentOfTickRate(t *testing.T) {
	fast := createTestPolicy()
	slow := createTestPolicy()

	fastMoves, slowMoves := 0, 0
	for i := 0; i < 240; i++ {
		fastMoves += countMoves(fast.Commands(time.Duration(i)*time.Second/240, InputState{Left: true}))
	}
	for i := 0; i < 30; i++ {
		slowMoves += countMoves(slow.Commands(time.Duration(i)*time.Second/30, InputState{Left: true}))
	}

	assert.Equal(t, fastMoves, slowMoves)
}

func TestInputPolicy_MoveDirection(t *testing.T) {
	tests := []struct {
		name  string
		input InputState
		want  int
	}{
		{"left", InputState{Left: true}, -1},
		{"right", InputState{Right: true}, 1},
		{"both prefers left", InputState{Left: true, Right: true}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmds := createTestPolicy().Commands(0, tt.input)
			assert.Equal(t, []Command{MoveCommand{DCol: tt.want}}, cmds)
		})
	}
}

func TestInputPolicy_EdgeCommandsPassThrough(t *testing.T) {
	p := createTestPolicy()

	cmds := p.Commands(0, InputState{RotateCW: true, RotateCCW: true, Hold: true, HardDrop: true})

	assert.Equal(t, []Command{
		HardDropCommand{},
		RotateCommand{Direction: entity.Clockwise},
		RotateCommand{Direction: entity.CounterClockwise},
		HoldCommand{},
	}, cmds)

	// edges are not throttled
	cmds = p.Commands(frame, InputState{RotateCW: true})
	assert.Equal(t, []Command{RotateCommand{Direction: entity.Clockwise}}, cmds)
}

func TestInputPolicy_Order(t *testing.T) {
	cmds := createTestPolicy().Commands(0, InputState{Right: true, SoftDrop: true, HardDrop: true, RotateCW: true})

	assert.Equal(t, []Command{
		MoveCommand{DCol: 1},
		HardDropCommand{},
		RotateCommand{Direction: entity.Clockwise},
		SoftDropCommand{},
	}, cmds)
}

func TestInputPolicy_SoftDropRateLimited(t *testing.T) {
	p := createTestPolicy()

	drops := 0
	// 10ms ticks over one second
	for i := 0; i < 100; i++ {
		for _, c := range p.Commands(time.Duration(i)*10*time.Millisecond, InputState{SoftDrop: true}) {
			if _, ok := c.(SoftDropCommand); ok {
				drops++
			}
		}
	}

	assert.Equal(t, 20, drops, "one drop per 50ms window over one second")
}

func TestInputPolicy_SoftDropEveryTickWhenUnthrottled(t *testing.T) {
	p := NewInputPolicy(config.TimingConfig{MoveRepeatMs: 200})

	for i := 0; i < 10; i++ {
		cmds := p.Commands(time.Duration(i)*frame, InputState{SoftDrop: true})
		assert.Equal(t, []Command{SoftDropCommand{}}, cmds)
	}
}

func TestInputPolicy_Idle(t *testing.T) {
	assert.Empty(t, createTestPolicy().Commands(0, InputState{}))
	assert.Empty(t, createTestPolicy().Commands(0, InputState{Pause: true, Restart: true}))
}

func TestInputPolicy_Reset(t *testing.T) {
	p := createTestPolicy()
	p.Commands(time.Second, InputState{Left: true})

	assert.Empty(t, p.Commands(time.Second+frame, InputState{Left: true}))

	p.Reset()
	assert.Len(t, p.Commands(time.Second+2*frame, InputState{Left: true}), 1)
}
