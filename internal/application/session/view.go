package session

import (
	"github.com/younwookim/blockfall/internal/application/state"
	"github.com/younwookim/blockfall/internal/domain/entity"
)

// View is a read-only snapshot of a session, polled once per frame by the
// renderer and encoded as-is for spectators.
type View struct {
	Width    int              `json:"width"`
	Height   int              `json:"height"`
	Cells    [][]entity.Color `json:"cells"`
	Active   *entity.Piece    `json:"active,omitempty"`
	GhostRow int              `json:"ghostRow"`
	Hold     *entity.PieceDef `json:"hold,omitempty"`
	CanHold  bool             `json:"canHold"`
	Next     *entity.PieceDef `json:"next,omitempty"`
	Score    int              `json:"score"`
	Lines    int              `json:"lines"`
	Pieces   int              `json:"pieces"`
	State    state.GameState  `json:"state"`
	GameOver bool             `json:"gameOver"`
}

// Snapshot copies the current session state
func (s *Session) Snapshot() View {
	v := View{
		Width:    s.field.Width(),
		Height:   s.field.Height(),
		Cells:    s.field.Rows(),
		CanHold:  s.canHold,
		Score:    s.score,
		Lines:    s.lines,
		Pieces:   s.pieces,
		State:    s.state,
		GameOver: s.IsGameOver(),
	}
	if p, ok := s.controller.Piece(); ok {
		v.Active = &p
		v.GhostRow = s.controller.GhostRow()
	}
	if s.hold != nil {
		held := *s.hold
		v.Hold = &held
	}
	if s.started {
		next := s.next
		v.Next = &next
	}
	return v
}
