package replay

import (
	petname "github.com/dustinkirkland/golang-petname"

	"github.com/younwookim/blockfall/internal/application/system"
)

// FormatVersion is written into every recording
const FormatVersion = "2.0"

// FrameInput records input state for a single frame.
// Only frames with some input are stored; missing frames are idle.
type FrameInput struct {
	F   int  `json:"f"`             // Frame number
	L   bool `json:"l,omitempty"`   // Left
	R   bool `json:"r,omitempty"`   // Right
	SD  bool `json:"sd,omitempty"`  // SoftDrop
	HD  bool `json:"hd,omitempty"`  // HardDrop
	CW  bool `json:"cw,omitempty"`  // RotateCW
	CCW bool `json:"ccw,omitempty"` // RotateCCW
	H   bool `json:"h,omitempty"`   // Hold
	P   bool `json:"p,omitempty"`   // Pause
	RS  bool `json:"rs,omitempty"`  // Restart
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Session   string       `json:"session"`
	Preset    string       `json:"preset,omitempty"`
	StartTime string       `json:"startTime"`
	TPS       int          `json:"tps"`
	Length    int          `json:"length"` // Total frames, idle ones included
	Frames    []FrameInput `json:"frames"`
}

// NewSessionName returns a human-friendly name for a game session
func NewSessionName() string {
	return petname.Generate(2, "-")
}

func toFrame(f int, in system.InputState) FrameInput {
	return FrameInput{
		F:   f,
		L:   in.Left,
		R:   in.Right,
		SD:  in.SoftDrop,
		HD:  in.HardDrop,
		CW:  in.RotateCW,
		CCW: in.RotateCCW,
		H:   in.Hold,
		P:   in.Pause,
		RS:  in.Restart,
	}
}

func (fi FrameInput) input() system.InputState {
	return system.InputState{
		Left:      fi.L,
		Right:     fi.R,
		SoftDrop:  fi.SD,
		HardDrop:  fi.HD,
		RotateCW:  fi.CW,
		RotateCCW: fi.CCW,
		Hold:      fi.H,
		Pause:     fi.P,
		Restart:   fi.RS,
	}
}
