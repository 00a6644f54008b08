package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kamstrup/intmap"

	"github.com/younwookim/blockfall/internal/application/system"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	index *intmap.Map[int, int] // frame number -> position in data.Frames
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	index := intmap.New[int, int](len(data.Frames))
	length := data.Length
	for i, fi := range data.Frames {
		index.Put(fi.F, i)
		if fi.F >= length {
			length = fi.F + 1
		}
	}
	data.Length = length

	return &Replayer{
		data:  data,
		index: index,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported replay version %q", data.Version)
	}

	return &data, nil
}

// GetInput returns the input for the current frame and advances.
// It returns false once every recorded frame has been played.
func (r *Replayer) GetInput() (system.InputState, bool) {
	if r.frame >= r.data.Length {
		return system.InputState{}, false
	}

	f := r.frame
	r.frame++

	i, ok := r.index.Get(f)
	if !ok {
		return system.InputState{}, true
	}
	return r.data.Frames[i].input(), true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return r.data.Length
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Data returns the replay data being played
func (r *Replayer) Data() ReplayData {
	return r.data
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}
