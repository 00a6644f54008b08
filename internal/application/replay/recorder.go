package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/blockfall/internal/application/system"
)

// Recorder handles input recording for replay
type Recorder struct {
	data      ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a new recorder with seed for deterministic replay
func NewRecorder(seed int64, session, preset string, tps int) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   FormatVersion,
			Seed:      seed,
			Session:   session,
			Preset:    preset,
			StartTime: time.Now().Format(time.RFC3339),
			TPS:       tps,
			Frames:    make([]FrameInput, 0, 512),
		},
		recording: true,
	}
}

// RecordFrame records a single frame's input. Idle frames only advance
// the frame counter.
func (r *Recorder) RecordFrame(input system.InputState) {
	if !r.recording {
		return
	}
	if !input.IsIdle() {
		r.data.Frames = append(r.data.Frames, toFrame(r.frame, input))
	}
	r.frame++
	r.data.Length = r.frame
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if r.frame == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames, idle ones included
func (r *Recorder) FrameCount() int {
	return r.frame
}

// Data returns the replay data recorded so far
func (r *Recorder) Data() ReplayData {
	return r.data
}

// GenerateFilename creates a filename from the session name and current time
func GenerateFilename(session string) string {
	return fmt.Sprintf("replay_%s_%s.json", session, time.Now().Format("20060102_150405"))
}
