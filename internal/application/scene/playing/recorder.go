package playing

import (
	"fmt"
	"time"

	"github.com/younwookim/ninja/internal/application/replay"
	"github.com/younwookim/ninja/internal/domain/entity"
)

// Recorder captures the held buttons of every player, one entry per
// simulated frame
type Recorder struct {
	data      replay.ReplayData
	recording bool
}

// NewRecorder starts recording a session on a stage
func NewRecorder(stage string, players int) *Recorder {
	return &Recorder{
		data: replay.ReplayData{
			Version:   replay.FormatVersion,
			Stage:     stage,
			Players:   players,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]replay.FrameInput, 0, 3600), // ~1 minute at 60fps
		},
		recording: true,
	}
}

// RecordFrame appends one frame. held is cut or zero-padded to the player
// count; a frame where nobody holds anything is stored without buttons.
func (r *Recorder) RecordFrame(held []entity.ButtonSet) {
	if !r.recording {
		return
	}

	fi := replay.FrameInput{F: len(r.data.Frames)}
	if anyHeld(held) {
		fi.P = make([]entity.ButtonSet, r.data.Players)
		copy(fi.P, held)
	}
	r.data.Frames = append(r.data.Frames, fi)
}

func anyHeld(held []entity.ButtonSet) bool {
	for _, s := range held {
		if s != 0 {
			return true
		}
	}
	return false
}

// Save writes the recording so far
func (r *Recorder) Save(filename string) error {
	return replay.SaveReplay(filename, r.data)
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// GetData returns the replay data (for testing)
func (r *Recorder) GetData() replay.ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
