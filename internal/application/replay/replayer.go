package replay

import (
	"time"

	"github.com/younwookim/ninja/internal/domain/entity"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// Next returns the held buttons of every player for the current frame and
// advances. Returns false once the recording is exhausted.
func (r *Replayer) Next() ([]entity.ButtonSet, bool) {
	if r.frame >= len(r.data.Frames) {
		return nil, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	out := make([]entity.ButtonSet, r.data.Players)
	copy(out, fi.P)
	return out, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Players returns the number of recorded player slots
func (r *Replayer) Players() int {
	return r.data.Players
}

// Stage returns the name of the recorded stage
func (r *Replayer) Stage() string {
	return r.data.Stage
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing: one player holding
// the same buttons for every frame
func CreateTestReplayData(frames int, held entity.ButtonSet) ReplayData {
	data := ReplayData{
		Version:   FormatVersion,
		Stage:     "test",
		Players:   1,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{
			F: i,
			P: []entity.ButtonSet{held},
		}
	}

	return data
}
