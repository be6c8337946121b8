package replay

import (
	"fmt"

	"github.com/younwookim/ninja/internal/domain/entity"
)

// FormatVersion is written into every replay file
const FormatVersion = "2.0"

// FrameInput records the held buttons of every player for a single frame
type FrameInput struct {
	F int                `json:"f"`           // Frame number
	P []entity.ButtonSet `json:"p,omitempty"` // Held buttons, one per player slot
}

// ReplayData contains all data needed to replay a game session.
// The simulation is deterministic given the stage, the tuning and these
// frames.
type ReplayData struct {
	Version   string       `json:"version"`
	Stage     string       `json:"stage"`
	Players   int          `json:"players"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// Validate checks the player count and that frames are numbered in order
// with at most one button set per player
func (d *ReplayData) Validate() error {
	if d.Players < 1 || d.Players > entity.MaxPlayers {
		return fmt.Errorf("replay has %d players, want 1..%d", d.Players, entity.MaxPlayers)
	}
	for i, fi := range d.Frames {
		if fi.F != i {
			return fmt.Errorf("frame %d is numbered %d", i, fi.F)
		}
		if len(fi.P) > d.Players {
			return fmt.Errorf("frame %d has %d button sets for %d players", i, len(fi.P), d.Players)
		}
	}
	return nil
}
