package system

import (
	"math"

	"github.com/younwookim/ninja/internal/domain/entity"
	"github.com/younwookim/ninja/internal/infrastructure/config"
)

// edge keeps a body flush against a tile from counting as inside it
const edge = 1e-6

// PhysicsSystem integrates arcade bodies against the stage tiles
type PhysicsSystem struct {
	config *config.PhysicsSettings
	stage  *entity.Stage
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.PhysicsSettings, stage *entity.Stage) *PhysicsSystem {
	return &PhysicsSystem{
		config: cfg,
		stage:  stage,
	}
}

// WallContact is a climbable wall a body ran into this step.
// Dir is the side of the wall relative to the body.
type WallContact struct {
	Wall entity.WallID
	Dir  int
}

// Update steps one body: gravity, acceleration, then movement with tile
// collision on each axis. Contact flags are rebuilt from scratch.
func (s *PhysicsSystem) Update(b *entity.Body, dt float64) (WallContact, bool) {
	if !b.Enabled {
		return WallContact{}, false
	}
	b.ResetContacts()

	s.applyGravity(b, dt)
	b.VX += b.AX * dt
	b.VY += b.AY * dt

	contact, hit := s.moveX(b, b.VX*dt)
	s.moveY(b, b.VY*dt)
	return contact, hit
}

// applyGravity applies gravity acceleration to the body
func (s *PhysicsSystem) applyGravity(b *entity.Body, dt float64) {
	if !b.AllowGravity {
		return
	}
	b.VY += s.config.Gravity * dt

	// Clamp to max fall speed
	if s.config.MaxFallSpeed > 0 && b.VY > s.config.MaxFallSpeed {
		b.VY = s.config.MaxFallSpeed
	}
}

// moveX moves the body horizontally and stops it at the first solid column
func (s *PhysicsSystem) moveX(b *entity.Body, dx float64) (WallContact, bool) {
	if dx == 0 {
		return WallContact{}, false
	}
	b.X += dx

	ts := float64(s.stage.TileSize)
	var col int
	if dx > 0 {
		col = tileIndex(b.X+b.W-edge, ts)
	} else {
		col = tileIndex(b.X, ts)
	}

	top := tileIndex(b.Y, ts)
	bottom := tileIndex(b.Y+b.H-edge, ts)
	for row := top; row <= bottom; row++ {
		tile := s.stage.GetTile(col, row)
		if !tile.Solid {
			continue
		}

		dir := 1
		if dx > 0 {
			b.X = float64(col)*ts - b.W
			b.Touching.Right = true
		} else {
			b.X = float64(col+1) * ts
			b.Touching.Left = true
			dir = -1
		}
		b.VX = 0

		if tile.Type != entity.TileWall {
			return WallContact{}, false
		}
		wall, ok := s.stage.WallAt((float64(col)+0.5)*ts, (float64(row)+0.5)*ts)
		return WallContact{Wall: wall, Dir: dir}, ok
	}
	return WallContact{}, false
}

// moveY moves the body vertically; landing sets OnFloor
func (s *PhysicsSystem) moveY(b *entity.Body, dy float64) {
	if dy == 0 {
		return
	}
	b.Y += dy

	ts := float64(s.stage.TileSize)
	var row int
	if dy > 0 {
		row = tileIndex(b.Y+b.H-edge, ts)
	} else {
		row = tileIndex(b.Y, ts)
	}

	left := tileIndex(b.X, ts)
	right := tileIndex(b.X+b.W-edge, ts)
	for col := left; col <= right; col++ {
		if !s.stage.GetTile(col, row).Solid {
			continue
		}
		if dy > 0 {
			b.Y = float64(row)*ts - b.H
			b.OnFloor = true
			b.Touching.Down = true
		} else {
			b.Y = float64(row+1) * ts
			b.Touching.Up = true
		}
		b.VY = 0
		return
	}
}

func tileIndex(p, ts float64) int {
	return int(math.Floor(p / ts))
}
