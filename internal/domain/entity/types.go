package entity

import "math"

// TileType represents the type of a tile
type TileType int

const (
	TileEmpty TileType = iota
	TileGround
	TileWall // solid and climbable
	TileQuicksand
)

// Tile represents a single tile in the stage
type Tile struct {
	Type  TileType
	Solid bool
}

// Stage represents the current stage's tile data plus the registries built
// from it
type Stage struct {
	Width    int // tiles
	Height   int // tiles
	TileSize int
	Tiles    [][]Tile
	SpawnX   float64
	SpawnY   float64

	// Walls are the climbable columns; a WallID indexes this slice.
	Walls []Rect
	// Quicksand are the hazard zones
	Quicksand []Rect
}

// PixelWidth returns the stage width in pixels
func (s *Stage) PixelWidth() float64 {
	return float64(s.Width * s.TileSize)
}

// GetTile returns the tile at the given tile coordinates.
// Outside the stage counts as solid ground.
func (s *Stage) GetTile(tx, ty int) Tile {
	if tx < 0 || tx >= s.Width || ty < 0 || ty >= s.Height {
		return Tile{Type: TileGround, Solid: true}
	}
	return s.Tiles[ty][tx]
}

// GetTileAtPixel returns the tile at the given pixel coordinates
func (s *Stage) GetTileAtPixel(px, py float64) Tile {
	tx := floorDiv(px, s.TileSize)
	ty := floorDiv(py, s.TileSize)
	return s.GetTile(tx, ty)
}

// IsSolidAt checks if the tile at pixel coordinates is solid
func (s *Stage) IsSolidAt(px, py float64) bool {
	return s.GetTileAtPixel(px, py).Solid
}

// Wall returns the bounds of a registered wall
func (s *Stage) Wall(id WallID) (Rect, bool) {
	if id < 0 || int(id) >= len(s.Walls) {
		return Rect{}, false
	}
	return s.Walls[id], true
}

// WallAt returns the wall containing the pixel, if any
func (s *Stage) WallAt(px, py float64) (WallID, bool) {
	probe := Rect{X: px, Y: py, W: 1, H: 1}
	for i, w := range s.Walls {
		if w.Intersects(probe) {
			return WallID(i), true
		}
	}
	return NoWall, false
}

// InQuicksand reports whether a rect overlaps a quicksand zone
func (s *Stage) InQuicksand(r Rect) bool {
	for _, q := range s.Quicksand {
		if q.Intersects(r) {
			return true
		}
	}
	return false
}

func floorDiv(p float64, size int) int {
	return int(math.Floor(p / float64(size)))
}
