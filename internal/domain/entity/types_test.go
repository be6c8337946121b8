package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func createTestStage() *Stage {
	// 3x3 stage: a climbable column on the left, sand bottom-center
	tiles := [][]Tile{
		{{Type: TileWall, Solid: true}, {Type: TileEmpty}, {Type: TileGround, Solid: true}},
		{{Type: TileWall, Solid: true}, {Type: TileEmpty}, {Type: TileEmpty}},
		{{Type: TileGround, Solid: true}, {Type: TileQuicksand}, {Type: TileGround, Solid: true}},
	}

	return &Stage{
		Width:     3,
		Height:    3,
		TileSize:  16,
		Tiles:     tiles,
		SpawnX:    24,
		SpawnY:    24,
		Walls:     []Rect{{X: 0, Y: 0, W: 16, H: 32}},
		Quicksand: []Rect{{X: 16, Y: 32, W: 16, H: 16}},
	}
}

func TestStage_GetTile(t *testing.T) {
	stage := createTestStage()

	tests := []struct {
		name      string
		tx, ty    int
		wantType  TileType
		wantSolid bool
	}{
		{"top-left wall", 0, 0, TileWall, true},
		{"top-center empty", 1, 0, TileEmpty, false},
		{"top-right ground", 2, 0, TileGround, true},
		{"bottom-center sand", 1, 2, TileQuicksand, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tile := stage.GetTile(tt.tx, tt.ty)
			assert.Equal(t, tt.wantType, tile.Type)
			assert.Equal(t, tt.wantSolid, tile.Solid)
		})
	}
}

func TestStage_GetTile_OutOfBounds(t *testing.T) {
	stage := createTestStage()

	outOfBoundsCases := []struct {
		name   string
		tx, ty int
	}{
		{"negative x", -1, 0},
		{"negative y", 0, -1},
		{"x too large", 10, 0},
		{"y too large", 0, 10},
	}

	for _, tt := range outOfBoundsCases {
		t.Run(tt.name, func(t *testing.T) {
			tile := stage.GetTile(tt.tx, tt.ty)
			assert.Equal(t, TileGround, tile.Type)
			assert.True(t, tile.Solid, "out of bounds should be solid")
		})
	}
}

func TestStage_IsSolidAt(t *testing.T) {
	stage := createTestStage()

	tests := []struct {
		name   string
		px, py float64
		want   bool
	}{
		{"wall", 8, 8, true},
		{"tile boundary", 16, 0, false},
		{"empty space", 24, 24, false},
		{"quicksand is not solid", 24, 40, false},
		{"just left of the stage", -0.5, 8, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stage.IsSolidAt(tt.px, tt.py))
		})
	}
}

func TestStage_Walls(t *testing.T) {
	stage := createTestStage()

	r, ok := stage.Wall(0)
	assert.True(t, ok)
	assert.Equal(t, 32.0, r.Bottom())

	_, ok = stage.Wall(NoWall)
	assert.False(t, ok)
	_, ok = stage.Wall(3)
	assert.False(t, ok)

	id, ok := stage.WallAt(15, 20)
	assert.True(t, ok)
	assert.Equal(t, WallID(0), id)

	id, ok = stage.WallAt(20, 20)
	assert.False(t, ok)
	assert.Equal(t, NoWall, id)
}

func TestStage_InQuicksand(t *testing.T) {
	stage := createTestStage()

	assert.True(t, stage.InQuicksand(Rect{X: 20, Y: 20, W: 8, H: 16}))
	assert.False(t, stage.InQuicksand(Rect{X: 20, Y: 0, W: 8, H: 16}))
	assert.Equal(t, 48.0, stage.PixelWidth())
}
