package system

import (
	"fmt"

	"github.com/younwookim/ninja/internal/domain/entity"
	"github.com/younwookim/ninja/internal/infrastructure/config"
)

// LoadStage converts a StageConfig into a Stage entity and builds the wall
// and quicksand registries from the collision layer
func LoadStage(cfg *config.StageConfig) (*entity.Stage, error) {
	tileHeight := len(cfg.Layers.Collision)
	if tileHeight == 0 {
		return nil, fmt.Errorf("stage %s has an empty collision layer", cfg.ID)
	}
	tileWidth := 0
	for _, row := range cfg.Layers.Collision {
		if len(row) > tileWidth {
			tileWidth = len(row)
		}
	}

	tiles := make([][]entity.Tile, tileHeight)
	for y, row := range cfg.Layers.Collision {
		tiles[y] = make([]entity.Tile, tileWidth)
		for x, char := range row {
			mapping, ok := cfg.TileMapping[string(char)]
			if !ok {
				continue
			}

			var tileType entity.TileType
			switch mapping.Type {
			case "ground":
				tileType = entity.TileGround
			case "wall":
				tileType = entity.TileWall
			case "quicksand":
				tileType = entity.TileQuicksand
			case "empty", "":
				tileType = entity.TileEmpty
			default:
				return nil, fmt.Errorf("stage %s: unknown tile type %q for %q", cfg.ID, mapping.Type, string(char))
			}

			tiles[y][x] = entity.Tile{
				Type:  tileType,
				Solid: mapping.Solid,
			}
		}
	}

	stage := &entity.Stage{
		Width:    tileWidth,
		Height:   tileHeight,
		TileSize: cfg.TileSize,
		Tiles:    tiles,
		SpawnX:   cfg.PlayerSpawn.X,
		SpawnY:   cfg.PlayerSpawn.Y,
	}
	stage.Walls = columnRuns(stage, entity.TileWall)
	stage.Quicksand = rowRuns(stage, entity.TileQuicksand)
	return stage, nil
}

// columnRuns merges vertically adjacent tiles of one type into rects
func columnRuns(s *entity.Stage, tt entity.TileType) []entity.Rect {
	ts := float64(s.TileSize)
	var runs []entity.Rect
	for x := 0; x < s.Width; x++ {
		start := -1
		for y := 0; y <= s.Height; y++ {
			in := y < s.Height && s.Tiles[y][x].Type == tt
			switch {
			case in && start < 0:
				start = y
			case !in && start >= 0:
				runs = append(runs, entity.Rect{
					X: float64(x) * ts,
					Y: float64(start) * ts,
					W: ts,
					H: float64(y-start) * ts,
				})
				start = -1
			}
		}
	}
	return runs
}

// rowRuns merges horizontally adjacent tiles of one type into rects
func rowRuns(s *entity.Stage, tt entity.TileType) []entity.Rect {
	ts := float64(s.TileSize)
	var runs []entity.Rect
	for y := 0; y < s.Height; y++ {
		start := -1
		for x := 0; x <= s.Width; x++ {
			in := x < s.Width && s.Tiles[y][x].Type == tt
			switch {
			case in && start < 0:
				start = x
			case !in && start >= 0:
				runs = append(runs, entity.Rect{
					X: float64(start) * ts,
					Y: float64(y) * ts,
					W: float64(x-start) * ts,
					H: ts,
				})
				start = -1
			}
		}
	}
	return runs
}
