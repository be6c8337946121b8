package config

// StageConfig is the root config for stage YAML files
type StageConfig struct {
	ID          string                       `yaml:"id"`
	Name        string                       `yaml:"name"`
	TileSize    int                          `yaml:"tile_size"`
	PlayerSpawn PositionConfig               `yaml:"player_spawn"`
	Layers      LayersConfig                 `yaml:"layers"`
	TileMapping map[string]TileMappingConfig `yaml:"tile_mapping"`
	Enemies     []EnemySpawnConfig           `yaml:"enemies"`
	PowerUps    []PowerUpSpawnConfig         `yaml:"power_ups"`
}

type PositionConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type LayersConfig struct {
	Collision []string `yaml:"collision"`
}

// TileMappingConfig maps a layer character to a tile.
// Type is one of "empty", "ground", "wall" or "quicksand".
type TileMappingConfig struct {
	Type  string `yaml:"type"`
	Solid bool   `yaml:"solid"`
}

type EnemySpawnConfig struct {
	Type        string  `yaml:"type"`
	X           float64 `yaml:"x"`
	Y           float64 `yaml:"y"`
	FacingRight bool    `yaml:"facing_right"`
}

type PowerUpSpawnConfig struct {
	Variant string  `yaml:"variant"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
}
