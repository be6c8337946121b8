package config

// EntitiesConfig is the root config for entities.json
type EntitiesConfig struct {
	Character SpriteConfig           `json:"character"`
	Sword     SpriteConfig           `json:"sword"`
	PowerUp   PowerUpConfig          `json:"powerUp"`
	Enemies   map[string]EnemyConfig `json:"enemies"`
}

type SpriteConfig struct {
	FrameWidth  int                        `json:"frameWidth"`
	FrameHeight int                        `json:"frameHeight"`
	Color       string                     `json:"color"` // #rrggbb placeholder fill
	Animations  map[string]AnimationConfig `json:"animations"`
}

type AnimationConfig struct {
	Frames int  `json:"frames"`
	FPS    int  `json:"fps"`
	Loop   bool `json:"loop"`
}

type PowerUpConfig struct {
	Sprite SpriteConfig `json:"sprite"`
	Size   SizeConfig   `json:"size"`
}

type EnemyConfig struct {
	ID     string       `json:"id"`
	Sprite SpriteConfig `json:"sprite"`
	Size   SizeConfig   `json:"size"`
	Stats  EnemyStats   `json:"stats"`
	AI     AIConfig     `json:"ai"`
}

type EnemyStats struct {
	MaxHealth     int     `json:"maxHealth"`
	ContactDamage int     `json:"contactDamage"`
	MoveSpeed     float64 `json:"moveSpeed,omitempty"`
}

type AIConfig struct {
	Type           string  `json:"type"`
	PatrolDistance float64 `json:"patrolDistance,omitempty"`
	HurtDuration   float64 `json:"hurtDuration,omitempty"`
}
