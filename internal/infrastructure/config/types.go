package config

import (
	"fmt"

	"github.com/younwookim/ninja/internal/domain/entity"
)

// TuningConfig is the root config for tuning.json
type TuningConfig struct {
	Display   DisplayConfig   `json:"display"`
	Physics   PhysicsSettings `json:"physics"`
	Character CharacterConfig `json:"character"`
	Sword     SwordConfig     `json:"sword"`
	Quicksand QuicksandConfig `json:"quicksand"`
	Walls     WallConfig      `json:"walls"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

type PhysicsSettings struct {
	Gravity      float64 `json:"gravity"`
	MaxFallSpeed float64 `json:"maxFallSpeed"`
}

type CharacterConfig struct {
	WalkingSpeed      float64    `json:"walkingSpeed"`
	JumpSpeed         float64    `json:"jumpSpeed"`
	KnockbackUpSpeed  float64    `json:"knockbackUpSpeed"`
	MaxHP             int        `json:"maxHP"`
	InitialLives      int        `json:"initialLives"`
	MaxLives          int        `json:"maxLives"`
	InvincibilityTime float64    `json:"invincibilityTime"`
	InitialMana       int        `json:"initialMana"`
	InitialMaxMana    int        `json:"initialMaxMana"`
	ManaIncrement     int        `json:"manaIncrement"`
	MaxManaIncrement  int        `json:"maxManaIncrement"`
	AttackStrength    int        `json:"attackStrength"`
	Body              SizeConfig `json:"body"`
}

type SizeConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type SwordConfig struct {
	FrameWidth  float64 `json:"frameWidth"`
	FrameHeight float64 `json:"frameHeight"`
	ActiveFrame int     `json:"activeFrame"` // 1-based
	// Offsets places the sword per slash state, keyed by state name
	Offsets map[string]OffsetConfig `json:"offsets"`
}

type OffsetConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type QuicksandConfig struct {
	WalkingSpeed float64 `json:"walkingSpeed"`
	FallingSpeed float64 `json:"fallingSpeed"`
	LimitY       float64 `json:"limitY"`
}

type WallConfig struct {
	TopMargin    float64 `json:"topMargin"`
	BottomMargin float64 `json:"bottomMargin"`
}

// EntityTuning converts the config into the character's tuning.
// Offsets keyed by an unknown state name are an error.
func (c *TuningConfig) EntityTuning() (entity.Tuning, error) {
	ch := c.Character
	t := entity.Tuning{
		WalkingSpeed:          ch.WalkingSpeed,
		JumpSpeed:             ch.JumpSpeed,
		KnockbackUpSpeed:      ch.KnockbackUpSpeed,
		QuicksandWalkingSpeed: c.Quicksand.WalkingSpeed,
		QuicksandFallingSpeed: c.Quicksand.FallingSpeed,
		QuicksandLimitY:       c.Quicksand.LimitY,

		MaxHP:             ch.MaxHP,
		InitialLives:      ch.InitialLives,
		MaxLives:          ch.MaxLives,
		InvincibilityTime: ch.InvincibilityTime,

		InitialMana:      ch.InitialMana,
		InitialMaxMana:   ch.InitialMaxMana,
		ManaIncrement:    ch.ManaIncrement,
		MaxManaIncrement: ch.MaxManaIncrement,

		AttackStrength: ch.AttackStrength,

		WallTopMargin:    c.Walls.TopMargin,
		WallBottomMargin: c.Walls.BottomMargin,

		SwordFrameWidth:  c.Sword.FrameWidth,
		SwordFrameHeight: c.Sword.FrameHeight,
		SwordActiveFrame: c.Sword.ActiveFrame,

		BodyWidth:  ch.Body.Width,
		BodyHeight: ch.Body.Height,

		SlashOffsets: make(map[entity.CharacterState]entity.Offset, len(c.Sword.Offsets)),
	}

	for name, off := range c.Sword.Offsets {
		state, ok := entity.ParseCharacterState(name)
		if !ok {
			return entity.Tuning{}, fmt.Errorf("sword offset for unknown state %q", name)
		}
		t.SlashOffsets[state] = entity.Offset{X: off.X, Y: off.Y}
	}

	if t.MaxHP <= 0 {
		return entity.Tuning{}, fmt.Errorf("character maxHP must be positive, got %d", t.MaxHP)
	}
	if t.SwordActiveFrame < 1 {
		return entity.Tuning{}, fmt.Errorf("sword activeFrame is 1-based, got %d", t.SwordActiveFrame)
	}

	return t, nil
}
