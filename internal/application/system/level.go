package system

import (
	"fmt"

	"github.com/younwookim/ninja/internal/domain/entity"
	"github.com/younwookim/ninja/internal/infrastructure/config"
)

// Level owns the stage and everything living in it. It is the World the
// characters see.
type Level struct {
	stage   *entity.Stage
	physics *PhysicsSystem

	characters []*entity.Character
	enemies    []*entity.Enemy
	powerUps   []*entity.PowerUp
	nextID     entity.EntityID

	// OnDefeat is called once per defeat with the defeated character
	OnDefeat func(c *entity.Character)
}

var _ entity.World = (*Level)(nil)

// NewLevel creates an empty level on a stage
func NewLevel(stage *entity.Stage, physics *PhysicsSystem) *Level {
	return &Level{
		stage:      stage,
		physics:    physics,
		characters: make([]*entity.Character, 0, entity.MaxPlayers),
		enemies:    make([]*entity.Enemy, 0, 16),
		powerUps:   make([]*entity.PowerUp, 0, 16),
	}
}

// Stage returns the tile data
func (l *Level) Stage() *entity.Stage { return l.stage }

// AddCharacter places a character in the level
func (l *Level) AddCharacter(c *entity.Character) error {
	if len(l.characters) >= entity.MaxPlayers {
		return fmt.Errorf("level is full: %d characters", entity.MaxPlayers)
	}
	l.characters = append(l.characters, c)
	return nil
}

// SpawnEnemy spawns an enemy from its config at a stage position
func (l *Level) SpawnEnemy(cfg config.EnemyConfig, spawn config.EnemySpawnConfig, sprite entity.Animator) *entity.Enemy {
	l.nextID++
	body := entity.NewBody(spawn.X, spawn.Y, cfg.Size.Width, cfg.Size.Height)
	enemy := entity.NewEnemy(l.nextID, spawn.Type, body, sprite, cfg.Stats.MaxHealth)
	enemy.ContactDamage = cfg.Stats.ContactDamage
	enemy.MoveSpeed = cfg.Stats.MoveSpeed
	enemy.PatrolDistance = cfg.AI.PatrolDistance
	if cfg.AI.HurtDuration > 0 {
		enemy.HurtDuration = cfg.AI.HurtDuration
	}
	if spawn.FacingRight {
		enemy.PatrolDir = 1
	}

	l.enemies = append(l.enemies, enemy)
	return enemy
}

// SpawnPowerUp places a glowing power-up
func (l *Level) SpawnPowerUp(cfg config.PowerUpConfig, spawn config.PowerUpSpawnConfig, sprite entity.Animator) (*entity.PowerUp, error) {
	variant, ok := entity.ParseVariant(spawn.Variant)
	if !ok {
		return nil, fmt.Errorf("unknown power-up variant %q", spawn.Variant)
	}
	body := entity.NewBody(spawn.X, spawn.Y, cfg.Size.Width, cfg.Size.Height)
	p := entity.NewPowerUp(body, sprite, variant)

	l.powerUps = append(l.powerUps, p)
	return p, nil
}

// Characters returns the characters in slot order
func (l *Level) Characters() []*entity.Character { return l.characters }

// Enemies returns all spawned enemies, dead ones included
func (l *Level) Enemies() []*entity.Enemy { return l.enemies }

// PowerUps returns the power-ups not yet collected
func (l *Level) PowerUps() []*entity.PowerUp { return l.powerUps }

// LevelWidth implements entity.World
func (l *Level) LevelWidth() float64 {
	return l.stage.PixelWidth()
}

// Wall implements entity.World
func (l *Level) Wall(id entity.WallID) (entity.Rect, bool) {
	return l.stage.Wall(id)
}

// OverlapEnemies implements entity.World
func (l *Level) OverlapEnemies(area entity.Rect, fn func(t entity.Target)) {
	for _, e := range l.enemies {
		if !e.IsAlive() || !e.Body().Enabled {
			continue
		}
		if e.Body().Rect().Intersects(area) {
			fn(e)
		}
	}
}

// OverlapPowerUps implements entity.World
func (l *Level) OverlapPowerUps(area entity.Rect, fn func(p *entity.PowerUp)) {
	for _, p := range l.powerUps {
		if p.Collected() || !p.Body().Enabled {
			continue
		}
		if p.Body().Rect().Intersects(area) {
			fn(p)
		}
	}
}

// PlayerDefeated implements entity.World
func (l *Level) PlayerDefeated(c *entity.Character) {
	if l.OnDefeat != nil {
		l.OnDefeat(c)
	}
}

// Update runs one frame: characters decide, physics moves everything, then
// contacts between bodies are resolved
func (l *Level) Update(dt float64) {
	for _, c := range l.characters {
		c.Update(dt)
	}
	for _, c := range l.characters {
		if c.IsDead() {
			continue
		}
		if contact, ok := l.physics.Update(c.Body(), dt); ok {
			c.OnTouchedWall(contact.Wall, contact.Dir)
		}
		if in := l.stage.InQuicksand(c.Body().Rect()); in != c.InQuicksand() {
			c.SetQuicksand(in)
		}
	}

	for _, e := range l.enemies {
		if !e.IsAlive() {
			continue
		}
		e.Update(dt)
		l.physics.Update(e.Body(), dt)
	}

	for _, p := range l.powerUps {
		p.Update(dt)
		l.physics.Update(p.Body(), dt)
	}

	l.resolveContacts()
	l.animate(dt)
	l.prunePowerUps()
}

type frameAdvancer interface {
	Update(dt float64)
}

func (l *Level) animate(dt float64) {
	advance := func(a entity.Animator) {
		if f, ok := a.(frameAdvancer); ok {
			f.Update(dt)
		}
	}
	for _, c := range l.characters {
		advance(c.Sprite())
		if c.Sword() != nil {
			advance(c.Sword().Sprite())
		}
	}
	for _, e := range l.enemies {
		advance(e.Sprite())
	}
	for _, p := range l.powerUps {
		advance(p.Sprite())
	}
}

func (l *Level) prunePowerUps() {
	kept := l.powerUps[:0]
	for _, p := range l.powerUps {
		if !p.Collected() {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(l.powerUps); i++ {
		l.powerUps[i] = nil
	}
	l.powerUps = kept
}
