package entity

import (
	"log"
)

// Character is the playable ninja.
// All mutation happens inside Update or in the collaborator calls made
// synchronously within the same tick (GotHit, OnTouchedWall, PickUpPowerUp,
// SetQuicksand).
type Character struct {
	Entity[CharacterState]

	tuning  Tuning
	offsets [characterStateCount]Offset
	input   Input
	world   World
	sword   *Sword
	logger  *log.Logger

	lives      int
	outOfLives bool
	mana       int
	maxMana    int
	facing     int

	poweredUp    bool
	currentPower Variant

	jumping     bool
	inQuicksand bool
	wall        WallID

	// Invincibility. expiresAt is on the character's own simulation clock
	// and is only meaningful while timed is set.
	invincible bool
	timed      bool
	expiresAt  float64
	clock      float64
}

// NewCharacter creates a character bound to an input source and a level.
// The body and sprites are owned by the character from now on.
func NewCharacter(tuning Tuning, input Input, world World, body *Body, sprite Animator, sword *Sword) *Character {
	c := &Character{
		Entity:  newEntity[CharacterState](body, sprite, tuning.MaxHP),
		tuning:  tuning,
		offsets: tuning.slashOffsetTable(),
		input:   input,
		world:   world,
		sword:   sword,
		logger:  log.Default(),
		lives:   tuning.InitialLives,
	}
	c.onEnter = c.enterState
	c.onExit = c.exitState
	c.Respawn(body.X, body.Y)
	return c
}

// SetLogger replaces the logger used for ignored requests
func (c *Character) SetLogger(l *log.Logger) {
	if l != nil {
		c.logger = l
	}
}

// Respawn re-initializes the character in place after losing a life.
// Lives and the clock survive; everything transient is reset.
func (c *Character) Respawn(x, y float64) {
	c.body.X, c.body.Y = x, y
	c.body.Stop()
	c.body.AllowGravity = true
	c.body.Enabled = true
	c.resetHealth(c.tuning.MaxHP)
	c.mana = c.tuning.InitialMana
	c.maxMana = c.tuning.InitialMaxMana
	c.poweredUp = false
	c.currentPower = VariantStar
	c.jumping = false
	c.inQuicksand = false
	c.wall = NoWall
	c.invincible = false
	c.timed = false
	if c.sword != nil {
		c.sword.undraw()
	}
	if c.sprite != nil {
		c.sprite.ClearOnComplete()
		c.sprite.SetAlpha(1)
	}
	c.turn(1)
	c.state = StandIdle
	c.stateTime = 0
	if c.sprite != nil {
		c.sprite.Play(StandIdle.String())
	}
}

// Lives returns the reserve lives
func (c *Character) Lives() int { return c.lives }

// OutOfLives reports whether a defeat happened with no reserve life left
func (c *Character) OutOfLives() bool { return c.outOfLives }

// Mana returns current mana
func (c *Character) Mana() int { return c.mana }

// MaxMana returns the mana cap
func (c *Character) MaxMana() int { return c.maxMana }

// Facing returns -1 for left, +1 for right
func (c *Character) Facing() int { return c.facing }

// PoweredUp reports whether the sword has been upgraded
func (c *Character) PoweredUp() bool { return c.poweredUp }

// CurrentPower returns the selected special attack
func (c *Character) CurrentPower() Variant { return c.currentPower }

// InQuicksand reports whether the character is submerged
func (c *Character) InQuicksand() bool { return c.inQuicksand }

// Invincible reports whether damage is currently ignored
func (c *Character) Invincible() bool { return c.invincible }

// Wall returns the handle of the wall being climbed
func (c *Character) Wall() (WallID, bool) {
	return c.wall, c.wall != NoWall
}

// Sword returns the character's weapon
func (c *Character) Sword() *Sword { return c.sword }

// AttackStrength returns the damage dealt by the sword
func (c *Character) AttackStrength() int { return c.tuning.AttackStrength }

// SetStateByName requests a transition by state name.
// Unknown names are logged and ignored.
func (c *Character) SetStateByName(name string) {
	s, ok := ParseCharacterState(name)
	if !ok {
		c.logger.Printf("character: ignoring transition to unknown state %q", name)
		return
	}
	c.setState(s)
}

func (c *Character) setState(s CharacterState) {
	if !s.Valid() {
		c.logger.Printf("character: ignoring transition to invalid state %d", int(s))
		return
	}
	c.Entity.setState(s)
}

// turn sets the facing and flips the sprite. Zero is ignored.
func (c *Character) turn(dir int) {
	switch {
	case dir < 0:
		c.facing = -1
	case dir > 0:
		c.facing = 1
	default:
		return
	}
	if c.sprite != nil {
		c.sprite.SetFlipX(c.facing < 0)
	}
}

func (c *Character) onFloor() bool {
	return c.inQuicksand || c.body.OnFloor
}

// groundSpeed is the running speed for the current terrain
func (c *Character) groundSpeed() float64 {
	if c.inQuicksand {
		return c.tuning.QuicksandWalkingSpeed
	}
	return c.tuning.WalkingSpeed
}

// GotHit is the damage entry point. Hits are ignored while invincible or
// already defeated.
func (c *Character) GotHit(attacker Attacker) bool {
	if attacker == nil || c.invincible || c.IsDead() {
		return false
	}
	c.takeHit(attacker)
	if c.hp > 0 {
		c.knockback(attacker.Body())
		c.setState(GetHit)
		return true
	}
	c.defeat()
	return true
}

// knockback pushes the character away from the attacker depending on which
// faces are in contact
func (c *Character) knockback(other *Body) {
	if other == nil {
		return
	}
	mine := c.body.Touching
	theirs := other.Touching
	up := c.tuning.KnockbackUpSpeed
	switch {
	case mine.Left && theirs.Right:
		// rammed from the left
		c.turn(-1)
		c.body.SetVelocity(c.tuning.WalkingSpeed, up)
	case mine.Right && theirs.Left:
		// rammed from the right
		c.turn(1)
		c.body.SetVelocity(-c.tuning.WalkingSpeed, up)
	case mine.Down && theirs.Up:
		// landed on top of the attacker
		c.body.SetVelocity(0, up)
	}
}

func (c *Character) defeat() {
	c.hp = 0
	if c.lives > 0 {
		c.lives--
	} else {
		c.outOfLives = true
	}
	c.invincible = true
	c.timed = false
	if c.world != nil {
		c.world.PlayerDefeated(c)
	}
}

// GrantInvincibility starts a fresh timed invincibility window, replacing
// any window already running
func (c *Character) GrantInvincibility() {
	c.invincible = true
	c.startTimedInvincibility()
}

func (c *Character) startTimedInvincibility() {
	c.timed = true
	c.expiresAt = c.clock + c.tuning.InvincibilityTime
	if c.sprite != nil {
		c.sprite.SetAlpha(0.5)
	}
}

func (c *Character) updateInvincibility() {
	if !c.timed || c.clock < c.expiresAt {
		return
	}
	c.timed = false
	c.invincible = false
	if c.sprite != nil {
		c.sprite.SetAlpha(1)
	}
}

// PickUpPowerUp applies a falling power-up's effect and removes it.
// Returns false if the power-up cannot be collected.
func (c *Character) PickUpPowerUp(p *PowerUp) bool {
	if p == nil || !p.Collectable() {
		return false
	}
	p.collect()

	switch v := p.Variant(); {
	case v == VariantMana:
		c.mana += c.tuning.ManaIncrement
		if c.mana > c.maxMana {
			c.mana = c.maxMana
		}
	case v == VariantSword:
		c.poweredUp = true
	case v.SpecialAttack():
		c.currentPower = v
	case v == VariantMaxMana:
		c.maxMana += c.tuning.MaxManaIncrement
	case v == VariantExtraLife:
		if c.lives < c.tuning.MaxLives {
			c.lives++
		}
	default:
		c.logger.Printf("character: ignoring power-up of unknown variant %d", int(v))
	}
	return true
}

// OnTouchedWall grabs a wall. Only accepted while airborne; dir is the side
// of the wall relative to the character (-1 left, +1 right).
func (c *Character) OnTouchedWall(wall WallID, dir int) {
	if !c.jumping || c.IsDead() {
		return
	}
	if dir != -1 && dir != 1 {
		c.logger.Printf("character: ignoring wall touch with direction %d", dir)
		return
	}
	c.turn(dir)
	if c.state == GetHit {
		c.startTimedInvincibility()
	}
	// a grab out of the sand leaves it; SetQuicksand is ignored from here on
	c.inQuicksand = false
	c.setState(ClimbIdle)
	c.wall = wall
}

func (c *Character) reachedWallTop() bool {
	r, ok := c.wallRect()
	return ok && c.body.Bottom() < r.Top()+c.tuning.WallTopMargin
}

func (c *Character) reachedWallBottom() bool {
	r, ok := c.wallRect()
	return ok && c.body.Top() > r.Bottom()-c.tuning.WallBottomMargin
}

func (c *Character) wallRect() (Rect, bool) {
	if c.wall == NoWall || c.world == nil {
		return Rect{}, false
	}
	return c.world.Wall(c.wall)
}

// SetQuicksand toggles submersion. Ignored while climbing.
// TODO: health loss past half-body depth and escaping by running out are
// not modelled yet; sinking stops at QuicksandLimitY.
func (c *Character) SetQuicksand(on bool) {
	if c.state.Climbing() {
		return
	}
	c.inQuicksand = on
	if c.state == Run {
		c.body.VX = float64(c.facing) * c.groundSpeed()
	}
	c.body.AllowGravity = !on
}

// Update runs one simulation step of dt seconds
func (c *Character) Update(dt float64) {
	if c.IsDead() {
		return
	}
	c.clock += dt
	c.tick(dt)
	c.updateInvincibility()

	if c.inQuicksand {
		// jump and get_hit entry turn gravity back on
		c.body.AllowGravity = false
		if c.body.Y < c.tuning.QuicksandLimitY {
			c.body.VY = c.tuning.QuicksandFallingSpeed
		} else {
			c.body.VY = 0
		}
	}
	if c.sword != nil && c.sword.Visible() {
		c.sword.place(c)
	}

	characterStates[c.state].tick(c)

	c.clampToLevel()
}

func (c *Character) clampToLevel() {
	if c.world == nil {
		return
	}
	maxX := c.world.LevelWidth()
	if c.body.X < 0 {
		c.body.X = 0
	} else if c.body.X > maxX {
		c.body.X = maxX
	}
}
