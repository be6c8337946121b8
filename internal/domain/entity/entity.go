package entity

import "fmt"

// StateName is the constraint for state enumerations driven by Entity
type StateName interface {
	comparable
	fmt.Stringer
}

// Entity is the lifecycle shared by the character, power-ups and enemies:
// health, a named-state machine with enter/exit hooks and time in state.
// It owns exactly one body and one visual representation.
type Entity[S StateName] struct {
	hp    int
	maxHP int

	state     S
	stateTime float64

	body   *Body
	sprite Animator

	onEnter func(state S)
	onExit  func(state, next S)
}

func newEntity[S StateName](body *Body, sprite Animator, maxHP int) Entity[S] {
	return Entity[S]{
		hp:     maxHP,
		maxHP:  maxHP,
		body:   body,
		sprite: sprite,
	}
}

// HP returns current health
func (e *Entity[S]) HP() int { return e.hp }

// MaxHP returns maximum health
func (e *Entity[S]) MaxHP() int { return e.maxHP }

// IsDead returns true once hp has reached 0
func (e *Entity[S]) IsDead() bool { return e.hp == 0 }

// State returns the current state
func (e *Entity[S]) State() S { return e.state }

// StateTime returns seconds spent in the current state
func (e *Entity[S]) StateTime() float64 { return e.stateTime }

// Body returns the physical body
func (e *Entity[S]) Body() *Body { return e.body }

// Sprite returns the visual representation
func (e *Entity[S]) Sprite() Animator { return e.sprite }

// setState runs exit(old, next), switches, runs enter(next), plays the
// state's animation and resets the time in state.
func (e *Entity[S]) setState(next S) {
	prev := e.state
	if e.onExit != nil {
		e.onExit(prev, next)
	}
	e.state = next
	if e.onEnter != nil {
		e.onEnter(next)
	}
	if e.sprite != nil {
		e.sprite.Play(next.String())
	}
	e.stateTime = 0
}

// tick advances the time in state
func (e *Entity[S]) tick(dt float64) {
	e.stateTime += dt
}

// takeHit is the base damage policy: hp drops by the attacker's strength,
// clamped at zero.
func (e *Entity[S]) takeHit(attacker Attacker) {
	dmg := attacker.AttackStrength()
	if dmg < 0 {
		dmg = 0
	}
	e.hp -= dmg
	if e.hp < 0 {
		e.hp = 0
	}
}

// resetHealth restores hp to a (new) maximum
func (e *Entity[S]) resetHealth(maxHP int) {
	e.maxHP = maxHP
	e.hp = maxHP
}
