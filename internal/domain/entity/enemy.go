package entity

// EntityID is a unique identifier for an entity
type EntityID uint32

// Enemy is a patrolling foe. It damages characters on contact and takes
// damage from swords.
type Enemy struct {
	Entity[EnemyState]

	ID            EntityID
	EnemyType     string
	ContactDamage int
	MoveSpeed     float64

	// Patrol
	PatrolStartX   float64
	PatrolDistance float64
	PatrolDir      int

	// HurtDuration is how long the enemy stays stunned after a hit
	HurtDuration float64
}

// NewEnemy creates a new enemy patrolling around its spawn point
func NewEnemy(id EntityID, enemyType string, body *Body, sprite Animator, maxHP int) *Enemy {
	e := &Enemy{
		Entity:       newEntity[EnemyState](body, sprite, maxHP),
		ID:           id,
		EnemyType:    enemyType,
		PatrolStartX: body.X,
		PatrolDir:    -1,
		HurtDuration: 0.2,
	}
	e.onEnter = e.enter
	e.setState(EnemyPatrol)
	return e
}

func (e *Enemy) enter(state EnemyState) {
	switch state {
	case EnemyHurt:
		e.body.VX = 0
	case EnemyDead:
		e.body.Disable()
		if e.sprite != nil {
			e.sprite.SetVisible(false)
		}
	}
}

// AttackStrength returns the contact damage
func (e *Enemy) AttackStrength() int { return e.ContactDamage }

// GotHit applies damage. Hits landing while the enemy is still reeling
// from the previous one are ignored.
func (e *Enemy) GotHit(attacker Attacker) bool {
	if attacker == nil || e.state != EnemyPatrol {
		return false
	}
	e.takeHit(attacker)
	if e.IsDead() {
		e.setState(EnemyDead)
	} else {
		e.setState(EnemyHurt)
	}
	return true
}

// IsAlive returns true if the enemy is still in play
func (e *Enemy) IsAlive() bool {
	return e.state != EnemyDead
}

// Update runs the patrol AI
func (e *Enemy) Update(dt float64) {
	if !e.IsAlive() {
		return
	}
	e.tick(dt)

	switch e.state {
	case EnemyHurt:
		if e.stateTime >= e.HurtDuration {
			e.setState(EnemyPatrol)
		}
	case EnemyPatrol:
		e.patrol()
	}
}

func (e *Enemy) patrol() {
	if e.PatrolDistance > 0 {
		dist := e.body.X - e.PatrolStartX
		if dist <= -e.PatrolDistance {
			e.PatrolDir = 1
		} else if dist >= e.PatrolDistance {
			e.PatrolDir = -1
		}
	}
	// turn around at walls
	if e.body.Touching.Left {
		e.PatrolDir = 1
	} else if e.body.Touching.Right {
		e.PatrolDir = -1
	}
	e.body.VX = float64(e.PatrolDir) * e.MoveSpeed
	if e.sprite != nil {
		e.sprite.SetFlipX(e.PatrolDir > 0)
	}
}
