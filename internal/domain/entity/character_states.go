package entity

// stateBehavior is one state of the character: entry action, exit action
// and the per-tick decision block
type stateBehavior interface {
	enter(c *Character)
	exit(c *Character, next CharacterState)
	tick(c *Character)
}

var characterStates = [characterStateCount]stateBehavior{
	StandIdle:       standIdleState{},
	Run:             runState{},
	CrouchIdle:      crouchIdleState{},
	CrouchSlash:     slashState{done: CrouchIdle, grounded: true},
	StandSlash:      slashState{done: StandIdle, grounded: true},
	JumpReach:       jumpState{launch: true},
	JumpSommersault: jumpState{launch: true, sommersault: true},
	JumpDescend:     jumpState{},
	JumpSlash:       slashState{done: JumpDescend},
	ClimbIdle:       climbIdleState{},
	ClimbMove:       climbMoveState{},
	GetHit:          getHitState{},
}

func (c *Character) enterState(s CharacterState) {
	characterStates[s].enter(c)
}

func (c *Character) exitState(s, next CharacterState) {
	if s.Climbing() && !next.Climbing() {
		c.wall = NoWall
	}
	characterStates[s].exit(c, next)
}

func (c *Character) held(b Button) bool {
	return c.input != nil && c.input.Held(b)
}

// jumpOff leaves the ground or a wall; holding up gives a straight jump
func (c *Character) jumpOff() {
	if c.held(ButtonUp) {
		c.setState(JumpReach)
	} else {
		c.setState(JumpSommersault)
	}
}

// runToward starts running if a direction is held
func (c *Character) runToward() bool {
	switch {
	case c.held(ButtonLeft):
		c.turn(-1)
	case c.held(ButtonRight):
		c.turn(1)
	default:
		return false
	}
	c.setState(Run)
	return true
}

// steerInAir gives full air control: full speed while keeping the facing,
// half speed when pushing against it
func (c *Character) steerInAir() {
	speed := c.tuning.WalkingSpeed
	switch {
	case c.held(ButtonLeft):
		if c.facing < 0 {
			c.body.VX = -speed
		} else {
			c.body.VX = -speed / 2
		}
	case c.held(ButtonRight):
		if c.facing > 0 {
			c.body.VX = speed
		} else {
			c.body.VX = speed / 2
		}
	}
}

// pushOffWall sets the horizontal launch of a jump away from a wall
func (c *Character) pushOffWall() {
	switch {
	case c.held(ButtonRight):
		c.turn(1)
		c.body.VX = c.tuning.WalkingSpeed
	case c.held(ButtonLeft):
		c.turn(-1)
		c.body.VX = -c.tuning.WalkingSpeed
	}
}

type standIdleState struct{}

func (standIdleState) enter(c *Character) {
	c.jumping = false
	c.body.Stop()
}

func (standIdleState) exit(*Character, CharacterState) {}

func (standIdleState) tick(c *Character) {
	switch {
	case c.held(ButtonA):
		// a running start keeps its horizontal speed
		if c.held(ButtonLeft) {
			c.turn(-1)
			c.body.VX = -c.groundSpeed()
		} else if c.held(ButtonRight) {
			c.turn(1)
			c.body.VX = c.groundSpeed()
		}
		c.jumpOff()
	case c.held(ButtonB):
		c.setState(StandSlash)
	case !c.onFloor():
		c.setState(JumpDescend)
	case c.runToward():
	case c.held(ButtonDown):
		c.setState(CrouchIdle)
	}
}

type runState struct{}

func (runState) enter(c *Character) {
	c.jumping = false
	c.body.VX = float64(c.facing) * c.groundSpeed()
}

func (runState) exit(*Character, CharacterState) {}

func (runState) tick(c *Character) {
	moving := true
	switch {
	case c.held(ButtonLeft):
		c.turn(-1)
	case c.held(ButtonRight):
		c.turn(1)
	default:
		moving = false
	}
	if moving {
		c.body.VX = float64(c.facing) * c.groundSpeed()
		if !c.onFloor() {
			// ran off a platform
			c.setState(JumpDescend)
			return
		}
	}
	switch {
	case c.held(ButtonA):
		c.setState(JumpSommersault)
	case c.held(ButtonB):
		c.setState(StandSlash)
	case !moving:
		c.setState(StandIdle)
	}
}

type crouchIdleState struct{}

func (crouchIdleState) enter(c *Character) {
	c.jumping = false
	c.body.Stop()
}

func (crouchIdleState) exit(*Character, CharacterState) {}

func (crouchIdleState) tick(c *Character) {
	switch {
	case c.runToward():
	case c.held(ButtonB):
		c.setState(CrouchSlash)
	case !c.held(ButtonDown):
		c.setState(StandIdle)
	}
}

// slashState covers the three sword attacks. The slash ends when the
// character animation completes.
type slashState struct {
	done     CharacterState
	grounded bool
}

func (s slashState) enter(c *Character) {
	if s.grounded {
		c.jumping = false
		c.body.Stop()
	} else {
		c.jumping = true
		c.body.AllowGravity = true
	}
	if c.sword != nil {
		c.sword.draw(c.poweredUp)
		c.sword.place(c)
	}
	if c.sprite != nil {
		done := s.done
		c.sprite.OnComplete(func() { c.setState(done) })
	}
}

func (slashState) exit(c *Character, _ CharacterState) {
	if c.sprite != nil {
		c.sprite.ClearOnComplete()
	}
	if c.sword != nil {
		c.sword.undraw()
	}
}

func (s slashState) tick(c *Character) {
	if !s.grounded && c.onFloor() {
		c.setState(StandIdle)
		return
	}
	c.testSwordHit()
}

// jumpState covers the airborne states. launch applies the jump impulse on
// entry; sommersault turns into a plain descent once falling.
type jumpState struct {
	launch      bool
	sommersault bool
}

func (s jumpState) enter(c *Character) {
	c.jumping = true
	c.body.AllowGravity = true
	if s.launch {
		c.body.VY = c.tuning.JumpSpeed
	}
}

func (jumpState) exit(*Character, CharacterState) {}

func (s jumpState) tick(c *Character) {
	switch {
	case c.onFloor():
		c.setState(StandIdle)
		return
	case c.held(ButtonB):
		c.setState(JumpSlash)
		return
	}
	c.steerInAir()
	if s.sommersault && c.body.VY > 0 {
		c.setState(JumpDescend)
	}
}

type climbIdleState struct{}

func (climbIdleState) enter(c *Character) {
	c.jumping = false
	c.body.AllowGravity = false
	c.body.SetVelocity(0, 0)
	c.body.OnFloor = false
}

func (climbIdleState) exit(*Character, CharacterState) {}

func (climbIdleState) tick(c *Character) {
	c.body.AllowGravity = false
	if c.held(ButtonA) {
		c.jumpOff()
		c.pushOffWall()
		return
	}
	switch {
	case c.held(ButtonUp):
		if !c.reachedWallTop() {
			c.body.VY = -c.tuning.WalkingSpeed
			c.setState(ClimbMove)
		}
	case c.held(ButtonDown):
		c.body.VY = c.tuning.WalkingSpeed
		c.setState(ClimbMove)
	}
}

type climbMoveState struct{}

func (climbMoveState) enter(c *Character) {
	c.body.AllowGravity = false
}

func (climbMoveState) exit(*Character, CharacterState) {}

func (climbMoveState) tick(c *Character) {
	c.body.AllowGravity = false
	switch {
	case c.body.VY < 0 && c.reachedWallTop():
		c.setState(ClimbIdle)
		return
	case c.body.VY > 0 && c.reachedWallBottom():
		c.setState(JumpDescend)
		return
	case c.body.VY > 0 && c.onFloor():
		c.setState(StandIdle)
		return
	}
	switch {
	case c.held(ButtonA):
		c.jumpOff()
		c.pushOffWall()
	case c.held(ButtonUp):
		c.body.VY = -c.tuning.WalkingSpeed
	case c.held(ButtonDown):
		c.body.VY = c.tuning.WalkingSpeed
	default:
		c.setState(ClimbIdle)
	}
}

type getHitState struct{}

func (getHitState) enter(c *Character) {
	c.invincible = true
	c.jumping = true
	c.body.AllowGravity = true
}

func (getHitState) exit(*Character, CharacterState) {}

func (getHitState) tick(c *Character) {
	if c.stateTime > 0 && c.body.VY >= 0 && c.onFloor() {
		c.setState(StandIdle)
		c.startTimedInvincibility()
	}
}
