package entity

// Button is a logical input button
type Button int

const (
	ButtonUp Button = iota
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonA // jump
	ButtonB // attack
	buttonCount
)

// Buttons lists every logical button in order
var Buttons = [buttonCount]Button{ButtonUp, ButtonDown, ButtonLeft, ButtonRight, ButtonA, ButtonB}

// String returns the binding name of the button
func (b Button) String() string {
	switch b {
	case ButtonUp:
		return "up"
	case ButtonDown:
		return "down"
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonA:
		return "a"
	case ButtonB:
		return "b"
	default:
		return "unknown"
	}
}

// ParseButton resolves a binding name ("up", "a", ...) to a Button
func ParseButton(name string) (Button, bool) {
	for _, b := range Buttons {
		if b.String() == name {
			return b, true
		}
	}
	return 0, false
}

// ButtonSet is the set of buttons held during one frame.
// It is itself an Input.
type ButtonSet uint16

// Held reports whether b is in the set
func (s ButtonSet) Held(b Button) bool {
	return s&(1<<b) != 0
}

// With returns the set with b held
func (s ButtonSet) With(b Button) ButtonSet {
	return s | 1<<b
}

// ButtonsOf collects the held buttons of an input into a set
func ButtonsOf(in Input) ButtonSet {
	var s ButtonSet
	if in == nil {
		return s
	}
	for _, b := range Buttons {
		if in.Held(b) {
			s = s.With(b)
		}
	}
	return s
}

// CharacterState is a state of the character state machine
type CharacterState int

const (
	StandIdle CharacterState = iota
	Run
	CrouchIdle
	CrouchSlash
	StandSlash
	JumpReach
	JumpSommersault
	JumpDescend
	JumpSlash
	ClimbIdle
	ClimbMove
	GetHit
	characterStateCount
)

var characterStateNames = [characterStateCount]string{
	StandIdle:       "stand_idle",
	Run:             "run",
	CrouchIdle:      "crouch_idle",
	CrouchSlash:     "crouch_slash",
	StandSlash:      "stand_slash",
	JumpReach:       "jump_reach",
	JumpSommersault: "jump_sommersault",
	JumpDescend:     "jump_descend",
	JumpSlash:       "jump_slash",
	ClimbIdle:       "climb_idle",
	ClimbMove:       "climb_move",
	GetHit:          "get_hit",
}

// String returns the state name, which is also the animation name
func (s CharacterState) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return characterStateNames[s]
}

// Valid reports whether s is one of the declared states
func (s CharacterState) Valid() bool {
	return s >= 0 && s < characterStateCount
}

// Climbing reports whether s is a wall-climbing state
func (s CharacterState) Climbing() bool {
	return s == ClimbIdle || s == ClimbMove
}

// Slashing reports whether the sword is out in s
func (s CharacterState) Slashing() bool {
	return s == CrouchSlash || s == StandSlash || s == JumpSlash
}

// ParseCharacterState resolves a state name such as "stand_idle"
func ParseCharacterState(name string) (CharacterState, bool) {
	for i, n := range characterStateNames {
		if n == name {
			return CharacterState(i), true
		}
	}
	return 0, false
}

// PowerUpState is a state of the collectible state machine
type PowerUpState int

const (
	Glowing PowerUpState = iota
	Falling
)

// String returns the state name, which is also the animation name
func (s PowerUpState) String() string {
	switch s {
	case Glowing:
		return "glow"
	case Falling:
		return "fall"
	default:
		return "unknown"
	}
}

// EnemyState is a state of the enemy state machine
type EnemyState int

const (
	EnemyPatrol EnemyState = iota
	EnemyHurt
	EnemyDead
)

// String returns the state name
func (s EnemyState) String() string {
	switch s {
	case EnemyPatrol:
		return "patrol"
	case EnemyHurt:
		return "hurt"
	case EnemyDead:
		return "dead"
	default:
		return "unknown"
	}
}
