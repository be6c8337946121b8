package entity

// MaxPlayers is the number of characters a level can host
const MaxPlayers = 4

// Offset is a pixel displacement
type Offset struct {
	X, Y float64
}

// Tuning holds the character's gameplay constants.
// Speeds are pixels per second, durations seconds.
type Tuning struct {
	WalkingSpeed          float64
	JumpSpeed             float64 // initial vertical velocity of a jump (negative is up)
	KnockbackUpSpeed      float64 // vertical velocity applied by a hit (negative is up)
	QuicksandWalkingSpeed float64
	QuicksandFallingSpeed float64
	QuicksandLimitY       float64 // body Y at which sinking stops

	MaxHP             int
	InitialLives      int
	MaxLives          int
	InvincibilityTime float64

	InitialMana      int
	InitialMaxMana   int
	ManaIncrement    int
	MaxManaIncrement int

	AttackStrength int

	WallTopMargin    float64
	WallBottomMargin float64

	SwordFrameWidth  float64
	SwordFrameHeight float64
	SwordActiveFrame int // 1-based frame of the slash clip that deals damage

	BodyWidth  float64
	BodyHeight float64

	SlashOffsets map[CharacterState]Offset
}

// DefaultTuning returns the stock values of the game
func DefaultTuning() Tuning {
	return Tuning{
		WalkingSpeed:          96,
		JumpSpeed:             -250,
		KnockbackUpSpeed:      -50,
		QuicksandWalkingSpeed: 32,
		QuicksandFallingSpeed: 8,
		QuicksandLimitY:       140,

		MaxHP:             16,
		InitialLives:      2,
		MaxLives:          9,
		InvincibilityTime: 1.0,

		InitialMana:      10,
		InitialMaxMana:   40,
		ManaIncrement:    10,
		MaxManaIncrement: 10,

		AttackStrength: 1,

		WallTopMargin:    6,
		WallBottomMargin: 18,

		SwordFrameWidth:  32,
		SwordFrameHeight: 16,
		SwordActiveFrame: 2,

		BodyWidth:  20,
		BodyHeight: 36,

		SlashOffsets: map[CharacterState]Offset{
			CrouchSlash: {X: 2, Y: 15},
			JumpSlash:   {X: 1, Y: 6},
			StandSlash:  {X: 4, Y: 10},
		},
	}
}

// slashOffsetTable resolves the offsets into an array indexed by state
func (t Tuning) slashOffsetTable() [characterStateCount]Offset {
	var table [characterStateCount]Offset
	for s, off := range t.SlashOffsets {
		if s.Valid() {
			table[s] = off
		}
	}
	return table
}
