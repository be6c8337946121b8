package entity

// Input answers whether a logical button is currently held.
// One Input is bound to a character for its whole lifetime.
type Input interface {
	Held(b Button) bool
}

// Animator is the visual representation of an entity.
// Frame returns the 1-based index of the frame being shown in the current
// clip. A completion callback fires at most once, when a non-looping clip
// reaches its end, and is replaced by the next OnComplete call. Play does
// not drop a pending callback.
type Animator interface {
	Play(name string)
	Stop()
	SetVisible(visible bool)
	Visible() bool
	SetFlipX(flip bool)
	SetAlpha(alpha float64)
	Frame() int
	OnComplete(fn func())
	ClearOnComplete()
}

// Attacker is anything that can deal damage
type Attacker interface {
	AttackStrength() int
	Body() *Body
}

// Target is anything that can receive damage.
// GotHit reports whether the hit was handled.
type Target interface {
	GotHit(attacker Attacker) bool
}

// WallID is a handle into the level's wall registry
type WallID int

// NoWall is the invalid handle; no registered wall uses it
const NoWall WallID = -1

// World is the level controller as seen by the character
type World interface {
	LevelWidth() float64
	// Wall returns the bounds of a registered wall; false if the handle is stale.
	Wall(id WallID) (Rect, bool)
	// OverlapEnemies calls fn for each live enemy overlapping area.
	OverlapEnemies(area Rect, fn func(t Target))
	// OverlapPowerUps calls fn for each power-up overlapping area.
	OverlapPowerUps(area Rect, fn func(p *PowerUp))
	// PlayerDefeated is notified once when a character's hp reaches 0.
	PlayerDefeated(c *Character)
}
