package entity

// Rect is an axis-aligned rectangle in world pixels (top-left origin)
type Rect struct {
	X, Y float64
	W, H float64
}

// Left returns the left edge
func (r Rect) Left() float64 { return r.X }

// Right returns the right edge
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the top edge
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Intersects reports whether two rects overlap. Touching edges do not count.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Touching records which faces of a body were in contact during the last
// physics step. The host physics resets and fills it every tick.
type Touching struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
}

// None reports whether no face is touching anything
func (t Touching) None() bool {
	return !t.Up && !t.Down && !t.Left && !t.Right
}

// Body represents the physical body of an entity.
// Position is the top-left corner of the collision box in pixels; velocity
// and acceleration are in pixels per second.
// The core only issues commands (velocity, gravity flag) and reads the
// contact results; integration belongs to the host physics.
type Body struct {
	X, Y    float64
	W, H    float64
	OffsetX float64 // horizontal offset of the collision box inside the sprite frame
	OffsetY float64

	VX, VY float64
	AX, AY float64

	AllowGravity bool
	Enabled      bool

	OnFloor  bool
	Touching Touching
}

// NewBody creates an enabled body at the given pixel position
func NewBody(x, y, w, h float64) *Body {
	return &Body{
		X:            x,
		Y:            y,
		W:            w,
		H:            h,
		AllowGravity: true,
		Enabled:      true,
	}
}

// Rect returns the collision box in world coordinates
func (b *Body) Rect() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Top returns the top edge of the collision box
func (b *Body) Top() float64 { return b.Y }

// Bottom returns the bottom edge of the collision box
func (b *Body) Bottom() float64 { return b.Y + b.H }

// CenterX returns the horizontal center of the collision box
func (b *Body) CenterX() float64 { return b.X + b.W/2 }

// SetVelocity sets both velocity components
func (b *Body) SetVelocity(vx, vy float64) {
	b.VX = vx
	b.VY = vy
}

// Stop zeroes velocity and acceleration
func (b *Body) Stop() {
	b.VX, b.VY = 0, 0
	b.AX, b.AY = 0, 0
}

// ResetContacts clears the contact flags before a physics step
func (b *Body) ResetContacts() {
	b.OnFloor = false
	b.Touching = Touching{}
}

// Disable removes the body from simulation
func (b *Body) Disable() {
	b.Enabled = false
	b.Stop()
	b.ResetContacts()
}
