package entity

// Sword is the character's weapon: a body used for overlap tests and a
// sprite that plays the slash. It is only active while drawn.
type Sword struct {
	body   *Body
	sprite Animator

	frameWidth  float64
	activeFrame int
}

// NewSword creates a sheathed sword with the given frame size
func NewSword(sprite Animator, frameWidth, frameHeight float64, activeFrame int) *Sword {
	body := NewBody(0, 0, frameWidth/2, frameHeight)
	body.AllowGravity = false
	s := &Sword{
		body:        body,
		sprite:      sprite,
		frameWidth:  frameWidth,
		activeFrame: activeFrame,
	}
	s.undraw()
	return s
}

// Body returns the hit volume
func (s *Sword) Body() *Body { return s.body }

// Sprite returns the visual representation
func (s *Sword) Sprite() Animator { return s.sprite }

// Visible reports whether the sword is drawn
func (s *Sword) Visible() bool {
	return s.sprite != nil && s.sprite.Visible()
}

// Striking reports whether the slash is on its damaging frame
func (s *Sword) Striking() bool {
	return s.Visible() && s.sprite.Frame() == s.activeFrame
}

func (s *Sword) draw(poweredUp bool) {
	if s.sprite == nil {
		return
	}
	s.sprite.SetVisible(true)
	if poweredUp {
		s.sprite.Play("pslash")
	} else {
		s.sprite.Play("slash")
	}
}

func (s *Sword) undraw() {
	if s.sprite == nil {
		return
	}
	s.sprite.SetVisible(false)
	s.sprite.Stop()
}

// place moves the hit volume next to the character for its current state
// and facing. The plain sword only hurts with the half nearest the hilt.
func (s *Sword) place(c *Character) {
	off := c.offsets[c.state]
	owner := c.body
	full := s.frameWidth

	s.body.W = full / 2
	if c.poweredUp {
		s.body.W = full
	}

	if s.sprite != nil {
		s.sprite.SetFlipX(c.facing < 0)
	}
	if c.facing > 0 {
		s.body.OffsetX = 0
		s.body.X = owner.X + owner.W + off.X
	} else {
		s.body.X = owner.X - full - off.X
		s.body.OffsetX = 0
		if !c.poweredUp {
			s.body.OffsetX = full / 2
			s.body.X += s.body.OffsetX
		}
	}
	s.body.Y = owner.Y + off.Y
}

// testSwordHit damages enemies and knocks loose power-ups touched by the
// sword on its striking frame
func (c *Character) testSwordHit() {
	if c.sword == nil || !c.sword.Striking() || c.world == nil {
		return
	}
	area := c.sword.body.Rect()
	c.world.OverlapEnemies(area, func(t Target) {
		t.GotHit(c)
	})
	c.world.OverlapPowerUps(area, func(p *PowerUp) {
		p.Strike()
	})
}
