package system

import (
	"math"

	"github.com/younwookim/ninja/internal/domain/entity"
)

// resolveContacts handles body-to-body contacts after movement: enemies
// ramming characters and characters walking into falling power-ups.
// Sword hits are tested by the characters themselves.
func (l *Level) resolveContacts() {
	for _, c := range l.characters {
		if c.IsDead() {
			continue
		}
		for _, e := range l.enemies {
			if !e.IsAlive() || !e.Body().Enabled {
				continue
			}
			if !c.Body().Rect().Intersects(e.Body().Rect()) {
				continue
			}
			markContact(c.Body(), e.Body())
			c.GotHit(e)
			if c.IsDead() {
				break
			}
		}
	}

	for _, c := range l.characters {
		if c.IsDead() {
			continue
		}
		for _, p := range l.powerUps {
			if !p.Collectable() {
				continue
			}
			if c.Body().Rect().Intersects(p.Body().Rect()) {
				c.PickUpPowerUp(p)
			}
		}
	}
}

// markContact sets the touching faces of two overlapping bodies along the
// axis of least penetration
func markContact(a, b *entity.Body) {
	ra, rb := a.Rect(), b.Rect()
	overlapX := math.Min(ra.Right(), rb.Right()) - math.Max(ra.Left(), rb.Left())
	overlapY := math.Min(ra.Bottom(), rb.Bottom()) - math.Max(ra.Top(), rb.Top())

	if overlapX < overlapY {
		if ra.X+ra.W/2 < rb.X+rb.W/2 {
			a.Touching.Right = true
			b.Touching.Left = true
		} else {
			a.Touching.Left = true
			b.Touching.Right = true
		}
		return
	}
	if ra.Y+ra.H/2 < rb.Y+rb.H/2 {
		a.Touching.Down = true
		b.Touching.Up = true
	} else {
		a.Touching.Up = true
		b.Touching.Down = true
	}
}
