package entity

// Variant encodes the effect of a power-up
type Variant int

const (
	VariantMana Variant = iota
	VariantSword
	VariantStar
	VariantBlastUp
	VariantWheel
	VariantBlastDown
	VariantSliceUpDown
	VariantMaxMana
	VariantExtraLife
	variantCount
)

var variantNames = [variantCount]string{
	VariantMana:        "mana",
	VariantSword:       "sword",
	VariantStar:        "star",
	VariantBlastUp:     "blast_up",
	VariantWheel:       "wheel",
	VariantBlastDown:   "blast_down",
	VariantSliceUpDown: "slice_up_down",
	VariantMaxMana:     "max_mana",
	VariantExtraLife:   "extra_life",
}

// String returns the variant name used in stage files
func (v Variant) String() string {
	if !v.Valid() {
		return "unknown"
	}
	return variantNames[v]
}

// Valid reports whether v is a declared variant
func (v Variant) Valid() bool {
	return v >= 0 && v < variantCount
}

// SpecialAttack reports whether v selects the character's special attack
func (v Variant) SpecialAttack() bool {
	switch v {
	case VariantStar, VariantBlastUp, VariantWheel, VariantBlastDown, VariantSliceUpDown:
		return true
	}
	return false
}

// ParseVariant resolves a stage-file name such as "extra_life"
func ParseVariant(name string) (Variant, bool) {
	for i, n := range variantNames {
		if n == name {
			return Variant(i), true
		}
	}
	return 0, false
}

// PowerUp is a collectible that floats while glowing and drops once struck
// by a sword. Collection is a one-shot event owned by the character.
type PowerUp struct {
	Entity[PowerUpState]

	variant   Variant
	collected bool
}

// NewPowerUp creates a glowing power-up
func NewPowerUp(body *Body, sprite Animator, variant Variant) *PowerUp {
	p := &PowerUp{
		Entity:  newEntity[PowerUpState](body, sprite, 1),
		variant: variant,
	}
	p.onEnter = p.enter
	p.setState(Glowing)
	return p
}

func (p *PowerUp) enter(state PowerUpState) {
	switch state {
	case Glowing:
		p.body.AllowGravity = false
	case Falling:
		p.body.AllowGravity = true
	}
}

// Variant returns the effect tag
func (p *PowerUp) Variant() Variant { return p.variant }

// Strike reacts to a sword hit: a glowing power-up starts falling.
// Returns true if the power-up changed state.
func (p *PowerUp) Strike() bool {
	if p.collected || p.state != Glowing {
		return false
	}
	p.setState(Falling)
	return true
}

// Collectable reports whether the power-up can be picked up
func (p *PowerUp) Collectable() bool {
	return !p.collected && p.state == Falling
}

// Collected reports whether the power-up was already picked up
func (p *PowerUp) Collected() bool { return p.collected }

// collect removes the power-up from simulation
func (p *PowerUp) collect() {
	p.collected = true
	p.body.Disable()
	if p.sprite != nil {
		p.sprite.SetVisible(false)
	}
}

// Update advances the time in state. Power-ups take no input.
func (p *PowerUp) Update(dt float64) {
	p.tick(dt)
}
