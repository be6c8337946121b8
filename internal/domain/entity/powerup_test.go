package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPowerUp(t *testing.T) {
	sprite := newFakeAnimator()
	p := NewPowerUp(NewBody(10, 10, 8, 8), sprite, VariantWheel)

	assert.Equal(t, Glowing, p.State())
	assert.Equal(t, VariantWheel, p.Variant())
	assert.False(t, p.Body().AllowGravity)
	assert.False(t, p.Collectable())
	assert.Equal(t, "glow", sprite.last())
}

func TestPowerUp_Strike(t *testing.T) {
	sprite := newFakeAnimator()
	p := NewPowerUp(NewBody(10, 10, 8, 8), sprite, VariantMana)

	require.True(t, p.Strike())
	assert.Equal(t, Falling, p.State())
	assert.True(t, p.Body().AllowGravity)
	assert.True(t, p.Collectable())
	assert.Equal(t, "fall", sprite.last())

	assert.False(t, p.Strike(), "already falling")
	assert.Equal(t, []string{"glow", "fall"}, sprite.played)
}

func TestPowerUp_Collect(t *testing.T) {
	sprite := newFakeAnimator()
	p := NewPowerUp(NewBody(10, 10, 8, 8), sprite, VariantMana)
	p.Strike()

	p.collect()
	assert.True(t, p.Collected())
	assert.False(t, p.Collectable())
	assert.False(t, p.Body().Enabled)
	assert.False(t, sprite.Visible())
	assert.False(t, p.Strike())
}

func TestPowerUp_Update(t *testing.T) {
	p := NewPowerUp(NewBody(0, 0, 8, 8), nil, VariantStar)
	p.Update(0.5)
	assert.Equal(t, 0.5, p.StateTime())

	p.Strike()
	assert.Equal(t, 0.0, p.StateTime())
}

func TestVariant(t *testing.T) {
	tests := []struct {
		name    string
		variant Variant
		special bool
	}{
		{"mana", VariantMana, false},
		{"sword", VariantSword, false},
		{"star", VariantStar, true},
		{"blast_up", VariantBlastUp, true},
		{"wheel", VariantWheel, true},
		{"blast_down", VariantBlastDown, true},
		{"slice_up_down", VariantSliceUpDown, true},
		{"max_mana", VariantMaxMana, false},
		{"extra_life", VariantExtraLife, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.variant.String())
			assert.Equal(t, tt.special, tt.variant.SpecialAttack())

			v, ok := ParseVariant(tt.name)
			assert.True(t, ok)
			assert.Equal(t, tt.variant, v)
		})
	}

	_, ok := ParseVariant("laser")
	assert.False(t, ok)
	assert.Equal(t, "unknown", Variant(42).String())
}
