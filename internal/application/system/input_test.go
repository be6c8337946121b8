package system

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/younwookim/ninja/internal/domain/entity"
)

type fakeSource entity.ButtonSet

func (f fakeSource) Read() entity.ButtonSet { return entity.ButtonSet(f) }

func TestKeyboardSource_Read(t *testing.T) {
	down := map[ebiten.Key]bool{}
	k := NewKeyboardSource()
	k.pressed = func(key ebiten.Key) bool { return down[key] }

	assert.Equal(t, entity.ButtonSet(0), k.Read())

	down[ebiten.KeyA] = true
	down[ebiten.KeyZ] = true
	s := k.Read()
	assert.True(t, s.Held(entity.ButtonLeft))
	assert.True(t, s.Held(entity.ButtonA))
	assert.False(t, s.Held(entity.ButtonRight))

	k.Bind(entity.ButtonA, ebiten.KeySpace)
	assert.False(t, k.Read().Held(entity.ButtonA))
	down[ebiten.KeySpace] = true
	assert.True(t, k.Read().Held(entity.ButtonA))
}

func TestGamepadSource_Read(t *testing.T) {
	g := NewGamepadSource(3)
	g.pressed = func(id ebiten.GamepadID, b ebiten.StandardGamepadButton) bool {
		return id == 3 && b == ebiten.StandardGamepadButtonRightLeft
	}

	s := g.Read()
	assert.True(t, s.Held(entity.ButtonB))
	assert.False(t, s.Held(entity.ButtonA))
}

func TestInputSystem(t *testing.T) {
	sys := NewInputSystem()
	sys.Bind(0, fakeSource(entity.ButtonSet(0).With(entity.ButtonRight)))
	sys.Bind(2, fakeSource(entity.ButtonSet(0).With(entity.ButtonB)))
	sys.Bind(entity.MaxPlayers, fakeSource(0xff))

	p1 := sys.Player(0)
	assert.False(t, p1.Held(entity.ButtonRight), "nothing read yet")

	sys.Update()
	assert.True(t, p1.Held(entity.ButtonRight))
	assert.False(t, sys.Player(1).Held(entity.ButtonB))
	assert.True(t, sys.Player(2).Held(entity.ButtonB))
	assert.False(t, sys.Player(7).Held(entity.ButtonB))

	snap := sys.Snapshot(3)
	assert.Len(t, snap, 3)
	assert.Equal(t, entity.ButtonSet(0).With(entity.ButtonRight), snap[0])

	sys.Override([]entity.ButtonSet{entity.ButtonSet(0).With(entity.ButtonA)})
	assert.True(t, p1.Held(entity.ButtonA))
	assert.False(t, p1.Held(entity.ButtonRight))
	assert.False(t, sys.Player(2).Held(entity.ButtonB))
}
