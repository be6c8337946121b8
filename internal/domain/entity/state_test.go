package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCharacterState_Names(t *testing.T) {
	for s := StandIdle; s < characterStateCount; s++ {
		t.Run(s.String(), func(t *testing.T) {
			parsed, ok := ParseCharacterState(s.String())
			assert.True(t, ok)
			assert.Equal(t, s, parsed)
			assert.NotNil(t, characterStates[s], "every state has a behavior")
		})
	}

	assert.Equal(t, "unknown", CharacterState(-1).String())
	assert.False(t, CharacterState(99).Valid())
}

func TestCharacterState_Groups(t *testing.T) {
	assert.True(t, ClimbIdle.Climbing())
	assert.True(t, ClimbMove.Climbing())
	assert.False(t, JumpDescend.Climbing())

	assert.True(t, CrouchSlash.Slashing())
	assert.True(t, StandSlash.Slashing())
	assert.True(t, JumpSlash.Slashing())
	assert.False(t, GetHit.Slashing())
}

func TestParseButton(t *testing.T) {
	for _, b := range Buttons {
		parsed, ok := ParseButton(b.String())
		assert.True(t, ok)
		assert.Equal(t, b, parsed)
	}

	_, ok := ParseButton("start")
	assert.False(t, ok)
}

func TestTuning_SlashOffsetTable(t *testing.T) {
	tuning := DefaultTuning()
	tuning.SlashOffsets[CharacterState(99)] = Offset{X: 5}

	table := tuning.slashOffsetTable()
	assert.Equal(t, Offset{X: 2, Y: 15}, table[CrouchSlash])
	assert.Equal(t, Offset{X: 1, Y: 6}, table[JumpSlash])
	assert.Equal(t, Offset{X: 4, Y: 10}, table[StandSlash])
	assert.Equal(t, Offset{}, table[Run])
}

func TestButtonSet(t *testing.T) {
	var s ButtonSet
	assert.False(t, s.Held(ButtonA))

	s = s.With(ButtonA).With(ButtonLeft)
	assert.True(t, s.Held(ButtonA))
	assert.True(t, s.Held(ButtonLeft))
	assert.False(t, s.Held(ButtonB))

	in := fakeInput{}
	in.press(ButtonUp, ButtonB)
	assert.Equal(t, ButtonSet(0).With(ButtonUp).With(ButtonB), ButtonsOf(in))
	assert.Equal(t, ButtonSet(0), ButtonsOf(nil))
}
