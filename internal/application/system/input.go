package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/ninja/internal/domain/entity"
)

// Source reads the held buttons of one player's device
type Source interface {
	Read() entity.ButtonSet
}

// KeyboardSource reads bound keys. Several keys may share a button.
type KeyboardSource struct {
	bindings map[entity.Button][]ebiten.Key
	pressed  func(ebiten.Key) bool
}

// NewKeyboardSource creates a keyboard source with the default bindings:
// arrows or WASD to move, Z/J to jump, X/K to attack
func NewKeyboardSource() *KeyboardSource {
	return &KeyboardSource{
		bindings: map[entity.Button][]ebiten.Key{
			entity.ButtonUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
			entity.ButtonDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
			entity.ButtonLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
			entity.ButtonRight: {ebiten.KeyArrowRight, ebiten.KeyD},
			entity.ButtonA:     {ebiten.KeyZ, ebiten.KeyJ},
			entity.ButtonB:     {ebiten.KeyX, ebiten.KeyK},
		},
		pressed: ebiten.IsKeyPressed,
	}
}

// Bind replaces the keys of a button
func (k *KeyboardSource) Bind(b entity.Button, keys ...ebiten.Key) {
	k.bindings[b] = keys
}

// Read implements Source
func (k *KeyboardSource) Read() entity.ButtonSet {
	var s entity.ButtonSet
	for b, keys := range k.bindings {
		for _, key := range keys {
			if k.pressed(key) {
				s = s.With(b)
				break
			}
		}
	}
	return s
}

// GamepadSource reads a standard-layout gamepad
type GamepadSource struct {
	id       ebiten.GamepadID
	bindings map[entity.Button]ebiten.StandardGamepadButton
	pressed  func(ebiten.GamepadID, ebiten.StandardGamepadButton) bool
}

// NewGamepadSource creates a source for the gamepad with the given id
func NewGamepadSource(id ebiten.GamepadID) *GamepadSource {
	return &GamepadSource{
		id: id,
		bindings: map[entity.Button]ebiten.StandardGamepadButton{
			entity.ButtonUp:    ebiten.StandardGamepadButtonLeftTop,
			entity.ButtonDown:  ebiten.StandardGamepadButtonLeftBottom,
			entity.ButtonLeft:  ebiten.StandardGamepadButtonLeftLeft,
			entity.ButtonRight: ebiten.StandardGamepadButtonLeftRight,
			entity.ButtonA:     ebiten.StandardGamepadButtonRightBottom,
			entity.ButtonB:     ebiten.StandardGamepadButtonRightLeft,
		},
		pressed: ebiten.IsStandardGamepadButtonPressed,
	}
}

// Read implements Source
func (g *GamepadSource) Read() entity.ButtonSet {
	var s entity.ButtonSet
	for b, btn := range g.bindings {
		if g.pressed(g.id, btn) {
			s = s.With(b)
		}
	}
	return s
}

// InputSystem snapshots every player's device once per frame, so all
// characters see a stable button set for the whole tick
type InputSystem struct {
	sources [entity.MaxPlayers]Source
	held    [entity.MaxPlayers]entity.ButtonSet
}

// NewInputSystem creates an input system with no devices bound
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// Bind attaches a device to a player slot
func (s *InputSystem) Bind(player int, src Source) {
	if player < 0 || player >= entity.MaxPlayers {
		return
	}
	s.sources[player] = src
}

// BindConnected binds the keyboard to player 1 and the connected standard
// gamepads to the remaining slots. Returns the number of players bound.
func (s *InputSystem) BindConnected() int {
	s.Bind(0, NewKeyboardSource())
	n := 1
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if n >= entity.MaxPlayers {
			break
		}
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		s.Bind(n, NewGamepadSource(id))
		n++
	}
	return n
}

// Update reads every bound device
func (s *InputSystem) Update() {
	for i, src := range s.sources {
		if src == nil {
			s.held[i] = 0
			continue
		}
		s.held[i] = src.Read()
	}
}

// Override replaces this frame's snapshot, as a replay does
func (s *InputSystem) Override(frame []entity.ButtonSet) {
	for i := range s.held {
		s.held[i] = 0
		if i < len(frame) {
			s.held[i] = frame[i]
		}
	}
}

// Snapshot returns the held buttons of the first n players
func (s *InputSystem) Snapshot(n int) []entity.ButtonSet {
	if n > entity.MaxPlayers {
		n = entity.MaxPlayers
	}
	out := make([]entity.ButtonSet, n)
	copy(out, s.held[:n])
	return out
}

// Player returns the input a character of the given slot reads
func (s *InputSystem) Player(player int) entity.Input {
	return playerInput{sys: s, slot: player}
}

type playerInput struct {
	sys  *InputSystem
	slot int
}

func (p playerInput) Held(b entity.Button) bool {
	if p.slot < 0 || p.slot >= entity.MaxPlayers {
		return false
	}
	return p.sys.held[p.slot].Held(b)
}
