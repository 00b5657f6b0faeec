// Package input turns ebiten key presses into game actions.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/game"
)

// Keymap binds keys to actions while a session is being played.
type Keymap map[ebiten.Key]game.Action

// DefaultKeymap is arrows to move, Up or X to rotate clockwise, Z to rotate
// counter-clockwise, Down to soft drop, Space to hard drop and C to hold.
func DefaultKeymap() Keymap {
	return Keymap{
		ebiten.KeyArrowLeft:  game.MoveLeft,
		ebiten.KeyArrowRight: game.MoveRight,
		ebiten.KeyArrowUp:    game.RotateCW,
		ebiten.KeyX:          game.RotateCW,
		ebiten.KeyZ:          game.RotateCCW,
		ebiten.KeyArrowDown:  game.SoftDrop,
		ebiten.KeySpace:      game.HardDrop,
		ebiten.KeyC:          game.HoldPiece,
	}
}

func isModifier(k ebiten.Key) bool {
	switch k {
	case ebiten.KeyControl, ebiten.KeyControlLeft, ebiten.KeyControlRight,
		ebiten.KeyShift, ebiten.KeyShiftLeft, ebiten.KeyShiftRight,
		ebiten.KeyAlt, ebiten.KeyAltLeft, ebiten.KeyAltRight,
		ebiten.KeyMeta, ebiten.KeyMetaLeft, ebiten.KeyMetaRight:
		return true
	}
	return false
}

// Map translates the keys pressed this frame. Escape, or C with ctrl held,
// quits in any phase. On the game over screen any other key restarts;
// modifiers alone do not. While playing, keys outside the keymap are ignored.
func (km Keymap) Map(pressed []ebiten.Key, ctrl bool, phase game.Phase) (actions []game.Action, quit bool) {
	for _, k := range pressed {
		if k == ebiten.KeyEscape || (ctrl && k == ebiten.KeyC) {
			return nil, true
		}
	}

	switch phase {
	case game.Playing:
		for _, k := range pressed {
			if a, ok := km[k]; ok {
				actions = append(actions, a)
			}
		}
	case game.GameOver:
		for _, k := range pressed {
			if !isModifier(k) {
				return []game.Action{game.Restart}, false
			}
		}
	}
	return actions, false
}

// Keyboard is a loop.ActionSource reading ebiten's keyboard state. Only key
// presses count; holding or releasing a key does nothing.
type Keyboard struct {
	Keymap Keymap

	// Captured, if set, reports whether another consumer such as the imgui
	// inspector owns the keyboard. Presses are dropped while it does.
	Captured func() bool

	keys []ebiten.Key
}

// NewKeyboard returns a keyboard using DefaultKeymap.
func NewKeyboard() *Keyboard {
	return &Keyboard{Keymap: DefaultKeymap()}
}

func (k *Keyboard) Actions(phase game.Phase) ([]game.Action, bool) {
	k.keys = inpututil.AppendJustPressedKeys(k.keys[:0])
	if len(k.keys) == 0 {
		return nil, false
	}
	if k.Captured != nil && k.Captured() {
		return nil, false
	}
	return k.Keymap.Map(k.keys, ebiten.IsKeyPressed(ebiten.KeyControl), phase)
}
