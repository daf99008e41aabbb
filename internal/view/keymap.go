package view

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Keymap binds raw key codes to the four movement intents.
type Keymap struct {
	Rotate    key.Binding
	MoveLeft  key.Binding
	MoveRight key.Binding
	MoveDown  key.Binding
}

// DefaultKeymap uses the arrow keys.
func DefaultKeymap() Keymap {
	return Keymap{
		Rotate:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "rotate")),
		MoveLeft:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		MoveRight: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		MoveDown:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
	}
}

// NewKeymap builds a keymap from key lists per intent. Intents without
// keys keep their default binding.
func NewKeymap(keys map[core.Intent][]string) Keymap {
	km := DefaultKeymap()
	for _, intent := range core.MovementIntents {
		codes := keys[intent]
		if len(codes) == 0 {
			continue
		}
		b := km.binding(intent)
		*b = key.NewBinding(key.WithKeys(codes...), key.WithHelp(codes[0], b.Help().Desc))
	}
	return km
}

// Lookup returns the movement intent bound to code.
func (k Keymap) Lookup(code string) (core.Intent, bool) {
	c := keyCode(code)
	for _, intent := range core.MovementIntents {
		if key.Matches(c, *k.binding(intent)) {
			return intent, true
		}
	}
	return core.IntentNone, false
}

// ShortHelp implements help.KeyMap.
func (k Keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.Rotate, k.MoveLeft, k.MoveRight, k.MoveDown}
}

// FullHelp implements help.KeyMap.
func (k Keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func (k *Keymap) binding(intent core.Intent) *key.Binding {
	switch intent {
	case core.IntentRotate:
		return &k.Rotate
	case core.IntentMoveLeft:
		return &k.MoveLeft
	case core.IntentMoveRight:
		return &k.MoveRight
	case core.IntentMoveDown:
		return &k.MoveDown
	}
	return &key.Binding{}
}

// keyCode lets a raw code string be matched against bindings.
type keyCode string

func (c keyCode) String() string { return string(c) }
