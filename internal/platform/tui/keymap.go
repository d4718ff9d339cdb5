package tui

import (
	"github.com/avoronkov/cartage/internal/config"
	"github.com/avoronkov/cartage/internal/core"
)

// Keymap resolves terminal key names to console buttons.
type Keymap struct {
	byKey map[string]core.Button
}

// NewKeymap builds a keymap from the key bindings configuration.
// Later bindings win when a key is listed for two buttons.
func NewKeymap(keys config.KeysConfig) Keymap {
	km := Keymap{byKey: make(map[string]core.Button)}
	bind := func(names []string, b core.Button) {
		for _, n := range names {
			km.byKey[n] = b
		}
	}
	bind(keys.Left, core.BtnLeft)
	bind(keys.Right, core.BtnRight)
	bind(keys.Up, core.BtnUp)
	bind(keys.Down, core.BtnDown)
	bind(keys.O, core.BtnO)
	bind(keys.X, core.BtnX)
	return km
}

// Button resolves a key name. ok is false for unbound keys.
func (k Keymap) Button(key string) (core.Button, bool) {
	b, ok := k.byKey[key]
	return b, ok
}
