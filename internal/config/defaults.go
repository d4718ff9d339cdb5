package config

import (
	_ "embed"
)

//go:embed defaults/console.yaml
var defaultConsoleYAML []byte

// DefaultConsoleConfig returns the built-in console configuration.
func DefaultConsoleConfig() ConsoleConfig {
	return ConsoleConfig{
		Screen: ScreenConfig{
			Width:  64,
			Height: 24,
		},
		Timing: TimingConfig{
			TickRate: 30,
		},
		Keys: KeysConfig{
			Left:  []string{"left", "a"},
			Right: []string{"right", "d"},
			Up:    []string{"up", "w"},
			Down:  []string{"down", "s"},
			O:     []string{"z", "enter"},
			X:     []string{"x", " "},
		},
	}
}
