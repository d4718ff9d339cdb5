// Package config provides YAML-based console configuration loading:
// screen geometry, tick rate, and key bindings.
package config

// ConsoleConfig contains all platform-level configuration.
type ConsoleConfig struct {
	Screen ScreenConfig `yaml:"screen"`
	Timing TimingConfig `yaml:"timing"`
	Keys   KeysConfig   `yaml:"keys"`
}

// ScreenConfig defines the console's fixed screen geometry.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines the simulation timing.
type TimingConfig struct {
	TickRate int `yaml:"tick_rate"`
}

// KeysConfig maps terminal keys onto the console's six buttons.
// Each entry lists the key names Bubble Tea reports for that button.
type KeysConfig struct {
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
	Up    []string `yaml:"up"`
	Down  []string `yaml:"down"`
	O     []string `yaml:"o"`
	X     []string `yaml:"x"`
}
