package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the console configuration.
// Search order: customPath -> ~/.cartage/config.yaml -> ./config.yaml -> embedded default
func Load(customPath string) (ConsoleConfig, error) {
	var cfg ConsoleConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return withDefaults(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return withDefaults(cfg), nil
			}
		}
	}

	// Try local config file
	if data, err := os.ReadFile("config.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return withDefaults(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultConsoleYAML, &cfg); err != nil {
		return DefaultConsoleConfig(), nil // Fallback to hardcoded if embed fails
	}
	return withDefaults(cfg), nil
}

// withDefaults fills gaps a partial config file leaves open.
func withDefaults(cfg ConsoleConfig) ConsoleConfig {
	def := DefaultConsoleConfig()
	if cfg.Screen.Width <= 0 {
		cfg.Screen.Width = def.Screen.Width
	}
	if cfg.Screen.Height <= 0 {
		cfg.Screen.Height = def.Screen.Height
	}
	if cfg.Timing.TickRate <= 0 {
		cfg.Timing.TickRate = def.Timing.TickRate
	}
	if len(cfg.Keys.Left) == 0 {
		cfg.Keys.Left = def.Keys.Left
	}
	if len(cfg.Keys.Right) == 0 {
		cfg.Keys.Right = def.Keys.Right
	}
	if len(cfg.Keys.Up) == 0 {
		cfg.Keys.Up = def.Keys.Up
	}
	if len(cfg.Keys.Down) == 0 {
		cfg.Keys.Down = def.Keys.Down
	}
	if len(cfg.Keys.O) == 0 {
		cfg.Keys.O = def.Keys.O
	}
	if len(cfg.Keys.X) == 0 {
		cfg.Keys.X = def.Keys.X
	}
	return cfg
}

// userConfigPath returns the path to a user config file, or empty if
// the home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cartage", filename)
}
