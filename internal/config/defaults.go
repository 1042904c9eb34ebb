package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/blockfall.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration, used when the embedded
// YAML cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Game: GameConfig{
			TickRate: 10,
		},
		Keys: KeysConfig{
			Left:   []string{"left", "a"},
			Right:  []string{"right", "d", "enter"},
			Rotate: []string{"up", "w"},
			Drop:   []string{"down", "s"},
			Quit:   []string{"q", "ctrl+c", "esc"},
		},
		Storage: StorageConfig{
			Path: "~/.blockfall/history.db",
		},
		Server: ServerConfig{
			Address:     ":23234",
			HostKey:     ".ssh/blockfall_ed25519",
			IdleTimeout: 10 * time.Minute,
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.blockfall/blockfall.log",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
