// Package config provides YAML-based configuration loading for blockfall:
// tick rate, key bindings, storage, SSH server and logging settings.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Config is the complete application configuration.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Keys    KeysConfig    `yaml:"keys"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

// GameConfig defines simulation timing.
type GameConfig struct {
	TickRate int    `yaml:"tick_rate"` // Steps per second
	Seed     uint64 `yaml:"seed"`      // Initial tick counter; 0 derives it from the clock
}

// KeysConfig maps each button to the key names that press it.
// Names follow Bubble Tea's key strings ("left", "a", "ctrl+c").
type KeysConfig struct {
	Left   []string `yaml:"left"`
	Right  []string `yaml:"right"`
	Rotate []string `yaml:"rotate"`
	Drop   []string `yaml:"drop"`
	Quit   []string `yaml:"quit"`
}

// StorageConfig locates the session history database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`
}

// Tick rate bounds accepted by Validate.
const (
	MinTickRate = 1
	MaxTickRate = 120
)

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.Game.TickRate < MinTickRate || c.Game.TickRate > MaxTickRate {
		return fmt.Errorf("config: game.tick_rate %d out of range [%d, %d]", c.Game.TickRate, MinTickRate, MaxTickRate)
	}
	keys := map[string][]string{
		"left":   c.Keys.Left,
		"right":  c.Keys.Right,
		"rotate": c.Keys.Rotate,
		"drop":   c.Keys.Drop,
		"quit":   c.Keys.Quit,
	}
	owner := map[string]string{}
	for name, bound := range keys {
		if len(bound) == 0 {
			return fmt.Errorf("config: keys.%s has no bindings", name)
		}
		for _, k := range bound {
			if prev, ok := owner[k]; ok && prev != name {
				return fmt.Errorf("config: key %q bound to both %s and %s", k, prev, name)
			}
			owner[k] = name
		}
	}
	if c.Storage.Path == "" {
		return fmt.Errorf("config: storage.path is empty")
	}
	if c.Server.IdleTimeout < 0 {
		return fmt.Errorf("config: server.idle_timeout is negative")
	}
	if !logLevels[c.Log.Level] {
		return fmt.Errorf("config: unknown log.level %q", c.Log.Level)
	}
	return nil
}

// Runtime returns the host settings derived from the configuration.
func (c Config) Runtime() core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.TickRate = c.Game.TickRate
	rc.Seed = int64(c.Game.Seed)
	return rc
}
