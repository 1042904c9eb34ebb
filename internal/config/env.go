package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "BLOCKFALL_"

// LookupFunc reads an environment variable; os.LookupEnv in production.
type LookupFunc func(key string) (string, bool)

// LoadDotEnv loads KEY=VALUE pairs from the given files into the process
// environment. Missing files are ignored; variables already set win.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: cannot load %s: %w", p, err)
		}
	}
	return nil
}

// ApplyEnv overrides configuration fields from BLOCKFALL_* variables:
// TICK_RATE, SEED, DB, ADDRESS, HOST_KEY, IDLE_TIMEOUT, LOG_LEVEL, LOG_FILE.
func ApplyEnv(cfg *Config, lookup LookupFunc) error {
	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		return strings.TrimSpace(v), ok && strings.TrimSpace(v) != ""
	}

	if v, ok := get("TICK_RATE"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %sTICK_RATE: %w", EnvPrefix, err)
		}
		cfg.Game.TickRate = n
	}
	if v, ok := get("SEED"); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: %sSEED: %w", EnvPrefix, err)
		}
		cfg.Game.Seed = n
	}
	if v, ok := get("DB"); ok {
		cfg.Storage.Path = v
	}
	if v, ok := get("ADDRESS"); ok {
		cfg.Server.Address = v
	}
	if v, ok := get("HOST_KEY"); ok {
		cfg.Server.HostKey = v
	}
	if v, ok := get("IDLE_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: %sIDLE_TIMEOUT: %w", EnvPrefix, err)
		}
		cfg.Server.IdleTimeout = d
	}
	if v, ok := get("LOG_LEVEL"); ok {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v, ok := get("LOG_FILE"); ok {
		cfg.Log.File = v
	}
	return nil
}
