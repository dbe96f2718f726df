// Package config loads the TOML run configuration, falling back to
// defaults when no file exists.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the complete run configuration
type Config struct {
	// TickMs is the scheduler cadence in milliseconds
	TickMs int `toml:"tick_ms"`

	// Sound enables the tone cues
	Sound bool `toml:"sound"`

	// LogPath receives debug logs; empty disables logging entirely
	LogPath string `toml:"log_path"`

	// SavePath is where the save/load commands read and write
	SavePath string `toml:"save_path"`

	// Leader pre-seeds the wagon leader's name, skipping the prompt
	Leader string `toml:"leader"`
}

// Default returns the configuration used when no file is present
func Default() Config {
	return Config{
		TickMs:   125,
		Sound:    true,
		SavePath: "wagontrail-save.json",
	}
}

// Load reads the file at path over the defaults. A missing file is not
// an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.TickMs <= 0 {
		return cfg, fmt.Errorf("config %s: tick_ms must be positive, got %d", path, cfg.TickMs)
	}
	return cfg, nil
}
