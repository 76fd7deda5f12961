// Package config loads cmd/forth83's optional TOML launch configuration,
// patterned on the arm-emulator example's config package: a struct of
// plain defaults, overridden by whatever the file on disk supplies.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the settings a host may pre-set before the REPL starts.
// It is a process launch file, not a Forth image: nothing here round-trips
// VM state.
type Config struct {
	Trace   bool     `toml:"trace"`
	Preload []string `toml:"preload"`
}

// Default returns a Config with the interpreter's normal defaults.
func Default() *Config {
	return &Config{
		Trace: false,
	}
}

// Load reads path if it exists, overlaying its settings onto Default.
// A missing file is not an error: Load returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return cfg, nil
}
