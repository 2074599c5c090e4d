// Package config loads the exporter's TOML configuration file:
// assets root, reserved prelude length, and the identification-message
// toggle. Mirrors the devkit's settings-with-documented-defaults
// pattern, swapping JSON for TOML.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds every externally tunable exporter setting.
// EmitIdentification is loaded and defaulted here, but no other
// package reads it: memory-preset packets with repeat 8..15 always
// carry the identification message.
type Config struct {
	AssetsRoot         string `toml:"assets_root"`
	ReservedPreludeLen int    `toml:"reserved_prelude_length"`
	EmitIdentification bool   `toml:"emit_identification_message"`
	NormalizePaths     bool   `toml:"normalize_paths"`
}

// Default returns the documented defaults: no assets root rewriting,
// a 19-packet reserved prelude (palette pair + border + 16 memory
// presets), identification message on, path normalization on.
func Default() Config {
	return Config{
		AssetsRoot:         "",
		ReservedPreludeLen: 19,
		EmitIdentification: true,
		NormalizePaths:     true,
	}
}

// Load reads a TOML config file at path, falling back to Default()
// for any field it doesn't set. A missing file is not an error; it
// simply yields Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Default(), fmt.Errorf("config: decode %s: %w", path, err)
	}
	return cfg, nil
}
