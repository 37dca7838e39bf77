package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// settings is the resolved binary configuration: defaults, overridden
// by an optional TOML file, overridden by explicit flags.
type settings struct {
	Width   int
	Height  int
	Exits   int
	Seed    int64
	Seeded  bool
	NoDraw  bool
	Verbose bool
}

func defaultSettings() settings {
	return settings{
		Width:  15,
		Height: 15,
		Exits:  4,
	}
}

type fileConfig struct {
	Width  int   `toml:"width"`
	Height int   `toml:"height"`
	Exits  int   `toml:"exits"`
	Seed   int64 `toml:"seed"`
}

// applyConfigFile merges values from a TOML file into cfg. Only keys
// actually present in the file override; a configured seed implies
// deterministic generation.
func applyConfigFile(path string, cfg *settings) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fmt.Errorf("load maze config: %w", err)
	}

	if meta.IsDefined("width") {
		cfg.Width = raw.Width
	}
	if meta.IsDefined("height") {
		cfg.Height = raw.Height
	}
	if meta.IsDefined("exits") {
		cfg.Exits = raw.Exits
	}
	if meta.IsDefined("seed") {
		cfg.Seed = raw.Seed
		cfg.Seeded = true
	}

	return nil
}
