package main

import (
	"github.com/BurntSushi/toml"
)

// DemoConfig is loaded from a TOML file on disk. BurntSushi/toml is the
// only config-loading library anywhere in the retrieved corpus, so it's
// used here the same way the teacher corpus's own config loader does:
// decode straight into a plain struct, no schema layer.
type DemoConfig struct {
	Width       int     `toml:"width"`
	Height      int     `toml:"height"`
	TileSize    int     `toml:"tile_size"`
	ThreadCount int     `toml:"thread_count"`
	OrbitRadius float64 `toml:"orbit_radius"`
	OrbitSpeed  float64 `toml:"orbit_speed"`
	Presenter   string  `toml:"presenter"` // "terminal" or "gl"
}

func defaultConfig() DemoConfig {
	return DemoConfig{
		Width:       120,
		Height:      40,
		TileSize:    16,
		ThreadCount: 0,
		OrbitRadius: 6.0,
		OrbitSpeed:  0.02,
		Presenter:   "terminal",
	}
}

// loadConfig reads path and merges it over defaultConfig. A missing
// file is not an error; the demo just runs with defaults, the same way
// the teacher's renderer falls back to its DEFAULT_CAMERA_Z/FOV
// constants when nothing overrides them.
func loadConfig(path string) DemoConfig {
	cfg := defaultConfig()
	if path == "" {
		return cfg
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return defaultConfig()
	}
	return cfg
}
