// Package config assembles the runtime settings from three layers:
// built-in defaults, an optional TOML file and DRIFTFIELD_* environment
// variables, each layer overriding the previous one.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"github.com/driftwork/driftfield/core/field"
)

type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type Field struct {
	SmallCount int     `toml:"small_count"`
	LargeCount int     `toml:"large_count"`
	Breakpoint float64 `toml:"breakpoint"`
}

type Follower struct {
	// Enabled is the once-at-setup gate: when false the indicator is never
	// constructed, mirroring a coarse-pointer device.
	Enabled bool `toml:"enabled"`
}

type Theme struct {
	Dark bool `toml:"dark"`
}

type Config struct {
	Window   Window   `toml:"window"`
	Field    Field    `toml:"field"`
	Follower Follower `toml:"follower"`
	Theme    Theme    `toml:"theme"`
	LogLevel string   `toml:"log_level"`
}

func Defaults() Config {
	return Config{
		Window: Window{Width: 1024, Height: 640, Title: "Driftfield"},
		Field: Field{
			SmallCount: field.DefaultSmallCount,
			LargeCount: field.DefaultLargeCount,
			Breakpoint: field.DefaultBreakpoint,
		},
		Follower: Follower{Enabled: true},
		Theme:    Theme{Dark: true},
		LogLevel: "INFO",
	}
}

// Load returns the defaults overlaid with the TOML file at path (skipped when
// path is empty, an error when it is set but unreadable or malformed) and
// then with any environment overrides.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	applyEnv(&cfg, os.LookupEnv)
	return cfg, nil
}

// applyEnv overlays DRIFTFIELD_* variables. Values that fail to parse are
// ignored; the caller's layer stays in effect.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) {
	if v, ok := lookup("DRIFTFIELD_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := lookup("DRIFTFIELD_DARK"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Theme.Dark = b
		}
	}
	if v, ok := lookup("DRIFTFIELD_FOLLOWER"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Follower.Enabled = b
		}
	}
	if v, ok := lookup("DRIFTFIELD_WIDTH"); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Window.Width = n
		}
	}
	if v, ok := lookup("DRIFTFIELD_HEIGHT"); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Window.Height = n
		}
	}
}
