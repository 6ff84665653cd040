package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/liquid/internal/carousel"
)

type Config struct {
	Deck string `koanf:"deck"` // deck file shown when none is given on the command line

	Carousel CarouselConfig `koanf:"carousel"`
	Logging  LoggingConfig  `koanf:"logging"`
	State    StateConfig    `koanf:"state"`
}

// CarouselConfig mirrors the carousel options.
type CarouselConfig struct {
	Height            int  `koanf:"height"`             // rows
	HideNavigation    bool `koanf:"hide_navigation"`    // show arrows only while hovered
	AnimationDuration int  `koanf:"animation_duration"` // milliseconds
	NoTransitions     bool `koanf:"no_transitions"`     // always use explicit animations
	TouchDistance     int  `koanf:"touch_distance"`     // drag distance in cells that counts as a swipe
}

// LoggingConfig controls the file logger.
type LoggingConfig struct {
	Level  string `koanf:"level"`  // zerolog level name (default: "info")
	Format string `koanf:"format"` // "json" or "console" (default: "json")
	File   string `koanf:"file"`   // empty uses the XDG state directory
}

// StateConfig controls window persistence.
type StateConfig struct {
	Disabled bool `koanf:"disabled"`
}

// Default returns the configuration used when no file sets a value.
func Default() *Config {
	opts := carousel.DefaultOptions()
	return &Config{
		Carousel: CarouselConfig{
			Height:            opts.Height,
			HideNavigation:    opts.HideNavigation,
			AnimationDuration: int(opts.AnimationDuration / time.Millisecond),
			NoTransitions:     opts.NoTransitions,
			TouchDistance:     opts.TouchDistance,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads the configuration. With an explicit path only that file is
// read and it must exist; otherwise the default locations are tried.
func Load(explicit string) (*Config, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return nil, err
		}
		return loadFrom([]string{explicit})
	}
	return loadFrom(getConfigPaths())
}

func loadFrom(paths []string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Deck = expandPath(cfg.Deck)
	cfg.Logging.File = expandPath(cfg.Logging.File)

	if err := cfg.Options().Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/liquid/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "liquid", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// Options converts the carousel section to carousel options.
func (c *Config) Options() carousel.Options {
	return carousel.Options{
		Height:            c.Carousel.Height,
		HideNavigation:    c.Carousel.HideNavigation,
		AnimationDuration: time.Duration(c.Carousel.AnimationDuration) * time.Millisecond,
		NoTransitions:     c.Carousel.NoTransitions,
		TouchDistance:     c.Carousel.TouchDistance,
	}
}
