// Package config loads user settings from TOML files.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// AppName names the config and state directories.
const AppName = "ripple"

// Config is the user configuration read from config.toml.
type Config struct {
	DefaultFolder string `koanf:"default_folder"`                                             // file picker start dir, empty means cwd
	Icons         string `koanf:"icons" default:"unicode" validate:"oneof=nerd unicode none"` // "nerd", "unicode", or "none"

	Volume       float64       `koanf:"volume" default:"0.7" validate:"gte=0,lte=1"`
	TickInterval time.Duration `koanf:"tick_interval" default:"1s" validate:"gte=10ms"`
	SeekStep     time.Duration `koanf:"seek_step" default:"5s" validate:"gt=0"`
	ScrubRelease time.Duration `koanf:"scrub_release" default:"400ms" validate:"gte=0"`
	ResyncEvery  int           `koanf:"resync_every" default:"10" validate:"gte=0"` // ticks, 0 disables

	AlbumArt AlbumArtConfig `koanf:"album_art"`

	Notifications bool `koanf:"notifications" default:"true"` // desktop notification on track change
	MPRIS         bool `koanf:"mpris" default:"true"`         // media keys and desktop widgets

	Theme Theme `koanf:"theme"`
}

// AlbumArtConfig sizes the cover image in terminal cells.
type AlbumArtConfig struct {
	Width  int `koanf:"width" default:"24" validate:"gte=0,lte=200"`
	Height int `koanf:"height" default:"12" validate:"gte=0,lte=100"`
}

// Theme holds the UI palette as hex colors. Defaults are Catppuccin Mocha.
type Theme struct {
	Base     string `koanf:"base" default:"#1e1e2e" validate:"hexcolor"`
	Surface0 string `koanf:"surface0" default:"#313244" validate:"hexcolor"`
	Surface1 string `koanf:"surface1" default:"#45475a" validate:"hexcolor"`
	Text     string `koanf:"text" default:"#cdd6f4" validate:"hexcolor"`
	Subtext0 string `koanf:"subtext0" default:"#a6adc8" validate:"hexcolor"`
	Blue     string `koanf:"blue" default:"#89b4fa" validate:"hexcolor"`
	Lavender string `koanf:"lavender" default:"#b4befe" validate:"hexcolor"`
	Overlay0 string `koanf:"overlay0" default:"#6c7086" validate:"hexcolor"`
	Red      string `koanf:"red" default:"#f38ba8" validate:"hexcolor"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		panic(err)
	}
	return cfg
}

// Load reads the standard config locations, then explicit if it is set.
// Later files override earlier ones. An explicit path must exist.
func Load(explicit string) (*Config, error) {
	paths := getConfigPaths()
	if explicit != "" {
		explicit = expandPath(explicit)
		if _, err := os.Stat(explicit); err != nil {
			return nil, errors.Wrapf(err, "config file %s", explicit)
		}
		paths = append(paths, explicit)
	}
	return loadFrom(paths)
}

func loadFrom(paths []string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, "parse %s", path)
			}
		}
	}

	// Defaults go in first so that explicit zero values in a file survive.
	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to set defaults")
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}

	if cfg.DefaultFolder != "" {
		cfg.DefaultFolder = expandPath(cfg.DefaultFolder)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/ripple/config.toml
		filepath.Join(xdg.ConfigHome, AppName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

// DefaultLogFile returns $XDG_STATE_HOME/ripple/ripple.log.
func DefaultLogFile() string {
	return filepath.Join(xdg.StateHome, AppName, AppName+".log")
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// StartFolder returns the directory the file picker opens in.
func (c *Config) StartFolder() string {
	if c.DefaultFolder != "" {
		return c.DefaultFolder
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}
