package config

import (
	"time"

	"github.com/alexisbeaulieu97/swatch/internal/palette"
)

// DefaultBaseColor is the base color used when none is configured.
const DefaultBaseColor = "#2196F3"

// Config represents the full swatch configuration document.
type Config struct {
	Version   string    `yaml:"version" validate:"required,semver"`
	BaseColor string    `yaml:"base_color" validate:"required,basecolor"`
	Policy    string    `yaml:"policy,omitempty" validate:"omitempty,policy"`
	Clipboard Clipboard `yaml:"clipboard,omitempty"`
	Log       Log       `yaml:"log,omitempty"`
}

// Clipboard configures how hex codes are copied.
type Clipboard struct {
	Backend       string `yaml:"backend,omitempty" validate:"omitempty,oneof=auto system osc52 none"`
	BannerSeconds int    `yaml:"banner_seconds,omitempty" validate:"omitempty,min=1,max=60"`
}

// Log configures the structured logger.
type Log struct {
	Level         string `yaml:"level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	HumanReadable bool   `yaml:"human_readable,omitempty"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		Version:   "1.0",
		BaseColor: DefaultBaseColor,
		Policy:    string(palette.Harmonious),
		Clipboard: Clipboard{Backend: "auto", BannerSeconds: 2},
		Log:       Log{Level: "info", HumanReadable: true},
	}
}

// PalettePolicy resolves the configured policy, defaulting to harmonious.
func (c *Config) PalettePolicy() palette.Policy {
	policy, err := palette.ParsePolicy(c.Policy)
	if err != nil {
		return palette.Harmonious
	}
	return policy
}

// BannerDuration is how long copy banners stay on screen.
func (c *Config) BannerDuration() time.Duration {
	if c.Clipboard.BannerSeconds <= 0 {
		return 2 * time.Second
	}
	return time.Duration(c.Clipboard.BannerSeconds) * time.Second
}

// applyDefaults fills optional fields left empty by a config file.
func (c *Config) applyDefaults() {
	defaults := Default()
	if c.Policy == "" {
		c.Policy = defaults.Policy
	}
	if c.Clipboard.Backend == "" {
		c.Clipboard.Backend = defaults.Clipboard.Backend
	}
	if c.Clipboard.BannerSeconds == 0 {
		c.Clipboard.BannerSeconds = defaults.Clipboard.BannerSeconds
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
}
