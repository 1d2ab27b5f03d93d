package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that override file settings.
const (
	EnvBaseColor = "SWATCH_BASE_COLOR"
	EnvPolicy    = "SWATCH_POLICY"
	EnvClipboard = "SWATCH_CLIPBOARD"
	EnvLogLevel  = "SWATCH_LOG_LEVEL"
)

// DotEnvFile is read from the working directory when present.
var DotEnvFile = ".env"

// ApplyEnv loads DotEnvFile into the process environment (without replacing
// variables that are already set) and copies any SWATCH_* overrides into cfg.
func ApplyEnv(cfg *Config) error {
	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if v := lookup(EnvBaseColor); v != "" {
		cfg.BaseColor = v
	}
	if v := lookup(EnvPolicy); v != "" {
		cfg.Policy = strings.ToLower(v)
	}
	if v := lookup(EnvClipboard); v != "" {
		cfg.Clipboard.Backend = strings.ToLower(v)
	}
	if v := lookup(EnvLogLevel); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	return nil
}

func lookup(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
