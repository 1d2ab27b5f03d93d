package main

import (
	"io"
	"strings"

	"github.com/alexisbeaulieu97/swatch/internal/colorspace"
	"github.com/alexisbeaulieu97/swatch/internal/config"
	"github.com/alexisbeaulieu97/swatch/internal/logger"
	"github.com/alexisbeaulieu97/swatch/internal/palette"
)

// appContext is everything a command needs after flags and config are resolved.
type appContext struct {
	cfg    *config.Config
	log    *logger.Logger
	policy palette.Policy
	base   string
}

func loadAppContext(operation string, flags *rootFlags, logOut io.Writer) (*appContext, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, newCommandError(operation, "loading configuration", err, "Check the file passed with --config and any SWATCH_* environment variables.")
	}

	level := cfg.Log.Level
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: cfg.Log.HumanReadable,
		Writer:        logOut,
		Component:     operation,
	})
	if err != nil {
		return nil, newCommandError(operation, "creating logger", err, "Use one of debug, info, warn or error for log.level.")
	}

	policy := cfg.PalettePolicy()
	if strings.TrimSpace(flags.policy) != "" {
		policy, err = palette.ParsePolicy(flags.policy)
		if err != nil {
			return nil, newCommandError(operation, "selecting palette policy", err, policySuggestion())
		}
	}

	base := cfg.BaseColor
	if strings.TrimSpace(flags.color) != "" {
		base = flags.color
	}
	if err := requireColor(operation, base); err != nil {
		return nil, err
	}

	return &appContext{cfg: cfg, log: log, policy: policy, base: colorspace.Canonical(base)}, nil
}

// requireColor validates user input before it reaches the lenient core.
func requireColor(operation, value string) error {
	if _, err := colorspace.ParseHex(value); err != nil {
		return newCommandError(operation, "reading color "+value, err, "Colors are six hex digits such as #2196F3 or 2196f3.")
	}
	return nil
}

func policySuggestion() string {
	names := make([]string, 0, len(palette.Policies()))
	for _, p := range palette.Policies() {
		names = append(names, string(p))
	}
	return "Use one of: " + strings.Join(names, ", ") + "."
}
