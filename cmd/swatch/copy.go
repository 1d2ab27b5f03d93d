package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatch/internal/clipboard"
	"github.com/alexisbeaulieu97/swatch/internal/palette"
)

type copyOptions struct {
	role string
}

// clipboardFactory is swapped in tests.
var clipboardFactory = func(backend string, out io.Writer) (clipboard.Writer, error) {
	return clipboard.New(backend, out)
}

func newCopyCmd(flags *rootFlags) *cobra.Command {
	opts := &copyOptions{}

	cmd := &cobra.Command{
		Use:   "copy <color>",
		Short: "Copy a palette color to the clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCopy(cmd, flags, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.role, "role", "Base", "Palette role to copy, e.g. Complementary")

	return cmd
}

func runCopy(cmd *cobra.Command, flags *rootFlags, opts *copyOptions, color string) error {
	if err := requireColor("copy color", color); err != nil {
		return err
	}

	app, err := loadAppContext("copy color", flags, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	p, err := palette.GenerateWith(app.policy, color)
	if err != nil {
		return newCommandError("copy color", "generating palette", err, policySuggestion())
	}

	entry, ok := p.Find(opts.role)
	if !ok {
		roles := make([]string, len(p))
		for i, e := range p {
			roles[i] = e.Role
		}
		return newCommandError("copy color", "selecting role "+opts.role, fmt.Errorf("role not in %s palette", app.policy), fmt.Sprintf("Use one of: %v.", roles))
	}

	writer, err := clipboardFactory(app.cfg.Clipboard.Backend, terminalOut(cmd))
	if err != nil {
		return newCommandError("copy color", "configuring clipboard", err, "Use one of auto, system, osc52 or none for clipboard.backend.")
	}

	if err := writer.Write(context.Background(), entry.Hex); err != nil {
		app.log.Error(err, "clipboard write failed")
		return newCommandError("copy color", "writing to the clipboard", err, "Install xclip/xsel/wl-clipboard or set clipboard.backend to osc52.")
	}

	app.log.WithFields(map[string]any{"hex": entry.Hex, "role": entry.Role}).Info("copied to clipboard")
	fmt.Fprintf(cmd.OutOrStdout(), "Copied %s (%s)\n", entry.Hex, entry.Role)
	return nil
}
