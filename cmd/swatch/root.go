package main

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/swatch/internal/clipboard"
	"github.com/alexisbeaulieu97/swatch/internal/tui"
)

type rootFlags struct {
	configPath string
	verbose    bool
	policy     string
	color      string
}

// isInteractive is swapped in tests.
var isInteractive = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// terminalOut returns the command's output when it is a terminal, and nil
// otherwise so OSC 52 sequences never end up in pipes or files.
func terminalOut(cmd *cobra.Command) io.Writer {
	if f, ok := cmd.OutOrStdout().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return f
	}
	return nil
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "swatch",
		Short:         "Swatch builds color palettes from a single base color",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isInteractive() {
				return runPalette(cmd, flags, &paletteOptions{format: formatTable}, nil)
			}
			return runPicker(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to configuration file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.policy, "policy", "", "Palette policy (harmonious, shades)")
	cmd.PersistentFlags().StringVar(&flags.color, "color", "", "Base color, overriding the configuration")

	cmd.AddCommand(newPaletteCmd(flags))
	cmd.AddCommand(newConvertCmd(flags))
	cmd.AddCommand(newCopyCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runPicker(cmd *cobra.Command, flags *rootFlags) error {
	// The picker owns the terminal, so logs only go to stderr when asked for.
	logOut := io.Discard
	if flags.verbose {
		logOut = cmd.ErrOrStderr()
	}
	app, err := loadAppContext("start picker", flags, logOut)
	if err != nil {
		return err
	}

	terminal := &tui.TerminalBuffer{}
	writer, err := clipboard.New(app.cfg.Clipboard.Backend, terminal)
	if err != nil {
		return newCommandError("start picker", "configuring clipboard", err, "Use one of auto, system, osc52 or none for clipboard.backend.")
	}

	model := tui.NewModel(tui.Options{
		BaseColor:      app.base,
		Policy:         app.policy,
		Clipboard:      writer,
		Terminal:       terminal,
		Logger:         app.log,
		BannerDuration: app.cfg.BannerDuration(),
	})

	app.log.WithFields(map[string]any{"base": app.base, "policy": string(app.policy)}).Debug("starting picker")
	if _, err := tea.NewProgram(model, tea.WithOutput(cmd.OutOrStdout())).Run(); err != nil {
		return newCommandError("start picker", "running the terminal UI", err, "Run 'swatch palette' for non-interactive output.")
	}
	return nil
}
