package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/swatch/internal/clipboard"
)

const copyTimeout = 3 * time.Second

func copyCmd(writer clipboard.Writer, terminal *TerminalBuffer, hex string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), copyTimeout)
		defer cancel()
		err := writer.Write(ctx, hex)
		sequence := terminal.Drain()
		if err != nil {
			return CopyFailedMsg{Hex: hex, Err: err}
		}
		return CopiedMsg{Hex: hex, Sequence: sequence}
	}
}

// emitSequence hands a terminal escape sequence to the renderer.
func emitSequence(sequence string) tea.Cmd {
	if sequence == "" {
		return nil
	}
	return tea.Printf("%s", sequence)
}

func clearBannerCmd(id int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return clearBannerMsg{id: id}
	})
}
