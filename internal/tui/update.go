package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/swatch/internal/components"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case CopiedMsg:
		m.log.WithFields(map[string]any{"hex": msg.Hex}).Debug("copied to clipboard")
		return m, tea.Batch(emitSequence(msg.Sequence), m.showBanner(msg.Hex, components.AlertVariantSuccess))
	case CopyFailedMsg:
		m.log.WithFields(map[string]any{"hex": msg.Hex}).Error(msg.Err, "copy failed")
		return m, m.showBanner(fmt.Sprintf("could not copy %s: %v", msg.Hex, msg.Err), components.AlertVariantError)
	case clearBannerMsg:
		if m.banner != nil && m.banner.id == msg.id {
			m.banner = nil
		}
		return m, nil
	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	}

	return m, nil
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.Palette())-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Copy):
		entry := m.Selected()
		if entry.Hex == "" {
			return m, nil
		}
		return m, copyCmd(m.clipboard, m.terminal, entry.Hex)
	case key.Matches(msg, m.keys.Edit):
		m.editing = true
		m.input.SetValue(m.base)
		m.input.CursorEnd()
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Policy):
		m.policy = m.policy.Next()
		if n := len(m.Palette()); m.cursor >= n {
			m.cursor = n - 1
		}
		m.log.WithFields(map[string]any{"policy": string(m.policy)}).Debug("policy changed")
		return m, m.showBanner(m.policy.DisplayName()+" palette", components.AlertVariantInfo)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.editKeys.Cancel):
		m.editing = false
		m.input.Blur()
		return m, nil
	case key.Matches(msg, m.editKeys.Apply):
		value := m.input.Value()
		if err := m.SetBaseColor(value); err != nil {
			return m, m.showBanner(fmt.Sprintf("%q is not a #RRGGBB color", value), components.AlertVariantError)
		}
		m.editing = false
		m.input.Blur()
		m.log.WithFields(map[string]any{"base": m.base}).Debug("base color changed")
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}
