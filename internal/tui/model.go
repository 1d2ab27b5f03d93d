// Package tui implements the interactive palette picker.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/swatch/internal/clipboard"
	"github.com/alexisbeaulieu97/swatch/internal/colorspace"
	"github.com/alexisbeaulieu97/swatch/internal/components"
	"github.com/alexisbeaulieu97/swatch/internal/logger"
	"github.com/alexisbeaulieu97/swatch/internal/palette"
)

const defaultBannerDuration = 2 * time.Second

// Options configures a picker Model.
type Options struct {
	BaseColor      string
	Policy         palette.Policy
	Clipboard      clipboard.Writer
	// Terminal receives escape sequences written by Clipboard, if any.
	Terminal       *TerminalBuffer
	Logger         *logger.Logger
	BannerDuration time.Duration
}

type banner struct {
	id      int
	message string
	variant components.AlertVariant
}

// Model contains the Bubbletea state for the palette picker. The palette is
// never stored; it is derived from base and policy whenever it is needed.
type Model struct {
	base           string
	policy         palette.Policy
	cursor         int
	editing        bool
	input          textinput.Model
	banner         *banner
	bannerSeq      int
	bannerDuration time.Duration
	clipboard      clipboard.Writer
	terminal       *TerminalBuffer
	log            *logger.Logger
	keys           KeyMap
	editKeys       EditKeyMap
	help           help.Model
	width          int
	quitting       bool
}

// NewModel constructs a picker for the given options.
func NewModel(opts Options) Model {
	input := textinput.New()
	input.Placeholder = "#RRGGBB"
	input.CharLimit = 7
	input.Prompt = "base › "

	base := opts.BaseColor
	if base == "" {
		base = "#2196F3"
	}
	policy := opts.Policy
	if policy == "" {
		policy = palette.Harmonious
	}
	duration := opts.BannerDuration
	if duration <= 0 {
		duration = defaultBannerDuration
	}
	writer := opts.Clipboard
	if writer == nil {
		writer = clipboard.Discard{}
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	return Model{
		base:           colorspace.Canonical(base),
		policy:         policy,
		input:          input,
		bannerDuration: duration,
		clipboard:      writer,
		terminal:       opts.Terminal,
		log:            log,
		keys:           DefaultKeyMap(),
		editKeys:       DefaultEditKeyMap(),
		help:           help.New(),
	}
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// BaseColor returns the current base color.
func (m Model) BaseColor() string {
	return m.base
}

// Policy returns the active palette policy.
func (m Model) Policy() palette.Policy {
	return m.policy
}

// Palette derives the palette for the current base color and policy.
func (m Model) Palette() palette.Palette {
	p, err := palette.GenerateWith(m.policy, m.base)
	if err != nil {
		return palette.Generate(m.base)
	}
	return p
}

// Cursor returns the index of the selected palette entry.
func (m Model) Cursor() int {
	return m.cursor
}

// Selected returns the palette entry under the cursor.
func (m Model) Selected() palette.Entry {
	p := m.Palette()
	if m.cursor < 0 || m.cursor >= len(p) {
		return palette.Entry{}
	}
	return p[m.cursor]
}

// Editing reports whether the base color input is open.
func (m Model) Editing() bool {
	return m.editing
}

// Banner returns the visible banner message, if any.
func (m Model) Banner() (string, bool) {
	if m.banner == nil {
		return "", false
	}
	return m.banner.message, true
}

// SetBaseColor replaces the base color when hex is valid.
func (m *Model) SetBaseColor(hex string) error {
	if _, err := colorspace.ParseHex(hex); err != nil {
		return err
	}
	m.base = colorspace.Canonical(hex)
	return nil
}

func (m *Model) showBanner(message string, variant components.AlertVariant) tea.Cmd {
	m.bannerSeq++
	m.banner = &banner{id: m.bannerSeq, message: message, variant: variant}
	return clearBannerCmd(m.bannerSeq, m.bannerDuration)
}
