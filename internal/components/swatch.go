package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/swatch/internal/contrast"
)

// Swatch renders one palette entry as a colored block labelled with its hex code.
type Swatch struct {
	hex      string
	label    string
	width    int
	selected bool
}

// NewSwatch creates a swatch for hex with a semantic label such as "Complementary".
func NewSwatch(hex, label string) *Swatch {
	return &Swatch{hex: hex, label: label, width: 12}
}

// WithWidth sets the width of the colored block.
func (s *Swatch) WithWidth(width int) *Swatch {
	if width > 0 {
		s.width = width
	}
	return s
}

// WithSelected marks the swatch as the one under the cursor.
func (s *Swatch) WithSelected(selected bool) *Swatch {
	s.selected = selected
	return s
}

// BlockStyle is the style used for the colored block. The text colour is
// whichever of black or white contrasts more with the swatch.
func (s *Swatch) BlockStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(s.hex)).
		Foreground(lipgloss.Color(contrast.TextColor(s.hex))).
		Width(s.width).
		Align(lipgloss.Center)
}

// View renders the swatch row: cursor marker, colored block and label.
func (s *Swatch) View() string {
	marker := "  "
	labelStyle := Style(lipgloss.NewStyle(), Typography(TypographyVariantBody))
	if s.selected {
		marker = Style(lipgloss.NewStyle(), Foreground(PalettePrimary)).Render("▸ ")
		labelStyle = Style(lipgloss.NewStyle(), Typography(TypographyVariantEmphasis))
	}

	block := s.BlockStyle().Render(s.hex)
	return fmt.Sprintf("%s%s %s", marker, block, labelStyle.Render(s.label))
}
