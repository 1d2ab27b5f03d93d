package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/swatch/internal/components"
)

var (
	titleStyle   = components.Style(lipgloss.NewStyle(), components.Typography(components.TypographyVariantTitle))
	sectionStyle = components.Style(lipgloss.NewStyle(),
		components.Typography(components.TypographyVariantEmphasis),
		components.Foreground(components.PaletteInfo),
		components.MarginTop(components.SpacingSizeExtraSmall),
	)
	detailStyle = components.Style(lipgloss.NewStyle(),
		components.Typography(components.TypographyVariantSubtitle),
		components.Foreground(components.PaletteNeutral),
	)
	bannerStyle = components.Style(lipgloss.NewStyle(), components.MarginTop(components.SpacingSizeExtraSmall))
	footerStyle = components.Style(lipgloss.NewStyle(), components.MarginTop(components.SpacingSizeExtraSmall))
)
