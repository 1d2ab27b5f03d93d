package tui

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/swatch/internal/colorspace"
	"github.com/alexisbeaulieu97/swatch/internal/components"
)

// View renders the picker.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("swatch"))
	b.WriteString("\n")

	rgb := colorspace.HexToRGB(m.base)
	hsl := colorspace.RGBToHSL(rgb)
	b.WriteString(detailStyle.Render(fmt.Sprintf("%s  %s  %s", m.base, rgb, hsl)))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render(m.policy.DisplayName() + " palette"))
	b.WriteString("\n")
	for i, entry := range m.Palette() {
		row := components.NewSwatch(entry.Hex, entry.Role).WithSelected(i == m.cursor)
		b.WriteString(row.View())
		b.WriteString("\n")
	}

	if m.editing {
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	if m.banner != nil {
		var alert *components.Alert
		switch m.banner.variant {
		case components.AlertVariantSuccess:
			alert = components.SuccessAlert(m.banner.message)
		case components.AlertVariantError:
			alert = components.ErrorAlert(m.banner.message)
		default:
			alert = components.InfoAlert(m.banner.message)
		}
		b.WriteString(bannerStyle.Render(alert.View()))
		b.WriteString("\n")
	}

	var helpView string
	if m.editing {
		helpView = m.help.View(m.editKeys)
	} else {
		helpView = m.help.View(m.keys)
	}
	b.WriteString(footerStyle.Render(helpView))
	b.WriteString("\n")

	return b.String()
}
