package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Alert renders a one-line banner such as "Copied #2196F3".
type Alert struct {
	message string
	title   string
	variant AlertVariant
}

// NewAlert creates a new alert with the given message and variant
func NewAlert(message string, variant AlertVariant) *Alert {
	return &Alert{message: message, variant: variant}
}

// WithTitle sets the alert title
func (a *Alert) WithTitle(title string) *Alert {
	a.title = title
	return a
}

// Variant reports the alert variant.
func (a *Alert) Variant() AlertVariant {
	return a.variant
}

// View renders the alert
func (a *Alert) View() string {
	var parts []string
	if a.title != "" {
		titleStyle := Style(lipgloss.NewStyle(), Typography(TypographyVariantEmphasis))
		parts = append(parts, titleStyle.Render(a.title+":"))
	}
	if a.message != "" {
		parts = append(parts, a.message)
	}

	return Style(lipgloss.NewStyle(), alertVariantAppliers(a.variant)...).Render(strings.Join(parts, " "))
}

func alertVariantAppliers(variant AlertVariant) []StyleApplier {
	switch variant {
	case AlertVariantSuccess:
		return AlertSuccessStyle()
	case AlertVariantError:
		return AlertErrorStyle()
	default:
		return AlertInfoStyle()
	}
}

// SuccessAlert creates a success alert
func SuccessAlert(message string) *Alert {
	return NewAlert(message, AlertVariantSuccess).WithTitle("Copied")
}

// ErrorAlert creates an error alert
func ErrorAlert(message string) *Alert {
	return NewAlert(message, AlertVariantError).WithTitle("Error")
}

// InfoAlert creates an info alert
func InfoAlert(message string) *Alert {
	return NewAlert(message, AlertVariantInfo)
}
