package components

import (
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlertVariants(t *testing.T) {
	success := SuccessAlert("#2196F3")
	failure := ErrorAlert("clipboard unavailable")
	info := InfoAlert("editing base color")

	assert.Equal(t, AlertVariantSuccess, success.Variant())
	assert.Equal(t, AlertVariantError, failure.Variant())
	assert.Equal(t, AlertVariantInfo, info.Variant())

	assert.Contains(t, success.View(), "#2196F3")
	assert.Contains(t, success.View(), "Copied:")
	assert.Contains(t, failure.View(), "clipboard unavailable")
	assert.NotContains(t, info.View(), ":")
}

func TestSwatchView(t *testing.T) {
	plain := NewSwatch("#2196F3", "Base").View()
	assert.Contains(t, plain, "#2196F3")
	assert.Contains(t, plain, "Base")
	assert.NotContains(t, plain, "▸")

	selected := NewSwatch("#2196F3", "Base").WithSelected(true).View()
	assert.Contains(t, selected, "▸")
}

func TestSwatchBlockStyle(t *testing.T) {
	light := NewSwatch("#FFEB3B", "Light").WithWidth(20).BlockStyle()
	assert.Equal(t, lipgloss.Color("#FFEB3B"), light.GetBackground())
	assert.Equal(t, lipgloss.Color("#000000"), light.GetForeground())
	assert.Equal(t, 20, light.GetWidth())

	dark := NewSwatch("#0D47A1", "Dark").WithWidth(0).BlockStyle()
	assert.Equal(t, lipgloss.Color("#FFFFFF"), dark.GetForeground())
	assert.Equal(t, 12, dark.GetWidth(), "non-positive widths keep the default")

	rendered := NewSwatch("#0D47A1", "Dark").View()
	require.True(t, strings.Contains(rendered, "Dark"))
}

func TestConcurrentRendering(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				_ = SuccessAlert("#2196F3").View()
				return
			}
			_ = NewSwatch("#2196F3", "Base").View()
		}(i)
	}
	wg.Wait()
}
