package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("swatch.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "swatch.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "swatch.yaml:12")
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("swatch.yaml", 0, stdErrors.New("no such file"))
	require.Equal(t, "parse error: swatch.yaml: no such file", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("base_color", "must be a hex color", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "base_color", validationErr.Field)
	require.Contains(t, validationErr.Message, "hex color")
	require.Equal(t, "validation error: base_color: must be a hex color", err.Error())
}

func TestClipboardErrorKinds(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("xclip: not found")
	err := NewClipboardError("system", ClipboardUnavailable, underlying)

	var clipErr *ClipboardError
	require.ErrorAs(t, err, &clipErr)
	require.Equal(t, "system", clipErr.Backend)
	require.ErrorIs(t, err, ErrClipboardUnavailable)
	require.NotErrorIs(t, err, ErrClipboardPermission)
	require.ErrorIs(t, err, underlying)
	require.Contains(t, err.Error(), "clipboard unavailable [system]")

	denied := fmt.Errorf("copy: %w", NewClipboardError("osc52", ClipboardPermissionDenied, nil))
	require.ErrorIs(t, denied, ErrClipboardPermission)
	require.NotErrorIs(t, denied, ErrClipboardUnavailable)
	require.Contains(t, denied.Error(), "clipboard permission denied [osc52]")
}

func TestNilReceivers(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	var clipErr *ClipboardError

	require.Empty(t, parseErr.Error())
	require.Empty(t, validationErr.Error())
	require.Empty(t, clipErr.Error())
	require.Nil(t, clipErr.Unwrap())
	require.False(t, clipErr.Is(ErrClipboardUnavailable))
}
