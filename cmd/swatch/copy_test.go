package main

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/swatch/internal/clipboard"
	swatcherrors "github.com/alexisbeaulieu97/swatch/pkg/errors"
)

type recordingClipboard struct {
	backend string
	out     io.Writer
	copied  []string
	err     error
}

func (r *recordingClipboard) Write(_ context.Context, text string) error {
	r.copied = append(r.copied, text)
	return r.err
}

func stubClipboard(t *testing.T, cb *recordingClipboard) {
	t.Helper()
	original := clipboardFactory
	t.Cleanup(func() { clipboardFactory = original })
	clipboardFactory = func(backend string, out io.Writer) (clipboard.Writer, error) {
		cb.backend = backend
		cb.out = out
		return cb, nil
	}
}

func TestCopyBaseByDefault(t *testing.T) {
	cb := &recordingClipboard{}
	stubClipboard(t, cb)

	out, err := executeCommand(newRootCmd(), "copy", "2196f3")
	require.NoError(t, err)
	require.Equal(t, []string{"#2196F3"}, cb.copied)
	require.Equal(t, "auto", cb.backend)
	require.Contains(t, out, "Copied #2196F3 (Base)")
}

func TestCopyRole(t *testing.T) {
	cb := &recordingClipboard{}
	stubClipboard(t, cb)

	_, err := executeCommand(newRootCmd(), "copy", "#FF0000", "--role", "complementary")
	require.NoError(t, err)
	require.Equal(t, []string{"#00FFFF"}, cb.copied)

	_, err = executeCommand(newRootCmd(), "copy", "#FF0000", "--role", "Tetradic")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Analogous 1")
}

func TestCopyReportsClipboardFailure(t *testing.T) {
	failure := swatcherrors.NewClipboardError("system", swatcherrors.ClipboardPermissionDenied, errors.New("permission denied"))
	stubClipboard(t, &recordingClipboard{err: failure})

	_, err := executeCommand(newRootCmd(), "copy", "#FF0000")
	require.Error(t, err)
	require.ErrorIs(t, err, swatcherrors.ErrClipboardPermission)
	require.Contains(t, err.Error(), "writing to the clipboard")
}

func TestCopyRejectsInvalidColor(t *testing.T) {
	cb := &recordingClipboard{}
	stubClipboard(t, cb)

	_, err := executeCommand(newRootCmd(), "copy", "#12")
	require.Error(t, err)
	require.Empty(t, cb.copied)
}

func TestCopyKeepsEscapeSequencesOutOfPipes(t *testing.T) {
	cb := &recordingClipboard{}
	stubClipboard(t, cb)

	_, err := executeCommand(newRootCmd(), "copy", "#2196F3")
	require.NoError(t, err)
	require.Nil(t, cb.out, "non-terminal output must not receive OSC 52 sequences")
}

func TestCopyAutoFailsWithoutTerminalOrHelper(t *testing.T) {
	writer, err := clipboard.New(clipboard.BackendOSC52, nil)
	require.NoError(t, err)
	require.ErrorIs(t, writer.Write(context.Background(), "#2196F3"), swatcherrors.ErrClipboardUnavailable)
}
