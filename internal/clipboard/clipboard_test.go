package clipboard

import (
	"bytes"
	"context"
	"encoding/base64"
	stdErrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"

	swatcherrors "github.com/alexisbeaulieu97/swatch/pkg/errors"
)

type recordingWriter struct {
	calls []string
	err   error
}

func (r *recordingWriter) Write(_ context.Context, text string) error {
	r.calls = append(r.calls, text)
	return r.err
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, fmt.Errorf("write /dev/tty: %w", fs.ErrPermission)
}

func TestNewSelectsBackend(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}

	w, err := New("", buf)
	require.NoError(t, err)
	require.IsType(t, Fallback{}, w)

	w, err = New("System", buf)
	require.NoError(t, err)
	require.IsType(t, &System{}, w)

	w, err = New("osc52", buf)
	require.NoError(t, err)
	require.IsType(t, &OSC52{}, w)

	w, err = New("none", buf)
	require.NoError(t, err)
	require.IsType(t, Discard{}, w)

	_, err = New("carrier-pigeon", buf)
	require.Error(t, err)
	require.Contains(t, err.Error(), "carrier-pigeon")
}

func TestSystemWrite(t *testing.T) {
	t.Parallel()

	var got string
	s := &System{
		writeAll:    func(text string) error { got = text; return nil },
		unsupported: func() bool { return false },
	}
	require.NoError(t, s.Write(context.Background(), "#2196F3"))
	require.Equal(t, "#2196F3", got)
}

func TestSystemWriteUnsupported(t *testing.T) {
	t.Parallel()

	s := &System{
		writeAll:    func(string) error { t.Fatal("should not write"); return nil },
		unsupported: func() bool { return true },
	}
	err := s.Write(context.Background(), "#2196F3")
	require.ErrorIs(t, err, swatcherrors.ErrClipboardUnavailable)
}

func TestSystemWriteClassifiesFailures(t *testing.T) {
	t.Parallel()

	denied := &System{
		writeAll:    func(string) error { return stdErrors.New("exec: xsel: permission denied") },
		unsupported: func() bool { return false },
	}
	require.ErrorIs(t, denied.Write(context.Background(), "x"), swatcherrors.ErrClipboardPermission)

	missing := &System{
		writeAll:    func(string) error { return stdErrors.New("exec: \"xclip\": executable file not found in $PATH") },
		unsupported: func() bool { return false },
	}
	require.ErrorIs(t, missing.Write(context.Background(), "x"), swatcherrors.ErrClipboardUnavailable)
}

func TestSystemWriteHonoursCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := &System{writeAll: func(string) error { t.Fatal("should not write"); return nil }}
	err := s.Write(ctx, "x")
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, err, swatcherrors.ErrClipboardUnavailable)
}

func TestOSC52Write(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	w := &OSC52{out: buf}
	require.NoError(t, w.Write(context.Background(), "#2196F3"))

	out := buf.String()
	require.Contains(t, out, "\x1b]52;c;")
	require.Contains(t, out, base64.StdEncoding.EncodeToString([]byte("#2196F3")))
}

func TestOSC52WriteTmux(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	w := &OSC52{out: buf, tmux: true}
	require.NoError(t, w.Write(context.Background(), "#2196F3"))
	require.Contains(t, buf.String(), "\x1bPtmux;")
}

func TestOSC52WriteFailures(t *testing.T) {
	t.Parallel()

	err := (&OSC52{}).Write(context.Background(), "x")
	require.ErrorIs(t, err, swatcherrors.ErrClipboardUnavailable)

	err = (&OSC52{out: failingWriter{}}).Write(context.Background(), "x")
	require.ErrorIs(t, err, swatcherrors.ErrClipboardPermission)
	require.ErrorIs(t, err, fs.ErrPermission)
}

func TestFallback(t *testing.T) {
	t.Parallel()

	broken := &recordingWriter{err: swatcherrors.NewClipboardError("system", swatcherrors.ClipboardUnavailable, nil)}
	working := &recordingWriter{}
	unused := &recordingWriter{}

	require.NoError(t, Fallback{broken, working, unused}.Write(context.Background(), "#FFFFFF"))
	require.Equal(t, []string{"#FFFFFF"}, broken.calls)
	require.Equal(t, []string{"#FFFFFF"}, working.calls)
	require.Empty(t, unused.calls)
}

func TestFallbackReturnsLastError(t *testing.T) {
	t.Parallel()

	first := &recordingWriter{err: swatcherrors.NewClipboardError("system", swatcherrors.ClipboardUnavailable, nil)}
	second := &recordingWriter{err: swatcherrors.NewClipboardError("osc52", swatcherrors.ClipboardPermissionDenied, nil)}

	err := Fallback{first, second}.Write(context.Background(), "x")
	require.ErrorIs(t, err, swatcherrors.ErrClipboardPermission)

	err = Fallback{}.Write(context.Background(), "x")
	require.ErrorIs(t, err, swatcherrors.ErrClipboardUnavailable)
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	require.NoError(t, Discard{}.Write(context.Background(), "anything"))
}
