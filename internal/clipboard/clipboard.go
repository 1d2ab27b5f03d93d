// Package clipboard copies text to the user's clipboard.
//
// Every failure is returned as a *errors.ClipboardError classified as either
// unavailable or permission denied. Writes are never retried.
package clipboard

import (
	"context"
	stdErrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"

	swatcherrors "github.com/alexisbeaulieu97/swatch/pkg/errors"
)

// Backend names accepted by New.
const (
	BackendAuto   = "auto"
	BackendSystem = "system"
	BackendOSC52  = "osc52"
	BackendNone   = "none"
)

// Writer puts text on a clipboard.
type Writer interface {
	Write(ctx context.Context, text string) error
}

// New builds the Writer for a configured backend. Terminal sequences for the
// OSC 52 backend are written to out.
func New(backend string, out io.Writer) (Writer, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendAuto:
		return Fallback{NewSystem(), NewOSC52(out)}, nil
	case BackendSystem:
		return NewSystem(), nil
	case BackendOSC52:
		return NewOSC52(out), nil
	case BackendNone:
		return Discard{}, nil
	default:
		return nil, fmt.Errorf("unknown clipboard backend %q", backend)
	}
}

// System writes through the operating system clipboard.
type System struct {
	writeAll    func(string) error
	unsupported func() bool
}

// NewSystem returns a System writer backed by the platform clipboard helpers.
func NewSystem() *System {
	return &System{
		writeAll:    clipboard.WriteAll,
		unsupported: func() bool { return clipboard.Unsupported },
	}
}

// Write copies text to the system clipboard.
func (s *System) Write(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return swatcherrors.NewClipboardError(BackendSystem, swatcherrors.ClipboardUnavailable, err)
	}
	if s.unsupported != nil && s.unsupported() {
		return swatcherrors.NewClipboardError(BackendSystem, swatcherrors.ClipboardUnavailable, stdErrors.New("no clipboard utility found"))
	}
	if err := s.writeAll(text); err != nil {
		return swatcherrors.NewClipboardError(BackendSystem, classify(err), err)
	}
	return nil
}

// OSC52 asks the terminal emulator to set the clipboard via an OSC 52 escape sequence.
type OSC52 struct {
	out    io.Writer
	tmux   bool
	screen bool
}

// NewOSC52 returns an OSC52 writer targeting out, wrapping the sequence for
// tmux or screen when the environment says we are running inside one.
func NewOSC52(out io.Writer) *OSC52 {
	return &OSC52{
		out:    out,
		tmux:   os.Getenv("TMUX") != "",
		screen: strings.HasPrefix(os.Getenv("TERM"), "screen") && os.Getenv("STY") != "",
	}
}

// Write emits the OSC 52 sequence for text.
func (o *OSC52) Write(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return swatcherrors.NewClipboardError(BackendOSC52, swatcherrors.ClipboardUnavailable, err)
	}
	if o.out == nil {
		return swatcherrors.NewClipboardError(BackendOSC52, swatcherrors.ClipboardUnavailable, stdErrors.New("no terminal to write to"))
	}

	seq := osc52.New(text)
	switch {
	case o.tmux:
		seq = seq.Tmux()
	case o.screen:
		seq = seq.Screen()
	}

	if _, err := seq.WriteTo(o.out); err != nil {
		return swatcherrors.NewClipboardError(BackendOSC52, classify(err), err)
	}
	return nil
}

// Fallback tries each writer in order and stops at the first success.
type Fallback []Writer

// Write returns nil on the first successful write, otherwise the last error.
func (f Fallback) Write(ctx context.Context, text string) error {
	var last error = swatcherrors.NewClipboardError(BackendAuto, swatcherrors.ClipboardUnavailable, stdErrors.New("no clipboard backends configured"))
	for _, w := range f {
		if w == nil {
			continue
		}
		err := w.Write(ctx, text)
		if err == nil {
			return nil
		}
		last = err
		if ctx.Err() != nil {
			break
		}
	}
	return last
}

// Discard drops every write. It backs the "none" backend.
type Discard struct{}

// Write always succeeds.
func (Discard) Write(context.Context, string) error {
	return nil
}

func classify(err error) swatcherrors.ClipboardKind {
	if stdErrors.Is(err, fs.ErrPermission) || strings.Contains(strings.ToLower(err.Error()), "permission denied") {
		return swatcherrors.ClipboardPermissionDenied
	}
	return swatcherrors.ClipboardUnavailable
}
