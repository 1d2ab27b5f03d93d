package tui

import (
	"bytes"
	"sync"
)

// TerminalBuffer collects escape sequences that clipboard backends want to
// send to the terminal. The picker replays them through the Bubble Tea
// renderer so they never interleave with a frame.
type TerminalBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// Write appends p to the buffer.
func (b *TerminalBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// Drain returns and clears everything written so far.
func (b *TerminalBuffer) Drain() string {
	if b == nil {
		return ""
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.buf.String()
	b.buf.Reset()
	return out
}
