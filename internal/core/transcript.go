package core

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
)

// Transcript is a goroutine-safe, line-oriented text sink.
type Transcript struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// Write appends p.
func (t *Transcript) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.buf.Write(p)
}

// Println appends the operands separated by spaces and a newline.
func (t *Transcript) Println(a ...any) {
	_, _ = fmt.Fprintln(t, a...)
}

// Lines returns the complete lines written so far. A final line without a
// newline is included.
func (t *Transcript) Lines() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	text := t.buf.String()
	if text == "" {
		return []string{}
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
