// Package sink wraps the output stream as an append-only destination.
package sink

import (
	"fmt"
	"io"
)

// Sink is an append-only writer with a sticky first error. Once a write
// fails, every later write is a no-op and Err reports the original failure.
type Sink struct {
	w   io.Writer
	err error
}

// New wraps w.
func New(w io.Writer) *Sink {
	return &Sink{w: w}
}

// WriteString appends s to the sink.
func (s *Sink) WriteString(str string) {
	if s.err != nil {
		return
	}
	if _, err := io.WriteString(s.w, str); err != nil {
		s.err = err
	}
}

// Printf appends a formatted string to the sink.
func (s *Sink) Printf(format string, args ...any) {
	s.WriteString(fmt.Sprintf(format, args...))
}

// Newline appends a single line break.
func (s *Sink) Newline() {
	s.WriteString("\n")
}

// BlankLine appends two line breaks, terminating the current line and
// leaving one empty line after it.
func (s *Sink) BlankLine() {
	s.WriteString("\n\n")
}

// Err returns the first write error, or nil.
func (s *Sink) Err() error {
	return s.err
}
