package logwatch

import (
	"fmt"
	"io"
	"sync"
)

// Sink is the single shared writer for matched lines. Lines are grouped by
// the file that produced them: whenever the source changes, a blank line and
// a [source] header precede the line. One mutex covers the header decision,
// the header print, the line print and the source update, so concurrent
// emitters can interleave groups but never tear one.
type Sink struct {
	mu   sync.Mutex
	out  io.Writer
	errw io.Writer
	last string
}

// NewSink returns a Sink printing matches to out and warnings to errw.
func NewSink(out, errw io.Writer) *Sink {
	return &Sink{out: out, errw: errw}
}

// Emit prints line under its source's header. Safe for concurrent use.
func (s *Sink) Emit(source, line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if source != s.last {
		fmt.Fprintf(s.out, "\n[%s]\n", source)
		s.last = source
	}
	fmt.Fprintln(s.out, line)
}

// Notice prints an out-of-band message on the output stream. It takes the
// same lock as Emit so it never lands inside a header/line group, and it
// leaves the grouping state alone.
func (s *Sink) Notice(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.out, msg)
}

// Warnf prints a warning line on the error stream.
func (s *Sink) Warnf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.errw, format+"\n", args...)
}
