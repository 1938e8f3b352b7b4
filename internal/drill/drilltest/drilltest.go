// Package drilltest provides scripted input and recorded output for
// exercising drills without a terminal.
package drilltest

import (
	"context"
	"io"

	"github.com/abhisek/habid/internal/drill"
)

// Script is a drill.LineReader that returns fixed lines and then io.EOF.
type Script struct {
	Lines      []string
	Remembered []string
	reads      int
}

// NewScript returns a Script yielding lines in order.
func NewScript(lines ...string) *Script {
	return &Script{Lines: lines}
}

// ReadLine returns the next scripted line, or io.EOF once all were read.
func (s *Script) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.reads >= len(s.Lines) {
		return "", io.EOF
	}
	line := s.Lines[s.reads]
	s.reads++
	return line, nil
}

// Remember records line.
func (s *Script) Remember(line string) {
	s.Remembered = append(s.Remembered, line)
}

// Reads returns how many lines were consumed.
func (s *Script) Reads() int { return s.reads }

// Recorder is a drill.Observer that keeps every event.
type Recorder struct {
	Events []drill.Event
}

// Observe appends e.
func (r *Recorder) Observe(e drill.Event) {
	r.Events = append(r.Events, e)
}

// Find returns the recorded events of type T in order.
func Find[T drill.Event](r *Recorder) []T {
	var out []T
	for _, e := range r.Events {
		if v, ok := e.(T); ok {
			out = append(out, v)
		}
	}
	return out
}
