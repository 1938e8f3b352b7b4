package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

type scanned struct {
	line string
	err  error
}

// PlainReader reads answer lines from a non-interactive stream such as a
// pipe. Prompt and line are echoed so transcripts stay readable.
type PlainReader struct {
	in        io.Reader
	out       io.Writer
	once      sync.Once
	closeOnce sync.Once
	lines     chan scanned
	done      chan struct{}
	exited    chan struct{}
}

// NewPlainReader creates a PlainReader. out may be nil to suppress prompts.
func NewPlainReader(in io.Reader, out io.Writer) *PlainReader {
	return &PlainReader{
		in:     in,
		out:    out,
		lines:  make(chan scanned),
		done:   make(chan struct{}),
		exited: make(chan struct{}),
	}
}

func (r *PlainReader) scan() {
	defer close(r.exited)
	defer close(r.lines)
	sc := bufio.NewScanner(r.in)
	for sc.Scan() {
		if !r.send(scanned{line: strings.TrimSuffix(sc.Text(), "\r")}) {
			return
		}
	}
	if err := sc.Err(); err != nil {
		r.send(scanned{err: err})
	}
}

// send hands s to ReadLine unless the reader was closed first.
func (r *PlainReader) send(s scanned) bool {
	select {
	case r.lines <- s:
		return true
	case <-r.done:
		return false
	}
}

// Close stops the scanner. A Read already blocked on the underlying
// stream still has to return before the scanner goroutine exits.
func (r *PlainReader) Close() error {
	r.closeOnce.Do(func() { close(r.done) })
	return nil
}

// ReadLine writes prompt and waits for the next line. It returns io.EOF at
// the end of the stream or after Close, and the context error once ctx is
// done.
func (r *PlainReader) ReadLine(ctx context.Context, prompt string) (string, error) {
	r.once.Do(func() { go r.scan() })
	if r.out != nil && prompt != "" {
		fmt.Fprint(r.out, prompt)
	}
	select {
	case <-r.done:
		return "", io.EOF
	default:
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-r.done:
		return "", io.EOF
	case s, ok := <-r.lines:
		if !ok {
			return "", io.EOF
		}
		if s.err != nil {
			return "", s.err
		}
		if r.out != nil && prompt != "" {
			fmt.Fprintln(r.out, s.line)
		}
		return s.line, nil
	}
}
