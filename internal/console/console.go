// Package console is the terminal front end of a drill: it renders drill
// events and reads answer lines, remembering them for recall.
package console

import (
	"context"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/abhisek/habid/internal/drill"
	"github.com/abhisek/habid/internal/ui/theme"
)

// lineSource reads one line after showing prompt.
type lineSource interface {
	ReadLine(ctx context.Context, prompt string) (string, error)
}

// RecordFunc persists an entered line for the run it belongs to.
type RecordFunc func(runID, line string)

// Options configures a Console.
type Options struct {
	In  io.Reader
	Out io.Writer

	// Interactive selects the line editor over the plain line scanner.
	Interactive bool
	Color       bool

	// History preloads recall, oldest first.
	History []string

	// Record is called for every remembered line. May be nil.
	Record RecordFunc
}

// Console implements drill.Observer and drill.LineReader on a terminal.
type Console struct {
	printer *Printer
	source  lineSource
	recall  *Recall
	record  RecordFunc
	runID   string
}

var (
	_ drill.Observer   = (*Console)(nil)
	_ drill.LineReader = (*Console)(nil)
)

// New creates a Console.
func New(opts Options) *Console {
	styles := theme.For(opts.Color)
	recall := NewRecall(DefaultRecallSize, opts.History...)

	c := &Console{
		printer: NewPrinter(opts.Out, styles),
		recall:  recall,
		record:  opts.Record,
	}
	if opts.Interactive {
		c.source = NewTTYReader(opts.In, opts.Out, styles, recall)
	} else {
		c.source = NewPlainReader(opts.In, opts.Out)
	}
	return c
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Observe renders e and tracks the current run.
func (c *Console) Observe(e drill.Event) {
	if rs, ok := e.(drill.RunStarted); ok {
		c.runID = rs.RunID
	}
	c.printer.Observe(e)
}

// ReadLine reads the next answer line under the current prompt.
func (c *Console) ReadLine(ctx context.Context) (string, error) {
	return c.source.ReadLine(ctx, c.printer.Prompt())
}

// Close releases the line source. The Console must not be read after.
func (c *Console) Close() error {
	if cl, ok := c.source.(io.Closer); ok {
		return cl.Close()
	}
	return nil
}

// Remember adds line to recall and hands it to the recorder.
func (c *Console) Remember(line string) {
	c.recall.Add(line)
	if c.record != nil && line != "" {
		c.record(c.runID, line)
	}
}

// RunID returns the ID of the run most recently started.
func (c *Console) RunID() string {
	return c.runID
}
