package console

// DefaultRecallSize bounds the number of lines kept for up/down recall.
const DefaultRecallSize = 500

// Recall is the in-memory list of previously entered lines, oldest first.
type Recall struct {
	lines []string
	max   int
}

// NewRecall creates a Recall preloaded with lines, keeping at most size.
func NewRecall(size int, lines ...string) *Recall {
	if size <= 0 {
		size = DefaultRecallSize
	}
	r := &Recall{max: size}
	for _, l := range lines {
		r.Add(l)
	}
	return r
}

// Add appends line unless it is empty or repeats the newest entry.
func (r *Recall) Add(line string) {
	if line == "" {
		return
	}
	if n := len(r.lines); n > 0 && r.lines[n-1] == line {
		return
	}
	r.lines = append(r.lines, line)
	if len(r.lines) > r.max {
		r.lines = r.lines[len(r.lines)-r.max:]
	}
}

// Lines returns a copy of the recalled lines, oldest first.
func (r *Recall) Lines() []string {
	return append([]string(nil), r.lines...)
}

// Len returns the number of recalled lines.
func (r *Recall) Len() int {
	return len(r.lines)
}
