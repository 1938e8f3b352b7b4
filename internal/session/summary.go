package session

// Summary holds the statistics reported at the end of a run.
type Summary struct {
	Questions int
	Mistakes  float64
	Average   float64
}

// Summary returns the run statistics. ok is false when no question was
// answered, in which case there is no average to report.
func (t *Tracker) Summary() (s Summary, ok bool) {
	if t.questions == 0 {
		return Summary{}, false
	}
	return Summary{
		Questions: t.questions,
		Mistakes:  t.mistakes,
		Average:   t.mistakes / float64(t.questions),
	}, true
}
