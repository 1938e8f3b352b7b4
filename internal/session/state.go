// Package session accumulates the statistics of one training run.
package session

// Tracker counts correctly answered prompts and sums weighted mistake
// penalties. One Tracker belongs to one training run.
type Tracker struct {
	// questions is the number of correct answers recorded.
	questions int

	// mistakes is the running sum of (1 - ratio/100) * factor penalties.
	mistakes float64
}

// NewTracker returns an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// RecordCorrect counts one correctly answered prompt.
func (t *Tracker) RecordCorrect() {
	t.questions++
}

// RecordPenalty adds the penalty for a miss scored at ratio percent,
// scaled by factor, and returns the amount added.
func (t *Tracker) RecordPenalty(ratio int, factor float64) float64 {
	p := (1.0 - float64(ratio)/100) * factor
	t.mistakes += p
	return p
}

// Questions returns the number of correct answers recorded.
func (t *Tracker) Questions() int { return t.questions }

// Mistakes returns the summed penalties.
func (t *Tracker) Mistakes() float64 { return t.mistakes }
