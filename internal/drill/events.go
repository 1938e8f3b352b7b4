package drill

import (
	"github.com/abhisek/habid/internal/hint"
	"github.com/abhisek/habid/internal/session"
)

// Event is a structured notification emitted while drilling. Presentation
// layers render events; the drill never formats user-facing text itself.
type Event interface {
	isEvent()
}

// Observer receives drill events.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Event)

// Observe calls f(e).
func (f ObserverFunc) Observe(e Event) { f(e) }

// Kind qualifies a correct answer on cards that designate a primary answer.
type Kind int

const (
	KindPlain Kind = iota
	KindPrimary
	KindSecondary
)

func (k Kind) String() string {
	switch k {
	case KindPrimary:
		return "primary"
	case KindSecondary:
		return "secondary"
	default:
		return ""
	}
}

// RunStarted is emitted once before the first card of a run.
type RunStarted struct {
	RunID string
	Deck  string
	Cards int
}

// CardShown carries the prompt of the card being drilled.
type CardShown struct {
	Prompt string
}

// AnswerRequested precedes every read of an answer line.
type AnswerRequested struct {
	Answered int
	Total    int
	Single   bool
}

// HelpRequested is emitted when the user asks for help.
type HelpRequested struct{}

// Correct is emitted for a guess that exactly matches a remaining answer.
type Correct struct {
	Answer string
	Kind   Kind
}

// CaseMismatch is emitted when a guess differs from an answer only in case.
type CaseMismatch struct {
	Answer string
}

// HintShown carries a partial reveal of the best-matching answer.
type HintShown struct {
	Level hint.Level
	Text  string
}

// Mismatch is emitted for every incorrect guess after its penalty was
// recorded.
type Mismatch struct {
	Guess   string
	Best    string
	Ratio   int
	Factor  float64
	Penalty float64
}

// CardCompleted is emitted when a card needs no further answers.
type CardCompleted struct {
	Prompt string
}

// CardSkipped is emitted for a card that cannot be drilled.
type CardSkipped struct {
	Prompt string
	Err    error
}

// SummaryReported carries the final statistics of a run in which at least
// one question was answered.
type SummaryReported struct {
	Summary     session.Summary
	Interrupted bool
}

func (RunStarted) isEvent()      {}
func (CardShown) isEvent()       {}
func (AnswerRequested) isEvent() {}
func (HelpRequested) isEvent()   {}
func (Correct) isEvent()         {}
func (CaseMismatch) isEvent()    {}
func (HintShown) isEvent()       {}
func (Mismatch) isEvent()        {}
func (CardCompleted) isEvent()   {}
func (CardSkipped) isEvent()     {}
func (SummaryReported) isEvent() {}
