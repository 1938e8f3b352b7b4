// Package drill runs a single flashcard: it reads guesses, scores them
// against the card's answers, and reports what happened as events.
package drill

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/abhisek/habid/internal/deck"
	"github.com/abhisek/habid/internal/hint"
	"github.com/abhisek/habid/internal/session"
	"github.com/abhisek/habid/internal/similarity"
)

// ErrInputEnded signals that the input channel was closed or the run was
// cancelled. It ends a run early but is not a failure.
var ErrInputEnded = errors.New("input ended")

// HelpCommand is the line that asks for help instead of guessing.
const HelpCommand = "?"

// Penalty factors applied to a miss.
const (
	FactorDefault   = 1.0
	FactorCaseOnly  = 0.1
	FactorSmallHint = 0.2
	FactorBigHint   = 0.5
)

// LineReader supplies raw answer lines. ReadLine returns io.EOF when input
// ends. Remember adds an accepted line to the recall history.
type LineReader interface {
	ReadLine(ctx context.Context) (string, error)
	Remember(line string)
}

// State is the position of a card in its answer loop.
type State int

const (
	StateAwaiting State = iota
	StateHelp
	StateHint
	StateCorrect
	StateIncorrect
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateAwaiting:
		return "awaiting"
	case StateHelp:
		return "help"
	case StateHint:
		return "hint"
	case StateCorrect:
		return "correct"
	case StateIncorrect:
		return "incorrect"
	case StateComplete:
		return "complete"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Driver drills cards one at a time.
type Driver struct {
	in     LineReader
	out    Observer
	scorer similarity.Scorer
}

// NewDriver returns a Driver reading from in, reporting to out, and
// scoring near misses with scorer.
func NewDriver(in LineReader, out Observer, scorer similarity.Scorer) *Driver {
	return &Driver{in: in, out: out, scorer: scorer}
}

// Drive runs card until it is complete, recording results in tracker.
// singleAnswer forces one correct guess to complete the card.
// It returns deck.ErrEmptyAnswerSet for a card without answers and an
// error wrapping ErrInputEnded when input runs out first.
func (d *Driver) Drive(ctx context.Context, card deck.Card, tracker *session.Tracker, singleAnswer bool) error {
	set, err := card.ParseAnswers()
	if err != nil {
		return err
	}

	c := &cardRun{
		driver:  d,
		set:     set,
		tracker: tracker,
		single:  set.SingleAnswer(singleAnswer),
	}

	d.out.Observe(CardShown{Prompt: card.Prompt})
	for state := StateAwaiting; state != StateComplete; {
		d.out.Observe(AnswerRequested{
			Answered: set.Answered(),
			Total:    set.Size(),
			Single:   c.single,
		})
		line, err := d.read(ctx)
		if err != nil {
			return err
		}
		state = c.handle(line)
	}
	d.out.Observe(CardCompleted{Prompt: card.Prompt})
	return nil
}

func (d *Driver) read(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInputEnded, err)
	}
	line, err := d.in.ReadLine(ctx)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: %w", ErrInputEnded, err)
		}
		return "", fmt.Errorf("read answer: %w", err)
	}
	return line, nil
}

// cardRun is the per-card state of one Drive call.
type cardRun struct {
	driver  *Driver
	set     *deck.AnswerSet
	tracker *session.Tracker
	single  bool
}

// handle processes one raw input line and returns the state it led to.
func (c *cardRun) handle(raw string) State {
	out := c.driver.out
	line := deck.Normalize(raw)

	if line == HelpCommand {
		out.Observe(HelpRequested{})
		return StateHelp
	}

	// Recall gets the line as typed, before trimming.
	c.driver.in.Remember(raw)
	level, guess := hint.Parse(line)

	if c.set.Contains(guess) {
		kind := KindPlain
		if c.set.HasPrimary() && !c.single {
			kind = KindSecondary
			if c.set.IsPrimary(guess) {
				kind = KindPrimary
			}
		}
		c.tracker.RecordCorrect()
		c.set.Remove(guess)
		out.Observe(Correct{Answer: guess, Kind: kind})
		if c.single || c.set.Empty() {
			return StateComplete
		}
		return StateCorrect
	}

	m := c.set.BestMatch(guess, c.driver.scorer)
	factor := FactorDefault
	if m.CaseOnly {
		factor = FactorCaseOnly
		out.Observe(CaseMismatch{Answer: m.Answer})
	}
	switch level {
	case hint.Small:
		factor = FactorSmallHint
	case hint.Big:
		factor = FactorBigHint
	}
	if level != hint.None {
		out.Observe(HintShown{Level: level, Text: hint.Reveal(m.Answer, level)})
	}

	penalty := c.tracker.RecordPenalty(m.Ratio, factor)
	out.Observe(Mismatch{
		Guess:   guess,
		Best:    m.Answer,
		Ratio:   m.Ratio,
		Factor:  factor,
		Penalty: penalty,
	})

	if level != hint.None {
		return StateHint
	}
	return StateIncorrect
}
