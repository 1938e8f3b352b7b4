// Package trainer drives a deck of cards through the drill and reports
// the session statistics at the end, however the run ends.
package trainer

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/abhisek/habid/internal/deck"
	"github.com/abhisek/habid/internal/drill"
	"github.com/abhisek/habid/internal/session"
	"github.com/abhisek/habid/internal/similarity"
)

// Options controls one training run.
type Options struct {
	// Shuffle randomizes the card order before the run.
	Shuffle bool

	// SingleAnswer completes every card after its first correct guess.
	SingleAnswer bool

	// Limit keeps only the first Limit cards (after shuffling). 0 means all.
	Limit int

	// Rand is the shuffle source; nil uses the global source.
	Rand *rand.Rand
}

// Result describes a finished run.
type Result struct {
	RunID       string
	Deck        string
	Cards       int
	Completed   int
	Skipped     int
	Summary     session.Summary
	HasSummary  bool
	Interrupted bool
}

// Runner drills decks using one input channel and one observer.
type Runner struct {
	in     drill.LineReader
	out    drill.Observer
	scorer similarity.Scorer
	logger *slog.Logger
	newID  func() string
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger for diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// withIDGenerator replaces the run ID generator.
func withIDGenerator(f func() string) Option {
	return func(r *Runner) { r.newID = f }
}

// New returns a Runner. A nil scorer selects the default ratio metric.
// Each Run memoizes scorer in a cache of its own.
func New(in drill.LineReader, out drill.Observer, scorer similarity.Scorer, opts ...Option) *Runner {
	if scorer == nil {
		scorer = similarity.ScorerFunc(similarity.Ratio)
	}
	r := &Runner{
		in:     in,
		out:    out,
		scorer: scorer,
		logger: slog.New(slog.DiscardHandler),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run drills d. Cards without answers are skipped. When input ends early
// Run returns normally with Result.Interrupted set. The summary is
// reported to the observer whenever at least one question was answered,
// including on early termination.
func (r *Runner) Run(ctx context.Context, d deck.Deck, opts Options) (res Result, err error) {
	if opts.Shuffle {
		d = d.Shuffled(opts.Rand)
	}
	d = d.Limit(opts.Limit)

	res = Result{RunID: r.newID(), Deck: d.Name, Cards: d.Len()}
	logger := r.logger.With("run_id", res.RunID, "deck", d.Name)
	tracker := session.NewTracker()

	var scorer similarity.Scorer = r.scorer
	if memo, err := similarity.NewMemo(r.scorer, similarity.DefaultMemoSize); err != nil {
		logger.Warn("scoring without memo", "error", err)
	} else {
		scorer = memo
	}
	driver := drill.NewDriver(r.in, r.out, scorer)

	logger.Debug("run started", "cards", res.Cards, "shuffle", opts.Shuffle, "single", opts.SingleAnswer)
	r.out.Observe(drill.RunStarted{RunID: res.RunID, Deck: d.Name, Cards: res.Cards})

	defer func() {
		res.Summary, res.HasSummary = tracker.Summary()
		if res.HasSummary {
			r.out.Observe(drill.SummaryReported{Summary: res.Summary, Interrupted: res.Interrupted})
		}
		logger.Debug("run finished",
			"completed", res.Completed,
			"skipped", res.Skipped,
			"questions", tracker.Questions(),
			"mistakes", tracker.Mistakes(),
			"interrupted", res.Interrupted,
		)
	}()

	for _, card := range d.Cards {
		err := driver.Drive(ctx, card, tracker, opts.SingleAnswer)
		switch {
		case err == nil:
			res.Completed++
		case errors.Is(err, deck.ErrEmptyAnswerSet):
			res.Skipped++
			logger.Warn("skipping card without answers", "prompt", card.Prompt)
			r.out.Observe(drill.CardSkipped{Prompt: card.Prompt, Err: err})
		case errors.Is(err, drill.ErrInputEnded):
			res.Interrupted = true
			return res, nil
		default:
			return res, err
		}
	}
	return res, nil
}
