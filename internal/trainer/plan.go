package trainer

import (
	"context"

	"github.com/abhisek/habid/internal/deck"
)

// Plan arranges decks into runs: one run over all cards when join is set,
// otherwise one run per deck.
func Plan(decks []deck.Deck, join bool) []deck.Deck {
	if join && len(decks) > 1 {
		return []deck.Deck{deck.Join(decks...)}
	}
	return decks
}

// RunAll drills every run of Plan(decks, join) in order, each with its own
// statistics. It stops after the first interrupted run or error.
func (r *Runner) RunAll(ctx context.Context, decks []deck.Deck, join bool, opts Options) ([]Result, error) {
	runs := Plan(decks, join)
	results := make([]Result, 0, len(runs))
	for _, d := range runs {
		res, err := r.Run(ctx, d, opts)
		results = append(results, res)
		if err != nil {
			return results, err
		}
		if res.Interrupted {
			break
		}
	}
	return results, nil
}
