package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/abhisek/habid/internal/console"
	"github.com/abhisek/habid/internal/deck"
	"github.com/abhisek/habid/internal/similarity"
	"github.com/abhisek/habid/internal/store"
	"github.com/abhisek/habid/internal/trainer"
)

var rootCmd = &cobra.Command{
	Use:   "habid [decks...]",
	Short: "Drill flashcards with fuzzy answer matching",
	Long: `habid asks the prompts of one or more card decks and checks your answers.

Near misses are scored by similarity and count as partial mistakes. Prefix a
guess with ! for a hint, !! for a bigger one, !!! for the answer.`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE:         runTrain,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("history-db", "", "Path to SQLite history database (overrides HABID_DB env var)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug diagnostics to stderr")

	addTrainFlags(rootCmd)

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

func addTrainFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.BoolP("shuffle", "s", true, "Shuffle the cards")
	f.Bool("no-shuffle", false, "Keep the deck order")
	f.BoolP("join", "j", true, "Join all decks into one training")
	f.Bool("no-join", false, "Train each deck separately")
	f.BoolP("one", "o", false, "One answer is enough")
	f.IntP("limit", "l", 0, "Drill at most this many cards per training (0 = all)")
	f.String("metric", similarity.DefaultMetric, fmt.Sprintf("Similarity metric %v (overrides HABID_METRIC env var)", similarity.Metrics()))
	f.Bool("no-history", false, "Do not load or save answer history")
	f.Bool("no-color", false, "Disable coloured output")
}

// trainOptions is the resolved configuration of a training invocation.
type trainOptions struct {
	Decks   []string
	Shuffle bool
	Join    bool
	One     bool
	Limit   int
	Metric  string
	History bool
	Color   bool
	Verbose bool
}

// resolveTrainOptions applies flags over environment over defaults.
func resolveTrainOptions(cmd *cobra.Command, args []string) (trainOptions, error) {
	f := cmd.Flags()
	opts := trainOptions{Decks: args}

	opts.Shuffle, _ = f.GetBool("shuffle")
	if noShuffle, _ := f.GetBool("no-shuffle"); noShuffle {
		opts.Shuffle = false
	}
	opts.Join, _ = f.GetBool("join")
	if noJoin, _ := f.GetBool("no-join"); noJoin {
		opts.Join = false
	}
	opts.One, _ = f.GetBool("one")

	opts.Limit, _ = f.GetInt("limit")
	if opts.Limit < 0 {
		return opts, fmt.Errorf("invalid --limit %d: must not be negative", opts.Limit)
	}

	opts.Metric, _ = f.GetString("metric")
	if !f.Changed("metric") {
		if env := os.Getenv("HABID_METRIC"); env != "" {
			opts.Metric = env
		}
	}

	noHistory, _ := f.GetBool("no-history")
	opts.History = !noHistory

	noColor, _ := f.GetBool("no-color")
	opts.Color = !noColor
	opts.Verbose, _ = f.GetBool("verbose")
	return opts, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func runTrain(cmd *cobra.Command, args []string) error {
	opts, err := resolveTrainOptions(cmd, args)
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), opts.Verbose)

	decks, err := deck.Load(opts.Decks)
	if err != nil {
		return err
	}

	metric, err := similarity.New(opts.Metric)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	hist := openHistory(ctx, cmd, opts, logger)
	defer hist.Close()

	interactive := console.IsTerminal(os.Stdin) && console.IsTerminal(os.Stdout)
	con := console.New(console.Options{
		In:          cmd.InOrStdin(),
		Out:         cmd.OutOrStdout(),
		Interactive: interactive,
		Color:       opts.Color && console.IsTerminal(os.Stdout),
		History:     hist.lines,
		Record:      hist.record(ctx),
	})
	defer con.Close()

	runner := trainer.New(con, con, metric, trainer.WithLogger(logger))
	results, err := runner.RunAll(ctx, decks, opts.Join, trainer.Options{
		Shuffle:      opts.Shuffle,
		SingleAnswer: opts.One,
		Limit:        opts.Limit,
	})
	for _, r := range results {
		logger.Debug("training finished",
			"run_id", r.RunID,
			"deck", r.Deck,
			"completed", r.Completed,
			"skipped", r.Skipped,
			"interrupted", r.Interrupted,
		)
	}
	return err
}

// history is the optional answer-history backend of a training.
type history struct {
	repo   store.HistoryRepo
	lines  []string
	closer io.Closer
	logger *slog.Logger
}

// openHistory opens the history store. Failures are logged and leave
// history disabled; training works without it.
func openHistory(ctx context.Context, cmd *cobra.Command, opts trainOptions, logger *slog.Logger) *history {
	h := &history{logger: logger}
	if !opts.History {
		return h
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		logger.Warn("history disabled", "error", err)
		return h
	}
	st, err := store.Open(dbPath)
	if err != nil {
		logger.Warn("history disabled", "path", dbPath, "error", err)
		return h
	}

	repo := st.HistoryRepo()
	entries, err := repo.Recent(ctx, store.DefaultRecentLimit)
	if err != nil {
		logger.Warn("history not loaded", "path", dbPath, "error", err)
	}
	h.repo = repo
	h.lines = store.Lines(entries)
	h.closer = st
	logger.Debug("history opened", "path", dbPath, "lines", len(h.lines))
	return h
}

func (h *history) record(ctx context.Context) console.RecordFunc {
	if h.repo == nil {
		return nil
	}
	return func(runID, line string) {
		if err := h.repo.Append(context.WithoutCancel(ctx), runID, line); err != nil {
			h.logger.Warn("history not saved", "error", err)
		}
	}
}

func (h *history) Close() error {
	if h.closer == nil {
		return nil
	}
	return h.closer.Close()
}

// resolveDBPath returns the database path using --history-db flag (highest
// priority), then HABID_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("history-db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
