package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/habid/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show or clear remembered answer lines",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()
		repo := st.HistoryRepo()

		if wipe, _ := cmd.Flags().GetBool("clear"); wipe {
			n, err := repo.Clear(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Removed %d line(s) from %s\n", n, dbPath)
			return nil
		}

		limit, _ := cmd.Flags().GetInt("limit")
		entries, err := repo.Recent(ctx, limit)
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Fprintf(out, "%s  %s\n", e.CreatedAt.Local().Format("2006-01-02 15:04"), e.Line)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Bool("clear", false, "Delete all remembered lines")
	historyCmd.Flags().IntP("limit", "n", 20, "Number of lines to show")
}
