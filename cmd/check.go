package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/habid/internal/deck"
)

var checkCmd = &cobra.Command{
	Use:   "check decks...",
	Short: "Validate deck files without training",
	Long: `Load every deck, report its card count and flag cards that cannot be
drilled because they have no usable answers.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	decks, err := deck.Load(args)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DECK\tCARDS\tANSWERS\tPRIMARY\tEMPTY")
	var problems int
	for _, d := range decks {
		var answers, primary, empty int
		for _, c := range d.Cards {
			set, err := c.ParseAnswers()
			if err != nil {
				empty++
				continue
			}
			answers += set.Size()
			if set.HasPrimary() {
				primary++
			}
		}
		problems += empty
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\n", d.Path, d.Len(), answers, primary, empty)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if problems > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d card(s) have no answers and will be skipped\n", problems)
	}
	return nil
}
