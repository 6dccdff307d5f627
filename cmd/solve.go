package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"rbnim/game"
	"rbnim/searcher"
)

func Solve() *cobra.Command {
	return &cobra.Command{
		Use:   "solve red_pile blue_pile version [player]",
		Short: "Show the computer's evaluation and best move for a position",
		Long: heredoc.Doc(`
			solve runs the same search the computer uses during a game and prints the
			value of the position, the move it would choose and how many positions it
			had to look at. player defaults to "computer".
		`),
		Args: cobra.RangeArgs(3, 4),

		RunE: func(cmd *cobra.Command, args []string) error {
			state, role, err := parseGameArgs(args, game.Computer)
			if err != nil {
				return err
			}

			minimax := searcher.NewMinimax(searcher.WithMetrics())
			decision, metrics := minimax.Search(state, role, role == game.Computer)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Position: %s (%s)\n", state, state.Variant())
			fmt.Fprintf(out, "Value: %d\n", decision.Value)
			if decision.HasMove {
				fmt.Fprintf(out, "Best move for %s: %s\n", role, decision.Move)
			} else {
				fmt.Fprintln(out, "No move: the game is already over")
			}
			fmt.Fprintf(out, "Nodes searched: %d (%d cutoffs) in %s\n", metrics.Nodes, metrics.Cutoffs, metrics.Duration)
			return nil
		},
	}
}
