package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"rbnim/config"
	"rbnim/experiments"
)

func Experiment(cfg *config.Config) *cobra.Command {
	defaults := experiments.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "experiment",
		Short: "Pit the computer against a random player over a grid of positions",
		Long: heredoc.Doc(`
			experiment plays the computer against a random opponent from every pile pair
			up to --max-red x --max-blue, in both versions and with both players starting,
			--games times each. Game and move records are written as CSV below
			--results-dir, and a summary is printed when all games are done.
		`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			run := defaults
			var err error
			if run.MaxRed, err = cmd.Flags().GetInt("max-red"); err != nil {
				return err
			}
			if run.MaxBlue, err = cmd.Flags().GetInt("max-blue"); err != nil {
				return err
			}
			if run.Games, err = cmd.Flags().GetInt("games"); err != nil {
				return err
			}
			if run.Seed, err = cmd.Flags().GetUint64("seed"); err != nil {
				return err
			}
			noPruning, err := cmd.Flags().GetBool("no-pruning")
			if err != nil {
				return err
			}
			run.Pruning = !noPruning
			run.Workers = cfg.GetInt(config.KeyWorkers)
			run.OutDir = cfg.GetString(config.KeyResultsDir)

			summary, err := experiments.Run(cmd.Context(), run)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Games played: %d\n", summary.Games)
			fmt.Fprintf(out, "Computer wins: %d (%.1f%%)\n", summary.ComputerWins, 100*summary.WinRate)
			fmt.Fprintf(out, "Computer decisions: %d\n", summary.Decisions)
			fmt.Fprintf(out, "Nodes per decision: %.1f (stddev %.1f)\n", summary.MeanNodes, summary.StdDevNodes)
			fmt.Fprintf(out, "Mean decision time: %s\n", summary.MeanDecision)
			if summary.Dir != "" {
				fmt.Fprintf(out, "Records written to %s\n", summary.Dir)
			}
			return nil
		},
	}

	cmd.Flags().Int("max-red", defaults.MaxRed, "Largest red pile in the grid")
	cmd.Flags().Int("max-blue", defaults.MaxBlue, "Largest blue pile in the grid")
	cmd.Flags().Int("games", defaults.Games, "Games per position, version and starting player")
	cmd.Flags().Uint64("seed", defaults.Seed, "Seed for the random opponent")
	cmd.Flags().Bool("no-pruning", false, "Search the full tree without alpha-beta cutoffs")
	cmd.Flags().Int(config.KeyWorkers, defaults.Workers, "Games played at once")
	cmd.Flags().String(config.KeyResultsDir, "", "Directory for the CSV records (default: XDG data dir)")

	return cmd
}
