package cmd

import (
	"fmt"
	"strconv"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"rbnim/config"
	"rbnim/engine"
	"rbnim/game"
	"rbnim/meta"
	"rbnim/player"
	"rbnim/searcher"
)

func Root() *cobra.Command {
	cfg := config.DefaultConfig()

	root := &cobra.Command{
		Use:   meta.APP_NAME + " red_pile blue_pile version [first_player]",
		Short: "Play Red-Blue Nim against the computer",
		Long: heredoc.Doc(`
			Play Red-Blue Nim against the computer.

			There are two piles of marbles, red and blue. On each turn a player takes
			one or two marbles from a single pile, and the game ends as soon as either
			pile is empty. Every red marble left is worth 2 points, every blue one 3.

			version is "standard" (whoever empties a pile loses) or "misere" (whoever
			empties a pile wins). first_player is "human" (default) or "computer".
		`),
		Example: heredoc.Doc(`
			$ rbnim 3 4 standard
			$ rbnim 5 2 misere computer
		`),
		Args:    cobra.RangeArgs(3, 4),
		Version: meta.VERSION,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}
			if err := cfg.Load(path); err != nil {
				return err
			}
			if err := cfg.BindFlags(cmd.Flags()); err != nil {
				return err
			}

			setupLogger(cmd.ErrOrStderr(), cfg.GetBool(config.KeyDebug))
			log.Debug().Msgf("loaded config: %v", cfg.SanitizedSettings())
			return nil
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			state, first, err := parseGameArgs(args, game.Human)
			if err != nil {
				return err
			}
			return play(cmd, cfg, state, first)
		},
	}

	// global flags
	root.PersistentFlags().String("config", "", "Path to a YAML config file")
	root.PersistentFlags().Bool(config.KeyDebug, false, "Show debug logging")
	root.PersistentFlags().Bool(config.KeyThinking, false, "Show a spinner while the computer searches")

	root.Flags().String(config.KeyHistoryFile, "", "File keeping the history of your selections")

	root.AddCommand(Solve())
	root.AddCommand(Experiment(cfg))

	return root
}

func play(cmd *cobra.Command, cfg *config.Config, state game.State, first game.Role) error {
	out := cmd.OutOrStdout()

	var computer engine.Agent = player.NewComputer(searcher.NewMinimax(searcher.WithMetrics()))
	if cfg.GetBool(config.KeyThinking) {
		computer = newThinkingAgent(computer, cmd.ErrOrStderr())
	}

	reader := newPromptReader(cfg.GetString(config.KeyHistoryFile), cmd.InOrStdin(), out)
	defer reader.Close()

	e := engine.LocalEngine(state, first, map[game.Role]engine.Agent{
		game.Human:    player.NewHuman(reader, out),
		game.Computer: computer,
	}, out)

	_, err := e.Run()
	return err
}

// parseGameArgs reads "red_pile blue_pile version [player]".
func parseGameArgs(args []string, defaultRole game.Role) (game.State, game.Role, error) {
	red, err := parsePile("red_pile", args[0])
	if err != nil {
		return game.State{}, 0, err
	}
	blue, err := parsePile("blue_pile", args[1])
	if err != nil {
		return game.State{}, 0, err
	}
	variant, err := game.ParseVariant(args[2])
	if err != nil {
		return game.State{}, 0, err
	}

	role := defaultRole
	if len(args) > 3 {
		role, err = game.ParseRole(args[3])
		if err != nil {
			return game.State{}, 0, err
		}
	}

	state, err := game.NewState(red, blue, variant)
	if err != nil {
		return game.State{}, 0, err
	}
	return state, role, nil
}

func parsePile(name, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not an integer", name, arg)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s: must be non-negative, got %d", name, n)
	}
	return n, nil
}
