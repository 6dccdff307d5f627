package experiments

import (
	"context"
	"fmt"
	"math"
	"time"

	"rbnim/engine"
	"rbnim/experiments/metrics"
	"rbnim/game"
	"rbnim/meta"
	"rbnim/player"
	"rbnim/searcher"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
)

// Config describes a self-play experiment: the computer against a random player over
// every pile pair up to MaxRed x MaxBlue, both variants, both starting players.
type Config struct {
	MaxRed  int
	MaxBlue int
	Games   int // Per setup
	Seed    uint64
	Workers int
	Pruning bool
	OutDir  string // No CSV output when empty
}

func DefaultConfig() Config {
	return Config{
		MaxRed:  meta.DEFAULT_MAX_PILE,
		MaxBlue: meta.DEFAULT_MAX_PILE,
		Games:   meta.DEFAULT_GAMES,
		Seed:    1,
		Workers: meta.DEFAULT_WORKERS,
		Pruning: true,
	}
}

type Summary struct {
	Games        int
	ComputerWins int
	WinRate      float64
	Decisions    int // Computer decisions across all games
	MeanNodes    float64
	StdDevNodes  float64
	MeanDecision time.Duration
	Dir          string // Where the records were written, if anywhere
}

type setup struct {
	id    int
	state game.State
	first game.Role
	seed  uint64
}

// Run plays every game of the experiment, a bounded number at a time. Games share nothing:
// each gets its own state, searcher and random opponent.
func Run(ctx context.Context, cfg Config) (Summary, error) {
	if cfg.MaxRed < 1 || cfg.MaxBlue < 1 || cfg.Games < 1 || cfg.Workers < 1 {
		return Summary{}, fmt.Errorf("experiment needs positive pile limits, games and workers: %+v", cfg)
	}

	setups, err := buildSetups(cfg)
	if err != nil {
		return Summary{}, err
	}

	log.Info().Msgf("starting experiment with %d games on %d workers...", len(setups), cfg.Workers)

	gameRecords := make([]metrics.GameRecord, len(setups))
	moveRecords := make([][]metrics.MoveRecord, len(setups))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i, s := range setups {
		i, s := i, s
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := runGame(s, cfg.Pruning)
			if err != nil {
				return fmt.Errorf("game %d from %s (%s): %w", s.id, s.state, s.state.Variant(), err)
			}
			gameRecords[i], moveRecords[i] = metrics.NewRecords(s.id, s.state, result)
			log.Debug().Msgf("completed game %d of %d with winner: %s", s.id, len(setups), result.Winner)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	moves := lo.Flatten(moveRecords)
	summary := summarize(gameRecords, moves)

	log.Info().Msgf("completed experiment: computer won %d of %d games", summary.ComputerWins, summary.Games)

	if cfg.OutDir == "" {
		return summary, nil
	}

	writer, err := metrics.NewWriter(cfg.OutDir)
	if err != nil {
		return summary, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return summary, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")
	if err := writer.WriteMoveRecords(moves); err != nil {
		return summary, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	summary.Dir = writer.Dir()
	return summary, nil
}

func buildSetups(cfg Config) ([]setup, error) {
	setups := []setup{}
	for red := 1; red <= cfg.MaxRed; red++ {
		for blue := 1; blue <= cfg.MaxBlue; blue++ {
			for _, variant := range []game.Variant{game.Standard, game.Misere} {
				state, err := game.NewState(red, blue, variant)
				if err != nil {
					return nil, err
				}
				for _, first := range []game.Role{game.Human, game.Computer} {
					for i := 0; i < cfg.Games; i++ {
						id := len(setups) + 1
						setups = append(setups, setup{
							id:    id,
							state: state,
							first: first,
							seed:  cfg.Seed + uint64(id),
						})
					}
				}
			}
		}
	}
	return setups, nil
}

// runGame seats the random player in the human seat and the searcher in the computer seat
func runGame(s setup, pruning bool) (engine.Result, error) {
	options := []searcher.Option{searcher.WithMetrics()}
	if !pruning {
		options = append(options, searcher.WithoutPruning())
	}

	agents := map[game.Role]engine.Agent{
		game.Human:    player.NewRandom(s.seed),
		game.Computer: player.NewComputer(searcher.NewMinimax(options...)),
	}
	e := engine.LocalEngine(s.state, s.first, agents, nil)
	return e.Run()
}

func summarize(games []metrics.GameRecord, moves []metrics.MoveRecord) Summary {
	summary := Summary{
		Games: len(games),
		ComputerWins: lo.CountBy(games, func(r metrics.GameRecord) bool {
			return r.Winner == game.Computer
		}),
	}
	if summary.Games > 0 {
		summary.WinRate = float64(summary.ComputerWins) / float64(summary.Games)
	}

	decisions := lo.Filter(moves, func(r metrics.MoveRecord, _ int) bool {
		return r.Player == game.Computer
	})
	summary.Decisions = len(decisions)
	if len(decisions) == 0 {
		return summary
	}

	nodes := lo.Map(decisions, func(r metrics.MoveRecord, _ int) float64 {
		return float64(r.Nodes)
	})
	summary.MeanNodes, summary.StdDevNodes = stat.MeanStdDev(nodes, nil)
	if math.IsNaN(summary.StdDevNodes) {
		summary.StdDevNodes = 0
	}

	total := lo.SumBy(decisions, func(r metrics.MoveRecord) time.Duration {
		return r.Duration
	})
	summary.MeanDecision = total / time.Duration(len(decisions))
	return summary
}
