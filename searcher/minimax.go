package searcher

import (
	"fmt"

	"rbnim/game"

	"github.com/rs/zerolog/log"
)

type Option func(m *Minimax)

// Minimax searches the full game tree with alpha-beta pruning. There is no depth limit
// and no transposition table: every decision runs to the terminal states.
// A Minimax is not safe for concurrent use; give each game its own.
type Minimax struct {
	pruning bool
	metrics MetricsCollector
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = NewMetricsCollector()
	}
}

// WithoutPruning enumerates every node. The returned decision is the same, only slower.
func WithoutPruning() Option {
	return func(m *Minimax) {
		m.pruning = false
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		pruning: true,
		metrics: NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Search returns the value of state and the best move for the side to move.
// perspective is the role whose turn it is at the top of the decision; every leaf in the
// tree is evaluated for that role, whatever the maximizing flag is at that depth.
func (m *Minimax) Search(state game.State, perspective game.Role, maximizing bool) (Decision, SearchMetrics) {
	m.metrics.Start(m.pruning)
	decision := m.alphaBeta(state, NegInfinity, Infinity, maximizing, perspective)
	return decision, m.metrics.Complete()
}

// FindMove makes a single top-level decision for role. The computer maximizes.
func (m *Minimax) FindMove(state game.State, role game.Role) (game.Move, SearchMetrics, error) {
	decision, metrics := m.Search(state, role, role == game.Computer)
	if !decision.HasMove {
		return game.Move{}, metrics, fmt.Errorf("%w: %s to move from %s", ErrNoMove, role, state)
	}

	log.Debug().
		Str("player", role.String()).
		Stringer("move", decision.Move).
		Int("value", decision.Value).
		Int64("nodes", metrics.Nodes).
		Int64("cutoffs", metrics.Cutoffs).
		Dur("took", metrics.Duration).
		Msg("search complete")

	return decision.Move, metrics, nil
}

func (m *Minimax) alphaBeta(state game.State, alpha, beta int, maximizing bool, perspective game.Role) Decision {
	m.metrics.AddNode()

	if state.IsTerminal() {
		return Decision{Value: state.Evaluate(perspective)}
	}

	var best Decision
	if maximizing {
		best.Value = NegInfinity
	} else {
		best.Value = Infinity
	}

	for _, move := range state.LegalMoves() {
		child, err := state.Play(move)
		if err != nil {
			panic(fmt.Sprintf("legal move rejected by state: %v", err))
		}
		value := m.alphaBeta(child, alpha, beta, !maximizing, perspective).Value

		// Strict comparison keeps the earliest move on ties
		if maximizing {
			if value > best.Value {
				best = Decision{Value: value, Move: move, HasMove: true}
			}
			alpha = max(alpha, value)
		} else {
			if value < best.Value {
				best = Decision{Value: value, Move: move, HasMove: true}
			}
			beta = min(beta, value)
		}

		if m.pruning && beta <= alpha {
			m.metrics.AddCutoff()
			break
		}
	}
	return best
}
