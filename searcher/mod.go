package searcher

import (
	"errors"
	"math"

	"rbnim/game"
)

// Bounds of the search window, standing in for -inf and +inf
const (
	NegInfinity = math.MinInt
	Infinity    = math.MaxInt
)

var ErrNoMove = errors.New("search found no move")

// Decision is the outcome of one search: the game-theoretic value of the root and,
// unless the root has no legal moves, the move that reaches it.
type Decision struct {
	Value   int
	Move    game.Move
	HasMove bool
}
