package player

import (
	"fmt"

	"rbnim/game"
	"rbnim/searcher"

	"golang.org/x/exp/rand"
)

// Random plays a uniformly random legal move. It is the sparring partner of the
// experiments harness.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) FindMove(state game.State, role game.Role) (game.Move, searcher.SearchMetrics, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, searcher.SearchMetrics{}, fmt.Errorf("no moves for %s from %s", role, state)
	}
	return moves[r.rng.Intn(len(moves))], searcher.SearchMetrics{}, nil
}
