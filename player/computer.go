package player

import (
	"rbnim/game"
	"rbnim/searcher"
)

type Computer struct {
	minimax *searcher.Minimax
}

// NewComputer returns a player that searches the full game tree for every move.
func NewComputer(minimax *searcher.Minimax) *Computer {
	return &Computer{minimax: minimax}
}

func (c *Computer) FindMove(state game.State, role game.Role) (game.Move, searcher.SearchMetrics, error) {
	return c.minimax.FindMove(state, role)
}
