package engine

import (
	"errors"
	"time"

	"rbnim/game"
	"rbnim/searcher"
)

var ErrIllegalMove = errors.New("illegal move")

// Agent chooses moves for whichever role it is seated at.
type Agent interface {
	FindMove(state game.State, role game.Role) (game.Move, searcher.SearchMetrics, error)
}

type Turn struct {
	Step    int
	Player  game.Role
	Move    game.Move
	Metrics searcher.SearchMetrics
}

type Result struct {
	Winner    game.Role
	Score     int // Weighted tokens left on the table
	Final     game.State
	First     game.Role
	Turns     []Turn
	StartTime time.Time
	Duration  time.Duration
}
