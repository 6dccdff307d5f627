package metrics

import (
	"time"

	"rbnim/engine"
	"rbnim/game"
)

type GameRecord struct {
	ID        int
	Red       int // Initial piles
	Blue      int
	Variant   game.Variant
	First     game.Role
	Winner    game.Role
	Score     int
	Moves     int
	Nodes     int64 // Summed over the computer's decisions
	StartTime time.Time
	Duration  time.Duration
}

type MoveRecord struct {
	Game     int // GameRecord.ID
	Step     int
	Player   game.Role
	Move     game.Move
	Nodes    int64
	Cutoffs  int64
	Duration time.Duration
}

// NewRecords flattens a finished game into one game record and one record per move.
func NewRecords(id int, initial game.State, result engine.Result) (GameRecord, []MoveRecord) {
	record := GameRecord{
		ID:        id,
		Red:       initial.Red(),
		Blue:      initial.Blue(),
		Variant:   initial.Variant(),
		First:     result.First,
		Winner:    result.Winner,
		Score:     result.Score,
		Moves:     len(result.Turns),
		StartTime: result.StartTime,
		Duration:  result.Duration,
	}

	moves := make([]MoveRecord, 0, len(result.Turns))
	for _, turn := range result.Turns {
		record.Nodes += turn.Metrics.Nodes
		moves = append(moves, MoveRecord{
			Game:     id,
			Step:     turn.Step,
			Player:   turn.Player,
			Move:     turn.Move,
			Nodes:    turn.Metrics.Nodes,
			Cutoffs:  turn.Metrics.Cutoffs,
			Duration: turn.Metrics.Duration,
		})
	}
	return record, moves
}
