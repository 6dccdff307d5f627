package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"rbnim/engine"
	"rbnim/game"
	"rbnim/searcher"

	"github.com/stretchr/testify/require"
)

func TestNewRecords(t *testing.T) {
	initial, err := game.NewState(2, 1, game.Misere)
	require.NoError(t, err)
	result := engine.Result{
		Winner: game.Computer,
		Score:  2,
		First:  game.Human,
		Turns: []engine.Turn{
			{Step: 1, Player: game.Human, Move: game.Move{Pile: game.Red, Amount: 1}},
			{Step: 2, Player: game.Computer, Move: game.Move{Pile: game.Blue, Amount: 1},
				Metrics: searcher.SearchMetrics{Nodes: 4, Cutoffs: 1, Duration: time.Millisecond}},
		},
	}

	record, moves := NewRecords(7, initial, result)

	require.Equal(t, 7, record.ID)
	require.Equal(t, 2, record.Red)
	require.Equal(t, 1, record.Blue)
	require.Equal(t, game.Misere, record.Variant)
	require.Equal(t, game.Computer, record.Winner)
	require.Equal(t, 2, record.Moves)
	require.Equal(t, int64(4), record.Nodes, "Nodes should sum over all decisions")
	require.Len(t, moves, 2)
	require.Equal(t, 7, moves[1].Game)
	require.Equal(t, int64(1), moves[1].Cutoffs)
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, w.WriteGameRecords([]GameRecord{
		{ID: 1, Red: 2, Blue: 3, Variant: game.Standard, First: game.Computer, Winner: game.Human, Score: 4, Moves: 3, Nodes: 12},
	}))
	require.NoError(t, w.WriteMoveRecords([]MoveRecord{
		{Game: 1, Step: 1, Player: game.Computer, Move: game.Move{Pile: game.Blue, Amount: 2}, Nodes: 12, Cutoffs: 2, Duration: time.Millisecond},
	}))

	games, err := os.ReadFile(filepath.Join(w.Dir(), "game_records.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(games)), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasPrefix(lines[1], "1,2,3,standard,computer,human,4,3,12,"))

	moves, err := os.ReadFile(filepath.Join(w.Dir(), "move_records.csv"))
	require.NoError(t, err)
	require.Equal(t,
		"game,step,player,pile,amount,nodes,cutoffs,duration\n1,1,computer,blue,2,12,2,1ms\n",
		string(moves))
}
