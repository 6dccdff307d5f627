package player

import (
	"bytes"
	"io"
	"testing"

	"rbnim/game"
	"rbnim/searcher"

	"github.com/stretchr/testify/require"
)

type scriptedReader struct {
	lines []string
}

func (r *scriptedReader) Readline() (string, error) {
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

func newState(t *testing.T, red, blue int, variant game.Variant) game.State {
	t.Helper()
	s, err := game.NewState(red, blue, variant)
	require.NoError(t, err)
	return s
}

func TestParseSelection(t *testing.T) {
	moves := newState(t, 2, 2, game.Standard).LegalMoves()

	t.Run("one-based index", func(t *testing.T) {
		move, err := ParseSelection("1", moves)
		require.NoError(t, err)
		require.Equal(t, moves[0], move)

		move, err = ParseSelection(" 4 \n", moves)
		require.NoError(t, err)
		require.Equal(t, moves[3], move)
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := ParseSelection("0", moves)
		require.ErrorIs(t, err, ErrInvalidSelection)
		_, err = ParseSelection("5", moves)
		require.ErrorIs(t, err, ErrInvalidSelection)
	})

	t.Run("not a number", func(t *testing.T) {
		_, err := ParseSelection("red 2", moves)
		require.ErrorIs(t, err, ErrInvalidSelection)
	})
}

func TestHumanFindMove(t *testing.T) {
	t.Run("prints numbered options and returns the selection", func(t *testing.T) {
		var out bytes.Buffer
		h := NewHuman(&scriptedReader{lines: []string{"2"}}, &out)

		move, _, err := h.FindMove(newState(t, 2, 1, game.Standard), game.Human)

		require.NoError(t, err)
		require.Equal(t, game.Move{Pile: game.Red, Amount: 1}, move)
		require.Equal(t,
			"Choose a pile and count from the following options: \n"+
				"1. red 2\n"+
				"2. red 1\n"+
				"3. blue 1\n",
			out.String())
	})

	t.Run("re-prompts after an invalid selection", func(t *testing.T) {
		var out bytes.Buffer
		h := NewHuman(&scriptedReader{lines: []string{"9", "x", "1"}}, &out)

		move, _, err := h.FindMove(newState(t, 1, 1, game.Misere), game.Human)

		require.NoError(t, err)
		require.Equal(t, game.Move{Pile: game.Blue, Amount: 1}, move, "Misere lists (blue, 1) first")
		require.Contains(t, out.String(), "choose between 1 and 2, try again.")
		require.Contains(t, out.String(), `"x" is not a number, try again.`)
	})

	t.Run("reader errors abort", func(t *testing.T) {
		h := NewHuman(&scriptedReader{}, io.Discard)

		_, _, err := h.FindMove(newState(t, 1, 1, game.Standard), game.Human)

		require.ErrorIs(t, err, io.EOF)
	})
}

func TestComputerFindMove(t *testing.T) {
	s := newState(t, 3, 4, game.Standard)
	want, _, err := searcher.NewMinimax().FindMove(s, game.Computer)
	require.NoError(t, err)

	got, _, err := NewComputer(searcher.NewMinimax()).FindMove(s, game.Computer)

	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestRandomFindMove(t *testing.T) {
	t.Run("always legal", func(t *testing.T) {
		r := NewRandom(7)
		s := newState(t, 5, 5, game.Misere)
		for i := 0; i < 50; i++ {
			move, _, err := r.FindMove(s, game.Human)
			require.NoError(t, err)
			require.Contains(t, s.LegalMoves(), move)
		}
	})

	t.Run("same seed same moves", func(t *testing.T) {
		a, b := NewRandom(42), NewRandom(42)
		s := newState(t, 5, 5, game.Standard)
		for i := 0; i < 20; i++ {
			ma, _, err := a.FindMove(s, game.Human)
			require.NoError(t, err)
			mb, _, err := b.FindMove(s, game.Human)
			require.NoError(t, err)
			require.Equal(t, ma, mb)
		}
	})

	t.Run("terminal state has no move", func(t *testing.T) {
		_, _, err := NewRandom(1).FindMove(newState(t, 0, 0, game.Standard), game.Human)
		require.Error(t, err)
	})
}
