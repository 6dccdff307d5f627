package player

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"rbnim/game"
	"rbnim/searcher"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

var ErrInvalidSelection = errors.New("invalid selection")

// LineReader yields one line of user input per call. *readline.Instance satisfies it.
type LineReader interface {
	Readline() (string, error)
}

// Human asks a person to pick one of the legal moves by number.
type Human struct {
	reader LineReader
	out    io.Writer
}

// NewHuman creates a Human reading selections from reader and printing the options to out.
func NewHuman(reader LineReader, out io.Writer) *Human {
	return &Human{
		reader: reader,
		out:    out,
	}
}

// FindMove prints the numbered options and reads a selection until a valid one arrives.
// Input errors from the reader, such as EOF, end the game.
func (h *Human) FindMove(state game.State, role game.Role) (game.Move, searcher.SearchMetrics, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, searcher.SearchMetrics{}, fmt.Errorf("no moves for %s from %s", role, state)
	}

	options := lo.Map(moves, func(m game.Move, i int) string {
		return fmt.Sprintf("%d. %s %d", i+1, m.Pile, m.Amount)
	})

	for {
		fmt.Fprintln(h.out, "Choose a pile and count from the following options: ")
		fmt.Fprintln(h.out, strings.Join(options, "\n"))

		line, err := h.reader.Readline()
		if err != nil {
			return game.Move{}, searcher.SearchMetrics{}, fmt.Errorf("reading move for %s: %w", role, err)
		}

		move, err := ParseSelection(line, moves)
		if err != nil {
			log.Debug().Err(err).Str("input", line).Msg("rejected selection")
			fmt.Fprintf(h.out, "%v, try again.\n", err)
			continue
		}
		return move, searcher.SearchMetrics{}, nil
	}
}

// ParseSelection turns a 1-based option number into one of moves.
func ParseSelection(input string, moves []game.Move) (game.Move, error) {
	choice, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return game.Move{}, fmt.Errorf("%w: %q is not a number", ErrInvalidSelection, strings.TrimSpace(input))
	}
	if choice < 1 || choice > len(moves) {
		return game.Move{}, fmt.Errorf("%w: choose between 1 and %d", ErrInvalidSelection, len(moves))
	}
	return moves[choice-1], nil
}
