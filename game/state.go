package game

import (
	"fmt"
	"slices"
)

// State is the position of a game: both pile sizes and the scoring variant.
// State is immutable - Play always returns a new value and never touches the receiver,
// so the searcher can branch from one parent into many children.
type State struct {
	red     int
	blue    int
	variant Variant
}

// NewState returns the initial state of a game.
func NewState(red, blue int, variant Variant) (State, error) {
	if red < 0 || blue < 0 {
		return State{}, fmt.Errorf("pile sizes must be non-negative, got red=%d blue=%d", red, blue)
	}
	if variant != Standard && variant != Misere {
		return State{}, fmt.Errorf("unknown variant %d", int(variant))
	}
	return State{red: red, blue: blue, variant: variant}, nil
}

func (s State) Red() int         { return s.red }
func (s State) Blue() int        { return s.blue }
func (s State) Variant() Variant { return s.variant }

func (s State) pile(p Pile) int {
	if p == Red {
		return s.red
	}
	return s.blue
}

// IsTerminal reports whether either pile is empty.
func (s State) IsTerminal() bool {
	return s.red == 0 || s.blue == 0
}

// LegalMoves lists the moves available from s. The order decides ties in the search:
// take 2 red, take 2 blue, take 1 red, take 1 blue, reversed as a whole for misere.
func (s State) LegalMoves() []Move {
	moves := make([]Move, 0, 4)
	for amount := MaxTake; amount >= 1; amount-- {
		for _, pile := range []Pile{Red, Blue} {
			if s.pile(pile) >= amount {
				moves = append(moves, Move{Pile: pile, Amount: amount})
			}
		}
	}
	if s.variant == Misere {
		slices.Reverse(moves)
	}
	return moves
}

// Play returns the state reached by removing the move's tokens from its pile.
func (s State) Play(m Move) (State, error) {
	if m.Pile != Red && m.Pile != Blue {
		return State{}, fmt.Errorf("%w: unknown pile %s", ErrInvalidMove, m.Pile)
	}
	if m.Amount < 1 || m.Amount > MaxTake {
		return State{}, fmt.Errorf("%w: cannot take %d tokens", ErrInvalidMove, m.Amount)
	}
	if m.Amount > s.pile(m.Pile) {
		return State{}, fmt.Errorf("%w: %s pile holds %d, cannot take %d", ErrInvalidMove, m.Pile, s.pile(m.Pile), m.Amount)
	}

	next := s
	if m.Pile == Red {
		next.red -= m.Amount
	} else {
		next.blue -= m.Amount
	}
	return next, nil
}

// Winner names the winner of a finished game, given the role that would move next.
// Standard: whoever emptied the pile loses. Misere: whoever emptied it wins.
func (s State) Winner(next Role) (Role, bool) {
	if !s.IsTerminal() {
		return 0, false
	}
	if s.variant == Misere {
		return next.Opponent(), true
	}
	return next, true
}

func (s State) String() string {
	return fmt.Sprintf("Red Pile = %d, Blue Pile = %d", s.red, s.blue)
}
