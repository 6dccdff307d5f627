package game

import (
	"errors"
	"fmt"
)

// Points per remaining token, used by Score and Evaluate
const (
	RedWeight  = 2
	BlueWeight = 3
)

// Largest number of tokens a single move may remove
const MaxTake = 2

var ErrInvalidMove = errors.New("invalid move")

type Pile int

const (
	Red Pile = iota
	Blue
)

func (p Pile) String() string {
	switch p {
	case Red:
		return "red"
	case Blue:
		return "blue"
	default:
		return fmt.Sprintf("pile(%d)", int(p))
	}
}

// Variant selects the scoring rule of a game. It never changes once a State is created.
type Variant int

const (
	Standard Variant = iota
	Misere
)

func (v Variant) String() string {
	switch v {
	case Standard:
		return "standard"
	case Misere:
		return "misere"
	default:
		return fmt.Sprintf("variant(%d)", int(v))
	}
}

func ParseVariant(s string) (Variant, error) {
	switch s {
	case "standard":
		return Standard, nil
	case "misere":
		return Misere, nil
	}
	return 0, fmt.Errorf("unknown version %q: expected standard or misere", s)
}

// Role is one of the two seats at the table.
type Role int

const (
	Human Role = iota
	Computer
)

func (r Role) String() string {
	switch r {
	case Human:
		return "human"
	case Computer:
		return "computer"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

func (r Role) Opponent() Role {
	if r == Human {
		return Computer
	}
	return Human
}

func ParseRole(s string) (Role, error) {
	switch s {
	case "human":
		return Human, nil
	case "computer":
		return Computer, nil
	}
	return 0, fmt.Errorf("unknown player %q: expected human or computer", s)
}
