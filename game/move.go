package game

import "fmt"

// Move removes Amount tokens from a single pile.
type Move struct {
	Pile   Pile
	Amount int
}

func (m Move) String() string {
	return fmt.Sprintf("(%s, %d)", m.Pile, m.Amount)
}
