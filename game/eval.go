package game

// Score weighs the tokens still on the table.
func (s State) Score() int {
	return s.red*RedWeight + s.blue*BlueWeight
}

// Evaluate scores s for the searcher.
//
// Terminal states ignore perspective: the score is negated for standard and kept for
// misere. Non-terminal states are scored for the human seat, negated for anyone else.
// Both rules are fixed conventions that the computer's choices depend on.
func (s State) Evaluate(perspective Role) int {
	score := s.Score()

	if s.IsTerminal() {
		if s.variant == Standard {
			return -score
		}
		return score
	}

	if perspective == Human {
		return score
	}
	return -score
}
