package entity

// Outcome classifies a board. It is always derived, never stored.
type Outcome uint8

const (
	Ongoing Outcome = iota
	XWins
	OWins
	Draw
)

func (that Outcome) String() string {
	switch that {
	case XWins:
		return "X wins"
	case OWins:
		return "O wins"
	case Draw:
		return "draw"
	default:
		return "ongoing"
	}
}

func (that Outcome) IsTerminal() bool {
	return that != Ongoing
}

// Winner returns the winning mark, or EmptyCell for a draw or an ongoing game.
func (that Outcome) Winner() Cell {
	switch that {
	case XWins:
		return PlayerX
	case OWins:
		return PlayerO
	default:
		return EmptyCell
	}
}

// Evaluate classifies board. O's win is checked first.
func Evaluate(board Board) Outcome {
	switch {
	case board.HasWon(PlayerO):
		return OWins
	case board.HasWon(PlayerX):
		return XWins
	case board.IsFull():
		return Draw
	default:
		return Ongoing
	}
}
