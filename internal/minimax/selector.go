package minimax

import (
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Candidate is one legal move with the minimax score of the resulting board.
type Candidate struct {
	Position int
	Score    int
}

// Rank scores every empty cell of board for mover, in row-major order.
func Rank(board entity.Board, mover entity.Cell) []Candidate {
	if !mover.IsPlayer() {
		return nil
	}

	// the mover's mark is already on the candidate board, so the opponent moves next.
	opponentMaximizes := mover == entity.PlayerX

	candidates := make([]Candidate, 0, entity.CellCount)
	for _, pos := range board.EmptyCells() {
		child := board
		child[pos] = mover

		candidates = append(candidates, Candidate{
			Position: pos,
			Score:    Score(child, 0, opponentMaximizes),
		})
	}

	return candidates
}

// BestMove returns the position that maximizes mover's outcome. Ties go to the
// first position in row-major order. It reports false when no cell is empty.
func BestMove(board entity.Board, mover entity.Cell) (int, bool) {
	best, bestValue := -1, minScore
	for _, candidate := range Rank(board, mover) {
		if value := valueFor(mover, candidate.Score); value > bestValue {
			best, bestValue = candidate.Position, value
		}
	}

	return best, best >= 0
}

// valueFor converts a score, which O maximizes, into mover's point of view.
func valueFor(mover entity.Cell, score int) int {
	if mover == entity.PlayerX {
		return -score
	}

	return score
}
