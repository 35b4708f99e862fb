// Package minimax scores tic-tac-toe positions by exhaustive search and picks
// the best immediate move for either player.
//
// O is the maximizing side: a win for O scores 10-depth, a win for X scores
// depth-10 and a draw scores 0, so faster wins and slower losses are preferred.
package minimax

import (
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	winScore = 10

	// bounds that no reachable score can meet.
	minScore = -1000
	maxScore = 1000
)

// Score returns the value of board with O to move when maximizing is true and X
// to move otherwise. The board is passed by value, so every branch explores its
// own copy and the caller's board is never modified.
func Score(board entity.Board, depth int, maximizing bool) int {
	if board.HasWon(entity.PlayerO) {
		return winScore - depth
	}

	if board.HasWon(entity.PlayerX) {
		return depth - winScore
	}

	if board.IsFull() {
		return 0
	}

	if maximizing {
		best := minScore
		for pos, cell := range board {
			if cell != entity.EmptyCell {
				continue
			}

			child := board
			child[pos] = entity.PlayerO
			best = max(best, Score(child, depth+1, false))
		}

		return best
	}

	best := maxScore
	for pos, cell := range board {
		if cell != entity.EmptyCell {
			continue
		}

		child := board
		child[pos] = entity.PlayerX
		best = min(best, Score(child, depth+1, true))
	}

	return best
}
