package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// ApplyMove places player's mark on board after validating the move.
func ApplyMove(board *entity.Board, position int, player entity.Cell) error {
	if err := validateMove(*board, position, player); err != nil {
		return fmt.Errorf("invalid move: %w", err)
	}

	board[position] = player

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(board entity.Board, position int, player entity.Cell) error {
	if !entity.ValidPosition(position) {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidPosition, position)
	}

	if !player.IsPlayer() {
		return apperror.ErrInvalidPlayer
	}

	if board[position] != entity.EmptyCell {
		return fmt.Errorf("%w: %d", apperror.ErrCellOccupied, position)
	}

	return nil
}
