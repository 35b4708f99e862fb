package apperror

import "errors"

var (
	ErrInvalidPosition = errors.New("invalid cell position")
	ErrInvalidPlayer   = errors.New("invalid player mark")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrEmptyHistory    = errors.New("no moves to undo")
	ErrGameFinished    = errors.New("game is already finished")
	ErrNotYourTurn     = errors.New("it's not your turn")
	ErrNoMovesLeft     = errors.New("no moves left")
)
