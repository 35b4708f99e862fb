package history

import (
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// MoveHistory is the log of applied moves. The most recent move is undone first.
type MoveHistory struct {
	moves []entity.Move
}

func New() *MoveHistory {
	return &MoveHistory{}
}

func (that *MoveHistory) Record(position int, player entity.Cell) {
	that.moves = append(that.moves, entity.Move{Position: position, Player: player})
}

// Undo removes the most recent move and clears its cell on board.
// It reverts exactly one move; board is untouched when the history is empty.
func (that *MoveHistory) Undo(board *entity.Board) (entity.Move, error) {
	last, ok := that.Last()
	if !ok {
		return entity.Move{}, apperror.ErrEmptyHistory
	}

	if err := board.Set(last.Position, entity.EmptyCell); err != nil {
		return entity.Move{}, err
	}

	that.moves = that.moves[:len(that.moves)-1]

	return last, nil
}

func (that *MoveHistory) Last() (entity.Move, bool) {
	if len(that.moves) == 0 {
		return entity.Move{}, false
	}

	return that.moves[len(that.moves)-1], true
}

func (that *MoveHistory) Len() int {
	return len(that.moves)
}

// Moves returns a copy of the log, most recent first.
func (that *MoveHistory) Moves() []entity.Move {
	moves := make([]entity.Move, len(that.moves))
	for i, move := range that.moves {
		moves[len(that.moves)-1-i] = move
	}

	return moves
}
