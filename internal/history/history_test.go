package history

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveHistory_UndoRoundTrip(t *testing.T) {
	// Given: an empty board and history
	var board entity.Board
	h := New()

	// When: X plays the center and the move is recorded
	require.NoError(t, tictactoe.ApplyMove(&board, 4, entity.PlayerX))
	h.Record(4, entity.PlayerX)

	// When: the move is undone
	move, err := h.Undo(&board)

	// Then: the board is empty again and so is the history
	require.NoError(t, err)
	assert.Equal(t, entity.Move{Position: 4, Player: entity.PlayerX}, move)
	assert.Equal(t, entity.Board{}, board)
	assert.Zero(t, h.Len())

	// When: undoing once more
	_, err = h.Undo(&board)

	// Then: ErrEmptyHistory is returned and the board is unchanged
	require.ErrorIs(t, err, apperror.ErrEmptyHistory)
	assert.Equal(t, entity.Board{}, board)
}

func TestMoveHistory_UndoIsSingleStep(t *testing.T) {
	// Given: a human move answered by the computer
	board := entity.MustParseBoard("X** *O* ***")
	h := New()
	h.Record(0, entity.PlayerX)
	h.Record(4, entity.PlayerO)

	// When: undo is called once
	move, err := h.Undo(&board)
	require.NoError(t, err)

	// Then: only the computer's move is reverted
	assert.Equal(t, entity.Move{Position: 4, Player: entity.PlayerO}, move)
	assert.Equal(t, entity.MustParseBoard("X** *** ***"), board)
	assert.Equal(t, 1, h.Len())

	last, ok := h.Last()
	require.True(t, ok)
	assert.Equal(t, entity.Move{Position: 0, Player: entity.PlayerX}, last)
}

func TestMoveHistory_Moves(t *testing.T) {
	h := New()
	h.Record(0, entity.PlayerX)
	h.Record(4, entity.PlayerO)
	h.Record(8, entity.PlayerX)

	moves := h.Moves()

	assert.Equal(t, []entity.Move{
		{Position: 8, Player: entity.PlayerX},
		{Position: 4, Player: entity.PlayerO},
		{Position: 0, Player: entity.PlayerX},
	}, moves)

	// mutating the copy does not touch the log
	moves[0].Position = 1
	last, _ := h.Last()
	assert.Equal(t, 8, last.Position)
}

func TestMoveHistory_UndoRejectsCorruptRecord(t *testing.T) {
	// Given: a record outside the board
	board := entity.MustParseBoard("X** *** ***")
	h := New()
	h.Record(12, entity.PlayerX)

	// When: undoing it
	_, err := h.Undo(&board)

	// Then: the error is reported and nothing changes
	require.ErrorIs(t, err, apperror.ErrInvalidPosition)
	assert.Equal(t, 1, h.Len())
	assert.Equal(t, entity.MustParseBoard("X** *** ***"), board)
}
