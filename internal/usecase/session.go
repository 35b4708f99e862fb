package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/history"
	"github.com/rocketscienceinc/tictactoe-engine/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type State uint8

const (
	AwaitingPlayerX State = iota
	AwaitingPlayerO
	Finished
)

func (that State) String() string {
	switch that {
	case AwaitingPlayerX:
		return "awaiting X"
	case AwaitingPlayerO:
		return "awaiting O"
	default:
		return "finished"
	}
}

// Session is one game between the human (X) and the computer (O).
type Session struct {
	id     string
	logger *slog.Logger

	undoPolicy string

	board   entity.Board
	history *history.MoveHistory
	state   State
}

func NewSession(logger *slog.Logger, conf *config.Config) *Session {
	id := uuid.NewString()

	state := AwaitingPlayerX
	if conf.ComputerFirst() {
		state = AwaitingPlayerO
	}

	return &Session{
		id:         id,
		logger:     logger.With("component", "session", "session_id", id),
		undoPolicy: conf.UndoPolicy,
		history:    history.New(),
		state:      state,
	}
}

func (that *Session) ID() string {
	return that.id
}

// Board returns a copy of the current board.
func (that *Session) Board() entity.Board {
	return that.board
}

func (that *Session) State() State {
	return that.state
}

func (that *Session) Outcome() entity.Outcome {
	return entity.Evaluate(that.board)
}

// History returns the applied moves, most recent first.
func (that *Session) History() []entity.Move {
	return that.history.Moves()
}

// PlayHuman applies X's move at position.
func (that *Session) PlayHuman(position int) error {
	if err := that.expect(AwaitingPlayerX); err != nil {
		return err
	}

	if err := that.play(position, entity.PlayerX); err != nil {
		return fmt.Errorf("failed to play human move: %w", err)
	}

	return nil
}

// PlayComputer picks and applies O's move and returns its position.
func (that *Session) PlayComputer() (int, error) {
	log := that.logger.With("method", "PlayComputer")

	if err := that.expect(AwaitingPlayerO); err != nil {
		return -1, err
	}

	if log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("ranked candidates", "board", that.board.String(), "candidates", minimax.Rank(that.board, entity.PlayerO))
	}

	position, ok := minimax.BestMove(that.board, entity.PlayerO)
	if !ok {
		that.state = Finished
		return -1, apperror.ErrNoMovesLeft
	}

	if err := that.play(position, entity.PlayerO); err != nil {
		return -1, fmt.Errorf("failed to play computer move: %w", err)
	}

	return position, nil
}

// Undo reverts the last move, or the last human/computer round under the round
// policy, and hands the turn back to X. Only an empty history on the first step
// is reported as an error.
func (that *Session) Undo() ([]entity.Move, error) {
	log := that.logger.With("method", "Undo")

	steps := 1
	if that.undoPolicy == config.UndoPolicyRound {
		steps = 2
	}

	reverted := make([]entity.Move, 0, steps)
	for range steps {
		move, err := that.history.Undo(&that.board)
		if errors.Is(err, apperror.ErrEmptyHistory) {
			break
		}

		if err != nil {
			return reverted, fmt.Errorf("failed to undo move: %w", err)
		}

		reverted = append(reverted, move)
	}

	if len(reverted) == 0 {
		log.Info("nothing to undo")
		return nil, apperror.ErrEmptyHistory
	}

	that.state = AwaitingPlayerX
	log.Info("moves undone", "moves", reverted, "remaining", that.history.Len())

	return reverted, nil
}

func (that *Session) expect(state State) error {
	switch {
	case that.state == Finished:
		return apperror.ErrGameFinished
	case that.state != state:
		return apperror.ErrNotYourTurn
	default:
		return nil
	}
}

func (that *Session) play(position int, player entity.Cell) error {
	if err := tictactoe.ApplyMove(&that.board, position, player); err != nil {
		return err
	}

	that.history.Record(position, player)

	outcome := entity.Evaluate(that.board)
	switch {
	case outcome.IsTerminal():
		that.state = Finished
		that.logger.Info("game finished", "outcome", outcome.String(), "board", that.board.String())
	case player == entity.PlayerX:
		that.state = AwaitingPlayerO
	default:
		that.state = AwaitingPlayerX
	}

	that.logger.Debug("move applied", "move", entity.Move{Position: position, Player: player}.String(), "board", that.board.String())

	return nil
}
