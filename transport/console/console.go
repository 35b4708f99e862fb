package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

const undoCommand = 0

type Console struct {
	logger  *slog.Logger
	session *usecase.Session

	in  *bufio.Scanner
	out io.Writer
}

func New(logger *slog.Logger, session *usecase.Session, in io.Reader, out io.Writer) *Console {
	return &Console{
		logger:  logger.With("component", "console", "session_id", session.ID()),
		session: session,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run plays the session until it finishes, the input ends or ctx is canceled.
func (that *Console) Run(ctx context.Context) error {
	that.printf("***************************************************\n")
	that.printf("         WELCOME TO Tic-Tac-Toe Game             \n")
	that.printf("***************************************************\n")

	for ctx.Err() == nil {
		that.printBoard()

		switch that.session.State() {
		case usecase.Finished:
			that.announce(that.session.Outcome())
			return nil
		case usecase.AwaitingPlayerO:
			if err := that.computerTurn(); err != nil {
				return err
			}
		case usecase.AwaitingPlayerX:
			done, err := that.humanTurn()
			if err != nil || done {
				return err
			}
		}
	}

	return nil
}

func (that *Console) computerTurn() error {
	pos, err := that.session.PlayComputer()
	if errors.Is(err, apperror.ErrNoMovesLeft) {
		that.printf("No moves left!\n")
		return nil
	}

	if err != nil {
		return fmt.Errorf("computer turn failed: %w", err)
	}

	that.printf("Computer placed at position %d\n", pos+1)

	return nil
}

// humanTurn reads one command. It reports done when the input is exhausted.
func (that *Console) humanTurn() (bool, error) {
	log := that.logger.With("method", "humanTurn")

	that.printf("Enter your move (1-9) or 0 to undo last move: ")

	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			return true, fmt.Errorf("failed to read input: %w", err)
		}
		return true, nil
	}

	move, err := strconv.Atoi(strings.TrimSpace(that.in.Text()))
	if err != nil {
		that.printf("Invalid move!\n")
		return false, nil
	}

	if move == undoCommand {
		if _, err = that.session.Undo(); errors.Is(err, apperror.ErrEmptyHistory) {
			that.printf("No moves to undo!\n")
		}
		return false, nil
	}

	err = that.session.PlayHuman(move - 1)
	switch {
	case errors.Is(err, apperror.ErrInvalidPosition):
		that.printf("Invalid move!\n")
	case errors.Is(err, apperror.ErrCellOccupied):
		that.printf("Cell occupied!\n")
	case err != nil:
		log.Error("unexpected move error", "error", err)
		return true, fmt.Errorf("human turn failed: %w", err)
	}

	return false, nil
}

func (that *Console) announce(outcome entity.Outcome) {
	switch outcome {
	case entity.XWins:
		that.printf("You won!\n")
	case entity.OWins:
		that.printf("Computer won!\n")
	case entity.Draw:
		that.printf("It's a draw!\n")
	}
}

func (that *Console) printBoard() {
	board := that.session.Board()

	that.printf("\n")
	for row := 0; row < entity.Side; row++ {
		for col := 0; col < entity.Side; col++ {
			that.printf(" %s", board[row*entity.Side+col])
			if col < entity.Side-1 {
				that.printf(" |")
			}
		}
		that.printf("\n")
		if row < entity.Side-1 {
			that.printf("---|---|---\n")
		}
	}
	that.printf("\n")
}

func (that *Console) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
