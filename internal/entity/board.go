package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

var ErrMalformedBoard = errors.New("malformed board")

const (
	Side      = 3
	CellCount = Side * Side
)

// Cell is the mark held by a single square of the board.
type Cell uint8

const (
	EmptyCell Cell = iota
	PlayerX        // human, moves first by convention
	PlayerO        // computer
)

func (that Cell) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return "*"
	}
}

// Opponent returns the other player. EmptyCell has no opponent.
func (that Cell) Opponent() Cell {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

func (that Cell) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is the 3x3 grid in row-major order, position = row*3+col.
// It is a value type: assigning a Board copies every cell.
type Board [CellCount]Cell

func ValidPosition(pos int) bool {
	return pos >= 0 && pos < CellCount
}

func (that Board) Get(pos int) (Cell, error) {
	if !ValidPosition(pos) {
		return EmptyCell, fmt.Errorf("%w: %d", apperror.ErrInvalidPosition, pos)
	}

	return that[pos], nil
}

// Set writes mark into pos. Whether the cell was empty is the caller's concern.
func (that *Board) Set(pos int, mark Cell) error {
	if !ValidPosition(pos) {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidPosition, pos)
	}

	that[pos] = mark

	return nil
}

func (that Board) Clone() Board {
	return that
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// HasWon reports whether player holds all three cells of any row, column or diagonal.
func (that Board) HasWon(player Cell) bool {
	if !player.IsPlayer() {
		return false
	}

	for _, combo := range WinCombos {
		if that[combo[0]] == player && that[combo[1]] == player && that[combo[2]] == player {
			return true
		}
	}

	return false
}

// EmptyCells lists the empty positions in row-major order.
func (that Board) EmptyCells() []int {
	cells := make([]int, 0, CellCount)
	for pos, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, pos)
		}
	}

	return cells
}

func (that Board) Count(mark Cell) int {
	n := 0
	for _, cell := range that {
		if cell == mark {
			n++
		}
	}

	return n
}

// String renders the board as three rows of marks, e.g. "XO*/*X*/**O".
func (that Board) String() string {
	var sb strings.Builder
	for pos, cell := range that {
		if pos > 0 && pos%Side == 0 {
			sb.WriteByte('/')
		}
		sb.WriteString(cell.String())
	}

	return sb.String()
}

// ParseBoard reads nine marks ('X', 'O' and '*' or '.' for empty) in row-major order.
// Whitespace and '/' separators are ignored.
func ParseBoard(raw string) (Board, error) {
	var board Board

	pos := 0
	for _, r := range raw {
		var cell Cell

		switch r {
		case ' ', '\t', '\n', '/':
			continue
		case 'X', 'x':
			cell = PlayerX
		case 'O', 'o':
			cell = PlayerO
		case '*', '.':
			cell = EmptyCell
		default:
			return Board{}, fmt.Errorf("%w: unexpected mark %q", ErrMalformedBoard, r)
		}

		if pos >= CellCount {
			return Board{}, fmt.Errorf("%w: more than %d cells", ErrMalformedBoard, CellCount)
		}

		board[pos] = cell
		pos++
	}

	if pos != CellCount {
		return Board{}, fmt.Errorf("%w: got %d cells, want %d", ErrMalformedBoard, pos, CellCount)
	}

	return board, nil
}

func MustParseBoard(raw string) Board {
	board, err := ParseBoard(raw)
	if err != nil {
		panic(err)
	}

	return board
}
