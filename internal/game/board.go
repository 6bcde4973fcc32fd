package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gridrow/tictactoe/internal/apperror"
)

var ErrMalformedBoard = errors.New("malformed board form")

// Mark is the content of a single cell.
type Mark string

const (
	MarkX     Mark = "X"
	MarkO     Mark = "O"
	MarkEmpty Mark = ""
)

// BoardSize is the number of cells on the board.
const BoardSize = 9

// WinLines - the 8 winning index triples: rows, then columns, then diagonals.
// The scan order is canonical; the first satisfied line decides the winner.
var WinLines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is the 3x3 grid in row-major order, index = row*3 + col.
// Cells are indexed directly only by the search layer; normal gameplay
// goes through Place.
type Board [BoardSize]Mark

func NewBoard() *Board {
	return &Board{}
}

// AvailableMoves - returns the empty cell indices in ascending order.
func (that *Board) AvailableMoves() []int {
	moves := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == MarkEmpty {
			moves = append(moves, i)
		}
	}

	return moves
}

// Place - puts mark on the given cell. The board is not mutated on error.
// Turn order is the caller's responsibility.
func (that *Board) Place(mark Mark, cell int) error {
	if cell < 0 || cell >= BoardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that[cell] != MarkEmpty {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	that[cell] = mark

	return nil
}

func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == MarkEmpty {
			return false
		}
	}

	return true
}

// Winner - scans the winning lines and reports the mark holding one, if any.
func (that *Board) Winner() (Mark, bool) {
	for _, line := range WinLines {
		a, b, c := that[line[0]], that[line[1]], that[line[2]]
		if a != MarkEmpty && a == b && b == c {
			return a, true
		}
	}

	return MarkEmpty, false
}

// Opponent - returns the other playing mark.
func Opponent(mark Mark) Mark {
	if mark == MarkX {
		return MarkO
	}

	return MarkX
}

// String - renders the board as a compact 9-char form, '-' for empty cells.
func (that *Board) String() string {
	var builder strings.Builder
	builder.Grow(BoardSize)
	for _, cell := range that {
		if cell == MarkEmpty {
			builder.WriteByte('-')
			continue
		}
		builder.WriteString(string(cell))
	}

	return builder.String()
}

// ParseBoard - builds a board from the compact form produced by String.
func ParseBoard(s string) (*Board, error) {
	if len(s) != BoardSize {
		return nil, fmt.Errorf("%w: want %d chars, got %d", ErrMalformedBoard, BoardSize, len(s))
	}

	board := NewBoard()
	for i := 0; i < BoardSize; i++ {
		switch s[i] {
		case 'X':
			board[i] = MarkX
		case 'O':
			board[i] = MarkO
		case '-':
			board[i] = MarkEmpty
		default:
			return nil, fmt.Errorf("%w: unknown mark %q at cell %d", ErrMalformedBoard, s[i], i)
		}
	}

	return board, nil
}
