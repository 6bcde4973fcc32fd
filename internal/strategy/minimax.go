package strategy

import (
	"context"
	"math"

	"github.com/gridrow/tictactoe/internal/apperror"
	"github.com/gridrow/tictactoe/internal/game"
)

const (
	winScore  = 10
	lossScore = -10
	drawScore = 0

	centerCell = 4
)

// Minimax plays the move that maximizes its worst-case outcome under
// exhaustive adversarial search. Wins and losses score the same magnitude
// at any depth, so the strategy is indifferent among winning lines of
// different speeds.
type Minimax struct {
	name string
	mark game.Mark
}

func NewMinimax(name string, mark game.Mark) *Minimax {
	return &Minimax{
		name: name,
		mark: mark,
	}
}

func (that *Minimax) Name() string {
	return that.name
}

func (that *Minimax) Mark() game.Mark {
	return that.mark
}

// NextMove - returns an optimal cell for a non-terminal board. Candidates
// are tried in ascending cell order with a strict improvement check, so
// ties keep the lowest cell. Every tentative placement is undone before
// the next candidate; the board is unchanged when NextMove returns.
func (that *Minimax) NextMove(_ context.Context, board *game.Board) (int, error) {
	available := board.AvailableMoves()
	if len(available) == 0 {
		return 0, apperror.ErrNoAvailableMoves
	}

	// An empty board carries no information worth searching: the center
	// is optimal by symmetry.
	if len(available) == game.BoardSize {
		return centerCell, nil
	}

	bestScore := math.MinInt
	bestCell := available[0]

	for _, cell := range available {
		board[cell] = that.mark
		score := that.search(board, false)
		board[cell] = game.MarkEmpty

		if score > bestScore {
			bestScore = score
			bestCell = cell
		}
	}

	return bestCell, nil
}

// search - evaluates the position for that.mark. On the maximizing layer
// the strategy's own mark is to move, on the minimizing layer the
// opponent's.
func (that *Minimax) search(board *game.Board, maximizing bool) int {
	result := board.Result()
	switch {
	case result.State == game.StateWon && result.Winner == that.mark:
		return winScore
	case result.State == game.StateWon:
		return lossScore
	case result.State == game.StateDraw:
		return drawScore
	}

	mark := that.mark
	best := math.MinInt
	if !maximizing {
		mark = game.Opponent(that.mark)
		best = math.MaxInt
	}

	for _, cell := range board.AvailableMoves() {
		board[cell] = mark
		score := that.search(board, !maximizing)
		board[cell] = game.MarkEmpty

		if maximizing && score > best || !maximizing && score < best {
			best = score
		}
	}

	return best
}
