package strategy

import (
	"context"

	"github.com/gridrow/tictactoe/internal/game"
)

// Strategy selects moves for one side of the board. A strategy keeps its
// mark for the whole game and owns no board state; the board passed to
// NextMove must be unchanged when NextMove returns.
type Strategy interface {
	Name() string
	Mark() game.Mark
	NextMove(ctx context.Context, board *game.Board) (int, error)
}
