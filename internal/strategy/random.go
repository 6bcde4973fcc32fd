package strategy

import (
	"context"
	"math/rand"

	"github.com/gridrow/tictactoe/internal/apperror"
	"github.com/gridrow/tictactoe/internal/game"
)

// Random picks uniformly among the available cells.
type Random struct {
	name string
	mark game.Mark
	rng  *rand.Rand
}

func NewRandom(name string, mark game.Mark, rng *rand.Rand) *Random {
	return &Random{
		name: name,
		mark: mark,
		rng:  rng,
	}
}

func (that *Random) Name() string {
	return that.name
}

func (that *Random) Mark() game.Mark {
	return that.mark
}

func (that *Random) NextMove(_ context.Context, board *game.Board) (int, error) {
	available := board.AvailableMoves()
	if len(available) == 0 {
		return 0, apperror.ErrNoAvailableMoves
	}

	return available[that.rng.Intn(len(available))], nil
}
