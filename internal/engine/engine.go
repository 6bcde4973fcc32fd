package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gridrow/tictactoe/internal/game"
	"github.com/gridrow/tictactoe/internal/strategy"
)

var (
	ErrStrategyFailed    = errors.New("strategy failed to produce a move")
	ErrTooManyRejections = errors.New("strategy exceeded the rejected-move limit")
)

// renderer is the display collaborator; console.Renderer satisfies it.
type renderer interface {
	Render(board *game.Board)
}

// Engine runs one game between two strategies. The first strategy moves
// first. A rejected move does not advance the board; after maxRejections
// consecutive rejections the offending strategy is treated as failed and
// the game aborts without a result.
type Engine struct {
	logger *slog.Logger

	board         *game.Board
	strategies    [2]strategy.Strategy
	renderer      renderer
	maxRejections int
}

func New(logger *slog.Logger, first, second strategy.Strategy, renderer renderer, maxRejections int) *Engine {
	gameID := uuid.NewString()

	return &Engine{
		logger:        logger.With("component", "engine", "game_id", gameID),
		board:         game.NewBoard(),
		strategies:    [2]strategy.Strategy{first, second},
		renderer:      renderer,
		maxRejections: maxRejections,
	}
}

// Run - alternates turns until the board is terminal. The returned
// result is meaningful only when the error is nil.
func (that *Engine) Run(ctx context.Context) (game.Result, error) {
	var rejections [2]int
	active := 0

	that.logger.Info("game started",
		"x", that.strategies[0].Name(),
		"o", that.strategies[1].Name(),
	)

	for {
		if err := ctx.Err(); err != nil {
			return game.Result{}, fmt.Errorf("game canceled: %w", err)
		}

		current := that.strategies[active]
		that.renderer.Render(that.board)

		cell, err := current.NextMove(ctx, that.board)
		if err != nil {
			that.logger.Error("strategy failed", "player", current.Name(), "error", err)
			return game.Result{}, fmt.Errorf("%w: %s: %w", ErrStrategyFailed, current.Name(), err)
		}

		if err = that.board.Place(current.Mark(), cell); err != nil {
			rejections[active]++
			that.logger.Warn("move rejected",
				"player", current.Name(),
				"cell", cell,
				"attempt", rejections[active],
				"error", err,
			)

			if rejections[active] >= that.maxRejections {
				return game.Result{}, fmt.Errorf("%w: %s", ErrTooManyRejections, current.Name())
			}

			// The board did not advance; the same strategy moves again.
			continue
		}

		rejections[active] = 0
		that.logger.Info("move placed",
			"player", current.Name(),
			"mark", current.Mark(),
			"cell", cell,
			"board", that.board.String(),
		)

		if result := that.board.Result(); result.IsTerminal() {
			that.renderer.Render(that.board)
			that.logger.Info("game finished", "state", result.State, "winner", result.Winner)

			return result, nil
		}

		active = 1 - active
	}
}

// WinnerName - resolves a won result to the owning strategy's name.
func (that *Engine) WinnerName(result game.Result) string {
	for _, s := range that.strategies {
		if s.Mark() == result.Winner {
			return s.Name()
		}
	}

	return ""
}
