package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gridrow/tictactoe/internal/config"
	"github.com/gridrow/tictactoe/internal/console"
	"github.com/gridrow/tictactoe/internal/engine"
	"github.com/gridrow/tictactoe/internal/game"
	"github.com/gridrow/tictactoe/internal/strategy"
)

var ErrUnknownStrategyKind = errors.New("unknown strategy kind")

// RunApp - wires the configured players into an engine and plays one game.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	reader := console.NewReader(os.Stdin, os.Stdout)
	renderer := console.NewRenderer(os.Stdout)
	rng := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint: gosec // not used for anything secret

	marks := [2]game.Mark{game.MarkX, game.MarkO}
	strategies := make([]strategy.Strategy, 0, len(conf.Players))
	for i, player := range conf.Players {
		built, err := buildStrategy(player, marks[i], reader, rng)
		if err != nil {
			return fmt.Errorf("could not build player %q: %w", player.Name, err)
		}

		strategies = append(strategies, built)
	}

	gameEngine := engine.New(logger, strategies[0], strategies[1], renderer, conf.MaxRejections)

	result, err := gameEngine.Run(ctx)
	if err != nil {
		return fmt.Errorf("game aborted: %w", err)
	}

	renderer.RenderResult(result, gameEngine.WinnerName(result))

	return nil
}

func buildStrategy(player config.Player, mark game.Mark, reader *console.Reader, rng *rand.Rand) (strategy.Strategy, error) {
	switch player.Kind {
	case config.KindHuman:
		return strategy.NewHuman(player.Name, mark, reader), nil
	case config.KindRandom:
		return strategy.NewRandom(player.Name, mark, rng), nil
	case config.KindMinimax:
		return strategy.NewMinimax(player.Name, mark), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategyKind, player.Kind)
	}
}
