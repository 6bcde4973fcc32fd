package application

import (
	"math/rand"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gridrow/tictactoe/internal/config"
	"github.com/gridrow/tictactoe/internal/console"
	"github.com/gridrow/tictactoe/internal/game"
)

func TestBuildStrategy(t *testing.T) {
	reader := console.NewReader(os.Stdin, os.Stdout)
	rng := rand.New(rand.NewSource(1))

	t.Run("Builds every known kind", func(t *testing.T) {
		for _, kind := range []string{config.KindHuman, config.KindRandom, config.KindMinimax} {
			built, err := buildStrategy(config.Player{Name: "p", Kind: kind}, game.MarkX, reader, rng)

			require.NoError(t, err)
			require.Equal(t, "p", built.Name())
			require.Equal(t, game.MarkX, built.Mark())
		}
	})

	t.Run("Error on unknown kind", func(t *testing.T) {
		_, err := buildStrategy(config.Player{Name: "p", Kind: "alphabeta"}, game.MarkO, reader, rng)

		require.ErrorIs(t, err, ErrUnknownStrategyKind)
	})
}
