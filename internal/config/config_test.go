package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestMustLoad(t *testing.T) {
	t.Run("Loads a full config file", func(t *testing.T) {
		// Given: a config file with two players
		path := writeConfig(t, `
log-level: debug
max-rejections: 5
players:
  - name: Alice
    kind: human
  - name: Bot
    kind: minimax
`)

		// When: the config is loaded
		conf := MustLoad(path)

		// Then: every field comes from the file
		require.Equal(t, "debug", conf.LogLevel)
		require.Equal(t, 5, conf.MaxRejections)
		require.Equal(t, []Player{
			{Name: "Alice", Kind: KindHuman},
			{Name: "Bot", Kind: KindMinimax},
		}, conf.Players)
	})

	t.Run("Missing file falls back to defaults", func(t *testing.T) {
		// When: the config path does not exist
		conf := MustLoad(filepath.Join(t.TempDir(), "no-such-config.yml"))

		// Then: the defaults are used and they validate
		require.Equal(t, "info", conf.LogLevel)
		require.Equal(t, 3, conf.MaxRejections)
		require.Len(t, conf.Players, 2)
	})

	t.Run("Panics on an unknown player kind", func(t *testing.T) {
		// Given: a config with a kind outside the fixed set
		path := writeConfig(t, `
players:
  - name: Alice
    kind: human
  - name: Bot
    kind: alphabeta
`)

		// Then: loading panics on validation
		require.Panics(t, func() {
			MustLoad(path)
		})
	})

	t.Run("Panics when not exactly two players", func(t *testing.T) {
		// Given: a config with a single player
		path := writeConfig(t, `
players:
  - name: Alice
    kind: human
`)

		// Then: loading panics on validation
		require.Panics(t, func() {
			MustLoad(path)
		})
	})

	t.Run("Panics on a non-positive rejection limit", func(t *testing.T) {
		// Given: a negative retry bound
		path := writeConfig(t, `
max-rejections: -1
players:
  - name: Alice
    kind: random
  - name: Bot
    kind: minimax
`)

		// Then: loading panics on validation
		require.Panics(t, func() {
			MustLoad(path)
		})
	})
}
