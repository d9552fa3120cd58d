package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-rl/internal/apperror"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads the YAML file", func(t *testing.T) {
		// Given: a config file overriding every section
		path := writeConfig(t, `
log-level: debug
board:
  size: 5
session:
  episodes: 12
  seed: 7
  player-one: first
  player-two: random
render: true
`)

		// When: it is loaded
		conf, err := Load(path)

		// Then: the values are taken from the file
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, 5, conf.Board.Size)
		assert.Equal(t, 12, conf.Session.Episodes)
		assert.Equal(t, uint64(7), conf.Session.Seed)
		assert.Equal(t, "first", conf.Session.PlayerOne)
		assert.Equal(t, "random", conf.Session.PlayerTwo)
		assert.True(t, conf.Render)
		require.NoError(t, conf.Validate())
	})

	t.Run("Fills defaults for missing keys", func(t *testing.T) {
		// Given: a config file with only the board size
		path := writeConfig(t, "board:\n  size: 4\n")

		// When: it is loaded
		conf, err := Load(path)

		// Then: the remaining values are defaults
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, 4, conf.Board.Size)
		assert.Equal(t, 100, conf.Session.Episodes)
		assert.Equal(t, "random", conf.Session.PlayerOne)
		assert.False(t, conf.Render)
	})

	t.Run("Environment only when no path is given", func(t *testing.T) {
		// Given: the board size is set through the environment
		t.Setenv("BOARD_SIZE", "6")

		// When: loading without a file
		conf, err := Load("")

		// Then: env and defaults are used
		require.NoError(t, err)
		assert.Equal(t, 6, conf.Board.Size)
		assert.Equal(t, 100, conf.Session.Episodes)
	})

	t.Run("Error on missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.Error(t, err)
	})

	t.Run("MustLoad panics on missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			LogLevel: "info",
			Board:    Board{Size: 3},
			Session:  Session{Episodes: 1, PlayerOne: "random", PlayerTwo: "first"},
		}
	}

	t.Run("Valid", func(t *testing.T) {
		require.NoError(t, valid().Validate())
	})

	t.Run("Non-positive board size", func(t *testing.T) {
		conf := valid()
		conf.Board.Size = 0

		require.ErrorIs(t, conf.Validate(), apperror.ErrInvalidBoardSize)
	})

	t.Run("Non-positive episodes", func(t *testing.T) {
		conf := valid()
		conf.Session.Episodes = -3

		require.ErrorIs(t, conf.Validate(), ErrInvalidEpisodes)
	})

	t.Run("Unknown player kind", func(t *testing.T) {
		conf := valid()
		conf.Session.PlayerTwo = "minimax"

		require.ErrorIs(t, conf.Validate(), apperror.ErrUnknownPlayerKind)
	})

	t.Run("Unknown log level", func(t *testing.T) {
		conf := valid()
		conf.LogLevel = "trace"

		require.ErrorIs(t, conf.Validate(), ErrUnknownLogLevel)
	})
}
