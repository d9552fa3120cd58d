package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-rl/internal/tictactoe"
)

const maxWaitDuration = 30 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
	}
}

// Environment returns a fresh n×n environment, failing the test if it cannot be built.
func (that *Suite) Environment(n int, reward tictactoe.RewardFunc) *tictactoe.Environment {
	that.Helper()

	if reward == nil {
		reward = tictactoe.DefaultReward
	}

	env, err := tictactoe.New(n, reward)
	if err != nil {
		that.Fatalf("could not create environment: %v", err)
	}

	return env
}
