package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/rand"

	"github.com/rocketscienceinc/tictactoe-rl/internal/config"
	"github.com/rocketscienceinc/tictactoe-rl/internal/render"
	"github.com/rocketscienceinc/tictactoe-rl/internal/service"
	"github.com/rocketscienceinc/tictactoe-rl/internal/tictactoe"
)

// RunApp - builds the environment and the players, then plays the configured episodes.
func RunApp(logger *slog.Logger, conf *config.Config, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	env, err := tictactoe.New(conf.Board.Size, tictactoe.DefaultReward)
	if err != nil {
		return fmt.Errorf("could not create environment: %w", err)
	}

	seed := conf.Session.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	src := rand.NewSource(seed)

	playerOne, err := service.NewPlayer(conf.Session.PlayerOne, "player-one", src)
	if err != nil {
		return fmt.Errorf("could not create player one: %w", err)
	}

	playerTwo, err := service.NewPlayer(conf.Session.PlayerTwo, "player-two", src)
	if err != nil {
		return fmt.Errorf("could not create player two: %w", err)
	}

	session, err := service.NewSession(logger, env, playerOne, playerTwo)
	if err != nil {
		return fmt.Errorf("could not create session: %w", err)
	}

	var onEpisode func(*service.EpisodeResult)
	if conf.Render {
		onEpisode = func(episode *service.EpisodeResult) {
			fmt.Fprintf(out, "%s %s\n%s\n\n", episode.ID, episode.Outcome, render.Board(episode.Final, true))
		}
	}

	log.Info("Starting session", "board", conf.Board.Size, "episodes", conf.Session.Episodes, "seed", seed)

	stats, err := session.Run(ctx, conf.Session.Episodes, onEpisode)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("session failed: %w", err)
	}

	log.Info("Session finished",
		"played", stats.Played,
		"player_one_wins", stats.PlayerOneWins,
		"player_two_wins", stats.PlayerTwoWins,
		"draws", stats.Draws,
		"mean_length", stats.MeanLength,
		"mean_reward", stats.MeanReward,
	)

	return nil
}
