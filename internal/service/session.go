package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"

	"github.com/rocketscienceinc/tictactoe-rl/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rl/internal/entity"
	"github.com/rocketscienceinc/tictactoe-rl/internal/tictactoe"
)

type Session interface {
	PlayEpisode(ctx context.Context) (*EpisodeResult, error)
	Run(ctx context.Context, episodes int, onEpisode func(*EpisodeResult)) (*Stats, error)
}

type environment interface {
	Reset() entity.BoardState
	Step(action entity.Action) (entity.StepResult, error)
	ActionMask() []bool
	CurrentPlayer() entity.Mark
}

// EpisodeResult describes one finished game.
type EpisodeResult struct {
	ID        string
	Outcome   tictactoe.Outcome
	Moves     int
	RewardOne float64
	RewardTwo float64
	Final     entity.BoardState
}

// Stats aggregates the results of several episodes.
type Stats struct {
	Played        int
	PlayerOneWins int
	PlayerTwoWins int
	Draws         int
	MeanLength    float64
	MeanReward    float64
}

type session struct {
	logger *slog.Logger

	env     environment
	players map[entity.Mark]Player
}

func NewSession(logger *slog.Logger, env environment, playerOne, playerTwo Player) (Session, error) {
	if playerOne == nil || playerTwo == nil {
		return nil, apperror.ErrNilPlayer
	}

	return &session{
		logger: logger.With("component", "session"),
		env:    env,
		players: map[entity.Mark]Player{
			entity.PlayerOne: playerOne,
			entity.PlayerTwo: playerTwo,
		},
	}, nil
}

// PlayEpisode resets the environment and alternates players until the step result is done.
func (that *session) PlayEpisode(ctx context.Context) (*EpisodeResult, error) {
	episode := &EpisodeResult{ID: uuid.NewString()}
	log := that.logger.With("method", "PlayEpisode", "episodeID", episode.ID)

	state := that.env.Reset()
	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("episode interrupted: %w", err)
		}

		mover := that.env.CurrentPlayer()
		player := that.players[mover]

		action, err := player.SelectAction(state, that.env.ActionMask())
		if err != nil {
			return nil, fmt.Errorf("player %s failed to select action: %w", player.Name(), err)
		}

		result, err := that.env.Step(action)
		if err != nil {
			return nil, fmt.Errorf("player %s failed to make turn: %w", player.Name(), err)
		}

		episode.Moves++
		if mover == entity.PlayerOne {
			episode.RewardOne += result.Reward
		} else {
			episode.RewardTwo += result.Reward
		}

		log.Debug("turn", "player", player.Name(), "mark", mover.String(), "cell", action.Index, "reward", result.Reward)

		state = result.NextState
		if result.Done {
			break
		}
	}

	episode.Final = state
	episode.Outcome = tictactoe.GetOutcome(state)

	log.Info("episode finished", "outcome", episode.Outcome.String(), "moves", episode.Moves)

	return episode, nil
}

// Run plays up to episodes games. A cancelled context stops it between episodes
// and the statistics gathered so far are returned.
func (that *session) Run(ctx context.Context, episodes int, onEpisode func(*EpisodeResult)) (*Stats, error) {
	log := that.logger.With("method", "Run")

	stats := &Stats{}
	lengths := make([]float64, 0, episodes)
	rewards := make([]float64, 0, episodes)

	for i := 0; i < episodes; i++ {
		if ctx.Err() != nil {
			log.Info("run stopped", "played", stats.Played, "requested", episodes)
			break
		}

		episode, err := that.PlayEpisode(ctx)
		if err != nil {
			stats.summarize(lengths, rewards)
			return stats, fmt.Errorf("episode %d: %w", i, err)
		}

		stats.record(episode)
		lengths = append(lengths, float64(episode.Moves))
		rewards = append(rewards, episode.RewardOne+episode.RewardTwo)

		if onEpisode != nil {
			onEpisode(episode)
		}
	}

	stats.summarize(lengths, rewards)

	return stats, nil
}

func (that *Stats) record(episode *EpisodeResult) {
	that.Played++

	switch episode.Outcome {
	case tictactoe.PlayerOneWins:
		that.PlayerOneWins++
	case tictactoe.PlayerTwoWins:
		that.PlayerTwoWins++
	case tictactoe.Draw:
		that.Draws++
	}
}

func (that *Stats) summarize(lengths, rewards []float64) {
	if len(lengths) == 0 {
		return
	}

	that.MeanLength = stat.Mean(lengths, nil)
	that.MeanReward = stat.Mean(rewards, nil)
}
