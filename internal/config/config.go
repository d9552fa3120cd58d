package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-rl/internal/apperror"
)

var (
	ErrInvalidEpisodes = errors.New("episodes must be positive")
	ErrUnknownLogLevel = errors.New("unknown log level")
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Board    Board   `yaml:"board"`
	Session  Session `yaml:"session"`
	Render   bool    `yaml:"render" env:"RENDER" env-default:"false"`
}

type Board struct {
	Size int `yaml:"size" env:"BOARD_SIZE" env-default:"3"`
}

type Session struct {
	Episodes  int    `yaml:"episodes" env:"SESSION_EPISODES" env-default:"100"`
	Seed      uint64 `yaml:"seed" env:"SESSION_SEED" env-default:"0"`
	PlayerOne string `yaml:"player-one" env:"SESSION_PLAYER_ONE" env-default:"random"`
	PlayerTwo string `yaml:"player-two" env:"SESSION_PLAYER_TWO" env-default:"random"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load reads the YAML file at path, or only the environment when path is empty.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to read config %s: %w", path, err)
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.LogLevel {
	case "debug", "info":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLogLevel, that.LogLevel)
	}

	if that.Board.Size <= 0 {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidBoardSize, that.Board.Size)
	}

	if that.Session.Episodes <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidEpisodes, that.Session.Episodes)
	}

	for _, kind := range []string{that.Session.PlayerOne, that.Session.PlayerTwo} {
		if kind != "random" && kind != "first" {
			return fmt.Errorf("%w: %q", apperror.ErrUnknownPlayerKind, kind)
		}
	}

	return nil
}
