package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-rl/internal/config"
)

// Runner receives a loaded and validated config.
type Runner func(conf *config.Config) error

func NewRootCommand(run Runner) *cobra.Command {
	var configPath string

	rootCommand := &cobra.Command{
		Use:           "tictactoe-rl",
		Short:         "N×N tic-tac-toe reinforcement-learning environment",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCommand.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the YAML config file (environment only when empty)")

	rootCommand.AddCommand(PlayCommand(&configPath, run))

	return rootCommand
}

// PlayCommand plays bot-vs-bot episodes. Flags override values from the config.
func PlayCommand(configPath *string, run Runner) *cobra.Command {
	var (
		episodes  int
		size      int
		seed      uint64
		playerOne string
		playerTwo string
		render    bool
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play episodes between two bots and report statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("episodes") {
				conf.Session.Episodes = episodes
			}
			if flags.Changed("size") {
				conf.Board.Size = size
			}
			if flags.Changed("seed") {
				conf.Session.Seed = seed
			}
			if flags.Changed("player-one") {
				conf.Session.PlayerOne = playerOne
			}
			if flags.Changed("player-two") {
				conf.Session.PlayerTwo = playerTwo
			}
			if flags.Changed("render") {
				conf.Render = render
			}

			if err = conf.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			return run(conf)
		},
	}

	cmd.Flags().IntVarP(&episodes, "episodes", "e", 0, "Number of episodes to play")
	cmd.Flags().IntVarP(&size, "size", "n", 0, "Board size N")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed, 0 for time based")
	cmd.Flags().StringVar(&playerOne, "player-one", "", "Player one kind: random | first")
	cmd.Flags().StringVar(&playerTwo, "player-two", "", "Player two kind: random | first")
	cmd.Flags().BoolVar(&render, "render", false, "Print the final board of every episode")

	return cmd
}
