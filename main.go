package main

import (
	"fmt"
	"log/slog"
	"os"

	app "github.com/rocketscienceinc/tictactoe-rl/internal"
	"github.com/rocketscienceinc/tictactoe-rl/internal/config"
	"github.com/rocketscienceinc/tictactoe-rl/transport/cli"
)

// main - is the entry point of the application. It parses the command line, initializes the logger, and runs the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	rootCommand := cli.NewRootCommand(func(conf *config.Config) error {
		logger := initLogger(conf)

		if err := app.RunApp(logger, conf, os.Stdout); err != nil {
			return fmt.Errorf("app run failed: %w", err)
		}

		return nil
	})

	if err := rootCommand.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
