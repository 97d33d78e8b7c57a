// snake is a terminal Snake game with a reinforcement-learning autopilot.
//
// Usage:
//
//	snake list                 - List available games
//	snake play [game]          - Play snake (default) or watch snake_ai
//	snake train                - Train the agent headlessly
//	snake scores [game]        - Show high scores and recent training runs
//	snake menu                 - Start menu to pick games interactively
//	snake serve                - Start SSH server for remote play
//	snake config               - Print the effective or default snake.yaml
//
// Global flags:
//
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.snake/scores.db)
//	--config <path>    - Use a custom snake.yaml
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-arcade/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/snake-arcade/internal/games/autopilot"
	_ "github.com/vovakirdan/snake-arcade/internal/games/snake"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake in your terminal, with an agent that learns to play it",
	Long: `Snake is a terminal Snake game. Play it yourself, train a
reinforcement-learning agent on it, or watch the agent play.

Available commands:
  list     - Show all available games
  play     - Play a game directly
  train    - Train the agent without a UI
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores and training history
  config   - Print the effective or default configuration

Examples:
  snake play
  snake play snake_ai
  snake train --episodes 500
  snake serve --ssh :2222
  snake scores snake`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates a component logger honoring --log-level.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if level, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
	}
	return logger
}

// loadConfig loads snake.yaml and applies a difficulty preset.
func loadConfig(difficulty string) (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplySnakePreset(&cfg, config.ParseDifficulty(difficulty))
	return cfg, nil
}
