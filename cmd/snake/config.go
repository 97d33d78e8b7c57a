package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/snake-arcade/internal/config"
)

var flagPrintDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the snake configuration",
	Long: `Print the configuration snake would run with, after the config search
order and validation. With --print-default, print the built-in snake.yaml
instead, as a starting point for ~/.snake/configs/snake.yaml.

Examples:
  snake config
  snake config --config ./my.yaml
  snake config --print-default > ~/.snake/configs/snake.yaml`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagPrintDefault, "print-default", false, "Print the built-in default snake.yaml")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagPrintDefault {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}
