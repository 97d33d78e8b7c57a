// Package config provides YAML-based configuration loading and difficulty
// presets for the snake game and its training agent.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate for unusable settings.
var ErrInvalidConfig = errors.New("config: invalid snake config")

// SnakeConfig contains all configuration for the Snake game and agent.
type SnakeConfig struct {
	Board   BoardConfig  `yaml:"board"`
	Speed   int          `yaml:"speed"` // Moves per second in interactive play
	Rules   RulesConfig  `yaml:"rules"`
	Rewards RewardConfig `yaml:"rewards"`
	Agent   AgentConfig  `yaml:"agent"`
}

// BoardConfig defines the canvas and block size in pixel-space units.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Block  int `yaml:"block"`
}

// RulesConfig defines episode rules.
type RulesConfig struct {
	// StagnationFactor ends an AI episode once frames exceed factor × body length.
	StagnationFactor int `yaml:"stagnation_factor"`
	// FoodAttempts bounds rejection sampling before falling back to a free-cell scan.
	FoodAttempts int `yaml:"food_attempts"`
}

// RewardConfig defines the AI variant's reward shaping.
type RewardConfig struct {
	Food  int `yaml:"food"`
	Death int `yaml:"death"`
}

// AgentConfig defines training parameters for the agent.
type AgentConfig struct {
	MaxMemory    int     `yaml:"max_memory"`
	BatchSize    int     `yaml:"batch_size"`
	LearningRate float64 `yaml:"learning_rate"`
	Gamma        float64 `yaml:"gamma"`
	EpsilonStart int     `yaml:"epsilon_start"` // Exploration budget in games
	ExploreRange int     `yaml:"explore_range"` // Upper bound of the exploration roll
	ModelPath    string  `yaml:"model_path"`
}

// Validate checks that the board can host a snake and that the agent
// parameters are usable.
func (c SnakeConfig) Validate() error {
	b := c.Board
	switch {
	case b.Block <= 0 || b.Width <= 0 || b.Height <= 0:
		return fmt.Errorf("%w: board dimensions must be positive", ErrInvalidConfig)
	case b.Width%b.Block != 0:
		return fmt.Errorf("%w: width %d is not a multiple of block %d", ErrInvalidConfig, b.Width, b.Block)
	case b.Height%b.Block != 0:
		return fmt.Errorf("%w: height %d is not a multiple of block %d", ErrInvalidConfig, b.Height, b.Block)
	case (b.Width/2)/b.Block < 2:
		// The starting body extends two blocks left of the center column.
		return fmt.Errorf("%w: board must be at least 4 blocks wide", ErrInvalidConfig)
	case c.Speed <= 0:
		return fmt.Errorf("%w: speed must be positive", ErrInvalidConfig)
	case c.Rules.StagnationFactor <= 0:
		return fmt.Errorf("%w: stagnation_factor must be positive", ErrInvalidConfig)
	case c.Rules.FoodAttempts <= 0:
		return fmt.Errorf("%w: food_attempts must be positive", ErrInvalidConfig)
	case c.Agent.MaxMemory <= 0 || c.Agent.BatchSize <= 0:
		return fmt.Errorf("%w: agent memory and batch size must be positive", ErrInvalidConfig)
	case c.Agent.LearningRate <= 0 || c.Agent.LearningRate > 1:
		return fmt.Errorf("%w: learning_rate must be in (0, 1]", ErrInvalidConfig)
	case c.Agent.Gamma < 0 || c.Agent.Gamma > 1:
		return fmt.Errorf("%w: gamma must be in [0, 1]", ErrInvalidConfig)
	case c.Agent.EpsilonStart < 0 || c.Agent.ExploreRange < 0:
		return fmt.Errorf("%w: epsilon_start and explore_range must not be negative", ErrInvalidConfig)
	}
	return nil
}
