package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the hardcoded Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:  800,
			Height: 450,
			Block:  25,
		},
		Speed: 7,
		Rules: RulesConfig{
			StagnationFactor: 100,
			FoodAttempts:     1000,
		},
		Rewards: RewardConfig{
			Food:  10,
			Death: -10,
		},
		Agent: AgentConfig{
			MaxMemory:    100_000,
			BatchSize:    1000,
			LearningRate: 0.1,
			Gamma:        0.9,
			EpsilonStart: 80,
			ExploreRange: 200,
			ModelPath:    "~/.snake/model.yaml",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
