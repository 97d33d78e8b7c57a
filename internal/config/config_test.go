package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg SnakeConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("embedded default %+v differs from hardcoded %+v", cfg, DefaultSnakeConfig())
	}
}

func TestLoadSnakeCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := []byte("board:\n  width: 500\n  height: 300\n  block: 20\nspeed: 12\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg.Board.Width != 500 || cfg.Board.Height != 300 || cfg.Board.Block != 20 {
		t.Errorf("board not overridden: %+v", cfg.Board)
	}
	if cfg.Speed != 12 {
		t.Errorf("Speed = %d, expected 12", cfg.Speed)
	}
	if cfg.Rules.StagnationFactor != 100 {
		t.Errorf("unset keys should keep defaults, got stagnation_factor %d", cfg.Rules.StagnationFactor)
	}
}

func TestLoadSnakeMissingCustomPath(t *testing.T) {
	_, err := LoadSnake(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SnakeConfig)
		ok     bool
	}{
		{"defaults", func(*SnakeConfig) {}, true},
		{"zero block", func(c *SnakeConfig) { c.Board.Block = 0 }, false},
		{"width not a multiple", func(c *SnakeConfig) { c.Board.Width = 810 }, false},
		{"height not a multiple", func(c *SnakeConfig) { c.Board.Height = 440 }, false},
		{"too narrow", func(c *SnakeConfig) { c.Board.Width = 50 }, false},
		{"three blocks wide", func(c *SnakeConfig) { c.Board.Width, c.Board.Height = 75, 75 }, false},
		{"four blocks wide", func(c *SnakeConfig) { c.Board.Width, c.Board.Height = 100, 100 }, true},
		{"single row", func(c *SnakeConfig) { c.Board.Height = 25 }, true},
		{"zero speed", func(c *SnakeConfig) { c.Speed = 0 }, false},
		{"zero food attempts", func(c *SnakeConfig) { c.Rules.FoodAttempts = 0 }, false},
		{"zero batch", func(c *SnakeConfig) { c.Agent.BatchSize = 0 }, false},
		{"negative explore range", func(c *SnakeConfig) { c.Agent.ExploreRange = -1 }, false},
		{"zero explore range", func(c *SnakeConfig) { c.Agent.ExploreRange = 0 }, true},
		{"negative epsilon", func(c *SnakeConfig) { c.Agent.EpsilonStart = -5 }, false},
		{"zero learning rate", func(c *SnakeConfig) { c.Agent.LearningRate = 0 }, false},
		{"learning rate above one", func(c *SnakeConfig) { c.Agent.LearningRate = 1.5 }, false},
		{"gamma above one", func(c *SnakeConfig) { c.Agent.Gamma = 1.1 }, false},
		{"negative gamma", func(c *SnakeConfig) { c.Agent.Gamma = -0.1 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.ok && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestDifficultyPresets(t *testing.T) {
	tests := []struct {
		flag  string
		speed int
	}{
		{"easy", 4},
		{"normal", 7},
		{"hard", 10},
		{"fixed", 7},
		{"", 7},
		{"bogus", 7},
	}

	for _, tc := range tests {
		cfg := DefaultSnakeConfig()
		ApplySnakePreset(&cfg, ParseDifficulty(tc.flag))
		if cfg.Speed != tc.speed {
			t.Errorf("preset %q: speed = %d, expected %d", tc.flag, cfg.Speed, tc.speed)
		}
	}
}
