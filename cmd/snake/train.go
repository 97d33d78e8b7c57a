package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-arcade/internal/agent"
	"github.com/vovakirdan/snake-arcade/internal/config"
	"github.com/vovakirdan/snake-arcade/internal/games/snake"
	"github.com/vovakirdan/snake-arcade/internal/storage"
)

var (
	flagEpisodes int
	flagModel    string
	flagFresh    bool
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the agent",
	Long: `Train the reinforcement-learning agent headlessly.

Each episode is logged with its score and the best score so far. Episodes
are stored in the scores database and the model is saved whenever a new
record is set, and once more when training stops. Ctrl+C stops training
after the current step.

Examples:
  snake train
  snake train --episodes 1000 --seed 42
  snake train --fresh --model ./model.yaml`,
	RunE: runTrain,
}

func init() {
	trainCmd.Flags().IntVar(&flagEpisodes, "episodes", 0, "Number of episodes to play (0 = until interrupted)")
	trainCmd.Flags().StringVar(&flagModel, "model", "", "Model file (default: agent.model_path from config)")
	trainCmd.Flags().BoolVar(&flagFresh, "fresh", false, "Ignore an existing model and start from scratch")
}

func runTrain(_ *cobra.Command, _ []string) error {
	logger := newLogger("snake-train")

	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return err
	}

	modelPath := flagModel
	if modelPath == "" {
		modelPath = cfg.Agent.ModelPath
	}
	modelPath = config.ExpandHome(modelPath)

	table, games, record := agent.NewQTable(), 0, 0
	if !flagFresh {
		loaded, g, r, loadErr := agent.LoadQTable(modelPath)
		switch {
		case loadErr == nil:
			table, games, record = loaded, g, r
			logger.Info("resuming model", "path", modelPath, "games", games, "record", record, "states", loaded.Len())
		case errors.Is(loadErr, os.ErrNotExist):
			logger.Info("no saved model, starting fresh", "path", modelPath)
		default:
			return loadErr
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, episodes will not be stored", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	runID := uuid.NewString()

	env := snake.NewAIGame(cfg, seed)
	a := agent.NewQAgent(cfg.Agent, table, seed)
	a.Games = games

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("training started", "run", runID, "seed", seed, "episodes", flagEpisodes)
	started := time.Now()

	sum, err := agent.Train(ctx, env, a, agent.TrainOptions{
		Episodes: flagEpisodes,
		Record:   record,
		OnEpisode: func(ep agent.EpisodeResult) error {
			logger.Info("episode", "game", ep.Game, "score", ep.Score, "record", ep.Record, "steps", ep.Steps)

			if store != nil {
				if _, err := store.SaveEpisode(storage.Episode{
					RunID:       runID,
					Game:        ep.Game,
					Score:       ep.Score,
					Record:      ep.Record,
					RewardTotal: ep.TotalReward,
					Steps:       ep.Steps,
					Duration:    ep.Duration,
				}); err != nil {
					logger.Warn("could not store episode", "error", err)
				}
			}

			if ep.NewRecord {
				logger.Debug("new record, saving model", "path", modelPath)
				if err := table.Save(modelPath, ep.Game, ep.Record); err != nil {
					return fmt.Errorf("saving model: %w", err)
				}
			}
			return nil
		},
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	if err := table.Save(modelPath, a.Games, sum.Record); err != nil {
		return fmt.Errorf("saving model: %w", err)
	}

	logger.Info("training finished",
		"run", runID,
		"games", sum.Games,
		"record", sum.Record,
		"steps", humanize.Comma(int64(sum.Steps)),
		"memory", humanize.Comma(int64(a.Memory().Len())),
		"elapsed", time.Since(started).Round(time.Millisecond),
		"model", modelPath,
	)

	if store != nil {
		if rs, err := store.RunSummary(runID); err == nil {
			logger.Info("run summary", "games", rs.Games, "avg_score", fmt.Sprintf("%.2f", rs.AvgScore), "record", rs.Record)
		}
	}
	return nil
}
