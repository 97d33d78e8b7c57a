package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-arcade/internal/registry"
	"github.com/vovakirdan/snake-arcade/internal/storage"
)

var flagEpisodeLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores and training history",
	Long: `Display the top 10 high scores for a game (default: snake),
followed by the most recent training episodes.

Examples:
  snake scores
  snake scores snake_ai
  snake scores --episodes 20`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagEpisodeLimit, "episodes", 10, "Number of recent training episodes to show (0 = none)")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := "snake"
	if len(args) > 0 {
		gameID = args[0]
	}

	title, ok := registry.Title(gameID)
	if !ok {
		return fmt.Errorf("unknown game %q (run 'snake list' to see available games)", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Printf("Play 'snake play %s' to set the first high score!\n", gameID)
	} else {
		now := time.Now()
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "When")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			fmt.Printf("  %-4d  %-10s  %s\n", i+1, humanize.Comma(int64(entry.Score)), humanize.RelTime(entry.CreatedAt, now, "ago", "from now"))
		}

		if stats, err := store.GetGameStats(gameID); err == nil {
			fmt.Println()
			fmt.Printf("Best: %d  Games: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
		}
	}

	if flagEpisodeLimit <= 0 {
		return nil
	}

	episodes, err := store.RecentEpisodes(flagEpisodeLimit)
	if err != nil {
		return err
	}
	if len(episodes) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("Recent training episodes")
	fmt.Println()
	fmt.Printf("  %-8s  %-6s  %-6s  %-6s  %-8s  %s\n", "Run", "Game", "Score", "Record", "Steps", "When")
	fmt.Printf("  %-8s  %-6s  %-6s  %-6s  %-8s  %s\n", "---", "----", "-----", "------", "-----", "----")
	for _, ep := range episodes {
		run := ep.RunID
		if len(run) > 8 {
			run = run[:8]
		}
		fmt.Printf("  %-8s  %-6d  %-6d  %-6d  %-8s  %s\n",
			run, ep.Game, ep.Score, ep.Record, humanize.Comma(int64(ep.Steps)), humanize.Time(ep.CreatedAt))
	}

	return nil
}
