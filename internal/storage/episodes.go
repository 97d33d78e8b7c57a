package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Episode is one finished training episode.
type Episode struct {
	ID          int64
	RunID       string
	Game        int
	Score       int
	Record      int
	RewardTotal int
	Steps       int
	Duration    time.Duration
	CreatedAt   time.Time
}

// RunSummary aggregates the episodes of one training run.
type RunSummary struct {
	RunID     string
	Games     int
	Record    int
	AvgScore  float64
	Steps     int64
	StartedAt time.Time
	UpdatedAt time.Time
}

// ErrRunNotFound is returned when a run has no recorded episodes.
var ErrRunNotFound = errors.New("storage: run not found")

// SaveEpisode records a training episode. Returns the ID of the inserted record.
func (s *Store) SaveEpisode(ep Episode) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO episodes (run_id, game, score, record, reward_total, steps, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		ep.RunID, ep.Game, ep.Score, ep.Record, ep.RewardTotal, ep.Steps, ep.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save episode: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentEpisodes retrieves the most recently stored episodes across all runs.
func (s *Store) RecentEpisodes(limit int) ([]Episode, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, game, score, record, reward_total, steps, duration_ms, created_at
		 FROM episodes
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query episodes: %w", err)
	}
	defer rows.Close()

	var episodes []Episode
	for rows.Next() {
		var ep Episode
		var durationMs int64
		var createdAt any
		if err := rows.Scan(
			&ep.ID,
			&ep.RunID,
			&ep.Game,
			&ep.Score,
			&ep.Record,
			&ep.RewardTotal,
			&ep.Steps,
			&durationMs,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		ep.Duration = time.Duration(durationMs) * time.Millisecond
		ep.CreatedAt = parseTime(createdAt)
		episodes = append(episodes, ep)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return episodes, nil
}

// RunSummary aggregates the episodes stored for runID.
// Returns ErrRunNotFound when the run has none.
func (s *Store) RunSummary(runID string) (*RunSummary, error) {
	sum := &RunSummary{RunID: runID}
	var started, updated any

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(record), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(steps), 0), MIN(created_at), MAX(created_at)
		 FROM episodes WHERE run_id = ?`,
		runID,
	).Scan(&sum.Games, &sum.Record, &sum.AvgScore, &sum.Steps, &started, &updated)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot summarize run %s: %w", runID, err)
	}
	if sum.Games == 0 {
		return nil, ErrRunNotFound
	}

	sum.StartedAt = parseTime(started)
	sum.UpdatedAt = parseTime(updated)
	return sum, nil
}
