package agent

import (
	"context"
	"time"
)

// EpisodeResult summarizes one finished training episode.
type EpisodeResult struct {
	Game        int // 1-based episode number
	Score       int
	Record      int
	NewRecord   bool
	Steps       int
	TotalReward int
	Duration    time.Duration
}

// TrainOptions controls a training run.
type TrainOptions struct {
	// Episodes stops the run after this many episodes; 0 runs until ctx is done.
	Episodes int
	// Record is the best score carried over from a previous run.
	Record int
	// OnEpisode is called after each episode. Returning an error stops the run.
	OnEpisode func(EpisodeResult) error
}

// Summary describes a finished training run.
type Summary struct {
	Games  int
	Record int
	Steps  int
}

// Train plays episodes in env, learning after every step and replaying
// memory after every episode. It returns ctx.Err() when cancelled.
func Train(ctx context.Context, env Env, a *Agent, opts TrainOptions) (Summary, error) {
	sum := Summary{Record: opts.Record}
	ep := EpisodeResult{}
	started := time.Now()

	for {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		old := StateOf(env)
		move := a.Action(old)
		out := env.PlayStep(move)
		next := StateOf(env)

		t := Transition{State: old, Action: move, Reward: out.Reward, Next: next, Done: out.Done}
		a.TrainShort(t)
		a.Remember(t)

		ep.Steps++
		ep.TotalReward += out.Reward
		sum.Steps++

		if !out.Done {
			continue
		}

		env.Reset()
		a.Games++
		a.TrainLong()

		ep.Game = a.Games
		ep.Score = out.Score
		ep.NewRecord = out.Score > sum.Record
		if ep.NewRecord {
			sum.Record = out.Score
		}
		ep.Record = sum.Record
		ep.Duration = time.Since(started)
		sum.Games++

		if opts.OnEpisode != nil {
			if err := opts.OnEpisode(ep); err != nil {
				return sum, err
			}
		}
		if opts.Episodes > 0 && sum.Games >= opts.Episodes {
			return sum, nil
		}

		ep = EpisodeResult{}
		started = time.Now()
	}
}
