package snake

import (
	"slices"

	"github.com/vovakirdan/snake-arcade/internal/config"
	"github.com/vovakirdan/snake-arcade/internal/core"
)

// AIGame is the training environment. Its step takes a relative action
// instead of keyboard input and reports a shaped reward.
type AIGame struct {
	e    *engine
	seed int64
	runs int64
}

// NewAIGame creates an environment and starts its first episode.
func NewAIGame(cfg config.SnakeConfig, seed int64) *AIGame {
	return &AIGame{
		e:    newEngine(cfg, seed),
		seed: seed,
	}
}

// Reset re-initializes all episode state. Each episode draws from its own
// seed so a run stays reproducible as a whole.
func (g *AIGame) Reset() {
	g.runs++
	g.e.reset(g.seed + g.runs)
}

// PlayStep advances the episode by one tick.
// Reward is Rewards.Death on termination, Rewards.Food when food is eaten
// and 0 otherwise. A terminated episode stays terminated until Reset.
func (g *AIGame) PlayStep(a Action) Outcome {
	if g.e.over {
		return Outcome{Done: true, Score: g.e.score}
	}
	g.e.frame++
	return g.e.advance(a.Apply(g.e.dir), true)
}

// IsCollision reports whether c would end the episode if the head moved there.
func (g *AIGame) IsCollision(c Cell) bool {
	return g.e.IsCollision(c)
}

// Head returns the head cell.
func (g *AIGame) Head() Cell { return g.e.head() }

// Body returns a copy of the body, head first.
func (g *AIGame) Body() []Cell { return slices.Clone(g.e.body) }

// Food returns the food cell.
func (g *AIGame) Food() Cell { return g.e.food }

// Direction returns the current heading.
func (g *AIGame) Direction() Direction { return g.e.dir }

// Score returns the food eaten this episode.
func (g *AIGame) Score() int { return g.e.score }

// Frame returns the frame counter used by the stagnation cutoff.
func (g *AIGame) Frame() int { return g.e.frame }

// Over reports whether the episode has terminated.
func (g *AIGame) Over() bool { return g.e.over }

// Board returns the playing field dimensions.
func (g *AIGame) Board() Board { return g.e.board }

// Snapshot returns the current episode snapshot.
func (g *AIGame) Snapshot() Snapshot { return g.e.snapshot(false) }

// Render draws the episode with the given HUD text.
func (g *AIGame) Render(dst *core.Screen, hud string) {
	g.e.render(dst, hud)
	if g.e.over {
		RenderOverlay(dst, "Episode over", "Press R to restart")
	}
}
