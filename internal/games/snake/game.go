package snake

import (
	"fmt"

	"github.com/vovakirdan/snake-arcade/internal/config"
	"github.com/vovakirdan/snake-arcade/internal/core"
	"github.com/vovakirdan/snake-arcade/internal/registry"
)

// Game is the human-playable variant. Direction comes from the keyboard.
type Game struct {
	cfg      config.SnakeConfig
	e        *engine
	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
}

// New creates a human-playable Snake game.
func New(cfg config.SnakeConfig) *Game {
	return &Game{cfg: cfg, e: newEngine(cfg, 0)}
}

func init() {
	registry.Register("snake", "Snake", func(cfg config.SnakeConfig) registry.Game {
		return New(cfg)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.e = newEngine(g.cfg, cfg.Seed)
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize records a new terminal size. The board pauses while it does not fit.
func (g *Game) Resize(screenW, screenH int) {
	g.screenW = screenW
	g.screenH = screenH
	w, h := RequiredScreen(g.e.board)
	g.tooSmall = g.screenW < w || g.screenH < h
}

// PlayStep moves the snake one block in dir and reports whether the game
// ended and the current score.
func (g *Game) PlayStep(dir Direction) (bool, int) {
	if g.e.over {
		return true, g.e.score
	}
	out := g.e.advance(dir, false)
	if !out.Done {
		g.e.frame++
	}
	return out.Done, out.Score
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if input.Has(core.ActionRestart) && g.e.over {
		g.Reset(core.RuntimeConfig{
			Seed:    g.e.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && !g.e.over {
		g.paused = !g.paused
	}

	if g.e.over || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.PlayStep(ResolveDirection(g.e.dir, input))
	return core.StepResult{State: g.State(), Moved: true}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	g.e.render(dst, fmt.Sprintf(" Snake — Score: %d", g.e.score))

	switch {
	case g.e.over:
		RenderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		RenderOverlay(dst, "Paused", "Press P to continue")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.e.score,
		GameOver: g.e.over,
		Paused:   g.paused,
	}
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := g.e.snapshot(g.paused)
	if g.tooSmall {
		snap.State = StatePausedSmall
	}
	return snap
}
