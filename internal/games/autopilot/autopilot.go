// Package autopilot lets the trained agent play Snake on the arcade screen.
package autopilot

import (
	"fmt"
	"time"

	"github.com/vovakirdan/snake-arcade/internal/agent"
	"github.com/vovakirdan/snake-arcade/internal/config"
	"github.com/vovakirdan/snake-arcade/internal/core"
	"github.com/vovakirdan/snake-arcade/internal/games/snake"
	"github.com/vovakirdan/snake-arcade/internal/registry"
)

// Game drives an AI environment with a greedy agent.
type Game struct {
	cfg      config.SnakeConfig
	table    *agent.QTable
	trained  int
	env      *snake.AIGame
	agent    *agent.Agent
	episodes int
	best     int
	seed     int64
	paused   bool
	tooSmall bool
	screenW  int
	screenH  int
}

// New creates an autopilot game. The model at cfg.Agent.ModelPath is used
// when it can be loaded; otherwise the agent starts from an empty table.
func New(cfg config.SnakeConfig) *Game {
	table, trained, _, err := agent.LoadQTable(config.ExpandHome(cfg.Agent.ModelPath))
	if err != nil {
		table, trained = agent.NewQTable(), 0
	}
	return NewWithModel(cfg, table, trained, time.Now().UnixNano())
}

// NewWithModel creates an autopilot game playing with table, with its first
// episode drawn from seed. trained is the number of games the table was
// trained for.
func NewWithModel(cfg config.SnakeConfig, table *agent.QTable, trained int, seed int64) *Game {
	g := &Game{cfg: cfg, table: table, trained: trained, episodes: 1}
	g.Reset(core.RuntimeConfig{Seed: seed})
	return g
}

func init() {
	registry.Register("snake_ai", "Snake (AI)", func(cfg config.SnakeConfig) registry.Game {
		return New(cfg)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake_ai"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake (AI)"
}

// Autoplay reports that the agent, not the player, is in control.
func (g *Game) Autoplay() bool {
	return true
}

// Reset starts a fresh episode.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seed = cfg.Seed
	g.env = snake.NewAIGame(g.cfg, cfg.Seed)
	g.agent = agent.NewQAgent(g.cfg.Agent, g.table, cfg.Seed)
	g.agent.Greedy = true
	g.agent.Games = g.trained
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize records a new terminal size. A zero size means headless.
func (g *Game) Resize(screenW, screenH int) {
	g.screenW = screenW
	g.screenH = screenH
	w, h := snake.RequiredScreen(g.env.Board())
	g.tooSmall = g.screenW > 0 && (g.screenW < w || g.screenH < h)
}

// Step plays one agent move.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if input.Has(core.ActionRestart) && g.env.Over() {
		g.episodes++
		g.Reset(core.RuntimeConfig{
			Seed:    g.seed + 1,
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && !g.env.Over() {
		g.paused = !g.paused
	}

	if g.env.Over() || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	out := g.env.PlayStep(g.agent.Action(agent.StateOf(g.env)))
	g.best = max(g.best, out.Score)
	return core.StepResult{State: g.State(), Moved: true}
}

// Render draws the board with the agent's stats in the HUD.
func (g *Game) Render(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake (AI) — Score: %d  Best: %d  Episode: %d", g.env.Score(), g.best, g.episodes)
	if g.trained > 0 {
		hud += fmt.Sprintf("  Trained: %d games", g.trained)
	}
	g.env.Render(dst, hud)
	if g.paused && !g.env.Over() {
		snake.RenderOverlay(dst, "Paused", "Press P to continue")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.env.Score(),
		GameOver: g.env.Over(),
		Paused:   g.paused,
	}
}

// Episodes returns how many episodes have been played, including the current one.
func (g *Game) Episodes() int {
	return g.episodes
}
