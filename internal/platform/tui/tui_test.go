package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-arcade/internal/config"
	"github.com/vovakirdan/snake-arcade/internal/core"
	"github.com/vovakirdan/snake-arcade/internal/games/snake"
	"github.com/vovakirdan/snake-arcade/internal/storage"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"wasd down", runeKey('s'), core.ActionDown, false},
		{"wasd right", runeKey('d'), core.ActionRight, false},
		{"pause", runeKey('p'), core.ActionPause, false},
		{"escape pauses", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"restart", runeKey('r'), core.ActionRestart, false},
		{"quit", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.action || quit != tc.quit {
				t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tc.msg.String(), action, quit, tc.action, tc.quit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	if got := km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyTab}); got != MenuActionScoreboard {
		t.Errorf("tab = %v, expected scoreboard", got)
	}
	if got := km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEnter}); got != MenuActionSelect {
		t.Errorf("enter = %v, expected select", got)
	}
	if got := km.MapKeyToMenuAction(runeKey('j')); got != MenuActionDown {
		t.Errorf("j = %v, expected down", got)
	}
}

func TestTickInterval(t *testing.T) {
	if got := tickInterval(10); got != 100*time.Millisecond {
		t.Errorf("tickInterval(10) = %v", got)
	}
	if got := tickInterval(0); got != time.Second {
		t.Errorf("tickInterval(0) = %v, expected fallback of 1s", got)
	}
}

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	cfg := config.DefaultSnakeConfig()
	cfg.Board = config.BoardConfig{Width: 250, Height: 200, Block: 25}

	m := NewModel(snake.New(cfg), store, core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 5, Seed: 7})
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return out
}

func TestModelArrowTurnsSnake(t *testing.T) {
	m := newTestModel(t, nil)
	g := m.game.(*snake.Game)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(t, m, TickMsg(time.Now()))

	if dir := g.Snapshot().Dir; dir != snake.DirDown {
		t.Errorf("direction after down arrow = %v, expected down", dir)
	}
	if m.inputFrame.Direction != core.ActionNone {
		t.Error("input should be cleared after the tick")
	}
}

func TestModelSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(t.TempDir() + "/scores.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, store)
	// Straight into the right wall, then a few idle ticks after game over.
	for range 15 {
		m = update(t, m, TickMsg(time.Now()))
	}
	if !m.gameState.GameOver {
		t.Fatal("snake should have hit the wall")
	}

	scores, err := store.TopScores("snake", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	want := 0
	if m.gameState.Score > 0 {
		want = 1
	}
	if len(scores) != want {
		t.Errorf("stored %d scores for final score %d, expected %d", len(scores), m.gameState.Score, want)
	}
}

// finishedGame ends on its first step with a fixed score.
type finishedGame struct {
	auto  bool
	state core.GameState
}

func (g *finishedGame) ID() string               { return "finished" }
func (g *finishedGame) Title() string            { return "Finished" }
func (g *finishedGame) Reset(core.RuntimeConfig) { g.state = core.GameState{} }
func (g *finishedGame) Render(*core.Screen)      {}
func (g *finishedGame) State() core.GameState    { return g.state }
func (g *finishedGame) Autoplay() bool           { return g.auto }

func (g *finishedGame) Step(core.InputFrame) core.StepResult {
	g.state = core.GameState{Score: 5, GameOver: true}
	return core.StepResult{State: g.state, Moved: true}
}

func TestModelSkipsAutoplayScores(t *testing.T) {
	store, err := storage.Open(t.TempDir() + "/scores.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	tests := []struct {
		name string
		auto bool
		want int
	}{
		{"player", false, 1},
		{"autoplay", true, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := store.ClearScores("finished"); err != nil {
				t.Fatalf("ClearScores() failed: %v", err)
			}

			m := NewModel(&finishedGame{auto: tc.auto}, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 5, Seed: 7})
			m.Init()
			m = update(t, m, TickMsg(time.Now()))

			scores, err := store.TopScores("finished", 10)
			if err != nil {
				t.Fatalf("TopScores() failed: %v", err)
			}
			if len(scores) != tc.want {
				t.Errorf("stored %d scores, expected %d", len(scores), tc.want)
			}
		})
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if v := next.(Model).View(); v != "" {
		t.Errorf("View() after quit = %q, expected empty", v)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "Score: 1")
	s.SetColored(0, 1, '@', core.ColorBrightRed)

	out := RenderScreen(s)
	if !strings.Contains(out, "Score: 1") || !strings.Contains(out, "@") {
		t.Errorf("RenderScreen() lost content: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 lines, got %q", out)
	}
}

func TestMenuListsGames(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	found := false
	for _, item := range m.items {
		if item.GameID == "snake" {
			found = true
		}
	}
	if !found {
		t.Fatal("menu should list the snake game")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if sel := next.(MenuModel).Selected(); sel == nil || sel.GameID != m.items[0].GameID {
		t.Errorf("Selected() = %v, expected first item", sel)
	}
}

func TestDifficultySelector(t *testing.T) {
	m := NewDifficultyModel("Snake", 7, 80, 24)
	if !strings.Contains(m.View(), "10 moves/s") {
		t.Errorf("hard preset speed missing from view:\n%s", m.View())
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	sel := next.(DifficultyModel).Selected()
	if sel == nil || *sel != config.DifficultyHard {
		t.Errorf("Selected() = %v, expected hard", sel)
	}
}

func TestScoreboardPages(t *testing.T) {
	store, err := storage.Open(t.TempDir() + "/scores.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	store.SaveScore("snake", 1234)
	store.SaveEpisode(storage.Episode{RunID: "r", Game: 1, Score: 2, Record: 2, Steps: 40})

	m := NewScoreboardModel(store, 100, 30)
	if len(m.rows) != 1 || m.rows[0][1] != "1,234" {
		t.Fatalf("snake page rows = %v", m.rows)
	}

	// Training is the last page.
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if !m.page().training() {
		t.Fatalf("expected training page, got %q", m.page().ID)
	}
	if len(m.rows) != 1 || m.rows[0][3] != "40" {
		t.Errorf("training rows = %v", m.rows)
	}
}
