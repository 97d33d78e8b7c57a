package agent

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/snake-arcade/internal/config"
	"github.com/vovakirdan/snake-arcade/internal/games/snake"
)

// fakeEnv is a fixed position; walls are the only hazards.
type fakeEnv struct {
	head  snake.Cell
	food  snake.Cell
	dir   snake.Direction
	board snake.Board
}

func (f *fakeEnv) Head() snake.Cell                    { return f.head }
func (f *fakeEnv) Food() snake.Cell                    { return f.food }
func (f *fakeEnv) Direction() snake.Direction          { return f.dir }
func (f *fakeEnv) Board() snake.Board                  { return f.board }
func (f *fakeEnv) IsCollision(c snake.Cell) bool       { return !f.board.Contains(c) }
func (f *fakeEnv) PlayStep(snake.Action) snake.Outcome { return snake.Outcome{Done: true} }
func (f *fakeEnv) Reset()                              {}

var testBoard = snake.Board{Width: 800, Height: 450, Block: 25}

func TestStateOfOpenField(t *testing.T) {
	env := &fakeEnv{
		head:  snake.Cell{X: 400, Y: 225},
		food:  snake.Cell{X: 100, Y: 400},
		dir:   snake.DirRight,
		board: testBoard,
	}

	want := State{0, 0, 0, 0, 1, 0, 0, 1, 0, 0, 1}
	if got := StateOf(env); got != want {
		t.Errorf("StateOf() = %v, expected %v", got, want)
	}
}

func TestStateOfRelativeDanger(t *testing.T) {
	tests := []struct {
		name string
		head snake.Cell
		dir  snake.Direction
		want [3]int // straight, right, left
	}{
		{"facing right wall", snake.Cell{X: 775, Y: 225}, snake.DirRight, [3]int{1, 0, 0}},
		{"heading up along right wall", snake.Cell{X: 775, Y: 225}, snake.DirUp, [3]int{0, 1, 0}},
		{"heading down along right wall", snake.Cell{X: 775, Y: 225}, snake.DirDown, [3]int{0, 0, 1}},
		{"top-left corner heading left", snake.Cell{X: 0, Y: 0}, snake.DirLeft, [3]int{1, 1, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := &fakeEnv{head: tc.head, food: tc.head, dir: tc.dir, board: testBoard}
			s := StateOf(env)
			got := [3]int{s[0], s[1], s[2]}
			if got != tc.want {
				t.Errorf("danger = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestStateOfLiveGame(t *testing.T) {
	g := snake.NewAIGame(config.DefaultSnakeConfig(), 1)
	s := StateOf(g)

	if s[0]+s[1]+s[2] != 0 {
		t.Errorf("no danger expected at the start, got %v", s)
	}
	if s[4] != 1 || s[3]+s[5]+s[6] != 1 {
		t.Errorf("heading should be exactly right, got %v", s)
	}
}

func TestStateKeyDistinct(t *testing.T) {
	seen := make(map[uint16]bool)
	for i := range StateSize {
		var s State
		s[i] = 1
		if seen[s.Key()] {
			t.Fatalf("feature %d collides with another key", i)
		}
		seen[s.Key()] = true
	}
	if (State{}).Key() != 0 {
		t.Error("empty state should have key 0")
	}
}

func TestMemoryEvictsOldest(t *testing.T) {
	m := NewMemory(3)
	for i := range 5 {
		m.Push(Transition{Reward: i})
	}

	if m.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", m.Len())
	}
	for i, want := range []int{2, 3, 4} {
		if got := m.At(i).Reward; got != want {
			t.Errorf("At(%d).Reward = %d, expected %d", i, got, want)
		}
	}
}

func TestMemorySample(t *testing.T) {
	m := NewMemory(100)
	for i := range 50 {
		m.Push(Transition{Reward: i})
	}
	rng := rand.New(rand.NewSource(1))

	batch := m.Sample(20, rng)
	if len(batch) != 20 {
		t.Fatalf("Sample(20) returned %d", len(batch))
	}
	seen := make(map[int]bool)
	for _, tr := range batch {
		if seen[tr.Reward] {
			t.Fatalf("Sample drew transition %d twice", tr.Reward)
		}
		seen[tr.Reward] = true
	}

	if all := m.Sample(1000, rng); len(all) != 50 {
		t.Errorf("oversized Sample returned %d, expected the whole memory", len(all))
	}
}

func TestQTrainerUpdate(t *testing.T) {
	q := NewQTable()
	tr := NewQTrainer(q, 0.5, 0.9)

	s := State{1}
	next := State{0, 1}
	q.values[next.Key()] = [3]float64{2, 4, 1}

	tr.TrainStep([]Transition{{State: s, Action: snake.ActionRight, Reward: 10, Next: next}})
	// 0 + 0.5 * (10 + 0.9*4 - 0)
	if got := q.Predict(s)[1]; math.Abs(got-6.8) > 1e-9 {
		t.Errorf("Q(s, right) = %v, expected 6.8", got)
	}

	tr.TrainStep([]Transition{{State: s, Action: snake.ActionLeft, Reward: -10, Next: next, Done: true}})
	if got := q.Predict(s)[2]; got != -5 {
		t.Errorf("terminal Q(s, left) = %v, expected -5", got)
	}
}

func TestGreedyActionFollowsModel(t *testing.T) {
	q := NewQTable()
	s := State{0, 0, 1}
	q.values[s.Key()] = [3]float64{-1, 3, 2}

	a := NewQAgent(config.DefaultSnakeConfig().Agent, q, 1)
	a.Greedy = true

	for range 20 {
		if got := a.Action(s); got != snake.ActionRight {
			t.Fatalf("Action() = %v, expected right", got)
		}
	}
}

func TestExplorationCoversAllMoves(t *testing.T) {
	cfg := config.DefaultSnakeConfig().Agent
	cfg.EpsilonStart = 1000 // always explore
	a := NewQAgent(cfg, nil, 2)

	seen := make(map[snake.Action]bool)
	for range 300 {
		seen[a.Action(State{})] = true
	}
	if len(seen) != 3 {
		t.Errorf("exploration produced %d distinct moves, expected 3", len(seen))
	}

	a.Games = 2000
	if a.Epsilon() > 0 {
		t.Error("epsilon should be exhausted after enough games")
	}
}

func TestTrainRunsEpisodes(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Board = config.BoardConfig{Width: 200, Height: 200, Block: 25}
	env := snake.NewAIGame(cfg, 3)
	a := NewQAgent(cfg.Agent, nil, 3)

	var results []EpisodeResult
	sum, err := Train(context.Background(), env, a, TrainOptions{
		Episodes: 5,
		OnEpisode: func(r EpisodeResult) error {
			results = append(results, r)
			return nil
		},
	})
	if err != nil {
		t.Fatalf("Train() failed: %v", err)
	}

	if sum.Games != 5 || len(results) != 5 || a.Games != 5 {
		t.Fatalf("expected 5 episodes, summary %+v, callbacks %d", sum, len(results))
	}
	for i, r := range results {
		if r.Game != i+1 {
			t.Errorf("episode %d reported game %d", i+1, r.Game)
		}
		if r.Record < r.Score || r.Steps == 0 {
			t.Errorf("inconsistent episode result %+v", r)
		}
	}
	if a.Memory().Len() != sum.Steps {
		t.Errorf("memory holds %d transitions, expected %d", a.Memory().Len(), sum.Steps)
	}
}

func TestTrainStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	env := snake.NewAIGame(config.DefaultSnakeConfig(), 4)
	a := NewQAgent(config.DefaultSnakeConfig().Agent, nil, 4)

	_, err := Train(ctx, env, a, TrainOptions{
		OnEpisode: func(EpisodeResult) error {
			cancel()
			return nil
		},
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Train() error = %v, expected context.Canceled", err)
	}
}

func TestQTableSaveLoad(t *testing.T) {
	q := NewQTable()
	q.values[State{1, 0, 1}.Key()] = [3]float64{1.5, -2, 0.25}

	path := filepath.Join(t.TempDir(), "nested", "model.yaml")
	if err := q.Save(path, 42, 7); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, games, record, err := LoadQTable(path)
	if err != nil {
		t.Fatalf("LoadQTable() failed: %v", err)
	}
	if games != 42 || record != 7 || loaded.Len() != 1 {
		t.Errorf("loaded games=%d record=%d len=%d", games, record, loaded.Len())
	}
	if got := loaded.Predict(State{1, 0, 1}); got != [3]float64{1.5, -2, 0.25} {
		t.Errorf("Predict() = %v after reload", got)
	}

	if _, _, _, err := LoadQTable(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadQTable() should fail for a missing file")
	}
}
