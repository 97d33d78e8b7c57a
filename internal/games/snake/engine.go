package snake

import (
	"math/rand"
	"slices"

	"github.com/vovakirdan/snake-arcade/internal/config"
)

// Outcome is the result of one tick.
type Outcome struct {
	Reward int
	Done   bool
	Score  int
}

// engine is the state machine shared by the human and AI variants.
type engine struct {
	board   Board
	rules   config.RulesConfig
	rewards config.RewardConfig
	rng     *rand.Rand

	body  []Cell // Head at index 0
	dir   Direction
	food  Cell
	score int
	frame int
	tick  uint64
	over  bool
}

func newEngine(cfg config.SnakeConfig, seed int64) *engine {
	e := &engine{
		board: Board{
			Width:  cfg.Board.Width,
			Height: cfg.Board.Height,
			Block:  cfg.Board.Block,
		},
		rules:   cfg.Rules,
		rewards: cfg.Rewards,
	}
	e.reset(seed)
	return e
}

// reset starts a new episode: a three-cell body centered on the board
// heading right, and fresh food.
func (e *engine) reset(seed int64) {
	e.rng = rand.New(rand.NewSource(seed))
	e.dir = DirRight
	head := e.board.Center()
	e.body = []Cell{
		head,
		head.Move(DirLeft, e.board.Block),
		head.Move(DirLeft, 2*e.board.Block),
	}
	e.score = 0
	e.frame = 0
	e.tick = 0
	e.over = false
	e.placeFood()
}

// advance moves the snake one block in dir. The stagnation cutoff applies
// only when checkStagnation is set.
func (e *engine) advance(dir Direction, checkStagnation bool) Outcome {
	e.tick++
	e.dir = dir
	head := e.body[0].Move(dir, e.board.Block)
	e.body = slices.Insert(e.body, 0, head)

	// Boundary before self before stagnation; the tail has not moved yet.
	if e.IsCollision(head) || (checkStagnation && e.frame > e.rules.StagnationFactor*len(e.body)) {
		e.over = true
		return Outcome{Reward: e.rewards.Death, Done: true, Score: e.score}
	}

	reward := 0
	if head == e.food {
		e.score++
		reward = e.rewards.Food
		e.placeFood()
	} else {
		e.body = e.body[:len(e.body)-1]
	}
	return Outcome{Reward: reward, Done: false, Score: e.score}
}

// IsCollision reports whether c is outside the board or on the body
// behind the head.
func (e *engine) IsCollision(c Cell) bool {
	if !e.board.Contains(c) {
		return true
	}
	return len(e.body) > 1 && slices.Contains(e.body[1:], c)
}

func (e *engine) occupied(c Cell) bool {
	return slices.Contains(e.body, c)
}

// placeFood samples a free cell uniformly. Rejection sampling is bounded by
// FoodAttempts; after that the free cells are enumerated and one is drawn.
func (e *engine) placeFood() {
	cols, rows := e.board.Cols(), e.board.Rows()
	for range e.rules.FoodAttempts {
		c := e.board.CellAt(e.rng.Intn(cols), e.rng.Intn(rows))
		if !e.occupied(c) {
			e.food = c
			return
		}
	}

	free := e.freeCells()
	if len(free) == 0 {
		e.food = NoFood
		return
	}
	e.food = free[e.rng.Intn(len(free))]
}

func (e *engine) freeCells() []Cell {
	taken := make(map[Cell]bool, len(e.body))
	for _, c := range e.body {
		taken[c] = true
	}
	var free []Cell
	for row := range e.board.Rows() {
		for col := range e.board.Cols() {
			c := e.board.CellAt(col, row)
			if !taken[c] {
				free = append(free, c)
			}
		}
	}
	return free
}

func (e *engine) head() Cell {
	return e.body[0]
}
