package agent

import (
	"math/rand"

	"github.com/vovakirdan/snake-arcade/internal/config"
	"github.com/vovakirdan/snake-arcade/internal/games/snake"
)

// Agent picks moves and learns from the transitions it plays.
type Agent struct {
	// Games counts finished training episodes; exploration shrinks as it grows.
	Games int
	// Greedy disables exploration entirely.
	Greedy bool

	cfg     config.AgentConfig
	memory  *Memory
	model   Model
	trainer Trainer
	rng     *rand.Rand
}

// New creates an agent backed by model and trainer.
func New(cfg config.AgentConfig, model Model, trainer Trainer, seed int64) *Agent {
	return &Agent{
		cfg:     cfg,
		memory:  NewMemory(cfg.MaxMemory),
		model:   model,
		trainer: trainer,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// NewQAgent creates an agent with a tabular model. A nil table starts empty.
func NewQAgent(cfg config.AgentConfig, table *QTable, seed int64) *Agent {
	if table == nil {
		table = NewQTable()
	}
	return New(cfg, table, NewQTrainer(table, cfg.LearningRate, cfg.Gamma), seed)
}

// Memory returns the replay buffer.
func (a *Agent) Memory() *Memory {
	return a.memory
}

// Epsilon returns the current exploration budget. Moves are random with
// probability epsilon/(ExploreRange+1) while it is positive.
func (a *Agent) Epsilon() int {
	if a.Greedy {
		return 0
	}
	return a.cfg.EpsilonStart - a.Games
}

// Action picks the next move for s.
func (a *Agent) Action(s State) snake.Action {
	if a.rng.Intn(a.cfg.ExploreRange+1) < a.Epsilon() {
		return snake.ActionFromIndex(a.rng.Intn(3))
	}
	return snake.ActionFromIndex(argmax(a.model.Predict(s)))
}

// Remember stores a transition for replay.
func (a *Agent) Remember(t Transition) {
	a.memory.Push(t)
}

// TrainShort learns from the step just taken.
func (a *Agent) TrainShort(t Transition) {
	a.trainer.TrainStep([]Transition{t})
}

// TrainLong replays a batch sampled from memory.
func (a *Agent) TrainLong() {
	if a.memory.Len() == 0 {
		return
	}
	a.trainer.TrainStep(a.memory.Sample(a.cfg.BatchSize, a.rng))
}

// argmax returns the first index holding the largest value.
func argmax(v [3]float64) int {
	best := 0
	for i := 1; i < len(v); i++ {
		if v[i] > v[best] {
			best = i
		}
	}
	return best
}
