package agent

import (
	"math/rand"

	"github.com/vovakirdan/snake-arcade/internal/games/snake"
)

// Transition is one remembered step.
type Transition struct {
	State  State
	Action snake.Action
	Reward int
	Next   State
	Done   bool
}

// Memory is a bounded replay buffer. Once full, each push evicts the oldest entry.
type Memory struct {
	buf   []Transition
	start int
	size  int
}

// NewMemory creates a replay buffer holding at most capacity transitions.
func NewMemory(capacity int) *Memory {
	return &Memory{buf: make([]Transition, max(1, capacity))}
}

// Push appends a transition.
func (m *Memory) Push(t Transition) {
	if m.size < len(m.buf) {
		m.buf[(m.start+m.size)%len(m.buf)] = t
		m.size++
		return
	}
	m.buf[m.start] = t
	m.start = (m.start + 1) % len(m.buf)
}

// Len returns the number of stored transitions.
func (m *Memory) Len() int {
	return m.size
}

// At returns the i-th transition, oldest first.
func (m *Memory) At(i int) Transition {
	return m.buf[(m.start+i)%len(m.buf)]
}

// Sample returns n distinct transitions drawn uniformly, or every stored
// transition in order when n >= Len.
func (m *Memory) Sample(n int, rng *rand.Rand) []Transition {
	if n >= m.size {
		out := make([]Transition, m.size)
		for i := range out {
			out[i] = m.At(i)
		}
		return out
	}

	out := make([]Transition, n)
	for i, idx := range rng.Perm(m.size)[:n] {
		out[i] = m.At(idx)
	}
	return out
}
