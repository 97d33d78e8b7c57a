// Package agent implements the reinforcement-learning side of the snake
// game: state features, replay memory, an epsilon-greedy policy over a
// pluggable model, and the episode training loop.
package agent

import "github.com/vovakirdan/snake-arcade/internal/games/snake"

// Env is the environment the agent plays in. *snake.AIGame implements it.
type Env interface {
	Head() snake.Cell
	Food() snake.Cell
	Direction() snake.Direction
	Board() snake.Board
	IsCollision(c snake.Cell) bool
	PlayStep(a snake.Action) snake.Outcome
	Reset()
}

// StateSize is the number of features in a State.
const StateSize = 11

// State is the observation fed to the model, each feature 0 or 1:
//
//	[0..2]  danger straight, right, left (relative to heading)
//	[3..6]  heading left, right, up, down
//	[7..10] food left, right, up, down of the head
type State [StateSize]int

// StateOf builds the observation for the environment's current position.
func StateOf(env Env) State {
	head := env.Head()
	block := env.Board().Block
	dir := env.Direction()
	food := env.Food()

	danger := func(d snake.Direction) bool {
		return env.IsCollision(head.Move(d, block))
	}

	return State{
		b2i(danger(dir)),
		b2i(danger(dir.Clockwise())),
		b2i(danger(dir.CounterClockwise())),

		b2i(dir == snake.DirLeft),
		b2i(dir == snake.DirRight),
		b2i(dir == snake.DirUp),
		b2i(dir == snake.DirDown),

		b2i(food.X < head.X),
		b2i(food.X > head.X),
		b2i(food.Y < head.Y),
		b2i(food.Y > head.Y),
	}
}

// Key packs the state into a bitmask, feature 0 in the lowest bit.
func (s State) Key() uint16 {
	var k uint16
	for i, v := range s {
		if v != 0 {
			k |= 1 << i
		}
	}
	return k
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
