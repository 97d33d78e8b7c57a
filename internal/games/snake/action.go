package snake

import (
	"errors"
	"fmt"
)

// ErrInvalidAction is returned by ParseAction for vectors that are not one-hot over three moves.
var ErrInvalidAction = errors.New("snake: action must be one-hot of length 3")

// Action is the AI variant's input: a one-hot vector over
// {straight, right turn, left turn} relative to the current heading.
type Action [3]int

var (
	ActionStraight = Action{1, 0, 0}
	ActionRight    = Action{0, 1, 0}
	ActionLeft     = Action{0, 0, 1}
)

// Actions lists the moves in vector index order.
var Actions = [3]Action{ActionStraight, ActionRight, ActionLeft}

// ActionFromIndex returns the one-hot action with index i set.
func ActionFromIndex(i int) Action {
	var a Action
	a[i] = 1
	return a
}

// ParseAction validates a raw action vector.
func ParseAction(v []int) (Action, error) {
	var a Action
	if len(v) != len(a) {
		return a, fmt.Errorf("%w: got length %d", ErrInvalidAction, len(v))
	}
	ones := 0
	for i, x := range v {
		switch x {
		case 0:
		case 1:
			ones++
		default:
			return a, fmt.Errorf("%w: element %d is %d", ErrInvalidAction, i, x)
		}
		a[i] = x
	}
	if ones != 1 {
		return a, fmt.Errorf("%w: %d elements set", ErrInvalidAction, ones)
	}
	return a, nil
}

// Index returns the position of the set element. Vectors that are neither
// straight nor a right turn count as a left turn.
func (a Action) Index() int {
	switch a {
	case ActionStraight:
		return 0
	case ActionRight:
		return 1
	default:
		return 2
	}
}

// Apply returns the absolute heading produced by taking a while facing d.
// A reversal is impossible by construction.
func (a Action) Apply(d Direction) Direction {
	switch a.Index() {
	case 0:
		return d
	case 1:
		return d.Clockwise()
	default:
		return d.CounterClockwise()
	}
}

func (a Action) String() string {
	switch a.Index() {
	case 0:
		return "straight"
	case 1:
		return "right"
	default:
		return "left"
	}
}
