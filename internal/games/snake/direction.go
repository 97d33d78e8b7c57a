package snake

import "github.com/vovakirdan/snake-arcade/internal/core"

// Direction represents the snake's heading.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// clockwise is the fixed turn order; turning rotates an index into it.
var clockwise = [4]Direction{DirRight, DirDown, DirLeft, DirUp}

func (d Direction) index() int {
	for i, c := range clockwise {
		if c == d {
			return i
		}
	}
	return 0
}

func (d Direction) rotate(steps int) Direction {
	n := len(clockwise)
	return clockwise[((d.index()+steps)%n+n)%n]
}

// Clockwise returns the heading after a right turn.
func (d Direction) Clockwise() Direction {
	return d.rotate(1)
}

// CounterClockwise returns the heading after a left turn.
func (d Direction) CounterClockwise() Direction {
	return d.rotate(-1)
}

// Offset returns the unit step for the heading, scaled by block.
func (d Direction) Offset(block int) (dx, dy int) {
	switch d {
	case DirRight:
		return block, 0
	case DirLeft:
		return -block, 0
	case DirUp:
		return 0, -block
	case DirDown:
		return 0, block
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ResolveDirection picks the heading for the next human move: the last arrow
// pressed this frame, or the current heading when no arrow was pressed.
func ResolveDirection(current Direction, in core.InputFrame) Direction {
	switch in.Direction {
	case core.ActionUp:
		return DirUp
	case core.ActionDown:
		return DirDown
	case core.ActionLeft:
		return DirLeft
	case core.ActionRight:
		return DirRight
	}
	return current
}
