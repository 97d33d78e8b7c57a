package snake

// Cell is a grid coordinate in pixel-space units (multiples of the block size).
type Cell struct {
	X, Y int
}

// NoFood marks a board with no free cell left for food.
var NoFood = Cell{X: -1, Y: -1}

// Move returns the cell one block away in direction d.
func (c Cell) Move(d Direction, block int) Cell {
	dx, dy := d.Offset(block)
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Board is the playing field. Coordinates range over
// [0, Width-Block] × [0, Height-Block] in steps of Block.
type Board struct {
	Width  int
	Height int
	Block  int
}

// Contains reports whether c lies inside the board.
func (b Board) Contains(c Cell) bool {
	return c.X >= 0 && c.X <= b.Width-b.Block && c.Y >= 0 && c.Y <= b.Height-b.Block
}

// Cols returns the number of block columns.
func (b Board) Cols() int {
	return (b.Width-b.Block)/b.Block + 1
}

// Rows returns the number of block rows.
func (b Board) Rows() int {
	return (b.Height-b.Block)/b.Block + 1
}

// Center returns the board center snapped down onto the block grid.
func (b Board) Center() Cell {
	return Cell{
		X: (b.Width / 2) / b.Block * b.Block,
		Y: (b.Height / 2) / b.Block * b.Block,
	}
}

// CellAt converts a column/row pair into board coordinates.
func (b Board) CellAt(col, row int) Cell {
	return Cell{X: col * b.Block, Y: row * b.Block}
}

// GridPos converts board coordinates into a column/row pair.
func (b Board) GridPos(c Cell) (col, row int) {
	return c.X / b.Block, c.Y / b.Block
}
