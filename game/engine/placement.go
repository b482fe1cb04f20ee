package engine

import (
	"fmt"

	"github.com/wricardo/battleship-game/game/coord"
)

// orthogonal neighbours checked for adjacency; diagonals may touch
var neighbours = []struct{ dx, dy int }{
	{0, -1}, // North
	{1, 0},  // East
	{0, 1},  // South
	{-1, 0}, // West
}

// PlaceShip validates and places a ship of the given class between start and
// end inclusive. Checks run in order: orientation, size, bounds, adjacency.
// The board is left untouched when any check fails.
func (b *Board) PlaceShip(start, end coord.Position, class ShipClass) error {
	if start.X != end.X && start.Y != end.Y {
		return fmt.Errorf("%w: %s from (%d,%d) to (%d,%d)",
			ErrDiagonalOrInvalidShape, class.Name, start.X, start.Y, end.X, end.Y)
	}

	if length := spanLength(start, end); length != class.Size {
		return fmt.Errorf("%w: %s needs %d cells, got %d", ErrSizeMismatch, class.Name, class.Size, length)
	}

	span := spanOf(start, end)
	for _, p := range span {
		if !InBounds(p) {
			return fmt.Errorf("%w: %s cell (%d,%d) is off the board", ErrOutOfBounds, class.Name, p.X, p.Y)
		}
	}

	for _, p := range span {
		if !b.isClear(p) {
			return fmt.Errorf("%w: %s at (%d,%d)", ErrAdjacentShip, class.Name, p.X, p.Y)
		}
	}

	for _, p := range span {
		b.grid[p.Y][p.X] = Occupied
	}
	b.ships = append(b.ships, &Ship{
		class: class,
		cells: span,
		grid:  &b.grid,
	})

	return nil
}

// isClear reports whether p is free of ships and has no ship directly
// above, below, left or right of it. Neighbours off the board are ignored.
func (b *Board) isClear(p coord.Position) bool {
	if b.grid[p.Y][p.X] == Occupied {
		return false
	}

	for _, n := range neighbours {
		q := coord.Position{X: p.X + n.dx, Y: p.Y + n.dy}
		if InBounds(q) && b.grid[q.Y][q.X] == Occupied {
			return false
		}
	}
	return true
}

// spanLength returns the inclusive number of cells between two positions
// that share a row or column
func spanLength(start, end coord.Position) int {
	return abs(end.X-start.X) + abs(end.Y-start.Y) + 1
}

// spanOf lists the cells from start to end inclusive, in that direction
func spanOf(start, end coord.Position) []coord.Position {
	dx, dy := sign(end.X-start.X), sign(end.Y-start.Y)
	length := spanLength(start, end)

	cells := make([]coord.Position, 0, length)
	for i := 0; i < length; i++ {
		cells = append(cells, coord.Position{X: start.X + i*dx, Y: start.Y + i*dy})
	}
	return cells
}

// abs returns the absolute value of x
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
