package engine

import "github.com/wricardo/battleship-game/game/coord"

// Ship is a placed ship. It stores the coordinates it occupies; cell states
// live on the board that created it.
type Ship struct {
	class ShipClass
	cells []coord.Position
	grid  *Grid
}

// Name returns the ship's class name
func (s *Ship) Name() string {
	return s.class.Name
}

// Size returns the ship's maximum health
func (s *Ship) Size() int {
	return s.class.Size
}

// Class returns the ship's fleet class
func (s *Ship) Class() ShipClass {
	return s.class
}

// Cells returns the ship's coordinates in placement order
func (s *Ship) Cells() []coord.Position {
	cells := make([]coord.Position, len(s.cells))
	copy(cells, s.cells)
	return cells
}

// RemainingHealth counts the ship's cells that have not been hit
func (s *Ship) RemainingHealth() int {
	health := 0
	for _, c := range s.cells {
		if s.grid[c.Y][c.X] != Hit {
			health++
		}
	}
	return health
}

// IsSunk reports whether every cell of the ship has been hit
func (s *Ship) IsSunk() bool {
	return s.RemainingHealth() == 0
}
