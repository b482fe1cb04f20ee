package engine

import (
	"fmt"

	"github.com/wricardo/battleship-game/game/coord"
)

// Board is one player's grid and the ships placed on it
type Board struct {
	grid  Grid
	ships []*Ship
}

// NewBoard creates an empty board with no ships
func NewBoard() *Board {
	return &Board{
		ships: []*Ship{},
	}
}

// InBounds reports whether the position lies on the board
func InBounds(p coord.Position) bool {
	return p.X >= 0 && p.X < BoardSize && p.Y >= 0 && p.Y < BoardSize
}

// Shoot resolves a shot at the given position. Shooting a cell that was
// already hit reports a hit again, and shooting a missed cell reports a miss
// again; neither changes the board.
func (b *Board) Shoot(p coord.Position) (ShotOutcome, error) {
	if !InBounds(p) {
		return ShotMiss, fmt.Errorf("%w: shot at (%d,%d)", ErrOutOfBounds, p.X, p.Y)
	}

	cell := &b.grid[p.Y][p.X]
	switch *cell {
	case Occupied:
		*cell = Hit
		return ShotHit, nil
	case Hit:
		return ShotHit, nil
	default:
		*cell = Missed
		return ShotMiss, nil
	}
}

// CellStateAt returns the true state of a single cell
func (b *Board) CellStateAt(p coord.Position) (CellState, error) {
	if !InBounds(p) {
		return Empty, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, p.X, p.Y)
	}
	return b.grid[p.Y][p.X], nil
}

// VisibleGrid returns a copy of the board with every cell in its true state
func (b *Board) VisibleGrid() Grid {
	return b.grid
}

// FogOfWarGrid returns a copy of the board as the opponent sees it: ship
// cells that have not been hit are reported as empty
func (b *Board) FogOfWarGrid() Grid {
	fog := b.grid
	for y := range fog {
		for x := range fog[y] {
			if fog[y][x] == Occupied {
				fog[y][x] = Empty
			}
		}
	}
	return fog
}

// Roster returns the ships still on the board in placement order
func (b *Board) Roster() []*Ship {
	ships := make([]*Ship, len(b.ships))
	copy(ships, b.ships)
	return ships
}

// ShipsRemaining returns the number of ships on the roster
func (b *Board) ShipsRemaining() int {
	return len(b.ships)
}

// RemoveSunkShips removes every sunk ship from the roster and returns them
// in roster order. A single shot hits one cell, so at most one ship is
// removed per shot.
func (b *Board) RemoveSunkShips() []*Ship {
	var sunk []*Ship
	kept := make([]*Ship, 0, len(b.ships))
	for _, ship := range b.ships {
		if ship.IsSunk() {
			sunk = append(sunk, ship)
			continue
		}
		kept = append(kept, ship)
	}
	b.ships = kept
	return sunk
}

// IsDefeated reports whether the board has no ships left afloat
func (b *Board) IsDefeated() bool {
	for _, ship := range b.ships {
		if !ship.IsSunk() {
			return false
		}
	}
	return true
}
