// Package engine provides the board model and rule engine for Battleship.
//
// The engine package implements:
//   - A fixed 10x10 grid of cell states (empty, occupied, hit, missed)
//   - Ship placement validation: orientation, size, bounds, non-adjacency
//   - Shot resolution into hit or miss outcomes
//   - Ship health and board defeat queries
//   - Read-only projections of the grid for rendering
//
// Core Types:
//
// Board owns the grid and the roster of placed ships. Ship records its class
// and the coordinates it occupies; its remaining health is derived from the
// owning board's cells. ShipClass describes one of the five fixed fleet
// classes returned by Fleet.
//
// Usage:
//
//	board := engine.NewBoard()
//	err := board.PlaceShip(coord.Position{X: 0, Y: 0}, coord.Position{X: 4, Y: 0}, engine.AircraftCarrier)
//	if err != nil {
//		// errors.Is(err, engine.ErrAdjacentShip) etc.
//	}
//
//	outcome, err := board.Shoot(coord.Position{X: 2, Y: 0})
//	sunk := board.RemoveSunkShips()
//	if board.IsDefeated() {
//		// game over
//	}
//
// Placement Rules:
//
// A ship lies horizontally or vertically, spans exactly as many cells as its
// class size, stays inside the board, and neither overlaps nor orthogonally
// touches another ship. Diagonal contact is allowed. A failed placement never
// modifies the board.
//
// The engine does not enforce fleet composition or placement order; that is
// the job of the session layer.
package engine
