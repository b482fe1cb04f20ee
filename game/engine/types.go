package engine

import (
	"errors"
	"strings"
)

// BoardSize is the width and height of every board
const BoardSize = 10

var (
	ErrOutOfBounds            = errors.New("coordinate out of bounds")
	ErrDiagonalOrInvalidShape = errors.New("ship must be placed in a straight horizontal or vertical line")
	ErrSizeMismatch           = errors.New("ship length does not match its class")
	ErrAdjacentShip           = errors.New("ship overlaps or touches another ship")
)

// CellState represents the state of a single grid cell
type CellState int

const (
	Empty CellState = iota
	Occupied
	Hit
	Missed
)

func (s CellState) String() string {
	switch s {
	case Empty:
		return "empty"
	case Occupied:
		return "occupied"
	case Hit:
		return "hit"
	case Missed:
		return "missed"
	}
	return "unknown"
}

// ShotOutcome is the result of a resolved shot
type ShotOutcome int

const (
	ShotMiss ShotOutcome = iota
	ShotHit
)

func (o ShotOutcome) String() string {
	if o == ShotHit {
		return "hit"
	}
	return "miss"
}

// Grid is a snapshot of cell states indexed [y][x]. It is an array, so
// assigning or returning it copies every cell.
type Grid [BoardSize][BoardSize]CellState

// ShipClass is one of the fixed fleet types
type ShipClass struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

var (
	AircraftCarrier = ShipClass{Name: "Aircraft Carrier", Size: 5}
	Battleship      = ShipClass{Name: "Battleship", Size: 4}
	Submarine       = ShipClass{Name: "Submarine", Size: 3}
	Cruiser         = ShipClass{Name: "Cruiser", Size: 3}
	Destroyer       = ShipClass{Name: "Destroyer", Size: 2}
)

// fleet lists the classes every player places, in placement order
var fleet = [...]ShipClass{AircraftCarrier, Battleship, Submarine, Cruiser, Destroyer}

// Fleet returns the fixed fleet in the order ships are placed
func Fleet() []ShipClass {
	classes := make([]ShipClass, len(fleet))
	copy(classes, fleet[:])
	return classes
}

// ClassByName looks up a fleet class, ignoring case and surrounding spaces
func ClassByName(name string) (ShipClass, bool) {
	name = strings.TrimSpace(name)
	for _, class := range fleet {
		if strings.EqualFold(class.Name, name) {
			return class, true
		}
	}
	return ShipClass{}, false
}

// FleetCells returns the number of cells the whole fleet occupies
func FleetCells() int {
	total := 0
	for _, class := range fleet {
		total += class.Size
	}
	return total
}
