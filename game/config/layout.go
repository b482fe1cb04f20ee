package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/wricardo/battleship-game/game/coord"
	"github.com/wricardo/battleship-game/game/engine"
)

var ErrShipMissing = errors.New("ship missing from layout")

// ShipPlacement places one fleet class between two coordinates in human notation
type ShipPlacement struct {
	Class string `json:"class"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// Layout is a complete fleet placement loaded from JSON
type Layout struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Ships       []ShipPlacement `json:"ships"`
}

// Placement returns the decoded start and end of the given class
func (l *Layout) Placement(class engine.ShipClass) (coord.Position, coord.Position, error) {
	for _, ship := range l.Ships {
		c, ok := engine.ClassByName(ship.Class)
		if !ok || c != class {
			continue
		}

		start, err := coord.Decode(ship.Start)
		if err != nil {
			return coord.Position{}, coord.Position{}, fmt.Errorf("%s start: %w", class.Name, err)
		}
		end, err := coord.Decode(ship.End)
		if err != nil {
			return coord.Position{}, coord.Position{}, fmt.Errorf("%s end: %w", class.Name, err)
		}
		return start, end, nil
	}

	return coord.Position{}, coord.Position{}, fmt.Errorf("%w: %s", ErrShipMissing, class.Name)
}

// PlaceOn places every ship of the layout on the board in fleet order
func (l *Layout) PlaceOn(board *engine.Board) error {
	for _, class := range engine.Fleet() {
		start, end, err := l.Placement(class)
		if err != nil {
			return err
		}
		if err := board.PlaceShip(start, end, class); err != nil {
			return fmt.Errorf("%s: %w", class.Name, err)
		}
	}
	return nil
}

// ValidateLayout checks that a layout names every fleet class exactly once
// and that the whole fleet can be legally placed
func ValidateLayout(layout *Layout) error {
	if layout == nil {
		return fmt.Errorf("layout validation: layout is nil")
	}
	if layout.Name == "" {
		return fmt.Errorf("layout validation: name is required")
	}

	fleet := engine.Fleet()
	if len(layout.Ships) != len(fleet) {
		return fmt.Errorf("layout validation: expected %d ships, got %d", len(fleet), len(layout.Ships))
	}

	seen := make(map[string]bool, len(fleet))
	for i, ship := range layout.Ships {
		class, ok := engine.ClassByName(ship.Class)
		if !ok {
			return fmt.Errorf("layout validation: ship %d has unknown class %q", i+1, ship.Class)
		}
		if seen[class.Name] {
			return fmt.Errorf("layout validation: %s listed more than once", class.Name)
		}
		seen[class.Name] = true
	}

	if err := layout.PlaceOn(engine.NewBoard()); err != nil {
		return fmt.Errorf("layout validation: %w", err)
	}

	return nil
}

// LoadLayoutFile reads, parses and validates a layout file
func LoadLayoutFile(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var layout Layout
	if err := json.Unmarshal(data, &layout); err != nil {
		return nil, err
	}

	if err := ValidateLayout(&layout); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}

	return &layout, nil
}
