package engine

import (
	"errors"
	"testing"

	"github.com/wricardo/battleship-game/game/coord"
)

func pos(x, y int) coord.Position {
	return coord.Position{X: x, Y: y}
}

// placeOrFail places a ship and fails the test on error
func placeOrFail(t *testing.T, b *Board, start, end coord.Position, class ShipClass) {
	t.Helper()
	if err := b.PlaceShip(start, end, class); err != nil {
		t.Fatalf("Failed to place %s from %v to %v: %v", class.Name, start, end, err)
	}
}

func TestNewBoard(t *testing.T) {
	board := NewBoard()

	if board == nil {
		t.Fatal("Expected board to be non-nil")
	}

	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			state, err := board.CellStateAt(pos(x, y))
			if err != nil {
				t.Fatalf("CellStateAt(%d,%d) returned error: %v", x, y, err)
			}
			if state != Empty {
				t.Errorf("Expected cell (%d,%d) to be empty, got %s", x, y, state)
			}
		}
	}

	if len(board.Roster()) != 0 {
		t.Errorf("Expected empty roster, got %d ships", len(board.Roster()))
	}
	if !board.IsDefeated() {
		t.Error("Expected a board without ships to count as defeated")
	}
}

func TestShoot(t *testing.T) {
	t.Run("hit occupied cell twice", func(t *testing.T) {
		board := NewBoard()
		placeOrFail(t, board, pos(0, 0), pos(1, 0), Destroyer)

		outcome, err := board.Shoot(pos(0, 0))
		if err != nil {
			t.Fatalf("Shoot returned error: %v", err)
		}
		if outcome != ShotHit {
			t.Errorf("Expected hit, got %s", outcome)
		}
		if state, _ := board.CellStateAt(pos(0, 0)); state != Hit {
			t.Errorf("Expected cell state hit, got %s", state)
		}

		before := board.VisibleGrid()
		outcome, err = board.Shoot(pos(0, 0))
		if err != nil {
			t.Fatalf("Second shot returned error: %v", err)
		}
		if outcome != ShotHit {
			t.Errorf("Expected repeated shot to report hit, got %s", outcome)
		}
		if board.VisibleGrid() != before {
			t.Error("Expected repeated hit to leave the board unchanged")
		}
	})

	t.Run("miss empty cell twice", func(t *testing.T) {
		board := NewBoard()

		outcome, err := board.Shoot(pos(5, 5))
		if err != nil {
			t.Fatalf("Shoot returned error: %v", err)
		}
		if outcome != ShotMiss {
			t.Errorf("Expected miss, got %s", outcome)
		}
		if state, _ := board.CellStateAt(pos(5, 5)); state != Missed {
			t.Errorf("Expected cell state missed, got %s", state)
		}

		outcome, _ = board.Shoot(pos(5, 5))
		if outcome != ShotMiss {
			t.Errorf("Expected repeated shot to report miss, got %s", outcome)
		}
		if state, _ := board.CellStateAt(pos(5, 5)); state != Missed {
			t.Errorf("Expected cell to stay missed, got %s", state)
		}
	})

	t.Run("out of bounds", func(t *testing.T) {
		board := NewBoard()
		for _, p := range []coord.Position{pos(-1, 0), pos(0, -1), pos(10, 0), pos(0, 10), pos(25, 98)} {
			if _, err := board.Shoot(p); !errors.Is(err, ErrOutOfBounds) {
				t.Errorf("Shoot(%+v): expected ErrOutOfBounds, got %v", p, err)
			}
		}
		if board.VisibleGrid() != (Grid{}) {
			t.Error("Expected out of bounds shots to leave the board unchanged")
		}
	})
}

func TestShipHealthAndDefeat(t *testing.T) {
	board := NewBoard()
	placeOrFail(t, board, pos(3, 4), pos(3, 5), Destroyer)

	ship := board.Roster()[0]
	if ship.RemainingHealth() != 2 {
		t.Errorf("Expected health 2, got %d", ship.RemainingHealth())
	}

	board.Shoot(pos(3, 4))
	if ship.RemainingHealth() != 1 {
		t.Errorf("Expected health 1 after one hit, got %d", ship.RemainingHealth())
	}
	if ship.IsSunk() {
		t.Error("Expected ship not to be sunk after one hit")
	}
	if board.IsDefeated() {
		t.Error("Expected board not to be defeated with a ship afloat")
	}

	board.Shoot(pos(3, 5))
	if ship.RemainingHealth() != 0 {
		t.Errorf("Expected health 0, got %d", ship.RemainingHealth())
	}
	if !ship.IsSunk() {
		t.Error("Expected ship to be sunk")
	}
	if !board.IsDefeated() {
		t.Error("Expected board to be defeated once its last ship is sunk")
	}

	sunk := board.RemoveSunkShips()
	if len(sunk) != 1 || sunk[0].Name() != Destroyer.Name {
		t.Fatalf("Expected the destroyer to be removed, got %d ships", len(sunk))
	}
	if board.ShipsRemaining() != 0 {
		t.Errorf("Expected empty roster, got %d", board.ShipsRemaining())
	}
	if !board.IsDefeated() {
		t.Error("Expected empty roster to be defeated")
	}
}

func TestRemoveSunkShips(t *testing.T) {
	board := NewBoard()
	placeOrFail(t, board, pos(0, 0), pos(4, 0), AircraftCarrier)
	placeOrFail(t, board, pos(0, 2), pos(1, 2), Destroyer)
	placeOrFail(t, board, pos(9, 9), pos(9, 7), Cruiser)

	if removed := board.RemoveSunkShips(); len(removed) != 0 {
		t.Errorf("Expected nothing removed, got %d", len(removed))
	}

	board.Shoot(pos(0, 2))
	board.Shoot(pos(1, 2))
	removed := board.RemoveSunkShips()
	if len(removed) != 1 || removed[0].Name() != Destroyer.Name {
		t.Fatalf("Expected only the destroyer removed, got %v", removed)
	}

	roster := board.Roster()
	if len(roster) != 2 {
		t.Fatalf("Expected 2 ships left, got %d", len(roster))
	}
	if roster[0].Name() != AircraftCarrier.Name || roster[1].Name() != Cruiser.Name {
		t.Errorf("Expected roster order preserved, got %s, %s", roster[0].Name(), roster[1].Name())
	}

	// Sunk cells keep their hit state after pruning
	if state, _ := board.CellStateAt(pos(0, 2)); state != Hit {
		t.Errorf("Expected pruned ship cells to stay hit, got %s", state)
	}
}

func TestRosterIsACopy(t *testing.T) {
	board := NewBoard()
	placeOrFail(t, board, pos(0, 0), pos(1, 0), Destroyer)

	roster := board.Roster()
	roster[0] = nil

	if board.ShipsRemaining() != 1 || board.Roster()[0] == nil {
		t.Error("Expected roster mutations not to affect the board")
	}

	cells := board.Roster()[0].Cells()
	cells[0] = pos(9, 9)
	if board.Roster()[0].Cells()[0] != pos(0, 0) {
		t.Error("Expected Cells to return a copy")
	}
}

func TestGridProjections(t *testing.T) {
	board := NewBoard()
	placeOrFail(t, board, pos(0, 0), pos(0, 2), Submarine)
	board.Shoot(pos(0, 1))
	board.Shoot(pos(5, 5))

	visible := board.VisibleGrid()
	if visible[0][0] != Occupied || visible[1][0] != Hit || visible[5][5] != Missed {
		t.Errorf("Unexpected visible grid: %v %v %v", visible[0][0], visible[1][0], visible[5][5])
	}

	fog := board.FogOfWarGrid()
	if fog[0][0] != Empty {
		t.Errorf("Expected fog of war to hide occupied cell, got %s", fog[0][0])
	}
	if fog[2][0] != Empty {
		t.Errorf("Expected fog of war to hide occupied cell, got %s", fog[2][0])
	}
	if fog[1][0] != Hit {
		t.Errorf("Expected fog of war to show hit, got %s", fog[1][0])
	}
	if fog[5][5] != Missed {
		t.Errorf("Expected fog of war to show miss, got %s", fog[5][5])
	}

	// Projections are copies
	visible[0][0] = Missed
	fog[1][0] = Empty
	if state, _ := board.CellStateAt(pos(0, 0)); state != Occupied {
		t.Error("Expected VisibleGrid to return a copy")
	}
	if state, _ := board.CellStateAt(pos(0, 1)); state != Hit {
		t.Error("Expected FogOfWarGrid to return a copy")
	}
}

func TestCellStateAtOutOfBounds(t *testing.T) {
	board := NewBoard()
	if _, err := board.CellStateAt(pos(10, 3)); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Expected ErrOutOfBounds, got %v", err)
	}
}

func TestFleet(t *testing.T) {
	classes := Fleet()
	expected := []ShipClass{
		{"Aircraft Carrier", 5},
		{"Battleship", 4},
		{"Submarine", 3},
		{"Cruiser", 3},
		{"Destroyer", 2},
	}

	if len(classes) != len(expected) {
		t.Fatalf("Expected %d classes, got %d", len(expected), len(classes))
	}
	for i, class := range expected {
		if classes[i] != class {
			t.Errorf("Class %d: expected %+v, got %+v", i, class, classes[i])
		}
	}

	classes[0].Size = 1
	if Fleet()[0].Size != 5 {
		t.Error("Expected Fleet to return a fresh copy")
	}

	if FleetCells() != 17 {
		t.Errorf("Expected 17 fleet cells, got %d", FleetCells())
	}
}

func TestClassByName(t *testing.T) {
	class, ok := ClassByName("  aircraft carrier ")
	if !ok || class != AircraftCarrier {
		t.Errorf("Expected aircraft carrier, got %+v (%v)", class, ok)
	}

	if _, ok := ClassByName("Frigate"); ok {
		t.Error("Expected unknown class to be rejected")
	}
}

func TestStrings(t *testing.T) {
	states := map[CellState]string{Empty: "empty", Occupied: "occupied", Hit: "hit", Missed: "missed", CellState(42): "unknown"}
	for state, want := range states {
		if state.String() != want {
			t.Errorf("Expected %q, got %q", want, state.String())
		}
	}
	if ShotHit.String() != "hit" || ShotMiss.String() != "miss" {
		t.Errorf("Unexpected outcome strings: %s, %s", ShotHit, ShotMiss)
	}
}
