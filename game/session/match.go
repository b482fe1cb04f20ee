package session

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/wricardo/battleship-game/game/config"
	"github.com/wricardo/battleship-game/game/coord"
	"github.com/wricardo/battleship-game/game/engine"
)

// Match drives one hotseat game between two players: each places the fixed
// fleet in order, then they take turns shooting at each other's board until
// one board is defeated.
type Match struct {
	id     string
	boards [2]*engine.Board
	placed [2]int
	phase  Phase
	turn   PlayerID
	winner PlayerID
	shots  []ShotRecord
	logger zerolog.Logger
}

// NewMatch creates a match in the placement phase with Player 1 to shoot first
func NewMatch(logger zerolog.Logger) *Match {
	id := uuid.NewString()[:8]
	return &Match{
		id:     id,
		boards: [2]*engine.Board{engine.NewBoard(), engine.NewBoard()},
		phase:  PhasePlacement,
		turn:   PlayerOne,
		shots:  []ShotRecord{},
		logger: logger.With().Str("match", id).Logger(),
	}
}

// ID returns the match identifier
func (m *Match) ID() string {
	return m.id
}

// Phase returns the current phase
func (m *Match) Phase() Phase {
	return m.phase
}

// Turn returns the player whose turn it is to shoot
func (m *Match) Turn() PlayerID {
	return m.turn
}

// Winner returns the winning player once the match is finished
func (m *Match) Winner() (PlayerID, bool) {
	if m.phase != PhaseFinished {
		return PlayerOne, false
	}
	return m.winner, true
}

// Board returns the player's own board
func (m *Match) Board(p PlayerID) *engine.Board {
	if !p.valid() {
		return nil
	}
	return m.boards[p]
}

// View returns what the player may see: their own board in full and the
// opponent's board under fog of war
func (m *Match) View(p PlayerID) (own, opponent engine.Grid) {
	if !p.valid() {
		return engine.Grid{}, engine.Grid{}
	}
	return m.boards[p].VisibleGrid(), m.boards[p.Opponent()].FogOfWarGrid()
}

// Shots returns the match history in order
func (m *Match) Shots() []ShotRecord {
	shots := make([]ShotRecord, len(m.shots))
	copy(shots, m.shots)
	return shots
}

// NextShip returns the class the player must place next, or false once
// their fleet is complete
func (m *Match) NextShip(p PlayerID) (engine.ShipClass, bool) {
	if !p.valid() {
		return engine.ShipClass{}, false
	}
	fleet := engine.Fleet()
	if m.placed[p] >= len(fleet) {
		return engine.ShipClass{}, false
	}
	return fleet[m.placed[p]], true
}

// PlaceNext places the player's next ship between start and end. Engine
// placement errors are returned unchanged so callers can tell them apart.
func (m *Match) PlaceNext(p PlayerID, start, end coord.Position) (engine.ShipClass, error) {
	if !p.valid() {
		return engine.ShipClass{}, fmt.Errorf("%w: %d", ErrUnknownPlayer, p)
	}
	if m.phase != PhasePlacement {
		return engine.ShipClass{}, fmt.Errorf("%w: cannot place ships during %s", ErrWrongPhase, m.phase)
	}

	class, ok := m.NextShip(p)
	if !ok {
		return engine.ShipClass{}, fmt.Errorf("%w: %s", ErrFleetComplete, p)
	}

	if err := m.boards[p].PlaceShip(start, end, class); err != nil {
		m.logger.Debug().Err(err).Str("player", p.String()).Str("ship", class.Name).Msg("placement rejected")
		return class, err
	}

	m.placed[p]++
	m.logger.Debug().
		Str("player", p.String()).
		Str("ship", class.Name).
		Str("start", start.String()).
		Str("end", end.String()).
		Msg("ship placed")

	m.startBattleIfReady()
	return class, nil
}

// UseLayout places the player's whole fleet from a preset. It is only
// allowed before the player has placed any ship and leaves the board empty
// if the layout does not fit.
func (m *Match) UseLayout(p PlayerID, layout *config.Layout) error {
	if !p.valid() {
		return fmt.Errorf("%w: %d", ErrUnknownPlayer, p)
	}
	if m.phase != PhasePlacement {
		return fmt.Errorf("%w: cannot place ships during %s", ErrWrongPhase, m.phase)
	}
	if m.placed[p] != 0 {
		return fmt.Errorf("%w: %s", ErrPlacementStarted, p)
	}

	board := engine.NewBoard()
	if err := layout.PlaceOn(board); err != nil {
		return fmt.Errorf("layout %q: %w", layout.Name, err)
	}

	m.boards[p] = board
	m.placed[p] = len(engine.Fleet())
	m.logger.Debug().Str("player", p.String()).Str("layout", layout.Name).Msg("fleet placed from layout")

	m.startBattleIfReady()
	return nil
}

func (m *Match) startBattleIfReady() {
	fleetSize := len(engine.Fleet())
	if m.placed[PlayerOne] == fleetSize && m.placed[PlayerTwo] == fleetSize {
		m.phase = PhaseBattle
		m.logger.Info().Msg("both fleets placed, battle begins")
	}
}

// Fire shoots at the opponent of the player whose turn it is. An out of
// bounds target is returned as an error and the turn does not pass.
func (m *Match) Fire(target coord.Position) (*ShotResult, error) {
	if m.phase != PhaseBattle {
		return nil, fmt.Errorf("%w: cannot shoot during %s", ErrWrongPhase, m.phase)
	}

	shooter := m.turn
	board := m.boards[shooter.Opponent()]

	outcome, err := board.Shoot(target)
	if err != nil {
		return nil, err
	}

	result := &ShotResult{
		Shooter: shooter,
		Target:  target,
		Outcome: outcome,
	}

	if sunk := board.RemoveSunkShips(); len(sunk) > 0 {
		class := sunk[0].Class()
		result.Sunk = &class
		m.logger.Info().Str("player", shooter.String()).Str("ship", class.Name).Msg("ship sunk")
	}

	if board.IsDefeated() {
		result.Won = true
		m.phase = PhaseFinished
		m.winner = shooter
		m.logger.Info().Str("winner", shooter.String()).Int("shots", len(m.shots)+1).Msg("match finished")
	} else {
		m.turn = shooter.Opponent()
	}

	m.shots = append(m.shots, newShotRecord(len(m.shots)+1, result))
	m.logger.Debug().
		Str("player", shooter.String()).
		Str("target", target.String()).
		Str("outcome", outcome.String()).
		Msg("shot resolved")

	return result, nil
}
