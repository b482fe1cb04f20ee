package session

import (
	"errors"
	"time"

	"github.com/wricardo/battleship-game/game/coord"
	"github.com/wricardo/battleship-game/game/engine"
)

var (
	ErrWrongPhase       = errors.New("action not allowed in the current phase")
	ErrFleetComplete    = errors.New("fleet already placed")
	ErrPlacementStarted = errors.New("player already started placing ships")
	ErrUnknownPlayer    = errors.New("unknown player")
)

// PlayerID identifies one of the two players in a match
type PlayerID int

const (
	PlayerOne PlayerID = iota
	PlayerTwo
)

// Players lists both players in turn order
var Players = [...]PlayerID{PlayerOne, PlayerTwo}

func (p PlayerID) String() string {
	switch p {
	case PlayerOne:
		return "Player 1"
	case PlayerTwo:
		return "Player 2"
	}
	return "Unknown player"
}

// Opponent returns the other player
func (p PlayerID) Opponent() PlayerID {
	if p == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

func (p PlayerID) valid() bool {
	return p == PlayerOne || p == PlayerTwo
}

// Phase is the stage a match is in
type Phase int

const (
	PhasePlacement Phase = iota
	PhaseBattle
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhasePlacement:
		return "placement"
	case PhaseBattle:
		return "battle"
	case PhaseFinished:
		return "finished"
	}
	return "unknown"
}

// ShotResult describes the outcome of a single shot
type ShotResult struct {
	Shooter PlayerID
	Target  coord.Position
	Outcome engine.ShotOutcome
	Sunk    *engine.ShipClass // set when the shot sank a ship
	Won     bool
}

// ShotRecord represents a single shot in the match history
type ShotRecord struct {
	Number    int                `json:"number"`
	Shooter   PlayerID           `json:"shooter"`
	Target    coord.Position     `json:"target"`
	Outcome   engine.ShotOutcome `json:"outcome"`
	Sunk      string             `json:"sunk,omitempty"`
	Timestamp int64              `json:"timestamp"`
}

func newShotRecord(number int, result *ShotResult) ShotRecord {
	record := ShotRecord{
		Number:    number,
		Shooter:   result.Shooter,
		Target:    result.Target,
		Outcome:   result.Outcome,
		Timestamp: time.Now().Unix(),
	}
	if result.Sunk != nil {
		record.Sunk = result.Sunk.Name
	}
	return record
}
