// Package session orchestrates a two-player Battleship match on top of the
// engine.
//
// The session package implements:
//   - The fixed fleet placement order for each player
//   - Whole-fleet placement from layout presets
//   - Turn sequencing between the two players
//   - Sinking detection and roster pruning after every shot
//   - Winner detection and shot history
//
// Lifecycle:
//
// A Match starts in PhasePlacement. Once both players have placed the
// complete fleet it moves to PhaseBattle, where Fire shoots on behalf of the
// player whose turn it is. The turn passes after every resolved shot, hit or
// miss. When a shot leaves the opponent without ships the match moves to
// PhaseFinished and the shooter is the winner.
//
// Usage:
//
//	match := session.NewMatch(log.Logger)
//	class, err := match.PlaceNext(session.PlayerOne, start, end)
//	err = match.UseLayout(session.PlayerTwo, layout)
//
//	result, err := match.Fire(coord.Position{X: 4, Y: 2})
//	if result.Won {
//		// result.Shooter won the match
//	}
//
// Every error is recoverable: a rejected placement or an out of bounds shot
// leaves the match unchanged so the caller can ask again.
package session
