// Package render draws engine grids as plain text.
package render

import (
	"strconv"
	"strings"

	"github.com/wricardo/battleship-game/game/engine"
)

// Separator is printed between the opponent's view and the player's own board
const Separator = "---------------------"

// Symbol returns the single character drawn for a cell state
func Symbol(state engine.CellState) string {
	switch state {
	case engine.Occupied:
		return "O"
	case engine.Hit:
		return "X"
	case engine.Missed:
		return "M"
	default:
		return "~"
	}
}

// Grid draws a grid with numbered columns and lettered rows
func Grid(g engine.Grid) string {
	var sb strings.Builder

	sb.WriteString(" ")
	for x := 1; x <= engine.BoardSize; x++ {
		sb.WriteString(" ")
		sb.WriteString(strconv.Itoa(x))
	}
	sb.WriteString("\n")

	for y := 0; y < engine.BoardSize; y++ {
		sb.WriteByte(byte('A' + y))
		sb.WriteString(" ")
		for x := 0; x < engine.BoardSize; x++ {
			sb.WriteString(Symbol(g[y][x]))
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// Turn draws what a player sees on their turn: the opponent's board under
// fog of war, a separator, then their own board
func Turn(opponent, own engine.Grid) string {
	return Grid(opponent) + Separator + "\n" + Grid(own)
}
