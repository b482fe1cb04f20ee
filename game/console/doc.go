// Package console plays a hotseat Battleship match on a terminal.
//
// Two players share one keyboard. Each places a fleet, either by typing the
// bow and stern of every ship ("A1 A5") or from a preset layout, and then
// they alternate shots ("E4") until one fleet is sunk. A pause between moves
// lets the screen be handed over without revealing the previous board.
package console
