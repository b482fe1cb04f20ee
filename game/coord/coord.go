// Package coord converts between human board notation ("C7") and zero-based
// grid positions.
//
// Rows are letters starting at A, columns are numbers starting at 1:
//
//	pos, err := coord.Decode("C7") // Position{X: 6, Y: 2}
//	start, end, err := coord.DecodePair("A1 A5")
//
// Decoding only checks syntax. Whether a position lies on the board is
// decided by the engine.
package coord

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidFormat is returned for text that is not a letter followed by one
// or two digits.
var ErrInvalidFormat = errors.New("invalid coordinate format")

var formatPattern = regexp.MustCompile(`^[A-Z][0-9]{1,2}$`)

// Position represents zero-based x,y coordinates: X is the column, Y the row
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String returns the position in human notation, e.g. "C7"
func (p Position) String() string {
	return Encode(p.X, p.Y)
}

// IsValidFormat reports whether text is one uppercase letter followed by 1 or 2 digits
func IsValidFormat(text string) bool {
	return formatPattern.MatchString(text)
}

// Decode parses human notation into a Position
func Decode(text string) (Position, error) {
	if !IsValidFormat(text) {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidFormat, text)
	}

	number, err := strconv.Atoi(text[1:])
	if err != nil {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidFormat, text)
	}

	return Position{X: number - 1, Y: int(text[0] - 'A')}, nil
}

// DecodePair parses two coordinates separated by a single space, e.g. "A1 A5"
func DecodePair(text string) (Position, Position, error) {
	tokens := strings.Split(text, " ")
	if len(tokens) != 2 {
		return Position{}, Position{}, fmt.Errorf("%w: expected two coordinates, got %q", ErrInvalidFormat, text)
	}

	start, err := Decode(tokens[0])
	if err != nil {
		return Position{}, Position{}, err
	}
	end, err := Decode(tokens[1])
	if err != nil {
		return Position{}, Position{}, err
	}

	return start, end, nil
}

// Encode formats zero-based coordinates in human notation
func Encode(x, y int) string {
	return fmt.Sprintf("%c%d", rune('A'+y), x+1)
}
