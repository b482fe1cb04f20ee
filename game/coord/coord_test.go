package coord

import (
	"errors"
	"testing"
)

func TestIsValidFormat(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"A1", true},
		{"C7", true},
		{"J10", true},
		{"Z99", true},
		{"a1", false},
		{"A", false},
		{"1A", false},
		{"A100", false},
		{"AA1", false},
		{"A1 ", false},
		{" A1", false},
		{"", false},
		{"A-1", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsValidFormat(tt.input); got != tt.want {
				t.Errorf("IsValidFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		tests := []struct {
			input string
			want  Position
		}{
			{"A1", Position{X: 0, Y: 0}},
			{"C7", Position{X: 6, Y: 2}},
			{"J10", Position{X: 9, Y: 9}},
			{"E3", Position{X: 2, Y: 4}},
		}

		for _, tt := range tests {
			got, err := Decode(tt.input)
			if err != nil {
				t.Fatalf("Decode(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Decode(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		}
	})

	t.Run("no bounds check", func(t *testing.T) {
		got, err := Decode("Z99")
		if err != nil {
			t.Fatalf("Expected syntactically valid input to decode, got %v", err)
		}
		if got.X != 98 || got.Y != 25 {
			t.Errorf("Expected (98,25), got %+v", got)
		}
	})

	t.Run("invalid input", func(t *testing.T) {
		for _, input := range []string{"", "a1", "11", "A", "A1B", "B 2"} {
			if _, err := Decode(input); !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("Decode(%q): expected ErrInvalidFormat, got %v", input, err)
			}
		}
	})
}

func TestDecodePair(t *testing.T) {
	start, end, err := DecodePair("A1 A5")
	if err != nil {
		t.Fatalf("DecodePair returned error: %v", err)
	}
	if start != (Position{X: 0, Y: 0}) || end != (Position{X: 4, Y: 0}) {
		t.Errorf("Expected (0,0)-(4,0), got %+v-%+v", start, end)
	}

	invalid := []string{
		"A1",
		"A1 A5 A6",
		"A1  A5",
		"A1 x5",
		"q1 A5",
		"",
	}
	for _, input := range invalid {
		t.Run(input, func(t *testing.T) {
			if _, _, err := DecodePair(input); !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("DecodePair(%q): expected ErrInvalidFormat, got %v", input, err)
			}
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			text := Encode(x, y)
			got, err := Decode(text)
			if err != nil {
				t.Fatalf("Decode(%q) returned error: %v", text, err)
			}
			if got.X != x || got.Y != y {
				t.Errorf("Round trip of (%d,%d) via %q gave %+v", x, y, text, got)
			}
		}
	}
}

func TestPositionString(t *testing.T) {
	if got := (Position{X: 9, Y: 9}).String(); got != "J10" {
		t.Errorf("Expected J10, got %s", got)
	}
	if got := (Position{X: 6, Y: 2}).String(); got != "C7" {
		t.Errorf("Expected C7, got %s", got)
	}
}
