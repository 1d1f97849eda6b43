package testutil

import (
	"testing"

	"github.com/lgbarn/textchess-go/internal/chess"
)

// Sq parses a square in chess notation on an 8x8 board and calls t.Fatal
// if it is malformed.
func Sq(t *testing.T, s string) chess.Coordinate {
	t.Helper()
	c, err := chess.ParseCoordinate(s, chess.DefaultDimension)
	if err != nil {
		t.Fatalf("bad test square %q: %v", s, err)
	}
	return c
}

// Squares parses several squares with Sq.
func Squares(t *testing.T, ss ...string) []chess.Coordinate {
	t.Helper()
	out := make([]chess.Coordinate, 0, len(ss))
	for _, s := range ss {
		out = append(out, Sq(t, s))
	}
	return out
}

// Place puts pieces on a fresh 8x8 board. Each entry maps a square to a
// setup code, e.g. {"e1": "K", "e8": "k"}.
func Place(t *testing.T, pieces map[string]string) *chess.Board {
	t.Helper()
	b := chess.NewBoard(chess.DefaultDimension)
	for sq, code := range pieces {
		pt, colour, err := chess.ParsePieceCode(code)
		if err != nil {
			t.Fatalf("bad test piece %q on %s: %v", code, sq, err)
		}
		b.Set(Sq(t, sq), chess.Piece{Type: pt, Colour: colour})
	}
	return b
}
