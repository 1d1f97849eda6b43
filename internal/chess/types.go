// Package chess provides core chess types and operations.
package chess

import (
	"fmt"

	"github.com/lgbarn/textchess-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// ParseColour converts "white" or "black" to a Colour.
func ParseColour(s string) (Colour, error) {
	switch s {
	case "white", "White", "w":
		return White, nil
	case "black", "Black", "b":
		return Black, nil
	}
	return White, fmt.Errorf("unknown colour %q: %w", s, errors.ErrInvalidCommand)
}

// PieceType represents a chess piece type.
type PieceType int

const (
	Empty PieceType = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(p) >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(p) >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// Material values used by the computer players. The king is priceless.
const (
	KingValue   = 1000
	QueenValue  = 9
	RookValue   = 5
	BishopValue = 3
	KnightValue = 3
	PawnValue   = 1
)

// Value returns the material value of a piece type.
func (p PieceType) Value() int {
	switch p {
	case King:
		return KingValue
	case Queen:
		return QueenValue
	case Rook:
		return RookValue
	case Bishop:
		return BishopValue
	case Knight:
		return KnightValue
	case Pawn:
		return PawnValue
	}
	return 0
}

// DefaultDimension is the side length of a standard board.
const DefaultDimension = 8

// Coordinate is a zero-based (row, col) square. Row 0 is rank 1 and
// col 0 is file a.
type Coordinate struct {
	Row int
	Col int
}

// InBounds reports whether c lies on a board of the given dimension.
func (c Coordinate) InBounds(dim int) bool {
	return c.Row >= 0 && c.Row < dim && c.Col >= 0 && c.Col < dim
}

// Offset returns c shifted by the given row and column deltas.
func (c Coordinate) Offset(dRow, dCol int) Coordinate {
	return Coordinate{Row: c.Row + dRow, Col: c.Col + dCol}
}

// String returns the square in chess notation, e.g. "e4".
func (c Coordinate) String() string {
	if c.Row < 0 || c.Col < 0 || c.Col > 25 {
		return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}
	return fmt.Sprintf("%c%d", 'a'+c.Col, c.Row+1)
}

// ParseCoordinate converts chess notation such as "e2" into a Coordinate
// on a board of the given dimension.
func ParseCoordinate(s string, dim int) (Coordinate, error) {
	if len(s) < 2 {
		return Coordinate{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidCoordinate)
	}
	file := s[0]
	if file >= 'A' && file <= 'Z' {
		file += 'a' - 'A'
	}
	if file < 'a' || file > 'z' {
		return Coordinate{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidCoordinate)
	}
	rank := 0
	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return Coordinate{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidCoordinate)
		}
		rank = rank*10 + int(r-'0')
		if rank > dim {
			return Coordinate{}, fmt.Errorf("square %q off the board: %w", s, errors.ErrInvalidCoordinate)
		}
	}
	c := Coordinate{Row: rank - 1, Col: int(file - 'a')}
	if !c.InBounds(dim) {
		return Coordinate{}, fmt.Errorf("square %q off the board: %w", s, errors.ErrInvalidCoordinate)
	}
	return c, nil
}

// Piece is a piece record. Values are always owned copies; a piece held
// by a Board has Position equal to its cell.
type Piece struct {
	Type     PieceType
	Colour   Colour
	Position Coordinate
}

// Value returns the material value of the piece.
func (p Piece) Value() int {
	return p.Type.Value()
}

// TradeValue is the value used when weighing captures and exposure.
// Kings are excluded from trade arithmetic.
func (p Piece) TradeValue() int {
	if p.Type == King {
		return 0
	}
	return p.Type.Value()
}

// Code returns the setup code of the piece: uppercase for White,
// lowercase for Black.
func (p Piece) Code() byte {
	letter := p.Type.Letter()
	if p.Colour == Black && letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	return letter
}

// ParsePieceCode converts a setup code (K, q, ...) into a piece type and
// colour.
func ParsePieceCode(code string) (PieceType, Colour, error) {
	if len(code) != 1 {
		return Empty, White, fmt.Errorf("piece code %q: %w", code, errors.ErrInvalidPieceCode)
	}
	c := code[0]
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
		c -= 'a' - 'A'
	}
	switch c {
	case 'K':
		return King, colour, nil
	case 'Q':
		return Queen, colour, nil
	case 'R':
		return Rook, colour, nil
	case 'B':
		return Bishop, colour, nil
	case 'N':
		return Knight, colour, nil
	case 'P':
		return Pawn, colour, nil
	}
	return Empty, White, fmt.Errorf("piece code %q: %w", code, errors.ErrInvalidPieceCode)
}

// BoardState is the classification of a position.
type BoardState int

const (
	Default BoardState = iota
	WhiteChecked
	BlackChecked
	WhiteCheckmated
	BlackCheckmated
	Stalemate
)

// String returns the string representation of a board state.
func (s BoardState) String() string {
	names := []string{"Default", "WhiteChecked", "BlackChecked", "WhiteCheckmated", "BlackCheckmated", "Stalemate"}
	if int(s) >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

// Checked returns the checked state for the given colour.
func Checked(c Colour) BoardState {
	if c == White {
		return WhiteChecked
	}
	return BlackChecked
}

// Checkmated returns the checkmated state for the given colour.
func Checkmated(c Colour) BoardState {
	if c == White {
		return WhiteCheckmated
	}
	return BlackCheckmated
}

// IsTerminal reports whether no further moves can be played.
func (s BoardState) IsTerminal() bool {
	return s == WhiteCheckmated || s == BlackCheckmated || s == Stalemate
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}
