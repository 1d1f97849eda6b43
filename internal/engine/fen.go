package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/textchess-go/internal/chess"
	"github.com/lgbarn/textchess-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
// Castling and en passant fields are carried for compatibility only.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

// NewBoardFromFEN creates an 8x8 board from the piece placement field of a
// FEN string. Any further fields are ignored.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	board, _, err := ParseFEN(fen)
	return board, err
}

// ParseFEN parses the placement and side-to-move fields of a FEN string.
// The side to move defaults to White when absent.
func ParseFEN(fen string) (*chess.Board, chess.Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, chess.White, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard(chess.DefaultDimension)
	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, chess.White, err
	}

	turn := chess.White
	if len(parts) >= 2 {
		switch parts[1] {
		case "w":
		case "b":
			turn = chess.Black
		default:
			return nil, chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
		}
	}
	return board, turn, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	dim := board.Dimension()
	row := dim - 1
	col := 0

	for _, c := range positions {
		switch {
		case c == '/':
			if col != dim {
				return fmt.Errorf("rank %d has %d files: %w", row+1, col, errors.ErrInvalidFEN)
			}
			row--
			col = 0
		case c >= '1' && c <= '8':
			col += int(c - '0')
			if col > dim {
				return fmt.Errorf("rank %d overflows: %w", row+1, errors.ErrInvalidFEN)
			}
		default:
			pt, colour, err := chess.ParsePieceCode(string(c))
			if err != nil {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			pos := chess.Coordinate{Row: row, Col: col}
			if !board.InBounds(pos) {
				return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}
			board.Set(pos, chess.Piece{Type: pt, Colour: colour})
			col++
		}
	}
	if row != 0 || col != dim {
		return fmt.Errorf("placement %q does not cover the board: %w", positions, errors.ErrInvalidFEN)
	}
	return nil
}

// ToFEN returns the placement and side-to-move fields for board.
func ToFEN(board *chess.Board, turn chess.Colour) string {
	var sb strings.Builder
	dim := board.Dimension()
	for row := dim - 1; row >= 0; row-- {
		empty := 0
		for col := 0; col < dim; col++ {
			p, ok := board.Get(chess.Coordinate{Row: row, Col: col})
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				fmt.Fprintf(&sb, "%d", empty)
				empty = 0
			}
			sb.WriteByte(p.Code())
		}
		if empty > 0 {
			fmt.Fprintf(&sb, "%d", empty)
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}
	if turn == chess.White {
		sb.WriteString(" w")
	} else {
		sb.WriteString(" b")
	}
	return sb.String()
}
