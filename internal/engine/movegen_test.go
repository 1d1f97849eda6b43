package engine

import (
	"testing"

	"github.com/lgbarn/textchess-go/internal/chess"
	"github.com/lgbarn/textchess-go/internal/testutil"
)

func mustFEN(t *testing.T, fen string) *chess.Board {
	t.Helper()
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error: %v", fen, err)
	}
	return board
}

func mustPiece(t *testing.T, board *chess.Board, sq string) chess.Piece {
	t.Helper()
	p, ok := board.Get(testutil.Sq(t, sq))
	if !ok {
		t.Fatalf("no piece on %s", sq)
	}
	return p
}

func TestValidMoves(t *testing.T) {
	tests := []struct {
		name   string
		pieces map[string]string
		square string
		want   []string
	}{
		{
			name:   "knight in corner",
			pieces: map[string]string{"a1": "N"},
			square: "a1",
			want:   []string{"b3", "c2"},
		},
		{
			name:   "knight jumps over pieces and skips friends",
			pieces: map[string]string{"b1": "N", "a2": "P", "b2": "P", "c2": "P", "d2": "P", "c3": "p"},
			square: "b1",
			want:   []string{"a3", "c3"},
		},
		{
			name:   "rook stops before friend and on enemy",
			pieces: map[string]string{"d4": "R", "d6": "P", "f4": "p"},
			square: "d4",
			want:   []string{"d5", "d3", "d2", "d1", "e4", "f4", "c4", "b4", "a4"},
		},
		{
			name:   "bishop blocked by own pawns",
			pieces: map[string]string{"c1": "B", "b2": "P", "d2": "P"},
			square: "c1",
			want:   nil,
		},
		{
			name:   "king in centre",
			pieces: map[string]string{"e4": "K", "e5": "P", "d3": "p"},
			square: "e4",
			want:   []string{"d3", "e3", "f3", "d4", "f4", "d5", "f5"},
		},
		{
			name:   "white pawn on home rank",
			pieces: map[string]string{"e2": "P"},
			square: "e2",
			want:   []string{"e3", "e4"},
		},
		{
			name:   "white pawn double step blocked",
			pieces: map[string]string{"e2": "P", "e4": "n"},
			square: "e2",
			want:   []string{"e3"},
		},
		{
			name:   "white pawn fully blocked",
			pieces: map[string]string{"e2": "P", "e3": "n"},
			square: "e2",
			want:   nil,
		},
		{
			name:   "white pawn off home rank steps once",
			pieces: map[string]string{"e3": "P"},
			square: "e3",
			want:   []string{"e4"},
		},
		{
			name:   "black pawn advances and captures downwards",
			pieces: map[string]string{"d7": "p", "c6": "N", "e6": "B", "e8": "k"},
			square: "d7",
			want:   []string{"d6", "d5", "c6", "e6"},
		},
		{
			name:   "pawn never captures forwards or friends",
			pieces: map[string]string{"d4": "P", "d5": "p", "c5": "P"},
			square: "d4",
			want:   nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board := testutil.Place(t, tt.pieces)
			p := mustPiece(t, board, tt.square)
			testutil.AssertSameSquares(t, ValidMoves(board, p), testutil.Squares(t, tt.want...),
				"ValidMoves(%s)", tt.square)
		})
	}
}

func TestValidMoves_QueenOnEmptyBoard(t *testing.T) {
	board := testutil.Place(t, map[string]string{"d4": "Q"})
	if got := len(ValidMoves(board, mustPiece(t, board, "d4"))); got != 27 {
		t.Errorf("len(ValidMoves(queen d4)) = %d, want 27", got)
	}
}

func TestValidMoves_InitialPosition(t *testing.T) {
	board := mustFEN(t, InitialFEN)
	total := 0
	for _, p := range board.Pieces(chess.White) {
		total += len(ValidMoves(board, p))
	}
	if total != 20 {
		t.Errorf("white pseudo-legal moves = %d, want 20", total)
	}
}

func TestValidMoves_SmallBoard(t *testing.T) {
	board := chess.NewBoard(5)
	board.Set(chess.Coordinate{Row: 2, Col: 2}, chess.Piece{Type: chess.Rook, Colour: chess.White})
	p, _ := board.Get(chess.Coordinate{Row: 2, Col: 2})
	if got := len(ValidMoves(board, p)); got != 8 {
		t.Errorf("len(ValidMoves(rook centre of 5x5)) = %d, want 8", got)
	}
}

func TestCanTargetSquare(t *testing.T) {
	board := testutil.Place(t, map[string]string{"a1": "R", "a5": "p"})
	rook := mustPiece(t, board, "a1")

	testutil.AssertTrue(t, CanTargetSquare(board, rook, testutil.Sq(t, "a5")), "capture a5")
	testutil.AssertFalse(t, CanTargetSquare(board, rook, testutil.Sq(t, "a6")), "beyond a5")
	testutil.AssertFalse(t, CanTargetSquare(board, rook, testutil.Sq(t, "b2")), "diagonal")
}

func TestCanTargetSquareFrom(t *testing.T) {
	tests := []struct {
		name   string
		pieces map[string]string
		piece  string
		via    string
		target string
		want   bool
	}{
		{"rook lifts to the back rank", map[string]string{"a1": "R", "e8": "k"}, "a1", "a8", "e8", true},
		{"rook on wrong file", map[string]string{"a1": "R", "e8": "k"}, "a1", "a2", "e8", false},
		{"line still blocked", map[string]string{"d1": "R", "d4": "B", "d8": "k"}, "d1", "d2", "d8", false},
		{"queen swings onto the diagonal", map[string]string{"d1": "Q", "d8": "k"}, "d1", "h5", "e8", true},
		{"capture on via square", map[string]string{"c3": "N", "d5": "p", "e7": "k"}, "c3", "d5", "e7", true},
		{"via off the board", map[string]string{"a1": "R"}, "a1", "", "a8", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.Place(t, tt.pieces)
			before := board.Copy()
			p := mustPiece(t, board, tt.piece)

			via := chess.Coordinate{Row: -1, Col: 0}
			if tt.via != "" {
				via = testutil.Sq(t, tt.via)
			}
			got := CanTargetSquareFrom(board, p, via, testutil.Sq(t, tt.target))
			if got != tt.want {
				t.Errorf("CanTargetSquareFrom(%s via %s -> %s) = %v, want %v", tt.piece, tt.via, tt.target, got, tt.want)
			}
			testutil.AssertBoardEqual(t, board, before, "board modified")
		})
	}
}
