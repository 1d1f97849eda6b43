package player

import (
	"bytes"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/lgbarn/textchess-go/internal/chess"
	"github.com/lgbarn/textchess-go/internal/computer"
	"github.com/lgbarn/textchess-go/internal/engine"
	chesserrors "github.com/lgbarn/textchess-go/internal/errors"
	"github.com/lgbarn/textchess-go/internal/testutil"
)

func mustFEN(t *testing.T, fen string) *chess.Board {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error: %v", fen, err)
	}
	return board
}

func TestParseSpec(t *testing.T) {
	tests := []struct {
		in   string
		want Spec
	}{
		{"human", Spec{Kind: HumanKind}},
		{"Human", Spec{Kind: HumanKind}},
		{"computer", Spec{Kind: ComputerKind, Level: computer.Greedy}},
		{"computer1", Spec{Kind: ComputerKind, Level: computer.Random}},
		{"computer[3]", Spec{Kind: ComputerKind, Level: computer.Cautious}},
		{"Computer4", Spec{Kind: ComputerKind, Level: computer.Reserved}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSpec(tt.in, computer.Greedy)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestParseSpec_Errors(t *testing.T) {
	for _, in := range []string{"robot", "computer0", "computer5", "computer[x]", "computerx", ""} {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseSpec(in, computer.Random); !errors.Is(err, chesserrors.ErrInvalidCommand) {
				t.Errorf("ParseSpec(%q) error = %v, want ErrInvalidCommand", in, err)
			}
		})
	}
}

func TestSpecString(t *testing.T) {
	testutil.AssertEqual(t, Spec{Kind: HumanKind}.String(), "human")
	testutil.AssertEqual(t, Spec{Kind: ComputerKind, Level: computer.Cautious}.String(), "computer3")
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		from, to  string
		promotion chess.PieceType
		wantErr   error
	}{
		{name: "plain", args: []string{"e2", "e4"}, from: "e2", to: "e4", promotion: chess.Queen},
		{name: "promotion lower", args: []string{"a7", "a8", "n"}, from: "a7", to: "a8", promotion: chess.Knight},
		{name: "promotion upper", args: []string{"a7", "a8", "R"}, from: "a7", to: "a8", promotion: chess.Rook},
		{name: "missing square", args: []string{"e2"}, wantErr: chesserrors.ErrInvalidCommand},
		{name: "too many", args: []string{"e2", "e4", "q", "x"}, wantErr: chesserrors.ErrInvalidCommand},
		{name: "off board", args: []string{"e2", "e9"}, wantErr: chesserrors.ErrInvalidCoordinate},
		{name: "overflowing rank", args: []string{"a18446744073709551617", "a3"}, wantErr: chesserrors.ErrInvalidCoordinate},
		{name: "bad promotion", args: []string{"a7", "a8", "x"}, wantErr: chesserrors.ErrInvalidPieceCode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to, promotion, err := ParseMove(tt.args, chess.DefaultDimension)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseMove(%v) error = %v, want %v", tt.args, err, tt.wantErr)
				}
				return
			}
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, from, testutil.Sq(t, tt.from))
			testutil.AssertEqual(t, to, testutil.Sq(t, tt.to))
			testutil.AssertEqual(t, promotion, tt.promotion)
		})
	}
}

func TestInput(t *testing.T) {
	in := NewInput(strings.NewReader("game human human\n\n   \nmove e2  e4\n"))

	fields, ok := in.Next()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, fields, []string{"game", "human", "human"})
	testutil.AssertEqual(t, in.Line(), 1)

	fields, ok = in.Next()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, fields, []string{"move", "e2", "e4"})
	testutil.AssertEqual(t, in.Line(), 4)

	_, ok = in.Next()
	testutil.AssertFalse(t, ok)
	testutil.AssertNoError(t, in.Err())
}

func TestHuman_TakeTurn(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantOK  bool
		wantOut []string
		moved   string
	}{
		{"legal move", "move e2 e4\n", true, []string{"White's turn: "}, "e4"},
		{"retries after illegal move", "move e2 e5\nmove e2 e3\n", true, []string{"Invalid move."}, "e3"},
		{"retries after garbage", "dance\nmove g1 f3\n", true, []string{"Invalid command."}, "f3"},
		{"bad square", "move e2 z9\nmove d2 d4\n", true, []string{"Invalid move."}, "d4"},
		{"resign", "resign\n", false, nil, ""},
		{"end of input", "", false, nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustFEN(t, engine.InitialFEN)
			var out bytes.Buffer
			h := NewHuman(board, chess.White, NewInput(strings.NewReader(tt.input)), &out)

			if got := h.TakeTurn(); got != tt.wantOK {
				t.Fatalf("TakeTurn() = %v, want %v", got, tt.wantOK)
			}
			for _, s := range tt.wantOut {
				testutil.AssertContains(t, out.String(), s)
			}
			if tt.moved != "" {
				if p, ok := board.Get(testutil.Sq(t, tt.moved)); !ok || p.Colour != chess.White {
					t.Errorf("%s not occupied by a white piece after the move", tt.moved)
				}
			}
		})
	}
}

func TestHuman_Promotion(t *testing.T) {
	board := mustFEN(t, "8/4P3/8/8/8/8/8/k6K w - - 0 1")
	h := NewHuman(board, chess.White, NewInput(strings.NewReader("move e7 e8 n\n")), &bytes.Buffer{})
	testutil.AssertTrue(t, h.TakeTurn(), "TakeTurn()")
	p, ok := board.Get(testutil.Sq(t, "e8"))
	if !ok || p.Type != chess.Knight {
		t.Errorf("Get(e8) = %v, want knight", p)
	}
}

func TestComputer_TakeTurn(t *testing.T) {
	board := mustFEN(t, "7k/6pp/8/3p4/4P3/8/8/K7 w - - 0 1")
	var out bytes.Buffer
	c := NewComputer(board, chess.White, computer.Greedy, rand.New(rand.NewSource(3)), &out)

	testutil.AssertTrue(t, c.TakeTurn(), "TakeTurn()")
	testutil.AssertEqual(t, out.String(), "White's turn: move e4 d5\n")
	if _, ok := board.Get(testutil.Sq(t, "e4")); ok {
		t.Error("e4 still occupied after the capture")
	}
	p, _ := board.Get(testutil.Sq(t, "d5"))
	testutil.AssertEqual(t, p.Colour, chess.White)
}

func TestComputer_CannotMove(t *testing.T) {
	board := mustFEN(t, engine.InitialFEN)
	c := NewComputer(board, chess.Black, computer.Reserved, rand.New(rand.NewSource(1)), &bytes.Buffer{})
	testutil.AssertFalse(t, c.TakeTurn(), "reserved level TakeTurn()")
}

func TestNew(t *testing.T) {
	board := chess.NewBoard(chess.DefaultDimension)
	in := NewInput(strings.NewReader(""))
	rng := rand.New(rand.NewSource(1))

	if _, ok := New(Spec{Kind: HumanKind}, board, chess.White, in, &bytes.Buffer{}, rng).(*Human); !ok {
		t.Error("New(human) did not return *Human")
	}
	p := New(Spec{Kind: ComputerKind, Level: computer.Cautious}, board, chess.Black, in, &bytes.Buffer{}, rng)
	c, ok := p.(*Computer)
	if !ok {
		t.Fatal("New(computer3) did not return *Computer")
	}
	testutil.AssertEqual(t, c.level, computer.Cautious)
	testutil.AssertEqual(t, c.Colour(), chess.Black)
}
