package computer

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/lgbarn/textchess-go/internal/chess"
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

func findMove(moves []ChessMove, from, to chess.Coordinate) (ChessMove, bool) {
	for _, m := range moves {
		if m.From == from && m.To == to {
			return m, true
		}
	}
	return ChessMove{}, false
}

func TestParseLevel(t *testing.T) {
	for n := 1; n <= 4; n++ {
		l, err := ParseLevel(n)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, int(l), n)
	}
	for _, n := range []int{0, 5, -1} {
		if _, err := ParseLevel(n); !errors.Is(err, chesserrors.ErrInvalidCommand) {
			t.Errorf("ParseLevel(%d) error = %v, want ErrInvalidCommand", n, err)
		}
	}
}

func TestScoreMoves(t *testing.T) {
	// White queen on e4 is attacked by the rook on e8.
	const fen = "4r2k/8/8/8/4Q3/8/8/K7 w - - 0 1"

	tests := []struct {
		name  string
		level Level
		to    string
		want  int
	}{
		{"greedy capture with check", Greedy, "e8", 5 + CheckBonus},
		{"greedy check", Greedy, "e5", CheckBonus},
		{"greedy quiet", Greedy, "a4", 0},
		{"cautious capture escapes with check", Cautious, "e8", 5 + 9 + CheckBonus},
		{"cautious check from inside danger", Cautious, "e5", 0},
		{"cautious escape", Cautious, "a4", 9},
		{"cautious escape with check", Cautious, "d4", 9 + CheckBonus},
		{"random scores nothing", Random, "e8", 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board := mustFEN(t, fen)
			moves := ScoreMoves(board, chess.White, tt.level)
			m, ok := findMove(moves, testutil.Sq(t, "e4"), testutil.Sq(t, tt.to))
			if !ok {
				t.Fatalf("move e4 %s not generated", tt.to)
			}
			if m.Score != tt.want {
				t.Errorf("score(e4 %s) = %d, want %d", tt.to, m.Score, tt.want)
			}
		})
	}
}

func TestScoreMoves_LeavesBoardUntouched(t *testing.T) {
	board := mustFEN(t, "4r2k/8/8/8/4Q3/8/8/K7 w - - 0 1")
	before := board.Copy()
	ScoreMoves(board, chess.White, Cautious)
	testutil.AssertBoardEqual(t, board, before)
}

func TestRankMoves(t *testing.T) {
	seenFirst := map[chess.Coordinate]bool{}
	for seed := int64(1); seed <= 50; seed++ {
		moves := []ChessMove{
			{To: chess.Coordinate{Row: 0, Col: 0}, Score: 0},
			{To: chess.Coordinate{Row: 0, Col: 1}, Score: 5},
			{To: chess.Coordinate{Row: 0, Col: 2}, Score: 0},
			{To: chess.Coordinate{Row: 0, Col: 3}, Score: 5},
			{To: chess.Coordinate{Row: 0, Col: 4}, Score: -3},
		}
		ranked := RankMoves(moves, rand.New(rand.NewSource(seed)))
		for i := 1; i < len(ranked); i++ {
			if ranked[i-1].Score < ranked[i].Score {
				t.Fatalf("seed %d: ranked out of order: %v", seed, ranked)
			}
		}
		if ranked[0].Score != 5 || ranked[len(ranked)-1].Score != -3 {
			t.Errorf("seed %d: ranked = %v", seed, ranked)
		}
		seenFirst[ranked[0].To] = true
	}
	if len(seenFirst) != 2 {
		t.Errorf("tied best moves led %d distinct times across seeds, want 2", len(seenFirst))
	}
}

func TestPlay_GreedyPrefersCapture(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		board := mustFEN(t, "7k/6pp/8/3p4/4P3/8/8/K7 w - - 0 1")
		m, ok := Play(board, chess.White, Greedy, rand.New(rand.NewSource(seed)))
		if !ok {
			t.Fatalf("seed %d: Play() = false", seed)
		}
		if m.To != testutil.Sq(t, "d5") {
			t.Errorf("seed %d: played %v, want e4 d5", seed, m)
		}
	}
}

func TestPlay_GreedyPrefersCheck(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		board := mustFEN(t, "4k3/8/8/7p/8/8/8/K6R w - - 0 1")
		m, ok := Play(board, chess.White, Greedy, rand.New(rand.NewSource(seed)))
		if !ok {
			t.Fatalf("seed %d: Play() = false", seed)
		}
		if m.From != testutil.Sq(t, "h1") || m.To != testutil.Sq(t, "e1") {
			t.Errorf("seed %d: played %v, want h1 e1", seed, m)
		}
		if board.State != chess.BlackChecked {
			t.Errorf("seed %d: board.State = %v, want BlackChecked", seed, board.State)
		}
	}
}

func TestPlay_CautiousAvoidsDanger(t *testing.T) {
	// The rook on h4 sweeps the fourth rank.
	for seed := int64(1); seed <= 30; seed++ {
		board := mustFEN(t, "4k3/8/8/8/7r/2N5/8/K7 w - - 0 1")
		m, ok := Play(board, chess.White, Cautious, rand.New(rand.NewSource(seed)))
		if !ok {
			t.Fatalf("seed %d: Play() = false", seed)
		}
		if m.To.Row == 3 {
			t.Errorf("seed %d: played %v into the rook's reach", seed, m)
		}
	}
}

func TestPlay_CautiousTakesAndEscapes(t *testing.T) {
	board := mustFEN(t, "4r2k/8/8/8/4Q3/8/8/K7 w - - 0 1")
	m, ok := Play(board, chess.White, Cautious, rand.New(rand.NewSource(7)))
	if !ok {
		t.Fatal("Play() = false")
	}
	testutil.AssertEqual(t, m.String(), "e4 e8")
	if board.State != chess.BlackChecked {
		t.Errorf("board.State = %v, want BlackChecked", board.State)
	}
}

func TestPlay_RandomPlaysLegalMove(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		board := mustFEN(t, engine.InitialFEN)
		before := board.Copy()
		m, ok := Play(board, chess.White, Random, rand.New(rand.NewSource(seed)))
		if !ok {
			t.Fatalf("seed %d: Play() = false", seed)
		}
		p, found := before.Get(m.From)
		if !found || p.Colour != chess.White {
			t.Fatalf("seed %d: moved from %v which held no white piece", seed, m.From)
		}
		legal := false
		for _, to := range engine.ValidLegalMoves(before, p) {
			legal = legal || to == m.To
		}
		testutil.AssertTrue(t, legal, "seed %d: %v is not a legal move", seed, m)
		if _, still := board.Get(m.From); still {
			t.Errorf("seed %d: %v still occupied after move", seed, m.From)
		}
	}
}

func TestPickRandom_RetriesRefusedMoves(t *testing.T) {
	// The lone king has three moves; refusing two must not give up on it.
	board := mustFEN(t, "7k/8/8/8/8/8/8/K7 w - - 0 1")
	refused := map[chess.Coordinate]bool{}
	commit := func(m ChessMove) bool {
		if len(refused) < 2 {
			refused[m.To] = true
			return false
		}
		return true
	}

	m, ok := pickRandom(board, chess.White, rand.New(rand.NewSource(9)), commit)

	testutil.AssertTrue(t, ok, "pickRandom() gave up with moves left")
	testutil.AssertEqual(t, m.From, testutil.Sq(t, "a1"))
	testutil.AssertFalse(t, refused[m.To], "refused move %v offered again", m)
}

func TestPickRandom_AllRefused(t *testing.T) {
	board := mustFEN(t, "7k/8/8/8/8/8/8/K7 w - - 0 1")
	offers := 0
	commit := func(ChessMove) bool {
		offers++
		return false
	}

	if _, ok := pickRandom(board, chess.White, rand.New(rand.NewSource(9)), commit); ok {
		t.Fatal("pickRandom() = true with every move refused")
	}
	testutil.AssertEqual(t, offers, 3)
}

func TestPlay_SameSeedSameGame(t *testing.T) {
	for _, level := range []Level{Random, Greedy, Cautious} {
		a := mustFEN(t, engine.InitialFEN)
		b := mustFEN(t, engine.InitialFEN)
		rngA := rand.New(rand.NewSource(42))
		rngB := rand.New(rand.NewSource(42))
		colour := chess.White
		for ply := 0; ply < 20; ply++ {
			_, okA := Play(a, colour, level, rngA)
			_, okB := Play(b, colour, level, rngB)
			if okA != okB {
				t.Fatalf("%v ply %d: Play() diverged", level, ply)
			}
			if !okA {
				break
			}
			colour = colour.Opposite()
		}
		testutil.AssertBoardEqual(t, a, b, level.String())
	}
}

func TestPlay_NoMoveAvailable(t *testing.T) {
	fens := []struct {
		name   string
		fen    string
		colour chess.Colour
	}{
		{"stalemate", "k7/P7/1K6/8/8/8/8/8 b - - 0 1", chess.Black},
		{"checkmate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w - - 1 3", chess.White},
	}
	for _, tt := range fens {
		for _, level := range []Level{Random, Greedy, Cautious, Reserved} {
			t.Run(tt.name+"/"+level.String(), func(t *testing.T) {
				board := mustFEN(t, tt.fen)
				before := board.Copy()
				if _, ok := Play(board, tt.colour, level, rand.New(rand.NewSource(1))); ok {
					t.Fatal("Play() = true, want false")
				}
				testutil.AssertBoardEqual(t, board, before)
			})
		}
	}
}

func TestPlay_ReservedDeclines(t *testing.T) {
	board := mustFEN(t, engine.InitialFEN)
	before := board.Copy()
	if _, ok := Play(board, chess.White, Reserved, rand.New(rand.NewSource(1))); ok {
		t.Error("Play(Reserved) = true, want false")
	}
	testutil.AssertBoardEqual(t, board, before)
}
