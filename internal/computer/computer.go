// Package computer implements the one-ply heuristic computer players.
//
// Every level enumerates the legal moves of the side to move, ranks them,
// and commits the best one through engine.TakeTurn. Ties are broken
// uniformly at random using the caller's *rand.Rand, so a fixed seed
// replays the same game.
package computer

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/lgbarn/textchess-go/internal/chess"
	"github.com/lgbarn/textchess-go/internal/engine"
	"github.com/lgbarn/textchess-go/internal/errors"
)

// Level selects the scoring strategy.
type Level int

const (
	// Random plays any legal move.
	Random Level = iota + 1
	// Greedy prefers captures and checks.
	Greedy
	// Cautious is Greedy plus avoiding squares the enemy can reach.
	Cautious
	// Reserved is a placeholder for a look-ahead player. It never moves.
	Reserved
)

// MinLevel and MaxLevel bound the accepted levels.
const (
	MinLevel = Random
	MaxLevel = Reserved
)

// CheckBonus is added to moves that attack the enemy king.
const CheckBonus = 8

// String returns the string representation of a level.
func (l Level) String() string {
	switch l {
	case Random:
		return "random"
	case Greedy:
		return "greedy"
	case Cautious:
		return "cautious"
	case Reserved:
		return "reserved"
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// ParseLevel validates a numeric level.
func ParseLevel(n int) (Level, error) {
	if n < int(MinLevel) || n > int(MaxLevel) {
		return 0, errors.Wrapf(errors.ErrInvalidCommand, "computer level %d out of range %d-%d", n, MinLevel, MaxLevel)
	}
	return Level(n), nil
}

// ChessMove is a candidate move and its desirability.
type ChessMove struct {
	From  chess.Coordinate
	To    chess.Coordinate
	Score int
}

// String returns the move in "e2 e4" form.
func (m ChessMove) String() string {
	return m.From.String() + " " + m.To.String()
}

// Play chooses and commits a move for colour. It returns the move played
// and true, or false when no move could be made, which is how a
// checkmated or stalemated side (and the Reserved level) reports that it
// has no turn to take.
func Play(board *chess.Board, colour chess.Colour, level Level, rng *rand.Rand) (ChessMove, bool) {
	switch level {
	case Random:
		return playRandom(board, colour, rng)
	case Greedy, Cautious:
		return commitBest(board, colour, RankMoves(ScoreMoves(board, colour, level), rng))
	}
	return ChessMove{}, false
}

// playRandom picks a random piece with at least one legal move, then a
// random move for it.
func playRandom(board *chess.Board, colour chess.Colour, rng *rand.Rand) (ChessMove, bool) {
	return pickRandom(board, colour, rng, func(m ChessMove) bool {
		return engine.TakeTurn(board, m.From, m.To, colour)
	})
}

// pickRandom offers random moves to commit until one is accepted. A piece
// is dropped from the draw only once every one of its moves was refused.
func pickRandom(board *chess.Board, colour chess.Colour, rng *rand.Rand, commit func(ChessMove) bool) (ChessMove, bool) {
	pieces := board.Copy().Pieces(colour)

	for len(pieces) > 0 {
		i := rng.Intn(len(pieces))
		moves := engine.ValidLegalMoves(board, pieces[i])
		for len(moves) > 0 {
			j := rng.Intn(len(moves))
			m := ChessMove{From: pieces[i].Position, To: moves[j]}
			if commit(m) {
				return m, true
			}
			moves[j] = moves[len(moves)-1]
			moves = moves[:len(moves)-1]
		}
		pieces[i] = pieces[len(pieces)-1]
		pieces = pieces[:len(pieces)-1]
	}
	return ChessMove{}, false
}

// ScoreMoves lists every legal move of colour scored for the given level.
// Random and Reserved levels score every move zero.
func ScoreMoves(board *chess.Board, colour chess.Colour, level Level) []ChessMove {
	enemy := colour.Opposite()
	enemyKing, hasEnemyKing := board.FindKing(enemy)

	var danger map[chess.Coordinate]bool
	if level == Cautious {
		danger = engine.DangerZone(board, enemy)
	}

	var moves []ChessMove
	for _, p := range board.Copy().Pieces(colour) {
		for _, to := range engine.ValidLegalMoves(board, p) {
			m := ChessMove{From: p.Position, To: to}
			if level == Greedy || level == Cautious {
				m.Score = scoreMove(board, p, to, enemyKing, hasEnemyKing, danger)
			}
			moves = append(moves, m)
		}
	}
	return moves
}

// scoreMove scores one move. A nil danger map disables the safety terms.
func scoreMove(board *chess.Board, p chess.Piece, to, enemyKing chess.Coordinate, hasEnemyKing bool, danger map[chess.Coordinate]bool) int {
	score := 0
	if target, ok := board.Get(to); ok {
		score += target.TradeValue()
	}

	givesCheck := hasEnemyKing && engine.CanTargetSquareFrom(board, p, to, enemyKing)

	if danger != nil {
		intoDanger, fromDanger := danger[to], danger[p.Position]
		switch {
		case intoDanger && !fromDanger:
			score -= p.TradeValue()
		case fromDanger && !intoDanger:
			score += p.TradeValue()
		}
		// A checking piece that can be taken straight away earns nothing.
		if intoDanger {
			givesCheck = false
		}
	}

	if givesCheck {
		score += CheckBonus
	}
	return score
}

// RankMoves shuffles moves and then stable-sorts them best first, so moves
// with equal scores come out in uniformly random order. The slice is
// reordered in place and returned.
func RankMoves(moves []ChessMove, rng *rand.Rand) []ChessMove {
	rng.Shuffle(len(moves), func(i, j int) {
		moves[i], moves[j] = moves[j], moves[i]
	})
	sort.SliceStable(moves, func(i, j int) bool {
		return moves[i].Score > moves[j].Score
	})
	return moves
}

// commitBest tries each ranked move in turn until the board accepts one.
func commitBest(board *chess.Board, colour chess.Colour, ranked []ChessMove) (ChessMove, bool) {
	for _, m := range ranked {
		if engine.TakeTurn(board, m.From, m.To, colour) {
			return m, true
		}
	}
	return ChessMove{}, false
}
