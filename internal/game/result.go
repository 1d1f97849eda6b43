package game

import (
	"github.com/google/uuid"

	"github.com/lgbarn/textchess-go/internal/chess"
	"github.com/lgbarn/textchess-go/internal/hashing"
	"github.com/lgbarn/textchess-go/internal/player"
)

// Outcome is the result of a finished game.
type Outcome int

const (
	Undecided Outcome = iota
	WhiteWins
	BlackWins
	Draw
)

// String returns the outcome in PGN result form.
func (o Outcome) String() string {
	switch o {
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	}
	return "*"
}

// Points returns the score each side earns for the outcome.
func (o Outcome) Points() (white, black float64) {
	switch o {
	case WhiteWins:
		return 1, 0
	case BlackWins:
		return 0, 1
	case Draw:
		return 0.5, 0.5
	}
	return 0, 0
}

// winFor returns the outcome in which colour wins.
func winFor(colour chess.Colour) Outcome {
	if colour == chess.White {
		return WhiteWins
	}
	return BlackWins
}

// Reason records why a game ended.
type Reason int

const (
	Checkmate Reason = iota + 1
	Stalemate
	Resignation // the side to move resigned or could not move
	MoveLimit
)

// String returns the string representation of a reason.
func (r Reason) String() string {
	switch r {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case Resignation:
		return "resignation"
	case MoveLimit:
		return "move limit"
	}
	return "unknown"
}

// Result describes a finished game.
type Result struct {
	GameID   uuid.UUID
	Outcome  Outcome
	Reason   Reason
	Plies    int
	FinalFEN string

	// Signature identifies the final position for duplicate detection
	Signature hashing.GameSignature
}

// playOut alternates turns, starting with turn, until the game ends.
// afterMove runs after every committed move with the side now to move and
// the number of plies played. It returns the result and the side to move
// when the game ended.
func playOut(board *chess.Board, players [2]player.Player, turn chess.Colour, maxPlies int,
	afterMove func(turn chess.Colour, plies int)) (Result, chess.Colour) {
	plies := 0
	for {
		if maxPlies > 0 && plies >= maxPlies {
			return Result{Outcome: Draw, Reason: MoveLimit, Plies: plies}, turn
		}
		if p := players[turn]; !p.TakeTurn() {
			return Result{Outcome: winFor(p.Colour().Opposite()), Reason: Resignation, Plies: plies}, turn
		}
		plies++
		turn = turn.Opposite()
		if afterMove != nil {
			afterMove(turn, plies)
		}

		switch board.State {
		case chess.Checkmated(turn):
			return Result{Outcome: winFor(turn.Opposite()), Reason: Checkmate, Plies: plies}, turn
		case chess.Stalemate:
			return Result{Outcome: Draw, Reason: Stalemate, Plies: plies}, turn
		}
	}
}

// Summary totals the results of many games.
type Summary struct {
	Games      int
	WhiteScore float64
	BlackScore float64
	Plies      int
	Outcomes   map[Outcome]int
	Reasons    map[Reason]int
}

// Add counts one result.
func (s *Summary) Add(r Result) {
	if s.Outcomes == nil {
		s.Outcomes = make(map[Outcome]int)
		s.Reasons = make(map[Reason]int)
	}
	white, black := r.Outcome.Points()
	s.Games++
	s.WhiteScore += white
	s.BlackScore += black
	s.Plies += r.Plies
	s.Outcomes[r.Outcome]++
	s.Reasons[r.Reason]++
}
