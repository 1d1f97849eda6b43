package game

import (
	"io"
	"math/rand"

	"github.com/google/uuid"

	"github.com/lgbarn/textchess-go/internal/chess"
	"github.com/lgbarn/textchess-go/internal/computer"
	"github.com/lgbarn/textchess-go/internal/engine"
	"github.com/lgbarn/textchess-go/internal/errors"
	"github.com/lgbarn/textchess-go/internal/hashing"
	"github.com/lgbarn/textchess-go/internal/player"
)

// MatchOptions configures a headless computer-versus-computer game.
type MatchOptions struct {
	White    computer.Level
	Black    computer.Level
	Seed     int64
	MaxPlies int    // 0 means no limit
	FEN      string // starting position; empty for the standard one
}

// PlayMatch plays one game between two computer players on a board of its
// own. The same options always produce the same game.
func PlayMatch(opts MatchOptions) (Result, error) {
	board := chess.NewBoard(chess.DefaultDimension)
	turn := chess.White
	if opts.FEN == "" {
		board.SetupInitialPosition()
	} else {
		var err error
		if board, turn, err = engine.ParseFEN(opts.FEN); err != nil {
			return Result{}, err
		}
		if !engine.VerifyBoard(board, turn) {
			return Result{}, errors.Wrapf(errors.ErrSetupRejected, "starting position %q", opts.FEN)
		}
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	var players [2]player.Player
	players[chess.White] = player.NewComputer(board, chess.White, opts.White, rng, io.Discard)
	players[chess.Black] = player.NewComputer(board, chess.Black, opts.Black, rng, io.Discard)

	res, turn := playOut(board, players, turn, opts.MaxPlies, nil)
	res.GameID = uuid.New()
	res.FinalFEN = engine.ToFEN(board, turn)
	res.Signature = hashing.Signature(board, turn, res.Plies)
	return res, nil
}
