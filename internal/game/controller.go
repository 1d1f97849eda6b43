// Package game runs chess games: the interactive command controller and
// headless computer matches.
package game

import (
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"github.com/lgbarn/textchess-go/internal/chess"
	"github.com/lgbarn/textchess-go/internal/computer"
	"github.com/lgbarn/textchess-go/internal/config"
	"github.com/lgbarn/textchess-go/internal/engine"
	"github.com/lgbarn/textchess-go/internal/errors"
	"github.com/lgbarn/textchess-go/internal/hashing"
	"github.com/lgbarn/textchess-go/internal/player"
)

// Controller reads commands, runs games and keeps the running score.
type Controller struct {
	cfg       *config.Config
	board     *chess.Board
	in        *player.Input
	out       io.Writer
	rng       *rand.Rand
	observers []Observer

	turn        chess.Colour
	whiteScore  float64
	blackScore  float64
	inProgress  bool
	customBoard bool // set by setup, consumed by the next game
	gameID      uuid.UUID
}

// NewController creates a controller reading commands from in and writing
// to cfg.OutputFile. rng drives every computer player.
func NewController(cfg *config.Config, in io.Reader, rng *rand.Rand) *Controller {
	board := chess.NewBoard(chess.DefaultDimension)
	board.SetupInitialPosition()
	return &Controller{
		cfg:   cfg,
		board: board,
		in:    player.NewInput(in),
		out:   cfg.OutputFile,
		rng:   rng,
		turn:  chess.White,
	}
}

// Attach adds an observer. Attaching the same observer twice notifies it
// twice.
func (c *Controller) Attach(o Observer) {
	c.observers = append(c.observers, o)
}

// Detach removes every attachment of o.
func (c *Controller) Detach(o Observer) {
	kept := c.observers[:0]
	for _, obs := range c.observers {
		if obs != o {
			kept = append(kept, obs)
		}
	}
	c.observers = kept
}

// Snapshot returns the current game state.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		GameID:     c.gameID,
		WhiteScore: c.whiteScore,
		BlackScore: c.blackScore,
		Turn:       c.turn,
		Board:      c.board.Copy(),
		State:      c.board.State,
		InProgress: c.inProgress,
	}
}

// Score returns the running totals.
func (c *Controller) Score() (white, black float64) {
	return c.whiteScore, c.blackScore
}

func (c *Controller) notify() {
	if len(c.observers) == 0 {
		return
	}
	s := c.Snapshot()
	for _, o := range c.observers {
		o.Notify(s)
	}
}

func (c *Controller) logf(level int, format string, args ...interface{}) {
	if c.cfg.Verbosity >= level && c.cfg.LogFile != nil {
		fmt.Fprintf(c.cfg.LogFile, format, args...)
	}
}

// Run processes commands until the input ends, then prints the final
// score. It returns only read errors.
func (c *Controller) Run() error {
	for {
		fields, ok := c.in.Next()
		if !ok {
			break
		}
		if err := c.dispatch(fields); err != nil {
			fmt.Fprintln(c.out, "Invalid command.")
			c.logf(1, "%v\n", &errors.CommandError{Err: err, Command: fields[0], Line: c.in.Line()})
		}
	}

	fmt.Fprintf(c.out, "Final Score:\nWhite: %g\nBlack: %g\n", c.whiteScore, c.blackScore)
	return c.in.Err()
}

func (c *Controller) dispatch(fields []string) error {
	switch fields[0] {
	case "game":
		return c.playGame(fields[1:])
	case "setup":
		c.setup()
		return nil
	}
	return errors.Wrapf(errors.ErrInvalidCommand, "unknown command %q", fields[0])
}

// playGame starts a game between the named players and runs it to the
// end.
func (c *Controller) playGame(args []string) error {
	if len(args) != 2 {
		return errors.Wrap(errors.ErrInvalidCommand, "game needs a white and a black player")
	}
	defaultLevel := computer.Level(c.cfg.Game.DefaultLevel)
	whiteSpec, err := player.ParseSpec(args[0], defaultLevel)
	if err != nil {
		return err
	}
	blackSpec, err := player.ParseSpec(args[1], defaultLevel)
	if err != nil {
		return err
	}

	if !c.customBoard {
		c.board.SetupInitialPosition()
		c.board.State = chess.Default
		c.turn = chess.White
	}
	c.customBoard = false

	var players [2]player.Player
	players[chess.White] = player.New(whiteSpec, c.board, chess.White, c.in, c.out, c.rng)
	players[chess.Black] = player.New(blackSpec, c.board, chess.Black, c.in, c.out, c.rng)

	c.gameID = uuid.New()
	c.inProgress = true
	c.logf(1, "game %s: %s (white) vs %s (black)\n", c.gameID, whiteSpec, blackSpec)
	c.notify()

	maxPlies := c.cfg.Game.MaxPlies
	if maxPlies == 0 && whiteSpec.Kind == player.ComputerKind && blackSpec.Kind == player.ComputerKind {
		maxPlies = c.cfg.SelfPlay.MaxPlies
	}

	res, turn := playOut(c.board, players, c.turn, maxPlies, func(turn chess.Colour, plies int) {
		c.turn = turn
		c.logf(2, "game %s ply %d: %s\n", c.gameID, plies, engine.ToFEN(c.board, turn))
		if c.board.State == chess.Checked(turn) {
			fmt.Fprintf(c.out, "%s is in check.\n", turn)
		}
		c.notify()
	})
	c.turn = turn
	res.GameID = c.gameID
	res.FinalFEN = engine.ToFEN(c.board, turn)
	res.Signature = hashing.Signature(c.board, turn, res.Plies)
	c.finish(res)
	return nil
}

// finish announces the result, updates the score and ends the game.
func (c *Controller) finish(res Result) {
	switch res.Reason {
	case Checkmate:
		fmt.Fprintf(c.out, "Checkmate! %s wins!\n", c.turn.Opposite())
	case Stalemate:
		fmt.Fprintln(c.out, "Stalemate!")
	case Resignation:
		fmt.Fprintf(c.out, "%s wins!\n", c.turn.Opposite())
	case MoveLimit:
		fmt.Fprintln(c.out, "Draw by move limit.")
	}

	white, black := res.Outcome.Points()
	c.whiteScore += white
	c.blackScore += black
	c.inProgress = false
	c.logf(1, "game %s: %s by %s after %d plies\n", res.GameID, res.Outcome, res.Reason, res.Plies)
	c.logf(2, "game %s final position %016x\n", res.GameID, res.Signature.Hash)
	c.notify()
}

// setup edits the board until a "done" with a valid position or the end
// of input. It starts from an empty board.
func (c *Controller) setup() {
	c.board.Reset()
	c.board.State = chess.Default
	c.customBoard = true
	c.notify()

	for {
		fields, ok := c.in.Next()
		if !ok {
			return
		}
		switch fields[0] {
		case "+":
			if len(fields) != 3 || !c.addPiece(fields[1], fields[2]) {
				fmt.Fprintln(c.out, "Add failed. Invalid piece code or position.")
				continue
			}
			c.notify()
		case "-":
			if len(fields) != 2 || !c.removePiece(fields[1]) {
				fmt.Fprintln(c.out, "Remove failed. Invalid position.")
				continue
			}
			c.notify()
		case "=":
			colour, err := chess.ParseColour(strings.Join(fields[1:], " "))
			if err != nil {
				fmt.Fprintln(c.out, "Invalid command.")
				continue
			}
			c.turn = colour
		case "fen":
			if err := c.loadFEN(fields[1:]); err != nil {
				fmt.Fprintln(c.out, "Invalid FEN.")
				c.logf(1, "%v\n", &errors.CommandError{Err: err, Command: "fen", Line: c.in.Line()})
				continue
			}
			c.notify()
		case "done":
			if engine.VerifyBoard(c.board, c.turn) {
				c.notify()
				return
			}
			fmt.Fprintln(c.out, "Invalid board: unable to leave setup mode.")
			c.logf(2, "%v\n", &errors.CommandError{Err: errors.ErrSetupRejected, Command: "done", Line: c.in.Line()})
		default:
			fmt.Fprintln(c.out, "Invalid command.")
		}
	}
}

func (c *Controller) addPiece(code, square string) bool {
	pos, err := chess.ParseCoordinate(square, c.board.Dimension())
	if err != nil {
		return false
	}
	return engine.AddPiece(c.board, code, pos)
}

func (c *Controller) removePiece(square string) bool {
	pos, err := chess.ParseCoordinate(square, c.board.Dimension())
	if err != nil {
		return false
	}
	return engine.RemovePiece(c.board, pos)
}

// loadFEN replaces the board with a FEN placement. A side-to-move field,
// when present, also sets the turn.
func (c *Controller) loadFEN(args []string) error {
	if len(args) == 0 {
		return errors.Wrap(errors.ErrInvalidFEN, "fen needs a placement")
	}
	board, turn, err := engine.ParseFEN(strings.Join(args, " "))
	if err != nil {
		return err
	}
	c.board = board
	if len(args) > 1 {
		c.turn = turn
	}
	return nil
}
