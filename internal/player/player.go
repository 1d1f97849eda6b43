// Package player provides the participants the game controller asks to
// move: humans reading commands from an Input and computer players backed
// by the heuristic tiers.
package player

import (
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"

	"github.com/lgbarn/textchess-go/internal/chess"
	"github.com/lgbarn/textchess-go/internal/computer"
	"github.com/lgbarn/textchess-go/internal/engine"
	"github.com/lgbarn/textchess-go/internal/errors"
)

// Player is one side of a game.
type Player interface {
	// Colour returns the side this player moves.
	Colour() chess.Colour

	// TakeTurn makes exactly one move on the board. It returns false when
	// the player resigns or cannot move.
	TakeTurn() bool
}

// Kind distinguishes human from computer players.
type Kind int

const (
	HumanKind Kind = iota + 1
	ComputerKind
)

// Spec describes a player as named in a game command.
type Spec struct {
	Kind  Kind
	Level computer.Level // Only for computer
}

// String returns the spec in command form, e.g. "human" or "computer3".
func (s Spec) String() string {
	if s.Kind == ComputerKind {
		return "computer" + strconv.Itoa(int(s.Level))
	}
	return "human"
}

// ParseSpec parses "human", "computer", "computerN" or "computer[N]".
// A bare "computer" uses defaultLevel.
func ParseSpec(s string, defaultLevel computer.Level) (Spec, error) {
	lower := strings.ToLower(s)
	if lower == "human" {
		return Spec{Kind: HumanKind}, nil
	}
	if !strings.HasPrefix(lower, "computer") {
		return Spec{}, errors.Wrapf(errors.ErrInvalidCommand, "unknown player %q", s)
	}

	rest := strings.TrimPrefix(lower, "computer")
	if strings.HasPrefix(rest, "[") && strings.HasSuffix(rest, "]") {
		rest = rest[1 : len(rest)-1]
	}
	if rest == "" {
		return Spec{Kind: ComputerKind, Level: defaultLevel}, nil
	}

	n, err := strconv.Atoi(rest)
	if err != nil {
		return Spec{}, errors.Wrapf(errors.ErrInvalidCommand, "unknown player %q", s)
	}
	level, err := computer.ParseLevel(n)
	if err != nil {
		return Spec{}, err
	}
	return Spec{Kind: ComputerKind, Level: level}, nil
}

// New creates the player a spec describes. Human players read from in;
// both kinds write prompts and moves to out.
func New(spec Spec, board *chess.Board, colour chess.Colour, in *Input, out io.Writer, rng *rand.Rand) Player {
	if spec.Kind == ComputerKind {
		return NewComputer(board, colour, spec.Level, rng, out)
	}
	return NewHuman(board, colour, in, out)
}

// Human is a player whose moves come from an Input.
type Human struct {
	board  *chess.Board
	colour chess.Colour
	in     *Input
	out    io.Writer
}

// NewHuman creates a human player.
func NewHuman(board *chess.Board, colour chess.Colour, in *Input, out io.Writer) *Human {
	return &Human{board: board, colour: colour, in: in, out: out}
}

// Colour returns the side this player moves.
func (h *Human) Colour() chess.Colour {
	return h.colour
}

// TakeTurn reads commands until a legal move is played. "resign" and end
// of input both end the turn without a move.
func (h *Human) TakeTurn() bool {
	fmt.Fprintf(h.out, "%s's turn: ", h.colour)
	for {
		fields, ok := h.in.Next()
		if !ok {
			return false
		}
		switch fields[0] {
		case "resign":
			return false
		case "move":
			from, to, promotion, err := ParseMove(fields[1:], h.board.Dimension())
			if err == nil && engine.TakeTurnPromote(h.board, from, to, h.colour, promotion) {
				return true
			}
			fmt.Fprintln(h.out, "Invalid move.")
		default:
			fmt.Fprintln(h.out, "Invalid command.")
		}
	}
}

// ParseMove parses the arguments of a move command: two squares and an
// optional promotion piece letter (any case). Promotion defaults to a
// queen.
func ParseMove(args []string, dim int) (from, to chess.Coordinate, promotion chess.PieceType, err error) {
	if len(args) < 2 || len(args) > 3 {
		return from, to, chess.Empty, errors.Wrapf(errors.ErrInvalidCommand, "move takes 2 or 3 arguments, got %d", len(args))
	}
	if from, err = chess.ParseCoordinate(args[0], dim); err != nil {
		return from, to, chess.Empty, err
	}
	if to, err = chess.ParseCoordinate(args[1], dim); err != nil {
		return from, to, chess.Empty, err
	}

	promotion = chess.Queen
	if len(args) == 3 {
		if promotion, _, err = chess.ParsePieceCode(args[2]); err != nil {
			return from, to, chess.Empty, err
		}
	}
	return from, to, promotion, nil
}

// Computer is a player driven by a heuristic level.
type Computer struct {
	board  *chess.Board
	colour chess.Colour
	level  computer.Level
	rng    *rand.Rand
	out    io.Writer
}

// NewComputer creates a computer player. rng must not be shared with
// another goroutine.
func NewComputer(board *chess.Board, colour chess.Colour, level computer.Level, rng *rand.Rand, out io.Writer) *Computer {
	return &Computer{board: board, colour: colour, level: level, rng: rng, out: out}
}

// Colour returns the side this player moves.
func (c *Computer) Colour() chess.Colour {
	return c.colour
}

// TakeTurn plays the level's preferred move and echoes it as a move
// command.
func (c *Computer) TakeTurn() bool {
	fmt.Fprintf(c.out, "%s's turn: ", c.colour)
	m, ok := computer.Play(c.board, c.colour, c.level, c.rng)
	if !ok {
		fmt.Fprintln(c.out)
		return false
	}
	fmt.Fprintf(c.out, "move %s\n", m)
	return true
}
