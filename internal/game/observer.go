package game

import (
	"github.com/google/uuid"

	"github.com/lgbarn/textchess-go/internal/chess"
)

// Snapshot is the game state handed to observers. Board is a private copy.
type Snapshot struct {
	GameID     uuid.UUID
	WhiteScore float64
	BlackScore float64
	Turn       chess.Colour
	Board      *chess.Board
	State      chess.BoardState
	InProgress bool
}

// Observer is notified after every change to the board or scores.
// Observers are compared with == on Detach, so use pointer types.
type Observer interface {
	Notify(s Snapshot)
}
