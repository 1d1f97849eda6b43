package engine

import (
	"github.com/lgbarn/textchess-go/internal/chess"
)

// TakeTurn moves the piece on from to to for colour. A pawn reaching the
// last rank becomes a queen. It returns false and leaves the board
// untouched if the move is not legal.
func TakeTurn(board *chess.Board, from, to chess.Coordinate, colour chess.Colour) bool {
	return TakeTurnPromote(board, from, to, colour, chess.Queen)
}

// TakeTurnPromote is TakeTurn with an explicit promotion piece.
//
// Checks run cheapest first: source square and colour, then whether the
// game is already over, then piece geometry. Only then is the move
// committed; if it leaves the mover's king attacked it is rolled back.
func TakeTurnPromote(board *chess.Board, from, to chess.Coordinate, colour chess.Colour, promotion chess.PieceType) bool {
	if !board.InBounds(from) || !board.InBounds(to) {
		return false
	}

	// Is there a piece at from, and is it ours?
	piece, ok := board.Get(from)
	if !ok || piece.Colour != colour {
		return false
	}

	// Does the position still allow moving?
	if ComputeBoardState(board, colour).IsTerminal() {
		return false
	}

	// Can the piece make the move?
	if !CanTargetSquare(board, piece, to) {
		return false
	}

	moved := piece
	if piece.Type == chess.Pawn && to.Row == promotionRow(board, colour) {
		if !isPromotionPiece(promotion) {
			return false
		}
		moved.Type = promotion
	}

	captured, hadCapture := board.Get(to)
	prevState := board.State

	board.Clear(from)
	board.Set(to, moved)

	// Undo the move if it leaves our own king attacked
	if IsKingAttacked(board, colour) {
		board.Set(from, piece)
		if hadCapture {
			board.Set(to, captured)
		} else {
			board.Clear(to)
		}
		board.State = prevState
		return false
	}

	UpdateBoardState(board, colour.Opposite())
	return true
}

// isPromotionPiece reports whether a pawn may promote to pt.
func isPromotionPiece(pt chess.PieceType) bool {
	switch pt {
	case chess.Queen, chess.Rook, chess.Bishop, chess.Knight:
		return true
	default:
		return false
	}
}
