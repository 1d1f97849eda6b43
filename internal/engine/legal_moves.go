package engine

import "github.com/lgbarn/textchess-go/internal/chess"

// ValidLegalMoves returns the pseudo-legal moves of p that do not leave its
// own king attacked, in generation order.
func ValidLegalMoves(board *chess.Board, p chess.Piece) []chess.Coordinate {
	var legal []chess.Coordinate
	for _, to := range ValidMoves(board, p) {
		if VerifyNoCheckAfterMove(board, p.Position, to) {
			legal = append(legal, to)
		}
	}
	return legal
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for _, p := range board.Pieces(colour) {
		for _, to := range ValidMoves(board, p) {
			if VerifyNoCheckAfterMove(board, p.Position, to) {
				return true
			}
		}
	}
	return false
}

// VerifyNoCheckAfterMove makes the move on a copied board and reports
// whether the mover's king is safe afterwards. The live board is never
// modified. It returns false if from is empty or off the board.
func VerifyNoCheckAfterMove(board *chess.Board, from, to chess.Coordinate) bool {
	if !board.InBounds(from) || !board.InBounds(to) {
		return false
	}
	piece, ok := board.Get(from)
	if !ok {
		return false
	}

	testBoard := board.Copy()
	testBoard.Clear(from)
	testBoard.Set(to, piece)

	return !IsKingAttacked(testBoard, piece.Colour)
}
