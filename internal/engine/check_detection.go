package engine

import "github.com/lgbarn/textchess-go/internal/chess"

// IsKingAttacked returns true if the given colour's king is targeted by a
// pseudo-legal move of any opposing piece. A side with no king is never
// attacked.
func IsKingAttacked(board *chess.Board, colour chess.Colour) bool {
	king, ok := board.FindKing(colour)
	if !ok {
		return false
	}
	return isSquareAttacked(board, king, colour.Opposite())
}

// isSquareAttacked returns true if the square is a pseudo-legal destination
// of some piece of the given colour.
func isSquareAttacked(board *chess.Board, square chess.Coordinate, byColour chess.Colour) bool {
	for _, p := range board.Pieces(byColour) {
		if CanTargetSquare(board, p, square) {
			return true
		}
	}
	return false
}

// DangerZone returns the union of the pseudo-legal destinations of every
// piece of the given colour.
func DangerZone(board *chess.Board, colour chess.Colour) map[chess.Coordinate]bool {
	zone := make(map[chess.Coordinate]bool)
	for _, p := range board.Pieces(colour) {
		for _, c := range ValidMoves(board, p) {
			zone[c] = true
		}
	}
	return zone
}
