package engine

import "github.com/lgbarn/textchess-go/internal/chess"

// ComputeBoardState classifies the position for the side to move. It is a
// pure function of the grid and does not modify board.
func ComputeBoardState(board *chess.Board, turn chess.Colour) chess.BoardState {
	attacked := IsKingAttacked(board, turn)
	canMove := HasLegalMoves(board, turn)

	switch {
	case attacked && canMove:
		return chess.Checked(turn)
	case attacked:
		return chess.Checkmated(turn)
	case !canMove:
		return chess.Stalemate
	}
	return chess.Default
}

// UpdateBoardState recomputes the classification for turn and stores it
// on the board.
func UpdateBoardState(board *chess.Board, turn chess.Colour) chess.BoardState {
	board.State = ComputeBoardState(board, turn)
	return board.State
}
