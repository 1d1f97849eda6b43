package engine

import "github.com/lgbarn/textchess-go/internal/chess"

// AddPiece places the piece named by a setup code (uppercase White,
// lowercase Black) at pos, replacing any occupant. No legality checks
// are made.
func AddPiece(board *chess.Board, code string, pos chess.Coordinate) bool {
	if !board.InBounds(pos) {
		return false
	}
	pt, colour, err := chess.ParsePieceCode(code)
	if err != nil {
		return false
	}
	board.Set(pos, chess.Piece{Type: pt, Colour: colour})
	return true
}

// RemovePiece empties pos. It returns false if there was nothing to remove.
func RemovePiece(board *chess.Board, pos chess.Coordinate) bool {
	if !board.InBounds(pos) {
		return false
	}
	if _, ok := board.Get(pos); !ok {
		return false
	}
	board.Clear(pos)
	return true
}

// VerifyBoard reports whether a setup position may be played with turn to
// move: exactly one king per colour, no pawns on the first or last rank,
// and neither king in check. The position must classify as Default;
// stalemated or already-checked setups are rejected. board.State is
// recomputed only when the king count and pawn ranks pass; a board
// rejected on those grounds keeps its previous State.
func VerifyBoard(board *chess.Board, turn chess.Colour) bool {
	kings := map[chess.Colour]int{}
	last := board.Dimension() - 1
	for _, p := range board.AllPieces() {
		switch p.Type {
		case chess.King:
			kings[p.Colour]++
		case chess.Pawn:
			if p.Position.Row == 0 || p.Position.Row == last {
				return false
			}
		}
	}
	if kings[chess.White] != 1 || kings[chess.Black] != 1 {
		return false
	}

	if UpdateBoardState(board, turn) != chess.Default {
		return false
	}
	return !IsKingAttacked(board, turn.Opposite())
}
