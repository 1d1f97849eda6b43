// Package engine provides chess move generation, legality checking and
// board manipulation.
package engine

import "github.com/lgbarn/textchess-go/internal/chess"

var (
	knightOffsets   = [][2]int{{1, 2}, {1, -2}, {-1, 2}, {-1, -2}, {2, 1}, {2, -1}, {-2, 1}, {-2, -1}}
	kingOffsets     = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs    = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs    = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	allSlidingDirs  = append(append([][2]int{}, straightDirs...), diagonalDirs...)
	pawnCaptureCols = []int{-1, 1}
)

// ValidMoves returns the pseudo-legal destinations of p on board: moves that
// respect piece geometry, board bounds and blocking, but may leave the
// mover's own king attacked.
func ValidMoves(board *chess.Board, p chess.Piece) []chess.Coordinate {
	switch p.Type {
	case chess.King:
		return stepMoves(board, p, kingOffsets)
	case chess.Knight:
		return stepMoves(board, p, knightOffsets)
	case chess.Queen:
		return slidingMoves(board, p, allSlidingDirs)
	case chess.Rook:
		return slidingMoves(board, p, straightDirs)
	case chess.Bishop:
		return slidingMoves(board, p, diagonalDirs)
	case chess.Pawn:
		return pawnMoves(board, p)
	}
	return nil
}

// stepMoves handles pieces that move exactly one offset (king, knight).
func stepMoves(board *chess.Board, p chess.Piece, offsets [][2]int) []chess.Coordinate {
	var moves []chess.Coordinate
	for _, off := range offsets {
		next := p.Position.Offset(off[0], off[1])
		if !board.InBounds(next) {
			continue
		}
		if canOccupy(board, p.Colour, next) {
			moves = append(moves, next)
		}
	}
	return moves
}

// slidingMoves projects along each direction until blocked.
func slidingMoves(board *chess.Board, p chess.Piece, dirs [][2]int) []chess.Coordinate {
	var moves []chess.Coordinate
	for _, dir := range dirs {
		next := p.Position.Offset(dir[0], dir[1])
		for board.InBounds(next) {
			target, occupied := board.Get(next)
			if occupied {
				if target.Colour != p.Colour {
					moves = append(moves, next)
				}
				break // Blocked
			}
			moves = append(moves, next)
			next = next.Offset(dir[0], dir[1])
		}
	}
	return moves
}

// pawnMoves generates forward advances and diagonal captures.
func pawnMoves(board *chess.Board, p chess.Piece) []chess.Coordinate {
	var moves []chess.Coordinate
	dir := chess.ColourOffset(p.Colour)

	one := p.Position.Offset(dir, 0)
	if board.InBounds(one) {
		if _, occupied := board.Get(one); !occupied {
			moves = append(moves, one)

			// Double push from the home rank
			if p.Position.Row == pawnHomeRow(board, p.Colour) {
				two := one.Offset(dir, 0)
				if board.InBounds(two) {
					if _, occupied := board.Get(two); !occupied {
						moves = append(moves, two)
					}
				}
			}
		}
	}

	for _, dc := range pawnCaptureCols {
		diag := p.Position.Offset(dir, dc)
		if !board.InBounds(diag) {
			continue
		}
		if target, occupied := board.Get(diag); occupied && target.Colour != p.Colour {
			moves = append(moves, diag)
		}
	}
	return moves
}

// pawnHomeRow returns the row pawns of the given colour start on.
func pawnHomeRow(board *chess.Board, colour chess.Colour) int {
	if colour == chess.White {
		return 1
	}
	return board.Dimension() - 2
}

// promotionRow returns the row on which pawns of the given colour promote.
func promotionRow(board *chess.Board, colour chess.Colour) int {
	if colour == chess.White {
		return board.Dimension() - 1
	}
	return 0
}

// canOccupy reports whether a piece of colour may land on c: the square is
// empty or holds an enemy piece.
func canOccupy(board *chess.Board, colour chess.Colour, c chess.Coordinate) bool {
	target, occupied := board.Get(c)
	return !occupied || target.Colour != colour
}

// CanTargetSquare reports whether target is among the pseudo-legal moves of p.
func CanTargetSquare(board *chess.Board, p chess.Piece, target chess.Coordinate) bool {
	for _, c := range ValidMoves(board, p) {
		if c == target {
			return true
		}
	}
	return false
}

// CanTargetSquareFrom reports whether p, once moved to via, could reach
// target with a pseudo-legal move. The move to via is simulated on a copy
// of the board, capturing any occupant; board is left untouched.
func CanTargetSquareFrom(board *chess.Board, p chess.Piece, via, target chess.Coordinate) bool {
	if !board.InBounds(via) || !board.InBounds(target) {
		return false
	}
	scratch := board.Copy()
	if board.InBounds(p.Position) {
		if cur, ok := scratch.Get(p.Position); ok && cur == p {
			scratch.Clear(p.Position)
		}
	}
	scratch.Set(via, p)
	moved, _ := scratch.Get(via)
	return CanTargetSquare(scratch, moved, target)
}
