package chess

import "strings"

// Square is one cell of the board arena. Piece.Type is Empty when the
// square is unoccupied.
type Square struct {
	Piece Piece
}

// Occupied reports whether the square holds a piece.
func (s Square) Occupied() bool {
	return s.Piece.Type != Empty
}

// Board is a square grid of optional pieces stored as a flat arena
// indexed by row*dim+col.
type Board struct {
	dim     int
	squares []Square

	// Classification of the position as of the last committed move or
	// setup verification.
	State BoardState
}

// NewBoard creates a new empty board with the given side length.
func NewBoard(dim int) *Board {
	if dim < 1 {
		dim = DefaultDimension
	}
	return &Board{
		dim:     dim,
		squares: make([]Square, dim*dim),
		State:   Default,
	}
}

// Dimension returns the side length of the board.
func (b *Board) Dimension() int {
	return b.dim
}

// InBounds reports whether c is a square of this board.
func (b *Board) InBounds(c Coordinate) bool {
	return c.InBounds(b.dim)
}

// index panics on out-of-range coordinates; callers bounds-check first.
func (b *Board) index(c Coordinate) int {
	if !c.InBounds(b.dim) {
		panic("chess: coordinate " + c.String() + " out of range")
	}
	return c.Row*b.dim + c.Col
}

// Get returns a copy of the piece at c and whether the square is occupied.
func (b *Board) Get(c Coordinate) (Piece, bool) {
	sq := b.squares[b.index(c)]
	return sq.Piece, sq.Occupied()
}

// Set places p at c, replacing any occupant, and stamps its position.
func (b *Board) Set(c Coordinate, p Piece) {
	p.Position = c
	b.squares[b.index(c)] = Square{Piece: p}
}

// Clear empties the square at c.
func (b *Board) Clear(c Coordinate) {
	b.squares[b.index(c)] = Square{}
}

// Reset removes every piece and resets the state.
func (b *Board) Reset() {
	for i := range b.squares {
		b.squares[i] = Square{}
	}
	b.State = Default
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{
		dim:     b.dim,
		squares: make([]Square, len(b.squares)),
		State:   b.State,
	}
	copy(newBoard.squares, b.squares)
	return newBoard
}

// Pieces returns copies of all pieces of the given colour in row-major
// order.
func (b *Board) Pieces(colour Colour) []Piece {
	var pieces []Piece
	for _, sq := range b.squares {
		if sq.Occupied() && sq.Piece.Colour == colour {
			pieces = append(pieces, sq.Piece)
		}
	}
	return pieces
}

// AllPieces returns copies of every piece on the board in row-major order.
func (b *Board) AllPieces() []Piece {
	var pieces []Piece
	for _, sq := range b.squares {
		if sq.Occupied() {
			pieces = append(pieces, sq.Piece)
		}
	}
	return pieces
}

// FindKing returns the position of the first king of the given colour.
func (b *Board) FindKing(colour Colour) (Coordinate, bool) {
	for _, sq := range b.squares {
		if sq.Occupied() && sq.Piece.Type == King && sq.Piece.Colour == colour {
			return sq.Piece.Position, true
		}
	}
	return Coordinate{}, false
}

// Equal reports whether two boards hold the same pieces on the same
// squares.
func (b *Board) Equal(other *Board) bool {
	if b.dim != other.dim {
		return false
	}
	for i := range b.squares {
		if b.squares[i] != other.squares[i] {
			return false
		}
	}
	return true
}

// SetupInitialPosition sets up the standard chess starting position.
// Boards smaller than 8 squares are left empty.
func (b *Board) SetupInitialPosition() {
	b.Reset()
	if b.dim < DefaultDimension {
		return
	}

	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col, pt := range backRank {
		b.Set(Coordinate{Row: 0, Col: col}, Piece{Type: pt, Colour: White})
		b.Set(Coordinate{Row: 1, Col: col}, Piece{Type: Pawn, Colour: White})
		b.Set(Coordinate{Row: b.dim - 2, Col: col}, Piece{Type: Pawn, Colour: Black})
		b.Set(Coordinate{Row: b.dim - 1, Col: col}, Piece{Type: pt, Colour: Black})
	}
}

// String renders the board with rank 8 at the top, one letter per
// piece and '.' for empty squares.
func (b *Board) String() string {
	var sb strings.Builder
	for row := b.dim - 1; row >= 0; row-- {
		for col := 0; col < b.dim; col++ {
			p, ok := b.Get(Coordinate{Row: row, Col: col})
			if ok {
				sb.WriteByte(p.Code())
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
