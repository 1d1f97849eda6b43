// Package hashing provides position hashes and duplicate detection for
// finished games.
package hashing

import (
	"github.com/lgbarn/textchess-go/internal/chess"
)

// Fixed salts mixed into the side-to-move and board-size terms.
const (
	blackToMoveKey uint64 = 0x9d39247e33776d41
	dimensionKey   uint64 = 0x2af7398005aaa5c7
)

// splitmix64 scrambles x into a well-distributed 64-bit key.
func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// pieceKey returns the Zobrist key for a piece standing on square index i.
// Keys are derived rather than tabled so any board size can be hashed.
func pieceKey(p chess.Piece, i int) uint64 {
	return splitmix64(uint64(i)<<8 | uint64(p.Type)<<1 | uint64(p.Colour))
}

// GenerateZobristHash hashes the pieces on board and the side to move.
func GenerateZobristHash(board *chess.Board, turn chess.Colour) uint64 {
	dim := board.Dimension()
	hash := splitmix64(dimensionKey ^ uint64(dim))
	for row := 0; row < dim; row++ {
		for col := 0; col < dim; col++ {
			if p, ok := board.Get(chess.Coordinate{Row: row, Col: col}); ok {
				hash ^= pieceKey(p, row*dim+col)
			}
		}
	}
	if turn == chess.Black {
		hash ^= blackToMoveKey
	}
	return hash
}

// WeakHash is a cheap order-dependent checksum of the piece placement,
// used to confirm a Zobrist match.
func WeakHash(board *chess.Board) uint32 {
	dim := board.Dimension()
	var hash uint32
	for row := 0; row < dim; row++ {
		for col := 0; col < dim; col++ {
			code := uint32('.')
			if p, ok := board.Get(chess.Coordinate{Row: row, Col: col}); ok {
				code = uint32(p.Code())
			}
			hash = hash*31 + code
		}
	}
	return hash
}

// GameSignature identifies a finished game.
type GameSignature struct {
	// Hash is the Zobrist hash of the final position
	Hash uint64
	// WeakHash is a second checksum of the final placement
	WeakHash uint32
	// Plies is the number of half-moves played
	Plies int
}

// Signature builds the signature of a game that ended on board after
// plies half-moves with turn to move.
func Signature(board *chess.Board, turn chess.Colour, plies int) GameSignature {
	return GameSignature{
		Hash:     GenerateZobristHash(board, turn),
		WeakHash: WeakHash(board),
		Plies:    plies,
	}
}

// DuplicateDetector remembers the signatures of finished games.
type DuplicateDetector struct {
	// hashTable stores seen signatures by Zobrist hash
	hashTable map[uint64][]GameSignature
	// useExactMatch also requires the ply counts to agree
	useExactMatch bool
	// duplicateCount tracks number of duplicates found
	duplicateCount int
	// maxCapacity limits stored signatures; 0 means unlimited
	maxCapacity int
	size        int
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]GameSignature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// CheckAndAdd reports whether sig matches a game already seen, and
// remembers it if not. Once the detector is full new signatures are still
// checked but no longer stored.
func (d *DuplicateDetector) CheckAndAdd(sig GameSignature) bool {
	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.size++
	return false
}

func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	if d.useExactMatch && a.Plies != b.Plies {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique games stored.
func (d *DuplicateDetector) UniqueCount() int {
	return d.size
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.size >= d.maxCapacity
}
