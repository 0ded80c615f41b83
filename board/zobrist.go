package board

import "sync"

// Zobrist hash keys. Filled eagerly, once, by a fixed-seed xorshift64
// generator, then left constant for the life of the process (spec 4.5).
var (
	zobristPiece      [2][6][64]uint64
	zobristEnPassant  [8]uint64 // indexed by file only, not square
	zobristCastling   [16]uint64
	zobristSideToMove uint64

	zobristOnce sync.Once
)

// xorshift64 seed. Any fixed nonzero constant works; this one is the value
// spec 4.5 gives as an example.
const zobristSeed uint64 = 0x75BCD15

type xorshift64 struct {
	state uint64
}

func (x *xorshift64) next() uint64 {
	x.state ^= x.state << 13
	x.state ^= x.state >> 7
	x.state ^= x.state << 17
	return x.state
}

func ensureZobrist() {
	zobristOnce.Do(func() {
		rng := &xorshift64{state: zobristSeed}
		for c := White; c <= Black; c++ {
			for pt := Pawn; pt <= King; pt++ {
				for sq := A1; sq <= H8; sq++ {
					zobristPiece[c][pt][sq] = rng.next()
				}
			}
		}
		for file := 0; file < 8; file++ {
			zobristEnPassant[file] = rng.next()
		}
		for i := 0; i < 16; i++ {
			zobristCastling[i] = rng.next()
		}
		zobristSideToMove = rng.next()
	})
}

// ZobristPiece returns the key for a piece of color c and type pt on sq.
func ZobristPiece(c Color, pt PieceType, sq Square) uint64 {
	ensureZobrist()
	return zobristPiece[c][pt][sq]
}

// ZobristEnPassant returns the key for an en-passant target on the given
// file (0-7).
func ZobristEnPassant(file int) uint64 {
	ensureZobrist()
	return zobristEnPassant[file]
}

// ZobristCastling returns the key for a full castling-rights mask.
func ZobristCastling(cr CastlingRights) uint64 {
	ensureZobrist()
	return zobristCastling[cr]
}

// ZobristSideToMove returns the key XORed in exactly when it is Black's
// turn to move.
func ZobristSideToMove() uint64 {
	ensureZobrist()
	return zobristSideToMove
}

// computeHash fully recomputes the Zobrist hash of a board/state tuple from
// scratch. Used both to seed a freshly parsed Position and, after every
// Make, to cross-check the incrementally maintained hash.
func computeHash(b *Board, side Color, castling CastlingRights, ep *Square) uint64 {
	ensureZobrist()
	var h uint64
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			bb := b.Pieces[c][pt]
			for bb != Empty {
				sq := bb.PopLSB()
				h ^= zobristPiece[c][pt][sq]
			}
		}
	}
	if side == Black {
		h ^= zobristSideToMove
	}
	h ^= zobristCastling[castling]
	if ep != nil {
		h ^= zobristEnPassant[ep.File()]
	}
	return h
}
