package board

import "fmt"

// Move is a single chess move record: an origin square, a destination
// square, and an optional promotion piece. It carries no other flag — spec
// deliberately omits a quiet/capture/en-passant/castling tag, since all of
// that is inferable from the board plus the en-passant square in effect at
// application time (see Board.ApplyMove).
type Move struct {
	From, To  Square
	Promotion PromotionPiece
}

// String returns the UCI form of the move, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != NoPromotion {
		s += string(m.Promotion.promotionChar())
	}
	return s
}

// ParseUCIMove parses a four- or five-character UCI move string: a from
// square, a to square, and an optional promotion letter from {q,r,b,n}.
// Anything else is rejected.
func ParseUCIMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("board: invalid UCI move %q", s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("board: invalid UCI move %q: %w", s, err)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("board: invalid UCI move %q: %w", s, err)
	}
	mv := Move{From: from, To: to}
	if len(s) == 5 {
		promo, ok := promotionFromChar(s[4])
		if !ok {
			return Move{}, fmt.Errorf("board: invalid UCI move %q: bad promotion letter %q", s, s[4])
		}
		mv.Promotion = promo
	}
	return mv, nil
}

// ToUCI returns the UCI form of the move (an alias of String, named to
// match the public surface in spec 6).
func (m Move) ToUCI() string {
	return m.String()
}

// FromUCI parses a UCI move string (an alias of ParseUCIMove, named to
// match the public surface in spec 6).
func FromUCI(s string) (Move, error) {
	return ParseUCIMove(s)
}

// MaxMovesPerPosition bounds the worst-case number of legal moves in any
// reachable chess position (spec 5), sizing MoveList's backing array.
const MaxMovesPerPosition = 256

// MoveList is a fixed-capacity, non-allocating list of moves.
type MoveList struct {
	moves [MaxMovesPerPosition]Move
	count int
}

// Len returns the number of moves currently in the list.
func (ml *MoveList) Len() int {
	return ml.count
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Add appends a move to the list.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.count] = m
	ml.count++
}

// Slice returns the moves currently in the list as a slice backed by the
// list's own array; it is invalidated by further Add calls.
func (ml *MoveList) Slice() []Move {
	return ml.moves[:ml.count]
}

// Contains reports whether the list holds m.
func (ml *MoveList) Contains(m Move) bool {
	for i := 0; i < ml.count; i++ {
		if ml.moves[i] == m {
			return true
		}
	}
	return false
}
