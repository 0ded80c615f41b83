package board

import "fmt"

// CastlingRights is a 4-bit set of the castling privileges still available:
// WK=1, WQ=2, BK=4, BQ=8.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                            // q

	NoCastling  CastlingRights = 0
	AllCastling CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

// Has reports whether every right in mask is present.
func (cr CastlingRights) Has(mask CastlingRights) bool {
	return cr&mask == mask
}

// Remove clears the given rights and returns the result.
func (cr CastlingRights) Remove(mask CastlingRights) CastlingRights {
	return cr &^ mask
}

// CanCastle reports whether a side may still castle in the given direction.
func (cr CastlingRights) CanCastle(c Color, kingSide bool) bool {
	switch {
	case c == White && kingSide:
		return cr.Has(WhiteKingSideCastle)
	case c == White && !kingSide:
		return cr.Has(WhiteQueenSideCastle)
	case c == Black && kingSide:
		return cr.Has(BlackKingSideCastle)
	default:
		return cr.Has(BlackQueenSideCastle)
	}
}

// String formats the rights in canonical FEN order (KQkq), or "-" if empty.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := make([]byte, 0, 4)
	if cr.Has(WhiteKingSideCastle) {
		s = append(s, 'K')
	}
	if cr.Has(WhiteQueenSideCastle) {
		s = append(s, 'Q')
	}
	if cr.Has(BlackKingSideCastle) {
		s = append(s, 'k')
	}
	if cr.Has(BlackQueenSideCastle) {
		s = append(s, 'q')
	}
	return string(s)
}

// ParseCastlingRights parses a FEN castling field: any subset of "KQkq", or
// "-" for none.
func ParseCastlingRights(s string) (CastlingRights, error) {
	if s == "-" {
		return NoCastling, nil
	}
	var cr CastlingRights
	for _, c := range s {
		switch c {
		case 'K':
			cr |= WhiteKingSideCastle
		case 'Q':
			cr |= WhiteQueenSideCastle
		case 'k':
			cr |= BlackKingSideCastle
		case 'q':
			cr |= BlackQueenSideCastle
		default:
			return NoCastling, fmt.Errorf("board: invalid castling rights %q", s)
		}
	}
	return cr, nil
}

// Home squares for castling, indexed [Color][sideIndex] where sideIndex 0
// is kingside and 1 is queenside (see castleSideIndex).
var (
	kingHome  = [2]Square{E1, E8}
	kingTo    = [2][2]Square{{G1, C1}, {G8, C8}}
	rookFrom  = [2][2]Square{{H1, A1}, {H8, A8}}
	rookTo    = [2][2]Square{{F1, D1}, {F8, D8}}
	rightMask = [2][2]CastlingRights{
		{WhiteKingSideCastle, WhiteQueenSideCastle},
		{BlackKingSideCastle, BlackQueenSideCastle},
	}
)

// side index: 0 = kingside, 1 = queenside, to match the arrays above.
func castleSideIndex(kingSide bool) int {
	if kingSide {
		return 0
	}
	return 1
}
