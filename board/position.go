package board

import "fmt"

// HistoryEntry is the snapshot taken just before a move is applied, enough
// to reverse it without ever having snapshotted the board itself (spec 3 /
// the "History storage" design note).
type HistoryEntry struct {
	Castling      CastlingRights
	EnPassant     *Square
	HalfmoveClock int
	Fullmove      int
	Hash          uint64

	Move Move

	// Captured is NoPiece if the move captured nothing. CapturedSquare is
	// only meaningful when Captured != NoPiece; it is mv.To except for an
	// en-passant capture, where the victim stands on a different square.
	Captured       Piece
	CapturedSquare Square
}

// Position is a complete, owning chess game state: a Board plus side to
// move, castling rights, en-passant target, move counters, an incremental
// Zobrist hash, and a linear undo history.
type Position struct {
	Board

	SideToMove    Color
	Castling      CastlingRights
	EnPassant     *Square
	HalfmoveClock int
	Fullmove      int

	hash uint64

	history []HistoryEntry
}

// StartFEN is the FEN of the standard initial chess position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewPosition returns the standard starting position.
func NewPosition() *Position {
	pos, err := ParseFEN(StartFEN)
	if err != nil {
		panic("board: start FEN failed to parse: " + err.Error())
	}
	return pos
}

// Clone returns an independent deep copy; the two positions (including
// history) may then be advanced independently, even on separate
// goroutines, without further coordination.
func (p *Position) Clone() *Position {
	cp := *p
	if p.EnPassant != nil {
		cp.EnPassant = squarePtr(*p.EnPassant)
	}
	cp.history = make([]HistoryEntry, len(p.history))
	copy(cp.history, p.history)
	return &cp
}

// Hash returns the current Zobrist hash of the position.
func (p *Position) Hash() uint64 {
	return p.hash
}

// InCheck reports whether the side to move is currently in check.
func (p *Position) InCheck() bool {
	return p.Board.IsAttacked(p.Board.King(p.SideToMove), p.SideToMove.Other())
}

// String renders the position as an ASCII board plus state, for debugging.
func (p *Position) String() string {
	s := "\n"
	for rank := 7; rank >= 0; rank-- {
		s += fmt.Sprintf("%d  ", rank+1)
		for file := 0; file < 8; file++ {
			piece := p.PieceAt(NewSquare(file, rank))
			if piece == NoPiece {
				s += ". "
			} else {
				s += piece.String() + " "
			}
		}
		s += "\n"
	}
	s += "\n   a b c d e f g h\n\n"
	s += fmt.Sprintf("Side to move: %s\n", p.SideToMove)
	s += fmt.Sprintf("Castling: %s\n", p.Castling)
	if p.EnPassant != nil {
		s += fmt.Sprintf("En passant: %s\n", p.EnPassant)
	} else {
		s += "En passant: -\n"
	}
	s += fmt.Sprintf("Halfmove clock: %d\n", p.HalfmoveClock)
	s += fmt.Sprintf("Fullmove: %d\n", p.Fullmove)
	s += fmt.Sprintf("Hash: %016x\n", p.hash)
	return s
}

// recomputeHash fully recomputes the hash from the current board/state;
// used to seed a new Position and as a debug cross-check after Make.
func (p *Position) recomputeHash() uint64 {
	return computeHash(&p.Board, p.SideToMove, p.Castling, p.EnPassant)
}

// debugCheckHash panics if the incrementally maintained hash has drifted
// from a full recomputation — the property spec 4.7/8 requires after every
// Make. Cheap enough (one full board walk) to leave enabled unconditionally;
// any mismatch means a corrupted position, which spec 7 treats as fatal.
func (p *Position) debugCheckHash() {
	if want := p.recomputeHash(); want != p.hash {
		panic(fmt.Sprintf("board: zobrist hash drifted: incremental=%016x recomputed=%016x", p.hash, want))
	}
}
