package board

// MakeMove applies mv, which must be a legal move for the side to move in
// the current position (callers typically draw mv from LegalMoves). It
// mutates the board, updates castling rights, the en-passant target, the
// halfmove clock, the fullmove number, and side to move, maintains the
// Zobrist hash incrementally, and pushes a HistoryEntry so UnmakeMove can
// reverse the move without the board ever having been snapshotted wholesale.
func (p *Position) MakeMove(mv Move) {
	us := p.SideToMove
	them := us.Other()
	mover := p.PieceAt(mv.From)

	entry := HistoryEntry{
		Castling:      p.Castling,
		EnPassant:     p.EnPassant,
		HalfmoveClock: p.HalfmoveClock,
		Fullmove:      p.Fullmove,
		Hash:          p.hash,
		Move:          mv,
		Captured:      NoPiece,
	}

	h := p.hash
	h ^= ZobristCastling(p.Castling)
	if p.EnPassant != nil {
		h ^= ZobristEnPassant(p.EnPassant.File())
	}

	isEnPassant := mover.Type() == Pawn && p.EnPassant != nil && mv.To == *p.EnPassant
	if isEnPassant {
		victimSq := epVictimSquare(mv.To, us)
		victim := NewPiece(Pawn, them)
		entry.Captured = victim
		entry.CapturedSquare = victimSq
		h ^= ZobristPiece(them, Pawn, victimSq)
	} else if captured := p.PieceAt(mv.To); captured != NoPiece {
		entry.Captured = captured
		entry.CapturedSquare = mv.To
		h ^= ZobristPiece(captured.Color(), captured.Type(), mv.To)
	}

	p.Board.ApplyMove(mv, us, p.EnPassant)

	h ^= ZobristPiece(us, mover.Type(), mv.From)
	if mv.Promotion != NoPromotion {
		h ^= ZobristPiece(us, mv.Promotion.PieceType(), mv.To)
	} else {
		h ^= ZobristPiece(us, mover.Type(), mv.To)
	}

	isCastle := mover.Type() == King && abs(mv.To.File()-mv.From.File()) == 2
	if isCastle {
		s := castleSideIndex(mv.To.File() == kingTo[us][0].File())
		h ^= ZobristPiece(us, Rook, rookFrom[us][s])
		h ^= ZobristPiece(us, Rook, rookTo[us][s])
	}

	newCastling := p.Castling
	if mover.Type() == King {
		newCastling = newCastling.Remove(rightMask[us][0] | rightMask[us][1])
	}
	if mv.From == rookFrom[us][0] {
		newCastling = newCastling.Remove(rightMask[us][0])
	} else if mv.From == rookFrom[us][1] {
		newCastling = newCastling.Remove(rightMask[us][1])
	}
	if mv.To == rookFrom[them][0] {
		newCastling = newCastling.Remove(rightMask[them][0])
	} else if mv.To == rookFrom[them][1] {
		newCastling = newCastling.Remove(rightMask[them][1])
	}
	p.Castling = newCastling
	h ^= ZobristCastling(p.Castling)

	var newEP *Square
	if mover.Type() == Pawn && abs(mv.To.Rank()-mv.From.Rank()) == 2 {
		newEP = squarePtr(Square((int(mv.From) + int(mv.To)) / 2))
	}
	p.EnPassant = newEP
	if p.EnPassant != nil {
		h ^= ZobristEnPassant(p.EnPassant.File())
	}

	if mover.Type() == Pawn || entry.Captured != NoPiece {
		p.HalfmoveClock = 0
	} else {
		p.HalfmoveClock++
	}
	if us == Black {
		p.Fullmove++
	}

	h ^= ZobristSideToMove()
	p.SideToMove = them
	p.hash = h

	p.history = append(p.history, entry)
	p.debugCheckHash()
}

// UnmakeMove reverses the most recent call to MakeMove. mv must be the same
// move just made; calling it otherwise, or with empty history, is a
// programming error.
func (p *Position) UnmakeMove(mv Move) {
	n := len(p.history)
	entry := p.history[n-1]
	p.history = p.history[:n-1]

	us := p.SideToMove.Other()

	mover := p.PieceAt(mv.To)
	if mv.Promotion != NoPromotion {
		p.Board.Remove(NewPiece(mv.Promotion.PieceType(), us), mv.To)
		p.Board.Add(NewPiece(Pawn, us), mv.To)
		mover = NewPiece(Pawn, us)
	}

	p.Board.MovePiece(mover, mv.To, mv.From)

	if entry.Captured != NoPiece {
		p.Board.Add(entry.Captured, entry.CapturedSquare)
	}

	if mover.Type() == King && abs(mv.To.File()-mv.From.File()) == 2 {
		s := castleSideIndex(mv.To.File() == kingTo[us][0].File())
		rook := NewPiece(Rook, us)
		p.Board.MovePiece(rook, rookTo[us][s], rookFrom[us][s])
	}

	p.SideToMove = us
	p.Castling = entry.Castling
	p.EnPassant = entry.EnPassant
	p.HalfmoveClock = entry.HalfmoveClock
	p.Fullmove = entry.Fullmove
	p.hash = entry.Hash
}
