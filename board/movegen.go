package board

// generatePseudoLegal fills ml with every pseudo-legal move available to the
// side to move: geometrically valid, but not yet checked for leaving that
// side's own king in check. LegalMoves filters the result in a second pass.
func (p *Position) generatePseudoLegal(ml *MoveList) {
	ensureTables()
	us := p.SideToMove
	p.generatePawnMoves(ml, us)
	p.generateKnightMoves(ml, us)
	p.generateSliderMoves(ml, us, Bishop)
	p.generateSliderMoves(ml, us, Rook)
	p.generateSliderMoves(ml, us, Queen)
	p.generateKingMoves(ml, us)
	p.generateCastling(ml, us)
}

// generatePawnMoves generates single/double pushes, captures (including en
// passant), and promotions, all for us's pawns.
func (p *Position) generatePawnMoves(ml *MoveList, us Color) {
	them := us.Other()
	pawns := p.Pieces[us][Pawn]
	empty := ^p.All
	enemies := p.Occ[them]
	var epTarget Bitboard
	if p.EnPassant != nil {
		epTarget = SquareBB(*p.EnPassant)
	}

	var push, doublePush Bitboard
	var promotionRank Bitboard
	var pushDist, doublePushDist int

	if us == White {
		push = pawns.North() & empty
		doublePush = (push & Rank3).North() & empty
		promotionRank = Rank8
		pushDist, doublePushDist = 8, 16
	} else {
		push = pawns.South() & empty
		doublePush = (push & Rank6).South() & empty
		promotionRank = Rank1
		pushDist, doublePushDist = -8, -16
	}

	for bb := push; bb != Empty; {
		to := bb.PopLSB()
		from := Square(int(to) - pushDist)
		addPawnMove(ml, from, to, promotionRank.IsSet(to))
	}
	for bb := doublePush; bb != Empty; {
		to := bb.PopLSB()
		from := Square(int(to) - doublePushDist)
		ml.Add(Move{From: from, To: to})
	}

	captureTargets := enemies | epTarget
	var attackLeft, attackRight Bitboard
	var capDistLeft, capDistRight int
	if us == White {
		attackLeft = pawns.NorthWest() & captureTargets
		attackRight = pawns.NorthEast() & captureTargets
		capDistLeft, capDistRight = 7, 9
	} else {
		attackLeft = pawns.SouthEast() & captureTargets
		attackRight = pawns.SouthWest() & captureTargets
		capDistLeft, capDistRight = -7, -9
	}
	for bb := attackLeft; bb != Empty; {
		to := bb.PopLSB()
		from := Square(int(to) - capDistLeft)
		addPawnMove(ml, from, to, promotionRank.IsSet(to))
	}
	for bb := attackRight; bb != Empty; {
		to := bb.PopLSB()
		from := Square(int(to) - capDistRight)
		addPawnMove(ml, from, to, promotionRank.IsSet(to))
	}
}

// addPawnMove adds a quiet/capture pawn move, expanding it into the four
// promotion choices when to lands on the far rank.
func addPawnMove(ml *MoveList, from, to Square, promotes bool) {
	if !promotes {
		ml.Add(Move{From: from, To: to})
		return
	}
	ml.Add(Move{From: from, To: to, Promotion: PromoteQueen})
	ml.Add(Move{From: from, To: to, Promotion: PromoteRook})
	ml.Add(Move{From: from, To: to, Promotion: PromoteBishop})
	ml.Add(Move{From: from, To: to, Promotion: PromoteKnight})
}

func (p *Position) generateKnightMoves(ml *MoveList, us Color) {
	own := p.Occ[us]
	for knights := p.Pieces[us][Knight]; knights != Empty; {
		from := knights.PopLSB()
		targets := KnightAttacks(from) &^ own
		for bb := targets; bb != Empty; {
			ml.Add(Move{From: from, To: bb.PopLSB()})
		}
	}
}

func (p *Position) generateKingMoves(ml *MoveList, us Color) {
	own := p.Occ[us]
	from := p.King(us)
	targets := KingAttacks(from) &^ own
	for bb := targets; bb != Empty; {
		ml.Add(Move{From: from, To: bb.PopLSB()})
	}
}

// generateSliderMoves generates moves for bishops, rooks, or queens.
func (p *Position) generateSliderMoves(ml *MoveList, us Color, pt PieceType) {
	own := p.Occ[us]
	occ := p.All
	for pieces := p.Pieces[us][pt]; pieces != Empty; {
		from := pieces.PopLSB()
		var targets Bitboard
		switch pt {
		case Bishop:
			targets = BishopAttacks(from, occ)
		case Rook:
			targets = RookAttacks(from, occ)
		case Queen:
			targets = QueenAttacks(from, occ)
		}
		targets &^= own
		for bb := targets; bb != Empty; {
			ml.Add(Move{From: from, To: bb.PopLSB()})
		}
	}
}

// Geometry for castling, indexed the same way as the tables in castling.go:
// [Color][sideIndex], sideIndex 0 = kingside, 1 = queenside.
var (
	transitSquare    = [2][2]Square{{F1, D1}, {F8, D8}}
	knightFileSquare = [2]Square{B1, B8}
)

// generateCastling adds a move for each castling direction still available
// to us, given the current rights, occupancy, and attacked squares. Rights
// being set is trusted to mean the king and rook both sit on their home
// squares (Board.ApplyMove relies on the same trust).
func (p *Position) generateCastling(ml *MoveList, us Color) {
	them := us.Other()
	home := kingHome[us]
	for _, kingSide := range [2]bool{true, false} {
		if !p.Castling.CanCastle(us, kingSide) {
			continue
		}
		s := castleSideIndex(kingSide)
		dest := kingTo[us][s]
		if Between(home, dest)&p.All != Empty {
			continue
		}
		if !p.IsEmpty(dest) {
			continue
		}
		if !kingSide && !p.IsEmpty(knightFileSquare[us]) {
			continue
		}
		transit := transitSquare[us][s]
		if p.IsAttacked(home, them) || p.IsAttacked(transit, them) || p.IsAttacked(dest, them) {
			continue
		}
		ml.Add(Move{From: home, To: dest})
	}
}

// LegalMoves returns every legal move available to the side to move: the
// pseudo-legal set with any move that would leave (or keep) that side's own
// king in check removed. Phase A above builds the pseudo-legal set; Phase B
// here clones just the board and replays each candidate to test king safety,
// leaving the real Position untouched.
func (p *Position) LegalMoves() []Move {
	var pseudo MoveList
	p.generatePseudoLegal(&pseudo)

	us := p.SideToMove
	legal := make([]Move, 0, pseudo.Len())
	for i := 0; i < pseudo.Len(); i++ {
		mv := pseudo.Get(i)
		clone := p.Board.Clone()
		clone.ApplyMove(mv, us, p.EnPassant)
		if !clone.IsAttacked(clone.King(us), us.Other()) {
			legal = append(legal, mv)
		}
	}
	return legal
}

// IsLegal reports whether mv is a legal move in the current position. It
// does not require mv to come from LegalMoves; any structurally valid move
// for the side to move can be tested directly.
func (p *Position) IsLegal(mv Move) bool {
	for _, legal := range p.LegalMoves() {
		if legal == mv {
			return true
		}
	}
	return false
}
