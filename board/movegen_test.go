package board

import "testing"

// TestLegalMovesAreSubsetOfPseudoLegal checks that every move LegalMoves
// returns was also produced by the pseudo-legal generator.
func TestLegalMovesAreSubsetOfPseudoLegal(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1",
	}
	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		var pseudo MoveList
		pos.generatePseudoLegal(&pseudo)

		for _, m := range pos.LegalMoves() {
			if !pseudo.Contains(m) {
				t.Errorf("%q: legal move %v absent from pseudo-legal set", fen, m)
			}
		}
	}
}

// TestOccupancyCoherence checks that Occ[White]|Occ[Black] == All and that
// no square is claimed by both colors, across the starting position and
// after a short sequence of moves.
func TestOccupancyCoherence(t *testing.T) {
	pos := NewPosition()
	checkCoherence := func(t *testing.T, b *Board) {
		t.Helper()
		if b.Occ[White]|b.Occ[Black] != b.All {
			t.Error("Occ[White]|Occ[Black] != All")
		}
		if b.Occ[White]&b.Occ[Black] != Empty {
			t.Error("Occ[White] and Occ[Black] overlap")
		}
		var fromPieces Bitboard
		for c := White; c <= Black; c++ {
			for pt := Pawn; pt <= King; pt++ {
				fromPieces |= b.Pieces[c][pt]
			}
		}
		if fromPieces != b.All {
			t.Error("union of Pieces bitboards != All")
		}
	}

	checkCoherence(t, &pos.Board)
	for _, uci := range []string{"e2e4", "c7c5", "g1f3", "b8c6", "f1b5"} {
		m, err := ParseUCIMove(uci)
		if err != nil {
			t.Fatalf("ParseUCIMove(%q): %v", uci, err)
		}
		pos.MakeMove(m)
		checkCoherence(t, &pos.Board)
	}
}

// TestIsAttackedSymmetry checks that a rook attacking a square implies the
// reverse is true from that square back to the rook along the same ray
// (attack relations along a clear line are symmetric).
func TestIsAttackedSymmetry(t *testing.T) {
	pos, err := ParseFEN("k7/8/8/3r4/8/8/8/3R3K w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	d1, _ := ParseSquare("d1")
	d5, _ := ParseSquare("d5")

	if !pos.IsAttacked(d5, White) {
		t.Error("expected white rook on d1 to attack d5")
	}
	if !pos.IsAttacked(d1, Black) {
		t.Error("expected black rook on d5 to attack d1")
	}
}

// TestCastlingOmittedWhenPathAttacked checks that a king cannot castle
// through an attacked transit square even if both endpoints are otherwise
// clear of pieces.
func TestCastlingOmittedWhenPathAttacked(t *testing.T) {
	pos, err := ParseFEN("3rk3/8/8/8/8/8/8/R3K3 w Q - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	queenside, _ := ParseUCIMove("e1c1")
	for _, m := range pos.LegalMoves() {
		if m == queenside {
			t.Error("queenside castle should be illegal: rook on d8 attacks the transit square d1")
		}
	}
}

// TestCastlingOmittedWhenDestinationOccupied checks that a king cannot
// castle onto a square its own piece already occupies, even though that
// square lies outside the king's transit path.
func TestCastlingOmittedWhenDestinationOccupied(t *testing.T) {
	pos, err := ParseFEN("r3k3/8/8/8/8/8/8/4K1NR w K - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	kingside, _ := ParseUCIMove("e1g1")
	for _, m := range pos.LegalMoves() {
		if m == kingside {
			t.Error("kingside castle should be illegal: own knight occupies the destination g1")
		}
	}
}
