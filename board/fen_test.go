package board

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFENRoundTrip(t *testing.T) {
	cases := []string{
		StartFEN,
		"rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}
	for _, fen := range cases {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		if got := pos.ToFEN(); got != fen {
			t.Errorf("round-trip mismatch: ParseFEN(%q).ToFEN() = %q", fen, got)
		}
	}
}

func TestFENRoundTripAfterMoves(t *testing.T) {
	pos := NewPosition()
	moves := []string{"e2e4", "c7c5", "g1f3"}
	for _, uci := range moves {
		m, err := ParseUCIMove(uci)
		if err != nil {
			t.Fatalf("ParseUCIMove(%q): %v", uci, err)
		}
		pos.MakeMove(m)
	}

	want := "rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2"
	if got := pos.ToFEN(); got != want {
		t.Errorf("ToFEN() after %v = %q, want %q", moves, got, want)
	}

	reparsed, err := ParseFEN(want)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", want, err)
	}
	if diff := cmp.Diff(reparsed.Board, pos.Board); diff != "" {
		t.Errorf("board mismatch after re-parsing canonical FEN (-want +got):\n%s", diff)
	}
}

func TestFENRejectsMalformed(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0", // missing field
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w ZZZZ - 0 1",
		"8/8/8/8/8/8/8/8 w - - 0 1", // no kings
	}
	for _, fen := range bad {
		if _, err := ParseFEN(fen); err == nil {
			t.Errorf("ParseFEN(%q) = nil error, want error", fen)
		}
	}
}
