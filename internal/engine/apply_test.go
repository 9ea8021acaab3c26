package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/movecheck/internal/chess"
)

func TestApplyMove(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		op      chess.Operation
		wantOK  bool
		wantFEN string
	}{
		{
			name:    "pawn step",
			fen:     InitialFEN,
			op:      op("A2", "A3"),
			wantOK:  true,
			wantFEN: "rnbqkbnr/pppppppp/8/8/8/P7/1PPPPPPP/RNBQKBNR",
		},
		{
			name:    "knight jump",
			fen:     InitialFEN,
			op:      op("G1", "F3"),
			wantOK:  true,
			wantFEN: "rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R",
		},
		{
			name:    "capture overwrites",
			fen:     "8/8/8/8/8/2p5/8/1N6",
			op:      op("B1", "C3"),
			wantOK:  true,
			wantFEN: "8/8/8/8/8/2N5/8/8",
		},
		{
			name:    "king destination is refused",
			fen:     "4k3/8/8/8/8/8/8/4R3",
			op:      op("E1", "E8"),
			wantOK:  false,
			wantFEN: "4k3/8/8/8/8/8/8/4R3",
		},
		{
			name:    "own king destination is refused too",
			fen:     "8/8/8/8/8/8/8/3QK3",
			op:      op("D1", "E1"),
			wantOK:  false,
			wantFEN: "8/8/8/8/8/8/8/3QK3",
		},
		{
			name:    "off board",
			fen:     InitialFEN,
			op:      chess.Operation{From: 8, To: 64},
			wantOK:  false,
			wantFEN: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",
		},
		{
			name:    "same square",
			fen:     InitialFEN,
			op:      op("A2", "A2"),
			wantOK:  false,
			wantFEN: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			if got := ApplyMove(board, tt.op); got != tt.wantOK {
				t.Errorf("ApplyMove(%v) = %v, want %v", tt.op, got, tt.wantOK)
			}
			if diff := cmp.Diff(tt.wantFEN, FEN(board)); diff != "" {
				t.Errorf("board after ApplyMove mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApplyMove_KingSquareUntouched(t *testing.T) {
	board := chess.NewStandardBoard()
	before := board.Copy()

	for _, o := range []chess.Operation{op("E2", "E8"), op("D8", "E1"), op("B1", "E1")} {
		if ApplyMove(board, o) {
			t.Errorf("ApplyMove(%v) = true, want false", o)
		}
	}
	if diff := cmp.Diff(before, board); diff != "" {
		t.Errorf("board changed (-before +after):\n%s", diff)
	}
}

func TestApplyMove_LegalSequence(t *testing.T) {
	rules := StandardRules()
	board := chess.NewStandardBoard()

	moves := []chess.Operation{
		op("E2", "E4"),
		op("E7", "E5"),
		op("G1", "F3"),
		op("B8", "C6"),
		op("F1", "C4"),
		op("G8", "F6"),
		op("F3", "G5"),
		op("D7", "D5"),
		op("E4", "D5"),
	}
	for _, m := range moves {
		if !rules.IsLegalMove(board, m.From, m.To) {
			t.Fatalf("%v should be legal on\n%s", m, board)
		}
		if !ApplyMove(board, m) {
			t.Fatalf("ApplyMove(%v) = false", m)
		}
	}

	want := "r1bqkb1r/ppp2ppp/2n2n2/3Pp1N1/2B5/8/PPPP1PPP/RNBQK2R"
	if got := FEN(board); got != want {
		t.Errorf("FEN() = %q, want %q", got, want)
	}
	if IsInCheck(board, chess.Black) || IsInCheck(board, chess.White) {
		t.Error("neither side should be in check")
	}
}
