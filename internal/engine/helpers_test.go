package engine

import (
	"testing"

	"github.com/lgbarn/movecheck/internal/chess"
)

// mustBoard builds a board from a FEN placement or calls t.Fatal.
func mustBoard(t *testing.T, fen string) *chess.Board {
	t.Helper()
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error: %v", fen, err)
	}
	return board
}

// sq is shorthand for chess.MustParseSquare.
func sq(name string) chess.Square {
	return chess.MustParseSquare(name)
}

// op builds a move operation from two square names.
func op(from, to string) chess.Operation {
	return chess.Operation{Command: "move", From: sq(from), To: sq(to)}
}
