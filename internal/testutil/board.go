package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/movecheck/internal/chess"
	"github.com/lgbarn/movecheck/internal/engine"
	"github.com/lgbarn/movecheck/internal/transcript"
)

// MustBoard builds a board from a FEN placement. It calls t.Fatal if the
// FEN does not parse.
func MustBoard(t *testing.T, fen string) *chess.Board {
	t.Helper()
	b, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("bad test FEN %q: %v", fen, err)
	}
	return b
}

// BoardWith returns an empty board holding the given pieces, keyed by
// square name ("E4"). It calls t.Fatal on a bad square name.
func BoardWith(t *testing.T, pieces map[string]chess.Occupant) *chess.Board {
	t.Helper()
	b := chess.NewBoard()
	for name, o := range pieces {
		sq, err := chess.ParseSquare(name)
		if err != nil || !sq.Valid() {
			t.Fatalf("bad test square %q", name)
		}
		b.Set(sq, o)
	}
	return b
}

// MustOperation parses one line of move text. It calls t.Fatal on a
// syntax error.
func MustOperation(t *testing.T, text string) chess.Operation {
	t.Helper()
	op, err := chess.ParseOperation(text)
	if err != nil {
		t.Fatalf("bad test move %q: %v", text, err)
	}
	return op
}

// Records reads a transcript held in a string. Parse failures stay on the
// records; only a read failure is fatal.
func Records(t *testing.T, text string) []transcript.Record {
	t.Helper()
	recs, err := transcript.Read(strings.NewReader(text), "test")
	if err != nil {
		t.Fatalf("reading test transcript: %v", err)
	}
	return recs
}
