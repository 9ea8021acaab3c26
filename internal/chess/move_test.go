package chess

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	mcerrors "github.com/lgbarn/movecheck/internal/errors"
)

func TestParseOperation(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Operation
	}{
		{"pawn push", "move A2,A4", Operation{Command: "move", From: 8, To: 24}},
		{"extra whitespace", "  try\tB1,C3  ", Operation{Command: "try", From: 1, To: 18}},
		{"lowercase squares", "move e2,e4", Operation{Command: "move", From: 12, To: 28}},
		{"trailing tokens ignored", "move A1,H1 # rook", Operation{Command: "move", From: 0, To: 7}},
		{"off-board is not a syntax error", "move A1,A9", Operation{Command: "move", From: 0, To: OffBoard}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOperation(tt.text)
			if err != nil {
				t.Fatalf("ParseOperation(%q) error: %v", tt.text, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseOperation(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

func TestParseOperation_Malformed(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantSquare bool // also tagged ErrInvalidSquare
	}{
		{"empty", "", false},
		{"command only", "move", false},
		{"no comma", "move A2A4", false},
		{"missing destination", "move A2,", true},
		{"non-digit row", "move AB,A4", true},
		{"short destination", "move A2,A", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOperation(tt.text)
			if !errors.Is(err, mcerrors.ErrMalformedMove) {
				t.Fatalf("ParseOperation(%q) error = %v; want ErrMalformedMove", tt.text, err)
			}
			if got := errors.Is(err, mcerrors.ErrInvalidSquare); got != tt.wantSquare {
				t.Errorf("errors.Is(err, ErrInvalidSquare) = %v; want %v", got, tt.wantSquare)
			}
		})
	}
}

func TestOperationString(t *testing.T) {
	op := Operation{Command: "move", From: 8, To: 24}
	if got := op.String(); got != "move A2,A4" {
		t.Errorf("String() = %q; want %q", got, "move A2,A4")
	}
	if !op.InBounds() {
		t.Error("InBounds() = false; want true")
	}
	if (Operation{From: 0, To: 64}).InBounds() {
		t.Error("InBounds() with To=64 = true; want false")
	}
}
