package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	tests := []struct {
		name     string
		sentinel error
	}{
		{"ErrMalformedMove", ErrMalformedMove},
		{"ErrInvalidSquare", ErrInvalidSquare},
		{"ErrInvalidFEN", ErrInvalidFEN},
		{"ErrIllegalMove", ErrIllegalMove},
		{"ErrUnknownCommand", ErrUnknownCommand},
		{"ErrInvalidConfig", ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("context: %w", tt.sentinel)
			if !errors.Is(wrapped, tt.sentinel) {
				t.Errorf("errors.Is(wrapped, %v) = false, want true", tt.sentinel)
			}
		})
	}
}

func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *MoveError
		want string
	}{
		{
			name: "full context",
			err:  &MoveError{Err: ErrIllegalMove, Source: "game1.txt", Line: 4, MoveText: "move A1,B1"},
			want: `game1.txt:4, move "move A1,B1": illegal move`,
		},
		{
			name: "line without source",
			err:  &MoveError{Err: ErrUnknownCommand, Line: 2},
			want: "line 2: unknown command",
		},
		{
			name: "bare error",
			err:  &MoveError{Err: ErrIllegalMove},
			want: "illegal move",
		},
		{
			name: "nothing at all",
			err:  &MoveError{},
			want: "move error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMoveError_Unwrap(t *testing.T) {
	err := &MoveError{Err: ErrIllegalMove, Line: 1}
	if !errors.Is(err, ErrIllegalMove) {
		t.Error("errors.Is(MoveError, ErrIllegalMove) = false, want true")
	}

	var me *MoveError
	wrapped := fmt.Errorf("session: %w", err)
	if !errors.As(wrapped, &me) {
		t.Fatal("errors.As did not find *MoveError")
	}
	if me.Line != 1 {
		t.Errorf("Line = %d, want 1", me.Line)
	}
}

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name    string
		err     *ParseError
		wantSub []string
	}{
		{
			name:    "source line column",
			err:     &ParseError{Err: ErrInvalidSquare, Source: "in.txt", Line: 3, Column: 6, Expected: "row digit", Got: "x"},
			wantSub: []string{"in.txt:3:6", `expected row digit, got "x"`, "invalid square"},
		},
		{
			name:    "line only",
			err:     &ParseError{Err: ErrMalformedMove, Line: 7},
			wantSub: []string{"line 7", "malformed move"},
		},
		{
			name:    "got only",
			err:     &ParseError{Got: "A1"},
			wantSub: []string{`unexpected "A1"`},
		},
		{
			name:    "empty",
			err:     &ParseError{},
			wantSub: []string{"parse error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			for _, sub := range tt.wantSub {
				if !strings.Contains(got, sub) {
					t.Errorf("Error() = %q, want substring %q", got, sub)
				}
			}
		})
	}
}

func TestLocate(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		if Locate(nil, "x", 1) != nil {
			t.Error("Locate(nil) should be nil")
		}
	})

	t.Run("existing parse error keeps detail", func(t *testing.T) {
		orig := &ParseError{Err: ErrMalformedMove, Expected: "FROM,TO pair", Got: "A1"}
		err := Locate(orig, "g.txt", 9)

		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Fatal("Locate result is not a *ParseError")
		}
		if pe.Source != "g.txt" || pe.Line != 9 {
			t.Errorf("location = %s:%d, want g.txt:9", pe.Source, pe.Line)
		}
		if pe.Expected != "FROM,TO pair" {
			t.Errorf("Expected = %q, want %q", pe.Expected, "FROM,TO pair")
		}
		if orig.Line != 0 {
			t.Error("Locate modified the original error")
		}
		if !errors.Is(err, ErrMalformedMove) {
			t.Error("located error lost ErrMalformedMove")
		}
	})

	t.Run("plain error is wrapped", func(t *testing.T) {
		err := Locate(ErrInvalidSquare, "g.txt", 2)
		if !strings.HasPrefix(err.Error(), "g.txt:2") {
			t.Errorf("Error() = %q, want prefix g.txt:2", err.Error())
		}
		if !Is(err, ErrInvalidSquare) {
			t.Error("Is(err, ErrInvalidSquare) = false, want true")
		}
	})
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "ctx") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	if Wrapf(nil, "ctx %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}

	err := Wrapf(ErrInvalidFEN, "reading %s", "start position")
	if err.Error() != "reading start position: invalid FEN string" {
		t.Errorf("Wrapf() = %q", err.Error())
	}
	if !errors.Is(err, ErrInvalidFEN) {
		t.Error("Wrapf lost the sentinel")
	}
}
