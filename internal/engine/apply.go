package engine

import (
	"github.com/lgbarn/movecheck/internal/chess"
)

// ApplyMove moves the occupant of op.From onto op.To and empties op.From.
// It reports whether the board changed.
//
// No legality check is made here; callers validate with Rules.IsLegalMove
// first. The one refusal is a king on the destination: kings are never
// captured by execution, and the board is left untouched. Off-board
// squares and from == to are also left alone.
func ApplyMove(board *chess.Board, op chess.Operation) bool {
	if !op.InBounds() || op.From == op.To {
		return false
	}
	if board.Get(op.To).Piece == chess.King {
		return false
	}

	board.Set(op.To, board.Get(op.From))
	board.Remove(op.From)
	return true
}
