// Package engine decides move legality, detects attacks and applies moves
// on a chess.Board.
package engine

import (
	"github.com/lgbarn/movecheck/internal/chess"
)

// IsLegalMove reports whether the piece on from may move to to under
// ReferenceRules. See Rules.IsLegalMove.
func IsLegalMove(board *chess.Board, from, to chess.Square) bool {
	return ReferenceRules().IsLegalMove(board, from, to)
}

// IsLegalMove reports whether the piece on from may move to to. It is a
// total function: off-board squares, an empty origin, a blocked path,
// wrong geometry and same-side captures all give false, never an error.
// Turn order is not considered.
func (r Rules) IsLegalMove(board *chess.Board, from, to chess.Square) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}

	mover := board.Get(from)
	if mover.IsEmpty() {
		return false
	}

	target := board.Get(to)
	if target.IsEmpty() {
		if r.RejectEmptyDestination {
			return false
		}
		return r.canMove(board, mover, from, to)
	}
	return r.canCapture(board, mover, target, from, to)
}

// canMove is the predicate for a move onto an empty square.
func (r Rules) canMove(board *chess.Board, mover chess.Occupant, from, to chess.Square) bool {
	switch mover.Piece {
	case chess.Pawn:
		return r.pawnStep(board, mover.Colour, from, to)
	case chess.King:
		return r.kingStep(from, to)
	case chess.Rook:
		return isStraightClear(board, from, to)
	case chess.Bishop:
		return isDiagonalClear(board, from, to)
	case chess.Queen:
		return r.queenPath(board, from, to)
	case chess.Knight:
		return isKnightJump(from, to)
	}
	return false
}

// canCapture is the predicate for a move onto an occupied square.
func (r Rules) canCapture(board *chess.Board, mover, target chess.Occupant, from, to chess.Square) bool {
	if mover.Colour == target.Colour {
		return false
	}

	rowDiff := to.Row() - from.Row()
	colDiff := abs(to.Col() - from.Col())

	switch mover.Piece {
	case chess.Pawn:
		return rowDiff == mover.Colour.Forward() && colDiff == 1
	case chess.King:
		if r.Steps == StepsStandard {
			return maxInt(abs(rowDiff), colDiff) == 1
		}
		return abs(rowDiff) == 1 && colDiff == 1
	case chess.Rook:
		return isStraightClear(board, from, to)
	case chess.Bishop:
		return isDiagonalClear(board, from, to)
	case chess.Queen:
		return r.queenPath(board, from, to)
	case chess.Knight:
		return isKnightJump(from, to)
	}
	return false
}

func (r Rules) queenPath(board *chess.Board, from, to chess.Square) bool {
	if r.QueenPaths == QueenEither {
		return isDiagonalClear(board, from, to) || isStraightClear(board, from, to)
	}
	return isDiagonalClear(board, from, to) && isStraightClear(board, from, to)
}

// pawnStep handles a pawn moving onto an empty square.
func (r Rules) pawnStep(board *chess.Board, colour chess.Colour, from, to chess.Square) bool {
	if r.Steps != StepsStandard {
		return to == from+chess.BoardSize
	}
	if from.Col() != to.Col() {
		return false
	}
	dir := colour.Forward()
	switch to.Row() - from.Row() {
	case dir:
		return true
	case 2 * dir:
		startRow := 1
		if colour == chess.Black {
			startRow = chess.BoardSize - 2
		}
		return from.Row() == startRow && board.At(from.Row()+dir, from.Col()).IsEmpty()
	}
	return false
}

// kingStep handles a king moving onto an empty square.
func (r Rules) kingStep(from, to chess.Square) bool {
	if r.Steps != StepsStandard {
		return to == from+chess.BoardSize
	}
	return maxInt(abs(to.Row()-from.Row()), abs(to.Col()-from.Col())) == 1
}
