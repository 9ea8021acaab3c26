package engine

import "github.com/lgbarn/movecheck/internal/chess"

// isStraightClear reports whether from and to share a row or a column and
// every square strictly between them is empty. from == to is not a move.
func isStraightClear(board *chess.Board, from, to chess.Square) bool {
	if from == to {
		return false
	}
	if from.Row() != to.Row() && from.Col() != to.Col() {
		return false
	}
	return isPathClear(board, from, to)
}

// isDiagonalClear reports whether from and to lie on one diagonal and
// every square strictly between them is empty.
func isDiagonalClear(board *chess.Board, from, to chess.Square) bool {
	rowDiff := abs(to.Row() - from.Row())
	colDiff := abs(to.Col() - from.Col())
	if rowDiff == 0 || rowDiff != colDiff {
		return false
	}
	return isPathClear(board, from, to)
}

// isKnightJump reports whether the displacement is an L-shape. Knights
// jump, so nothing in between is looked at.
func isKnightJump(from, to chess.Square) bool {
	rowDiff := abs(to.Row() - from.Row())
	colDiff := abs(to.Col() - from.Col())
	return (colDiff == 1 && rowDiff == 2) || (colDiff == 2 && rowDiff == 1)
}

// isPathClear walks from one square toward another in unit steps and
// reports whether every intermediate square is empty. The endpoints are
// not examined. Callers guarantee the squares share a line.
func isPathClear(board *chess.Board, from, to chess.Square) bool {
	rowDir := sign(to.Row() - from.Row())
	colDir := sign(to.Col() - from.Col())

	row := from.Row() + rowDir
	col := from.Col() + colDir
	for row != to.Row() || col != to.Col() {
		if !board.At(row, col).IsEmpty() {
			return false
		}
		row += rowDir
		col += colDir
	}
	return true
}
