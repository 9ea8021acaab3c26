package engine

import "github.com/lgbarn/movecheck/internal/chess"

var (
	straightDirs = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalDirs = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	knightJumps  = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
)

// SquareIsAttacked reports whether a piece of byColour attacks (row, col)
// under ReferenceRules.
func SquareIsAttacked(board *chess.Board, row, col int, byColour chess.Colour) bool {
	return ReferenceRules().SquareIsAttacked(board, row, col, byColour)
}

// SquareIsAttacked reports whether a piece of byColour attacks (row, col).
// The searches run in turn and the first hit wins: straight rays for rooks
// and queens, diagonal rays for bishops, queens and pawns, knight jumps,
// and under AttacksStandard the adjacent king. Whatever stands on
// (row, col) itself is ignored.
func (r Rules) SquareIsAttacked(board *chess.Board, row, col int, byColour chess.Colour) bool {
	if !chess.OnBoard(row, col) {
		return false
	}
	standard := r.Attacks == AttacksStandard
	return straightAttack(board, row, col, byColour) ||
		diagonalAttack(board, row, col, byColour, standard) ||
		knightAttack(board, row, col, byColour) ||
		(standard && kingAttack(board, row, col, byColour))
}

// walkRay steps from (row, col) by (rowDir, colDir). The first occupied
// square decides: hit(occupant, distance) is the answer. An empty square
// recurses one step further; stepping off the edge answers false.
func walkRay(board *chess.Board, row, col, rowDir, colDir, distance int, hit func(chess.Occupant, int) bool) bool {
	r, c := row+rowDir, col+colDir
	if !chess.OnBoard(r, c) {
		return false
	}
	if o := board.At(r, c); !o.IsEmpty() {
		return hit(o, distance)
	}
	return walkRay(board, r, c, rowDir, colDir, distance+1, hit)
}

func straightAttack(board *chess.Board, row, col int, by chess.Colour) bool {
	hit := func(o chess.Occupant, _ int) bool {
		return o.Is(chess.Rook, by) || o.Is(chess.Queen, by)
	}
	for _, d := range straightDirs {
		if walkRay(board, row, col, d[0], d[1], 1, hit) {
			return true
		}
	}
	return false
}

// diagonalAttack finds the first occupant on each diagonal. With
// pawnAdjacent unset any pawn of by ending the ray attacks.
func diagonalAttack(board *chess.Board, row, col int, by chess.Colour, pawnAdjacent bool) bool {
	for _, d := range diagonalDirs {
		// A real pawn attacks one square diagonally forward, so it must sit
		// directly behind the target from its own point of view.
		pawnRow := d[0] == -by.Forward()
		hit := func(o chess.Occupant, distance int) bool {
			if o.Is(chess.Bishop, by) || o.Is(chess.Queen, by) {
				return true
			}
			if !o.Is(chess.Pawn, by) {
				return false
			}
			return !pawnAdjacent || (distance == 1 && pawnRow)
		}
		if walkRay(board, row, col, d[0], d[1], 1, hit) {
			return true
		}
	}
	return false
}

// knightAttack looks one knight jump away. Branching into further jumps
// from every empty landing square would not terminate without memoizing
// visited squares, and would find knights no real jump reaches.
func knightAttack(board *chess.Board, row, col int, by chess.Colour) bool {
	for _, j := range knightJumps {
		if board.At(row+j[0], col+j[1]).Is(chess.Knight, by) {
			return true
		}
	}
	return false
}

func kingAttack(board *chess.Board, row, col int, by chess.Colour) bool {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if board.At(row+dr, col+dc).Is(chess.King, by) {
				return true
			}
		}
	}
	return false
}

// IsInCheck returns true if the given colour's king is attacked under
// ReferenceRules.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	return ReferenceRules().IsInCheck(board, colour)
}

// IsInCheck returns true if the given colour's king is attacked. A board
// without that king is never in check.
func (r Rules) IsInCheck(board *chess.Board, colour chess.Colour) bool {
	sq, ok := board.Find(chess.King, colour)
	if !ok {
		return false
	}
	return r.SquareIsAttacked(board, sq.Row(), sq.Col(), colour.Opposite())
}

// IsCheck reports whether the destination of op currently holds a king of
// either side, i.e. whether the move would capture a king.
func IsCheck(board *chess.Board, op chess.Operation) bool {
	return op.To.Valid() && board.Get(op.To).Piece == chess.King
}

// IsCheckmate is a coarse mate signal, not mate detection: the destination
// of op holds a king and each of its orthogonal neighbours that exists on
// the board is occupied, by either side. Diagonal squares and whether the
// king could actually move are not considered.
func IsCheckmate(board *chess.Board, op chess.Operation) bool {
	if !IsCheck(board, op) {
		return false
	}
	row, col := op.To.Row(), op.To.Col()
	for _, d := range straightDirs {
		r, c := row+d[0], col+d[1]
		if !chess.OnBoard(r, c) {
			continue
		}
		if board.At(r, c).IsEmpty() {
			return false
		}
	}
	return true
}
