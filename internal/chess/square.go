package chess

import (
	"github.com/lgbarn/movecheck/internal/errors"
)

// Constants for board dimensions and coordinates.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	ColBase = 'A'
	RowBase = '1'
)

// Square is a linear board index. Valid squares are 0..63 in row-major
// order: A1=0, H1=7, A2=8, ..., H8=63. Values outside that range are
// representable and denote off-board squares.
type Square int

// OffBoard is returned for coordinates whose letter or digit lies outside
// the board. Any move touching it is illegal.
const OffBoard Square = NumSquares

// ParseSquare converts algebraic text such as "A2" into a square index.
// The first character is the column letter, the second the one-based row
// digit; index = column + (row-1)*8. Lowercase letters are accepted.
//
// Missing characters or a non-digit row are syntax errors. A letter or
// digit that is syntactically fine but off the board yields OffBoard and
// no error, leaving the rejection to the legality check.
func ParseSquare(text string) (Square, error) {
	if len(text) < 2 {
		return OffBoard, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Expected: "column letter and row digit",
			Got:      text,
		}
	}
	c, r := text[0], text[1]
	if r < '0' || r > '9' {
		return OffBoard, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Column:   2,
			Expected: "row digit",
			Got:      string(r),
		}
	}
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	col := int(c) - ColBase
	row := int(r) - RowBase
	if !OnBoard(row, col) {
		return OffBoard, nil
	}
	return IndexOf(row, col), nil
}

// MustParseSquare is ParseSquare for literals known to be valid. It panics
// on a syntax error.
func MustParseSquare(text string) Square {
	sq, err := ParseSquare(text)
	if err != nil {
		panic(err)
	}
	return sq
}

// RowOf returns the zero-based row (rank) of an index: index / 8.
func RowOf(sq Square) int {
	return int(sq) / BoardSize
}

// ColOf returns the zero-based column (file) of an index: index % 8.
func ColOf(sq Square) int {
	return int(sq) % BoardSize
}

// IndexOf is the inverse of RowOf/ColOf: row*8 + col. No bounds check is
// made; callers must keep row and col within [0,8).
func IndexOf(row, col int) Square {
	return Square(row*BoardSize + col)
}

// OnBoard reports whether (row, col) names a board square.
func OnBoard(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// Valid reports whether the index is within 0..63.
func (sq Square) Valid() bool {
	return sq >= 0 && sq < NumSquares
}

// Row returns RowOf(sq).
func (sq Square) Row() int { return RowOf(sq) }

// Col returns ColOf(sq).
func (sq Square) Col() int { return ColOf(sq) }

// String returns the algebraic name ("A1".."H8"), or "--" off the board.
func (sq Square) String() string {
	if !sq.Valid() {
		return "--"
	}
	return string([]byte{byte(ColBase + sq.Col()), byte(RowBase + sq.Row())})
}
