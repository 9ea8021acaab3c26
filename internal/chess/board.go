package chess

import "strings"

// Board is a flat array of 64 squares addressed by Square index.
// It is a passive container: the engine reads it, and only the move
// executor writes to it.
type Board struct {
	Squares [NumSquares]Occupant
}

// backRank is the piece order on ranks 1 and 8, A to H.
var backRank = [BoardSize]Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewStandardBoard returns a board in the standard starting position.
func NewStandardBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition clears the board and sets up the standard chess
// starting position: White on rows 0-1, Black on rows 6-7. Each side gets
// all eight pawns; the older seven-pawn layout is deliberately not reproduced.
func (b *Board) SetupInitialPosition() {
	b.Clear()
	for col := 0; col < BoardSize; col++ {
		b.Set(IndexOf(0, col), W(backRank[col]))
		b.Set(IndexOf(1, col), W(Pawn))
		b.Set(IndexOf(6, col), B(Pawn))
		b.Set(IndexOf(7, col), B(backRank[col]))
	}
}

// Clear empties every square.
func (b *Board) Clear() {
	b.Squares = [NumSquares]Occupant{}
}

// Get returns the occupant of sq, or Empty when sq is off the board.
func (b *Board) Get(sq Square) Occupant {
	if !sq.Valid() {
		return Empty
	}
	return b.Squares[sq]
}

// At returns the occupant at (row, col), or Empty off the board.
func (b *Board) At(row, col int) Occupant {
	if !OnBoard(row, col) {
		return Empty
	}
	return b.Squares[IndexOf(row, col)]
}

// Set places an occupant on sq. Off-board squares are ignored.
func (b *Board) Set(sq Square, o Occupant) {
	if sq.Valid() {
		b.Squares[sq] = o
	}
}

// Remove empties sq.
func (b *Board) Remove(sq Square) {
	b.Set(sq, Empty)
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Find returns the first square holding the given piece, scanning from A1.
func (b *Board) Find(p Piece, c Colour) (Square, bool) {
	for sq := Square(0); sq < NumSquares; sq++ {
		if b.Squares[sq].Is(p, c) {
			return sq, true
		}
	}
	return OffBoard, false
}

// Count returns how many squares are occupied.
func (b *Board) Count() int {
	n := 0
	for _, o := range b.Squares {
		if !o.IsEmpty() {
			n++
		}
	}
	return n
}

// String renders the board as eight lines of FEN letters, rank 8 first,
// with '.' for empty squares.
func (b *Board) String() string {
	var sb strings.Builder
	for row := BoardSize - 1; row >= 0; row-- {
		for col := 0; col < BoardSize; col++ {
			sb.WriteByte(b.At(row, col).Letter())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
