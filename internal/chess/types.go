// Package chess provides the board model for movecheck: sides, piece kinds,
// occupants, square indexing and the parsed move-intent.
package chess

// Colour represents the side a piece belongs to.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns +1 for White, -1 for Black (the row direction pawns advance in).
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// Piece represents a chess piece kind. The zero value NoPiece marks an
// empty square; every other value is one of the six kinds.
type Piece int

const (
	NoPiece Piece = iota
	King
	Queen
	Knight
	Bishop
	Rook
	Pawn
)

// Kinds lists the six piece kinds in declaration order.
var Kinds = [...]Piece{King, Queen, Knight, Bishop, Rook, Pawn}

// String returns the string representation of a piece.
func (p Piece) String() string {
	switch p {
	case King:
		return "King"
	case Queen:
		return "Queen"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Pawn:
		return "Pawn"
	case NoPiece:
		return "None"
	default:
		return "Unknown"
	}
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	switch p {
	case King:
		return 'K'
	case Queen:
		return 'Q'
	case Knight:
		return 'N'
	case Bishop:
		return 'B'
	case Rook:
		return 'R'
	case Pawn:
		return 'P'
	default:
		return '?'
	}
}

// PieceFromLetter converts a letter (either case) into a piece kind.
// It returns NoPiece for anything else.
func PieceFromLetter(c byte) Piece {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'P', 'p':
		return Pawn
	default:
		return NoPiece
	}
}

// Occupant is what stands on a square: a piece kind and its side.
// The zero value is an empty square.
type Occupant struct {
	Piece  Piece
	Colour Colour
}

// Empty is the occupant of an unoccupied square.
var Empty = Occupant{}

// W returns a white occupant of the given kind.
func W(p Piece) Occupant {
	return Occupant{Piece: p, Colour: White}
}

// B returns a black occupant of the given kind.
func B(p Piece) Occupant {
	return Occupant{Piece: p, Colour: Black}
}

// IsEmpty reports whether the square holds nothing.
func (o Occupant) IsEmpty() bool {
	return o.Piece == NoPiece
}

// Is reports whether o is a piece of the given kind and colour.
func (o Occupant) Is(p Piece, c Colour) bool {
	return o.Piece == p && o.Piece != NoPiece && o.Colour == c
}

// Letter returns the FEN letter for the occupant: uppercase for White,
// lowercase for Black, '.' when empty.
func (o Occupant) Letter() byte {
	if o.IsEmpty() {
		return '.'
	}
	l := o.Piece.Letter()
	if o.Colour == Black {
		l |= 0x20
	}
	return l
}

// String returns e.g. "White Rook" or "Empty".
func (o Occupant) String() string {
	if o.IsEmpty() {
		return "Empty"
	}
	return o.Colour.String() + " " + o.Piece.String()
}
