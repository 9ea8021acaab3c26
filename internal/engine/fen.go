package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/movecheck/internal/chess"
	"github.com/lgbarn/movecheck/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewBoardFromFEN creates a board from the piece-placement field of a FEN
// string. Side to move, castling, en passant and clocks are not tracked by
// the board, so any further fields are accepted and ignored.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()
	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("want %d ranks, got %d: %w", chess.BoardSize, len(ranks), errors.ErrInvalidFEN)
	}

	for i, rank := range ranks {
		row := chess.BoardSize - 1 - i
		col := 0
		for _, c := range rank {
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
			default:
				piece := chess.PieceFromLetter(byte(c))
				if piece == chess.NoPiece || c > unicode.MaxASCII {
					return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				if col >= chess.BoardSize {
					return fmt.Errorf("rank %d overflows: %w", row+1, errors.ErrInvalidFEN)
				}
				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				board.Set(chess.IndexOf(row, col), chess.Occupant{Piece: piece, Colour: colour})
				col++
			}
		}
		if col != chess.BoardSize {
			return fmt.Errorf("rank %d has %d squares: %w", row+1, col, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// FEN returns the piece-placement field describing board.
func FEN(board *chess.Board) string {
	var sb strings.Builder
	for row := chess.BoardSize - 1; row >= 0; row-- {
		empty := 0
		for col := 0; col < chess.BoardSize; col++ {
			o := board.At(row, col)
			if o.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(o.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}
