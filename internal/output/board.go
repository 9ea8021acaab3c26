package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/movecheck/internal/chess"
	"github.com/lgbarn/movecheck/internal/engine"
)

// BoardRenderer draws a board as text, rank 8 at the top, one FEN letter
// per square and '.' for empty squares.
type BoardRenderer struct {
	white *color.Color
	black *color.Color
	empty *color.Color
	label *color.Color
}

// NewBoardRenderer creates a renderer. With useColour false no escape
// sequences are written; with it true they are written even when stdout
// is not a terminal.
func NewBoardRenderer(useColour bool) *BoardRenderer {
	br := &BoardRenderer{
		white: color.New(color.FgHiWhite, color.Bold),
		black: color.New(color.FgRed, color.Bold),
		empty: color.New(color.FgHiBlack),
		label: color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{br.white, br.black, br.empty, br.label} {
		if useColour {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return br
}

// Render writes the board to w.
func (br *BoardRenderer) Render(w io.Writer, board *chess.Board) error {
	var sb strings.Builder
	for row := chess.BoardSize - 1; row >= 0; row-- {
		sb.WriteString(br.label.Sprint(row + 1))
		for col := 0; col < chess.BoardSize; col++ {
			sb.WriteByte(' ')
			sb.WriteString(br.square(board.At(row, col)))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(" ")
	for col := 0; col < chess.BoardSize; col++ {
		sb.WriteByte(' ')
		sb.WriteString(br.label.Sprint(string(rune(chess.ColBase + col))))
	}
	sb.WriteByte('\n')
	_, err := io.WriteString(w, sb.String())
	return err
}

// RenderFEN draws the board described by a FEN placement.
func (br *BoardRenderer) RenderFEN(w io.Writer, fen string) error {
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return fmt.Errorf("drawing board: %w", err)
	}
	return br.Render(w, board)
}

func (br *BoardRenderer) square(o chess.Occupant) string {
	letter := string(o.Letter())
	switch {
	case o.IsEmpty():
		return br.empty.Sprint(letter)
	case o.Colour == chess.White:
		return br.white.Sprint(letter)
	default:
		return br.black.Sprint(letter)
	}
}
