// Package processing plays move records against a board: it parses the
// command, checks legality, flags check and the checkmate heuristic, and
// applies legal moves.
package processing

import (
	"strings"

	"github.com/lgbarn/movecheck/internal/chess"
	"github.com/lgbarn/movecheck/internal/config"
	"github.com/lgbarn/movecheck/internal/engine"
	"github.com/lgbarn/movecheck/internal/errors"
	"github.com/lgbarn/movecheck/internal/transcript"
)

// Commands understood by a Session. Matching is case-insensitive.
const (
	CommandMove = "move" // validate, then apply when legal
	CommandTry  = "try"  // validate only
)

// Outcome is the result of playing one record.
type Outcome struct {
	Line      int
	Text      string
	Operation chess.Operation

	// Evaluated is false when the record never reached the rules
	// (parse error or unknown command).
	Evaluated bool
	Legal     bool

	// Check and Checkmate describe the move's destination before it is
	// played: a king stands there, and for Checkmate its orthogonal
	// neighbours are all occupied. They are only set for legal moves.
	Check     bool
	Checkmate bool

	Applied bool

	// GivesCheck is set when an applied move leaves the opponent's king
	// attacked.
	GivesCheck bool

	// FEN is the piece placement after the record was played.
	FEN string

	Err error
}

// Session owns one board for the length of a transcript. It is not safe
// for concurrent use; give each transcript its own Session.
type Session struct {
	board  *chess.Board
	rules  engine.Rules
	source string
}

// NewSession creates a session that plays on board under rules.
func NewSession(board *chess.Board, rules engine.Rules, source string) *Session {
	return &Session{board: board, rules: rules, source: source}
}

// NewSessionFromConfig creates a session on the configured start position.
func NewSessionFromConfig(cfg *config.Config, source string) (*Session, error) {
	board, err := engine.NewBoardFromFEN(cfg.Session.StartFEN)
	if err != nil {
		return nil, errors.Wrap(err, "start position")
	}
	return NewSession(board, cfg.Rules, source), nil
}

// Board returns the session's board.
func (s *Session) Board() *chess.Board {
	return s.board
}

// Play evaluates one record and, for a legal move command, applies it.
func (s *Session) Play(rec transcript.Record) Outcome {
	out := s.evaluate(rec)
	out.FEN = engine.FEN(s.board)
	return out
}

func (s *Session) evaluate(rec transcript.Record) Outcome {
	out := Outcome{Line: rec.Line, Text: rec.Text, Operation: rec.Op}
	if rec.Err != nil {
		out.Err = rec.Err
		return out
	}

	cmd := strings.ToLower(rec.Op.Command)
	if cmd != CommandMove && cmd != CommandTry {
		out.Err = s.moveError(rec, errors.ErrUnknownCommand)
		return out
	}

	op := rec.Op
	out.Evaluated = true
	out.Legal = s.rules.IsLegalMove(s.board, op.From, op.To)
	if !out.Legal {
		if cmd == CommandMove {
			out.Err = s.moveError(rec, errors.ErrIllegalMove)
		}
		return out
	}

	out.Check = engine.IsCheck(s.board, op)
	out.Checkmate = engine.IsCheckmate(s.board, op)

	if cmd == CommandMove {
		mover := s.board.Get(op.From)
		out.Applied = engine.ApplyMove(s.board, op)
		if out.Applied {
			out.GivesCheck = s.rules.IsInCheck(s.board, mover.Colour.Opposite())
		}
	}
	return out
}

func (s *Session) moveError(rec transcript.Record, err error) error {
	return &errors.MoveError{Err: err, Source: s.source, Line: rec.Line, MoveText: rec.Text}
}
