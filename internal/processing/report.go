package processing

import (
	"github.com/lgbarn/movecheck/internal/chess"
	"github.com/lgbarn/movecheck/internal/engine"
	"github.com/lgbarn/movecheck/internal/transcript"
)

// Report summarises a transcript played through a Session.
type Report struct {
	Source   string
	Outcomes []Outcome

	Legal   int // records the rules accepted
	Illegal int // records the rules rejected
	Applied int // moves that changed the board
	Errors  int // records that failed to parse or named an unknown command

	// Stopped is set when StopOnError cut the transcript short.
	Stopped bool

	FinalFEN   string
	FinalBoard *chess.Board
}

// Run plays records in order and collects a Report. With stopOnError the
// first outcome carrying an error ends the run.
func (s *Session) Run(records []transcript.Record, stopOnError bool) *Report {
	report := &Report{Source: s.source}
	for i, rec := range records {
		out := s.Play(rec)
		report.add(out)
		if stopOnError && out.Err != nil {
			report.Stopped = i < len(records)-1
			break
		}
	}
	report.FinalBoard = s.board.Copy()
	report.FinalFEN = engine.FEN(s.board)
	return report
}

func (r *Report) add(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
	switch {
	case !o.Evaluated:
		r.Errors++
	case o.Legal:
		r.Legal++
	default:
		r.Illegal++
	}
	if o.Applied {
		r.Applied++
	}
}
