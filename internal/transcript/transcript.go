// Package transcript reads move files: one "<command> <FROM>,<TO>" record
// per line.
package transcript

import (
	"bufio"
	"io"
	"strings"

	"github.com/lgbarn/movecheck/internal/chess"
	"github.com/lgbarn/movecheck/internal/errors"
)

// CommentPrefix starts a line that is skipped.
const CommentPrefix = "#"

// Record is one move line of a transcript. Err holds the parse failure for
// that line, if any; a bad record does not stop the read.
type Record struct {
	Line int
	Text string
	Op   chess.Operation
	Err  error
}

// Scanner yields the records of a transcript one at a time.
type Scanner struct {
	source string
	lines  *bufio.Scanner
	line   int
	rec    Record
}

// NewScanner creates a Scanner reading from r. source names the transcript
// in error messages.
func NewScanner(r io.Reader, source string) *Scanner {
	return &Scanner{source: source, lines: bufio.NewScanner(r)}
}

// Scan advances to the next record, skipping blank and comment lines.
// It returns false at the end of input or on a read error.
func (s *Scanner) Scan() bool {
	for s.lines.Scan() {
		s.line++
		text := strings.TrimSpace(s.lines.Text())
		if text == "" || strings.HasPrefix(text, CommentPrefix) {
			continue
		}
		op, err := chess.ParseOperation(text)
		s.rec = Record{
			Line: s.line,
			Text: text,
			Op:   op,
			Err:  errors.Locate(err, s.source, s.line),
		}
		return true
	}
	return false
}

// Record returns the record produced by the last call to Scan.
func (s *Scanner) Record() Record {
	return s.rec
}

// Err returns the first read error, if any.
func (s *Scanner) Err() error {
	if err := s.lines.Err(); err != nil {
		return errors.Wrapf(err, "reading %s", s.source)
	}
	return nil
}

// Read returns every record of a transcript. Only a failure of r is an
// error; malformed lines come back as records with Err set.
func Read(r io.Reader, source string) ([]Record, error) {
	var records []Record
	s := NewScanner(r, source)
	for s.Scan() {
		records = append(records, s.Record())
	}
	return records, s.Err()
}
