// Package output writes the reports produced by playing transcripts, as
// text or JSON, and draws boards for the terminal.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/movecheck/internal/config"
	"github.com/lgbarn/movecheck/internal/processing"
)

// OutcomeWriter is the interface for writing transcript reports.
type OutcomeWriter interface {
	// WriteReport writes the report of one transcript.
	WriteReport(r *processing.Report) error

	// Close releases the writer. Batch writers (JSON) write their output
	// here.
	Close() error
}

// NewWriter returns the writer selected by cfg, writing to cfg.OutputFile.
func NewWriter(cfg *config.Config) OutcomeWriter {
	if cfg.Output.Format == config.JSON {
		return NewJSONWriter(cfg.OutputFile)
	}
	return NewTextWriter(cfg.OutputFile, cfg.Output)
}

// TextWriter writes one line per move record followed by a summary line.
type TextWriter struct {
	w        io.Writer
	cfg      config.OutputConfig
	renderer *BoardRenderer
}

// NewTextWriter creates a text writer. When cfg.DrawBoard is set the board
// is drawn after each applied move.
func NewTextWriter(w io.Writer, cfg config.OutputConfig) *TextWriter {
	tw := &TextWriter{w: w, cfg: cfg}
	if cfg.DrawBoard {
		tw.renderer = NewBoardRenderer(cfg.UseColour)
	}
	return tw
}

// WriteReport writes every outcome of r and then its summary.
func (tw *TextWriter) WriteReport(r *processing.Report) error {
	for _, o := range r.Outcomes {
		if _, err := fmt.Fprintln(tw.w, FormatOutcome(r.Source, o)); err != nil {
			return err
		}
		if tw.renderer != nil && o.Applied {
			if err := tw.renderer.RenderFEN(tw.w, o.FEN); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(tw.w, FormatSummary(r))
	return err
}

// Close is a no-op; text is written immediately.
func (tw *TextWriter) Close() error {
	return nil
}

// FormatOutcome renders one outcome as a single line, e.g.
// "game.txt:2: move E2,E3: legal, applied".
func FormatOutcome(source string, o processing.Outcome) string {
	if !o.Evaluated {
		return fmt.Sprintf("%s: error: %v", location(source, o.Line), o.Err)
	}
	return fmt.Sprintf("%s: %s: %s", location(source, o.Line), o.Text, verdict(o))
}

// FormatSummary renders the totals of a report on one line.
func FormatSummary(r *processing.Report) string {
	name := r.Source
	if name == "" {
		name = "<stdin>"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %d records, %d legal, %d illegal, %d errors, %d applied",
		name, len(r.Outcomes), r.Legal, r.Illegal, r.Errors, r.Applied)
	if r.Stopped {
		sb.WriteString(" (stopped)")
	}
	fmt.Fprintf(&sb, "; final %s", r.FinalFEN)
	return sb.String()
}

func location(source string, line int) string {
	if source == "" {
		return fmt.Sprintf("line %d", line)
	}
	return fmt.Sprintf("%s:%d", source, line)
}

func verdict(o processing.Outcome) string {
	if !o.Legal {
		return "illegal"
	}
	parts := []string{"legal"}
	if o.Check {
		parts = append(parts, "check")
	}
	if o.Checkmate {
		parts = append(parts, "checkmate")
	}
	if o.Applied {
		parts = append(parts, "applied")
	}
	if o.GivesCheck {
		parts = append(parts, "gives check")
	}
	return strings.Join(parts, ", ")
}

// JSONWriter buffers reports and writes them as one document on Close.
type JSONWriter struct {
	w       io.Writer
	reports []*JSONReport
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteReport buffers r for output.
func (jw *JSONWriter) WriteReport(r *processing.Report) error {
	jw.reports = append(jw.reports, ReportToJSON(r))
	return nil
}

// Close writes all buffered reports as {"reports": [...]}.
func (jw *JSONWriter) Close() error {
	out := &JSONOutput{Reports: jw.reports}
	if out.Reports == nil {
		out.Reports = []*JSONReport{}
	}
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(out)
	jw.reports = nil
	return err
}
