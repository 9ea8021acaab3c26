package output

import (
	"github.com/lgbarn/movecheck/internal/processing"
)

// JSONOutput holds every report written in one run.
type JSONOutput struct {
	Reports []*JSONReport `json:"reports"`
}

// JSONReport represents one transcript in JSON format.
type JSONReport struct {
	Source   string        `json:"source,omitempty"`
	Records  []JSONOutcome `json:"records"`
	Legal    int           `json:"legal"`
	Illegal  int           `json:"illegal"`
	Applied  int           `json:"applied"`
	Errors   int           `json:"errors"`
	Stopped  bool          `json:"stopped,omitempty"`
	FinalFEN string        `json:"finalFEN"`
}

// JSONOutcome represents one move record in JSON format.
type JSONOutcome struct {
	Line       int    `json:"line"`
	Text       string `json:"text"`
	Command    string `json:"command,omitempty"`
	From       string `json:"from,omitempty"`
	To         string `json:"to,omitempty"`
	Evaluated  bool   `json:"evaluated"`
	Legal      bool   `json:"legal"`
	Check      bool   `json:"check,omitempty"`
	Checkmate  bool   `json:"checkmate,omitempty"`
	Applied    bool   `json:"applied,omitempty"`
	GivesCheck bool   `json:"givesCheck,omitempty"`
	FEN        string `json:"fen"`
	Error      string `json:"error,omitempty"`
}

// ReportToJSON converts a report to its JSON form.
func ReportToJSON(r *processing.Report) *JSONReport {
	jr := &JSONReport{
		Source:   r.Source,
		Records:  make([]JSONOutcome, 0, len(r.Outcomes)),
		Legal:    r.Legal,
		Illegal:  r.Illegal,
		Applied:  r.Applied,
		Errors:   r.Errors,
		Stopped:  r.Stopped,
		FinalFEN: r.FinalFEN,
	}
	for _, o := range r.Outcomes {
		jr.Records = append(jr.Records, outcomeToJSON(o))
	}
	return jr
}

func outcomeToJSON(o processing.Outcome) JSONOutcome {
	jo := JSONOutcome{
		Line:       o.Line,
		Text:       o.Text,
		Evaluated:  o.Evaluated,
		Legal:      o.Legal,
		Check:      o.Check,
		Checkmate:  o.Checkmate,
		Applied:    o.Applied,
		GivesCheck: o.GivesCheck,
		FEN:        o.FEN,
	}
	// A record that failed to parse has no meaningful squares.
	if o.Operation.Command != "" {
		jo.Command = o.Operation.Command
		jo.From = o.Operation.From.String()
		jo.To = o.Operation.To.String()
	}
	if o.Err != nil {
		jo.Error = o.Err.Error()
	}
	return jo
}
