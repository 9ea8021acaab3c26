// processor.go - Transcript processing and reporting
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lgbarn/movecheck/internal/config"
	"github.com/lgbarn/movecheck/internal/errors"
	"github.com/lgbarn/movecheck/internal/hashing"
	"github.com/lgbarn/movecheck/internal/output"
	"github.com/lgbarn/movecheck/internal/processing"
	"github.com/lgbarn/movecheck/internal/transcript"
	"github.com/lgbarn/movecheck/internal/worker"
)

// stdin is read when no transcript files are named.
var stdin io.Reader = os.Stdin

// stdinName labels standard input in reports and logs.
const stdinName = "stdin"

// runStats totals the reports of one run.
type runStats struct {
	Files      int
	Unreadable int
	Records    int
	Legal      int
	Illegal    int
	Errors     int
	Applied    int
	Duplicates int
	Positions  int

	// DuplicatesChecked is set when duplicate detection ran.
	DuplicatesChecked bool
}

func (s *runStats) add(r *processing.Report) {
	s.Files++
	s.Records += len(r.Outcomes)
	s.Legal += r.Legal
	s.Illegal += r.Illegal
	s.Errors += r.Errors
	s.Applied += r.Applied
}

// processAllInputs plays every source through the worker pool and writes
// the reports in input order. Only an output failure is returned; a file
// that cannot be read is logged and counted as unreadable.
func processAllInputs(ctx context.Context, cfg *config.Config, sources []string) (runStats, error) {
	var stats runStats

	process := func(ctx context.Context, item worker.WorkItem) worker.ProcessResult {
		return processTranscript(ctx, cfg, item)
	}
	results := worker.Run(ctx, sources, process, worker.WithWorkers(cfg.Workers))

	var detector *hashing.DuplicateDetector
	if cfg.Duplicate.Detect {
		detector = hashing.NewDuplicateDetector(cfg.Duplicate.ExactMatch)
		stats.DuplicatesChecked = true
	}

	w := output.NewWriter(cfg)
	for _, res := range results {
		if res.Err != nil {
			stats.Unreadable++
			cfg.Logf(config.Summary, "Error: %v", res.Err)
			continue
		}
		logReport(cfg, res.Report)
		stats.add(res.Report)
		if detector != nil {
			checkDuplicate(cfg, detector, res.Report)
		}
		if err := w.WriteReport(res.Report); err != nil {
			return stats, err
		}
	}
	if detector != nil {
		stats.Duplicates = detector.DuplicateCount()
		stats.Positions = detector.UniqueCount()
	}
	return stats, w.Close()
}

// processTranscript reads and plays one transcript on a fresh board.
func processTranscript(_ context.Context, cfg *config.Config, item worker.WorkItem) worker.ProcessResult {
	res := worker.ProcessResult{Source: item.Source, Index: item.Index}

	name := item.Source
	var r io.Reader = stdin
	if item.Source == "" {
		name = stdinName
	} else {
		file, err := os.Open(item.Source) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			res.Err = errors.Wrapf(err, "opening %s", item.Source)
			return res
		}
		defer file.Close() //nolint:errcheck // read-only
		r = file
	}

	records, err := transcript.Read(r, name)
	if err != nil {
		res.Err = err
		return res
	}

	session, err := processing.NewSessionFromConfig(cfg, name)
	if err != nil {
		res.Err = err
		return res
	}
	res.Report = session.Run(records, cfg.Session.StopOnError)
	return res
}

// checkDuplicate records the final position of r, logging the pair when
// an earlier report already reached it.
func checkDuplicate(cfg *config.Config, detector *hashing.DuplicateDetector, r *processing.Report) {
	sig := hashing.NewSignature(r.Source, r.FinalBoard, r.Applied)
	orig, dup := detector.CheckAndAdd(sig)
	if !dup {
		return
	}
	cfg.Logf(config.Summary, "%s: final position duplicates %s", r.Source, orig.Source)
	if cfg.Duplicate.DuplicateFile != nil {
		fmt.Fprintf(cfg.Duplicate.DuplicateFile, "%s\t%s\n", r.Source, orig.Source)
	}
}

// logReport writes commentary for each record and a per-file line.
func logReport(cfg *config.Config, r *processing.Report) {
	for _, o := range r.Outcomes {
		cfg.Logf(config.Commentary, "%s", output.FormatOutcome(r.Source, o))
	}
	cfg.Logf(config.Summary, "%s", output.FormatSummary(r))
}

// reportStatistics prints the run totals to the log.
func reportStatistics(cfg *config.Config, s runStats) {
	if cfg.Verbosity < config.Summary || cfg.LogFile == nil {
		return
	}
	p := message.NewPrinter(language.English)
	p.Fprintf(cfg.LogFile, "%d file(s), %d unreadable; %d record(s): %d legal, %d illegal, %d error(s), %d applied",
		s.Files, s.Unreadable, s.Records, s.Legal, s.Illegal, s.Errors, s.Applied)
	if s.DuplicatesChecked {
		p.Fprintf(cfg.LogFile, "; %d distinct final position(s), %d duplicate(s)", s.Positions, s.Duplicates)
	}
	p.Fprintf(cfg.LogFile, ".\n")
}
