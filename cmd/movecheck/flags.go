// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/movecheck/internal/config"
	"github.com/lgbarn/movecheck/internal/engine"
)

var (
	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	drawBoard    = flag.Bool("b", false, "Draw the board after each applied move")
	noColour     = flag.Bool("nocolor", false, "Draw the board without colours")

	// Rules
	queenPaths  = flag.String("queen", "both", "Queen path rule: both (diagonal AND straight) or either")
	stepRule    = flag.String("steps", "forward", "Pawn and king steps: forward (one row up only) or standard")
	attackRule  = flag.String("attacks", "ray", "Attack search: ray (pawns along whole diagonals, no king) or standard")
	rejectEmpty = flag.Bool("rejectempty", false, "Treat every move onto an empty square as illegal")

	// Session
	startFEN    = flag.String("fen", engine.InitialFEN, "Starting position for every transcript")
	stopOnError = flag.Bool("stoponerror", false, "Stop a transcript at its first bad or illegal move")

	// Duplicate detection
	detectDuplicates = flag.Bool("D", false, "Report transcripts that end in a position already seen")
	duplicateFile    = flag.String("d", "", "Write duplicate transcripts to this file (implies -D)")
	exactDuplicates  = flag.Bool("dupexact", false, "Duplicates must also apply the same number of moves")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	quiet     = flag.Bool("s", false, "Silent mode (no summary)")
	verbose   = flag.Bool("verbose", false, "Log one line per move record")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers = flag.Int("workers", 1, "Number of transcripts processed in parallel")
)

// applyFlags applies command-line flags to the configuration. It fails
// only on a rule value it cannot parse.
func applyFlags(cfg *config.Config) error {
	if err := applyRuleFlags(cfg); err != nil {
		return err
	}
	applyOutputFlags(cfg)

	cfg.Session.StartFEN = *startFEN
	cfg.Session.StopOnError = *stopOnError
	cfg.Workers = *workers
	cfg.Duplicate.Detect = *detectDuplicates || *duplicateFile != ""
	cfg.Duplicate.ExactMatch = *exactDuplicates

	switch {
	case *quiet:
		cfg.Verbosity = config.Silent
	case *verbose:
		cfg.Verbosity = config.Commentary
	}
	return nil
}

// applyRuleFlags configures the engine strictness switches.
func applyRuleFlags(cfg *config.Config) error {
	q, err := engine.ParseQueenPaths(*queenPaths)
	if err != nil {
		return err
	}
	s, err := engine.ParseStepRule(*stepRule)
	if err != nil {
		return err
	}
	a, err := engine.ParseAttackGeometry(*attackRule)
	if err != nil {
		return err
	}
	cfg.Rules = engine.Rules{
		QueenPaths:             q,
		Steps:                  s,
		Attacks:                a,
		RejectEmptyDestination: *rejectEmpty,
	}
	return nil
}

// applyOutputFlags configures the output format and board drawing.
func applyOutputFlags(cfg *config.Config) {
	if *jsonOutput {
		cfg.Output.Format = config.JSON
	} else {
		cfg.Output.Format = config.Text
	}
	cfg.Output.DrawBoard = *drawBoard
	cfg.Output.UseColour = !*noColour
}
