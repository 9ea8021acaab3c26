// movecheck checks chess move transcripts for legality and plays the legal
// moves on a board.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/movecheck/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("movecheck version %s\n", programVersion)
		os.Exit(0)
	}

	os.Exit(run(flag.Args()))
}

// run configures the program from the flags, processes every input and
// returns the exit status.
func run(args []string) int {
	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	closeLog, err := setupLogFile(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	closeOutput, err := setupOutputFile(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeOutput()

	closeDup, err := setupDuplicateFile(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeDup()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	cfg.Logf(config.Commentary, "rules: %s", cfg.Rules)

	sources := args
	if len(sources) == 0 {
		sources = []string{""}
	}

	stats, err := processAllInputs(context.Background(), cfg, sources)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		return 1
	}
	reportStatistics(cfg, stats)

	if stats.Unreadable > 0 {
		return 1
	}
	return 0
}

// setupLogFile points cfg.LogFile at the -l or -L file. The returned func
// closes it.
func setupLogFile(cfg *config.Config) (func(), error) {
	var (
		file *os.File
		err  error
	)
	switch {
	case *appendLog != "":
		file, err = os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	case *logFile != "":
		file, err = os.Create(*logFile)
	default:
		return func() {}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	cfg.LogFile = file
	return func() { _ = file.Close() }, nil
}

// setupOutputFile points cfg.OutputFile at the -o file. The returned func
// closes it.
func setupOutputFile(cfg *config.Config) (func(), error) {
	if *outputFile == "" {
		return func() {}, nil
	}

	var (
		file *os.File
		err  error
	)
	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", *outputFile, err)
	}
	cfg.OutputFile = file
	return func() { _ = file.Close() }, nil
}

// setupDuplicateFile points cfg.Duplicate.DuplicateFile at the -d file.
func setupDuplicateFile(cfg *config.Config) (func(), error) {
	if *duplicateFile == "" {
		return func() {}, nil
	}
	file, err := os.Create(*duplicateFile)
	if err != nil {
		return nil, fmt.Errorf("creating duplicate file %s: %w", *duplicateFile, err)
	}
	cfg.Duplicate.DuplicateFile = file
	return func() { _ = file.Close() }, nil
}

func usage() {
	w := flag.CommandLine.Output()
	fmt.Fprintf(w, "Usage: movecheck [options] [transcript-files...]\n\n")
	fmt.Fprintf(w, "Checks each \"<command> <FROM>,<TO>\" line of a move transcript and\n")
	fmt.Fprintf(w, "plays the legal moves. Reads standard input when no files are given.\n\n")
	fmt.Fprintf(w, "Commands:\n")
	fmt.Fprintf(w, "  move   check the move and apply it when legal\n")
	fmt.Fprintf(w, "  try    check the move only\n\n")
	fmt.Fprintf(w, "Options:\n")
	flag.PrintDefaults()
}
