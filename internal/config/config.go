// Package config provides configuration for movecheck.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/movecheck/internal/engine"
	"github.com/lgbarn/movecheck/internal/errors"
)

// Verbosity levels for LogFile output.
const (
	Silent     = 0 // nothing
	Summary    = 1 // per-file summaries and errors
	Commentary = 2 // one line per move record
)

// Config holds all program configuration.
type Config struct {
	Verbosity int

	// Workers is the number of transcripts processed concurrently.
	Workers int

	// Rules selects the movement simplifications the engine applies.
	Rules engine.Rules

	Output    OutputConfig
	Session   SessionConfig
	Duplicate DuplicateConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Summary,
		Workers:    1,
		Rules:      engine.ReferenceRules(),
		Output:     NewOutputConfig(),
		Session:    NewSessionConfig(),
		Duplicate:  NewDuplicateConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks the configuration for values the program cannot run with.
func (c *Config) Validate() error {
	if c.Verbosity < Silent || c.Verbosity > Commentary {
		return fmt.Errorf("verbosity %d out of range: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.OutputFile == nil || c.LogFile == nil {
		return fmt.Errorf("output and log streams are required: %w", errors.ErrInvalidConfig)
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Session.Validate()
}

// Logf writes a diagnostic line to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
