package config

import (
	"fmt"

	"github.com/lgbarn/movecheck/internal/errors"
)

// OutputFormat selects how reports are written.
type OutputFormat int

const (
	Text OutputFormat = iota // one line per move record
	JSON                     // a single JSON document
)

// String returns the name of the format.
func (f OutputFormat) String() string {
	switch f {
	case Text:
		return "text"
	case JSON:
		return "json"
	default:
		return fmt.Sprintf("OutputFormat(%d)", int(f))
	}
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format selects text or JSON output
	Format OutputFormat

	// DrawBoard renders the board after every applied move (text only)
	DrawBoard bool

	// UseColour enables ANSI colours when drawing the board
	UseColour bool
}

// NewOutputConfig returns an OutputConfig with default values.
func NewOutputConfig() OutputConfig {
	return OutputConfig{
		Format:    Text,
		UseColour: true,
	}
}

// Validate checks the output settings.
func (c OutputConfig) Validate() error {
	if c.Format != Text && c.Format != JSON {
		return fmt.Errorf("unknown output format %v: %w", c.Format, errors.ErrInvalidConfig)
	}
	return nil
}
