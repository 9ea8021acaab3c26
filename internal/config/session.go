package config

import (
	"github.com/lgbarn/movecheck/internal/engine"
	"github.com/lgbarn/movecheck/internal/errors"
)

// SessionConfig holds settings for playing a transcript.
type SessionConfig struct {
	// StartFEN is the position every transcript starts from.
	StartFEN string

	// StopOnError ends a transcript at the first malformed, unknown or
	// illegal move record.
	StopOnError bool
}

// NewSessionConfig returns a SessionConfig with default values.
func NewSessionConfig() SessionConfig {
	return SessionConfig{StartFEN: engine.InitialFEN}
}

// Validate checks that StartFEN describes a board.
func (c SessionConfig) Validate() error {
	if _, err := engine.NewBoardFromFEN(c.StartFEN); err != nil {
		return errors.Wrap(err, "start position")
	}
	return nil
}
