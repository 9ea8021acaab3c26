package config

import "io"

// DuplicateConfig holds settings for detecting transcripts that end in the
// same position.
type DuplicateConfig struct {
	// Detect enables duplicate detection
	Detect bool

	// ExactMatch also requires the same number of applied moves
	ExactMatch bool

	// DuplicateFile, when set, receives one line per duplicate
	DuplicateFile io.Writer
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() DuplicateConfig {
	return DuplicateConfig{}
}
