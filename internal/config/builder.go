package config

import (
	"io"

	"github.com/lgbarn/movecheck/internal/engine"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithBoardDrawing enables drawing the board after each applied move.
func (b *ConfigBuilder) WithBoardDrawing(draw, colour bool) *ConfigBuilder {
	b.cfg.Output.DrawBoard = draw
	b.cfg.Output.UseColour = colour
	return b
}

// WithRules sets the engine rules.
func (b *ConfigBuilder) WithRules(rules engine.Rules) *ConfigBuilder {
	b.cfg.Rules = rules
	return b
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Session.StartFEN = fen
	return b
}

// StopOnError controls whether a transcript stops at its first bad record.
func (b *ConfigBuilder) StopOnError(stop bool) *ConfigBuilder {
	b.cfg.Session.StopOnError = stop
	return b
}

// WithWorkers sets the number of concurrent transcripts.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithDuplicateDetection enables reporting of transcripts that end in a
// position already seen.
func (b *ConfigBuilder) WithDuplicateDetection(exact bool) *ConfigBuilder {
	b.cfg.Duplicate.Detect = true
	b.cfg.Duplicate.ExactMatch = exact
	return b
}
