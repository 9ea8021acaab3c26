package main

import (
	"testing"

	"github.com/lgbarn/movecheck/internal/config"
	"github.com/lgbarn/movecheck/internal/engine"
	"github.com/lgbarn/movecheck/internal/errors"
)

// saveRestoreBool sets a bool flag and returns a func restoring it.
// Usage: defer saveRestoreBool(jsonOutput, true)()
func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyFlags_Defaults(t *testing.T) {
	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		t.Fatalf("applyFlags() error = %v", err)
	}
	if cfg.Rules != engine.ReferenceRules() {
		t.Errorf("Rules = %v; want %v", cfg.Rules, engine.ReferenceRules())
	}
	if cfg.Output.Format != config.Text {
		t.Errorf("Format = %v; want text", cfg.Output.Format)
	}
	if cfg.Verbosity != config.Summary {
		t.Errorf("Verbosity = %d; want %d", cfg.Verbosity, config.Summary)
	}
	if cfg.Session.StartFEN != engine.InitialFEN {
		t.Errorf("StartFEN = %q; want initial position", cfg.Session.StartFEN)
	}
}

func TestApplyRuleFlags(t *testing.T) {
	tests := []struct {
		name    string
		queen   string
		steps   string
		attacks string
		reject  bool
		want    engine.Rules
		wantErr bool
	}{
		{"reference", "both", "forward", "ray", false, engine.ReferenceRules(), false},
		{"standard", "either", "standard", "standard", false, engine.StandardRules(), false},
		{"upper case", "EITHER", "Standard", "STANDARD", false, engine.StandardRules(), false},
		{"standard attacks only", "both", "forward", "standard", false, engine.Rules{Attacks: engine.AttacksStandard}, false},
		{"reject empty", "both", "forward", "ray", true, engine.Rules{RejectEmptyDestination: true}, false},
		{"bad queen", "sometimes", "forward", "ray", false, engine.Rules{}, true},
		{"bad steps", "both", "sideways", "ray", false, engine.Rules{}, true},
		{"bad attacks", "both", "forward", "xray", false, engine.Rules{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreString(queenPaths, tt.queen)()
			defer saveRestoreString(stepRule, tt.steps)()
			defer saveRestoreString(attackRule, tt.attacks)()
			defer saveRestoreBool(rejectEmpty, tt.reject)()

			cfg := config.NewConfig()
			err := applyRuleFlags(cfg)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrInvalidConfig) {
					t.Errorf("error = %v; want ErrInvalidConfig", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("applyRuleFlags() error = %v", err)
			}
			if cfg.Rules != tt.want {
				t.Errorf("Rules = %v; want %v", cfg.Rules, tt.want)
			}
		})
	}
}

func TestApplyOutputFlags(t *testing.T) {
	defer saveRestoreBool(jsonOutput, true)()
	defer saveRestoreBool(drawBoard, true)()
	defer saveRestoreBool(noColour, true)()

	cfg := config.NewConfig()
	applyOutputFlags(cfg)
	want := config.OutputConfig{Format: config.JSON, DrawBoard: true, UseColour: false}
	if cfg.Output != want {
		t.Errorf("Output = %+v; want %+v", cfg.Output, want)
	}
}

func TestApplyFlags_Verbosity(t *testing.T) {
	tests := []struct {
		name    string
		quiet   bool
		verbose bool
		want    int
	}{
		{"default", false, false, config.Summary},
		{"silent", true, false, config.Silent},
		{"verbose", false, true, config.Commentary},
		{"silent wins", true, true, config.Silent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreBool(quiet, tt.quiet)()
			defer saveRestoreBool(verbose, tt.verbose)()
			cfg := config.NewConfig()
			if err := applyFlags(cfg); err != nil {
				t.Fatal(err)
			}
			if cfg.Verbosity != tt.want {
				t.Errorf("Verbosity = %d; want %d", cfg.Verbosity, tt.want)
			}
		})
	}
}

func TestApplyFlags_Session(t *testing.T) {
	defer saveRestoreString(startFEN, "4k3/8/8/8/8/8/8/4K3")()
	defer saveRestoreBool(stopOnError, true)()
	defer saveRestoreInt(workers, 3)()

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		t.Fatal(err)
	}
	want := config.SessionConfig{StartFEN: "4k3/8/8/8/8/8/8/4K3", StopOnError: true}
	if cfg.Session != want {
		t.Errorf("Session = %+v; want %+v", cfg.Session, want)
	}
	if cfg.Workers != 3 {
		t.Errorf("Workers = %d; want 3", cfg.Workers)
	}
}

func TestApplyFlags_Duplicates(t *testing.T) {
	tests := []struct {
		name      string
		detect    bool
		file      string
		exact     bool
		wantDet   bool
		wantExact bool
	}{
		{"off", false, "", false, false, false},
		{"-D", true, "", false, true, false},
		{"-d implies -D", false, "dups.txt", false, true, false},
		{"exact", true, "", true, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreBool(detectDuplicates, tt.detect)()
			defer saveRestoreString(duplicateFile, tt.file)()
			defer saveRestoreBool(exactDuplicates, tt.exact)()

			cfg := config.NewConfig()
			if err := applyFlags(cfg); err != nil {
				t.Fatal(err)
			}
			if cfg.Duplicate.Detect != tt.wantDet || cfg.Duplicate.ExactMatch != tt.wantExact {
				t.Errorf("Duplicate = %+v; want Detect=%v ExactMatch=%v", cfg.Duplicate, tt.wantDet, tt.wantExact)
			}
		})
	}
}
