package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun_ExitStatus(t *testing.T) {
	dir := t.TempDir()
	good := writeTranscript(t, "good.txt", "move E2,E3\nmove E7,E5\n")
	missing := filepath.Join(dir, "missing.txt")

	tests := []struct {
		name  string
		args  []string
		queen string
		want  int
	}{
		{"illegal moves are not failures", []string{good}, "both", 0},
		{"unreadable input", []string{good, missing}, "both", 1},
		{"bad rule flag", []string{good}, "maybe", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreString(outputFile, filepath.Join(dir, "out.txt"))()
			defer saveRestoreString(logFile, filepath.Join(dir, "log.txt"))()
			defer saveRestoreString(queenPaths, tt.queen)()

			if got := run(tt.args); got != tt.want {
				t.Errorf("run() = %d; want %d", got, tt.want)
			}
		})
	}
}

func TestRun_WritesOutputAndLog(t *testing.T) {
	dir := t.TempDir()
	in := writeTranscript(t, "game.txt", "move E2,E3\n")
	outPath := filepath.Join(dir, "out.txt")
	logPath := filepath.Join(dir, "log.txt")

	defer saveRestoreString(outputFile, outPath)()
	defer saveRestoreString(logFile, logPath)()

	if got := run([]string{in}); got != 0 {
		t.Fatalf("run() = %d; want 0", got)
	}

	out, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "move E2,E3: legal, applied") {
		t.Errorf("output = %q", out)
	}

	log, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(log), "1 file(s), 0 unreadable") {
		t.Errorf("log = %q", log)
	}
}
