// Package snapshot compares rendered terminal output against golden files.
// Output is compared as the user would read it: escape sequences removed,
// line endings unified, trailing blanks dropped.
package snapshot

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/muesli/ansi"
)

// GoldenDir is where golden files live, relative to the package under test.
const GoldenDir = "testdata/golden"

// UpdateEnvVar rewrites golden files instead of comparing when set to "1".
const UpdateEnvVar = "UPDATE_GOLDEN"

// escapes matches CSI sequences (colors, cursor movement) and OSC 8 hyperlinks.
var escapes = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]|\x1b\]8;;[^\x1b]*\x1b\\`)

// Snap asserts on rendered output for one test.
type Snap struct {
	t         testing.TB
	goldenDir string
	update    bool
}

// New creates a Snap for t, reading golden files from GoldenDir.
func New(t testing.TB) *Snap {
	return &Snap{
		t:         t,
		goldenDir: GoldenDir,
		update:    os.Getenv(UpdateEnvVar) == "1",
	}
}

// WithDir reads golden files from dir instead.
func (s *Snap) WithDir(dir string) *Snap {
	s.goldenDir = dir
	return s
}

// Assert compares actual against the golden file name.golden.
func (s *Snap) Assert(name, actual string) {
	s.t.Helper()

	path := filepath.Join(s.goldenDir, name+".golden")
	got := Normalize(actual)

	if s.update {
		if err := os.MkdirAll(s.goldenDir, 0755); err != nil {
			s.t.Fatalf("failed to create golden dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(got+"\n"), 0644); err != nil {
			s.t.Fatalf("failed to write golden file: %v", err)
		}
		s.t.Logf("updated golden file %s", path)
		return
	}

	want, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		s.t.Fatalf("golden file %s not found, run with %s=1 to create it. Output:\n%s", path, UpdateEnvVar, got)
	}
	if err != nil {
		s.t.Fatalf("failed to read golden file: %v", err)
	}

	if Normalize(string(want)) != got {
		s.t.Errorf("output does not match %s\n\nwant:\n%s\n\ngot:\n%s\n\nrun with %s=1 to update",
			path, want, got, UpdateEnvVar)
	}
}

// AssertContains checks that the readable output contains substr.
func (s *Snap) AssertContains(actual, substr string) {
	s.t.Helper()
	if got := Normalize(actual); !strings.Contains(got, substr) {
		s.t.Errorf("output does not contain %q:\n%s", substr, got)
	}
}

// AssertNotContains checks that the readable output does not contain substr.
func (s *Snap) AssertNotContains(actual, substr string) {
	s.t.Helper()
	if got := Normalize(actual); strings.Contains(got, substr) {
		s.t.Errorf("output unexpectedly contains %q:\n%s", substr, got)
	}
}

// AssertFits checks that output fits in a width x height terminal.
func (s *Snap) AssertFits(actual string, width, height int) {
	s.t.Helper()
	if w := Width(actual); w > width {
		s.t.Errorf("output is %d cells wide, terminal is %d:\n%s", w, width, Normalize(actual))
	}
	if h := Lines(actual); h > height {
		s.t.Errorf("output is %d lines tall, terminal is %d:\n%s", h, height, Normalize(actual))
	}
}

// Normalize returns output as a reader sees it: no escape sequences, no
// carriage returns, no trailing blanks on any line or at the end.
func Normalize(out string) string {
	out = strings.ReplaceAll(StripANSI(out), "\r\n", "\n")
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

// StripANSI removes escape sequences.
func StripANSI(s string) string {
	return escapes.ReplaceAllString(s, "")
}

// Lines is the number of lines the output occupies.
func Lines(s string) int {
	return strings.Count(s, "\n") + 1
}

// Width is the widest line of the output in terminal cells.
func Width(s string) int {
	widest := 0
	for _, line := range strings.Split(s, "\n") {
		widest = max(widest, ansi.PrintableRuneWidth(line))
	}
	return widest
}
