package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDebugDisabledByDefault(t *testing.T) {
	DebugEnabled = true
	t.Setenv(DebugEnvVar, "")

	InitDebug()

	if DebugEnabled {
		t.Error("debug should be disabled without " + DebugEnvVar)
	}
	if DebugLog == nil {
		t.Error("DebugLog should be a no-op logger, not nil")
	}
}

func TestDebugEnabledWithEnvVar(t *testing.T) {
	debugLogFileName = filepath.Join(t.TempDir(), "debug.log")
	t.Setenv(DebugEnvVar, "1")

	InitDebug()
	defer CloseDebug()

	if !DebugEnabled {
		t.Fatalf("debug should be enabled with %s=1", DebugEnvVar)
	}

	LayoutTrace("standard height %d", 694)
	InputTrace("key %q", "p")
	Debug("plain")
	CloseDebug()

	data, err := os.ReadFile(debugLogFileName)
	if err != nil {
		t.Fatalf("reading debug log: %v", err)
	}
	for _, want := range []string{"[LAYOUT] standard height 694", `[INPUT] key "p"`, "plain"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("debug log missing %q:\n%s", want, data)
		}
	}
}

func TestDebugUnopenableFile(t *testing.T) {
	debugLogFileName = filepath.Join(t.TempDir(), "missing", "debug.log")
	t.Setenv(DebugEnvVar, "1")

	InitDebug()
	defer CloseDebug()

	if debugLogFile != nil {
		t.Error("no debug file should be open")
	}
	// Still safe to call.
	LayoutTrace("ignored")
}

func TestTraceHelpersWithNilLogger(t *testing.T) {
	defer func() { DebugLog = nil; DebugEnabled = false }()

	DebugEnabled = false
	DebugLog = nil
	LayoutTrace("test %s", "arg")
	InputTrace("test %s", "arg")
	Debug("test %s", "arg")

	DebugEnabled = true
	LayoutTrace("test %s", "arg")
	InputTrace("test %s", "arg")
	Debug("test %s", "arg")
}
