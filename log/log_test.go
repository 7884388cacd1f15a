package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoggersUsableBeforeInitialize(t *testing.T) {
	// Library code logs through these before main has set anything up.
	InfoLog.Printf("info %d", 1)
	WarningLog.Printf("warning %d", 2)
	ErrorLog.Printf("error %d", 3)
}

func TestInitializeWritesToFile(t *testing.T) {
	logFileName = filepath.Join(t.TempDir(), "kbheight.log")
	t.Setenv(DebugEnvVar, "")

	Initialize()
	InfoLog.Printf("computed standard height %d", 594)
	ErrorLog.Printf("unknown profile %q", "watch")
	Close()

	data, err := os.ReadFile(FileName())
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "INFO:") || !strings.Contains(out, "computed standard height 594") {
		t.Errorf("log file missing info line:\n%s", out)
	}
	if !strings.Contains(out, "ERROR:") || !strings.Contains(out, `unknown profile "watch"`) {
		t.Errorf("log file missing error line:\n%s", out)
	}
}

func TestCloseWithoutInitialize(t *testing.T) {
	globalLogFile = nil
	Close()
}
