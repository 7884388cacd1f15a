// Package log holds the tool's file loggers and its debug mode.
// Debug mode is enabled by setting KBH_DEBUG=1.
package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// DebugEnvVar enables debug logging when set to "1".
const DebugEnvVar = "KBH_DEBUG"

var (
	DebugEnabled bool
	DebugLog     = log.New(io.Discard, "", 0)
	debugLogFile *os.File
)

var debugLogFileName = filepath.Join(os.TempDir(), "kbheight-debug.log")

// InitDebug turns on debug logging if KBH_DEBUG=1 is set. Initialize calls it.
func InitDebug() {
	DebugEnabled = os.Getenv(DebugEnvVar) == "1"
	DebugLog = log.New(io.Discard, "", 0)
	if !DebugEnabled {
		return
	}

	f, err := os.OpenFile(debugLogFileName, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		ErrorLog.Printf("could not open debug log file: %s", err)
		return
	}
	debugLogFile = f
	DebugLog = log.New(f, "DEBUG:", log.Ldate|log.Ltime|log.Lmicroseconds)
	DebugLog.Printf("debug mode enabled, writing to %s", debugLogFileName)
}

// CloseDebug closes the debug log file and tells the user where it is.
func CloseDebug() {
	if debugLogFile == nil {
		return
	}
	_ = debugLogFile.Close()
	debugLogFile = nil
	fmt.Fprintln(os.Stderr, "wrote debug logs to "+debugLogFileName)
}

// Debug logs a message in debug mode.
func Debug(format string, v ...any) {
	trace("", format, v...)
}

// LayoutTrace logs a sizing or layout computation in debug mode.
func LayoutTrace(format string, v ...any) {
	trace("[LAYOUT] ", format, v...)
}

// InputTrace logs input handling in debug mode.
func InputTrace(format string, v ...any) {
	trace("[INPUT] ", format, v...)
}

func trace(tag, format string, v ...any) {
	if !DebugEnabled || DebugLog == nil {
		return
	}
	DebugLog.Printf(tag+format, v...)
}
