package main

import (
	"fmt"
	"os"

	"github.com/mordilloSan/go-loglines/logger"
)

// Example demonstrating go-loglines usage.
// Usage: ./go-loglines [logfile]
// Example: ./go-loglines ./app.log
func main() {
	logFile := ""
	if len(os.Args) > 1 {
		logFile = os.Args[1]
	}

	l := logger.NewWithCapacity(16)
	logger.EnableColorHeaders(l, os.Stdout) // colors only when stdout is a terminal

	// Buffered logging: nothing is written until Dump.
	l.Log(logger.InfoLevel, "service starting")
	l.Log(logger.WarningLevel, "config file missing, using defaults")
	l.Log(logger.ErrorLevel, "cache warm-up failed")

	// Flush the buffer to the console.
	if err := l.Dump(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "dump failed: %v\n", err)
	}

	// Direct logging bypasses the buffer entirely.
	l.LogTo(logger.InfoLevel, "direct write, no buffering", os.Stdout)

	// Disabled levels are silent no-ops.
	l.SetEnabled(logger.InfoLevel, false)
	l.LogTo(logger.InfoLevel, "you will not see this", os.Stdout)
	l.SetEnabled(logger.InfoLevel, true)

	// Optional file logging.
	if logFile != "" {
		l.Log(logger.InfoLevel, "first buffered line")
		l.Log(logger.ErrorLevel, "second buffered line")
		if err := l.DumpFile(logFile, logger.Append); err != nil {
			// The buffer survives a failed open; dump it somewhere else.
			fmt.Fprintf(os.Stderr, "file dump failed: %v\n", err)
			l.Dump(os.Stderr)
		} else {
			l.LogTo(logger.InfoLevel, "buffered lines written to "+logFile, os.Stdout)
		}
	}

	// The process-wide static logger writes immediately and never buffers.
	logger.Static.Log(logger.InfoLevel, "static logger says hi", os.Stdout)
	logger.Static.SetEnabled(logger.InfoLevel, false)
	logger.Static.Log(logger.InfoLevel, "suppressed", os.Stdout)
	logger.Static.SetEnabled(logger.InfoLevel, true)
}
