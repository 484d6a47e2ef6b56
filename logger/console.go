package logger

import (
	"os"

	"github.com/mattn/go-isatty"
)

// ANSI color codes per level, matching the usual console conventions.
var levelColors = map[Level]string{
	InfoLevel:    "\033[32m",
	WarningLevel: "\033[33m",
	ErrorLevel:   "\033[31m",
	FatalLevel:   "\033[35m",
}

const colorReset = "\033[0m"

// EnableColorHeaders installs ANSI-colored headers on l when f is a
// terminal. It goes through the ordinary SetHeader path, so the colors
// end up in buffered lines and file output too; only call it when the
// logger is dedicated to console output. Does nothing when f is not a
// terminal, keeping piped and redirected output plain.
func EnableColorHeaders(l *Logger, f *os.File) {
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return
	}
	for _, level := range AllLevels() {
		l.SetHeader(level, levelColors[level]+l.Header(level)+colorReset)
	}
}
