package logger

import (
	"fmt"
	"io"
	"os"
)

// Sink is any destination that accepts appended text fragments.
// *os.File, *strings.Builder, *bytes.Buffer and *bufio.Writer all
// satisfy it directly; wrap anything else with NewWriterSink.
type Sink interface {
	WriteString(s string) (int, error)
}

// writerSink adapts a plain io.Writer to the Sink interface.
type writerSink struct {
	w io.Writer
}

func (s writerSink) WriteString(str string) (int, error) {
	return io.WriteString(s.w, str)
}

// NewWriterSink returns a Sink that appends text to w.
func NewWriterSink(w io.Writer) Sink {
	return writerSink{w: w}
}

// FileMode selects how file-based logging opens the target file.
type FileMode int

const (
	// Truncate discards any existing file contents on open. Default.
	Truncate FileMode = iota
	// Append preserves existing contents and writes at the end.
	Append
)

func (m FileMode) flags() int {
	if m == Append {
		return os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}
	return os.O_CREATE | os.O_WRONLY | os.O_TRUNC
}

// openLogFile opens name for writing under mode. The returned error is
// the only file-related failure the callers report; write and close
// errors on the handle are not separately checked.
func openLogFile(name string, mode FileMode) (*os.File, error) {
	f, err := os.OpenFile(name, mode.flags(), 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", name, err)
	}
	return f, nil
}
