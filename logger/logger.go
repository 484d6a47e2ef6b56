package logger

// noCopy makes `go vet -copylocks` flag copies of the type embedding it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Logger is a configurable, buffering leveled logger.
//
// Every level is enabled by default. A formatted line is the
// concatenation of the level's header, the separator and the message;
// the newline sequence is appended only when a line is written out, so
// changing it still affects previously buffered lines.
//
// A Logger has a single owner; it must not be copied after first use.
type Logger struct {
	noCopy noCopy

	enabled   map[Level]bool
	headers   map[Level]string
	separator string
	newline   string

	buffer []string
}

// New returns a Logger with all levels enabled and the default
// formatting: headers "[INFO]", "[WARNING]", "[ERROR]", "[FATAL]",
// separator " - " and newline "\n".
func New() *Logger {
	return &Logger{
		enabled:   allLevelsEnabled(),
		headers:   defaultHeaders(),
		separator: " - ",
		newline:   "\n",
	}
}

// NewWithCapacity returns a Logger whose buffer holds at least
// capacity lines before reallocating. The buffer still grows beyond
// that as needed; this is a hint, not a limit.
func NewWithCapacity(capacity int) *Logger {
	l := New()
	l.buffer = make([]string, 0, capacity)
	return l
}

// SetEnabled enables or disables a single level.
func (l *Logger) SetEnabled(level Level, enabled bool) {
	l.enabled[level] = enabled
}

// SetEnabledAll enables or disables all levels at once.
func (l *Logger) SetEnabledAll(enabled bool) {
	for _, level := range AllLevels() {
		l.enabled[level] = enabled
	}
}

// IsEnabled reports whether a level is currently enabled.
func (l *Logger) IsEnabled(level Level) bool {
	return l.enabled[level]
}

// SetHeader replaces the header text for a level. The string is used
// as-is; no validation is performed.
func (l *Logger) SetHeader(level Level, header string) {
	l.headers[level] = header
}

// Header returns the current header text for a level.
func (l *Logger) Header(level Level) string {
	return l.headers[level]
}

// SetSeparator replaces the text inserted between header and message.
func (l *Logger) SetSeparator(separator string) {
	l.separator = separator
}

// Separator returns the current separator.
func (l *Logger) Separator() string {
	return l.separator
}

// SetNewline replaces the sequence appended after each written line.
func (l *Logger) SetNewline(newline string) {
	l.newline = newline
}

// Newline returns the current newline sequence.
func (l *Logger) Newline() string {
	return l.newline
}

// Log buffers a message at the given level. Disabled levels are a
// silent no-op. The buffered entry carries no newline; it is applied
// by Dump or DumpFile.
func (l *Logger) Log(level Level, message string) {
	if !l.enabled[level] {
		return
	}
	l.buffer = append(l.buffer, formatLine(l.headers[level], l.separator, message))
}

// LogTo writes one full line (including newline) directly to the sink,
// bypassing the buffer. Disabled levels are a silent no-op. The logger
// configuration is not mutated.
func (l *Logger) LogTo(level Level, message string, sink Sink) error {
	if !l.enabled[level] {
		return nil
	}
	return writeLine(sink, l.headers[level], l.separator, message, l.newline)
}

// LogFile writes one full line to the named file, opening it under
// mode and closing it before returning. Disabled levels return nil
// without touching the file. An open failure is returned as an error;
// the message is dropped, not buffered or retried.
func (l *Logger) LogFile(level Level, message string, name string, mode FileMode) error {
	if !l.enabled[level] {
		return nil
	}
	f, err := openLogFile(name, mode)
	if err != nil {
		return err
	}
	werr := writeLine(f, l.headers[level], l.separator, message, l.newline)
	f.Close()
	return werr
}

// Dump writes every buffered line, each followed by the current
// newline sequence, to the sink in chronological order, then clears
// the buffer. The buffer is cleared even if a write fails; there is no
// transactional guarantee on the sink.
func (l *Logger) Dump(sink Sink) error {
	var firstErr error
	for _, line := range l.buffer {
		if _, err := sink.WriteString(line); err != nil && firstErr == nil {
			firstErr = err
		}
		if _, err := sink.WriteString(l.newline); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	l.buffer = l.buffer[:0]
	return firstErr
}

// DumpFile writes the buffer to the named file, opening it under mode.
// If the file cannot be opened the buffer is left untouched and the
// error is returned, so the caller can retry or dump elsewhere. After
// a successful open the buffer is cleared unconditionally.
func (l *Logger) DumpFile(name string, mode FileMode) error {
	f, err := openLogFile(name, mode)
	if err != nil {
		return err
	}
	werr := l.Dump(f)
	f.Close()
	return werr
}
