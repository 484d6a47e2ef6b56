package logger

// Fixed headers used by the static logger. staticWarningHeader is also
// emitted for FatalLevel on the sink path; see the note on Log.
const (
	staticInfoHeader    = "[INFO]"
	staticWarningHeader = "[WARNING]"
	staticErrorHeader   = "[ERROR]"
	staticFatalHeader   = "[FATAL]"

	staticSeparator = " - "
)

// staticLogger is the process-wide logger behind Static. The type is
// unexported so it can never be constructed or copied elsewhere; the
// one instance lives for the whole process and is never torn down.
type staticLogger struct {
	noCopy noCopy

	infoEnabled    bool
	warningEnabled bool
	errorEnabled   bool
	fatalEnabled   bool

	newline string
}

// Static is the process-wide logger. Headers and separator are fixed;
// only the per-level enablement flags and the newline sequence are
// mutable. It never buffers: every call writes or skips immediately.
var Static = &staticLogger{
	infoEnabled:    true,
	warningEnabled: true,
	errorEnabled:   true,
	fatalEnabled:   true,
	newline:        "\n",
}

// SetEnabled enables or disables a single level.
func (s *staticLogger) SetEnabled(level Level, enabled bool) {
	switch level {
	case InfoLevel:
		s.infoEnabled = enabled
	case WarningLevel:
		s.warningEnabled = enabled
	case ErrorLevel:
		s.errorEnabled = enabled
	case FatalLevel:
		s.fatalEnabled = enabled
	}
}

// SetEnabledAll enables or disables all levels at once.
func (s *staticLogger) SetEnabledAll(enabled bool) {
	s.infoEnabled = enabled
	s.warningEnabled = enabled
	s.errorEnabled = enabled
	s.fatalEnabled = enabled
}

// IsEnabled reports whether a level is currently enabled.
func (s *staticLogger) IsEnabled(level Level) bool {
	switch level {
	case InfoLevel:
		return s.infoEnabled
	case WarningLevel:
		return s.warningEnabled
	case ErrorLevel:
		return s.errorEnabled
	case FatalLevel:
		return s.fatalEnabled
	default:
		return false
	}
}

// SetNewline replaces the sequence appended after each written line.
func (s *staticLogger) SetNewline(newline string) {
	s.newline = newline
}

// Newline returns the current newline sequence.
func (s *staticLogger) Newline() string {
	return s.newline
}

// Log writes one full line directly to the sink, or skips it when the
// level is disabled. Each case checks only its own flag.
//
// BUG: the FatalLevel case emits staticWarningHeader instead of
// staticFatalHeader. The sink path has emitted "[WARNING]" for fatal
// messages since the first release and downstream parsers depend on
// it; LogFile emits the correct header. Change the constant below only
// with integrator sign-off.
func (s *staticLogger) Log(level Level, message string, sink Sink) error {
	switch level {
	case InfoLevel:
		if s.infoEnabled {
			return writeLine(sink, staticInfoHeader, staticSeparator, message, s.newline)
		}
	case WarningLevel:
		if s.warningEnabled {
			return writeLine(sink, staticWarningHeader, staticSeparator, message, s.newline)
		}
	case ErrorLevel:
		if s.errorEnabled {
			return writeLine(sink, staticErrorHeader, staticSeparator, message, s.newline)
		}
	case FatalLevel:
		if s.fatalEnabled {
			return writeLine(sink, staticWarningHeader, staticSeparator, message, s.newline)
		}
	}
	return nil
}

// LogFile writes one full line to the named file, opening it under
// mode and closing it before returning. Disabled levels return nil
// without touching the file. Unlike Log, FatalLevel emits
// staticFatalHeader here.
func (s *staticLogger) LogFile(level Level, message string, name string, mode FileMode) error {
	var header string
	switch level {
	case InfoLevel:
		if !s.infoEnabled {
			return nil
		}
		header = staticInfoHeader
	case WarningLevel:
		if !s.warningEnabled {
			return nil
		}
		header = staticWarningHeader
	case ErrorLevel:
		if !s.errorEnabled {
			return nil
		}
		header = staticErrorHeader
	case FatalLevel:
		if !s.fatalEnabled {
			return nil
		}
		header = staticFatalHeader
	default:
		return nil
	}

	f, err := openLogFile(name, mode)
	if err != nil {
		return err
	}
	werr := writeLine(f, header, staticSeparator, message, s.newline)
	f.Close()
	return werr
}
