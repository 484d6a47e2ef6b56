package logger

// Level identifies the severity of a log message.
type Level int

const (
	// InfoLevel identifies informational messages.
	InfoLevel Level = iota
	// WarningLevel identifies warning messages.
	WarningLevel
	// ErrorLevel identifies error messages.
	ErrorLevel
	// FatalLevel identifies fatal messages.
	FatalLevel
)

// AllLevels returns all supported levels, ordered by severity.
func AllLevels() []Level {
	return []Level{InfoLevel, WarningLevel, ErrorLevel, FatalLevel}
}

// String returns the level name as used in the default headers.
func (l Level) String() string {
	switch l {
	case InfoLevel:
		return "INFO"
	case WarningLevel:
		return "WARNING"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

func defaultHeaders() map[Level]string {
	return map[Level]string{
		InfoLevel:    "[INFO]",
		WarningLevel: "[WARNING]",
		ErrorLevel:   "[ERROR]",
		FatalLevel:   "[FATAL]",
	}
}

func allLevelsEnabled() map[Level]bool {
	return map[Level]bool{
		InfoLevel:    true,
		WarningLevel: true,
		ErrorLevel:   true,
		FatalLevel:   true,
	}
}
