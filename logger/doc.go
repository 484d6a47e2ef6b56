// Package logger provides a small leveled line logger with buffered
// and direct output to files and generic text sinks.
//
// # Loggers
//
// There are two variants:
//
//   - Logger: an instance-based logger with per-level enablement flags,
//     customizable headers, separator and newline, and an internal
//     buffer of formatted lines that is flushed with Dump or DumpFile.
//   - Static: a process-wide logger with fixed headers and no buffer;
//     every call writes immediately or skips.
//
// # Message format
//
// A log line is the concatenation of HEADER, SEPARATOR, MESSAGE and
// NEWLINE. Defaults: headers "[INFO]", "[WARNING]", "[ERROR]",
// "[FATAL]"; separator " - "; newline "\n". Buffered entries carry no
// newline; it is appended at dump time, so changing the newline after
// buffering affects every line already in the buffer.
//
// # Usage
//
// Buffer now, flush later:
//
//	l := logger.New()
//	l.Log(logger.InfoLevel, "starting up")
//	l.Log(logger.ErrorLevel, "something went wrong")
//	if err := l.DumpFile("app.log", logger.Append); err != nil {
//	    // buffer is intact; retry or dump to another sink
//	}
//
// Or write directly:
//
//	l.LogTo(logger.WarningLevel, "be careful", os.Stderr)
//
// Any destination with a WriteString method is a valid sink, including
// *os.File, *strings.Builder and *bytes.Buffer; wrap a bare io.Writer
// with NewWriterSink.
//
// # Concurrency
//
// The package performs no internal locking. A Logger instance, and the
// Static logger's shared state, must be guarded externally when used
// from multiple goroutines.
package logger
