package logger

import "github.com/valyala/bytebufferpool"

// linePool recycles the scratch buffers used to assemble log lines.
var linePool bytebufferpool.Pool

// formatLine assembles header+separator+message without a trailing
// newline. This is the single formatting rule shared by the buffered,
// direct and file paths of both logger variants.
func formatLine(header, separator, message string) string {
	buf := linePool.Get()
	buf.WriteString(header)
	buf.WriteString(separator)
	buf.WriteString(message)
	line := buf.String()
	linePool.Put(buf)
	return line
}

// writeLine assembles a full line (including the newline sequence) and
// appends it to the sink in a single write.
func writeLine(sink Sink, header, separator, message, newline string) error {
	buf := linePool.Get()
	buf.WriteString(header)
	buf.WriteString(separator)
	buf.WriteString(message)
	buf.WriteString(newline)
	_, err := sink.WriteString(buf.String())
	linePool.Put(buf)
	return err
}
