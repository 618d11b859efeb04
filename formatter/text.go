package formatter

import (
	"bytes"
	"io"
	"strconv"
	"time"

	"github.com/philipp01105/lazylog/core"
)

// TextFormatter formats log entries as human-readable text
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	return &TextFormatter{Config: cfg}
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(entry, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats an entry and writes it directly to the writer
func (f *TextFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(entry, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// FormatEntry formats an entry as text into the given buffer (implements BufferFormatter).
func (f *TextFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	f.formatToBuffer(entry, buf)
}

// pre-formatted level strings to avoid multiple WriteString calls
var levelBrackets = [...]string{
	core.TraceLevel:    " [TRACE] ",
	core.DebugLevel:    " [DEBUG] ",
	core.InfoLevel:     " [INFO] ",
	core.WarnLevel:     " [WARN] ",
	core.ErrorLevel:    " [ERROR] ",
	core.CriticalLevel: " [CRITICAL] ",
}

var coloredLevelBrackets = [...]string{
	core.TraceLevel:    " \x1b[90m[TRACE]\x1b[0m ",
	core.DebugLevel:    " \x1b[37m[DEBUG]\x1b[0m ",
	core.InfoLevel:     " \x1b[36m[INFO]\x1b[0m ",
	core.WarnLevel:     " \x1b[33m[WARN]\x1b[0m ",
	core.ErrorLevel:    " \x1b[31m[ERROR]\x1b[0m ",
	core.CriticalLevel: " \x1b[1;31m[CRITICAL]\x1b[0m ",
}

// formatToBuffer writes the formatted entry into the given buffer
func (f *TextFormatter) formatToBuffer(entry *core.Entry, buf *bytes.Buffer) {
	// Timestamp - use AppendFormat to avoid string allocation
	buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))

	// Level - use pre-formatted string
	brackets := levelBrackets[:]
	if f.Color {
		brackets = coloredLevelBrackets[:]
	}
	if entry.Level >= 0 && int(entry.Level) < len(brackets) {
		buf.WriteString(brackets[entry.Level])
	} else {
		buf.WriteString(" [UNKNOWN] ")
	}

	// Caller info if enabled
	if f.IncludeCaller && entry.Caller.Defined {
		buf.WriteByte('[')
		buf.WriteString(entry.Caller.ShortFile)
		buf.WriteByte(':')
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(entry.Caller.Line), 10))
		buf.WriteString("] ")
	}

	if !entry.EventID.IsZero() {
		buf.WriteByte('[')
		buf.WriteString(entry.EventID.String())
		buf.WriteString("] ")
	}

	// Message
	buf.WriteString(entry.Message)

	if f.IncludeTemplate && entry.Template != "" {
		buf.WriteString(" template=")
		buf.Write(strconv.AppendQuote(buf.AvailableBuffer(), entry.Template))
	}

	if entry.Err != nil {
		buf.WriteString(" error=")
		buf.WriteString(entry.Err.Error())
	}

	// Fields
	for _, field := range entry.Fields {
		buf.WriteByte(' ')
		buf.WriteString(field.Key)
		buf.WriteByte('=')
		buf.WriteString(field.StringValue())
	}

	buf.WriteByte('\n')
}
