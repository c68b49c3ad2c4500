package hal

import (
	"bytes"
	"log/slog"
)

// NewSlogHandler formats records as text lines written to l.
func NewSlogHandler(l Logger, level slog.Leveler) slog.Handler {
	return slog.NewTextHandler(lineWriter{l: l}, &slog.HandlerOptions{Level: level})
}

// lineWriter forwards each complete line of a write to a Logger.
type lineWriter struct {
	l Logger
}

func (w lineWriter) Write(p []byte) (int, error) {
	for line := range bytes.Lines(p) {
		w.l.WriteLineBytes(bytes.TrimRight(line, "\r\n"))
	}
	return len(p), nil
}
