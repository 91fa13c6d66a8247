// Package testutil provides test helpers shared across packages, chiefly an
// in-memory slog handler for asserting on structured log output.
package testutil

import (
	"context"
	"log/slog"
	"sync"
)

// LogRecord is one captured log record.
type LogRecord struct {
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

// LogBuffer captures log records emitted through its handler.
type LogBuffer struct {
	mu      sync.Mutex
	records []LogRecord
}

// NewLogger returns a logger whose output is captured in the returned buffer.
// Every level is recorded.
func NewLogger() (*slog.Logger, *LogBuffer) {
	buf := &LogBuffer{}
	return slog.New(&captureHandler{buf: buf}), buf
}

// Records returns a copy of the captured records in emission order.
func (b *LogBuffer) Records() []LogRecord {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]LogRecord(nil), b.records...)
}

// HasMessage reports whether any captured record carries the exact message.
func (b *LogBuffer) HasMessage(message string) bool {
	for _, r := range b.Records() {
		if r.Message == message {
			return true
		}
	}
	return false
}

// MessagesAt returns the messages captured at the given level.
func (b *LogBuffer) MessagesAt(level slog.Level) []string {
	var messages []string
	for _, r := range b.Records() {
		if r.Level == level {
			messages = append(messages, r.Message)
		}
	}
	return messages
}

type captureHandler struct {
	buf   *LogBuffer
	attrs []slog.Attr
}

func (h *captureHandler) Handle(_ context.Context, r slog.Record) error {
	attrs := make(map[string]any)
	for _, a := range h.attrs {
		attrs[a.Key] = a.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.Any()
		return true
	})

	h.buf.mu.Lock()
	defer h.buf.mu.Unlock()
	h.buf.records = append(h.buf.records, LogRecord{
		Level:   r.Level,
		Message: r.Message,
		Attrs:   attrs,
	})
	return nil
}

func (h *captureHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

func (h *captureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &captureHandler{buf: h.buf, attrs: append(append([]slog.Attr(nil), h.attrs...), attrs...)}
}

func (h *captureHandler) WithGroup(_ string) slog.Handler {
	return h
}
