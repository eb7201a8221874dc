// Package logging writes structured log lines: one JSON object per line,
// stamped with "ts" in the application time zone.
package logging

import (
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"
)

// Logger is safe for concurrent use.
type Logger struct {
	mu  sync.Mutex
	enc *json.Encoder
	loc *time.Location
}

// New returns a Logger that writes to w. A nil loc means UTC.
func New(w io.Writer, loc *time.Location) *Logger {
	if loc == nil {
		loc = time.UTC
	}
	return &Logger{enc: json.NewEncoder(w), loc: loc}
}

// Stdout is New(os.Stdout, loc).
func Stdout(loc *time.Location) *Logger {
	return New(os.Stdout, loc)
}

// Location returns the zone used for timestamps.
func (l *Logger) Location() *time.Location {
	return l.loc
}

// Log writes data as-is, adding ts and, if missing, a level derived from
// the "status" field ("error" status means error level).
func (l *Logger) Log(data map[string]any) {
	data["ts"] = time.Now().In(l.loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.enc.Encode(data)
}

func (l *Logger) Info(msg string, fields map[string]any) {
	l.Log(with(fields, "info", msg))
}

func (l *Logger) Warn(msg string, fields map[string]any) {
	l.Log(with(fields, "warn", msg))
}

func (l *Logger) Error(msg string, err error, fields map[string]any) {
	data := with(fields, "error", msg)
	if err != nil {
		data["error"] = err.Error()
	}
	l.Log(data)
}

func with(fields map[string]any, level, msg string) map[string]any {
	data := make(map[string]any, len(fields)+3)
	for k, v := range fields {
		data[k] = v
	}
	data["level"] = level
	data["msg"] = msg
	return data
}
