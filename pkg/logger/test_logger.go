package logger

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// Entry is one log call captured by TestLogger
type Entry struct {
	Level   zerolog.Level
	Message string
	Fields  map[string]interface{}
	Err     error
}

type recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// TestLogger records log calls in memory. Loggers derived with WithField,
// WithFields or WithError share the same recorder.
type TestLogger struct {
	rec    *recorder
	fields map[string]interface{}
	err    error
}

// NewTestLogger creates an empty test logger
func NewTestLogger() *TestLogger {
	return &TestLogger{rec: &recorder{}}
}

func (l *TestLogger) Debug(msg string) { l.record(zerolog.DebugLevel, msg, nil) }
func (l *TestLogger) Info(msg string)  { l.record(zerolog.InfoLevel, msg, nil) }
func (l *TestLogger) Warn(msg string)  { l.record(zerolog.WarnLevel, msg, nil) }
func (l *TestLogger) Error(msg string) { l.record(zerolog.ErrorLevel, msg, nil) }

func (l *TestLogger) DebugWithFields(msg string, fields map[string]interface{}) {
	l.record(zerolog.DebugLevel, msg, fields)
}

func (l *TestLogger) InfoWithFields(msg string, fields map[string]interface{}) {
	l.record(zerolog.InfoLevel, msg, fields)
}

func (l *TestLogger) WarnWithFields(msg string, fields map[string]interface{}) {
	l.record(zerolog.WarnLevel, msg, fields)
}

func (l *TestLogger) ErrorWithFields(msg string, fields map[string]interface{}) {
	l.record(zerolog.ErrorLevel, msg, fields)
}

func (l *TestLogger) WithField(key string, value interface{}) Logger {
	return l.derive(map[string]interface{}{key: value}, l.err)
}

func (l *TestLogger) WithFields(fields map[string]interface{}) Logger {
	return l.derive(fields, l.err)
}

func (l *TestLogger) WithError(err error) Logger {
	return l.derive(nil, err)
}

func (l *TestLogger) WithContext(ctx context.Context) Logger {
	return l
}

func (l *TestLogger) GetZerolog() *zerolog.Logger {
	nop := zerolog.Nop()
	return &nop
}

func (l *TestLogger) derive(fields map[string]interface{}, err error) *TestLogger {
	return &TestLogger{rec: l.rec, fields: merge(l.fields, fields), err: err}
}

func (l *TestLogger) record(level zerolog.Level, msg string, fields map[string]interface{}) {
	l.rec.mu.Lock()
	defer l.rec.mu.Unlock()

	l.rec.entries = append(l.rec.entries, Entry{
		Level:   level,
		Message: msg,
		Fields:  merge(l.fields, fields),
		Err:     l.err,
	})
}

func merge(base, extra map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

// ByLevel returns the captured entries at level, in call order
func (l *TestLogger) ByLevel(level zerolog.Level) []Entry {
	l.rec.mu.Lock()
	defer l.rec.mu.Unlock()

	var out []Entry
	for _, e := range l.rec.entries {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

// Find returns the first entry logged with msg
func (l *TestLogger) Find(msg string) (Entry, bool) {
	l.rec.mu.Lock()
	defer l.rec.mu.Unlock()

	for _, e := range l.rec.entries {
		if e.Message == msg {
			return e, true
		}
	}
	return Entry{}, false
}

// HasMessage reports whether msg was logged at any level
func (l *TestLogger) HasMessage(msg string) bool {
	_, ok := l.Find(msg)
	return ok
}

// HasError reports whether anything was logged at error level
func (l *TestLogger) HasError() bool {
	return len(l.ByLevel(zerolog.ErrorLevel)) > 0
}
