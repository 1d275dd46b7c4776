package mylog

import (
	"context"
	"fmt"
	"sync"
)

// Entry is a single log line captured by a RecordingLogger.
type Entry struct {
	TraceLabel string
	Severity   Severity
	Message    string
}

// RecordingLogger keeps every entry in memory so tests can assert on what was logged.
type RecordingLogger struct {
	sync.Mutex
	Entries []Entry
}

func NewRecordingLogger() *RecordingLogger {
	return &RecordingLogger{}
}

func (l *RecordingLogger) Log(ctx context.Context, traceLabel string, severity Severity, format string, a ...any) {
	l.Lock()
	defer l.Unlock()

	l.Entries = append(l.Entries, Entry{
		TraceLabel: traceLabel,
		Severity:   severity,
		Message:    fmt.Sprintf(format, a...),
	})
}

// WithSeverity returns the entries logged at the given severity.
func (l *RecordingLogger) WithSeverity(severity Severity) []Entry {
	l.Lock()
	defer l.Unlock()

	result := []Entry{}
	for _, e := range l.Entries {
		if e.Severity == severity {
			result = append(result, e)
		}
	}
	return result
}
