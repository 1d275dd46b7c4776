package mylog

import "context"

// Severity names follow the Cloud Logging severity field.
type Severity string

const (
	SeverityDebug Severity = "DEBUG"
	SeverityInfo  Severity = "INFO"
	SeverityWarn  Severity = "WARN"
	SeverityError Severity = "ERROR"
)

// New creates a logger for one component. The backend is picked in init():
// structured JSON on Cloud Run/App Engine, plain stderr lines elsewhere.
var New func(componentName string) Logger

// Logger writes one line per call. traceLabel groups the lines of one business object,
// for example a checkout session id; request uid and trace are read from ctx.
type Logger interface {
	Log(ctx context.Context, traceLabel string, severity Severity, format string, a ...any)
}
