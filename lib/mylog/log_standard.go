package mylog

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MarcGrol/hoopstore/lib/mycontext"
)

func init() {
	if os.Getenv("GOOGLE_CLOUD_PROJECT") == "" {
		New = newStandardLogger
	}
}

type standardLogger struct {
	componentName string
	out           io.Writer
}

func newStandardLogger(componentName string) Logger {
	return newWriterLogger(os.Stderr, componentName)
}

func newWriterLogger(out io.Writer, componentName string) Logger {
	return standardLogger{
		componentName: componentName,
		out:           out,
	}
}

func (l standardLogger) Log(ctx context.Context, traceLabel string, severity Severity, format string, a ...any) {
	fields := []string{l.componentName, string(severity)}
	if requestUID := mycontext.RequestUID(ctx); requestUID != "" {
		fields = append(fields, "request="+requestUID)
	}
	if trace := mycontext.Trace(ctx); trace != "" {
		fields = append(fields, "trace="+trace)
	}
	if traceLabel != "" {
		fields = append(fields, "aggregate="+traceLabel)
	}

	fmt.Fprintf(l.out, "%s - %s\n", strings.Join(fields, " "), fmt.Sprintf(format, a...))
}
