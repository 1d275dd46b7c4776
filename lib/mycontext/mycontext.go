package mycontext

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/MarcGrol/hoopstore/lib/myuuid"
)

// CtxTraceContext is a context key for the trace context this (used by mylog)
type CtxTraceContext struct{}

// CtxRequestUID is a context key for the uid that correlates all log lines of one request
type CtxRequestUID struct{}

var uuider myuuid.UUIDer = myuuid.RealUUIDer{}

// ContextFromHTTPRequest derives from the request context, so outbound calls stop when the client goes away.
func ContextFromHTTPRequest(r *http.Request) context.Context {
	var trace string

	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
	traceContext := r.Header.Get("X-Cloud-Trace-Context")
	traceParts := strings.Split(traceContext, "/")

	requestUID := ""
	if len(traceParts) > 0 && len(traceParts[0]) > 0 {
		trace = fmt.Sprintf("projects/%s/traces/%s", projectID, traceParts[0])
		requestUID = traceParts[0]
	}
	if requestUID == "" {
		requestUID = uuider.Create()
	}

	ctx := context.WithValue(r.Context(), CtxTraceContext{}, trace)
	ctx = context.WithValue(ctx, CtxRequestUID{}, requestUID)

	return ctx
}

func Trace(c context.Context) string {
	trace, _ := c.Value(CtxTraceContext{}).(string)
	return trace
}

func RequestUID(c context.Context) string {
	uid, _ := c.Value(CtxRequestUID{}).(string)
	return uid
}
