package myhttp

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/MarcGrol/hoopstore/lib/myerrors"
	"github.com/MarcGrol/hoopstore/lib/mylog"
)

type ResponseWriter interface {
	WriteError(c context.Context, w http.ResponseWriter, errorCode int, err error)
	Write(c context.Context, w http.ResponseWriter, httpStatus int, resp interface{})
}

type errorResponse struct {
	Success   bool              `json:"success"`
	ErrorCode int               `json:"errorCode"`
	Message   string            `json:"error"`
	Details   map[string]string `json:"details,omitempty"`
}

type SuccessResponse struct {
	Message string
}

func NewWriter(logger mylog.Logger) ResponseWriter {
	return &responseWriter{
		logger: logger,
	}
}

type responseWriter struct {
	logger mylog.Logger
}

// WriteError never echoes the cause of a server-side failure: it is logged and replaced by the status text.
func (rw responseWriter) WriteError(c context.Context, w http.ResponseWriter, errorCode int, err error) {
	httpStatus := myerrors.GetHTTPStatus(err)

	message := myerrors.GetMessage(err)
	if httpStatus >= http.StatusInternalServerError {
		rw.logger.Log(c, "", mylog.SeverityError, "Error response: http-status:%d, error-code:%d, error-msg:%s", httpStatus, errorCode, err)
		message = http.StatusText(httpStatus)
	} else {
		rw.logger.Log(c, "", mylog.SeverityWarn, "Error response: http-status:%d, error-code:%d, error-msg:%s", httpStatus, errorCode, err)
	}

	rw.write(w, httpStatus, errorResponse{
		Success:   false,
		ErrorCode: errorCode,
		Message:   message,
		Details:   myerrors.GetDetails(err),
	})
}

func (rw responseWriter) Write(c context.Context, w http.ResponseWriter, httpStatus int, resp interface{}) {
	rw.logger.Log(c, "", mylog.SeverityInfo, "Success response: http-status:%d", httpStatus)
	rw.write(w, httpStatus, resp)
}

func (rw responseWriter) write(w http.ResponseWriter, httpStatus int, resp interface{}) {
	body, err := json.MarshalIndent(resp, "", "\t")
	if err != nil {
		log.Printf("Error marshalling response: %s", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	_, err = w.Write(append(body, '\n'))
	if err != nil {
		log.Printf("Error writing response: %s", err)
	}
}
