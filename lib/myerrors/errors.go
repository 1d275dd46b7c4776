package myerrors

import (
	"errors"
	"fmt"
	"net/http"
)

type httpErrorCoder interface {
	error
	GetHTTPErrorCode() int
}

type detailer interface {
	GetDetails() map[string]string
}

type httpError struct {
	httpCode int
	err      error
	details  map[string]string
}

func (e httpError) Error() string {
	return fmt.Sprintf("status: %d, err: %s", e.httpCode, e.err.Error())
}

func (e httpError) Unwrap() error {
	return e.err
}

func (e httpError) GetHTTPErrorCode() int {
	return e.httpCode
}

// GetMessage returns the error text without the status prefix.
func (e httpError) GetMessage() string {
	return e.err.Error()
}

func (e httpError) GetDetails() map[string]string {
	return e.details
}

// WithDetail attaches a diagnostic key/value that is returned to the caller.
func (e *httpError) WithDetail(key string, value string) *httpError {
	if e.details == nil {
		e.details = map[string]string{}
	}
	e.details[key] = value
	return e
}

func newError(httpCode int, err error) *httpError {
	return &httpError{
		httpCode: httpCode,
		err:      err,
	}
}

func NewInvalidInputError(err error) *httpError {
	return newError(http.StatusBadRequest, err)
}

func NewInvalidInputErrorf(format string, args ...interface{}) *httpError {
	return NewInvalidInputError(fmt.Errorf(format, args...))
}

func NewUnsupportedMediaTypeError(err error) *httpError {
	return newError(http.StatusUnsupportedMediaType, err)
}

func NewNotFoundError(err error) *httpError {
	return newError(http.StatusNotFound, err)
}

func NewAuthenticationError(err error) *httpError {
	return newError(http.StatusForbidden, err)
}

// NewPaymentNotCompletedError reports a checkout that did not reach its success state.
// The observed status is returned to the caller under the given field name.
func NewPaymentNotCompletedError(field string, status string) *httpError {
	return newError(http.StatusBadRequest, fmt.Errorf("payment not completed (%s: %s)", field, status)).
		WithDetail(field, status)
}

// NewMissingReferenceError reports a successful checkout that lacks the expected reference.
func NewMissingReferenceError(err error) *httpError {
	return newError(http.StatusNotFound, err)
}

// NewProviderError wraps a failure of an external provider such as the payment platform.
func NewProviderError(err error) *httpError {
	return newError(http.StatusInternalServerError, err)
}

func NewDatabaseError(err error) *httpError {
	return newError(http.StatusInternalServerError, err)
}

func NewInternalError(err error) *httpError {
	return newError(http.StatusInternalServerError, err)
}

func NewNotImplementedError(err error) *httpError {
	return newError(http.StatusNotImplemented, err)
}

func NewUnavailableError(err error) *httpError {
	return newError(http.StatusServiceUnavailable, err)
}

func GetHTTPStatus(err error) int {
	if err != nil {
		var myError httpErrorCoder
		if errors.As(err, &myError) {
			return myError.GetHTTPErrorCode()
		}
	}
	return http.StatusInternalServerError
}

// GetMessage returns the caller-facing text of err.
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	var myError *httpError
	if errors.As(err, &myError) {
		return myError.GetMessage()
	}
	return err.Error()
}

// GetDetails returns the diagnostic details attached to err, if any.
func GetDetails(err error) map[string]string {
	var d detailer
	if errors.As(err, &d) {
		return d.GetDetails()
	}
	return nil
}
