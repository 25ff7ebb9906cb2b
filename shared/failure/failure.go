package failure

import (
	"errors"
	"net/http"

	"github.com/lib/pq"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	err     error
}

// Error returns the error message.
func (e *Failure) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause, if any.
func (e *Failure) Unwrap() error {
	return e.err
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
			err:     err,
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
			err:     err,
		}
	}

	return nil
}

// Database returns an internal error whose message is the one reported by PostgreSQL,
// falling back to the error text for anything that did not come from the server.
func Database(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: pqErr.Message,
			err:     err,
		}
	}

	return InternalError(err)
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(message string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: message,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// PqCode returns the SQLSTATE of a PostgreSQL error, or an empty string.
func PqCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}

	return ""
}
