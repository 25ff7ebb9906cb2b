package response

import (
	"encoding/json"
	"net/http"
	"usertodo/shared/constant"
	"usertodo/shared/failure"
	"usertodo/shared/logger"
)

// Body is the envelope of every successful response. Data is always present, null included.
type Body struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

type Error struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type NotFound struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Path    string `json:"path"`
}

// WithData sends a successful envelope
func WithData(writer http.ResponseWriter, code int, message string, data any) {
	response(writer, code, Body{Success: true, Message: message, Data: data})
}

// WithMessage sends an unsuccessful envelope with a fixed message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Error{Success: false, Message: message})
}

// WithError sends an unsuccessful envelope carrying the error message and its code
func WithError(writer http.ResponseWriter, err error) {
	WithMessage(writer, failure.GetCode(err), err.Error())
}

// WithRouteNotFound sends the fallback envelope echoing the requested path
func WithRouteNotFound(writer http.ResponseWriter, path string) {
	response(writer, http.StatusNotFound, NotFound{
		Success: false,
		Message: constant.ResponseMessageRouteNotFound,
		Path:    path,
	})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func response(writer http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
