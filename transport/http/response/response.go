package response

import (
	"net/http"

	"tzbot/shared/constant"
	"tzbot/shared/failure"
	"tzbot/shared/logger"
)

// WithText sends a plain-text body.
func WithText(writer http.ResponseWriter, code int, message string) {
	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeText)
	writer.WriteHeader(code)

	if _, err := writer.Write([]byte(message)); err != nil {
		logger.ErrorWithStack(err)
	}
}

// WithError sends the status carried by err. Anything that is not a Failure
// is an unrecovered fault and is answered with a generic message.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	msg := err.Error()
	if code == http.StatusInternalServerError {
		msg = http.StatusText(code)
	}

	WithText(writer, code, msg)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithText(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithText(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}
