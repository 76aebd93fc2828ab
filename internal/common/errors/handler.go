// internal/common/errors/handler.go
package errors

import (
	stderrors "errors"
	"net/http"
)

// ErrorBody is the wire shape of every error response.
type ErrorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// HTTPStatus maps internal error codes to HTTP status codes.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeParseError,
		ErrCodeValidationFailed,
		ErrCodeCaptchaMissing,
		ErrCodeCaptchaRejected,
		ErrCodeOTPRejected:
		return http.StatusBadRequest

	case ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed

	case ErrCodeNotFound:
		return http.StatusNotFound

	case ErrCodeTooManyAttempts:
		return http.StatusTooManyRequests

	default:
		return http.StatusInternalServerError
	}
}

// ToHTTP converts any error into a status code and response body. Detail is
// included only when includeDetails is set (non-production builds).
func ToHTTP(err error, includeDetails bool) (int, ErrorBody) {
	var stdErr *StandardError
	if !stderrors.As(err, &stdErr) {
		body := ErrorBody{Success: false, Message: "Internal server error"}
		if includeDetails {
			body.Error = err.Error()
		}
		return http.StatusInternalServerError, body
	}

	body := ErrorBody{
		Success: false,
		Message: stdErr.Message,
	}
	if includeDetails && stdErr.Details != "" {
		body.Error = stdErr.Details
	}
	return HTTPStatus(stdErr.Code), body
}
