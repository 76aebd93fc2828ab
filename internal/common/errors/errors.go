// Package errors provides standardized error handling for the submission
// pipeline and its gate/notification integrations.
package errors

import (
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeParseError       ErrorCode = "PARSE_ERROR"
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeMethodNotAllowed ErrorCode = "METHOD_NOT_ALLOWED"
	ErrCodeNotFound         ErrorCode = "NOT_FOUND"

	ErrCodeCaptchaMissing  ErrorCode = "CAPTCHA_MISSING"
	ErrCodeCaptchaRejected ErrorCode = "CAPTCHA_REJECTED"
	ErrCodeOTPRejected     ErrorCode = "OTP_REJECTED"
	ErrCodeTooManyAttempts ErrorCode = "TOO_MANY_ATTEMPTS"
	ErrCodeGateUpstream    ErrorCode = "GATE_UPSTREAM_ERROR"

	ErrCodeTemplateNotFound       ErrorCode = "TEMPLATE_NOT_FOUND"
	ErrCodeNotificationSendFailed ErrorCode = "NOTIFICATION_SEND_FAILED"
	ErrCodeStoreWriteFailed       ErrorCode = "STORE_WRITE_FAILED"

	ErrCodeCMSQueryFailed ErrorCode = "CMS_QUERY_FAILED"
	ErrCodeChatUpstream   ErrorCode = "CHAT_UPSTREAM_ERROR"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// Field returns the offending field name for validation errors, if any.
func (e *StandardError) Field() string {
	if e.Metadata == nil {
		return ""
	}
	if f, ok := e.Metadata["field"].(string); ok {
		return f
	}
	return ""
}

// ==========================
// 2. Error Constructors
// ==========================

// NewParseError creates a non-retryable request body parse error.
func NewParseError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeParseError,
		Message:   "Invalid request body",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewValidationFailedError creates a non-retryable field validation error.
// The reason is the user-facing message for the offending field.
func NewValidationFailedError(field, reason string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   reason,
		Details:   fmt.Sprintf("field: %s", field),
		Retryable: false,
		Metadata:  map[string]interface{}{"field": field},
		Timestamp: time.Now().UTC(),
	}
}

// NewMethodNotAllowedError creates a non-retryable wrong-method error.
func NewMethodNotAllowedError(method string) *StandardError {
	return &StandardError{
		Code:      ErrCodeMethodNotAllowed,
		Message:   "Method not allowed",
		Details:   fmt.Sprintf("method: %s", method),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewCaptchaMissingError creates a non-retryable missing-token error. The
// verifier is never called for this case.
func NewCaptchaMissingError() *StandardError {
	return &StandardError{
		Code:      ErrCodeCaptchaMissing,
		Message:   "Captcha token is required",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewCaptchaRejectedError creates a retryable captcha rejection. The caller
// may obtain a fresh token and retry.
func NewCaptchaRejectedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeCaptchaRejected,
		Message:   "Captcha verification failed",
		Details:   details,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewOTPRejectedError creates a retryable invalid-or-expired OTP error.
func NewOTPRejectedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeOTPRejected,
		Message:   "Invalid or expired OTP",
		Details:   details,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewTooManyAttemptsError creates a non-retryable attempt-cap error.
func NewTooManyAttemptsError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeTooManyAttempts,
		Message:   "Too many attempts, try again later",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewGateUpstreamError creates a retryable error for verifier outages. The
// response stays generic; the caller may retry.
func NewGateUpstreamError(service string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeGateUpstream,
		Message:   "Verification is temporarily unavailable",
		Details:   fmt.Sprintf("service: %s, error: %s", service, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewTemplateNotFoundError creates a non-retryable template lookup error.
func NewTemplateNotFoundError(name string) *StandardError {
	return &StandardError{
		Code:      ErrCodeTemplateNotFound,
		Message:   "Notification template not found",
		Details:   fmt.Sprintf("template: %s", name),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotificationSendFailedError creates a retryable delivery error. Per the
// at-most-once policy it is logged, never surfaced and never acted on.
func NewNotificationSendFailedError(channel string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotificationSendFailed,
		Message:   "Notification delivery failed",
		Details:   fmt.Sprintf("channel: %s, error: %s", channel, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewStoreWriteFailedError creates a retryable submissions store error.
func NewStoreWriteFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeStoreWriteFailed,
		Message:   "Failed to persist submission",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewCMSQueryFailedError creates a retryable catalog query error.
func NewCMSQueryFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCMSQueryFailed,
		Message:   "Catalog is temporarily unavailable",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewChatUpstreamError creates a retryable chat assistant error.
func NewChatUpstreamError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeChatUpstream,
		Message:   "Assistant is temporarily unavailable",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotFoundError creates a non-retryable resource lookup error.
func NewNotFoundError(resource string) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotFound,
		Message:   fmt.Sprintf("%s not found", resource),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInternalError creates a generic non-retryable handler boundary error.
func NewInternalError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Internal server error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}
