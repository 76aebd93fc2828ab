package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToHTTP_ValidationError(t *testing.T) {
	err := NewValidationFailedError("message", "Message must be at least 10 characters")

	status, body := ToHTTP(err, false)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, body.Success)
	assert.Equal(t, "Message must be at least 10 characters", body.Message)
	assert.Empty(t, body.Error)
}

func TestToHTTP_DetailOnlyOutsideProduction(t *testing.T) {
	err := NewGateUpstreamError("captcha", fmt.Errorf("connection refused"))

	_, prodBody := ToHTTP(err, false)
	assert.Empty(t, prodBody.Error)

	_, devBody := ToHTTP(err, true)
	assert.Contains(t, devBody.Error, "connection refused")
}

func TestToHTTP_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"parse", NewParseError(fmt.Errorf("bad json")), http.StatusBadRequest},
		{"captcha missing", NewCaptchaMissingError(), http.StatusBadRequest},
		{"otp rejected", NewOTPRejectedError(""), http.StatusBadRequest},
		{"method", NewMethodNotAllowedError("GET"), http.StatusMethodNotAllowed},
		{"not found", NewNotFoundError("Vehicle"), http.StatusNotFound},
		{"throttled", NewTooManyAttemptsError(""), http.StatusTooManyRequests},
		{"store", NewStoreWriteFailedError(fmt.Errorf("down")), http.StatusInternalServerError},
		{"plain error", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := ToHTTP(tt.err, false)
			assert.Equal(t, tt.status, status)
			assert.False(t, body.Success)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestStandardError_Field(t *testing.T) {
	err := NewValidationFailedError("phoneNumber", "Phone number must be 10 digits")
	assert.Equal(t, "phoneNumber", err.Field())

	assert.Empty(t, NewParseError(fmt.Errorf("x")).Field())
}
