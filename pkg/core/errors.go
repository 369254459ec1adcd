package core

import (
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
)

// Sentinel errors for common error conditions.
var (
	// ErrNoCredentials is returned when a signed endpoint is called on a
	// client constructed without API credentials.
	ErrNoCredentials = errors.New("no credentials configured")
	// ErrNotConnected is returned when writing to a websocket that has no
	// active connection.
	ErrNotConnected = errors.New("websocket not connected")
)

// APIError represents a non-2xx response from the exchange. The raw body is
// always preserved; Code and Message are filled in on a best-effort basis when
// the body is the exchange's JSON error shape. Transport-level faults (DNS,
// connection refused, timeout) are never APIErrors — they propagate as wrapped
// errors from the HTTP client.
type APIError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int `json:"status_code"`
	// Code is the exchange-specific error code, when present.
	Code string `json:"code,omitempty"`
	// Message is the human-readable error description, when present.
	Message string `json:"message,omitempty"`
	// Body is the raw response body.
	Body []byte `json:"-"`
}

// Error implements the error interface for APIError.
func (e *APIError) Error() string {
	if e.Message != "" {
		if e.Code != "" {
			return fmt.Sprintf("exchange: %d (%s): %s", e.StatusCode, e.Code, e.Message)
		}
		return fmt.Sprintf("exchange: %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("exchange: %d: %s", e.StatusCode, string(e.Body))
}

// NewAPIError builds an APIError from a response status and body, decoding
// the exchange's error fields when the body allows it.
func NewAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Body:       body,
	}

	var decoded struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := sonic.Unmarshal(body, &decoded); err == nil {
		apiErr.Code = decoded.Code
		apiErr.Message = decoded.Message
		if apiErr.Message == "" {
			apiErr.Message = decoded.Error
		}
	}

	return apiErr
}

// AsAPIError extracts an APIError from the error chain.
// It returns nil and false when the error is a transport-level fault.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsStatus returns true if the error is an APIError with the given HTTP status.
func IsStatus(err error, statusCode int) bool {
	if apiErr, ok := AsAPIError(err); ok {
		return apiErr.StatusCode == statusCode
	}
	return false
}
