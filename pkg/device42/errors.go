package device42

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Message prefixes the Device42 backend uses on HTTP 500 responses when a
// request fails for licensing reasons.
const (
	licenseExpiredPrefix      = "License expired"
	licenseInsufficientPrefix = "License is not valid for"
)

// APIError represents an unclassified non-2xx response from the API.
type APIError struct {
	StatusCode int    `json:"status_code" yaml:"status_code"`
	Body       string `json:"body"        yaml:"body"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// LicenseExpiredError is returned for HTTP 500 responses whose message
// indicates the Device42 license has expired. Callers can special-case it to
// trigger renewal flows.
type LicenseExpiredError struct {
	Message string `json:"message" yaml:"message"`
}

// Error implements the error interface.
func (e *LicenseExpiredError) Error() string {
	return e.Message
}

// LicenseInsufficientError is returned for HTTP 500 responses whose message
// indicates the license does not cover the requested feature.
type LicenseInsufficientError struct {
	Message string `json:"message" yaml:"message"`
}

// Error implements the error interface.
func (e *LicenseInsufficientError) Error() string {
	return e.Message
}

// ReturnCodeError represents a 2xx mutation response whose envelope carries a
// non-zero return code. The message is the server-supplied msg field, joined
// with single spaces when it is a list.
type ReturnCodeError struct {
	Code    int    `json:"code"    yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// Error implements the error interface.
func (e *ReturnCodeError) Error() string {
	return fmt.Sprintf("return code %d: %s", e.Code, e.Message)
}

// Static errors for err113 compliance.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrAPIEndpointRequired = errors.New("API endpoint is required")
	ErrNoMoreItems         = errors.New("no more items")
	ErrNoMorePages         = errors.New("no more pages")

	// Malformed-envelope errors. These signal a contract violation by the
	// remote service, not a caller mistake.
	ErrNoPayloadKey        = errors.New("list envelope has no payload key")
	ErrAmbiguousPayloadKey = errors.New("list envelope has multiple payload keys")
	ErrBadTotalCount       = errors.New("list envelope total_count is not an integer")
	ErrBadPayload          = errors.New("list envelope payload is not a record array")
	ErrMissingReturnCode   = errors.New("mutation envelope has no code field")
	ErrBadReturnCode       = errors.New("mutation envelope code is not an integer")
	ErrShortPage           = errors.New("server returned an empty page before total_count was reached")
)

// ClassifyStatusError converts a non-2xx response into the matching error
// kind. HTTP 500 bodies are sniffed for the two license message prefixes;
// bodies that are not JSON, or whose message matches neither prefix, fall
// through to a generic APIError.
func ClassifyStatusError(statusCode int, body []byte) error {
	if statusCode == 500 {
		msg := errorMessage(body)
		if strings.HasPrefix(msg, licenseExpiredPrefix) {
			return &LicenseExpiredError{Message: msg}
		}

		if strings.HasPrefix(msg, licenseInsufficientPrefix) {
			return &LicenseInsufficientError{Message: msg}
		}
	}

	return &APIError{StatusCode: statusCode, Body: string(body)}
}

// errorMessage extracts the msg field from an error response body. Bodies that
// are not JSON objects yield an empty string.
func errorMessage(body []byte) string {
	var envelope struct {
		Msg string `json:"msg"`
	}

	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}

	return envelope.Msg
}

// IsLicenseExpired checks if the error is a license-expired error.
func IsLicenseExpired(err error) bool {
	licErr := &LicenseExpiredError{}

	return errors.As(err, &licErr)
}

// IsLicenseInsufficient checks if the error is a license-insufficient error.
func IsLicenseInsufficient(err error) bool {
	licErr := &LicenseInsufficientError{}

	return errors.As(err, &licErr)
}

// IsReturnCode checks if the error is a rejected-mutation error.
func IsReturnCode(err error) bool {
	rcErr := &ReturnCodeError{}

	return errors.As(err, &rcErr)
}

// IsMalformedEnvelope checks if the error signals a response envelope that
// violates the listing or mutation contract.
func IsMalformedEnvelope(err error) bool {
	return errors.Is(err, ErrNoPayloadKey) ||
		errors.Is(err, ErrAmbiguousPayloadKey) ||
		errors.Is(err, ErrBadTotalCount) ||
		errors.Is(err, ErrBadPayload) ||
		errors.Is(err, ErrMissingReturnCode) ||
		errors.Is(err, ErrBadReturnCode) ||
		errors.Is(err, ErrShortPage)
}
