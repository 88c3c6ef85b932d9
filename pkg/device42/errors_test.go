package device42_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/device42-community/d42-client/pkg/device42"
)

func TestClassifyStatusError_LicenseExpired(t *testing.T) {
	t.Parallel()

	body := []byte(`{"msg": "License expired on 2026-01-31, please renew"}`)

	err := device42.ClassifyStatusError(500, body)
	require.Error(t, err)

	licErr := &device42.LicenseExpiredError{}
	require.ErrorAs(t, err, &licErr)
	assert.Contains(t, licErr.Message, "License expired")
	assert.True(t, device42.IsLicenseExpired(err))
	assert.False(t, device42.IsLicenseInsufficient(err))
}

func TestClassifyStatusError_LicenseInsufficient(t *testing.T) {
	t.Parallel()

	body := []byte(`{"msg": "License is not valid for ipam features"}`)

	err := device42.ClassifyStatusError(500, body)

	licErr := &device42.LicenseInsufficientError{}
	require.ErrorAs(t, err, &licErr)
	assert.True(t, device42.IsLicenseInsufficient(err))
	assert.False(t, device42.IsLicenseExpired(err))
}

func TestClassifyStatusError_PlainServerError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "unrelated message", body: `{"msg": "internal error"}`},
		{name: "non-JSON body", body: `<html>Internal Server Error</html>`},
		{name: "empty body", body: ``},
		{name: "prefix not at start", body: `{"msg": "error: License expired"}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := device42.ClassifyStatusError(500, []byte(tt.body))

			apiErr := &device42.APIError{}
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, 500, apiErr.StatusCode)
			assert.False(t, device42.IsLicenseExpired(err))
			assert.False(t, device42.IsLicenseInsufficient(err))
		})
	}
}

func TestClassifyStatusError_NonServerStatus(t *testing.T) {
	t.Parallel()

	// License sniffing only applies to 500s; a 403 carrying a license-like
	// body stays a generic API error.
	err := device42.ClassifyStatusError(403, []byte(`{"msg": "License expired"}`))

	apiErr := &device42.APIError{}
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 403, apiErr.StatusCode)
}

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	err := &device42.APIError{StatusCode: 404, Body: "not found"}
	assert.Equal(t, "unexpected status 404: not found", err.Error())
}

func TestReturnCodeError_Error(t *testing.T) {
	t.Parallel()

	err := &device42.ReturnCodeError{Code: 2, Message: "device name missing"}
	assert.Equal(t, "return code 2: device name missing", err.Error())
	assert.True(t, device42.IsReturnCode(err))
	assert.True(t, device42.IsReturnCode(fmt.Errorf("creating device: %w", err)))
}

func TestIsReturnCode_OtherErrors(t *testing.T) {
	t.Parallel()

	assert.False(t, device42.IsReturnCode(assert.AnError))
	assert.False(t, device42.IsReturnCode(nil))
}
