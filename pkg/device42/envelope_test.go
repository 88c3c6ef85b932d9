package device42_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/device42-community/d42-client/pkg/device42"
)

func TestParseListEnvelope(t *testing.T) {
	t.Parallel()

	body := []byte(`{
		"offset": 0,
		"limit": 50,
		"total_count": 2,
		"buildings": [
			{"building_id": 1, "name": "HQ"},
			{"building_id": 2, "name": "DC-East"}
		]
	}`)

	envelope, err := device42.ParseListEnvelope(body)
	require.NoError(t, err)

	assert.Equal(t, "buildings", envelope.PayloadKey)
	assert.Equal(t, 2, envelope.TotalCount)
	assert.Equal(t, 0, envelope.Offset)
	assert.Equal(t, 50, envelope.Limit)
	require.Len(t, envelope.Records, 2)
	assert.Equal(t, "HQ", envelope.Records[0]["name"])
	assert.Equal(t, "DC-East", envelope.Records[1]["name"])
}

func TestParseListEnvelope_ArbitraryPayloadKey(t *testing.T) {
	t.Parallel()

	// The payload key is whatever the endpoint names its collection. Nothing
	// may be assumed about it beyond "not metadata".
	body := []byte(`{"total_count": 1, "offset": 0, "limit": 50, "widgets_v2": [{"id": 7}]}`)

	envelope, err := device42.ParseListEnvelope(body)
	require.NoError(t, err)
	assert.Equal(t, "widgets_v2", envelope.PayloadKey)
	require.Len(t, envelope.Records, 1)
	assert.Equal(t, float64(7), envelope.Records[0]["id"])
}

func TestParseListEnvelope_NoPayloadKey(t *testing.T) {
	t.Parallel()

	body := []byte(`{"offset": 0, "limit": 50, "total_count": 0}`)

	_, err := device42.ParseListEnvelope(body)
	require.ErrorIs(t, err, device42.ErrNoPayloadKey)
	assert.True(t, device42.IsMalformedEnvelope(err))
}

func TestParseListEnvelope_AmbiguousPayloadKey(t *testing.T) {
	t.Parallel()

	body := []byte(`{"total_count": 0, "rooms": [], "racks": []}`)

	_, err := device42.ParseListEnvelope(body)
	require.ErrorIs(t, err, device42.ErrAmbiguousPayloadKey)
	assert.True(t, device42.IsMalformedEnvelope(err))
}

func TestParseListEnvelope_TotalCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		want    int
		wantErr bool
	}{
		{
			name: "integer",
			body: `{"total_count": 120, "devices": []}`,
			want: 120,
		},
		{
			name: "numeric string",
			body: `{"total_count": "120", "devices": []}`,
			want: 120,
		},
		{
			name: "float",
			body: `{"total_count": 120.0, "devices": []}`,
			want: 120,
		},
		{
			name:    "missing",
			body:    `{"devices": []}`,
			wantErr: true,
		},
		{
			name:    "non-numeric string",
			body:    `{"total_count": "many", "devices": []}`,
			wantErr: true,
		},
		{
			name:    "object",
			body:    `{"total_count": {}, "devices": []}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			envelope, err := device42.ParseListEnvelope([]byte(tt.body))
			if tt.wantErr {
				require.ErrorIs(t, err, device42.ErrBadTotalCount)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, envelope.TotalCount)
		})
	}
}

func TestParseListEnvelope_BadPayload(t *testing.T) {
	t.Parallel()

	body := []byte(`{"total_count": 1, "devices": {"not": "an array"}}`)

	_, err := device42.ParseListEnvelope(body)
	require.ErrorIs(t, err, device42.ErrBadPayload)
}

func TestParseListEnvelope_NotJSON(t *testing.T) {
	t.Parallel()

	_, err := device42.ParseListEnvelope([]byte(`<html>Bad Gateway</html>`))
	require.Error(t, err)
}

func TestParseMutationResult_Tuple(t *testing.T) {
	t.Parallel()

	body := []byte(`{"code": 0, "msg": ["device added or updated", 1764, "db-prod-01", true, false]}`)

	result, err := device42.ParseMutationResult(body)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Code)
	assert.Equal(t, "device added or updated", result.Message)
	assert.Equal(t, int64(1764), result.ID)
	assert.Equal(t, "db-prod-01", result.Identifier)
	require.NotNil(t, result.Created)
	assert.True(t, *result.Created)
	require.NotNil(t, result.Updated)
	assert.False(t, *result.Updated)
}

func TestParseMutationResult_ShortTuple(t *testing.T) {
	t.Parallel()

	body := []byte(`{"code": 0, "msg": ["customer added", 9]}`)

	result, err := device42.ParseMutationResult(body)
	require.NoError(t, err)

	assert.Equal(t, "customer added", result.Message)
	assert.Equal(t, int64(9), result.ID)
	assert.Nil(t, result.Identifier)
	assert.Nil(t, result.Created)
	assert.Nil(t, result.Updated)
}

func TestParseMutationResult_StringMsg(t *testing.T) {
	t.Parallel()

	body := []byte(`{"code": 0, "msg": "custom key value pair saved"}`)

	result, err := device42.ParseMutationResult(body)
	require.NoError(t, err)

	assert.Equal(t, "custom key value pair saved", result.Message)
	assert.Zero(t, result.ID)
}

func TestParseMutationResult_NonZeroCode(t *testing.T) {
	t.Parallel()

	body := []byte(`{"code": 3, "msg": ["Required parameter", "name", "not present"]}`)

	_, err := device42.ParseMutationResult(body)
	require.Error(t, err)

	rcErr := &device42.ReturnCodeError{}
	require.ErrorAs(t, err, &rcErr)
	assert.Equal(t, 3, rcErr.Code)
	assert.Equal(t, "Required parameter name not present", rcErr.Message)
	assert.True(t, device42.IsReturnCode(err))
}

func TestParseMutationResult_NonZeroCodeStringMsg(t *testing.T) {
	t.Parallel()

	// A plain-string msg must pass through verbatim, not be joined
	// character by character.
	body := []byte(`{"code": 1, "msg": "object not found"}`)

	_, err := device42.ParseMutationResult(body)

	rcErr := &device42.ReturnCodeError{}
	require.ErrorAs(t, err, &rcErr)
	assert.Equal(t, "object not found", rcErr.Message)
}

func TestParseMutationResult_MissingCode(t *testing.T) {
	t.Parallel()

	_, err := device42.ParseMutationResult([]byte(`{"msg": "ok"}`))
	require.ErrorIs(t, err, device42.ErrMissingReturnCode)
	assert.True(t, device42.IsMalformedEnvelope(err))
}

func TestParseMutationResult_BadCode(t *testing.T) {
	t.Parallel()

	_, err := device42.ParseMutationResult([]byte(`{"code": "zero", "msg": "ok"}`))
	require.ErrorIs(t, err, device42.ErrBadReturnCode)
}

func TestParseMutationResult_NotJSON(t *testing.T) {
	t.Parallel()

	_, err := device42.ParseMutationResult([]byte(`not json`))
	require.Error(t, err)
	assert.False(t, errors.Is(err, device42.ErrMissingReturnCode))
}
