package device42_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/device42-community/d42-client/pkg/device42"
)

func TestDeleteResult_Unmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		body        string
		wantDeleted bool
		wantID      int
	}{
		{
			name:        "boolean deleted",
			body:        `{"deleted": true, "id": 7}`,
			wantDeleted: true,
			wantID:      7,
		},
		{
			name:        "string deleted",
			body:        `{"deleted": "true", "id": 7}`,
			wantDeleted: true,
			wantID:      7,
		},
		{
			name:        "string id",
			body:        `{"deleted": "false", "id": "7"}`,
			wantDeleted: false,
			wantID:      7,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var result device42.DeleteResult
			require.NoError(t, json.Unmarshal([]byte(tt.body), &result))
			assert.Equal(t, tt.wantDeleted, result.Deleted)
			assert.Equal(t, tt.wantID, result.ID)
		})
	}
}
