package d42client_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/device42-community/d42-client/pkg/d42client"
	"github.com/device42-community/d42-client/pkg/device42"
)

func TestNew_NilConfig(t *testing.T) {
	t.Parallel()

	_, err := d42client.New(nil)
	require.ErrorIs(t, err, device42.ErrConfigRequired)
}

func TestNew_MissingEndpoint(t *testing.T) {
	t.Parallel()

	_, err := d42client.New(&device42.Config{Username: "admin"})
	require.ErrorIs(t, err, device42.ErrAPIEndpointRequired)
}

func TestNew_NormalizesEndpoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		endpoint string
		want     string
	}{
		{
			name:     "bare host gets https",
			endpoint: "d42.example.com",
			want:     "https://d42.example.com",
		},
		{
			name:     "trailing slash trimmed",
			endpoint: "https://d42.example.com/",
			want:     "https://d42.example.com",
		},
		{
			name:     "http preserved",
			endpoint: "http://10.0.0.5",
			want:     "http://10.0.0.5",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			config := &device42.Config{APIEndpoint: tt.endpoint}

			_, err := d42client.New(config)
			require.NoError(t, err)
			assert.Equal(t, tt.want, config.APIEndpoint)
		})
	}
}

func TestNew_ClientIsUsable(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, `{
			"offset": 0, "limit": 50, "total_count": 1,
			"customers": [{"name": "Acme"}]
		}`)
	}))
	defer server.Close()

	client, err := d42client.New(&device42.Config{
		APIEndpoint: server.URL,
		Username:    "admin",
		Password:    "s3cret",
	})
	require.NoError(t, err)

	// The facade must expose every resource family.
	assert.NotNil(t, client.Buildings())
	assert.NotNil(t, client.Rooms())
	assert.NotNil(t, client.Racks())
	assert.NotNil(t, client.Devices())
	assert.NotNil(t, client.Subnets())
	assert.NotNil(t, client.IPs())
	assert.NotNil(t, client.Customers())
	assert.NotNil(t, client.AppComponents())
	assert.NotNil(t, client.ServiceInstances())
	assert.NotNil(t, client.OperatingSystems())
	assert.NotNil(t, client.CustomFields())
	assert.NotNil(t, client.Queries())

	record, err := client.OperatingSystems().List(context.Background()).Next()
	require.NoError(t, err)
	assert.Equal(t, "Acme", record["name"])
}
