// Package d42client provides the main entry point for creating Device42 API clients
package d42client

import (
	"fmt"
	"strings"

	"github.com/device42-community/d42-client/internal/client"
	"github.com/device42-community/d42-client/pkg/device42"
)

// New creates a new Device42 API client from the given configuration.
func New(config *device42.Config) (device42.Client, error) {
	if config == nil {
		return nil, device42.ErrConfigRequired
	}

	if config.APIEndpoint == "" {
		return nil, device42.ErrAPIEndpointRequired
	}

	// Normalize API endpoint
	apiEndpoint := strings.TrimSuffix(config.APIEndpoint, "/")
	if !strings.HasPrefix(apiEndpoint, "http://") && !strings.HasPrefix(apiEndpoint, "https://") {
		apiEndpoint = "https://" + apiEndpoint
	}

	config.APIEndpoint = apiEndpoint

	// Use the internal client implementation
	d42, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return d42, nil
}
