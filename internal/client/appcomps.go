package client

import (
	"context"

	"github.com/device42-community/d42-client/pkg/device42"
)

// AppComponentsClient implements device42.AppComponentsClient.
type AppComponentsClient struct {
	client *Client
}

// NewAppComponentsClient creates a new application components client.
func NewAppComponentsClient(client *Client) *AppComponentsClient {
	return &AppComponentsClient{client: client}
}

// List implements device42.AppComponentsClient.List.
func (c *AppComponentsClient) List(ctx context.Context) *device42.RecordIterator {
	return c.client.list(ctx, resourcePath(defaultAPIVersion, "appcomps"), nil)
}

// Create implements device42.AppComponentsClient.Create.
func (c *AppComponentsClient) Create(ctx context.Context, component *device42.AppComponent) (*device42.MutationResult, error) {
	return c.client.postObject(ctx, defaultAPIVersion, "appcomps", component.Values())
}
