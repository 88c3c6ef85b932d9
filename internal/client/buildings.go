package client

import (
	"context"
	"net/url"

	"github.com/device42-community/d42-client/pkg/device42"
)

// BuildingsClient implements device42.BuildingsClient.
type BuildingsClient struct {
	client *Client
}

// NewBuildingsClient creates a new buildings client.
func NewBuildingsClient(client *Client) *BuildingsClient {
	return &BuildingsClient{client: client}
}

// List implements device42.BuildingsClient.List.
func (c *BuildingsClient) List(ctx context.Context, filter *device42.BuildingFilter) *device42.RecordIterator {
	var query url.Values
	if filter != nil {
		query = filter.Values()
	}

	return c.client.list(ctx, resourcePath(defaultAPIVersion, "buildings"), query)
}

// Create implements device42.BuildingsClient.Create.
func (c *BuildingsClient) Create(ctx context.Context, building *device42.Building) (*device42.MutationResult, error) {
	return c.client.postObject(ctx, defaultAPIVersion, "buildings", building.Values())
}

// Delete implements device42.BuildingsClient.Delete.
func (c *BuildingsClient) Delete(ctx context.Context, id int) (*device42.DeleteResult, error) {
	return c.client.deleteObject(ctx, defaultAPIVersion, "buildings", id)
}
