package client

import (
	"context"
	"net/url"

	"github.com/device42-community/d42-client/pkg/device42"
)

// RacksClient implements device42.RacksClient.
type RacksClient struct {
	client *Client
}

// NewRacksClient creates a new racks client.
func NewRacksClient(client *Client) *RacksClient {
	return &RacksClient{client: client}
}

// List implements device42.RacksClient.List.
func (c *RacksClient) List(ctx context.Context, filter *device42.RackFilter) *device42.RecordIterator {
	var query url.Values
	if filter != nil {
		query = filter.Values()
	}

	return c.client.list(ctx, resourcePath(defaultAPIVersion, "racks"), query)
}

// Get implements device42.RacksClient.Get.
func (c *RacksClient) Get(ctx context.Context, id int) (device42.Record, error) {
	return c.client.getObject(ctx, defaultAPIVersion, "racks", id)
}

// Create implements device42.RacksClient.Create.
func (c *RacksClient) Create(ctx context.Context, rack *device42.Rack) (*device42.MutationResult, error) {
	return c.client.postObject(ctx, defaultAPIVersion, "racks", rack.Values())
}

// Delete implements device42.RacksClient.Delete.
func (c *RacksClient) Delete(ctx context.Context, id int) (*device42.DeleteResult, error) {
	return c.client.deleteObject(ctx, defaultAPIVersion, "racks", id)
}
