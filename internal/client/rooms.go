package client

import (
	"context"
	"net/url"

	"github.com/device42-community/d42-client/pkg/device42"
)

// RoomsClient implements device42.RoomsClient.
type RoomsClient struct {
	client *Client
}

// NewRoomsClient creates a new rooms client.
func NewRoomsClient(client *Client) *RoomsClient {
	return &RoomsClient{client: client}
}

// List implements device42.RoomsClient.List.
func (c *RoomsClient) List(ctx context.Context, filter *device42.RoomFilter) *device42.RecordIterator {
	var query url.Values
	if filter != nil {
		query = filter.Values()
	}

	return c.client.list(ctx, resourcePath(defaultAPIVersion, "rooms"), query)
}

// Get implements device42.RoomsClient.Get.
func (c *RoomsClient) Get(ctx context.Context, id int) (device42.Record, error) {
	return c.client.getObject(ctx, defaultAPIVersion, "rooms", id)
}

// Create implements device42.RoomsClient.Create.
func (c *RoomsClient) Create(ctx context.Context, room *device42.Room) (*device42.MutationResult, error) {
	return c.client.postObject(ctx, defaultAPIVersion, "rooms", room.Values())
}

// Delete implements device42.RoomsClient.Delete.
func (c *RoomsClient) Delete(ctx context.Context, id int) (*device42.DeleteResult, error) {
	return c.client.deleteObject(ctx, defaultAPIVersion, "rooms", id)
}
