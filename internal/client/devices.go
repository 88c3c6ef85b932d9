package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/device42-community/d42-client/pkg/device42"
)

// DevicesClient implements device42.DevicesClient.
type DevicesClient struct {
	client *Client
}

// NewDevicesClient creates a new devices client.
func NewDevicesClient(client *Client) *DevicesClient {
	return &DevicesClient{client: client}
}

// List implements device42.DevicesClient.List.
func (c *DevicesClient) List(ctx context.Context, filter *device42.DeviceFilter) *device42.RecordIterator {
	var query url.Values
	if filter != nil {
		query = filter.Values()
	}

	return c.client.list(ctx, resourcePath(defaultAPIVersion, "devices"), query)
}

// ListAll implements device42.DevicesClient.ListAll. The /devices/all listing
// carries more columns than the plain one; includeCols optionally restricts
// them.
func (c *DevicesClient) ListAll(ctx context.Context, includeCols string) *device42.RecordIterator {
	var query url.Values
	if includeCols != "" {
		query = url.Values{"include_cols": []string{includeCols}}
	}

	return c.client.list(ctx, "/api/1.0/devices/all", query)
}

// Get implements device42.DevicesClient.Get.
func (c *DevicesClient) Get(ctx context.Context, id int) (device42.Record, error) {
	return c.client.getObject(ctx, defaultAPIVersion, "devices", id)
}

// ListByRef implements device42.DevicesClient.ListByRef.
func (c *DevicesClient) ListByRef(ctx context.Context, refType device42.DeviceRefType, id int) *device42.RecordIterator {
	path := fmt.Sprintf("/api/1.0/devices/%s/%d", refType, id)

	return c.client.list(ctx, path, nil)
}
