package client

import (
	"context"

	"github.com/device42-community/d42-client/pkg/device42"
)

// IPAddressesClient implements device42.IPAddressesClient.
type IPAddressesClient struct {
	client *Client
}

// NewIPAddressesClient creates a new IP addresses client.
func NewIPAddressesClient(client *Client) *IPAddressesClient {
	return &IPAddressesClient{client: client}
}

// Create implements device42.IPAddressesClient.Create.
func (c *IPAddressesClient) Create(ctx context.Context, ip *device42.IPAddress) (*device42.MutationResult, error) {
	return c.client.postObject(ctx, defaultAPIVersion, "ips", ip.Values())
}
