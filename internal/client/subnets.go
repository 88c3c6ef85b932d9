package client

import (
	"context"

	"github.com/device42-community/d42-client/pkg/device42"
)

// SubnetsClient implements device42.SubnetsClient.
type SubnetsClient struct {
	client *Client
}

// NewSubnetsClient creates a new subnets client.
func NewSubnetsClient(client *Client) *SubnetsClient {
	return &SubnetsClient{client: client}
}

// Create implements device42.SubnetsClient.Create.
func (c *SubnetsClient) Create(ctx context.Context, subnet *device42.Subnet) (*device42.MutationResult, error) {
	return c.client.postObject(ctx, defaultAPIVersion, "subnets", subnet.Values())
}
