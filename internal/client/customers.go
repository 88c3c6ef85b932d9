package client

import (
	"context"

	"github.com/device42-community/d42-client/pkg/device42"
)

// CustomersClient implements device42.CustomersClient.
type CustomersClient struct {
	client *Client
}

// NewCustomersClient creates a new customers client.
func NewCustomersClient(client *Client) *CustomersClient {
	return &CustomersClient{client: client}
}

// Create implements device42.CustomersClient.Create.
func (c *CustomersClient) Create(ctx context.Context, customer *device42.Customer) (*device42.MutationResult, error) {
	return c.client.postObject(ctx, defaultAPIVersion, "customers", customer.Values())
}
