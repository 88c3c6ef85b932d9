package client

import (
	"context"

	"github.com/device42-community/d42-client/pkg/device42"
)

// ServiceInstancesClient implements device42.ServiceInstancesClient. Service
// instances are the one resource family served from API v2.0.
type ServiceInstancesClient struct {
	client *Client
}

// NewServiceInstancesClient creates a new service instances client.
func NewServiceInstancesClient(client *Client) *ServiceInstancesClient {
	return &ServiceInstancesClient{client: client}
}

// List implements device42.ServiceInstancesClient.List.
func (c *ServiceInstancesClient) List(ctx context.Context) *device42.RecordIterator {
	return c.client.list(ctx, resourcePath(v2APIVersion, "service_instances"), nil)
}

// OperatingSystemsClient implements device42.OperatingSystemsClient.
type OperatingSystemsClient struct {
	client *Client
}

// NewOperatingSystemsClient creates a new operating systems client.
func NewOperatingSystemsClient(client *Client) *OperatingSystemsClient {
	return &OperatingSystemsClient{client: client}
}

// List implements device42.OperatingSystemsClient.List.
func (c *OperatingSystemsClient) List(ctx context.Context) *device42.RecordIterator {
	return c.client.list(ctx, resourcePath(defaultAPIVersion, "operatingsystems"), nil)
}
