package client

import (
	"context"
	"fmt"

	"github.com/device42-community/d42-client/pkg/device42"
)

// CustomFieldsClient implements device42.CustomFieldsClient.
type CustomFieldsClient struct {
	client *Client
}

// NewCustomFieldsClient creates a new custom fields client.
func NewCustomFieldsClient(client *Client) *CustomFieldsClient {
	return &CustomFieldsClient{client: client}
}

// Update implements device42.CustomFieldsClient.Update. Custom field edits
// ride the generic PUT envelope under /custom_fields/{resource}/.
func (c *CustomFieldsClient) Update(ctx context.Context, resource string, field *device42.CustomField) (*device42.MutationResult, error) {
	return c.client.putObject(ctx, defaultAPIVersion, fmt.Sprintf("custom_fields/%s", resource), field.Values())
}
