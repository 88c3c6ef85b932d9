package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/device42-community/d42-client/pkg/device42"
)

// API versions. Most endpoints live under 1.0; service instances moved to 2.0.
const (
	defaultAPIVersion = "1.0"
	v2APIVersion      = "2.0"
)

// resourcePath returns the collection URL for a resource, e.g. /api/1.0/buildings/.
func resourcePath(version, resource string) string {
	return fmt.Sprintf("/api/%s/%s/", version, resource)
}

// objectPath returns the URL of one object, e.g. /api/1.0/buildings/42.
func objectPath(version, resource string, id int) string {
	return fmt.Sprintf("/api/%s/%s/%d", version, resource, id)
}

// getObject fetches a single record by id.
func (c *Client) getObject(ctx context.Context, version, resource string, id int) (device42.Record, error) {
	resp, err := c.httpClient.Get(ctx, objectPath(version, resource, id), nil)
	if err != nil {
		return nil, fmt.Errorf("getting %s %d: %w", resource, id, err)
	}

	var record device42.Record
	if err := json.Unmarshal(resp.Body, &record); err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", resource, err)
	}

	return record, nil
}

// postObject submits a form-encoded create/update and validates the mutation
// envelope.
func (c *Client) postObject(ctx context.Context, version, resource string, form url.Values) (*device42.MutationResult, error) {
	resp, err := c.httpClient.PostForm(ctx, resourcePath(version, resource), form)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", resource, err)
	}

	result, err := device42.ParseMutationResult(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", resource, err)
	}

	return result, nil
}

// putObject is postObject over PUT. PUT is used for update-only semantics,
// where POST can both create and update.
func (c *Client) putObject(ctx context.Context, version, resource string, form url.Values) (*device42.MutationResult, error) {
	resp, err := c.httpClient.PutForm(ctx, resourcePath(version, resource), form)
	if err != nil {
		return nil, fmt.Errorf("updating %s: %w", resource, err)
	}

	result, err := device42.ParseMutationResult(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("updating %s: %w", resource, err)
	}

	return result, nil
}

// deleteObject deletes one object and decodes the acknowledgment.
func (c *Client) deleteObject(ctx context.Context, version, resource string, id int) (*device42.DeleteResult, error) {
	resp, err := c.httpClient.Delete(ctx, objectPath(version, resource, id))
	if err != nil {
		return nil, fmt.Errorf("deleting %s %d: %w", resource, id, err)
	}

	var result device42.DeleteResult
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing %s delete response: %w", resource, err)
	}

	return &result, nil
}

// list builds the lazy flattened record sequence for a listing endpoint.
func (c *Client) list(ctx context.Context, path string, query url.Values) *device42.RecordIterator {
	return device42.NewRecordIterator(
		device42.NewPageIterator(ctx, c.httpClient, path, query, c.paginationOptions()),
	)
}

// paginationOptions derives pagination options from client config.
func (c *Client) paginationOptions() *device42.PaginationOptions {
	opts := device42.DefaultPaginationOptions()
	opts.Logger = c.logger

	if c.pageSize > 0 {
		opts.PageSize = c.pageSize
	}

	return opts
}
