package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// doqlPath is the saved-query endpoint. DOQL queries are user-authored
// read-only queries that talk directly to the appliance database.
const doqlPath = "/services/data/v1.0/query/"

// QueriesClient implements device42.QueriesClient.
type QueriesClient struct {
	client *Client
}

// NewQueriesClient creates a new saved queries client.
func NewQueriesClient(client *Client) *QueriesClient {
	return &QueriesClient{client: client}
}

// Run implements device42.QueriesClient.Run. The result shape is whatever
// the named query returns, so the body passes through undecoded.
func (c *QueriesClient) Run(ctx context.Context, queryName string) (json.RawMessage, error) {
	query := url.Values{
		"saved_query_name": []string{queryName},
		"delimiter":        []string{""},
		"header":           []string{"yes"},
		"output_type":      []string{"json"},
	}

	resp, err := c.client.httpClient.Get(ctx, doqlPath, query)
	if err != nil {
		return nil, fmt.Errorf("running saved query %q: %w", queryName, err)
	}

	return json.RawMessage(resp.Body), nil
}
