package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/ozicart/catalog-search-backend/internal/config"
)

// Client talks to the OpenSearch cluster. It only knows the two operations the
// exporters need: a raw bulk upload and an index delete.
type Client struct {
	http *resty.Client
}

func NewClient(cfg config.OpenSearchConfig) *Client {
	c := resty.New().
		SetBaseURL(strings.TrimSpace(cfg.URL)).
		SetBasicAuth(cfg.Username, cfg.Password).
		SetTimeout(cfg.Timeout)
	return &Client{http: c}
}

// Bulk uploads a newline-delimited payload to the cluster's bulk endpoint and
// returns the decoded response body. Per-document results inside the response
// are not inspected; only transport and HTTP-level failures surface as errors.
func (c *Client) Bulk(ctx context.Context, payload []byte) (map[string]any, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/x-ndjson").
		SetBody(payload).
		Post("/_bulk")
	if err != nil {
		return nil, fmt.Errorf("bulk upload: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("bulk upload: %s: %s", resp.Status(), resp.String())
	}

	var body map[string]any
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("bulk upload: decode response: %w", err)
	}
	return body, nil
}

// DeleteIndex removes an index ahead of a re-push. A missing index is treated
// as success; any other failure is fatal to the caller.
func (c *Client) DeleteIndex(ctx context.Context, name string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Delete("/" + name)
	if err != nil {
		return fmt.Errorf("delete index %q: %w", name, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil
	}
	if resp.IsError() {
		return fmt.Errorf("delete index %q: %s: %s", name, resp.Status(), resp.String())
	}
	return nil
}
