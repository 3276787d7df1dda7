// Package josm talks to a running JOSM instance through its remote
// control API.
package josm

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/paulmach/osm"
)

// DefaultBaseURL is where JOSM remote control listens by default.
const DefaultBaseURL = "http://localhost:8111"

// Client issues remote control requests against one JOSM instance.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient returns a client for the given base URL, falling back to
// DefaultBaseURL when empty.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// LoadWay asks JOSM to download and select one way. A non-2xx response is
// an error; the caller decides whether to continue with the next way.
func (c *Client) LoadWay(ctx context.Context, id osm.WayID) error {
	url := fmt.Sprintf("%s/load_object?objects=way%d", c.BaseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("load way %d: %w", id, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("load way %d: josm returned %s", id, resp.Status)
	}
	return nil
}
