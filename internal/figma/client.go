package figma

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultEndpoint is the Figma REST API base.
const DefaultEndpoint = "https://api.figma.com"

// Client fetches design metadata from the Figma REST API.
type Client struct {
	token      string
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a Figma API client. token is a personal access token; an
// empty token yields a client whose lookups fail with ErrNotConfigured.
func NewClient(token, endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		token:    token,
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// ErrNotConfigured is returned when no API token is set.
var ErrNotConfigured = fmt.Errorf("figma client not configured")

// FileMeta is the subset of the Figma file response the prompt cares about.
type FileMeta struct {
	Name         string `json:"name"`
	LastModified string `json:"lastModified"`
	Version      string `json:"version"`
}

// GetFileMeta fetches name/version metadata for a Figma file key.
func (c *Client) GetFileMeta(ctx context.Context, fileKey string) (*FileMeta, error) {
	if c.token == "" {
		return nil, ErrNotConfigured
	}

	// depth=1 keeps the response to top-level metadata instead of the full
	// document tree.
	apiURL := fmt.Sprintf("%s/v1/files/%s?depth=1", c.endpoint, url.PathEscape(fileKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Figma API request: %w", err)
	}
	req.Header.Set("X-Figma-Token", c.token)

	log.Printf("Fetching Figma metadata for file %s", fileKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request to Figma API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Figma API returned non-success status: %s", resp.Status)
	}

	var meta FileMeta
	if err := json.NewDecoder(resp.Body).Decode(&meta); err != nil {
		return nil, fmt.Errorf("failed to decode Figma API response: %w", err)
	}

	return &meta, nil
}

// ExtractFileKey pulls the file key out of a Figma design URL. Recognized
// forms are figma.com/file/<key>/... and figma.com/design/<key>/...
// An empty string means no key was found.
func ExtractFileKey(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ""
	}
	if !strings.HasSuffix(u.Hostname(), "figma.com") {
		return ""
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 {
		return ""
	}
	switch parts[0] {
	case "file", "design", "proto":
		return parts[1]
	}
	return ""
}
