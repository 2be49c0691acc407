package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// Client wraps calls to the external survey backend. The access token
// is passed per request by the caller; the client holds no credential
// state of its own.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new backend API client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// do performs a single HTTP request and normalizes failures. Writes are
// never retried; a failed call surfaces one error and leaves state to
// the caller.
func (c *Client) do(ctx context.Context, method, path, token string, body interface{}) ([]byte, error) {
	url := c.baseURL + path
	log.Printf("[Backend] %s %s", method, path)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[Backend] ERROR: %s %s failed: %v", method, path, err)
		return nil, transientError(err)
	}

	respBody, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		log.Printf("[Backend] ERROR: failed to read response body: %v", err)
		return nil, transientError(err)
	}

	if resp.StatusCode >= 400 {
		apiErr := statusError(resp.StatusCode, respBody)
		log.Printf("[Backend] ERROR: %s %s returned %d (%s)", method, path, resp.StatusCode, apiErr.Kind)
		return nil, apiErr
	}

	return respBody, nil
}

func decode(data []byte, out interface{}) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse backend response: %w", err)
	}
	return nil
}
