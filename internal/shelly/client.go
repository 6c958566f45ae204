package shelly

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout is the per-request deadline used when none is configured.
const DefaultTimeout = 5 * time.Second

// Sentinel errors for gateway calls.
var (
	// ErrUnreachable indicates the device did not answer the request with
	// a valid JSON response: transport failure, non-2xx status, or an
	// unparseable body.
	ErrUnreachable = errors.New("shelly: device unreachable")

	// ErrBadResponse indicates the device answered but the payload is
	// missing a field the call requires.
	ErrBadResponse = errors.New("shelly: unexpected device response")
)

// Client issues RPC calls to Shelly devices over plain HTTP.
//
// The zero value is not usable; create one with NewClient. A Client is
// safe for concurrent use, though plugctl itself calls devices
// sequentially in resolution order.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a gateway client with the given per-request timeout.
// A non-positive timeout falls back to DefaultTimeout.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Get sends a GET request to a device and returns the parsed JSON body.
func (c *Client) Get(ctx context.Context, ip, path string) (map[string]any, error) {
	return c.do(ctx, http.MethodGet, ip, path, nil)
}

// Post sends a POST request with a JSON body to a device and returns the
// parsed JSON response.
func (c *Client) Post(ctx context.Context, ip, path string, body any) (map[string]any, error) {
	return c.do(ctx, http.MethodPost, ip, path, body)
}

func (c *Client) do(ctx context.Context, method, ip, path string, body any) (map[string]any, error) {
	url := "http://" + ip + path

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body for %s: %w", url, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", url, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request to %s failed: %w", ErrUnreachable, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: %s returned status %d", ErrUnreachable, url, resp.StatusCode)
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decoding response from %s: %w", ErrUnreachable, url, err)
	}
	return payload, nil
}
