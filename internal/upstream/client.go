package upstream

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"revshop-web/pkg/logger"

	"github.com/goccy/go-json"
)

// Client is the typed HTTP client for the marketplace REST API. It injects the
// caller's bearer token, unwraps the API's response envelope, and surfaces
// failures as *Error carrying the envelope message for the toast layer.
//
// There is no retry and no client-side timeout by default: failed requests are
// reported once and abandoned, and in-flight requests are bounded only by the
// request context and the transport's own defaults.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a marketplace API client. baseURL includes the /api
// prefix. A timeout of 0 leaves the transport defaults in place.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Error is an application-level failure reported by the marketplace API
type Error struct {
	Status  int
	Message string
	Errors  []string
}

func (e *Error) Error() string {
	return e.Message
}

// envelope mirrors the marketplace ApiResponse contract. Success is a pointer
// so that a missing flag on a 2xx response still counts as success.
type envelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []string        `json:"errors"`
}

const fallbackMessage = "Request failed"

func (c *Client) do(ctx context.Context, token, method, path string, body interface{}, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.UpstreamCall(method, path, 0, time.Since(start), err)
		return fmt.Errorf("marketplace request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.UpstreamCall(method, path, resp.StatusCode, time.Since(start), err)
		return fmt.Errorf("failed to read response: %w", err)
	}
	logger.UpstreamCall(method, path, resp.StatusCode, time.Since(start), nil)

	env := decodeEnvelope(resp, raw)
	ok := resp.StatusCode >= 200 && resp.StatusCode < 300

	if !ok || (env.Success != nil && !*env.Success) {
		message := env.Message
		if message == "" {
			message = fallbackMessage
		}
		return &Error{
			Status:  resp.StatusCode,
			Message: message,
			Errors:  env.Errors,
		}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return nil
}

// decodeEnvelope degrades gracefully: non-JSON bodies become the message text,
// empty bodies become the HTTP status text.
func decodeEnvelope(resp *http.Response, raw []byte) envelope {
	if len(raw) == 0 {
		return envelope{Message: resp.Status}
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return envelope{Message: string(raw)}
	}
	return env
}
