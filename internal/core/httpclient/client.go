package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"storefront-client/internal/core/config"
	"storefront-client/internal/core/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LoggingRoundTripper captures request details for debugging.
type LoggingRoundTripper struct {
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
}

// RoundTrip executes the request and logs details.
func (lrt *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	logger.Get().Debug("HTTP Request Started",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.String("request_id", req.Header.Get("X-Request-ID")),
	)

	resp, err := lrt.Proxied.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		logger.Get().Error("HTTP Request Failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Get().Debug("HTTP Request Completed",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", duration),
	)

	return resp, nil
}

// NewHTTPClient returns an http.Client with logging middleware.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: &LoggingRoundTripper{
			Proxied: http.DefaultTransport,
		},
		Timeout: timeout,
	}
}

// Client is the single configured transport client for the storefront API.
// It attaches the session credentials and a correlation ID to every request
// and decodes JSON response bodies into caller-provided targets.
type Client struct {
	// baseURL is the storefront API root, without trailing slash.
	baseURL string
	// token is the bearer session token, empty for anonymous sessions.
	token string
	// http executes the requests.
	http *http.Client
}

// New creates a transport client from the API configuration.
func New(cfg config.APIConfig) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, ConfigError("storefront API base URL is not configured")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, ConfigError(fmt.Sprintf("invalid storefront API base URL: %v", err))
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.SessionToken,
		http:    NewHTTPClient(cfg.Timeout()),
	}, nil
}

// Get issues a GET request. query may be nil; out may be nil to discard the body.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

// Patch issues a PATCH request. body may be nil for bare mutations such as undelete.
func (c *Client) Patch(ctx context.Context, path string, body interface{}, out interface{}) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

// Delete issues a DELETE request. out may be nil.
func (c *Client) Delete(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

// do builds, executes and settles one request against the storefront API.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	op := fmt.Sprintf("%s %s", method, path)

	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindTransport, Op: op, Message: "failed to encode request body", Err: err}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return &Error{Kind: KindTransport, Op: op, Message: "failed to create request", Err: err}
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Kind: KindTransport, Op: op, Message: "request could not complete", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindTransport, Op: op, StatusCode: resp.StatusCode, Message: "failed to read response body", Err: err}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return &Error{Kind: KindUnauthenticated, Op: op, StatusCode: resp.StatusCode, Message: serverMessage(raw, "unauthenticated")}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		fallback := fmt.Sprintf("storefront API returned status: %d", resp.StatusCode)
		return &Error{Kind: KindApplication, Op: op, StatusCode: resp.StatusCode, Message: serverMessage(raw, fallback)}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{Kind: KindTransport, Op: op, StatusCode: resp.StatusCode, Message: "failed to decode response", Err: err}
	}

	return nil
}

// serverMessage extracts the structured message from an error body, falling
// back when the body is empty or opaque.
func serverMessage(raw []byte, fallback string) string {
	var msg apiMessage
	if err := json.Unmarshal(raw, &msg); err == nil && msg.Message != "" {
		return msg.Message
	}
	return fallback
}
