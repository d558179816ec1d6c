// Package http is the underlying API handle: a thin JSON transport that
// applies the tenant header map to every request and decodes the platform's
// error envelope. Retries for transient failures live here, not in the
// resource clients.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/tolstoy-io/tolstoy-go/internal/constants"
	"github.com/tolstoy-io/tolstoy-go/pkg/tolstoy"
)

// Client is the HTTP transport for the platform API.
type Client struct {
	baseURL    string
	headers    map[string]string
	httpClient *retryablehttp.Client
	logger     tolstoy.Logger
	debug      bool
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug logging.
func WithLogger(logger tolstoy.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging when a logger is set.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig tunes transport retries for transient failures.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithHTTPTimeout sets the per-attempt HTTP timeout.
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// NewClient creates a new transport for the given base URL. The header map
// is attached to every outgoing request.
func NewClient(baseURL string, headers map[string]string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.Logger = nil

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		headers:    headers,
		httpClient: retryClient,
		userAgent:  constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do executes a raw request against the platform API.
//
// For non-2xx responses both the response and a *tolstoy.ResponseError are
// returned, so callers can inspect the status alongside the decoded envelope.
func (c *Client) Do(ctx context.Context, req *tolstoy.Request) (*tolstoy.Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	reqURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		reqURL += "?" + req.Query.Encode()
	}

	var bodyBytes []byte

	if req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		bodyBytes = encoded
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, reqURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	for key, value := range c.headers {
		httpReq.Header.Set(key, value)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    reqURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &tolstoy.Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"url":         reqURL,
			"status_code": httpResp.StatusCode,
		})
	}

	if httpResp.StatusCode >= nethttp.StatusBadRequest {
		return resp, c.responseError(httpResp.StatusCode, respBody)
	}

	return resp, nil
}

// responseError decodes the platform error envelope, falling back to the
// raw body text when the envelope does not parse.
func (c *Client) responseError(statusCode int, body []byte) error {
	if len(body) > 0 {
		errResp, err := tolstoy.ParseResponseError(statusCode, body)
		if err == nil && len(errResp.Errors) > 0 {
			return errResp
		}
	}

	return &tolstoy.ResponseError{
		StatusCode: statusCode,
		Errors: []tolstoy.APIError{
			{Code: "http_error", Message: strings.TrimSpace(string(body))},
		},
	}
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*tolstoy.Response, error) {
	return c.Do(ctx, &tolstoy.Request{Method: nethttp.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*tolstoy.Response, error) {
	return c.Do(ctx, &tolstoy.Request{Method: nethttp.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*tolstoy.Response, error) {
	return c.Do(ctx, &tolstoy.Request{Method: nethttp.MethodPut, Path: path, Body: body})
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*tolstoy.Response, error) {
	return c.Do(ctx, &tolstoy.Request{Method: nethttp.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*tolstoy.Response, error) {
	return c.Do(ctx, &tolstoy.Request{Method: nethttp.MethodDelete, Path: path})
}
