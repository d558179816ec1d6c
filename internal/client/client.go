// Package client implements the tolstoy.Client interface.
package client

import (
	"strings"
	"time"

	"github.com/tolstoy-io/tolstoy-go/internal/http"
	"github.com/tolstoy-io/tolstoy-go/pkg/tolstoy"
)

// Client implements the tolstoy.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	headers    map[string]string

	// Resource clients
	flows      tolstoy.FlowsClient
	executions tolstoy.ExecutionsClient
	tools      tolstoy.ToolsClient
	actions    tolstoy.ActionsClient
	webhooks   tolstoy.WebhooksClient
	toolAuth   tolstoy.ToolAuthClient
	oauth      tolstoy.OAuthClient
}

// New creates a new Tolstoy API client.
//
// The tenant header map is derived once from the configuration; all resource
// clients share it through the transport.
func New(config *tolstoy.Config) (*Client, error) {
	if config == nil {
		return nil, &tolstoy.ConfigurationError{Message: tolstoy.ErrConfigRequired.Error()}
	}

	if strings.TrimSpace(config.BaseURL) == "" {
		return nil, &tolstoy.ConfigurationError{Message: tolstoy.ErrBaseURLRequired.Error()}
	}

	headers := config.Headers()
	httpClient := http.NewClient(config.BaseURL, headers, buildHTTPOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    config.BaseURL,
		headers:    headers,
	}

	client.initializeResourceClients()

	return client, nil
}

// buildHTTPOptions builds transport options from config.
func buildHTTPOptions(config *tolstoy.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithHTTPTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		waitMin := config.RetryWaitMin
		waitMax := config.RetryWaitMax

		if waitMin <= 0 {
			waitMin = 1 * time.Second
		}

		if waitMax <= 0 {
			waitMax = 10 * time.Second
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, waitMin, waitMax))
	}

	return httpOpts
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.flows = NewFlowsClient(c.httpClient)
	c.executions = NewExecutionsClient(c.httpClient)
	c.tools = NewToolsClient(c.httpClient)
	c.actions = NewActionsClient(c.httpClient)
	c.webhooks = NewWebhooksClient(c.httpClient)
	c.toolAuth = NewToolAuthClient(c.httpClient)
	c.oauth = NewOAuthClient(c.httpClient)
}

// Flows implements tolstoy.Client.Flows.
func (c *Client) Flows() tolstoy.FlowsClient {
	return c.flows
}

// Executions implements tolstoy.Client.Executions.
func (c *Client) Executions() tolstoy.ExecutionsClient {
	return c.executions
}

// Tools implements tolstoy.Client.Tools.
func (c *Client) Tools() tolstoy.ToolsClient {
	return c.tools
}

// Actions implements tolstoy.Client.Actions.
func (c *Client) Actions() tolstoy.ActionsClient {
	return c.actions
}

// Webhooks implements tolstoy.Client.Webhooks.
func (c *Client) Webhooks() tolstoy.WebhooksClient {
	return c.webhooks
}

// ToolAuth implements tolstoy.Client.ToolAuth.
func (c *Client) ToolAuth() tolstoy.ToolAuthClient {
	return c.toolAuth
}

// OAuth implements tolstoy.Client.OAuth.
func (c *Client) OAuth() tolstoy.OAuthClient {
	return c.oauth
}

// Raw implements tolstoy.Client.Raw.
func (c *Client) Raw() tolstoy.RawClient {
	return c.httpClient
}
