package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/tolstoy-io/tolstoy-go/internal/http"
	"github.com/tolstoy-io/tolstoy-go/pkg/tolstoy"
)

// WebhooksClient implements tolstoy.WebhooksClient.
type WebhooksClient struct {
	httpClient *http.Client
}

// NewWebhooksClient creates a new webhooks client.
func NewWebhooksClient(httpClient *http.Client) *WebhooksClient {
	return &WebhooksClient{
		httpClient: httpClient,
	}
}

// Create implements tolstoy.WebhooksClient.Create.
func (c *WebhooksClient) Create(ctx context.Context, request *tolstoy.WebhookCreateRequest) (*tolstoy.Webhook, error) {
	resp, err := c.httpClient.Post(ctx, "/webhooks", request)
	if err != nil {
		return nil, fmt.Errorf("creating webhook: %w", err)
	}

	var webhook tolstoy.Webhook

	err = json.Unmarshal(resp.Body, &webhook)
	if err != nil {
		return nil, fmt.Errorf("parsing webhook response: %w", err)
	}

	return &webhook, nil
}

// Get implements tolstoy.WebhooksClient.Get.
func (c *WebhooksClient) Get(ctx context.Context, webhookID string) (*tolstoy.Webhook, error) {
	path := "/webhooks/" + url.PathEscape(webhookID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting webhook: %w", err)
	}

	var webhook tolstoy.Webhook

	err = json.Unmarshal(resp.Body, &webhook)
	if err != nil {
		return nil, fmt.Errorf("parsing webhook: %w", err)
	}

	return &webhook, nil
}

// List implements tolstoy.WebhooksClient.List.
func (c *WebhooksClient) List(ctx context.Context, opts *tolstoy.ListOptions) ([]tolstoy.Webhook, error) {
	resp, err := c.httpClient.Get(ctx, "/webhooks", opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing webhooks: %w", err)
	}

	var webhooks []tolstoy.Webhook

	err = json.Unmarshal(resp.Body, &webhooks)
	if err != nil {
		return nil, fmt.Errorf("parsing webhooks list: %w", err)
	}

	return webhooks, nil
}

// Delete implements tolstoy.WebhooksClient.Delete.
func (c *WebhooksClient) Delete(ctx context.Context, webhookID string) error {
	path := "/webhooks/" + url.PathEscape(webhookID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting webhook: %w", err)
	}

	return nil
}
