package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/tolstoy-io/tolstoy-go/internal/http"
	"github.com/tolstoy-io/tolstoy-go/pkg/tolstoy"
)

// ToolsClient implements tolstoy.ToolsClient.
type ToolsClient struct {
	httpClient *http.Client
}

// NewToolsClient creates a new tools client.
func NewToolsClient(httpClient *http.Client) *ToolsClient {
	return &ToolsClient{
		httpClient: httpClient,
	}
}

// Create implements tolstoy.ToolsClient.Create.
func (c *ToolsClient) Create(ctx context.Context, request *tolstoy.ToolCreateRequest) (*tolstoy.Tool, error) {
	resp, err := c.httpClient.Post(ctx, "/tools", request)
	if err != nil {
		return nil, fmt.Errorf("creating tool: %w", err)
	}

	var tool tolstoy.Tool

	err = json.Unmarshal(resp.Body, &tool)
	if err != nil {
		return nil, fmt.Errorf("parsing tool response: %w", err)
	}

	return &tool, nil
}

// Get implements tolstoy.ToolsClient.Get.
func (c *ToolsClient) Get(ctx context.Context, toolID string) (*tolstoy.Tool, error) {
	path := "/tools/" + url.PathEscape(toolID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting tool: %w", err)
	}

	var tool tolstoy.Tool

	err = json.Unmarshal(resp.Body, &tool)
	if err != nil {
		return nil, fmt.Errorf("parsing tool: %w", err)
	}

	return &tool, nil
}

// List implements tolstoy.ToolsClient.List.
func (c *ToolsClient) List(ctx context.Context, opts *tolstoy.ListOptions) ([]tolstoy.Tool, error) {
	resp, err := c.httpClient.Get(ctx, "/tools", opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing tools: %w", err)
	}

	var tools []tolstoy.Tool

	err = json.Unmarshal(resp.Body, &tools)
	if err != nil {
		return nil, fmt.Errorf("parsing tools list: %w", err)
	}

	return tools, nil
}

// Update implements tolstoy.ToolsClient.Update.
func (c *ToolsClient) Update(ctx context.Context, toolID string, request *tolstoy.ToolUpdateRequest) (*tolstoy.Tool, error) {
	path := "/tools/" + url.PathEscape(toolID)

	resp, err := c.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating tool: %w", err)
	}

	var tool tolstoy.Tool

	err = json.Unmarshal(resp.Body, &tool)
	if err != nil {
		return nil, fmt.Errorf("parsing tool response: %w", err)
	}

	return &tool, nil
}

// Delete implements tolstoy.ToolsClient.Delete.
func (c *ToolsClient) Delete(ctx context.Context, toolID string) error {
	path := "/tools/" + url.PathEscape(toolID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting tool: %w", err)
	}

	return nil
}
