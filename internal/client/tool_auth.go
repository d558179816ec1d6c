package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/tolstoy-io/tolstoy-go/internal/http"
	"github.com/tolstoy-io/tolstoy-go/pkg/tolstoy"
)

// ToolAuthClient implements tolstoy.ToolAuthClient.
type ToolAuthClient struct {
	httpClient *http.Client
}

// NewToolAuthClient creates a new tool auth client.
func NewToolAuthClient(httpClient *http.Client) *ToolAuthClient {
	return &ToolAuthClient{
		httpClient: httpClient,
	}
}

// Upsert implements tolstoy.ToolAuthClient.Upsert.
//
// The platform replaces any stored credentials for the tool.
func (c *ToolAuthClient) Upsert(ctx context.Context, toolID string, request *tolstoy.ToolAuthUpsertRequest) (*tolstoy.ToolAuth, error) {
	path := "/tools/" + url.PathEscape(toolID) + "/auth"

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("upserting tool auth: %w", err)
	}

	var auth tolstoy.ToolAuth

	err = json.Unmarshal(resp.Body, &auth)
	if err != nil {
		return nil, fmt.Errorf("parsing tool auth response: %w", err)
	}

	return &auth, nil
}

// Get implements tolstoy.ToolAuthClient.Get.
func (c *ToolAuthClient) Get(ctx context.Context, toolID string) (*tolstoy.ToolAuth, error) {
	path := "/tools/" + url.PathEscape(toolID) + "/auth"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting tool auth: %w", err)
	}

	var auth tolstoy.ToolAuth

	err = json.Unmarshal(resp.Body, &auth)
	if err != nil {
		return nil, fmt.Errorf("parsing tool auth: %w", err)
	}

	return &auth, nil
}

// Delete implements tolstoy.ToolAuthClient.Delete.
func (c *ToolAuthClient) Delete(ctx context.Context, toolID string) error {
	path := "/tools/" + url.PathEscape(toolID) + "/auth"

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting tool auth: %w", err)
	}

	return nil
}
