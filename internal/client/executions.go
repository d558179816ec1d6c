package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/tolstoy-io/tolstoy-go/internal/http"
	"github.com/tolstoy-io/tolstoy-go/pkg/tolstoy"
)

// ExecutionsClient implements tolstoy.ExecutionsClient.
type ExecutionsClient struct {
	httpClient *http.Client
}

// NewExecutionsClient creates a new executions client.
func NewExecutionsClient(httpClient *http.Client) *ExecutionsClient {
	return &ExecutionsClient{
		httpClient: httpClient,
	}
}

// Get implements tolstoy.ExecutionsClient.Get.
func (c *ExecutionsClient) Get(ctx context.Context, executionID string) (*tolstoy.Execution, error) {
	path := "/executions/" + url.PathEscape(executionID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting execution: %w", err)
	}

	var execution tolstoy.Execution

	err = json.Unmarshal(resp.Body, &execution)
	if err != nil {
		return nil, fmt.Errorf("parsing execution: %w", err)
	}

	return &execution, nil
}

// List implements tolstoy.ExecutionsClient.List.
func (c *ExecutionsClient) List(ctx context.Context, opts *tolstoy.ExecutionListOptions) ([]tolstoy.Execution, error) {
	resp, err := c.httpClient.Get(ctx, "/executions", opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing executions: %w", err)
	}

	var executions []tolstoy.Execution

	err = json.Unmarshal(resp.Body, &executions)
	if err != nil {
		return nil, fmt.Errorf("parsing executions list: %w", err)
	}

	return executions, nil
}
