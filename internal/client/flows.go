package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/tolstoy-io/tolstoy-go/internal/http"
	"github.com/tolstoy-io/tolstoy-go/pkg/tolstoy"
)

// FlowsClient implements tolstoy.FlowsClient.
type FlowsClient struct {
	httpClient *http.Client
}

// NewFlowsClient creates a new flows client.
func NewFlowsClient(httpClient *http.Client) *FlowsClient {
	return &FlowsClient{
		httpClient: httpClient,
	}
}

// Create implements tolstoy.FlowsClient.Create.
func (c *FlowsClient) Create(ctx context.Context, request *tolstoy.FlowCreateRequest) (*tolstoy.Flow, error) {
	resp, err := c.httpClient.Post(ctx, "/flows", request)
	if err != nil {
		return nil, fmt.Errorf("creating flow: %w", err)
	}

	var flow tolstoy.Flow

	err = json.Unmarshal(resp.Body, &flow)
	if err != nil {
		return nil, fmt.Errorf("parsing flow response: %w", err)
	}

	return &flow, nil
}

// Get implements tolstoy.FlowsClient.Get.
func (c *FlowsClient) Get(ctx context.Context, flowID string) (*tolstoy.Flow, error) {
	path := "/flows/" + url.PathEscape(flowID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting flow: %w", err)
	}

	var flow tolstoy.Flow

	err = json.Unmarshal(resp.Body, &flow)
	if err != nil {
		return nil, fmt.Errorf("parsing flow: %w", err)
	}

	return &flow, nil
}

// List implements tolstoy.FlowsClient.List.
func (c *FlowsClient) List(ctx context.Context, opts *tolstoy.ListOptions) ([]tolstoy.Flow, error) {
	resp, err := c.httpClient.Get(ctx, "/flows", opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing flows: %w", err)
	}

	var flows []tolstoy.Flow

	err = json.Unmarshal(resp.Body, &flows)
	if err != nil {
		return nil, fmt.Errorf("parsing flows list: %w", err)
	}

	return flows, nil
}

// Update implements tolstoy.FlowsClient.Update.
func (c *FlowsClient) Update(ctx context.Context, flowID string, request *tolstoy.FlowUpdateRequest) (*tolstoy.Flow, error) {
	path := "/flows/" + url.PathEscape(flowID)

	resp, err := c.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating flow: %w", err)
	}

	var flow tolstoy.Flow

	err = json.Unmarshal(resp.Body, &flow)
	if err != nil {
		return nil, fmt.Errorf("parsing flow response: %w", err)
	}

	return &flow, nil
}

// Delete implements tolstoy.FlowsClient.Delete.
func (c *FlowsClient) Delete(ctx context.Context, flowID string) error {
	path := "/flows/" + url.PathEscape(flowID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting flow: %w", err)
	}

	return nil
}

// Run implements tolstoy.FlowsClient.Run.
//
// Executions are durable unless the request explicitly disables it.
func (c *FlowsClient) Run(ctx context.Context, flowID string, request *tolstoy.FlowRunRequest) (*tolstoy.Execution, error) {
	path := "/flows/" + url.PathEscape(flowID) + "/execute"

	var body tolstoy.FlowRunRequest
	if request != nil {
		body = *request
	}

	if body.UseDurable == nil {
		durable := true
		body.UseDurable = &durable
	}

	resp, err := c.httpClient.Post(ctx, path, &body)
	if err != nil {
		return nil, fmt.Errorf("running flow: %w", err)
	}

	var execution tolstoy.Execution

	err = json.Unmarshal(resp.Body, &execution)
	if err != nil {
		return nil, fmt.Errorf("parsing execution response: %w", err)
	}

	return &execution, nil
}
