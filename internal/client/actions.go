package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/tolstoy-io/tolstoy-go/internal/http"
	"github.com/tolstoy-io/tolstoy-go/pkg/tolstoy"
)

// ActionsClient implements tolstoy.ActionsClient.
type ActionsClient struct {
	httpClient *http.Client
}

// NewActionsClient creates a new actions client.
func NewActionsClient(httpClient *http.Client) *ActionsClient {
	return &ActionsClient{
		httpClient: httpClient,
	}
}

// Create implements tolstoy.ActionsClient.Create.
func (c *ActionsClient) Create(ctx context.Context, request *tolstoy.ActionCreateRequest) (*tolstoy.Action, error) {
	resp, err := c.httpClient.Post(ctx, "/actions", request)
	if err != nil {
		return nil, fmt.Errorf("creating action: %w", err)
	}

	var action tolstoy.Action

	err = json.Unmarshal(resp.Body, &action)
	if err != nil {
		return nil, fmt.Errorf("parsing action response: %w", err)
	}

	return &action, nil
}

// Get implements tolstoy.ActionsClient.Get.
func (c *ActionsClient) Get(ctx context.Context, actionID string) (*tolstoy.Action, error) {
	path := "/actions/" + url.PathEscape(actionID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting action: %w", err)
	}

	var action tolstoy.Action

	err = json.Unmarshal(resp.Body, &action)
	if err != nil {
		return nil, fmt.Errorf("parsing action: %w", err)
	}

	return &action, nil
}

// List implements tolstoy.ActionsClient.List.
func (c *ActionsClient) List(ctx context.Context, opts *tolstoy.ListOptions) ([]tolstoy.Action, error) {
	resp, err := c.httpClient.Get(ctx, "/actions", opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing actions: %w", err)
	}

	var actions []tolstoy.Action

	err = json.Unmarshal(resp.Body, &actions)
	if err != nil {
		return nil, fmt.Errorf("parsing actions list: %w", err)
	}

	return actions, nil
}

// Update implements tolstoy.ActionsClient.Update.
func (c *ActionsClient) Update(ctx context.Context, actionID string, request *tolstoy.ActionUpdateRequest) (*tolstoy.Action, error) {
	path := "/actions/" + url.PathEscape(actionID)

	resp, err := c.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating action: %w", err)
	}

	var action tolstoy.Action

	err = json.Unmarshal(resp.Body, &action)
	if err != nil {
		return nil, fmt.Errorf("parsing action response: %w", err)
	}

	return &action, nil
}

// Delete implements tolstoy.ActionsClient.Delete.
func (c *ActionsClient) Delete(ctx context.Context, actionID string) error {
	path := "/actions/" + url.PathEscape(actionID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting action: %w", err)
	}

	return nil
}

// Execute implements tolstoy.ActionsClient.Execute.
func (c *ActionsClient) Execute(ctx context.Context, actionID string, request *tolstoy.ActionExecuteRequest) (*tolstoy.ActionResult, error) {
	path := "/actions/" + url.PathEscape(actionID) + "/execute"

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("executing action: %w", err)
	}

	var result tolstoy.ActionResult

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing action result: %w", err)
	}

	return &result, nil
}
