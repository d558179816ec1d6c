package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tolstoy-io/tolstoy-go/internal/http"
	"github.com/tolstoy-io/tolstoy-go/pkg/tolstoy"
)

// OAuthClient implements tolstoy.OAuthClient.
type OAuthClient struct {
	httpClient *http.Client
}

// NewOAuthClient creates a new OAuth client.
func NewOAuthClient(httpClient *http.Client) *OAuthClient {
	return &OAuthClient{
		httpClient: httpClient,
	}
}

// Initiate implements tolstoy.OAuthClient.Initiate.
//
// The returned authorization URL must be opened by the end user; the
// platform completes the flow on its callback endpoint and stores the
// resulting credentials as the tool's auth.
func (c *OAuthClient) Initiate(ctx context.Context, request *tolstoy.OAuthInitiateRequest) (*tolstoy.OAuthInitiateResponse, error) {
	resp, err := c.httpClient.Post(ctx, "/oauth/initiate", request)
	if err != nil {
		return nil, fmt.Errorf("initiating oauth flow: %w", err)
	}

	var initiate tolstoy.OAuthInitiateResponse

	err = json.Unmarshal(resp.Body, &initiate)
	if err != nil {
		return nil, fmt.Errorf("parsing oauth initiate response: %w", err)
	}

	return &initiate, nil
}
