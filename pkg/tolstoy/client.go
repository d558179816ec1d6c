package tolstoy

import (
	"context"
	"strings"
	"time"
)

// Tenant identity header names attached to every request.
const (
	HeaderOrgID  = "x-org-id"
	HeaderUserID = "x-user-id"
	HeaderAuth   = "Authorization"
)

// FlowClients provides access to flow and execution resource clients.
type FlowClients interface {
	Flows() FlowsClient
	Executions() ExecutionsClient
}

// IntegrationClients provides access to tool-related resource clients.
type IntegrationClients interface {
	Tools() ToolsClient
	Actions() ActionsClient
	ToolAuth() ToolAuthClient
	OAuth() OAuthClient
}

// EventClients provides access to event-related resource clients.
type EventClients interface {
	Webhooks() WebhooksClient
}

// Client is the Tolstoy API client.
type Client interface {
	FlowClients
	IntegrationClients
	EventClients

	// Raw returns the underlying API handle with the tenant header map
	// already applied, for endpoints not covered by a named client.
	Raw() RawClient
}

// FlowsClient manages flows.
type FlowsClient interface {
	Create(ctx context.Context, request *FlowCreateRequest) (*Flow, error)
	Get(ctx context.Context, flowID string) (*Flow, error)
	List(ctx context.Context, opts *ListOptions) ([]Flow, error)
	Update(ctx context.Context, flowID string, request *FlowUpdateRequest) (*Flow, error)
	Delete(ctx context.Context, flowID string) error

	// Run starts an execution of the flow. A nil request or a nil
	// UseDurable field runs the flow durably.
	Run(ctx context.Context, flowID string, request *FlowRunRequest) (*Execution, error)
}

// ExecutionsClient tracks flow executions.
type ExecutionsClient interface {
	Get(ctx context.Context, executionID string) (*Execution, error)
	List(ctx context.Context, opts *ExecutionListOptions) ([]Execution, error)
}

// ToolsClient manages tool integrations.
type ToolsClient interface {
	Create(ctx context.Context, request *ToolCreateRequest) (*Tool, error)
	Get(ctx context.Context, toolID string) (*Tool, error)
	List(ctx context.Context, opts *ListOptions) ([]Tool, error)
	Update(ctx context.Context, toolID string, request *ToolUpdateRequest) (*Tool, error)
	Delete(ctx context.Context, toolID string) error
}

// ActionsClient manages and executes tool actions.
type ActionsClient interface {
	Create(ctx context.Context, request *ActionCreateRequest) (*Action, error)
	Get(ctx context.Context, actionID string) (*Action, error)
	List(ctx context.Context, opts *ListOptions) ([]Action, error)
	Update(ctx context.Context, actionID string, request *ActionUpdateRequest) (*Action, error)
	Delete(ctx context.Context, actionID string) error
	Execute(ctx context.Context, actionID string, request *ActionExecuteRequest) (*ActionResult, error)
}

// WebhooksClient manages inbound webhooks.
type WebhooksClient interface {
	Create(ctx context.Context, request *WebhookCreateRequest) (*Webhook, error)
	Get(ctx context.Context, webhookID string) (*Webhook, error)
	List(ctx context.Context, opts *ListOptions) ([]Webhook, error)
	Delete(ctx context.Context, webhookID string) error
}

// ToolAuthClient manages stored tool credentials.
type ToolAuthClient interface {
	Upsert(ctx context.Context, toolID string, request *ToolAuthUpsertRequest) (*ToolAuth, error)
	Get(ctx context.Context, toolID string) (*ToolAuth, error)
	Delete(ctx context.Context, toolID string) error
}

// OAuthClient starts OAuth authorization flows for tools.
type OAuthClient interface {
	Initiate(ctx context.Context, request *OAuthInitiateRequest) (*OAuthInitiateResponse, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a tolstoy.Client.
//
// BaseURL is required; tolstoyclient.New normalizes it by trimming a
// trailing slash and adding "https://" if no scheme is present. The tenant
// identity fields are optional: each one contributes a header to every
// request only when set (see Headers).
//
// Per-request timeouts should generally be controlled via context passed to
// client methods. Transport retry behavior can be tuned via RetryMax/
// RetryWaitMin/RetryWaitMax; the named helper methods themselves never
// retry.
type Config struct {
	// BaseURL is the platform API base URL (e.g., "https://api.usetolstoy.com").
	BaseURL string

	// OrganizationID is sent as the x-org-id header when non-empty.
	OrganizationID string
	// UserID is sent as the x-user-id header when non-empty.
	UserID string
	// AuthToken is sent as "Authorization: Bearer <token>" when non-empty.
	AuthToken string

	// HTTPTimeout is the underlying HTTP client timeout. Zero uses the default.
	HTTPTimeout time.Duration
	// RetryMax is the maximum number of transport retries for transient
	// failures (>=500, 429, connection errors). Zero uses the default.
	RetryMax int
	// RetryWaitMin is the minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum backoff between retries.
	RetryWaitMax time.Duration
	// Debug enables verbose HTTP request/response logging when a Logger is set.
	Debug bool
	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent overrides the default User-Agent header sent by the client.
	UserAgent string
}

// Headers derives the tenant identity header map from the configuration.
//
// The result contains exactly the headers whose source fields are non-empty
// after whitespace trimming, and nothing else. Derivation is pure: equal
// configurations always produce equal maps.
func (c *Config) Headers() map[string]string {
	headers := make(map[string]string)

	if v := strings.TrimSpace(c.OrganizationID); v != "" {
		headers[HeaderOrgID] = v
	}

	if v := strings.TrimSpace(c.UserID); v != "" {
		headers[HeaderUserID] = v
	}

	if v := strings.TrimSpace(c.AuthToken); v != "" {
		headers[HeaderAuth] = "Bearer " + v
	}

	return headers
}
