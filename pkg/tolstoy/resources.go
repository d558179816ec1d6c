package tolstoy

import "time"

// Resource is the base structure shared by all platform resources.
type Resource struct {
	ID        string    `json:"id"        yaml:"id"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt"`
}

// Flow is a workflow definition executable on the platform.
type Flow struct {
	Resource

	Name           string                 `json:"name"                  yaml:"name"`
	Description    string                 `json:"description,omitempty" yaml:"description,omitempty"`
	OrganizationID string                 `json:"orgId"                 yaml:"orgId"`
	Version        int                    `json:"version"               yaml:"version"`
	Enabled        bool                   `json:"enabled"               yaml:"enabled"`
	Trigger        *FlowTrigger           `json:"trigger,omitempty"     yaml:"trigger,omitempty"`
	Steps          []FlowStep             `json:"steps,omitempty"       yaml:"steps,omitempty"`
	Variables      map[string]interface{} `json:"variables,omitempty"   yaml:"variables,omitempty"`
}

// FlowTrigger describes what starts a flow.
type FlowTrigger struct {
	Type   string                 `json:"type"             yaml:"type"`
	Config map[string]interface{} `json:"config,omitempty" yaml:"config,omitempty"`
}

// FlowStep is a single step of a flow.
type FlowStep struct {
	ID       string                 `json:"id"                 yaml:"id"`
	Name     string                 `json:"name"               yaml:"name"`
	ActionID string                 `json:"actionId,omitempty" yaml:"actionId,omitempty"`
	Inputs   map[string]interface{} `json:"inputs,omitempty"   yaml:"inputs,omitempty"`
}

// FlowCreateRequest represents a request to create a flow.
type FlowCreateRequest struct {
	Name        string                 `json:"name"                  yaml:"name"`
	Description string                 `json:"description,omitempty" yaml:"description,omitempty"`
	Trigger     *FlowTrigger           `json:"trigger,omitempty"     yaml:"trigger,omitempty"`
	Steps       []FlowStep             `json:"steps,omitempty"       yaml:"steps,omitempty"`
	Variables   map[string]interface{} `json:"variables,omitempty"   yaml:"variables,omitempty"`
}

// FlowUpdateRequest represents a request to update a flow. Nil fields are
// left unchanged.
type FlowUpdateRequest struct {
	Name        *string      `json:"name,omitempty"        yaml:"name,omitempty"`
	Description *string      `json:"description,omitempty" yaml:"description,omitempty"`
	Enabled     *bool        `json:"enabled,omitempty"     yaml:"enabled,omitempty"`
	Trigger     *FlowTrigger `json:"trigger,omitempty"     yaml:"trigger,omitempty"`
	Steps       []FlowStep   `json:"steps,omitempty"       yaml:"steps,omitempty"`
}

// FlowRunRequest represents a request to execute a flow.
type FlowRunRequest struct {
	// Variables are the execution inputs.
	Variables map[string]interface{} `json:"variables,omitempty" yaml:"variables,omitempty"`
	// UseDurable selects durable execution. Nil defaults to true.
	UseDurable *bool `json:"useDurable,omitempty" yaml:"useDurable,omitempty"`
}

// Execution states.
const (
	ExecutionStatusQueued    = "queued"
	ExecutionStatusRunning   = "running"
	ExecutionStatusCompleted = "completed"
	ExecutionStatusFailed    = "failed"
	ExecutionStatusCancelled = "cancelled"
)

// Execution is a single run of a flow.
type Execution struct {
	Resource

	FlowID      string                 `json:"flowId"                yaml:"flowId"`
	Status      string                 `json:"status"                yaml:"status"`
	Durable     bool                   `json:"useDurable"            yaml:"useDurable"`
	Variables   map[string]interface{} `json:"variables,omitempty"   yaml:"variables,omitempty"`
	Results     map[string]interface{} `json:"results,omitempty"     yaml:"results,omitempty"`
	Error       string                 `json:"error,omitempty"       yaml:"error,omitempty"`
	StartedAt   *time.Time             `json:"startedAt,omitempty"   yaml:"startedAt,omitempty"`
	CompletedAt *time.Time             `json:"completedAt,omitempty" yaml:"completedAt,omitempty"`
}

// Tool is an integration definition the platform can invoke from a flow.
type Tool struct {
	Resource

	Name           string            `json:"name"                  yaml:"name"`
	Key            string            `json:"key"                   yaml:"key"`
	Description    string            `json:"description,omitempty" yaml:"description,omitempty"`
	OrganizationID string            `json:"orgId"                 yaml:"orgId"`
	BaseURL        string            `json:"baseUrl,omitempty"     yaml:"baseUrl,omitempty"`
	AuthType       string            `json:"authType,omitempty"    yaml:"authType,omitempty"`
	Headers        map[string]string `json:"headers,omitempty"     yaml:"headers,omitempty"`
}

// ToolCreateRequest represents a request to create a tool.
type ToolCreateRequest struct {
	Name        string            `json:"name"                  yaml:"name"`
	Key         string            `json:"key,omitempty"         yaml:"key,omitempty"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	BaseURL     string            `json:"baseUrl,omitempty"     yaml:"baseUrl,omitempty"`
	AuthType    string            `json:"authType,omitempty"    yaml:"authType,omitempty"`
	Headers     map[string]string `json:"headers,omitempty"     yaml:"headers,omitempty"`
}

// ToolUpdateRequest represents a request to update a tool. Nil fields are
// left unchanged.
type ToolUpdateRequest struct {
	Name        *string           `json:"name,omitempty"        yaml:"name,omitempty"`
	Description *string           `json:"description,omitempty" yaml:"description,omitempty"`
	BaseURL     *string           `json:"baseUrl,omitempty"     yaml:"baseUrl,omitempty"`
	AuthType    *string           `json:"authType,omitempty"    yaml:"authType,omitempty"`
	Headers     map[string]string `json:"headers,omitempty"     yaml:"headers,omitempty"`
}

// Action is a single invokable operation of a tool.
type Action struct {
	Resource

	ToolID      string                 `json:"toolId"                yaml:"toolId"`
	Name        string                 `json:"name"                  yaml:"name"`
	Key         string                 `json:"key"                   yaml:"key"`
	Description string                 `json:"description,omitempty" yaml:"description,omitempty"`
	Method      string                 `json:"method,omitempty"      yaml:"method,omitempty"`
	Endpoint    string                 `json:"endpoint,omitempty"    yaml:"endpoint,omitempty"`
	InputSchema map[string]interface{} `json:"inputSchema,omitempty" yaml:"inputSchema,omitempty"`
}

// ActionCreateRequest represents a request to create an action.
type ActionCreateRequest struct {
	ToolID      string                 `json:"toolId"                yaml:"toolId"`
	Name        string                 `json:"name"                  yaml:"name"`
	Key         string                 `json:"key,omitempty"         yaml:"key,omitempty"`
	Description string                 `json:"description,omitempty" yaml:"description,omitempty"`
	Method      string                 `json:"method,omitempty"      yaml:"method,omitempty"`
	Endpoint    string                 `json:"endpoint,omitempty"    yaml:"endpoint,omitempty"`
	InputSchema map[string]interface{} `json:"inputSchema,omitempty" yaml:"inputSchema,omitempty"`
}

// ActionUpdateRequest represents a request to update an action. Nil fields
// are left unchanged.
type ActionUpdateRequest struct {
	Name        *string                `json:"name,omitempty"        yaml:"name,omitempty"`
	Description *string                `json:"description,omitempty" yaml:"description,omitempty"`
	Method      *string                `json:"method,omitempty"      yaml:"method,omitempty"`
	Endpoint    *string                `json:"endpoint,omitempty"    yaml:"endpoint,omitempty"`
	InputSchema map[string]interface{} `json:"inputSchema,omitempty" yaml:"inputSchema,omitempty"`
}

// ActionExecuteRequest represents a request to execute an action directly.
type ActionExecuteRequest struct {
	Inputs map[string]interface{} `json:"inputs,omitempty" yaml:"inputs,omitempty"`
}

// ActionResult is the outcome of a direct action execution.
type ActionResult struct {
	ActionID   string                 `json:"actionId"         yaml:"actionId"`
	Status     string                 `json:"status"           yaml:"status"`
	StatusCode int                    `json:"statusCode"       yaml:"statusCode"`
	Output     map[string]interface{} `json:"output,omitempty" yaml:"output,omitempty"`
	Error      string                 `json:"error,omitempty"  yaml:"error,omitempty"`
}

// Webhook is an inbound event endpoint that triggers platform actions.
type Webhook struct {
	Resource

	Name           string `json:"name"             yaml:"name"`
	OrganizationID string `json:"orgId"            yaml:"orgId"`
	FlowID         string `json:"flowId,omitempty" yaml:"flowId,omitempty"`
	URL            string `json:"url"              yaml:"url"`
	Secret         string `json:"secret,omitempty" yaml:"secret,omitempty"`
	Enabled        bool   `json:"enabled"          yaml:"enabled"`
}

// WebhookCreateRequest represents a request to create a webhook.
type WebhookCreateRequest struct {
	Name   string `json:"name"             yaml:"name"`
	FlowID string `json:"flowId,omitempty" yaml:"flowId,omitempty"`
}

// Tool authentication types.
const (
	ToolAuthTypeAPIKey = "apiKey"
	ToolAuthTypeBasic  = "basic"
	ToolAuthTypeOAuth2 = "oauth2"
)

// ToolAuth is the stored credential configuration of a tool.
//
// Credential values are write-only: responses report whether the tool is
// configured, never the secrets themselves.
type ToolAuth struct {
	ToolID     string     `json:"toolId"              yaml:"toolId"`
	Type       string     `json:"type"                yaml:"type"`
	Configured bool       `json:"configured"          yaml:"configured"`
	Scopes     []string   `json:"scopes,omitempty"    yaml:"scopes,omitempty"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty" yaml:"updatedAt,omitempty"`
}

// ToolAuthUpsertRequest creates or replaces a tool's stored credentials.
type ToolAuthUpsertRequest struct {
	Type        string                 `json:"type"                  yaml:"type"`
	Credentials map[string]interface{} `json:"credentials,omitempty" yaml:"credentials,omitempty"`
	Scopes      []string               `json:"scopes,omitempty"      yaml:"scopes,omitempty"`
}

// OAuthInitiateRequest starts an OAuth authorization flow for a tool.
type OAuthInitiateRequest struct {
	ToolID      string   `json:"toolId"                yaml:"toolId"`
	RedirectURI string   `json:"redirectUri,omitempty" yaml:"redirectUri,omitempty"`
	Scopes      []string `json:"scopes,omitempty"      yaml:"scopes,omitempty"`
}

// OAuthInitiateResponse carries the authorization URL the end user must visit.
type OAuthInitiateResponse struct {
	AuthorizationURL string `json:"authorizationUrl" yaml:"authorizationUrl"`
	State            string `json:"state"            yaml:"state"`
}
