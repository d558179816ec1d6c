package tolstoy

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Request represents a raw request to the platform API.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response represents a raw platform API response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// RawClient is the generic verb surface of the underlying API handle.
//
// It carries the same base URL and tenant header map as the named resource
// clients, so any endpoint without a named helper can be called with the
// caller's identity already applied.
type RawClient interface {
	Do(ctx context.Context, req *Request) (*Response, error)
	Get(ctx context.Context, path string, query url.Values) (*Response, error)
	Post(ctx context.Context, path string, body interface{}) (*Response, error)
	Put(ctx context.Context, path string, body interface{}) (*Response, error)
	Patch(ctx context.Context, path string, body interface{}) (*Response, error)
	Delete(ctx context.Context, path string) (*Response, error)
}

// ListOptions are forwarded verbatim as query parameters on list endpoints.
type ListOptions struct {
	Page  int
	Limit int
}

// ToValues converts the options to URL query values.
func (o *ListOptions) ToValues() url.Values {
	values := url.Values{}
	if o == nil {
		return values
	}

	if o.Page > 0 {
		values.Set("page", strconv.Itoa(o.Page))
	}

	if o.Limit > 0 {
		values.Set("limit", strconv.Itoa(o.Limit))
	}

	return values
}

// ExecutionListOptions filter execution listings.
type ExecutionListOptions struct {
	ListOptions

	// FlowID restricts results to executions of one flow.
	FlowID string
	// Status restricts results to executions in one state.
	Status string
}

// ToValues converts the options to URL query values.
func (o *ExecutionListOptions) ToValues() url.Values {
	if o == nil {
		return url.Values{}
	}

	values := o.ListOptions.ToValues()

	if o.FlowID != "" {
		values.Set("flowId", o.FlowID)
	}

	if o.Status != "" {
		values.Set("status", o.Status)
	}

	return values
}
