// Package tolstoy defines the public interfaces and types for the Tolstoy
// workflow-automation platform API client.
//
// The Client interface groups resource-specific clients (flows, executions,
// tools, actions, webhooks, tool authentication, OAuth) and exposes a raw
// escape-hatch handle for endpoints without a named helper. Construct a
// client with the pkg/tolstoyclient package:
//
//	client, err := tolstoyclient.New(&tolstoy.Config{
//		BaseURL:        "https://api.usetolstoy.com",
//		OrganizationID: "org-1",
//		AuthToken:      "t1",
//	})
//
// Every request issued by the client carries the tenant identity headers
// derived from the configuration (x-org-id, x-user-id, Authorization).
package tolstoy
