//go:build integration

package integration

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/tolstoy-io/tolstoy-go/pkg/tolstoy"
	"github.com/tolstoy-io/tolstoy-go/pkg/tolstoyclient"
)

// TestConfig carries the environment-provided settings for integration runs.
type TestConfig struct {
	APIEndpoint    string
	AuthToken      string
	OrganizationID string
	UserID         string
}

// LoadTestConfig reads the integration settings from the environment.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		APIEndpoint:    os.Getenv("TOLSTOY_API"),
		AuthToken:      os.Getenv("TOLSTOY_TOKEN"),
		OrganizationID: os.Getenv("TOLSTOY_ORG"),
		UserID:         os.Getenv("TOLSTOY_USER"),
	}
}

// SkipIfMissingConfig skips the test when no endpoint is configured.
func (c *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if c.APIEndpoint == "" {
		t.Skip("TOLSTOY_API not set, skipping integration test")
	}
}

// NewClient creates a client from the test configuration.
func (c *TestConfig) NewClient(t *testing.T) tolstoy.Client {
	t.Helper()

	client, err := tolstoyclient.New(&tolstoy.Config{
		BaseURL:        c.APIEndpoint,
		OrganizationID: c.OrganizationID,
		UserID:         c.UserID,
		AuthToken:      c.AuthToken,
	})
	if err != nil {
		t.Fatalf("creating integration client: %v", err)
	}

	return client
}

// GenerateTestName returns a unique resource name for a test run.
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}
