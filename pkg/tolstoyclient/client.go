package tolstoyclient

import (
	"strings"

	"github.com/tolstoy-io/tolstoy-go/internal/client"
	"github.com/tolstoy-io/tolstoy-go/pkg/tolstoy"
)

// New creates a new Tolstoy API client from a configuration object.
//
// Returns *tolstoy.ConfigurationError if the base URL is missing or empty.
func New(config *tolstoy.Config) (tolstoy.Client, error) {
	if config == nil {
		return nil, &tolstoy.ConfigurationError{Message: tolstoy.ErrConfigRequired.Error()}
	}

	normalized := *config
	normalized.BaseURL = normalizeBaseURL(config.BaseURL)

	if normalized.BaseURL == "" {
		return nil, &tolstoy.ConfigurationError{Message: tolstoy.ErrBaseURLRequired.Error()}
	}

	return client.New(&normalized)
}

// NewWithCredentials is the legacy positional construction shape. It is
// equivalent to New with the same field values; empty strings leave the
// corresponding headers out.
func NewWithCredentials(baseURL, organizationID, userID, authToken string) (tolstoy.Client, error) {
	return New(&tolstoy.Config{
		BaseURL:        baseURL,
		OrganizationID: organizationID,
		UserID:         userID,
		AuthToken:      authToken,
	})
}

// NewWithToken creates a new client with a base URL and bearer token only.
func NewWithToken(baseURL, authToken string) (tolstoy.Client, error) {
	return New(&tolstoy.Config{
		BaseURL:   baseURL,
		AuthToken: authToken,
	})
}

// normalizeBaseURL trims a trailing slash and defaults the scheme to https.
func normalizeBaseURL(baseURL string) string {
	normalized := strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	if normalized == "" {
		return ""
	}

	if !strings.HasPrefix(normalized, "http://") && !strings.HasPrefix(normalized, "https://") {
		normalized = "https://" + normalized
	}

	return normalized
}
