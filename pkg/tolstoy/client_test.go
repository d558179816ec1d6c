package tolstoy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tolstoy-io/tolstoy-go/pkg/tolstoy"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestConfigHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		config   tolstoy.Config
		expected map[string]string
	}{
		{
			name:     "no optional fields",
			config:   tolstoy.Config{BaseURL: "https://api.example.com"},
			expected: map[string]string{},
		},
		{
			name:   "org only",
			config: tolstoy.Config{BaseURL: "https://api.example.com", OrganizationID: "org-1"},
			expected: map[string]string{
				"x-org-id": "org-1",
			},
		},
		{
			name:   "user only",
			config: tolstoy.Config{BaseURL: "https://api.example.com", UserID: "user-1"},
			expected: map[string]string{
				"x-user-id": "user-1",
			},
		},
		{
			name:   "token only",
			config: tolstoy.Config{BaseURL: "https://api.example.com", AuthToken: "t1"},
			expected: map[string]string{
				"Authorization": "Bearer t1",
			},
		},
		{
			name:   "org and user",
			config: tolstoy.Config{BaseURL: "https://api.example.com", OrganizationID: "org-1", UserID: "user-1"},
			expected: map[string]string{
				"x-org-id":  "org-1",
				"x-user-id": "user-1",
			},
		},
		{
			name:   "org and token",
			config: tolstoy.Config{BaseURL: "https://api.example.com", OrganizationID: "org-1", AuthToken: "t1"},
			expected: map[string]string{
				"x-org-id":      "org-1",
				"Authorization": "Bearer t1",
			},
		},
		{
			name:   "user and token",
			config: tolstoy.Config{BaseURL: "https://api.example.com", UserID: "user-1", AuthToken: "t1"},
			expected: map[string]string{
				"x-user-id":     "user-1",
				"Authorization": "Bearer t1",
			},
		},
		{
			name: "all fields",
			config: tolstoy.Config{
				BaseURL:        "https://api.example.com",
				OrganizationID: "org-1",
				UserID:         "user-1",
				AuthToken:      "t1",
			},
			expected: map[string]string{
				"x-org-id":      "org-1",
				"x-user-id":     "user-1",
				"Authorization": "Bearer t1",
			},
		},
		{
			name: "whitespace-only fields are absent",
			config: tolstoy.Config{
				BaseURL:        "https://api.example.com",
				OrganizationID: "  ",
				UserID:         "\t",
				AuthToken:      "t1",
			},
			expected: map[string]string{
				"Authorization": "Bearer t1",
			},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, testCase.config.Headers())
		})
	}
}

func TestConfigHeaders_Deterministic(t *testing.T) {
	t.Parallel()

	config := tolstoy.Config{
		BaseURL:        "https://api.example.com",
		OrganizationID: "org-1",
		AuthToken:      "t1",
	}

	first := config.Headers()
	second := config.Headers()

	assert.Equal(t, first, second)

	// Mutating one result must not affect a later derivation.
	first["x-org-id"] = "tampered"
	assert.Equal(t, second, config.Headers())
}

func TestConfigHeaders_ExampleScenario(t *testing.T) {
	t.Parallel()

	config := tolstoy.Config{
		BaseURL:        "https://api.example.com",
		OrganizationID: "org-1",
		AuthToken:      "t1",
	}

	headers := config.Headers()

	assert.Equal(t, map[string]string{
		"x-org-id":      "org-1",
		"Authorization": "Bearer t1",
	}, headers)
	assert.NotContains(t, headers, "x-user-id")
}
