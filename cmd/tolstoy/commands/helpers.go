package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
	"github.com/tolstoy-io/tolstoy-go/internal/constants"
	"github.com/tolstoy-io/tolstoy-go/pkg/tolstoy"
	"github.com/tolstoy-io/tolstoy-go/pkg/tolstoyclient"
	"gopkg.in/yaml.v3"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = constants.NotAvailable
	Masked       = constants.MaskedSecret

	// Output formats.
	OutputFormatJSON = constants.FormatJSON
	OutputFormatYAML = constants.FormatYAML

	// JSON formatting.
	defaultJSONIndent = "  "
)

// Common static errors used throughout the commands package.
var (
	ErrAPIEndpointRequired = errors.New("API endpoint is required (use --api, TOLSTOY_API, or 'tolstoy login')")
	ErrFlowIDRequired      = errors.New("flow ID is required")
	ErrFlowDefRequired     = errors.New("flow definition file is required")
	ErrToolIDRequired      = errors.New("tool ID is required")
	ErrActionIDRequired    = errors.New("action ID is required")
	ErrWebhookIDRequired   = errors.New("webhook ID is required")
	ErrInvalidVariable     = errors.New("invalid variable format, expected key=value")
)

// CreateClient creates a Tolstoy client from the effective configuration.
func CreateClient() (tolstoy.Client, error) {
	apiEndpoint := viper.GetString("api")
	if apiEndpoint == "" {
		return nil, ErrAPIEndpointRequired
	}

	config := &tolstoy.Config{
		BaseURL:        apiEndpoint,
		OrganizationID: viper.GetString("org"),
		UserID:         viper.GetString("user"),
		AuthToken:      viper.GetString("token"),
		Debug:          viper.GetBool("verbose"),
	}

	client, err := tolstoyclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return client, nil
}

// renderJSON writes data to stdout as indented JSON.
func renderJSON(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", defaultJSONIndent)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding to JSON: %w", err)
	}

	return nil
}

// renderYAML writes data to stdout as YAML.
func renderYAML(data interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding to YAML: %w", err)
	}

	return encoder.Close()
}

// renderStructured renders data as JSON or YAML depending on the configured
// output format. Returns false when the format is table and the caller should
// render a table instead.
func renderStructured(data interface{}) (bool, error) {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return true, renderJSON(data)
	case OutputFormatYAML:
		return true, renderYAML(data)
	default:
		return false, nil
	}
}

// formatTime renders a timestamp for table output.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return NotAvailable
	}

	return t.Format(time.RFC3339)
}

// formatTimePtr renders an optional timestamp for table output.
func formatTimePtr(t *time.Time) string {
	if t == nil {
		return NotAvailable
	}

	return formatTime(*t)
}

// formatBool renders a boolean for table output.
func formatBool(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}

// maskSecret hides credential material in table output.
func maskSecret(secret string) string {
	if secret == "" {
		return NotAvailable
	}

	return Masked
}
