package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tolstoy-io/tolstoy-go/internal/constants"
	"github.com/tolstoy-io/tolstoy-go/pkg/tolstoy"
	"github.com/tolstoy-io/tolstoy-go/pkg/tolstoyclient"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// cliConfig is the persisted shape of ~/.tolstoy/config.yml.
type cliConfig struct {
	API   string `yaml:"api"`
	Token string `yaml:"token,omitempty"`
	Org   string `yaml:"org,omitempty"`
	User  string `yaml:"user,omitempty"`
}

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		apiEndpoint string
		token       string
		orgID       string
		userID      string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to a Tolstoy API endpoint",
		Long:  "Store an API endpoint and credentials for subsequent commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Get API endpoint
			if apiEndpoint == "" {
				apiEndpoint = viper.GetString("api")
			}

			if apiEndpoint == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("API endpoint: ")
				apiEndpoint, _ = reader.ReadString('\n')
				apiEndpoint = strings.TrimSpace(apiEndpoint)
			}

			if apiEndpoint == "" {
				return ErrAPIEndpointRequired
			}

			if token == "" {
				fmt.Print("Token (leave empty for none): ")

				byteToken, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("reading token: %w", err)
				}

				token = strings.TrimSpace(string(byteToken))

				fmt.Println()
			}

			// Verify the endpoint before persisting anything.
			client, err := tolstoyclient.New(&tolstoy.Config{
				BaseURL:        apiEndpoint,
				OrganizationID: orgID,
				UserID:         userID,
				AuthToken:      token,
			})
			if err != nil {
				return err
			}

			_, err = client.Flows().List(context.Background(), &tolstoy.ListOptions{Limit: 1})
			if err != nil {
				return fmt.Errorf("verifying endpoint: %w", err)
			}

			err = saveConfig(cliConfig{
				API:   apiEndpoint,
				Token: token,
				Org:   orgID,
				User:  userID,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(os.Stdout, "Logged in to %s\n", apiEndpoint)

			return nil
		},
	}

	cmd.Flags().StringVarP(&apiEndpoint, "api", "a", "", "API endpoint URL")
	cmd.Flags().StringVarP(&token, "token", "t", "", "authentication token")
	cmd.Flags().StringVar(&orgID, "org", "", "organization ID")
	cmd.Flags().StringVar(&userID, "user", "", "user ID")

	return cmd
}

// saveConfig persists the CLI configuration to ~/.tolstoy/config.yml.
func saveConfig(config cliConfig) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}

	configDir := filepath.Join(home, ".tolstoy")

	err = os.MkdirAll(configDir, constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	configPath := filepath.Join(configDir, "config.yml")

	err = os.WriteFile(configPath, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
