package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/tolstoy-io/tolstoy-go/internal/constants"
	"github.com/tolstoy-io/tolstoy-go/pkg/tolstoy"
)

// NewToolsCommand creates the tools command group.
func NewToolsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tools",
		Aliases: []string{"tool"},
		Short:   "Manage tools",
		Long:    "Manage integration tools and their stored credentials",
	}

	cmd.AddCommand(newToolsListCommand())
	cmd.AddCommand(newToolsGetCommand())
	cmd.AddCommand(newToolsCreateCommand())
	cmd.AddCommand(newToolsDeleteCommand())
	cmd.AddCommand(newToolsAuthCommand())
	cmd.AddCommand(newToolsOAuthCommand())

	return cmd
}

func newToolsListCommand() *cobra.Command {
	var (
		page  int
		limit int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tools",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			tools, err := client.Tools().List(context.Background(), &tolstoy.ListOptions{
				Page:  page,
				Limit: limit,
			})
			if err != nil {
				return fmt.Errorf("listing tools: %w", err)
			}

			structured, err := renderStructured(tools)
			if err != nil || structured {
				return err
			}

			if len(tools) == 0 {
				_, _ = os.Stdout.WriteString("No tools found\n")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "Key", "Auth Type", "Base URL")

			for _, tool := range tools {
				authType := tool.AuthType
				if authType == "" {
					authType = NotAvailable
				}

				_ = table.Append(tool.ID, tool.Name, tool.Key, authType, tool.BaseURL)
			}

			return table.Render()
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().IntVar(&limit, "limit", constants.StandardPageSize, "results per page")

	return cmd
}

func newToolsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get TOOL_ID",
		Short: "Show a tool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			tool, err := client.Tools().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("getting tool: %w", err)
			}

			structured, err := renderStructured(tool)
			if err != nil || structured {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("ID", tool.ID)
			_ = table.Append("Name", tool.Name)
			_ = table.Append("Key", tool.Key)
			_ = table.Append("Description", tool.Description)
			_ = table.Append("Base URL", tool.BaseURL)
			_ = table.Append("Auth Type", tool.AuthType)
			_ = table.Append("Created", formatTime(tool.CreatedAt))

			return table.Render()
		},
	}
}

func newToolsCreateCommand() *cobra.Command {
	var (
		name        string
		key         string
		description string
		baseURL     string
		authType    string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a tool",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			tool, err := client.Tools().Create(context.Background(), &tolstoy.ToolCreateRequest{
				Name:        name,
				Key:         key,
				Description: description,
				BaseURL:     baseURL,
				AuthType:    authType,
			})
			if err != nil {
				return fmt.Errorf("creating tool: %w", err)
			}

			structured, err := renderStructured(tool)
			if err != nil || structured {
				return err
			}

			_, _ = fmt.Fprintf(os.Stdout, "Created tool '%s' with ID %s\n", tool.Name, tool.ID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "tool name (required)")
	cmd.Flags().StringVar(&key, "key", "", "tool key")
	cmd.Flags().StringVar(&description, "description", "", "tool description")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "tool API base URL")
	cmd.Flags().StringVar(&authType, "auth-type", "", "auth type (apiKey, basic, oauth2)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newToolsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete TOOL_ID",
		Short: "Delete a tool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			toolID := args[0]

			if !force {
				_, _ = fmt.Fprintf(os.Stdout, "Really delete tool '%s'? (y/N): ", toolID)

				var response string

				_, _ = fmt.Scanln(&response)
				if response != "y" && response != "Y" {
					_, _ = os.Stdout.WriteString("Cancelled\n")

					return nil
				}
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Tools().Delete(context.Background(), toolID)
			if err != nil {
				return fmt.Errorf("deleting tool: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully deleted tool '%s'\n", toolID)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}

// newToolsAuthCommand creates the tool credential subcommands.
func newToolsAuthCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage tool credentials",
		Long:  "Store, inspect, and remove the credentials a tool uses upstream",
	}

	cmd.AddCommand(newToolsAuthSetCommand())
	cmd.AddCommand(newToolsAuthGetCommand())
	cmd.AddCommand(newToolsAuthDeleteCommand())

	return cmd
}

func newToolsAuthSetCommand() *cobra.Command {
	var (
		authType    string
		credentials []string
		scopes      []string
	)

	cmd := &cobra.Command{
		Use:   "set TOOL_ID",
		Short: "Set tool credentials",
		Long:  "Create or replace the stored credentials for a tool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &tolstoy.ToolAuthUpsertRequest{
				Type:   authType,
				Scopes: scopes,
			}

			if len(credentials) > 0 {
				request.Credentials = make(map[string]interface{}, len(credentials))

				for _, credential := range credentials {
					key, value, found := strings.Cut(credential, "=")
					if !found {
						return fmt.Errorf("%w: %s", ErrInvalidVariable, credential)
					}

					request.Credentials[key] = value
				}
			}

			auth, err := client.ToolAuth().Upsert(context.Background(), args[0], request)
			if err != nil {
				return fmt.Errorf("setting tool auth: %w", err)
			}

			structured, err := renderStructured(auth)
			if err != nil || structured {
				return err
			}

			_, _ = fmt.Fprintf(os.Stdout, "Stored %s credentials for tool '%s'\n", auth.Type, auth.ToolID)

			return nil
		},
	}

	cmd.Flags().StringVar(&authType, "type", "", "auth type (apiKey, basic, oauth2) (required)")
	cmd.Flags().StringArrayVar(&credentials, "credential", nil, "credential value (key=value, repeatable)")
	cmd.Flags().StringSliceVar(&scopes, "scope", nil, "OAuth scope (repeatable)")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func newToolsAuthGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get TOOL_ID",
		Short: "Show tool credential status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			auth, err := client.ToolAuth().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("getting tool auth: %w", err)
			}

			structured, err := renderStructured(auth)
			if err != nil || structured {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("Tool", auth.ToolID)
			_ = table.Append("Type", auth.Type)
			_ = table.Append("Configured", formatBool(auth.Configured))
			_ = table.Append("Scopes", strings.Join(auth.Scopes, ", "))
			_ = table.Append("Updated", formatTimePtr(auth.UpdatedAt))

			return table.Render()
		},
	}
}

func newToolsAuthDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete TOOL_ID",
		Short: "Remove tool credentials",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.ToolAuth().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("deleting tool auth: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Removed credentials for tool '%s'\n", args[0])

			return nil
		},
	}
}

// newToolsOAuthCommand creates the OAuth initiation subcommand.
func newToolsOAuthCommand() *cobra.Command {
	var (
		redirectURI string
		scopes      []string
	)

	cmd := &cobra.Command{
		Use:   "oauth TOOL_ID",
		Short: "Start an OAuth flow for a tool",
		Long:  "Request an authorization URL the end user must visit to connect the tool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			initiate, err := client.OAuth().Initiate(context.Background(), &tolstoy.OAuthInitiateRequest{
				ToolID:      args[0],
				RedirectURI: redirectURI,
				Scopes:      scopes,
			})
			if err != nil {
				return fmt.Errorf("initiating oauth flow: %w", err)
			}

			structured, err := renderStructured(initiate)
			if err != nil || structured {
				return err
			}

			_, _ = fmt.Fprintf(os.Stdout, "Open this URL to authorize the tool:\n%s\n", initiate.AuthorizationURL)

			return nil
		},
	}

	cmd.Flags().StringVar(&redirectURI, "redirect-uri", "", "redirect URI after authorization")
	cmd.Flags().StringSliceVar(&scopes, "scope", nil, "OAuth scope (repeatable)")

	return cmd
}
