package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/tolstoy-io/tolstoy-go/internal/constants"
	"github.com/tolstoy-io/tolstoy-go/pkg/tolstoy"
)

// NewWebhooksCommand creates the webhooks command group.
func NewWebhooksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "webhooks",
		Aliases: []string{"webhook", "hooks"},
		Short:   "Manage webhooks",
		Long:    "Manage inbound webhook endpoints that trigger flows",
	}

	cmd.AddCommand(newWebhooksListCommand())
	cmd.AddCommand(newWebhooksGetCommand())
	cmd.AddCommand(newWebhooksCreateCommand())
	cmd.AddCommand(newWebhooksDeleteCommand())

	return cmd
}

func newWebhooksListCommand() *cobra.Command {
	var (
		page  int
		limit int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List webhooks",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			webhooks, err := client.Webhooks().List(context.Background(), &tolstoy.ListOptions{
				Page:  page,
				Limit: limit,
			})
			if err != nil {
				return fmt.Errorf("listing webhooks: %w", err)
			}

			structured, err := renderStructured(webhooks)
			if err != nil || structured {
				return err
			}

			if len(webhooks) == 0 {
				_, _ = os.Stdout.WriteString("No webhooks found\n")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "Flow", "Enabled", "Secret")

			for _, webhook := range webhooks {
				_ = table.Append(webhook.ID, webhook.Name, webhook.FlowID,
					formatBool(webhook.Enabled), maskSecret(webhook.Secret))
			}

			return table.Render()
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().IntVar(&limit, "limit", constants.StandardPageSize, "results per page")

	return cmd
}

func newWebhooksGetCommand() *cobra.Command {
	var showSecret bool

	cmd := &cobra.Command{
		Use:   "get WEBHOOK_ID",
		Short: "Show a webhook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			webhook, err := client.Webhooks().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("getting webhook: %w", err)
			}

			structured, err := renderStructured(webhook)
			if err != nil || structured {
				return err
			}

			secret := maskSecret(webhook.Secret)
			if showSecret {
				secret = webhook.Secret
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("ID", webhook.ID)
			_ = table.Append("Name", webhook.Name)
			_ = table.Append("Flow", webhook.FlowID)
			_ = table.Append("URL", webhook.URL)
			_ = table.Append("Secret", secret)
			_ = table.Append("Enabled", formatBool(webhook.Enabled))
			_ = table.Append("Created", formatTime(webhook.CreatedAt))

			return table.Render()
		},
	}

	cmd.Flags().BoolVar(&showSecret, "show-secret", false, "print the signing secret in table output")

	return cmd
}

func newWebhooksCreateCommand() *cobra.Command {
	var (
		name   string
		flowID string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a webhook",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			webhook, err := client.Webhooks().Create(context.Background(), &tolstoy.WebhookCreateRequest{
				Name:   name,
				FlowID: flowID,
			})
			if err != nil {
				return fmt.Errorf("creating webhook: %w", err)
			}

			structured, err := renderStructured(webhook)
			if err != nil || structured {
				return err
			}

			_, _ = fmt.Fprintf(os.Stdout, "Created webhook '%s' with ID %s\n", webhook.Name, webhook.ID)
			_, _ = fmt.Fprintf(os.Stdout, "Endpoint: %s\n", webhook.URL)

			// The secret is only returned on creation, so print it once.
			if webhook.Secret != "" {
				_, _ = fmt.Fprintf(os.Stdout, "Signing secret: %s\n", webhook.Secret)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "webhook name (required)")
	cmd.Flags().StringVar(&flowID, "flow", "", "flow to trigger")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newWebhooksDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete WEBHOOK_ID",
		Short: "Delete a webhook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			webhookID := args[0]

			if !force {
				_, _ = fmt.Fprintf(os.Stdout, "Really delete webhook '%s'? (y/N): ", webhookID)

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

			err = client.Webhooks().Delete(context.Background(), webhookID)
			if err != nil {
				return fmt.Errorf("deleting webhook: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully deleted webhook '%s'\n", webhookID)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}
