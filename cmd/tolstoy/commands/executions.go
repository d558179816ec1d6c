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

// NewExecutionsCommand creates the executions command group.
func NewExecutionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "executions",
		Aliases: []string{"execution", "execs"},
		Short:   "Inspect flow executions",
	}

	cmd.AddCommand(newExecutionsListCommand())
	cmd.AddCommand(newExecutionsGetCommand())

	return cmd
}

func newExecutionsListCommand() *cobra.Command {
	var (
		flowID string
		status string
		page   int
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List executions",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			executions, err := client.Executions().List(context.Background(), &tolstoy.ExecutionListOptions{
				ListOptions: tolstoy.ListOptions{Page: page, Limit: limit},
				FlowID:      flowID,
				Status:      status,
			})
			if err != nil {
				return fmt.Errorf("listing executions: %w", err)
			}

			structured, err := renderStructured(executions)
			if err != nil || structured {
				return err
			}

			if len(executions) == 0 {
				_, _ = os.Stdout.WriteString("No executions found\n")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Flow", "Status", "Durable", "Started", "Completed")

			for _, execution := range executions {
				_ = table.Append(execution.ID, execution.FlowID, execution.Status,
					formatBool(execution.Durable),
					formatTimePtr(execution.StartedAt), formatTimePtr(execution.CompletedAt))
			}

			return table.Render()
		},
	}

	cmd.Flags().StringVar(&flowID, "flow", "", "filter by flow ID")
	cmd.Flags().StringVar(&status, "status", "", "filter by status (queued, running, completed, failed, cancelled)")
	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().IntVar(&limit, "limit", constants.StandardPageSize, "results per page")

	return cmd
}

func newExecutionsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get EXECUTION_ID",
		Short: "Show an execution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			execution, err := client.Executions().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("getting execution: %w", err)
			}

			structured, err := renderStructured(execution)
			if err != nil || structured {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("ID", execution.ID)
			_ = table.Append("Flow", execution.FlowID)
			_ = table.Append("Status", execution.Status)
			_ = table.Append("Durable", formatBool(execution.Durable))
			_ = table.Append("Started", formatTimePtr(execution.StartedAt))
			_ = table.Append("Completed", formatTimePtr(execution.CompletedAt))

			if execution.Error != "" {
				_ = table.Append("Error", execution.Error)
			}

			return table.Render()
		},
	}
}
