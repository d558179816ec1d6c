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

// NewActionsCommand creates the actions command group.
func NewActionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "actions",
		Aliases: []string{"action"},
		Short:   "Manage actions",
		Long:    "List, inspect, and execute tool actions",
	}

	cmd.AddCommand(newActionsListCommand())
	cmd.AddCommand(newActionsGetCommand())
	cmd.AddCommand(newActionsExecuteCommand())

	return cmd
}

func newActionsListCommand() *cobra.Command {
	var (
		page  int
		limit int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List actions",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			actions, err := client.Actions().List(context.Background(), &tolstoy.ListOptions{
				Page:  page,
				Limit: limit,
			})
			if err != nil {
				return fmt.Errorf("listing actions: %w", err)
			}

			structured, err := renderStructured(actions)
			if err != nil || structured {
				return err
			}

			if len(actions) == 0 {
				_, _ = os.Stdout.WriteString("No actions found\n")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Tool", "Name", "Key", "Method", "Endpoint")

			for _, action := range actions {
				_ = table.Append(action.ID, action.ToolID, action.Name, action.Key,
					action.Method, action.Endpoint)
			}

			return table.Render()
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().IntVar(&limit, "limit", constants.StandardPageSize, "results per page")

	return cmd
}

func newActionsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ACTION_ID",
		Short: "Show an action",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			action, err := client.Actions().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("getting action: %w", err)
			}

			structured, err := renderStructured(action)
			if err != nil || structured {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("ID", action.ID)
			_ = table.Append("Tool", action.ToolID)
			_ = table.Append("Name", action.Name)
			_ = table.Append("Key", action.Key)
			_ = table.Append("Description", action.Description)
			_ = table.Append("Method", action.Method)
			_ = table.Append("Endpoint", action.Endpoint)

			return table.Render()
		},
	}
}

func newActionsExecuteCommand() *cobra.Command {
	var inputs []string

	cmd := &cobra.Command{
		Use:   "execute ACTION_ID",
		Short: "Execute an action",
		Long:  "Invoke a single tool action directly, outside any flow",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &tolstoy.ActionExecuteRequest{}

			if len(inputs) > 0 {
				request.Inputs = make(map[string]interface{}, len(inputs))

				for _, input := range inputs {
					key, value, found := strings.Cut(input, "=")
					if !found {
						return fmt.Errorf("%w: %s", ErrInvalidVariable, input)
					}

					request.Inputs[key] = value
				}
			}

			result, err := client.Actions().Execute(context.Background(), args[0], request)
			if err != nil {
				return fmt.Errorf("executing action: %w", err)
			}

			structured, err := renderStructured(result)
			if err != nil || structured {
				return err
			}

			_, _ = fmt.Fprintf(os.Stdout, "Action %s finished with status '%s' (HTTP %d)\n",
				result.ActionID, result.Status, result.StatusCode)

			if result.Error != "" {
				_, _ = fmt.Fprintf(os.Stdout, "Error: %s\n", result.Error)
			}

			return nil
		},
	}

	cmd.Flags().StringArrayVar(&inputs, "input", nil, "action input (key=value, repeatable)")

	return cmd
}
