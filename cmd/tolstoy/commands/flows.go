package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/tolstoy-io/tolstoy-go/internal/constants"
	"github.com/tolstoy-io/tolstoy-go/pkg/tolstoy"
	"gopkg.in/yaml.v3"
)

// NewFlowsCommand creates the flows command group.
func NewFlowsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "flows",
		Aliases: []string{"flow"},
		Short:   "Manage flows",
		Long:    "List, inspect, create, run, and delete workflow definitions",
	}

	cmd.AddCommand(newFlowsListCommand())
	cmd.AddCommand(newFlowsGetCommand())
	cmd.AddCommand(newFlowsCreateCommand())
	cmd.AddCommand(newFlowsRunCommand())
	cmd.AddCommand(newFlowsDeleteCommand())

	return cmd
}

func newFlowsListCommand() *cobra.Command {
	var (
		page  int
		limit int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List flows",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			flows, err := client.Flows().List(context.Background(), &tolstoy.ListOptions{
				Page:  page,
				Limit: limit,
			})
			if err != nil {
				return fmt.Errorf("listing flows: %w", err)
			}

			structured, err := renderStructured(flows)
			if err != nil || structured {
				return err
			}

			if len(flows) == 0 {
				_, _ = os.Stdout.WriteString("No flows found\n")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "Version", "Enabled", "Updated")

			for _, flow := range flows {
				_ = table.Append(flow.ID, flow.Name, strconv.Itoa(flow.Version),
					formatBool(flow.Enabled), formatTime(flow.UpdatedAt))
			}

			return table.Render()
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().IntVar(&limit, "limit", constants.StandardPageSize, "results per page")

	return cmd
}

func newFlowsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get FLOW_ID",
		Short: "Show a flow",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			flow, err := client.Flows().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("getting flow: %w", err)
			}

			structured, err := renderStructured(flow)
			if err != nil || structured {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("ID", flow.ID)
			_ = table.Append("Name", flow.Name)
			_ = table.Append("Description", flow.Description)
			_ = table.Append("Version", strconv.Itoa(flow.Version))
			_ = table.Append("Enabled", formatBool(flow.Enabled))
			_ = table.Append("Steps", strconv.Itoa(len(flow.Steps)))
			_ = table.Append("Created", formatTime(flow.CreatedAt))
			_ = table.Append("Updated", formatTime(flow.UpdatedAt))

			return table.Render()
		},
	}
}

func newFlowsCreateCommand() *cobra.Command {
	var fromFile string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a flow",
		Long:  "Create a flow from a YAML definition file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if fromFile == "" {
				return fmt.Errorf("%w: use --from-file", ErrFlowDefRequired)
			}

			data, err := os.ReadFile(fromFile)
			if err != nil {
				return fmt.Errorf("reading flow definition: %w", err)
			}

			var request tolstoy.FlowCreateRequest

			err = yaml.Unmarshal(data, &request)
			if err != nil {
				return fmt.Errorf("parsing flow definition: %w", err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			flow, err := client.Flows().Create(context.Background(), &request)
			if err != nil {
				return fmt.Errorf("creating flow: %w", err)
			}

			structured, err := renderStructured(flow)
			if err != nil || structured {
				return err
			}

			_, _ = fmt.Fprintf(os.Stdout, "Created flow '%s' with ID %s\n", flow.Name, flow.ID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&fromFile, "from-file", "f", "", "YAML flow definition file (required)")
	_ = cmd.MarkFlagRequired("from-file")

	return cmd
}

func newFlowsRunCommand() *cobra.Command {
	var (
		variables  []string
		nonDurable bool
	)

	cmd := &cobra.Command{
		Use:   "run FLOW_ID",
		Short: "Run a flow",
		Long:  "Trigger an execution of a flow, durable by default",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &tolstoy.FlowRunRequest{}

			if len(variables) > 0 {
				request.Variables = make(map[string]interface{}, len(variables))

				for _, variable := range variables {
					key, value, found := strings.Cut(variable, "=")
					if !found {
						return fmt.Errorf("%w: %s", ErrInvalidVariable, variable)
					}

					request.Variables[key] = value
				}
			}

			if nonDurable {
				durable := false
				request.UseDurable = &durable
			}

			execution, err := client.Flows().Run(context.Background(), args[0], request)
			if err != nil {
				return fmt.Errorf("running flow: %w", err)
			}

			structured, err := renderStructured(execution)
			if err != nil || structured {
				return err
			}

			_, _ = fmt.Fprintf(os.Stdout, "Started execution %s (status: %s)\n", execution.ID, execution.Status)
			_, _ = fmt.Fprintf(os.Stdout, "Monitor with: tolstoy executions get %s\n", execution.ID)

			return nil
		},
	}

	cmd.Flags().StringArrayVar(&variables, "var", nil, "execution variable (key=value, repeatable)")
	cmd.Flags().BoolVar(&nonDurable, "non-durable", false, "run without durable execution")

	return cmd
}

func newFlowsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete FLOW_ID",
		Short: "Delete a flow",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flowID := args[0]

			if !force {
				_, _ = fmt.Fprintf(os.Stdout, "Really delete flow '%s'? (y/N): ", flowID)

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

			err = client.Flows().Delete(context.Background(), flowID)
			if err != nil {
				return fmt.Errorf("deleting flow: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully deleted flow '%s'\n", flowID)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}
