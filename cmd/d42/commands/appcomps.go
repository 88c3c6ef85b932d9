package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/device42-community/d42-client/pkg/device42"
)

// NewAppCompsCommand creates the application components command group
func NewAppCompsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "appcomps",
		Aliases: []string{"appcomp"},
		Short:   "Manage application components",
	}

	cmd.AddCommand(newAppCompsListCommand())
	cmd.AddCommand(newAppCompsCreateCommand())

	return cmd
}

func newAppCompsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List application components",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			records, err := collectRecords(client.AppComponents().List(context.Background()))
			if err != nil {
				return fmt.Errorf("failed to list application components: %w", err)
			}

			return renderRecords(records, []string{"appcomp_id", "name", "device", "group_owner"})
		},
	}
}

func newAppCompsCreateCommand() *cobra.Command {
	component := &device42.AppComponent{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create or update an application component",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			result, err := client.AppComponents().Create(context.Background(), component)
			if err != nil {
				return fmt.Errorf("failed to create application component: %w", err)
			}

			return printMutationResult(result)
		},
	}

	cmd.Flags().StringVar(&component.Name, "name", "", "component name (required)")
	cmd.Flags().StringVar(&component.Device, "device", "", "device the component runs on")
	cmd.Flags().StringVar(&component.GroupOwner, "group-owner", "", "owning admin group")
	cmd.Flags().StringVar(&component.What, "what", "", "impact of losing the component")
	cmd.Flags().StringVar(&component.DependsOn, "depends-on", "", "comma-separated dependency names")
	cmd.Flags().StringVar(&component.Dependents, "dependents", "", "comma-separated dependent names")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
