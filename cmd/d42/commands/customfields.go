package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/device42-community/d42-client/pkg/device42"
)

// NewCustomFieldsCommand creates the custom fields command group
func NewCustomFieldsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "custom-fields",
		Aliases: []string{"cf"},
		Short:   "Update custom fields on objects",
	}

	cmd.AddCommand(newCustomFieldsUpdateCommand())

	return cmd
}

func newCustomFieldsUpdateCommand() *cobra.Command {
	var resource string

	field := &device42.CustomField{}

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Set one custom key/value pair",
		Long:  "Set one custom key/value pair on the object named by --resource and --id, e.g. --resource serviceinstance.",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			result, err := client.CustomFields().Update(context.Background(), resource, field)
			if err != nil {
				return fmt.Errorf("failed to update custom field: %w", err)
			}

			return printMutationResult(result)
		},
	}

	cmd.Flags().StringVar(&resource, "resource", "", "object family, e.g. device, serviceinstance (required)")
	cmd.Flags().IntVar(&field.ID, "id", 0, "object id (required)")
	cmd.Flags().StringVar(&field.Key, "key", "", "custom field name (required)")
	cmd.Flags().StringVar(&field.Value, "value", "", "custom field value")
	_ = cmd.MarkFlagRequired("resource")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}
