package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/device42-community/d42-client/pkg/device42"
)

// NewCustomersCommand creates the customers command group
func NewCustomersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "customers",
		Aliases: []string{"customer"},
		Short:   "Manage customers",
	}

	cmd.AddCommand(newCustomersCreateCommand())

	return cmd
}

func newCustomersCreateCommand() *cobra.Command {
	customer := &device42.Customer{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create or update a customer",
		Long:  "Create a customer, or update the one matching --name. Use --new-name to rename.",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			result, err := client.Customers().Create(context.Background(), customer)
			if err != nil {
				return fmt.Errorf("failed to create customer: %w", err)
			}

			return printMutationResult(result)
		},
	}

	cmd.Flags().StringVar(&customer.Name, "name", "", "customer name (required)")
	cmd.Flags().StringVar(&customer.ContactInfo, "contact-info", "", "contact information")
	cmd.Flags().StringVar(&customer.Notes, "notes", "", "notes")
	cmd.Flags().StringVar(&customer.Type, "type", "", "customer or department")
	cmd.Flags().StringVar(&customer.NewName, "new-name", "", "rename the customer")
	cmd.Flags().StringVar(&customer.Groups, "groups", "", "admin groups, e.g. \"Prod_East:no,Corp:yes\"")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
