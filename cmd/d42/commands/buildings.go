package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/device42-community/d42-client/pkg/device42"
)

// NewBuildingsCommand creates the buildings command group
func NewBuildingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "buildings",
		Aliases: []string{"building"},
		Short:   "Manage buildings",
	}

	cmd.AddCommand(newBuildingsListCommand())
	cmd.AddCommand(newBuildingsCreateCommand())
	cmd.AddCommand(newBuildingsDeleteCommand())

	return cmd
}

func newBuildingsListCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List buildings",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			var filter *device42.BuildingFilter
			if name != "" {
				filter = &device42.BuildingFilter{Name: name}
			}

			records, err := collectRecords(client.Buildings().List(context.Background(), filter))
			if err != nil {
				return fmt.Errorf("failed to list buildings: %w", err)
			}

			return renderRecords(records, []string{"building_id", "name", "address", "notes"})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "filter by building name")

	return cmd
}

func newBuildingsCreateCommand() *cobra.Command {
	building := &device42.Building{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create or update a building",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			result, err := client.Buildings().Create(context.Background(), building)
			if err != nil {
				return fmt.Errorf("failed to create building: %w", err)
			}

			return printMutationResult(result)
		},
	}

	cmd.Flags().StringVar(&building.Name, "name", "", "building name (required)")
	cmd.Flags().StringVar(&building.Address, "address", "", "street address")
	cmd.Flags().StringVar(&building.ContactName, "contact-name", "", "contact name")
	cmd.Flags().StringVar(&building.ContactPhone, "contact-phone", "", "contact phone")
	cmd.Flags().StringVar(&building.Notes, "notes", "", "notes")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newBuildingsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a building",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid building id %q: %w", args[0], err)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			result, err := client.Buildings().Delete(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to delete building: %w", err)
			}

			if !result.Deleted {
				return fmt.Errorf("building %d was not deleted", result.ID)
			}

			fmt.Printf("Deleted building %d\n", result.ID)

			return nil
		},
	}
}
