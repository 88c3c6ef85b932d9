package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/device42-community/d42-client/pkg/device42"
)

// NewRacksCommand creates the racks command group
func NewRacksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "racks",
		Aliases: []string{"rack"},
		Short:   "Manage racks",
	}

	cmd.AddCommand(newRacksListCommand())
	cmd.AddCommand(newRacksGetCommand())
	cmd.AddCommand(newRacksCreateCommand())
	cmd.AddCommand(newRacksDeleteCommand())

	return cmd
}

func newRacksListCommand() *cobra.Command {
	filter := &device42.RackFilter{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List racks",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			records, err := collectRecords(client.Racks().List(context.Background(), filter))
			if err != nil {
				return fmt.Errorf("failed to list racks: %w", err)
			}

			return renderRecords(records, []string{"rack_id", "name", "size", "room", "building"})
		},
	}

	cmd.Flags().StringVar(&filter.Name, "name", "", "filter by rack name")
	cmd.Flags().StringVar(&filter.Room, "room", "", "filter by room name")
	cmd.Flags().StringVar(&filter.Building, "building", "", "filter by building name")

	return cmd
}

func newRacksGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one rack",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid rack id %q: %w", args[0], err)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			record, err := client.Racks().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get rack: %w", err)
			}

			return outputResult(record)
		},
	}
}

func newRacksCreateCommand() *cobra.Command {
	rack := &device42.Rack{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create or update a rack",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			result, err := client.Racks().Create(context.Background(), rack)
			if err != nil {
				return fmt.Errorf("failed to create rack: %w", err)
			}

			return printMutationResult(result)
		},
	}

	cmd.Flags().StringVar(&rack.Name, "name", "", "rack name (required)")
	cmd.Flags().StringVar(&rack.Size, "size", "", "rack size in U")
	cmd.Flags().StringVar(&rack.Room, "room", "", "room name")
	cmd.Flags().StringVar(&rack.Building, "building", "", "building name")
	cmd.Flags().IntVar(&rack.RoomID, "room-id", 0, "room id")
	cmd.Flags().StringVar(&rack.Notes, "notes", "", "notes")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newRacksDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a rack",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid rack id %q: %w", args[0], err)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			result, err := client.Racks().Delete(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to delete rack: %w", err)
			}

			if !result.Deleted {
				return fmt.Errorf("rack %d was not deleted", result.ID)
			}

			fmt.Printf("Deleted rack %d\n", result.ID)

			return nil
		},
	}
}
