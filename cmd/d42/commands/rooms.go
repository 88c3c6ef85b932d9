package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/device42-community/d42-client/pkg/device42"
)

// NewRoomsCommand creates the rooms command group
func NewRoomsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rooms",
		Aliases: []string{"room"},
		Short:   "Manage rooms",
	}

	cmd.AddCommand(newRoomsListCommand())
	cmd.AddCommand(newRoomsGetCommand())
	cmd.AddCommand(newRoomsCreateCommand())
	cmd.AddCommand(newRoomsDeleteCommand())

	return cmd
}

func newRoomsListCommand() *cobra.Command {
	filter := &device42.RoomFilter{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List rooms",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			records, err := collectRecords(client.Rooms().List(context.Background(), filter))
			if err != nil {
				return fmt.Errorf("failed to list rooms: %w", err)
			}

			return renderRecords(records, []string{"room_id", "name", "building", "notes"})
		},
	}

	cmd.Flags().StringVar(&filter.Name, "name", "", "filter by room name")
	cmd.Flags().StringVar(&filter.Building, "building", "", "filter by building name")
	cmd.Flags().StringVar(&filter.BuildingID, "building-id", "", "filter by building id")

	return cmd
}

func newRoomsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid room id %q: %w", args[0], err)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			record, err := client.Rooms().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get room: %w", err)
			}

			return outputResult(record)
		},
	}
}

func newRoomsCreateCommand() *cobra.Command {
	room := &device42.Room{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create or update a room",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			result, err := client.Rooms().Create(context.Background(), room)
			if err != nil {
				return fmt.Errorf("failed to create room: %w", err)
			}

			return printMutationResult(result)
		},
	}

	cmd.Flags().StringVar(&room.Name, "name", "", "room name (required)")
	cmd.Flags().IntVar(&room.BuildingID, "building-id", 0, "building id")
	cmd.Flags().StringVar(&room.Notes, "notes", "", "notes")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newRoomsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid room id %q: %w", args[0], err)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			result, err := client.Rooms().Delete(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to delete room: %w", err)
			}

			if !result.Deleted {
				return fmt.Errorf("room %d was not deleted", result.ID)
			}

			fmt.Printf("Deleted room %d\n", result.ID)

			return nil
		},
	}
}
