package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/device42-community/d42-client/pkg/device42"
)

// NewDevicesCommand creates the devices command group
func NewDevicesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "devices",
		Aliases: []string{"device"},
		Short:   "Browse devices",
	}

	cmd.AddCommand(newDevicesListCommand())
	cmd.AddCommand(newDevicesGetCommand())
	cmd.AddCommand(newDevicesFindCommand())

	return cmd
}

func newDevicesListCommand() *cobra.Command {
	var (
		filter      device42.DeviceFilter
		detailed    bool
		includeCols string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List devices",
		Long:  "List devices. With --detailed the /devices/all endpoint is used, which returns additional columns.",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			var it *device42.RecordIterator
			if detailed {
				it = client.Devices().ListAll(ctx, includeCols)
			} else {
				it = client.Devices().List(ctx, &filter)
			}

			records, err := collectRecords(it)
			if err != nil {
				return fmt.Errorf("failed to list devices: %w", err)
			}

			return renderRecords(records, []string{"device_id", "name", "type", "os", "service_level"})
		},
	}

	cmd.Flags().StringVar(&filter.Name, "name", "", "filter by device name")
	cmd.Flags().StringVar(&filter.Type, "type", "", "filter by device type")
	cmd.Flags().StringVar(&filter.OS, "os", "", "filter by operating system")
	cmd.Flags().StringVar(&filter.ServiceLevel, "service-level", "", "filter by service level")
	cmd.Flags().StringVar(&filter.Tags, "tags", "", "filter by tags")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "use the detailed /devices/all listing")
	cmd.Flags().StringVar(&includeCols, "include-cols", "", "comma-separated columns for --detailed")

	return cmd
}

func newDevicesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid device id %q: %w", args[0], err)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			record, err := client.Devices().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get device: %w", err)
			}

			return outputResult(record)
		},
	}
}

func newDevicesFindCommand() *cobra.Command {
	var refType string

	cmd := &cobra.Command{
		Use:   "find ID",
		Short: "Find devices via another object's id",
		Long:  "Find devices associated with a customer, name, serial, or asset id.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid id %q: %w", args[0], err)
			}

			switch device42.DeviceRefType(refType) {
			case device42.DeviceRefCustomer, device42.DeviceRefName, device42.DeviceRefSerial, device42.DeviceRefAsset:
			default:
				return fmt.Errorf("invalid ref type %q (customer, name, serial, asset)", refType)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			records, err := collectRecords(client.Devices().ListByRef(context.Background(), device42.DeviceRefType(refType), id))
			if err != nil {
				return fmt.Errorf("failed to find devices: %w", err)
			}

			return renderRecords(records, []string{"device_id", "name", "type", "os"})
		},
	}

	cmd.Flags().StringVar(&refType, "by", "customer", "reference type (customer, name, serial, asset)")

	return cmd
}
