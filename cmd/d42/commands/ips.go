package commands

import (
	"context"
	"fmt"
	"net/netip"

	"github.com/spf13/cobra"

	"github.com/device42-community/d42-client/pkg/device42"
)

// NewIPsCommand creates the ips command group
func NewIPsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ips",
		Aliases: []string{"ip"},
		Short:   "Manage IP addresses",
	}

	cmd.AddCommand(newIPsCreateCommand())

	return cmd
}

func newIPsCreateCommand() *cobra.Command {
	var address string

	ip := &device42.IPAddress{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register or update an IP address",
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := netip.ParseAddr(address)
			if err != nil {
				return fmt.Errorf("invalid ip address %q: %w", address, err)
			}

			ip.Address = addr

			client, err := createClient()
			if err != nil {
				return err
			}

			result, err := client.IPs().Create(context.Background(), ip)
			if err != nil {
				return fmt.Errorf("failed to create ip address: %w", err)
			}

			return printMutationResult(result)
		},
	}

	cmd.Flags().StringVar(&address, "address", "", "IP address (required)")
	cmd.Flags().StringVar(&ip.Label, "label", "", "interface label")
	cmd.Flags().StringVar(&ip.Subnet, "subnet", "", "subnet name")
	cmd.Flags().StringVar(&ip.MacAddress, "mac", "", "MAC address to associate")
	cmd.Flags().StringVar(&ip.Device, "device", "", "device name to associate")
	cmd.Flags().StringVar(&ip.Type, "type", "", "address type (static, dhcp, reserved)")
	cmd.Flags().StringVar(&ip.Available, "available", "", "mark availability (yes or no)")
	cmd.Flags().StringVar(&ip.Tags, "tags", "", "comma-separated tags")
	_ = cmd.MarkFlagRequired("address")

	return cmd
}
