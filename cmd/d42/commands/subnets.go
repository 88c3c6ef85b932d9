package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/device42-community/d42-client/pkg/device42"
)

// NewSubnetsCommand creates the subnets command group
func NewSubnetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subnets",
		Aliases: []string{"subnet"},
		Short:   "Manage subnets",
	}

	cmd.AddCommand(newSubnetsCreateCommand())

	return cmd
}

func newSubnetsCreateCommand() *cobra.Command {
	subnet := &device42.Subnet{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create or update a subnet",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			result, err := client.Subnets().Create(context.Background(), subnet)
			if err != nil {
				return fmt.Errorf("failed to create subnet: %w", err)
			}

			return printMutationResult(result)
		},
	}

	cmd.Flags().StringVar(&subnet.Network, "network", "", "network address, e.g. 10.0.0.0 (required)")
	cmd.Flags().StringVar(&subnet.MaskBits, "mask-bits", "", "prefix length, e.g. 24 (required)")
	cmd.Flags().StringVar(&subnet.Name, "name", "", "subnet name")
	cmd.Flags().StringVar(&subnet.Description, "description", "", "description")
	cmd.Flags().StringVar(&subnet.Notes, "notes", "", "notes")
	_ = cmd.MarkFlagRequired("network")
	_ = cmd.MarkFlagRequired("mask-bits")

	return cmd
}
