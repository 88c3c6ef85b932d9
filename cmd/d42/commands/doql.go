package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// NewDOQLCommand creates the doql command group
func NewDOQLCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doql",
		Short: "Run DOQL saved queries",
	}

	cmd.AddCommand(newDOQLRunCommand())

	return cmd
}

func newDOQLRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run NAME",
		Short: "Run a saved query and print its rows",
		Long:  "Run the saved DOQL query NAME. Rows pass through as the query author shaped them.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			raw, err := client.Queries().Run(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to run query %q: %w", args[0], err)
			}

			if viper.GetString("output") == OutputFormatYAML {
				var rows interface{}
				if err := json.Unmarshal(raw, &rows); err != nil {
					return fmt.Errorf("failed to decode query result: %w", err)
				}

				encoder := yaml.NewEncoder(os.Stdout)
				encoder.SetIndent(2)

				return encoder.Encode(rows)
			}

			var indented json.RawMessage = raw

			out, err := json.MarshalIndent(&indented, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to format query result: %w", err)
			}

			fmt.Println(string(out))

			return nil
		},
	}
}
