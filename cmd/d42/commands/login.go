package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/device42-community/d42-client/pkg/d42client"
	"github.com/device42-community/d42-client/pkg/device42"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		apiEndpoint string
		username    string
		password    string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to a Device42 appliance",
		Long:  "Verify credentials against a Device42 API endpoint and store them in the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiEndpoint == "" {
				apiEndpoint = viper.GetString("api")
			}

			if apiEndpoint == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("API endpoint: ")
				apiEndpoint, _ = reader.ReadString('\n')
				apiEndpoint = strings.TrimSpace(apiEndpoint)
			}

			if apiEndpoint == "" {
				return device42.ErrAPIEndpointRequired
			}

			if username == "" {
				username = viper.GetString("username")
			}

			if username == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("Username: ")
				username, _ = reader.ReadString('\n')
				username = strings.TrimSpace(username)
			}

			if password == "" {
				fmt.Print("Password: ")

				bytePassword, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read password: %w", err)
				}

				password = string(bytePassword)

				fmt.Println()
			}

			client, err := d42client.New(&device42.Config{
				APIEndpoint:   apiEndpoint,
				Username:      username,
				Password:      password,
				SkipTLSVerify: viper.GetBool("insecure"),
			})
			if err != nil {
				return err
			}

			// A one-page listing is the cheapest authenticated round-trip.
			it := client.Buildings().List(context.Background(), nil)
			if _, err := it.Next(); err != nil && !errors.Is(err, device42.ErrNoMoreItems) {
				return fmt.Errorf("login failed: %w", err)
			}

			viper.Set("api", apiEndpoint)
			viper.Set("username", username)
			viper.Set("password", password)

			if err := viper.WriteConfig(); err != nil {
				// First login on a fresh machine has no config file yet.
				if err := viper.SafeWriteConfig(); err != nil {
					return fmt.Errorf("saving config: %w", err)
				}
			}

			fmt.Printf("Logged in to %s as %s\n", apiEndpoint, username)

			return nil
		},
	}

	cmd.Flags().StringVarP(&apiEndpoint, "api", "a", "", "API endpoint URL")
	cmd.Flags().StringVarP(&username, "username", "u", "", "account username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password (prompted if omitted)")

	return cmd
}
