package cli_cmds

import (
	"fmt"

	"github.com/lootvault/lootvault-go/interfaces"
	"github.com/lootvault/lootvault-go/internal"
	"github.com/lootvault/lootvault-go/internal/cli"

	"github.com/spf13/cobra"
)

// NewLogin creates the login command
func NewLogin(params *cli.CmdParams) *cobra.Command {
	return &cobra.Command{
		Use:   "login <token>",
		Short: "Store an authentication token",
		Long:  `Store the session token issued by the storefront. Purchases require a stored token.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(params)
			if err != nil {
				params.Logger.Error(internal.ComponentCLI, "Failed to open environment: %v", err)
				return err
			}
			defer env.Close()

			if err := env.store.Set(interfaces.KeyAuthToken, args[0]); err != nil {
				return fmt.Errorf("failed to store token: %w", err)
			}
			env.announce()

			fmt.Fprintln(cmd.OutOrStdout(), "Logged in.")
			return nil
		},
	}
}
