package cli_cmds

import (
	"fmt"

	"github.com/lootvault/lootvault-go/domain/session"
	"github.com/lootvault/lootvault-go/internal"
	"github.com/lootvault/lootvault-go/internal/cli"

	"github.com/spf13/cobra"
)

// NewLogout creates the logout command
func NewLogout(params *cli.CmdParams) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the session",
		Long:  `Remove the stored token and the purchase log, mirroring what the storefront clears on logout. The coin balance is kept.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(params)
			if err != nil {
				params.Logger.Error(internal.ComponentCLI, "Failed to open environment: %v", err)
				return err
			}
			defer env.Close()

			if err := session.Logout(env.store); err != nil {
				return fmt.Errorf("failed to log out: %w", err)
			}
			env.announce()

			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}
