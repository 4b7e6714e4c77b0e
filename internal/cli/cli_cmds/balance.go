package cli_cmds

import (
	"fmt"

	"github.com/lootvault/lootvault-go/internal"
	"github.com/lootvault/lootvault-go/internal/cli"

	"github.com/spf13/cobra"
)

// NewBalance creates the balance command
func NewBalance(params *cli.CmdParams) *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the current coin balance",
		Long:  `Read the coin balance from the persistent store. A missing or unreadable balance reads as zero.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(params)
			if err != nil {
				params.Logger.Error(internal.ComponentCLI, "Failed to open environment: %v", err)
				return err
			}
			defer env.Close()

			fmt.Fprintf(cmd.OutOrStdout(), "Balance: %d coins\n", env.ledger.Read())
			return nil
		},
	}
}
