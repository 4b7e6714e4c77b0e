package cli_cmds

import (
	"fmt"

	"github.com/lootvault/lootvault-go/internal"
	"github.com/lootvault/lootvault-go/internal/cli"

	"github.com/spf13/cobra"
)

// NewRedeem creates the redeem command
func NewRedeem(params *cli.CmdParams) *cobra.Command {
	return &cobra.Command{
		Use:   "redeem <record-id>",
		Short: "Mark a completed purchase as redeemed",
		Long:  `Mark a completed purchase record as redeemed in-game. Only completed records can be redeemed.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(params)
			if err != nil {
				params.Logger.Error(internal.ComponentCLI, "Failed to open environment: %v", err)
				return err
			}
			defer env.Close()

			record, err := env.log.MarkRedeemed(args[0])
			if err != nil {
				return fmt.Errorf("failed to redeem %q: %w", args[0], err)
			}
			env.announce()

			fmt.Fprintf(cmd.OutOrStdout(), "Redeemed %s (record %s)\n", record.Name, record.ID)
			return nil
		},
	}
}
