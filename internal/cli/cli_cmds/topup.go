package cli_cmds

import (
	"fmt"

	"github.com/lootvault/lootvault-go/domain/models"
	"github.com/lootvault/lootvault-go/domain/usecases"
	"github.com/lootvault/lootvault-go/internal"
	"github.com/lootvault/lootvault-go/internal/cli"

	"github.com/spf13/cobra"
)

// NewTopup creates the topup command
func NewTopup(params *cli.CmdParams) *cobra.Command {
	topupCmd := &cobra.Command{
		Use:   "topup [pack-id]",
		Short: "Buy a coin pack",
		Long: `Credit the balance by purchasing a coin pack. Without an argument the
available packs are listed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(params)
			if err != nil {
				params.Logger.Error(internal.ComponentCLI, "Failed to open environment: %v", err)
				return err
			}
			defer env.Close()

			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Coin packs:")
				for _, item := range env.catalog.ByKind(models.RecordKindCurrency) {
					if item.BonusAmount > 0 {
						fmt.Fprintf(cmd.OutOrStdout(), "  %-8s %s: %d coins (+%d bonus) for $%.2f\n",
							item.ID, item.Name, item.UnitAmount, item.BonusAmount, item.UnitPrice)
						continue
					}
					fmt.Fprintf(cmd.OutOrStdout(), "  %-8s %s: %d coins for $%.2f\n",
						item.ID, item.Name, item.UnitAmount, item.UnitPrice)
				}
				return nil
			}

			item, err := env.catalog.Item(args[0])
			if err != nil {
				return fmt.Errorf("unknown pack %q: %w", args[0], err)
			}
			if item.Kind != models.RecordKindCurrency {
				return fmt.Errorf("item %q is not a coin pack: %w", args[0], models.ErrInvalidRecordKind)
			}

			workflow := usecases.NewPurchaseWorkflow(env.committer, env.log, env.session, env.bus)
			if err := workflow.SelectItem(item, 1); err != nil {
				return err
			}
			record, err := workflow.Confirm()
			if err != nil {
				return fmt.Errorf("topup failed: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Credited %d coins (record %s)\n", record.Quantity, record.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "Balance: %d coins\n", env.ledger.Read())
			return nil
		},
	}

	return topupCmd
}
