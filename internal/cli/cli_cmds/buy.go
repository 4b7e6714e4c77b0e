package cli_cmds

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/lootvault/lootvault-go/domain/usecases"
	"github.com/lootvault/lootvault-go/internal"
	"github.com/lootvault/lootvault-go/internal/cli"

	"github.com/spf13/cobra"
)

// NewBuy creates the buy command
func NewBuy(params *cli.CmdParams) *cobra.Command {
	var quantity int64
	var assumeYes bool

	buyCmd := &cobra.Command{
		Use:     "buy <item-id>",
		Aliases: []string{"purchase"},
		Short:   "Purchase a catalog item",
		Long: `Run a purchase through the confirmation workflow: select the item,
confirm, and commit the coin movement together with its purchase record.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(params)
			if err != nil {
				params.Logger.Error(internal.ComponentCLI, "Failed to open environment: %v", err)
				return err
			}
			defer env.Close()

			item, err := env.catalog.Item(args[0])
			if err != nil {
				return fmt.Errorf("unknown item %q: %w", args[0], err)
			}

			workflow := usecases.NewPurchaseWorkflow(env.committer, env.log, env.session, env.bus)
			if err := workflow.SelectItem(item, quantity); err != nil {
				return err
			}

			if !assumeYes {
				if item.CoinDenominated() {
					fmt.Fprintf(cmd.OutOrStdout(), "Buy %s x%d for %d coins? [y/N]: ", item.Name, quantity, item.CostCoins*quantity)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "Buy %s x%d for $%.2f? [y/N]: ", item.Name, quantity, item.UnitPrice*float64(quantity))
				}

				answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if !strings.EqualFold(strings.TrimSpace(answer), "y") {
					if err := workflow.Cancel(); err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}

			record, err := workflow.Confirm()
			if err != nil {
				return fmt.Errorf("purchase failed: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Purchased %s (record %s)\n", record.Name, record.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "Balance: %d coins\n", env.ledger.Read())
			return nil
		},
	}

	buyCmd.Flags().Int64VarP(&quantity, "qty", "q", 1, "Quantity to purchase")
	buyCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")

	return buyCmd
}
