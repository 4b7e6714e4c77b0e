package cli_cmds

import (
	"context"
	"fmt"
	"time"

	"github.com/lootvault/lootvault-go/adapters/remote"
	"github.com/lootvault/lootvault-go/internal"
	"github.com/lootvault/lootvault-go/internal/cli"

	"github.com/spf13/cobra"
)

// NewCatalog creates the catalog command
func NewCatalog(params *cli.CmdParams) *cobra.Command {
	var refresh bool

	catalogCmd := &cobra.Command{
		Use:     "catalog",
		Aliases: []string{"items"},
		Short:   "List the storefront catalog",
		Long: `List every purchasable item with its price. With --refresh the backend
catalog is fetched first; on failure the local tables stay in effect.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(params)
			if err != nil {
				params.Logger.Error(internal.ComponentCLI, "Failed to open environment: %v", err)
				return err
			}
			defer env.Close()

			if refresh {
				if env.config.Backend.URL == "" {
					params.Logger.Warn(internal.ComponentCatalog, "No backend URL configured, skipping refresh")
				} else {
					ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
					defer cancel()
					remote.RefreshCatalog(ctx, remote.NewCatalogClient(env.config.Backend.URL), env.catalog)
				}
			}

			for _, item := range env.catalog.Items() {
				price := fmt.Sprintf("$%.2f", item.UnitPrice)
				if item.CoinDenominated() {
					price = fmt.Sprintf("%d coins", item.CostCoins)
				}
				line := fmt.Sprintf("  %-12s %-8s %-28s %s", item.ID, item.Kind, item.Name, price)
				if item.Game != "" {
					line += fmt.Sprintf(" [%s]", item.Game)
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	catalogCmd.Flags().BoolVarP(&refresh, "refresh", "r", false, "Fetch the backend catalog before listing")

	return catalogCmd
}
