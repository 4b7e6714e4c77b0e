package cli_cmds

import (
	"encoding/csv"
	"fmt"

	"github.com/lootvault/lootvault-go/domain/inventory"
	"github.com/lootvault/lootvault-go/domain/models"
	"github.com/lootvault/lootvault-go/internal"
	"github.com/lootvault/lootvault-go/internal/cli"

	"github.com/spf13/cobra"
)

// NewHistory creates the history command
func NewHistory(params *cli.CmdParams) *cobra.Command {
	var kind string
	var game string
	var asCSV bool

	historyCmd := &cobra.Command{
		Use:     "history",
		Aliases: []string{"log"},
		Short:   "Show the purchase record log",
		Long: `List purchase records, newest first. Filters narrow by kind and game;
--csv emits the export rows instead of the table.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(params)
			if err != nil {
				params.Logger.Error(internal.ComponentCLI, "Failed to open environment: %v", err)
				return err
			}
			defer env.Close()

			if asCSV {
				writer := csv.NewWriter(cmd.OutOrStdout())
				if err := writer.WriteAll(env.log.ExportRows()); err != nil {
					return fmt.Errorf("failed to write export rows: %w", err)
				}
				return nil
			}

			records := env.log.Query(inventory.Filter{
				Kind:         models.RecordKind(kind),
				Game:         game,
				SortByNewest: true,
			})
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No purchases recorded.")
				return nil
			}

			for _, rec := range records {
				line := fmt.Sprintf("%s  %-10s %-10s x%-6d %s",
					rec.CreatedAt.Format("2006-01-02 15:04:05"),
					rec.Kind, rec.Status, rec.Quantity, rec.Name)
				if rec.Game != "" {
					line += fmt.Sprintf(" [%s]", rec.Game)
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	historyCmd.Flags().StringVarP(&kind, "kind", "k", "", "Filter by record kind (currency, bundle, skin, event)")
	historyCmd.Flags().StringVarP(&game, "game", "g", "", "Filter by game tag")
	historyCmd.Flags().BoolVar(&asCSV, "csv", false, "Emit the CSV export rows")

	return historyCmd
}
