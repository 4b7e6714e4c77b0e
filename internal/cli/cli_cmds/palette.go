package cli_cmds

import (
	"github.com/lootvault/lootvault-go/internal/cli"

	"github.com/spf13/cobra"
)

// GeneratePalette builds the full command palette for the root command
func GeneratePalette(params *cli.CmdParams) []*cobra.Command {

	// Ledger commands
	balanceCmd := NewBalance(params)
	topupCmd := NewTopup(params)

	// Storefront commands
	catalogCmd := NewCatalog(params)
	buyCmd := NewBuy(params)
	redeemCmd := NewRedeem(params)

	// Record log commands
	historyCmd := NewHistory(params)

	// Session commands
	loginCmd := NewLogin(params)
	logoutCmd := NewLogout(params)

	// Long-running listener
	watchCmd := NewWatch(params)

	// Global commands
	helpCmd := NewHelp(params)
	versionCmd := NewVersion(params)

	// Return all commands
	return []*cobra.Command{
		balanceCmd,
		topupCmd,
		catalogCmd,
		buyCmd,
		redeemCmd,
		historyCmd,
		loginCmd,
		logoutCmd,
		watchCmd,
		helpCmd,
		versionCmd,
	}
}
