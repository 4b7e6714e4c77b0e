package cli_cmds

import (
	"fmt"

	"github.com/lootvault/lootvault-go/internal/cli"

	"github.com/spf13/cobra"
)

var helpShowAll bool

// NewHelp creates a detailed help command
func NewHelp(params *cli.CmdParams) *cobra.Command {
	helpCmd := &cobra.Command{
		Use:     "detailed_help",
		Aliases: []string{"h"},
		Short:   "Display detailed help for Lootvault",
		Long:    `Display detailed help information for Lootvault including command hierarchy and usage examples.`,
		Run: func(cmd *cobra.Command, args []string) {
			if helpShowAll {
				// Display all available commands and their details
				fmt.Println("Lootvault - Complete Command Reference")
				fmt.Println("======================================")
				fmt.Println("\nAvailable Commands:")

				for _, cmd := range params.Palette {
					fmt.Printf("- %s: %s\n", cmd.Use, cmd.Short)
				}
			} else {
				// Display basic help
				fmt.Println("Lootvault")
				fmt.Println("=========")
				fmt.Println("\nMain Commands:")
				fmt.Println("  balance     Show the coin balance")
				fmt.Println("  topup       Buy a coin pack")
				fmt.Println("  buy         Purchase a catalog item")
				fmt.Println("  history     Show the purchase record log")
				fmt.Println("  watch       Listen for store changes")
				fmt.Println("\nUse 'lootvault [command] --help' for more information about a command.")
				fmt.Println("Use 'lootvault detailed_help --all' to see all available commands.")
			}
		},
	}

	helpCmd.Flags().BoolVarP(&helpShowAll, "all", "a", false, "Show all commands")

	return helpCmd
}
