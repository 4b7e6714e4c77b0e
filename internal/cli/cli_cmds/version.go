package cli_cmds

import (
	"fmt"

	"github.com/lootvault/lootvault-go/internal"
	"github.com/lootvault/lootvault-go/internal/cli"

	"github.com/spf13/cobra"
)

// NewVersion creates a version command
func NewVersion(params *cli.CmdParams) *cobra.Command {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version of Lootvault",
		Long:  `Print the version information for Lootvault including build details.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Lootvault")
			fmt.Println("=========")
			fmt.Printf("%s\n", internal.VersionInfo())
		},
	}

	return versionCmd
}
