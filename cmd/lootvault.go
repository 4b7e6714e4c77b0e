package main

import (
	"fmt"

	"github.com/lootvault/lootvault-go/internal"
	"github.com/lootvault/lootvault-go/internal/cli"
	"github.com/lootvault/lootvault-go/internal/cli/cli_cmds"
)

func main() {
	cfg, log := internal.Init()

	if err := run(cfg, log); err != nil {
		log.Fatal(internal.ComponentGeneral, "Error running client: %v", err)
	}
}

func run(cfg *internal.Config, logger *internal.Logger) error {
	// Setup the Root Command with access to services
	rootParams := &cli.CmdParams{
		Config:  cfg,
		Logger:  logger,
		Palette: nil,
		Use:     internal.DefaultAppName,
		Alias:   internal.DefaultAppCMDShortCut,
		Short:   "Lootvault coin ledger",
		Long:    "Lootvault - Manage the storefront coin balance and purchase log",
	}

	// Generate command palette
	palette := cli_cmds.GeneratePalette(rootParams)
	rootParams.Palette = palette

	// Create root command
	rootCmd := cli.NewRootCMD(rootParams)

	// Execute root command
	if err := rootCmd.Root.Execute(); err != nil {
		return fmt.Errorf("error executing root command: %v", err)
	}

	return nil
}
