package cli_cmds

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/lootvault/lootvault-go/domain/inventory"
	"github.com/lootvault/lootvault-go/domain/ledger"
	"github.com/lootvault/lootvault-go/internal"
	"github.com/lootvault/lootvault-go/internal/cli"
	"github.com/lootvault/lootvault-go/services"

	"github.com/spf13/cobra"
)

// NewWatch creates the watch command
func NewWatch(params *cli.CmdParams) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Run a long-lived listener for store changes",
		Long: `Keep a listener running that reacts to change signals from sibling
instances, re-reads the store and reports the fresh balance and record count.
This is the headless counterpart of an open storefront tab.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cli.IsWatcherRunning() {
				return fmt.Errorf("a watch listener is already running")
			}

			manager, err := services.NewActorServiceManager(params.Config, params.Logger)
			if err != nil {
				return fmt.Errorf("failed to create service manager: %w", err)
			}
			if err := manager.Initialize(); err != nil {
				return fmt.Errorf("failed to initialize services: %w", err)
			}

			if err := cli.WritePIDFile(os.Getpid()); err != nil {
				params.Logger.Warn(internal.ComponentCLI, "Failed to write PID file: %v", err)
			}
			defer cli.RemovePIDFile()

			// On every sibling signal the refresher re-reads the store; its
			// own caches are never trusted after a signal
			store := manager.Store()
			log := inventory.NewLog(store)
			out := cmd.OutOrStdout()
			if pid, ok := manager.PID("sync_service"); ok {
				manager.Engine().Send(pid, services.RegisterRefresherMsg{
					Refresh: func() {
						fmt.Fprintf(out, "Store changed: balance %d coins, %d records\n",
							ledger.ReadBalance(store), len(log.All()))
					},
				})
			}

			fmt.Fprintf(out, "Watching for store changes (balance %d coins). Ctrl-C to stop.\n",
				ledger.ReadBalance(store))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			group, groupCtx := errgroup.WithContext(ctx)
			group.Go(func() error {
				<-groupCtx.Done()
				return nil
			})
			group.Go(func() error {
				<-groupCtx.Done()
				return manager.Shutdown()
			})

			if err := group.Wait(); err != nil && err != context.Canceled {
				return err
			}
			params.Logger.Info(internal.ComponentCLI, "Watch listener stopped")
			return nil
		},
	}
}
