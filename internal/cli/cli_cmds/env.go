package cli_cmds

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lootvault/lootvault-go/adapters/storage/sqlite"
	"github.com/lootvault/lootvault-go/domain/catalog"
	"github.com/lootvault/lootvault-go/domain/inventory"
	"github.com/lootvault/lootvault-go/domain/ledger"
	"github.com/lootvault/lootvault-go/domain/session"
	"github.com/lootvault/lootvault-go/interfaces"
	"github.com/lootvault/lootvault-go/internal"
	"github.com/lootvault/lootvault-go/internal/cli"
	"github.com/lootvault/lootvault-go/internal/syncbus"
)

// cmdEnv bundles the store-backed components a one-shot command works with.
// Each command opens its own environment and closes it before exiting, the
// same way every storefront tab owns its own view over the shared store.
type cmdEnv struct {
	config *internal.Config
	logger *internal.Logger

	store     interfaces.KeyValueStore
	committer ledger.Committer
	ledger    ledger.Ledger
	log       *inventory.Log
	catalog   *catalog.Catalog
	session   *session.StoreProvider
	bus       interfaces.Broadcaster
}

// openEnv opens the persistent store and wires the domain components on top
// of it. The change-signal bus is only connected when sync is enabled;
// one-shot commands have nothing to receive, they only announce commits.
func openEnv(params *cli.CmdParams) (*cmdEnv, error) {
	cfg := params.Config

	if dir := filepath.Dir(cfg.Database.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	store, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open persistent store: %w", err)
	}

	env := &cmdEnv{
		config:    cfg,
		logger:    params.Logger,
		store:     store,
		committer: ledger.NewCommitter(store, ledger.Strategy(cfg.Ledger.Strategy)),
		ledger:    ledger.New(store, ledger.Strategy(cfg.Ledger.Strategy)),
		log:       inventory.NewLog(store),
		catalog:   catalog.FromConfig(cfg.Catalog),
		session:   session.NewStoreProvider(store),
	}

	if cfg.Sync.Enabled {
		bus, err := syncbus.NewNATSBus(syncbus.NATSConfig{
			ServerURL: cfg.Sync.ServerURL,
			Subject:   cfg.Sync.Subject,
		})
		if err != nil {
			// A missing bus never blocks a purchase, siblings just catch
			// up on their next read
			params.Logger.Warn(internal.ComponentSync, "Change-signal bus unavailable: %v", err)
		} else {
			env.bus = bus
		}
	}

	return env, nil
}

// announce publishes a change signal after a store mutation, if a bus is up
func (e *cmdEnv) announce() {
	if e.bus == nil {
		return
	}
	if err := e.bus.Publish(); err != nil {
		e.logger.Warn(internal.ComponentSync, "Failed to publish change signal: %v", err)
	}
}

// Close releases the bus and the store
func (e *cmdEnv) Close() {
	if e.bus != nil {
		if err := e.bus.Close(); err != nil {
			e.logger.Warn(internal.ComponentSync, "Failed to close bus: %v", err)
		}
	}
	if err := e.store.Close(); err != nil {
		e.logger.Warn(internal.ComponentStorage, "Failed to close store: %v", err)
	}
}
