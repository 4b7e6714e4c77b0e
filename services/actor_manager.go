package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/anthdm/hollywood/actor"

	"github.com/lootvault/lootvault-go/adapters/storage/sqlite"
	"github.com/lootvault/lootvault-go/domain/ledger"
	"github.com/lootvault/lootvault-go/interfaces"
	"github.com/lootvault/lootvault-go/internal"
	"github.com/lootvault/lootvault-go/internal/syncbus"
)

// ActorServiceManager wires the store, ledger and broadcaster into the actor
// system and manages the actor services' lifecycles.
type ActorServiceManager struct {
	// Core components
	config *internal.Config
	logger *internal.Logger
	store  interfaces.KeyValueStore
	bus    interfaces.Broadcaster

	// Actor system components
	engine *actor.Engine
	ctx    context.Context
	cancel context.CancelFunc

	// Service registry
	services    map[string]*actor.PID
	serviceInfo map[string]interfaces.ServiceInfo
	mu          sync.RWMutex
}

// NewActorServiceManager creates a new actor-based service manager
func NewActorServiceManager(config *internal.Config, logger *internal.Logger) (*ActorServiceManager, error) {
	ctx, cancel := context.WithCancel(context.Background())

	engine, err := actor.NewEngine(actor.NewEngineConfig())
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to create actor engine: %w", err)
	}

	return &ActorServiceManager{
		config:      config,
		logger:      logger,
		ctx:         ctx,
		cancel:      cancel,
		services:    make(map[string]*actor.PID),
		serviceInfo: make(map[string]interfaces.ServiceInfo),
		engine:      engine,
	}, nil
}

// Initialize sets up all components needed for the service manager
func (m *ActorServiceManager) Initialize() error {
	// Open the persistent store
	store, err := sqlite.New(m.config.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open persistent store: %w", err)
	}
	m.store = store

	// Connect the change-signal broadcaster; without sync configured the
	// instance runs with a private in-process bus
	if m.config.Sync.Enabled {
		bus, err := syncbus.NewNATSBus(syncbus.NATSConfig{
			ServerURL: m.config.Sync.ServerURL,
			Subject:   m.config.Sync.Subject,
		})
		if err != nil {
			return fmt.Errorf("failed to connect change-signal bus: %w", err)
		}
		m.bus = bus
	} else {
		m.bus = syncbus.NewLocalBus()
		m.logger.Info(internal.ComponentSync, "Sync disabled, using in-process signals only")
	}

	// Spawn the ledger arbiter
	coinLedger := ledger.New(m.store, ledger.Strategy(m.config.Ledger.Strategy))
	m.Register("ledger_arbiter", NewLedgerArbiterActor(coinLedger, m.logger))

	// Spawn the sync service
	m.Register("sync_service", NewSyncActor(m.bus, m.logger))

	return nil
}

// Register adds a new actor service with a unique name to the manager
func (m *ActorServiceManager) Register(name string, service ActorService) {
	m.logger.Debug(internal.ComponentService, "Registering actor service: %s", name)

	pid := m.engine.Spawn(func() actor.Receiver { return service }, name)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.services[name] = pid
	m.serviceInfo[name] = interfaces.ServiceInfo{
		Name:      name,
		Status:    interfaces.ServiceStatusRunning,
		StartTime: time.Now(),
	}
}

// PID returns the PID of a registered service
func (m *ActorServiceManager) PID(name string) (*actor.PID, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	pid, ok := m.services[name]
	return pid, ok
}

// Engine returns the actor engine
func (m *ActorServiceManager) Engine() *actor.Engine {
	return m.engine
}

// Store returns the persistent store the manager opened
func (m *ActorServiceManager) Store() interfaces.KeyValueStore {
	return m.store
}

// Bus returns the change-signal broadcaster
func (m *ActorServiceManager) Bus() interfaces.Broadcaster {
	return m.bus
}

// GetServiceInfo returns the info for a named service
func (m *ActorServiceManager) GetServiceInfo(name string) (interfaces.ServiceInfo, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	info, ok := m.serviceInfo[name]
	return info, ok
}

// Shutdown stops all actors and releases the store and bus
func (m *ActorServiceManager) Shutdown() error {
	m.mu.Lock()
	services := make(map[string]*actor.PID, len(m.services))
	for name, pid := range m.services {
		services[name] = pid
	}
	m.mu.Unlock()

	for name, pid := range services {
		m.engine.Send(pid, StopMsg{})
		<-m.engine.Poison(pid).Done()
		m.logger.Info(internal.ComponentService, "Stopped actor service %s", name)
	}

	m.cancel()

	if m.bus != nil {
		if err := m.bus.Close(); err != nil {
			m.logger.Warn(internal.ComponentSync, "Failed to close bus: %v", err)
		}
	}
	if m.store != nil {
		if err := m.store.Close(); err != nil {
			return fmt.Errorf("failed to close store: %w", err)
		}
	}

	return nil
}
