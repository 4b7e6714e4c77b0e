package services

import (
	"time"

	"github.com/anthdm/hollywood/actor"

	"github.com/lootvault/lootvault-go/interfaces"
	"github.com/lootvault/lootvault-go/internal"
)

// SyncActor owns this instance's change-signal subscription. Sibling signals
// arrive as mailbox messages, so refreshers run one at a time on the actor's
// goroutine; a commit in this instance is announced through PublishMsg.
type SyncActor struct {
	BaseActor
	bus interfaces.Broadcaster

	subscription interfaces.Subscription
	refreshers   []func()
	signalsSeen  int64
	lastSignal   time.Time
}

// RegisterRefresherMsg adds a callback run whenever a sibling reports a
// store change. Refreshers re-read the store keys they derive views from.
type RegisterRefresherMsg struct {
	Refresh func()
}

// ChangedMsg is delivered when a sibling instance reports a store change
type ChangedMsg struct{}

// PublishMsg asks the actor to announce a local store change to siblings
type PublishMsg struct{}

// NewSyncActor creates a sync actor over the given broadcaster
func NewSyncActor(bus interfaces.Broadcaster, logger *internal.Logger) *SyncActor {
	return &SyncActor{
		BaseActor: NewBaseActor("sync_service", logger),
		bus:       bus,
	}
}

// Receive implements the actor.Receiver interface
func (a *SyncActor) Receive(ctx *actor.Context) {
	switch msg := ctx.Message().(type) {
	case actor.Started, StartMsg:
		engine := ctx.Engine()
		pid := ctx.PID()
		sub, err := a.bus.Subscribe(func() {
			engine.Send(pid, ChangedMsg{})
		})
		if err != nil {
			a.logger.Error(internal.ComponentSync, "Failed to subscribe to change signals: %v", err)
			return
		}
		a.subscription = sub
		a.logger.Info(internal.ComponentSync, "Sync actor subscribed to change signals")

	case StopMsg:
		if a.subscription != nil {
			if err := a.subscription.Unsubscribe(); err != nil {
				a.logger.Warn(internal.ComponentSync, "Failed to unsubscribe: %v", err)
			}
			a.subscription = nil
		}
		a.logger.Info(internal.ComponentSync, "Sync actor stopped")

	case RegisterRefresherMsg:
		a.refreshers = append(a.refreshers, msg.Refresh)

	case ChangedMsg:
		a.signalsSeen++
		a.lastSignal = time.Now()
		a.logger.Debug(internal.ComponentSync, "Store changed elsewhere, refreshing %d views", len(a.refreshers))
		for _, refresh := range a.refreshers {
			refresh()
		}

	case PublishMsg:
		if err := a.bus.Publish(); err != nil {
			a.logger.Warn(internal.ComponentSync, "Failed to publish change signal: %v", err)
		}

	case StatusRequestMsg:
		ctx.Respond(StatusResponseMsg{
			Status:     "RUNNING",
			LastActive: a.lastSignal,
		})
	}
}
