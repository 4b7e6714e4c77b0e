package services

import (
	"sync"
	"time"

	"github.com/anthdm/hollywood/actor"

	"github.com/lootvault/lootvault-go/domain/ledger"
	"github.com/lootvault/lootvault-go/internal"
)

// LedgerArbiterActor serializes every balance mutation through a single
// actor mailbox. It is the single-writer alternative to the store-level
// atomic add: when all instances route credits and debits through one
// arbiter, concurrent read-modify-write races cannot occur even with a naive
// ledger underneath.
type LedgerArbiterActor struct {
	BaseActor
	ledger ledger.Ledger

	mu         sync.Mutex
	lastActive time.Time
	lastError  error
	errorCount int
}

// CreditMsg asks the arbiter to credit the balance
type CreditMsg struct {
	Amount int64
}

// DebitMsg asks the arbiter to debit the balance
type DebitMsg struct {
	Amount int64
}

// BalanceRequestMsg asks the arbiter for the current balance
type BalanceRequestMsg struct{}

// LedgerResponseMsg carries the balance after an arbiter operation
type LedgerResponseMsg struct {
	Balance int64
	Err     error
}

// NewLedgerArbiterActor creates a new ledger arbiter over the given ledger
func NewLedgerArbiterActor(l ledger.Ledger, logger *internal.Logger) *LedgerArbiterActor {
	return &LedgerArbiterActor{
		BaseActor: NewBaseActor("ledger_arbiter", logger),
		ledger:    l,
	}
}

// Receive implements the actor.Receiver interface
func (a *LedgerArbiterActor) Receive(ctx *actor.Context) {
	switch msg := ctx.Message().(type) {
	case actor.Started, StartMsg:
		a.logger.Info(internal.ComponentLedger, "Ledger arbiter started")

	case StopMsg:
		a.logger.Info(internal.ComponentLedger, "Ledger arbiter stopping")

	case CreditMsg:
		balance, err := a.ledger.Credit(msg.Amount)
		a.record(err)
		ctx.Respond(LedgerResponseMsg{Balance: balance, Err: err})

	case DebitMsg:
		balance, err := a.ledger.Debit(msg.Amount)
		a.record(err)
		ctx.Respond(LedgerResponseMsg{Balance: balance, Err: err})

	case BalanceRequestMsg:
		ctx.Respond(LedgerResponseMsg{Balance: a.ledger.Read()})

	case StatusRequestMsg:
		a.mu.Lock()
		resp := StatusResponseMsg{
			Status:     "RUNNING",
			LastActive: a.lastActive,
			ErrorCount: a.errorCount,
			LastError:  a.lastError,
		}
		a.mu.Unlock()
		ctx.Respond(resp)
	}
}

func (a *LedgerArbiterActor) record(err error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.lastActive = time.Now()
	if err != nil {
		a.lastError = err
		a.errorCount++
	}
}
