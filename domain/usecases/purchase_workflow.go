// Package usecases coordinates the per-purchase state machine. A workflow
// instance validates a selection, waits for the user's confirmation and then
// commits the ledger mutation and the log append as one unit.
package usecases

import (
	"fmt"

	"github.com/lootvault/lootvault-go/domain/inventory"
	"github.com/lootvault/lootvault-go/domain/ledger"
	"github.com/lootvault/lootvault-go/domain/models"
	"github.com/lootvault/lootvault-go/domain/session"
	"github.com/lootvault/lootvault-go/interfaces"
	"github.com/lootvault/lootvault-go/internal"
)

// WorkflowState is one of the purchase workflow's states
type WorkflowState string

const (
	// StateIdle is the rest state before an item is selected
	StateIdle WorkflowState = "idle"

	// StateAwaitingConfirmation holds while the user decides; the only
	// cancellable state
	StateAwaitingConfirmation WorkflowState = "awaiting_confirmation"

	// StateProcessing covers the commit itself; runs to completion
	StateProcessing WorkflowState = "processing"

	// StateCompleted is the terminal success state
	StateCompleted WorkflowState = "completed"

	// StateFailed is the terminal failure state, carrying the reason
	StateFailed WorkflowState = "failed"
)

// PurchaseWorkflow drives one purchase from selection to a terminal state.
// A fresh workflow is created per purchase; terminal states are final.
type PurchaseWorkflow struct {
	committer ledger.Committer
	log       *inventory.Log
	session   session.Provider
	notifier  interfaces.Broadcaster // optional; nil disables change signals
	logger    *internal.Logger

	state    WorkflowState
	item     models.CatalogItem
	quantity int64
	result   *models.PurchaseRecord
	failure  error
}

// NewPurchaseWorkflow creates a workflow in the idle state
func NewPurchaseWorkflow(
	committer ledger.Committer,
	log *inventory.Log,
	sessionProvider session.Provider,
	notifier interfaces.Broadcaster,
) *PurchaseWorkflow {
	return &PurchaseWorkflow{
		committer: committer,
		log:       log,
		session:   sessionProvider,
		notifier:  notifier,
		logger:    internal.GetLogger(),
		state:     StateIdle,
	}
}

// State returns the current workflow state
func (w *PurchaseWorkflow) State() WorkflowState {
	return w.state
}

// Result returns the committed record after a successful purchase
func (w *PurchaseWorkflow) Result() *models.PurchaseRecord {
	return w.result
}

// Failure returns the reason the workflow failed, if it did
func (w *PurchaseWorkflow) Failure() error {
	return w.failure
}

// SelectItem transitions idle -> awaiting confirmation. An invalid quantity
// (non-positive, or above a bounded stock) is rejected and the workflow stays
// idle.
func (w *PurchaseWorkflow) SelectItem(item models.CatalogItem, quantity int64) error {
	if w.state != StateIdle {
		return fmt.Errorf("select in state %q: %w", w.state, models.ErrInvalidTransition)
	}

	if err := item.Validate(); err != nil {
		return err
	}

	if quantity < 1 {
		return fmt.Errorf("quantity %d: %w", quantity, models.ErrInvalidQuantity)
	}
	if item.BoundedStock() && quantity > item.Stock {
		return fmt.Errorf("quantity %d exceeds stock %d: %w", quantity, item.Stock, models.ErrInvalidQuantity)
	}

	w.item = item
	w.quantity = quantity
	w.state = StateAwaitingConfirmation

	w.logger.Debug(internal.ComponentWorkflow, "Selected %q x%d", item.ID, quantity)
	return nil
}

// Cancel transitions awaiting confirmation back to idle. No side effects.
func (w *PurchaseWorkflow) Cancel() error {
	if w.state != StateAwaitingConfirmation {
		return fmt.Errorf("cancel in state %q: %w", w.state, models.ErrInvalidTransition)
	}

	w.item = models.CatalogItem{}
	w.quantity = 0
	w.state = StateIdle
	return nil
}

// Confirm commits the purchase. It requires an authenticated session, applies
// the ledger effect and appends the purchase record in one durable unit, and
// only then signals sibling instances. Every failure is absorbed into the
// failed terminal state with its reason; no partial commit is ever observable.
func (w *PurchaseWorkflow) Confirm() (models.PurchaseRecord, error) {
	if w.state != StateAwaitingConfirmation {
		return models.PurchaseRecord{}, fmt.Errorf("confirm in state %q: %w", w.state, models.ErrInvalidTransition)
	}

	w.state = StateProcessing

	if w.session.Token() == "" {
		return models.PurchaseRecord{}, w.fail(models.ErrNotAuthenticated)
	}

	delta, rec := w.buildCommit()
	rec.MarkAsCompleted()

	stored, encoded, err := w.log.EncodeAppended(w.item.ID, rec)
	if err != nil {
		return models.PurchaseRecord{}, w.fail(err)
	}

	balance, err := w.committer.Commit(delta, encoded)
	if err != nil {
		return models.PurchaseRecord{}, w.fail(err)
	}

	w.result = &stored
	w.state = StateCompleted
	w.logger.Info(internal.ComponentWorkflow,
		"Purchase %s committed, balance now %d", stored.ID, balance)

	// Signal siblings only after the durable write succeeded. A failed
	// signal is tolerable: receivers re-read on the next one.
	if w.notifier != nil {
		if err := w.notifier.Publish(); err != nil {
			w.logger.Warn(internal.ComponentWorkflow, "Change signal failed: %v", err)
		}
	}

	return stored, nil
}

// buildCommit derives the balance delta and the pending record for the
// selected item.
func (w *PurchaseWorkflow) buildCommit() (int64, models.PurchaseRecord) {
	item := w.item

	switch {
	case item.Kind == models.RecordKindCurrency:
		// Real-money coin package: credit coins plus bonus, record the
		// granted amount.
		coins := item.TotalCoins() * w.quantity
		rec := models.NewPurchaseRecord(item.Kind, item.Name, item.Game, coins, item.UnitPrice)
		return coins, *rec

	case item.CoinDenominated():
		// Spend coins on a bundle, skin or event item.
		cost := item.CostCoins * w.quantity
		rec := models.NewPurchaseRecord(item.Kind, item.Name, item.Game, w.quantity, item.UnitPrice)
		return -cost, *rec

	default:
		// Real-money item purchase (discounted event offers): no ledger
		// effect, only a log entry.
		rec := models.NewPurchaseRecord(item.Kind, item.Name, item.Game, w.quantity, item.UnitPrice)
		return 0, *rec
	}
}

// fail moves the workflow to its failed terminal state carrying the reason
func (w *PurchaseWorkflow) fail(reason error) error {
	w.failure = reason
	w.state = StateFailed
	w.logger.Warn(internal.ComponentWorkflow, "Purchase of %q failed: %v", w.item.ID, reason)
	return reason
}
