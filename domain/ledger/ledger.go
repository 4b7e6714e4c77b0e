// Package ledger owns the coin balance: a single non-negative integer under
// the balance key of the persistent store. All mutations go through credit and
// debit; the balance is never written directly by anything else.
package ledger

import (
	"fmt"
	"strconv"

	"github.com/lootvault/lootvault-go/domain/models"
	"github.com/lootvault/lootvault-go/interfaces"
	"github.com/lootvault/lootvault-go/internal"
)

// Strategy selects how balance mutations are applied against the store.
type Strategy string

const (
	// StrategyNaive reproduces the observed read-modify-write behavior. Two
	// instances mutating concurrently can lose one of the updates; kept as a
	// documented non-strict mode.
	StrategyNaive Strategy = "naive"

	// StrategyAtomic routes mutations through the store's atomic add, so
	// concurrent instances cannot overwrite each other.
	StrategyAtomic Strategy = "atomic"
)

// Ledger is the coin balance with credit/debit operations
type Ledger interface {
	// Read returns the current balance. A missing or corrupt stored value
	// reads as 0; read failures degrade to 0 rather than erroring.
	Read() int64

	// Credit increases the balance by amount and returns the new balance
	Credit(amount int64) (int64, error)

	// Debit decreases the balance by amount and returns the new balance.
	// Returns models.ErrInsufficientFunds when amount exceeds the balance,
	// leaving it unchanged.
	Debit(amount int64) (int64, error)
}

// New creates a ledger over the given store using the given strategy. An
// unknown strategy falls back to atomic.
func New(store interfaces.KeyValueStore, strategy Strategy) Ledger {
	switch strategy {
	case StrategyNaive:
		return &naiveLedger{store: store}
	case StrategyAtomic:
		return &atomicLedger{store: store}
	default:
		internal.GetLogger().Warn(internal.ComponentLedger,
			"Unknown ledger strategy %q, using atomic", strategy)
		return &atomicLedger{store: store}
	}
}

// ReadBalance reads the balance under the given store, recovering a missing
// or corrupt value to 0.
func ReadBalance(store interfaces.KeyValueStore) int64 {
	raw, err := store.Get(interfaces.KeyBalance)
	if err != nil {
		internal.GetLogger().Error(internal.ComponentLedger,
			"Failed to read balance, defaulting to 0: %v", err)
		return 0
	}
	if raw == "" {
		return 0
	}

	balance, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || balance < 0 {
		internal.GetLogger().Warn(internal.ComponentLedger,
			"Corrupt balance value %q, defaulting to 0: %v", raw, models.ErrSerialization)
		return 0
	}

	return balance
}

// naiveLedger performs unsynchronized read-modify-write mutations
type naiveLedger struct {
	store interfaces.KeyValueStore
}

func (l *naiveLedger) Read() int64 {
	return ReadBalance(l.store)
}

func (l *naiveLedger) Credit(amount int64) (int64, error) {
	if amount <= 0 {
		return l.Read(), fmt.Errorf("credit of %d: %w", amount, models.ErrInvalidAmount)
	}

	current := l.Read()
	next := current + amount
	if err := l.store.Set(interfaces.KeyBalance, strconv.FormatInt(next, 10)); err != nil {
		return current, fmt.Errorf("failed to credit %d coins: %w", amount, err)
	}

	return next, nil
}

func (l *naiveLedger) Debit(amount int64) (int64, error) {
	if amount <= 0 {
		return l.Read(), fmt.Errorf("debit of %d: %w", amount, models.ErrInvalidAmount)
	}

	current := l.Read()
	if amount > current {
		return current, fmt.Errorf("debit of %d from %d: %w", amount, current, models.ErrInsufficientFunds)
	}

	next := current - amount
	if err := l.store.Set(interfaces.KeyBalance, strconv.FormatInt(next, 10)); err != nil {
		return current, fmt.Errorf("failed to debit %d coins: %w", amount, err)
	}

	return next, nil
}

// atomicLedger routes mutations through the store's atomic add
type atomicLedger struct {
	store interfaces.KeyValueStore
}

func (l *atomicLedger) Read() int64 {
	return ReadBalance(l.store)
}

func (l *atomicLedger) Credit(amount int64) (int64, error) {
	if amount <= 0 {
		return l.Read(), fmt.Errorf("credit of %d: %w", amount, models.ErrInvalidAmount)
	}

	return l.store.Add(interfaces.KeyBalance, amount)
}

func (l *atomicLedger) Debit(amount int64) (int64, error) {
	if amount <= 0 {
		return l.Read(), fmt.Errorf("debit of %d: %w", amount, models.ErrInvalidAmount)
	}

	return l.store.Add(interfaces.KeyBalance, -amount)
}
