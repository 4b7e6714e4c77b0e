package ledger

import (
	"fmt"
	"strconv"

	"github.com/lootvault/lootvault-go/domain/models"
	"github.com/lootvault/lootvault-go/interfaces"
)

// Committer applies a balance delta and persists the serialized purchase log
// as one durable unit. This is the commit primitive behind a purchase: the
// ledger effect and the log append become visible together or not at all.
type Committer interface {
	// Commit applies delta to the balance and writes logValue under the
	// inventory key. Returns the resulting balance. A delta that would take
	// the balance negative fails with models.ErrInsufficientFunds and writes
	// nothing.
	Commit(delta int64, logValue string) (int64, error)
}

// NewCommitter creates a committer matching the given ledger strategy.
func NewCommitter(store interfaces.KeyValueStore, strategy Strategy) Committer {
	if strategy == StrategyNaive {
		return &naiveCommitter{store: store}
	}
	return &atomicCommitter{store: store}
}

// naiveCommitter pairs a read-modify-write balance update with the log write
// in one multi-key store write. Atomic within the instance, but a concurrent
// sibling mutation between the read and the write is lost.
type naiveCommitter struct {
	store interfaces.KeyValueStore
}

func (c *naiveCommitter) Commit(delta int64, logValue string) (int64, error) {
	current := ReadBalance(c.store)
	next := current + delta
	if next < 0 {
		return current, fmt.Errorf("commit of %d against %d: %w", delta, current, models.ErrInsufficientFunds)
	}

	err := c.store.SetMulti(map[string]string{
		interfaces.KeyBalance:   strconv.FormatInt(next, 10),
		interfaces.KeyInventory: logValue,
	})
	if err != nil {
		return current, fmt.Errorf("failed to commit purchase: %w", err)
	}

	return next, nil
}

// atomicCommitter uses the store's combined add-and-set primitive
type atomicCommitter struct {
	store interfaces.KeyValueStore
}

func (c *atomicCommitter) Commit(delta int64, logValue string) (int64, error) {
	return c.store.AddAndSet(interfaces.KeyBalance, delta, interfaces.KeyInventory, logValue)
}
