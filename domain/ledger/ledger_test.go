package ledger

import (
	"errors"
	"sync"
	"testing"

	"github.com/lootvault/lootvault-go/adapters/storage/memory"
	"github.com/lootvault/lootvault-go/domain/models"
	"github.com/lootvault/lootvault-go/interfaces"
)

func TestLedger_CreditDebit(t *testing.T) {
	strategies := []Strategy{StrategyNaive, StrategyAtomic}

	for _, strategy := range strategies {
		t.Run(string(strategy), func(t *testing.T) {
			coinLedger := New(memory.New(), strategy)

			if balance := coinLedger.Read(); balance != 0 {
				t.Fatalf("Expected a fresh ledger to read 0, but got %d", balance)
			}

			balance, err := coinLedger.Credit(500)
			if err != nil {
				t.Fatalf("Expected Credit to succeed, but got '%v'", err)
			}
			if balance != 500 {
				t.Errorf("Expected balance 500, but got %d", balance)
			}

			balance, err = coinLedger.Debit(300)
			if err != nil {
				t.Fatalf("Expected Debit to succeed, but got '%v'", err)
			}
			if balance != 200 {
				t.Errorf("Expected balance 200, but got %d", balance)
			}

			if balance := coinLedger.Read(); balance != 200 {
				t.Errorf("Expected the stored balance to read 200, but got %d", balance)
			}
		})
	}
}

func TestLedger_DebitInsufficientFunds(t *testing.T) {
	strategies := []Strategy{StrategyNaive, StrategyAtomic}

	for _, strategy := range strategies {
		t.Run(string(strategy), func(t *testing.T) {
			coinLedger := New(memory.New(), strategy)

			if _, err := coinLedger.Credit(500); err != nil {
				t.Fatalf("Expected Credit to succeed, but got '%v'", err)
			}

			_, err := coinLedger.Debit(1500)
			if !errors.Is(err, models.ErrInsufficientFunds) {
				t.Fatalf("Expected '%v', but got '%v'", models.ErrInsufficientFunds, err)
			}
			if balance := coinLedger.Read(); balance != 500 {
				t.Errorf("Expected the balance to stay at 500, but got %d", balance)
			}
		})
	}
}

func TestLedger_InvalidAmounts(t *testing.T) {
	coinLedger := New(memory.New(), StrategyAtomic)

	if _, err := coinLedger.Credit(0); !errors.Is(err, models.ErrInvalidAmount) {
		t.Errorf("Expected crediting 0 to fail with '%v', but got '%v'", models.ErrInvalidAmount, err)
	}
	if _, err := coinLedger.Credit(-10); !errors.Is(err, models.ErrInvalidAmount) {
		t.Errorf("Expected crediting -10 to fail with '%v', but got '%v'", models.ErrInvalidAmount, err)
	}
	if _, err := coinLedger.Debit(0); !errors.Is(err, models.ErrInvalidAmount) {
		t.Errorf("Expected debiting 0 to fail with '%v', but got '%v'", models.ErrInvalidAmount, err)
	}
}

func TestReadBalance_Recovery(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		want   int64
	}{
		{name: "Missing value", stored: "", want: 0},
		{name: "Corrupt value", stored: "garbage", want: 0},
		{name: "Negative value", stored: "-50", want: 0},
		{name: "Valid value", stored: "1234", want: 1234},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.New()
			if tt.stored != "" {
				if err := store.Set(interfaces.KeyBalance, tt.stored); err != nil {
					t.Fatalf("Expected Set to succeed, but got '%v'", err)
				}
			}

			if got := ReadBalance(store); got != tt.want {
				t.Errorf("Expected balance %d, but got %d", tt.want, got)
			}
		})
	}
}

// staleStore serves reads from a frozen snapshot while writing through to the
// real store. It reproduces the window where one instance works from a balance
// it read before a sibling committed.
type staleStore struct {
	interfaces.KeyValueStore
	staleBalance string
}

func (s *staleStore) Get(key string) (string, error) {
	if key == interfaces.KeyBalance {
		return s.staleBalance, nil
	}
	return s.KeyValueStore.Get(key)
}

// Two instances credit concurrently; the naive read-modify-write strategy
// overwrites the sibling's update, the atomic strategy keeps both.
func TestLedger_ConcurrentSiblingUpdate(t *testing.T) {
	tests := []struct {
		name     string
		strategy Strategy
		want     int64
	}{
		{name: "Naive strategy loses the sibling update", strategy: StrategyNaive, want: 150},
		{name: "Atomic strategy keeps both updates", strategy: StrategyAtomic, want: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backing := memory.NewBacking()
			shared := backing.OpenStore()
			if err := shared.Set(interfaces.KeyBalance, "100"); err != nil {
				t.Fatalf("Expected Set to succeed, but got '%v'", err)
			}

			// Tab A read 100 before tab B committed
			tabA := New(&staleStore{KeyValueStore: backing.OpenStore(), staleBalance: "100"}, tt.strategy)
			tabB := New(backing.OpenStore(), StrategyAtomic)

			if _, err := tabB.Credit(50); err != nil {
				t.Fatalf("Expected tab B's credit to succeed, but got '%v'", err)
			}
			if _, err := tabA.Credit(50); err != nil {
				t.Fatalf("Expected tab A's credit to succeed, but got '%v'", err)
			}

			if got := ReadBalance(shared); got != tt.want {
				t.Errorf("Expected final balance %d, but got %d", tt.want, got)
			}
		})
	}
}

func TestLedger_AtomicUnderContention(t *testing.T) {
	backing := memory.NewBacking()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			coinLedger := New(backing.OpenStore(), StrategyAtomic)
			for j := 0; j < 100; j++ {
				if _, err := coinLedger.Credit(1); err != nil {
					t.Errorf("Expected Credit to succeed, but got '%v'", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	if got := ReadBalance(backing.OpenStore()); got != 1000 {
		t.Errorf("Expected 1000 after 10x100 concurrent credits, but got %d", got)
	}
}
