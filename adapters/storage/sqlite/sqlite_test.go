package sqlite

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/lootvault/lootvault-go/domain/models"
	"github.com/lootvault/lootvault-go/interfaces"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "lootvault.db")
	store, err := New(path)
	if err != nil {
		t.Fatalf("Expected the store to open, but got '%v'", err)
	}
	t.Cleanup(func() { store.Close() })
	return store, path
}

func TestStore_SetGet(t *testing.T) {
	store, _ := openTestStore(t)

	if value, err := store.Get("missing"); err != nil || value != "" {
		t.Errorf("Expected a missing key to read as empty, but got '%s' / '%v'", value, err)
	}

	if err := store.Set(interfaces.KeyBalance, "500"); err != nil {
		t.Fatalf("Expected Set to succeed, but got '%v'", err)
	}
	value, err := store.Get(interfaces.KeyBalance)
	if err != nil {
		t.Fatalf("Expected Get to succeed, but got '%v'", err)
	}
	if value != "500" {
		t.Errorf("Expected '500', but got '%s'", value)
	}

	// Overwrite through the upsert path
	if err := store.Set(interfaces.KeyBalance, "700"); err != nil {
		t.Fatalf("Expected Set to succeed, but got '%v'", err)
	}
	if value, _ := store.Get(interfaces.KeyBalance); value != "700" {
		t.Errorf("Expected '700', but got '%s'", value)
	}
}

func TestStore_SetMulti(t *testing.T) {
	store, _ := openTestStore(t)

	err := store.SetMulti(map[string]string{
		interfaces.KeyBalance:   "250",
		interfaces.KeyInventory: "[]",
	})
	if err != nil {
		t.Fatalf("Expected SetMulti to succeed, but got '%v'", err)
	}

	if value, _ := store.Get(interfaces.KeyBalance); value != "250" {
		t.Errorf("Expected '250', but got '%s'", value)
	}
	if value, _ := store.Get(interfaces.KeyInventory); value != "[]" {
		t.Errorf("Expected '[]', but got '%s'", value)
	}
}

func TestStore_Add(t *testing.T) {
	store, _ := openTestStore(t)

	balance, err := store.Add(interfaces.KeyBalance, 500)
	if err != nil {
		t.Fatalf("Expected Add to succeed, but got '%v'", err)
	}
	if balance != 500 {
		t.Errorf("Expected balance 500, but got %d", balance)
	}

	balance, err = store.Add(interfaces.KeyBalance, -600)
	if !errors.Is(err, models.ErrInsufficientFunds) {
		t.Fatalf("Expected '%v', but got '%v'", models.ErrInsufficientFunds, err)
	}
	if balance != 500 {
		t.Errorf("Expected the balance to stay at 500, but got %d", balance)
	}
	if value, _ := store.Get(interfaces.KeyBalance); value != "500" {
		t.Errorf("Expected the stored value to stay '500', but got '%s'", value)
	}
}

func TestStore_AddRecoversCorruptValue(t *testing.T) {
	store, _ := openTestStore(t)

	if err := store.Set(interfaces.KeyBalance, "garbage"); err != nil {
		t.Fatalf("Expected Set to succeed, but got '%v'", err)
	}

	balance, err := store.Add(interfaces.KeyBalance, 50)
	if err != nil {
		t.Fatalf("Expected Add to succeed, but got '%v'", err)
	}
	if balance != 50 {
		t.Errorf("Expected balance 50 after recovering a corrupt value, but got %d", balance)
	}
}

func TestStore_AddAndSet(t *testing.T) {
	store, _ := openTestStore(t)

	balance, err := store.AddAndSet(interfaces.KeyBalance, 500, interfaces.KeyInventory, `[{"id":"c1-1"}]`)
	if err != nil {
		t.Fatalf("Expected AddAndSet to succeed, but got '%v'", err)
	}
	if balance != 500 {
		t.Errorf("Expected balance 500, but got %d", balance)
	}
	if value, _ := store.Get(interfaces.KeyInventory); value != `[{"id":"c1-1"}]` {
		t.Errorf("Expected the log write to land with the add, but got '%s'", value)
	}

	// A rejected add writes neither key
	_, err = store.AddAndSet(interfaces.KeyBalance, -1500, interfaces.KeyInventory, "[]")
	if !errors.Is(err, models.ErrInsufficientFunds) {
		t.Fatalf("Expected '%v', but got '%v'", models.ErrInsufficientFunds, err)
	}
	if value, _ := store.Get(interfaces.KeyBalance); value != "500" {
		t.Errorf("Expected the balance to stay '500', but got '%s'", value)
	}
	if value, _ := store.Get(interfaces.KeyInventory); value != `[{"id":"c1-1"}]` {
		t.Errorf("Expected the log to stay untouched, but got '%s'", value)
	}
}

func TestStore_Delete(t *testing.T) {
	store, _ := openTestStore(t)

	if err := store.Set(interfaces.KeyAuthToken, "tok"); err != nil {
		t.Fatalf("Expected Set to succeed, but got '%v'", err)
	}
	if err := store.Delete(interfaces.KeyAuthToken); err != nil {
		t.Fatalf("Expected Delete to succeed, but got '%v'", err)
	}
	if value, _ := store.Get(interfaces.KeyAuthToken); value != "" {
		t.Errorf("Expected the key to be gone, but got '%s'", value)
	}
}

// Two handles onto the same file see each other's writes, the way two
// application instances share one persistence layer.
func TestStore_SharedFileBetweenHandles(t *testing.T) {
	_, path := openTestStore(t)

	tabA, err := New(path)
	if err != nil {
		t.Fatalf("Expected a second handle to open, but got '%v'", err)
	}
	defer tabA.Close()
	tabB, err := New(path)
	if err != nil {
		t.Fatalf("Expected a third handle to open, but got '%v'", err)
	}
	defer tabB.Close()

	if _, err := tabA.Add(interfaces.KeyBalance, 500); err != nil {
		t.Fatalf("Expected Add to succeed, but got '%v'", err)
	}

	value, err := tabB.Get(interfaces.KeyBalance)
	if err != nil {
		t.Fatalf("Expected the sibling handle to read, but got '%v'", err)
	}
	if value != "500" {
		t.Errorf("Expected the sibling handle to read '500', but got '%s'", value)
	}
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lootvault.db")

	store, err := New(path)
	if err != nil {
		t.Fatalf("Expected the store to open, but got '%v'", err)
	}
	if err := store.Set(interfaces.KeyBalance, "1234"); err != nil {
		t.Fatalf("Expected Set to succeed, but got '%v'", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Expected Close to succeed, but got '%v'", err)
	}

	reopened, err := New(path)
	if err != nil {
		t.Fatalf("Expected the store to reopen, but got '%v'", err)
	}
	defer reopened.Close()

	if value, _ := reopened.Get(interfaces.KeyBalance); value != "1234" {
		t.Errorf("Expected the balance to survive a restart, but got '%s'", value)
	}
}
