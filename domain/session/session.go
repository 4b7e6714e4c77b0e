// Package session exposes the auth collaborator's token to the purchase
// workflow. The core only checks token presence; login itself happens in the
// surrounding application.
package session

import (
	"fmt"

	"github.com/lootvault/lootvault-go/interfaces"
	"github.com/lootvault/lootvault-go/internal"
)

// Provider supplies the current session token; empty means no session.
type Provider interface {
	Token() string
}

// StoreProvider reads the session token from the persistent store, where the
// surrounding application's auth flow placed it.
type StoreProvider struct {
	store interfaces.KeyValueStore
}

// NewStoreProvider creates a store-backed session provider
func NewStoreProvider(store interfaces.KeyValueStore) *StoreProvider {
	return &StoreProvider{store: store}
}

// Token returns the stored session token, or "" when absent or unreadable
func (p *StoreProvider) Token() string {
	token, err := p.store.Get(interfaces.KeyAuthToken)
	if err != nil {
		internal.GetLogger().Warn(internal.ComponentGeneral,
			"Failed to read session token: %v", err)
		return ""
	}
	return token
}

// Logout clears the session token and purges the purchase log, the clearing
// side effect account logout carries.
func Logout(store interfaces.KeyValueStore) error {
	if err := store.Delete(interfaces.KeyAuthToken); err != nil {
		return fmt.Errorf("failed to clear session token: %w", err)
	}
	if err := store.Delete(interfaces.KeyInventory); err != nil {
		return fmt.Errorf("failed to purge inventory on logout: %w", err)
	}
	return nil
}
