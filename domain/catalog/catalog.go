// Package catalog holds the read-only product tables: coin packages, bundles,
// skins and event offers. The tables come from configuration (or the
// compiled-in defaults) and optionally get refreshed from the remote backend;
// the core never mutates or persists them.
package catalog

import (
	"fmt"
	"sync"

	"github.com/lootvault/lootvault-go/domain/models"
	"github.com/lootvault/lootvault-go/internal"
)

// Catalog is a lookup table of purchasable items
type Catalog struct {
	mu    sync.RWMutex
	order []string
	items map[string]models.CatalogItem
}

// New creates a catalog from the given items, preserving their order.
// Invalid items are skipped with a logged warning.
func New(items []models.CatalogItem) *Catalog {
	c := &Catalog{
		items: make(map[string]models.CatalogItem, len(items)),
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			internal.GetLogger().Warn(internal.ComponentCatalog,
				"Skipping invalid catalog item %q: %v", item.ID, err)
			continue
		}
		if _, exists := c.items[item.ID]; !exists {
			c.order = append(c.order, item.ID)
		}
		c.items[item.ID] = item
	}

	return c
}

// FromConfig builds a catalog from configured entries, falling back to the
// compiled-in default tables when none are configured.
func FromConfig(entries []internal.CatalogItemConfig) *Catalog {
	if len(entries) == 0 {
		return Default()
	}

	items := make([]models.CatalogItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, models.CatalogItem{
			ID:          e.ID,
			Name:        e.Name,
			Kind:        models.RecordKind(e.Kind),
			Game:        e.Game,
			UnitAmount:  e.UnitAmount,
			BonusAmount: e.BonusAmount,
			UnitPrice:   e.UnitPrice,
			CostCoins:   e.CostCoins,
			Stock:       e.Stock,
		})
	}

	return New(items)
}

// Item returns the item with the given ID
func (c *Catalog) Item(id string) (models.CatalogItem, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.items[id]
	if !ok {
		return models.CatalogItem{}, fmt.Errorf("item %q: %w", id, models.ErrItemNotFound)
	}
	return item, nil
}

// Items returns all items in catalog order
func (c *Catalog) Items() []models.CatalogItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	items := make([]models.CatalogItem, 0, len(c.order))
	for _, id := range c.order {
		items = append(items, c.items[id])
	}
	return items
}

// ByKind returns all items of the given kind in catalog order
func (c *Catalog) ByKind(kind models.RecordKind) []models.CatalogItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	items := make([]models.CatalogItem, 0, len(c.order))
	for _, id := range c.order {
		if c.items[id].Kind == kind {
			items = append(items, c.items[id])
		}
	}
	return items
}

// Replace swaps the tables for freshly fetched ones. Used by the remote
// catalog refresh; a failed fetch simply leaves the current tables in place.
func (c *Catalog) Replace(items []models.CatalogItem) {
	fresh := New(items)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.order = fresh.order
	c.items = fresh.items
}

// Default returns the compiled-in price tables
func Default() *Catalog {
	return New([]models.CatalogItem{
		// Coin packages
		{ID: "c1", Name: "Small Pack", Kind: models.RecordKindCurrency, UnitAmount: 500, UnitPrice: 4.99},
		{ID: "c2", Name: "Medium Pack", Kind: models.RecordKindCurrency, UnitAmount: 1200, BonusAmount: 50, UnitPrice: 9.99},
		{ID: "c3", Name: "Large Pack", Kind: models.RecordKindCurrency, UnitAmount: 3000, BonusAmount: 200, UnitPrice: 19.99},
		{ID: "c4", Name: "Mega Pack", Kind: models.RecordKindCurrency, UnitAmount: 10000, BonusAmount: 1000, UnitPrice: 49.99},
		{ID: "c5", Name: "Ultra Pack", Kind: models.RecordKindCurrency, UnitAmount: 25000, BonusAmount: 3000, UnitPrice: 99.99},
		{ID: "c6", Name: "Insane Pack", Kind: models.RecordKindCurrency, UnitAmount: 100000, BonusAmount: 15000, UnitPrice: 299.99},

		// Bundles
		{ID: "b1", Name: "Starter Bundle", Kind: models.RecordKindBundle, CostCoins: 1000},
		{ID: "b2", Name: "Pro Bundle", Kind: models.RecordKindBundle, CostCoins: 2500},

		// Skins
		{ID: "s1", Name: "Crimson Blade", Kind: models.RecordKindSkin, CostCoins: 800},
		{ID: "s2", Name: "Celestial Armor", Kind: models.RecordKindSkin, CostCoins: 2000},

		// Event offers
		{ID: "e-codm-1", Name: "Ghost Operator Skin", Kind: models.RecordKindEvent, Game: "CODM", UnitPrice: 4.99},
		{ID: "e-ml-1", Name: "Aurora Epic Skin", Kind: models.RecordKindEvent, Game: "ML", UnitPrice: 3.99},
		{ID: "e-roblox-1", Name: "Retro Hat Bundle", Kind: models.RecordKindEvent, Game: "RBX", CostCoins: 1500},
		{ID: "e-genshin-1", Name: "Paimon Themed Skin", Kind: models.RecordKindEvent, Game: "GI", UnitPrice: 9.99},
		{ID: "e-lid-1", Name: "Ethereal Suit", Kind: models.RecordKindEvent, Game: "LID", CostCoins: 800},
	})
}
