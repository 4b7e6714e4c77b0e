package catalog

import (
	"errors"
	"testing"

	"github.com/lootvault/lootvault-go/domain/models"
	"github.com/lootvault/lootvault-go/internal"
)

func TestCatalog_Item(t *testing.T) {
	cat := Default()

	item, err := cat.Item("c1")
	if err != nil {
		t.Fatalf("Expected to find item 'c1', but got '%v'", err)
	}
	if item.Name != "Small Pack" {
		t.Errorf("Expected 'Small Pack', but got '%s'", item.Name)
	}
	if item.UnitAmount != 500 {
		t.Errorf("Expected 500 coins, but got %d", item.UnitAmount)
	}

	if _, err := cat.Item("no-such-item"); !errors.Is(err, models.ErrItemNotFound) {
		t.Errorf("Expected '%v', but got '%v'", models.ErrItemNotFound, err)
	}
}

func TestCatalog_SkipsInvalidItems(t *testing.T) {
	cat := New([]models.CatalogItem{
		{ID: "c1", Name: "Small Pack", Kind: models.RecordKindCurrency, UnitAmount: 500, UnitPrice: 4.99},
		{ID: "bad", Name: "", Kind: models.RecordKindSkin, CostCoins: 100},
	})

	if len(cat.Items()) != 1 {
		t.Fatalf("Expected the invalid item to be skipped, but got %d items", len(cat.Items()))
	}
	if _, err := cat.Item("bad"); err == nil {
		t.Error("Expected the invalid item to be absent")
	}
}

func TestCatalog_ByKind(t *testing.T) {
	cat := Default()

	packs := cat.ByKind(models.RecordKindCurrency)
	if len(packs) != 6 {
		t.Fatalf("Expected 6 coin packages, but got %d", len(packs))
	}
	if packs[0].ID != "c1" || packs[5].ID != "c6" {
		t.Errorf("Expected packages in catalog order, but got '%s' ... '%s'", packs[0].ID, packs[5].ID)
	}

	events := cat.ByKind(models.RecordKindEvent)
	if len(events) != 5 {
		t.Fatalf("Expected 5 event offers, but got %d", len(events))
	}
}

func TestCatalog_Replace(t *testing.T) {
	cat := Default()

	cat.Replace([]models.CatalogItem{
		{ID: "c1", Name: "Small Pack", Kind: models.RecordKindCurrency, UnitAmount: 550, UnitPrice: 4.99},
	})

	if len(cat.Items()) != 1 {
		t.Fatalf("Expected 1 item after replace, but got %d", len(cat.Items()))
	}
	item, err := cat.Item("c1")
	if err != nil {
		t.Fatalf("Expected to find 'c1', but got '%v'", err)
	}
	if item.UnitAmount != 550 {
		t.Errorf("Expected the fetched amount 550, but got %d", item.UnitAmount)
	}
}

func TestFromConfig(t *testing.T) {
	cat := FromConfig([]internal.CatalogItemConfig{
		{ID: "x1", Name: "Custom Pack", Kind: "currency", UnitAmount: 700, UnitPrice: 5.99},
	})

	item, err := cat.Item("x1")
	if err != nil {
		t.Fatalf("Expected the configured item, but got '%v'", err)
	}
	if item.Kind != models.RecordKindCurrency {
		t.Errorf("Expected kind '%s', but got '%s'", models.RecordKindCurrency, item.Kind)
	}
}

func TestFromConfig_EmptyFallsBackToDefault(t *testing.T) {
	cat := FromConfig(nil)

	if _, err := cat.Item("c1"); err != nil {
		t.Errorf("Expected the default tables, but 'c1' is missing: %v", err)
	}
	if len(cat.Items()) != 15 {
		t.Errorf("Expected the 15 default items, but got %d", len(cat.Items()))
	}
}
