package models

// CatalogItem is an externally supplied, read-only purchasable unit. Currency
// packages carry a real-money price and grant UnitAmount (+BonusAmount) coins;
// bundles, skins and event items carry a coin cost instead.
type CatalogItem struct {
	ID          string     `json:"id" mapstructure:"id"`
	Name        string     `json:"name" mapstructure:"name"`
	Kind        RecordKind `json:"kind" mapstructure:"kind"`
	Game        string     `json:"game,omitempty" mapstructure:"game"`
	UnitAmount  int64      `json:"unit_amount,omitempty" mapstructure:"unit_amount"`
	BonusAmount int64      `json:"bonus_amount,omitempty" mapstructure:"bonus_amount"`
	UnitPrice   float64    `json:"unit_price,omitempty" mapstructure:"unit_price"`
	CostCoins   int64      `json:"cost_coins,omitempty" mapstructure:"cost_coins"`
	Stock       int64      `json:"stock,omitempty" mapstructure:"stock"`
}

// CoinDenominated reports whether the item is paid for with coins rather than
// real money.
func (c *CatalogItem) CoinDenominated() bool {
	return c.CostCoins > 0
}

// TotalCoins returns the number of coins a currency package grants, bonus
// included.
func (c *CatalogItem) TotalCoins() int64 {
	return c.UnitAmount + c.BonusAmount
}

// BoundedStock reports whether the item has a finite stock.
func (c *CatalogItem) BoundedStock() bool {
	return c.Stock > 0
}

// Validate checks if the catalog item is valid
func (c *CatalogItem) Validate() error {
	if c.ID == "" {
		return ErrMissingItemID
	}

	if c.Name == "" {
		return ErrMissingItemName
	}

	switch c.Kind {
	case RecordKindCurrency:
		if c.UnitAmount <= 0 {
			return ErrInvalidAmount
		}
	case RecordKindBundle, RecordKindSkin, RecordKindEvent:
		if c.CostCoins <= 0 && c.UnitPrice <= 0 {
			return ErrInvalidAmount
		}
	default:
		return ErrInvalidRecordKind
	}

	return nil
}
