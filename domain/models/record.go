package models

import (
	"time"
)

// RecordKind defines the kind of a purchase record
type RecordKind string

const (
	// RecordKindCurrency represents a real-money coin package purchase
	RecordKindCurrency RecordKind = "currency"

	// RecordKindBundle represents a bundle bought with coins
	RecordKindBundle RecordKind = "bundle"

	// RecordKindSkin represents a skin bought with coins
	RecordKindSkin RecordKind = "skin"

	// RecordKindEvent represents a limited-time event item
	RecordKindEvent RecordKind = "event"
)

// RecordStatus defines the status of a purchase record
type RecordStatus string

const (
	// RecordStatusPending represents a purchase that has not committed yet
	RecordStatusPending RecordStatus = "pending"

	// RecordStatusCompleted represents a committed purchase
	RecordStatusCompleted RecordStatus = "completed"

	// RecordStatusFailed represents a purchase that did not commit
	RecordStatusFailed RecordStatus = "failed"

	// RecordStatusRedeemed represents a completed purchase that was redeemed in-game
	RecordStatusRedeemed RecordStatus = "redeemed"
)

// PurchaseRecord is one entry in the append-only purchase log. Once a record
// reaches completed status its fields are frozen; the only permitted later
// change is the completed -> redeemed transition.
type PurchaseRecord struct {
	ID        string       `json:"id"`
	Kind      RecordKind   `json:"type"`
	Name      string       `json:"name"`
	Game      string       `json:"game,omitempty"`
	Quantity  int64        `json:"quantity"`
	UnitPrice float64      `json:"price,omitempty"`
	Status    RecordStatus `json:"status"`
	CreatedAt time.Time    `json:"date"`
}

// NewPurchaseRecord creates a new pending purchase record. The ID is assigned
// by the purchase log on append.
func NewPurchaseRecord(kind RecordKind, name, game string, quantity int64, unitPrice float64) *PurchaseRecord {
	return &PurchaseRecord{
		Kind:      kind,
		Name:      name,
		Game:      game,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Status:    RecordStatusPending,
		CreatedAt: time.Now(),
	}
}

// Validate checks if the record is valid
func (r *PurchaseRecord) Validate() error {
	if r.Name == "" {
		return ErrMissingRecordName
	}

	if r.Quantity <= 0 {
		return ErrInvalidQuantity
	}

	switch r.Kind {
	case RecordKindCurrency, RecordKindBundle, RecordKindSkin, RecordKindEvent:
	default:
		return ErrInvalidRecordKind
	}

	return nil
}

// MarkAsCompleted marks the record as completed
func (r *PurchaseRecord) MarkAsCompleted() {
	r.Status = RecordStatusCompleted
}

// MarkAsFailed marks the record as failed
func (r *PurchaseRecord) MarkAsFailed() {
	r.Status = RecordStatusFailed
}

// MarkAsRedeemed transitions a completed record to redeemed. Any other
// starting status is rejected.
func (r *PurchaseRecord) MarkAsRedeemed() error {
	if r.Status != RecordStatusCompleted {
		return ErrNotRedeemable
	}

	r.Status = RecordStatusRedeemed
	return nil
}
