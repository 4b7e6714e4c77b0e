package models

import (
	"errors"
	"testing"
)

func TestNewPurchaseRecord(t *testing.T) {
	rec := NewPurchaseRecord(RecordKindCurrency, "Small Pack", "", 500, 4.99)

	if rec.ID != "" {
		t.Errorf("Expected new record to have no ID until appended, but got '%s'", rec.ID)
	}
	if rec.Status != RecordStatusPending {
		t.Errorf("Expected new record status to be '%s', but got '%s'", RecordStatusPending, rec.Status)
	}
	if rec.Quantity != 500 {
		t.Errorf("Expected quantity to be 500, but got %d", rec.Quantity)
	}
	if rec.CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be set, but it was zero")
	}
}

func TestPurchaseRecord_Validate(t *testing.T) {
	tests := []struct {
		name      string
		record    *PurchaseRecord
		expectErr bool
		errType   error
	}{
		{
			name:      "Valid currency record",
			record:    NewPurchaseRecord(RecordKindCurrency, "Small Pack", "", 500, 4.99),
			expectErr: false,
		},
		{
			name:      "Valid event record with game tag",
			record:    NewPurchaseRecord(RecordKindEvent, "Limited Skin Crate", "CODM", 1, 0),
			expectErr: false,
		},
		{
			name:      "Missing name",
			record:    NewPurchaseRecord(RecordKindSkin, "", "", 1, 0),
			expectErr: true,
			errType:   ErrMissingRecordName,
		},
		{
			name:      "Zero quantity",
			record:    NewPurchaseRecord(RecordKindBundle, "Starter Bundle", "", 0, 0),
			expectErr: true,
			errType:   ErrInvalidQuantity,
		},
		{
			name:      "Negative quantity",
			record:    NewPurchaseRecord(RecordKindBundle, "Starter Bundle", "", -3, 0),
			expectErr: true,
			errType:   ErrInvalidQuantity,
		},
		{
			name:      "Unknown kind",
			record:    NewPurchaseRecord(RecordKind("mystery"), "Mystery Box", "", 1, 0),
			expectErr: true,
			errType:   ErrInvalidRecordKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.record.Validate()
			if tt.expectErr {
				if err == nil {
					t.Fatal("Expected an error, but got nil")
				}
				if !errors.Is(err, tt.errType) {
					t.Errorf("Expected error '%v', but got '%v'", tt.errType, err)
				}
				return
			}
			if err != nil {
				t.Errorf("Expected no error, but got '%v'", err)
			}
		})
	}
}

func TestPurchaseRecord_MarkAsRedeemed(t *testing.T) {
	rec := NewPurchaseRecord(RecordKindSkin, "Dragon Skin", "ML", 1, 0)

	if err := rec.MarkAsRedeemed(); !errors.Is(err, ErrNotRedeemable) {
		t.Errorf("Expected redeeming a pending record to fail with '%v', but got '%v'", ErrNotRedeemable, err)
	}

	rec.MarkAsCompleted()
	if err := rec.MarkAsRedeemed(); err != nil {
		t.Fatalf("Expected redeeming a completed record to succeed, but got '%v'", err)
	}
	if rec.Status != RecordStatusRedeemed {
		t.Errorf("Expected status '%s', but got '%s'", RecordStatusRedeemed, rec.Status)
	}

	// Redeeming twice is rejected
	if err := rec.MarkAsRedeemed(); !errors.Is(err, ErrNotRedeemable) {
		t.Errorf("Expected redeeming twice to fail with '%v', but got '%v'", ErrNotRedeemable, err)
	}

	rec.MarkAsFailed()
	if err := rec.MarkAsRedeemed(); !errors.Is(err, ErrNotRedeemable) {
		t.Errorf("Expected redeeming a failed record to fail with '%v', but got '%v'", ErrNotRedeemable, err)
	}
}
