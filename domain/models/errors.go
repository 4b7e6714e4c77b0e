package models

import (
	"errors"
)

// Domain error types
var (
	// Ledger errors
	// ErrInsufficientFunds is returned when a debit exceeds the current balance
	ErrInsufficientFunds = errors.New("balance has insufficient coins for this purchase")

	// ErrInvalidAmount is returned when a credit or debit amount is not positive
	ErrInvalidAmount = errors.New("amount must be greater than 0")

	// Workflow errors
	// ErrNotAuthenticated is returned when a purchase is confirmed without a valid session
	ErrNotAuthenticated = errors.New("purchase requires an authenticated session")

	// ErrInvalidQuantity is returned when a selection quantity is non-positive or exceeds stock
	ErrInvalidQuantity = errors.New("quantity must be at least 1 and within available stock")

	// ErrInvalidTransition is returned when a workflow operation is called from the wrong state
	ErrInvalidTransition = errors.New("operation not allowed in the current workflow state")

	// Record errors
	// ErrMissingRecordName is returned when a purchase record has no name
	ErrMissingRecordName = errors.New("purchase record must have a name")

	// ErrInvalidRecordKind is returned when a record kind is not one of the known kinds
	ErrInvalidRecordKind = errors.New("invalid purchase record kind")

	// ErrNotRedeemable is returned when redeeming a record that is not completed
	ErrNotRedeemable = errors.New("only completed purchases can be redeemed")

	// ErrRecordNotFound is returned when a purchase record is not found
	ErrRecordNotFound = errors.New("purchase record not found")

	// Catalog errors
	// ErrMissingItemID is returned when a catalog item has no ID
	ErrMissingItemID = errors.New("catalog item must have an ID")

	// ErrMissingItemName is returned when a catalog item has no name
	ErrMissingItemName = errors.New("catalog item must have a name")

	// ErrItemNotFound is returned when a catalog item is not found
	ErrItemNotFound = errors.New("catalog item not found")

	// Storage errors
	// ErrStorageUnavailable is returned when a durable write fails
	ErrStorageUnavailable = errors.New("persistent store is unavailable")

	// ErrSerialization is returned when a stored value cannot be decoded;
	// readers recover to the type's default value
	ErrSerialization = errors.New("stored value is corrupt")
)
