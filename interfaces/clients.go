package interfaces

import (
	"context"

	"github.com/lootvault/lootvault-go/domain/models"
)

// ErrorType represents different types of client errors
type ErrorType string

const (
	ErrorTypeNetwork  ErrorType = "network"
	ErrorTypeAuth     ErrorType = "auth"
	ErrorTypeInvalid  ErrorType = "invalid"
	ErrorTypeNotFound ErrorType = "not_found"
)

// ClientError represents an error from a client
type ClientError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *ClientError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// NewClientError creates a new client error
func NewClientError(errorType ErrorType, message string, err error) error {
	return &ClientError{
		Type:    errorType,
		Message: message,
		Err:     err,
	}
}

// CatalogClient defines the interface for remote catalog providers. The core
// works without one: catalog fetches are fire-and-forget refreshes and a
// failure never blocks or fails a local purchase.
type CatalogClient interface {
	// FetchItems retrieves the current product list from the remote backend
	FetchItems(ctx context.Context) ([]models.CatalogItem, error)

	// BaseURL returns the backend base URL the client talks to
	BaseURL() string
}
