// Package remote talks to the optional storefront backend. The core is
// offline-first: every call here is a best-effort refresh and a failure never
// blocks or fails a local purchase.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/lootvault/lootvault-go/domain/catalog"
	"github.com/lootvault/lootvault-go/domain/models"
	"github.com/lootvault/lootvault-go/interfaces"
	"github.com/lootvault/lootvault-go/internal"
)

const (
	// DefaultTimeout for HTTP requests
	DefaultTimeout = 10 * time.Second
	// ComponentName for logging
	ComponentName internal.Component = "Remote"
)

// HTTPClient interface for dependency injection and testing
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// CatalogHTTPClient fetches the product list from the storefront backend
type CatalogHTTPClient struct {
	baseURL    string
	httpClient HTTPClient
	logger     *internal.Logger
}

// NewCatalogClient creates a client against the given backend base URL
func NewCatalogClient(baseURL string) *CatalogHTTPClient {
	return &CatalogHTTPClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     internal.GetLogger(),
	}
}

// NewCatalogClientWithHTTP creates a client with a custom HTTP client
func NewCatalogClientWithHTTP(baseURL string, httpClient HTTPClient) *CatalogHTTPClient {
	return &CatalogHTTPClient{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     internal.GetLogger(),
	}
}

// BaseURL returns the backend base URL the client talks to
func (c *CatalogHTTPClient) BaseURL() string {
	return c.baseURL
}

// productPayload is the backend's product wire shape
type productPayload struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Kind        string  `json:"kind"`
	Game        string  `json:"game"`
	UnitAmount  int64   `json:"unit_amount"`
	BonusAmount int64   `json:"bonus_amount"`
	Price       float64 `json:"price"`
	CostCoins   int64   `json:"cost_coins"`
	Stock       int64   `json:"stock"`
}

// FetchItems retrieves the current product list from the backend
func (c *CatalogHTTPClient) FetchItems(ctx context.Context) ([]models.CatalogItem, error) {
	url := c.baseURL + "/api/products/"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, interfaces.NewClientError(interfaces.ErrorTypeNetwork, "catalog request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, interfaces.NewClientError(interfaces.ErrorTypeNotFound, "catalog endpoint not found", nil)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, interfaces.NewClientError(interfaces.ErrorTypeInvalid,
			fmt.Sprintf("catalog request returned %d: %s", resp.StatusCode, body), nil)
	}

	var payload []productPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, interfaces.NewClientError(interfaces.ErrorTypeInvalid, "failed to decode catalog response", err)
	}

	items := make([]models.CatalogItem, 0, len(payload))
	for _, p := range payload {
		items = append(items, models.CatalogItem{
			ID:          p.ID,
			Name:        p.Name,
			Kind:        models.RecordKind(p.Kind),
			Game:        p.Game,
			UnitAmount:  p.UnitAmount,
			BonusAmount: p.BonusAmount,
			UnitPrice:   p.Price,
			CostCoins:   p.CostCoins,
			Stock:       p.Stock,
		})
	}

	return items, nil
}

// RefreshCatalog fetches the remote product list and swaps it into the
// catalog. Fire-and-forget: on any failure the current tables stay in place
// and the error is only logged.
func RefreshCatalog(ctx context.Context, client interfaces.CatalogClient, cat *catalog.Catalog) {
	items, err := client.FetchItems(ctx)
	if err != nil {
		internal.GetLogger().Warn(ComponentName,
			"Catalog refresh failed, keeping local tables: %v", err)
		return
	}
	if len(items) == 0 {
		internal.GetLogger().Warn(ComponentName,
			"Catalog refresh returned no items, keeping local tables")
		return
	}

	cat.Replace(items)
	internal.GetLogger().Info(ComponentName, "Catalog refreshed with %d items", len(items))
}
