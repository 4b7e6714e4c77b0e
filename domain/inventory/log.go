// Package inventory owns the append-only purchase log stored under the
// inventory key. The log is insertion-ordered; queries may resort a snapshot
// by timestamp but never reorder the stored sequence.
package inventory

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/lootvault/lootvault-go/domain/models"
	"github.com/lootvault/lootvault-go/interfaces"
	"github.com/lootvault/lootvault-go/internal"
)

// Filter narrows a query to matching records
type Filter struct {
	Kind models.RecordKind // zero value matches all kinds
	Game string            // zero value matches all games

	// SortByNewest orders the result by CreatedAt descending, the
	// convention for history views. The stored order is untouched.
	SortByNewest bool
}

// Log is the purchase record log over the persistent store
type Log struct {
	store interfaces.KeyValueStore

	mu         sync.Mutex
	lastMillis int64
}

// NewLog creates a log over the given store
func NewLog(store interfaces.KeyValueStore) *Log {
	return &Log{store: store}
}

// wireRecord tolerates the legacy field layout where the quantity of a coin
// purchase was stored under "coins".
type wireRecord struct {
	models.PurchaseRecord
	Coins int64 `json:"coins,omitempty"`
}

// All returns the log as stored, in insertion order. A missing value yields
// an empty log; corrupt values or elements are dropped with a logged warning,
// never an error.
func (l *Log) All() []models.PurchaseRecord {
	raw, err := l.store.Get(interfaces.KeyInventory)
	if err != nil {
		internal.GetLogger().Error(internal.ComponentLedger,
			"Failed to read purchase log, defaulting to empty: %v", err)
		return nil
	}
	if raw == "" {
		return nil
	}

	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &elements); err != nil {
		internal.GetLogger().Warn(internal.ComponentLedger,
			"Corrupt purchase log, defaulting to empty: %v", models.ErrSerialization)
		return nil
	}

	records := make([]models.PurchaseRecord, 0, len(elements))
	for _, element := range elements {
		var w wireRecord
		if err := json.Unmarshal(element, &w); err != nil {
			internal.GetLogger().Warn(internal.ComponentLedger,
				"Dropping corrupt purchase record: %v", models.ErrSerialization)
			continue
		}
		records = append(records, normalize(w))
	}

	return records
}

// normalize fills documented defaults for missing fields
func normalize(w wireRecord) models.PurchaseRecord {
	rec := w.PurchaseRecord
	if rec.Quantity == 0 && w.Coins > 0 {
		rec.Quantity = w.Coins
	}
	if rec.Quantity <= 0 {
		rec.Quantity = 1
	}
	if rec.Status == "" {
		rec.Status = models.RecordStatusCompleted
	}
	if rec.Kind == "" {
		rec.Kind = models.RecordKindCurrency
	}
	return rec
}

// Append assigns an ID, appends the record to the log and persists it.
// Returns the stored record.
func (l *Log) Append(itemID string, rec models.PurchaseRecord) (models.PurchaseRecord, error) {
	stored, encoded, err := l.EncodeAppended(itemID, rec)
	if err != nil {
		return models.PurchaseRecord{}, err
	}

	if err := l.store.Set(interfaces.KeyInventory, encoded); err != nil {
		return models.PurchaseRecord{}, fmt.Errorf("failed to persist purchase log: %w", err)
	}

	return stored, nil
}

// EncodeAppended assigns an ID and returns the record together with the
// serialized log including it, without writing anything. The purchase
// workflow feeds the encoded log to a ledger committer so the balance effect
// and the append land in one durable unit.
func (l *Log) EncodeAppended(itemID string, rec models.PurchaseRecord) (models.PurchaseRecord, string, error) {
	if err := rec.Validate(); err != nil {
		return models.PurchaseRecord{}, "", err
	}

	rec.ID = l.nextID(itemID)

	records := append(l.All(), rec)
	encoded, err := json.Marshal(records)
	if err != nil {
		return models.PurchaseRecord{}, "", fmt.Errorf("failed to encode purchase log: %w", err)
	}

	return rec, string(encoded), nil
}

// nextID derives a unique, monotonic record ID from the item ID and the
// current time. Two appends in the same millisecond get distinct IDs.
func (l *Log) nextID(itemID string) string {
	l.mu.Lock()
	defer l.mu.Unlock()

	millis := time.Now().UnixMilli()
	if millis <= l.lastMillis {
		millis = l.lastMillis + 1
	}
	l.lastMillis = millis

	return itemID + "-" + strconv.FormatInt(millis, 10)
}

// Query returns a snapshot of records matching the filter. Each call re-reads
// the store, so repeated calls without intervening writes yield identical
// results.
func (l *Log) Query(filter Filter) []models.PurchaseRecord {
	all := l.All()

	matched := make([]models.PurchaseRecord, 0, len(all))
	for _, rec := range all {
		if filter.Kind != "" && rec.Kind != filter.Kind {
			continue
		}
		if filter.Game != "" && rec.Game != filter.Game {
			continue
		}
		matched = append(matched, rec)
	}

	if filter.SortByNewest {
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		})
	}

	return matched
}

// ExportColumns is the fixed column set of ExportRows
var ExportColumns = []string{"transactionId", "item", "game", "type", "quantity", "price", "status", "date"}

// ExportRows projects the log into flat rows for CSV export, header first.
// Pure projection, no side effects.
func (l *Log) ExportRows() [][]string {
	all := l.All()

	rows := make([][]string, 0, len(all)+1)
	rows = append(rows, ExportColumns)
	for _, rec := range all {
		price := ""
		if rec.UnitPrice > 0 {
			price = strconv.FormatFloat(rec.UnitPrice, 'f', 2, 64)
		}
		rows = append(rows, []string{
			rec.ID,
			rec.Name,
			rec.Game,
			string(rec.Kind),
			strconv.FormatInt(rec.Quantity, 10),
			price,
			string(rec.Status),
			rec.CreatedAt.Format(time.RFC3339),
		})
	}

	return rows
}

// MarkRedeemed transitions the identified completed record to redeemed and
// persists the log. This is the only in-place mutation the log permits, done
// on behalf of the external redemption collaborator.
func (l *Log) MarkRedeemed(id string) (models.PurchaseRecord, error) {
	records := l.All()

	for i := range records {
		if records[i].ID != id {
			continue
		}

		if err := records[i].MarkAsRedeemed(); err != nil {
			return models.PurchaseRecord{}, err
		}

		encoded, err := json.Marshal(records)
		if err != nil {
			return models.PurchaseRecord{}, fmt.Errorf("failed to encode purchase log: %w", err)
		}
		if err := l.store.Set(interfaces.KeyInventory, string(encoded)); err != nil {
			return models.PurchaseRecord{}, fmt.Errorf("failed to persist purchase log: %w", err)
		}

		return records[i], nil
	}

	return models.PurchaseRecord{}, fmt.Errorf("record %q: %w", id, models.ErrRecordNotFound)
}

// Purge clears the log. Called on account logout.
func (l *Log) Purge() error {
	if err := l.store.Delete(interfaces.KeyInventory); err != nil {
		return fmt.Errorf("failed to purge purchase log: %w", err)
	}
	return nil
}
