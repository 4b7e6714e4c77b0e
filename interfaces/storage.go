package interfaces

// Persistent store key schema. Each instance of the application shares these
// keys with its sibling instances through the same backing store.
const (
	// KeyBalance holds the coin balance as decimal text. Default "0".
	KeyBalance = "coinBalance"

	// KeyInventory holds the purchase log as a JSON array. Default "[]".
	KeyInventory = "inventory"

	// KeyAuthToken holds the session token supplied by the auth collaborator.
	KeyAuthToken = "authToken"
)

// KeyValueStore is durable keyed storage shared across application instances.
// A missing key is not an error: Get returns the empty string and callers fall
// back to the key's documented default. Write failures surface as
// models.ErrStorageUnavailable.
type KeyValueStore interface {
	// Get retrieves the value for a key, or "" when the key is absent.
	Get(key string) (string, error)

	// Set durably writes a single key.
	Set(key, value string) error

	// SetMulti durably writes several keys as one atomic unit; either every
	// key is written or none is.
	SetMulti(values map[string]string) error

	// Add atomically adds delta to the integer stored under key, treating a
	// missing key as 0. A negative result is rejected and the stored value is
	// left unchanged; the returned value is the balance after the add.
	Add(key string, delta int64) (int64, error)

	// AddAndSet combines Add on addKey with a write of setKey in the same
	// atomic unit. This is the commit primitive pairing a balance mutation
	// with a purchase log append: either both keys change or neither does.
	AddAndSet(addKey string, delta int64, setKey, setValue string) (int64, error)

	// Delete removes a key.
	Delete(key string) error

	// Close releases the underlying storage handle.
	Close() error
}
