package contract

import "context"

// Durable storage keys. The exact names are preserved so data persisted by
// an earlier client under the same keys keeps decoding.
const (
	SessionKey         = "beachCleanupUser"
	RegisteredUsersKey = "beachCleanupRegisteredUsers"
	EventsKey          = "beachCleanupEvents"
)

// IKVStore is the durable key->string substrate both stores persist through.
// Implementations must offer atomic single-key reads and writes; values are
// JSON documents but the store treats them as opaque strings.
type IKVStore interface {
	// Get returns the value for key and whether the key was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set writes value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Remove deletes key; removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
