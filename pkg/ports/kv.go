package ports

import "context"

// KVStore is the persistence collaborator: a flat key-value space with
// string keys and opaque values.
//
// The store has no notion of animation groups; the group store layers its
// key scheme on top. Keys returns every key in the space and callers filter
// by prefix client-side, mirroring the narrow contract the host exposes.
type KVStore interface {
	// Set persists the value under key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Get retrieves the value for key.
	// Returns domain.ErrKeyNotFound if the key does not exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Keys returns all keys currently in the store, in no particular order.
	Keys(ctx context.Context) ([]string, error)

	// Delete removes the key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
