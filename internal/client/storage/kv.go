package storage

import "context"

//go:generate moq -out kv_mock.go . KVStorage

// KVStorage is a flat key/value store for cached payloads and their metadata.
type KVStorage interface {
	// Get returns the values of the requested keys that exist.
	// Missing keys are simply absent from the result.
	Get(ctx context.Context, keys ...string) (map[string][]byte, error)

	// Put writes all pairs in a single transaction: readers observe either
	// all of them or none.
	Put(ctx context.Context, values map[string][]byte) error

	// Delete removes the keys in a single transaction. Missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error
}
