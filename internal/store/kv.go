// Package store persists the portal dataset in a key-value service.
package store

import "context"

// KV is a string key-value persistence service. Values are written whole.
type KV interface {
	// Get returns the value stored under key; found is false when the key is absent
	Get(ctx context.Context, key string) (value string, found bool, err error)
	// Set overwrites the value stored under key
	Set(ctx context.Context, key, value string) error
	// Delete removes key; deleting an absent key is not an error
	Delete(ctx context.Context, key string) error
}
