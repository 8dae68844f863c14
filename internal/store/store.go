// Package store defines the persistence contract the todo store writes through.
// Sub packages implement it on different storage devices.
package store

import "context"

// DefaultKey is the key the todo list is stored under.
const DefaultKey = "todos"

// KV is a string-valued key/value store.
// Get reports ok=false for a key that was never set.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// Closer is implemented by backends holding resources.
type Closer interface {
	Close() error
}
