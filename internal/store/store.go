// Package store defines the persistent key-value store the todo list is
// mirrored to. Values are opaque strings, the way browser local storage
// keeps them.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("store: key not found")

// Store is a string-keyed persistent store. Put overwrites the whole value.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}
