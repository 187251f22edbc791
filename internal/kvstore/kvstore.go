// Package kvstore holds the persistence layer of the fitness tracker.
//
// All app state lives in two independent key-value entries, each holding a
// whole JSON blob that is rewritten wholesale on every mutation. There is no
// relational schema and no migration logic: a structurally incompatible
// stored value simply fails to parse at the owning store and is treated as
// "no data".
package kvstore

import (
	"context"
	"errors"
)

var ErrKeyNotFound = errors.New("key not found")

// Store reads and writes whole values under fixed keys.
type Store interface {
	// Get returns the stored value, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set overwrites the whole value stored under key.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes the key; removing an absent key is a no-op.
	Delete(ctx context.Context, key string) error
}
