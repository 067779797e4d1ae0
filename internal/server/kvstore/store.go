// Package kvstore wraps the persistent key-value store behind a small
// interface with get/set/delete/prefix-scan operations. Values are opaque
// JSON blobs; record shape is the caller's concern.
package kvstore

import "context"

// Record is one key-value pair returned by a prefix scan.
type Record struct {
	Key   string
	Value []byte
}

// Store is the key-value persistence interface.
//
// Get returns common.ErrNotFound for a missing key. GetByPrefix returns
// records ordered by key; an empty result is not an error. SetBatch writes
// all records or none.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetBatch(ctx context.Context, records []Record) error
	Del(ctx context.Context, key string) error
	GetByPrefix(ctx context.Context, prefix string) ([]Record, error)
}
