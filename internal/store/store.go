package store

import (
	"context"
	"errors"
)

// Record is one persisted entity instance as a field-name-to-value mapping.
// The store assigns each inserted record a unique identifier under "_id".
type Record = map[string]any

// Sentinel errors for gateway failures. Callers classify with errors.Is.
var (
	// ErrUnavailable means no store connection is configured or established.
	ErrUnavailable = errors.New("store unavailable")
	// ErrRead wraps an underlying failure during a read operation.
	ErrRead = errors.New("store read failed")
	// ErrWrite wraps an underlying failure during a write operation.
	ErrWrite = errors.New("store write failed")
)

// Gateway is a thin seam over a document store. It holds no business logic;
// the in-memory implementation is a drop-in substitute for tests.
type Gateway interface {
	// Insert persists record into the named collection and returns the
	// store-assigned identifier.
	Insert(ctx context.Context, collection string, record Record) (string, error)

	// Find returns records whose fields match every key/value pair in
	// filter (an empty filter matches all), in store-native order,
	// truncated to limit when limit > 0.
	Find(ctx context.Context, collection string, filter Record, limit int64) ([]Record, error)

	// UpdateByID sets the given fields on the record addressed by id.
	// Callers that treat the update as advisory are free to ignore the
	// returned error.
	UpdateByID(ctx context.Context, collection string, id string, set Record) error

	// Collections lists the collection names currently present.
	Collections(ctx context.Context) ([]string, error)

	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error
}
