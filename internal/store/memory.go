package store

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Memory is an in-memory Gateway used in tests and local development. It
// keeps each collection as an ordered slice of records, assigns UUID
// identifiers, and copies records on the way in and out so callers cannot
// alias internal state.
type Memory struct {
	mu          sync.RWMutex
	collections map[string][]Record
}

// NewMemory creates an empty in-memory gateway.
func NewMemory() *Memory {
	return &Memory{collections: make(map[string][]Record)}
}

func (m *Memory) Insert(_ context.Context, collection string, record Record) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec := cloneRecord(record)
	id := uuid.New().String()
	rec["_id"] = id
	m.collections[collection] = append(m.collections[collection], rec)
	return id, nil
}

func (m *Memory) Find(_ context.Context, collection string, filter Record, limit int64) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []Record
	for _, rec := range m.collections[collection] {
		if !matches(rec, filter) {
			continue
		}
		out = append(out, cloneRecord(rec))
		if limit > 0 && int64(len(out)) == limit {
			break
		}
	}
	return out, nil
}

func (m *Memory) UpdateByID(_ context.Context, collection string, id string, set Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, rec := range m.collections[collection] {
		if rec["_id"] == id {
			for k, v := range set {
				rec[k] = cloneValue(v)
			}
			return nil
		}
	}
	return fmt.Errorf("%w: update in %s: no record with id %q", ErrWrite, collection, id)
}

func (m *Memory) Collections(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.collections))
	for name := range m.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (m *Memory) Ping(_ context.Context) error {
	return nil
}

// matches reports whether rec carries every key/value pair in filter.
func matches(rec, filter Record) bool {
	for k, want := range filter {
		got, ok := rec[k]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

// cloneRecord deep-copies maps and slices so neither side can mutate the
// other's nested state. Other value types are stored as-is.
func cloneRecord(rec Record) Record {
	out := make(Record, len(rec))
	for k, v := range rec {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case Record:
		return cloneRecord(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	case []string:
		out := make([]string, len(t))
		copy(out, t)
		return out
	default:
		return v
	}
}
