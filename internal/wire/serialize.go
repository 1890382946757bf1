// Package wire shapes stored records for JSON transport.
package wire

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"phoenix-assistant/backend/internal/store"
)

// timeLayout renders timestamps as UTC ISO-8601 without an offset suffix,
// trimming trailing zeros from the fraction.
const timeLayout = "2006-01-02T15:04:05.999999"

// Serialize converts a stored record into a wire-safe one: the store
// identifier is renamed to "id" and stringified, timestamp values are
// rendered as ISO-8601 text, and every other field passes through by value.
// It is total: nil and empty records come back unchanged, and applying it
// to an already-serialized record is a no-op.
func Serialize(rec store.Record) store.Record {
	if len(rec) == 0 {
		return rec
	}

	out := make(store.Record, len(rec))
	for k, v := range rec {
		if k == "_id" {
			out["id"] = stringifyID(v)
			continue
		}
		out[k] = renderValue(v)
	}
	return out
}

// SerializeAll maps Serialize over records, always returning a non-nil
// slice so empty results encode as [] rather than null.
func SerializeAll(records []store.Record) []store.Record {
	out := make([]store.Record, 0, len(records))
	for _, rec := range records {
		out = append(out, Serialize(rec))
	}
	return out
}

func stringifyID(v any) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return fmt.Sprintf("%v", id)
	}
}

func renderValue(v any) any {
	switch t := v.(type) {
	case time.Time:
		return t.UTC().Format(timeLayout)
	case primitive.DateTime:
		// The Mongo driver decodes BSON datetimes into this type when the
		// target is an untyped map.
		return t.Time().UTC().Format(timeLayout)
	default:
		return v
	}
}
