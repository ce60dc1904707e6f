// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package transform applies the row-level operations: dropping empty fields
// and stamping a shared timestamp.
package transform

import (
	"encoding/json"
	"time"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/pdiddy/datapipe/pkg/types"
)

// Operation names a dataset transformation.
type Operation string

const (
	// OpFilterEmpty removes every record entry whose value is empty per
	// IsEmpty. Keys are dropped entirely, not blanked.
	OpFilterEmpty Operation = "filter_empty"

	// OpAddTimestamp sets the field "timestamp" on every record to one
	// shared local-time value computed when the operation runs.
	OpAddTimestamp Operation = "add_timestamp"
)

// TimestampKey is the field name OpAddTimestamp writes.
const TimestampKey = "timestamp"

// timestampLayout is ISO-8601 with microseconds and no offset, local time.
const timestampLayout = "2006-01-02T15:04:05.000000"

// now is swapped out in tests.
var now = time.Now

// Apply runs the requested operations over ds in place and returns it.
// Operations always run in a fixed order: filter_empty first, then
// add_timestamp, regardless of the order in ops. Because the timestamp is
// stamped after filtering, it is never subject to the empty filter.
// Unknown names are ignored; an empty ops list leaves ds untouched.
func Apply(ds types.Dataset, ops []Operation) types.Dataset {
	if requested(ops, OpFilterEmpty) {
		FilterEmpty(ds)
	}
	if requested(ops, OpAddTimestamp) {
		AddTimestamp(ds, now().Format(timestampLayout))
	}
	return ds
}

func requested(ops []Operation, op Operation) bool {
	for _, o := range ops {
		if o == op {
			return true
		}
	}
	return false
}

// FilterEmpty drops every empty-valued field from every record. Applying it
// twice is the same as applying it once.
func FilterEmpty(ds types.Dataset) {
	for _, rec := range ds {
		for _, k := range rec.Keys() {
			if v, _ := rec.Get(k); IsEmpty(v) {
				rec.Delete(k)
			}
		}
	}
}

// AddTimestamp sets TimestampKey to ts on every record. Every record gets
// the identical value.
func AddTimestamp(ds types.Dataset, ts string) {
	for _, rec := range ds {
		rec.Set(TimestampKey, ts)
	}
}

// IsEmpty reports whether v counts as empty for FilterEmpty. The cases are
// enumerated rather than derived from any reflection-based truthiness:
// nil, empty string, false, numeric zero, and empty containers are empty;
// everything else is not. Numeric zero counting as empty is deliberate and
// matches the tool's historical behavior.
func IsEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return !t
	case int:
		return t == 0
	case int64:
		return t == 0
	case float64:
		return t == 0
	case json.Number:
		f, err := t.Float64()
		return err == nil && f == 0
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	case *orderedmap.OrderedMap[string, any]:
		// Nested objects from JSON input decode to ordered maps.
		return t.Len() == 0
	case *types.Record:
		return t.Len() == 0
	}
	return false
}
