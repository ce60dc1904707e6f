// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pdiddy/datapipe/pkg/types"
)

// readJSON parses path as a single top-level array of objects. Object key
// order is preserved. A non-object element fails the whole read; flat
// records are the only shape the pipeline handles.
func readJSON(path string) (types.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	ds := make(types.Dataset, 0, len(raws))
	for i, raw := range raws {
		var rec types.Record
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, &ReadError{Path: path, Err: fmt.Errorf("element %d: %w", i, err)}
		}
		ds = append(ds, &rec)
	}
	return ds, nil
}

// writeJSON serializes ds as one pretty-printed array, 2-space indent. An
// empty dataset writes the literal []. No trailing newline.
func writeJSON(ds types.Dataset, path string) error {
	if ds == nil {
		ds = types.Dataset{}
	}
	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return writeFileAtomic(path, data)
}
