// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pdiddy/datapipe/pkg/types"
)

// readCSV parses path with the first line as header. Every value is raw
// text; no type coercion happens, so "30" stays a string. A file with no
// rows at all yields an empty dataset.
func readCSV(path string) (types.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err == io.EOF {
		return types.Dataset{}, nil
	}
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	ds := types.Dataset{}
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ReadError{Path: path, Err: err}
		}
		rec := types.NewRecord()
		for i, name := range header {
			rec.Set(name, row[i])
		}
		ds = append(ds, rec)
	}
	return ds, nil
}

// writeCSV serializes ds under a header derived per policy. An empty dataset
// creates no file. Rows missing a header key emit an empty cell; keys
// outside the header are dropped.
func writeCSV(ds types.Dataset, path string, policy types.HeaderPolicy) error {
	if len(ds) == 0 {
		return nil
	}

	header := csvHeader(ds, policy)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	row := make([]string, len(header))
	for _, rec := range ds {
		for i, name := range header {
			v, ok := rec.Get(name)
			if !ok {
				row[i] = ""
				continue
			}
			row[i] = cellText(v)
		}
		if err := w.Write(row); err != nil {
			return &WriteError{Path: path, Err: err}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	return writeFileAtomic(path, buf.Bytes())
}

// csvHeader derives the output column set. HeaderFirstRecord takes the first
// record's keys verbatim; HeaderUnion collects every key across the dataset
// in first-seen order.
func csvHeader(ds types.Dataset, policy types.HeaderPolicy) []string {
	if policy != types.HeaderUnion {
		return ds[0].Keys()
	}
	seen := make(map[string]bool)
	var header []string
	for _, rec := range ds {
		for _, k := range rec.Keys() {
			if !seen[k] {
				seen[k] = true
				header = append(header, k)
			}
		}
	}
	return header
}

// cellText renders a field value as CSV cell text. CSV-sourced values are
// already strings; values that arrived from JSON or YAML may be scalars or
// structures, and structures render as compact JSON.
func cellText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool, int, int64, float64, json.Number:
		return fmt.Sprint(t)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}
