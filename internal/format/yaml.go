// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import (
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/datapipe/pkg/types"
)

// readYAML parses path as a top-level sequence of mappings. Mapping key
// order is preserved through Record's yaml.Node unmarshaling. An empty
// document yields an empty dataset.
func readYAML(path string) (types.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	var ds types.Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	if ds == nil {
		ds = types.Dataset{}
	}
	return ds, nil
}

// writeYAML serializes ds as a top-level sequence of mappings, key order
// preserved. An empty dataset writes an empty sequence.
func writeYAML(ds types.Dataset, path string) error {
	if ds == nil {
		ds = types.Dataset{}
	}
	data, err := yaml.Marshal(ds)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return writeFileAtomic(path, data)
}
