// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package format detects serialization formats from file extensions and
// reads and writes datasets in CSV, JSON, and YAML.
package format

import (
	"path/filepath"
	"strings"

	"github.com/pdiddy/datapipe/pkg/types"
)

// Format identifies a supported serialization format.
type Format string

const (
	CSV  Format = "csv"
	JSON Format = "json"
	YAML Format = "yaml"
)

// Detect infers the format of path from its extension, case-insensitively.
// It performs no file I/O; an unrecognized extension returns an
// *UnsupportedFormatError.
func Detect(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return CSV, nil
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return "", &UnsupportedFormatError{Path: path}
}

// Read loads the file at path as a dataset in format f. Open and parse
// failures are reported as *ReadError.
func Read(path string, f Format) (types.Dataset, error) {
	switch f {
	case CSV:
		return readCSV(path)
	case JSON:
		return readJSON(path)
	case YAML:
		return readYAML(path)
	}
	return nil, &UnsupportedFormatError{Path: path}
}

// Write serializes ds to path in format f. The writer places the content in
// a temporary file next to the destination and renames it into place, so a
// failed run never leaves a half-written output. I/O failures are reported
// as *WriteError.
//
// An empty dataset in CSV format creates no file at all; in JSON or YAML it
// writes an empty sequence.
func Write(ds types.Dataset, path string, f Format) error {
	switch f {
	case CSV:
		return writeCSV(ds, path, types.HeaderFirstRecord)
	case JSON:
		return writeJSON(ds, path)
	case YAML:
		return writeYAML(ds, path)
	}
	return &UnsupportedFormatError{Path: path}
}

// WriteWithPolicy is Write with an explicit CSV header policy. The policy is
// ignored for non-CSV formats.
func WriteWithPolicy(ds types.Dataset, path string, f Format, policy types.HeaderPolicy) error {
	if f == CSV {
		return writeCSV(ds, path, policy)
	}
	return Write(ds, path, f)
}
