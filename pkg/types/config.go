// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// HeaderPolicy selects how the CSV writer derives its header when records do
// not all share the same field set.
type HeaderPolicy string

const (
	// HeaderFirstRecord uses the first record's keys as the authoritative
	// column set. Keys absent from the first record are dropped from the
	// output. This matches the historical behavior and is the default.
	HeaderFirstRecord HeaderPolicy = "first"

	// HeaderUnion uses the ordered union of every record's keys,
	// first-seen order.
	HeaderUnion HeaderPolicy = "union"
)

// Valid reports whether p is a known header policy.
func (p HeaderPolicy) Valid() bool {
	return p == HeaderFirstRecord || p == HeaderUnion
}

// CSVConfig holds settings for CSV output.
type CSVConfig struct {
	// Header selects the header policy: first or union (default first).
	Header HeaderPolicy `json:"header" yaml:"header"`
}

// HistoryConfig holds settings for the run-history journal.
type HistoryConfig struct {
	// Enabled controls whether successful runs are recorded.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Path is the SQLite database file for the journal
	// (default "datapipe-history.db" in the working directory).
	Path string `json:"path" yaml:"path"`
}

// PipelineConfig groups the configuration for one invocation.
type PipelineConfig struct {
	CSV     CSVConfig     `json:"csv" yaml:"csv"`
	History HistoryConfig `json:"history" yaml:"history"`
}
