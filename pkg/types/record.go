// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the data model shared by the pipeline stages:
// insertion-ordered records, datasets, and configuration.
package types

import (
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"go.yaml.in/yaml/v3"
)

// Record is one logical row of data: a mapping from field name to value that
// remembers insertion order. Order matters for CSV output, where the first
// record's key order defines the header. CSV-sourced values are always
// strings; JSON- and YAML-sourced values may be any scalar or structure the
// source document held.
type Record struct {
	fields *orderedmap.OrderedMap[string, any]
}

// Dataset is the ordered sequence of records for one run. It is read fully
// into memory, transformed in place, and written out in the same order.
type Dataset []*Record

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{fields: orderedmap.New[string, any]()}
}

// Set stores value under key. A new key is appended after all existing keys;
// an existing key keeps its position.
func (r *Record) Set(key string, value any) {
	r.fields.Set(key, value)
}

// Get returns the value stored under key, and whether the key is present.
func (r *Record) Get(key string) (any, bool) {
	return r.fields.Get(key)
}

// Delete removes key from the record. Deleting an absent key is a no-op.
func (r *Record) Delete(key string) {
	r.fields.Delete(key)
}

// Len returns the number of fields in the record.
func (r *Record) Len() int {
	return r.fields.Len()
}

// Keys returns the field names in insertion order.
func (r *Record) Keys() []string {
	keys := make([]string, 0, r.fields.Len())
	for pair := r.fields.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// MarshalJSON emits the record as a JSON object with keys in insertion order.
func (r *Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.fields)
}

// UnmarshalJSON parses a JSON object, preserving its key order. Any other
// JSON value is an error.
func (r *Record) UnmarshalJSON(data []byte) error {
	fields := orderedmap.New[string, any]()
	if err := json.Unmarshal(data, fields); err != nil {
		return err
	}
	r.fields = fields
	return nil
}

// MarshalYAML emits the record as a YAML mapping with keys in insertion order.
func (r *Record) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for pair := r.fields.Oldest(); pair != nil; pair = pair.Next() {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Value: pair.Key}
		valNode := &yaml.Node{}
		if err := valNode.Encode(pair.Value); err != nil {
			return nil, fmt.Errorf("encoding field %q: %w", pair.Key, err)
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}

// UnmarshalYAML parses a YAML mapping, preserving its key order. Any other
// YAML node is an error.
func (r *Record) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping, got %s", value.Line, yamlKindName(value.Kind))
	}
	fields := orderedmap.New[string, any]()
	for i := 0; i+1 < len(value.Content); i += 2 {
		var v any
		if err := value.Content[i+1].Decode(&v); err != nil {
			return fmt.Errorf("decoding field %q: %w", value.Content[i].Value, err)
		}
		fields.Set(value.Content[i].Value, v)
	}
	r.fields = fields
	return nil
}

func yamlKindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "unknown"
}
