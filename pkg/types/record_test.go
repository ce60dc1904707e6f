// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"reflect"
	"testing"

	"go.yaml.in/yaml/v3"
)

func TestRecordInsertionOrder(t *testing.T) {
	rec := NewRecord()
	rec.Set("z", "1")
	rec.Set("a", "2")
	rec.Set("m", "3")

	want := []string{"z", "a", "m"}
	if !reflect.DeepEqual(rec.Keys(), want) {
		t.Errorf("Keys() = %v, want %v", rec.Keys(), want)
	}

	// Overwriting keeps the key's position.
	rec.Set("z", "9")
	if !reflect.DeepEqual(rec.Keys(), want) {
		t.Errorf("Keys() after overwrite = %v, want %v", rec.Keys(), want)
	}
	if v, _ := rec.Get("z"); v != "9" {
		t.Errorf("z = %v, want 9", v)
	}
}

func TestRecordDelete(t *testing.T) {
	rec := NewRecord()
	rec.Set("a", "1")
	rec.Set("b", "2")

	rec.Delete("a")
	rec.Delete("absent")

	if !reflect.DeepEqual(rec.Keys(), []string{"b"}) {
		t.Errorf("Keys() = %v, want [b]", rec.Keys())
	}
	if _, ok := rec.Get("a"); ok {
		t.Error("deleted key still present")
	}
	if rec.Len() != 1 {
		t.Errorf("Len() = %d, want 1", rec.Len())
	}
}

func TestRecordJSONOrder(t *testing.T) {
	var rec Record
	if err := json.Unmarshal([]byte(`{"z": 1, "a": "x", "m": null}`), &rec); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(rec.Keys(), []string{"z", "a", "m"}) {
		t.Fatalf("Keys() = %v, want [z a m]", rec.Keys())
	}

	data, err := json.Marshal(&rec)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"z":1,"a":"x","m":null}` {
		t.Errorf("marshal = %s", data)
	}
}

func TestRecordJSONRejectsNonObject(t *testing.T) {
	for _, doc := range []string{`7`, `"s"`, `[1]`} {
		var rec Record
		if err := json.Unmarshal([]byte(doc), &rec); err == nil {
			t.Errorf("unmarshal of %s succeeded, want error", doc)
		}
	}
}

func TestRecordYAMLOrder(t *testing.T) {
	var rec Record
	if err := yaml.Unmarshal([]byte("z: 1\na: x\n"), &rec); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(rec.Keys(), []string{"z", "a"}) {
		t.Fatalf("Keys() = %v, want [z a]", rec.Keys())
	}

	data, err := yaml.Marshal(&rec)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "z: 1\na: x\n" {
		t.Errorf("marshal = %q", data)
	}
}

func TestRecordYAMLRejectsNonMapping(t *testing.T) {
	var rec Record
	if err := yaml.Unmarshal([]byte("- 1\n- 2\n"), &rec); err == nil {
		t.Error("unmarshal of a sequence succeeded, want error")
	}
}
