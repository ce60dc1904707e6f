// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/pdiddy/datapipe/internal/format"
	"github.com/pdiddy/datapipe/internal/transform"
)

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunCSVToJSONWithFilterEmpty(t *testing.T) {
	in := writeInput(t, "in.csv", "name,age,city\nAlice,,NYC\nBob,30,\n")
	out := filepath.Join(t.TempDir(), "out.json")

	result, err := Run(Options{InputPath: in, OutputPath: out, FilterEmpty: true})
	if err != nil {
		t.Fatal(err)
	}
	if result.Records != 2 {
		t.Errorf("records = %d, want 2", result.Records)
	}
	if result.InputFormat != format.CSV || result.OutputFormat != format.JSON {
		t.Errorf("formats = %v -> %v, want csv -> json", result.InputFormat, result.OutputFormat)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	var got []map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	// CSV values stay strings: age is "30", not 30.
	want := []map[string]any{
		{"name": "Alice", "city": "NYC"},
		{"name": "Bob", "age": "30"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("output = %v, want %v", got, want)
	}
	if !strings.Contains(string(data), "\n  {") {
		t.Errorf("output not indented with two spaces: %q", data)
	}
}

func TestRunRoundTripPreservesRecords(t *testing.T) {
	const csvText = "name,age,city\nAlice,31,NYC\nBob,30,SF\n"
	in := writeInput(t, "in.csv", csvText)
	out := filepath.Join(t.TempDir(), "out.csv")

	if _, err := Run(Options{InputPath: in, OutputPath: out}); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != csvText {
		t.Errorf("round trip = %q, want %q", data, csvText)
	}
}

func TestRunRejectsUnsupportedInput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.json")

	_, err := Run(Options{InputPath: "data.txt", OutputPath: out})

	var ufe *format.UnsupportedFormatError
	if !errors.As(err, &ufe) {
		t.Fatalf("err = %v, want UnsupportedFormatError", err)
	}
	if !strings.Contains(err.Error(), "unsupported input file type") {
		t.Errorf("err = %q, want an unsupported input file type message", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Error("output file exists after input rejection")
	}
}

func TestRunRejectsUnsupportedOutputBeforeReading(t *testing.T) {
	// The input path does not exist; a read attempt would fail with a
	// ReadError. The output extension must be rejected first.
	in := filepath.Join(t.TempDir(), "absent.csv")

	_, err := Run(Options{InputPath: in, OutputPath: "out.xlsx"})

	var ufe *format.UnsupportedFormatError
	if !errors.As(err, &ufe) {
		t.Fatalf("err = %v, want UnsupportedFormatError", err)
	}
	if !strings.Contains(err.Error(), "unsupported output file type") {
		t.Errorf("err = %q, want an unsupported output file type message", err)
	}
}

func TestRunEmptyJSONDataset(t *testing.T) {
	in := writeInput(t, "in.json", "[]")

	t.Run("to json", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "out.json")
		result, err := Run(Options{InputPath: in, OutputPath: out, FilterEmpty: true, AddTimestamp: true})
		if err != nil {
			t.Fatal(err)
		}
		if result.Records != 0 {
			t.Errorf("records = %d, want 0", result.Records)
		}
		data, err := os.ReadFile(out)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "[]" {
			t.Errorf("output = %q, want %q", data, "[]")
		}
	})

	t.Run("to csv", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "out.csv")
		if _, err := Run(Options{InputPath: in, OutputPath: out}); err != nil {
			t.Fatal(err)
		}
		if _, err := os.Stat(out); !os.IsNotExist(err) {
			t.Error("output file exists, want none for an empty CSV dataset")
		}
	})
}

func TestRunTimestampUniformAcrossRecords(t *testing.T) {
	in := writeInput(t, "in.json", `[{"a": 1}, {"a": 2}, {"a": 3}]`)
	out := filepath.Join(t.TempDir(), "out.json")

	if _, err := Run(Options{InputPath: in, OutputPath: out, AddTimestamp: true}); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	var got []map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	first, ok := got[0][transform.TimestampKey].(string)
	if !ok || first == "" {
		t.Fatalf("record 0 timestamp = %#v, want a nonempty string", got[0][transform.TimestampKey])
	}
	for i, rec := range got {
		if rec[transform.TimestampKey] != first {
			t.Errorf("record %d timestamp = %v, want %v", i, rec[transform.TimestampKey], first)
		}
	}
}

func TestRunUnionHeaderPolicy(t *testing.T) {
	in := writeInput(t, "in.csv", "name,age,city\nAlice,,NYC\nBob,30,\n")
	out := filepath.Join(t.TempDir(), "out.csv")

	_, err := Run(Options{
		InputPath:   in,
		OutputPath:  out,
		FilterEmpty: true,
		CSVHeader:   "union",
	})
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	want := "name,city,age\nAlice,NYC,\nBob,,30\n"
	if string(data) != want {
		t.Errorf("output = %q, want %q", data, want)
	}
}

func TestRunJSONToYAML(t *testing.T) {
	in := writeInput(t, "in.json", `[{"name": "Alice", "city": "NYC"}]`)
	out := filepath.Join(t.TempDir(), "out.yaml")

	if _, err := Run(Options{InputPath: in, OutputPath: out}); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	// Key order comes from the source document, not sorted.
	want := "- name: Alice\n  city: NYC\n"
	if string(data) != want {
		t.Errorf("output = %q, want %q", data, want)
	}
}
