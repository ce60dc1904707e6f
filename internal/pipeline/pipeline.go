// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline wires the three stages of a run together: detect formats,
// read the input dataset, transform it, write the output.
package pipeline

import (
	"errors"

	"github.com/pdiddy/datapipe/internal/format"
	"github.com/pdiddy/datapipe/internal/transform"
	"github.com/pdiddy/datapipe/pkg/types"
)

// Options selects the input, output, and operations for one run.
type Options struct {
	// InputPath is the source file; its extension selects the reader.
	InputPath string

	// OutputPath is the destination file; its extension selects the writer.
	OutputPath string

	// FilterEmpty enables the filter_empty operation.
	FilterEmpty bool

	// AddTimestamp enables the add_timestamp operation.
	AddTimestamp bool

	// CSVHeader selects the CSV output header policy. Empty means
	// HeaderFirstRecord.
	CSVHeader types.HeaderPolicy
}

// Operations returns the enabled operations in their fixed application order.
func (o Options) Operations() []transform.Operation {
	var ops []transform.Operation
	if o.FilterEmpty {
		ops = append(ops, transform.OpFilterEmpty)
	}
	if o.AddTimestamp {
		ops = append(ops, transform.OpAddTimestamp)
	}
	return ops
}

// Result summarizes a completed run.
type Result struct {
	InputFormat  format.Format
	OutputFormat format.Format
	Operations   []transform.Operation
	Records      int
}

// Run executes one conversion. Both formats are resolved before any file
// I/O, so a bad output extension never reads the input and a bad input
// extension never touches the output. The input file handle is closed
// before transformation begins; any failure is terminal, nothing retries.
func Run(opts Options) (Result, error) {
	inFormat, err := format.Detect(opts.InputPath)
	if err != nil {
		return Result{}, sided(err, "input")
	}
	outFormat, err := format.Detect(opts.OutputPath)
	if err != nil {
		return Result{}, sided(err, "output")
	}

	ds, err := format.Read(opts.InputPath, inFormat)
	if err != nil {
		return Result{}, err
	}

	ops := opts.Operations()
	ds = transform.Apply(ds, ops)

	policy := opts.CSVHeader
	if policy == "" {
		policy = types.HeaderFirstRecord
	}
	if err := format.WriteWithPolicy(ds, opts.OutputPath, outFormat, policy); err != nil {
		return Result{}, err
	}

	return Result{
		InputFormat:  inFormat,
		OutputFormat: outFormat,
		Operations:   ops,
		Records:      len(ds),
	}, nil
}

// sided labels an unsupported-format error with the end of the pipeline it
// came from, so the message reads "unsupported input file type" rather than
// leaving the user to work out which path was rejected.
func sided(err error, side string) error {
	var ufe *format.UnsupportedFormatError
	if errors.As(err, &ufe) {
		ufe.Side = side
	}
	return err
}
