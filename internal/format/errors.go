// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import (
	"fmt"
	"path/filepath"
)

// UnsupportedFormatError reports a file whose extension maps to no supported
// format. It is raised before any file I/O happens.
type UnsupportedFormatError struct {
	// Path is the offending file path.
	Path string

	// Side is "input" or "output" when the caller knows which end of the
	// pipeline the path belongs to, empty otherwise.
	Side string
}

func (e *UnsupportedFormatError) Error() string {
	side := e.Side
	if side != "" {
		side += " "
	}
	ext := filepath.Ext(e.Path)
	if ext == "" {
		return fmt.Sprintf("unsupported %sfile type: %q has no extension", side, e.Path)
	}
	return fmt.Sprintf("unsupported %sfile type %q", side, ext)
}

// ReadError reports a failure to open or parse an input file.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError reports a failure to create or write an output file.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
