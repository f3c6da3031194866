// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package sheetdiff

import (
	"errors"
	"fmt"
)

var (
	// ErrNothingToExport is returned by Export for an empty difference set;
	// nothing has been written.
	ErrNothingToExport = errors.New("no differences to export")
	// ErrSamePath means both inputs are the same file.
	ErrSamePath = errors.New("cannot compare a file with itself")
	// ErrUnsupportedFormat is returned for files with an unknown extension.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrSheetNotFound is returned by Book.Sheet for an unknown name.
	ErrSheetNotFound = errors.New("sheet not found")
	// ErrDuplicateSheet is returned by Book.AddSheet for a name already present.
	ErrDuplicateSheet = errors.New("duplicate sheet name")
)

// CellError is a failure reading a cell of a sheet.
type CellError struct {
	Err      error
	Sheet    string
	Row, Col int
}

func (e *CellError) Error() string {
	return fmt.Sprintf("read %q[%s]: %v", e.Sheet, CellAddress(e.Row, e.Col), e.Err)
}
func (e *CellError) Unwrap() error { return e.Err }

// LoadError is a failure opening or parsing a workbook.
type LoadError struct {
	Err  error
	Path string
}

func (e *LoadError) Error() string { return fmt.Sprintf("load %q: %v", e.Path, e.Err) }
func (e *LoadError) Unwrap() error { return e.Err }
