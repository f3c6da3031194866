// Copyright 2020, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package spreadsheet defines the tabular output contract shared by the
// CSV, XLSX, ODS and PDF writers.
package spreadsheet

import (
	"errors"
	"io"
)

// Writer writes the spreadsheet consisting of the sheets created
// with NewSheet. The write finishes when Close is called.
//
// The writer SHOULD allow writing to separate sheets concurrently,
// and document if it does not provide this functionality.
type Writer interface {
	io.Closer
	NewSheet(name string, cols []Column) (Sheet, error)
}

// Sheet should be Closed when finished.
type Sheet interface {
	io.Closer
	AppendRow(values ...any) error
}

// Style is a style for a column/row/cell.
type Style struct {
	// Format is the number format
	Format string
	// FontBold is true if the font is bold
	FontBold bool
	// FontColor is the RRGGBB font color, empty for the default.
	FontColor string
	// Fill is the RRGGBB solid background color, empty for none.
	Fill string
}

// IsZero reports whether the style carries no formatting at all.
func (s Style) IsZero() bool {
	return !s.FontBold && s.Format == "" && s.FontColor == "" && s.Fill == ""
}

// Column contains the Name of the column and header's style and column's style.
//
// Width is a hint in character units; writers without a notion of column
// width ignore it, and zero means the writer's default.
type Column struct {
	Name           string
	Header, Column Style
	Width          float64
}

var (
	ErrTooManyRows = errors.New("too many rows")
	// ErrSingleSheet is returned by writers which can hold only one sheet.
	ErrSingleSheet = errors.New("only one sheet is supported")
)

// Number is a string that contains a number.
type Number string
