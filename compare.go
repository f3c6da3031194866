// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package sheetdiff

import (
	"log/slog"
)

const (
	// DefaultKeyColumn is column D, whose value identifies a row in reports.
	DefaultKeyColumn = 4
	// DefaultHeaderRow is the row holding the column labels.
	DefaultHeaderRow = 1
)

// Options configures a comparison.
type Options struct {
	// Logger receives the sheet set advisories and progress.
	// If nil, slog.Default() is used.
	Logger *slog.Logger
	// KeyColumn is the 1-based column read as row identifier (default 4).
	KeyColumn int
	// HeaderRow is the 1-based row read as column label (default 1).
	HeaderRow int
	// Concurrency is the number of sheets compared in parallel (default 1).
	Concurrency int
}

// DefaultOptions returns the default comparison options.
func DefaultOptions() Options {
	return Options{KeyColumn: DefaultKeyColumn, HeaderRow: DefaultHeaderRow, Concurrency: 1}
}

func (o Options) withDefaults() Options {
	if o.KeyColumn <= 0 {
		o.KeyColumn = DefaultKeyColumn
	}
	if o.HeaderRow <= 0 {
		o.HeaderRow = DefaultHeaderRow
	}
	if o.Concurrency <= 0 {
		o.Concurrency = 1
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// Difference is one differing cell of a compared sheet.
type Difference struct {
	Sheet string

	// Cell is the A1 style address, such as "C7".
	Cell string

	Row, Column int

	Value1, Value2 Value

	// ErrorName is the error code of Value1, else of Value2, else ValueMismatch.
	ErrorName string

	// Key1 and Key2 are the key column values of the row.
	Key1, Key2 Value

	// Header1 and Header2 are the header row values of the column.
	Header1, Header2 Value
}

// ColumnName returns the column letters of the difference.
func (d Difference) ColumnName() string { return ColumnName(d.Column) }

// CompareSheets compares a and b cell by cell over the union of their
// occupied rectangles, in row-major order.
// The differences are named after a's sheet.
func CompareSheets(a, b Sheet, opts Options) ([]Difference, error) {
	opts = opts.withDefaults()
	name := a.Name()
	rows := max(a.MaxRow(), b.MaxRow())
	cols := max(a.MaxColumn(), b.MaxColumn())
	read := func(s Sheet, row, col int) (Value, error) {
		v, err := s.CellValue(row, col)
		if err != nil {
			return v, &CellError{Sheet: name, Row: row, Col: col, Err: err}
		}
		return v, nil
	}

	var diffs []Difference
	for row := 1; row <= rows; row++ {
		for col := 1; col <= cols; col++ {
			v1, err := read(a, row, col)
			if err != nil {
				return nil, err
			}
			v2, err := read(b, row, col)
			if err != nil {
				return nil, err
			}
			if v1.Equal(v2) {
				continue
			}
			d := Difference{
				Sheet:     name,
				Cell:      CellAddress(row, col),
				Row:       row,
				Column:    col,
				Value1:    v1,
				Value2:    v2,
				ErrorName: errorName(v1, v2),
			}
			if d.Key1, err = read(a, row, opts.KeyColumn); err != nil {
				return nil, err
			}
			if d.Key2, err = read(b, row, opts.KeyColumn); err != nil {
				return nil, err
			}
			if d.Header1, err = read(a, opts.HeaderRow, col); err != nil {
				return nil, err
			}
			if d.Header2, err = read(b, opts.HeaderRow, col); err != nil {
				return nil, err
			}
			diffs = append(diffs, d)
		}
	}
	opts.Logger.Debug("compared", "sheet", name, "rows", rows, "cols", cols, "differences", len(diffs))
	return diffs, nil
}
