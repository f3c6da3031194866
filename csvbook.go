// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package sheetdiff

import (
	"errors"
	"io"

	"github.com/UNO-SOFT/sheetdiff/spreadsheet"
)

// CSVSheetName is the name of the only sheet of a CSV workbook.
const CSVSheetName = "Sheet1"

// LoadCSV reads the CSV file fn (in charset encName) as a workbook with
// one sheet named CSVSheetName. Every non-empty field is a text value.
func LoadCSV(fn, encName string) (*Book, error) {
	cr, err := spreadsheet.OpenCsv(fn, encName)
	if err != nil {
		return nil, &LoadError{Path: fn, Err: err}
	}
	defer cr.Close()
	g := NewGrid(CSVSheetName)
	for row := 1; ; row++ {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, &LoadError{Path: fn, Err: err}
		}
		for i, s := range rec {
			if s != "" {
				g.Set(row, i+1, TextValue(s))
			}
		}
	}
	return NewBook(g)
}
