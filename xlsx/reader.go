// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package xlsx loads Office Open XML workbooks for comparison
// and writes spreadsheet tables with excelize.
package xlsx

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/UNO-SOFT/sheetdiff"
	"github.com/xuri/excelize/v2"
)

// Extensions lists the file extensions Open understands.
var Extensions = []string{".xlsx", ".xlsm", ".xltx", ".xltm"}

// Open reads the workbook at path into memory.
//
// Cells hold their cached (computed) values, formulas are not evaluated.
func Open(path string) (*sheetdiff.Book, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &sheetdiff.LoadError{Path: path, Err: err}
	}
	defer f.Close()
	book, err := Load(f)
	if err != nil {
		return nil, &sheetdiff.LoadError{Path: path, Err: err}
	}
	return book, nil
}

// Load reads every sheet of f into memory, typing each non-empty cell.
func Load(f *excelize.File) (*sheetdiff.Book, error) {
	r := reader{f: f, dateStyles: make(map[int]bool)}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		r.date1904 = *props.Date1904
	}
	book, err := sheetdiff.NewBook()
	if err != nil {
		return nil, err
	}
	for _, name := range f.GetSheetList() {
		g, err := r.readSheet(name)
		if err != nil {
			return nil, err
		}
		if err = book.AddSheet(g); err != nil {
			return nil, err
		}
	}
	return book, nil
}

type reader struct {
	f          *excelize.File
	dateStyles map[int]bool
	date1904   bool
}

func (r reader) readSheet(name string) (*sheetdiff.Grid, error) {
	rows, err := r.f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read rows of %q: %w", name, err)
	}
	g := sheetdiff.NewGrid(name)
	for rowIdx, row := range rows {
		for colIdx, raw := range row {
			if raw == "" {
				continue
			}
			axis, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, err
			}
			v, err := r.cellValue(name, axis, raw)
			if err != nil {
				return nil, &sheetdiff.CellError{Sheet: name, Row: rowIdx + 1, Col: colIdx + 1, Err: err}
			}
			g.Set(rowIdx+1, colIdx+1, v)
		}
	}
	return g, nil
}

func (r reader) cellValue(sheet, axis, raw string) (sheetdiff.Value, error) {
	typ, err := r.f.GetCellType(sheet, axis)
	if err != nil {
		return sheetdiff.Absent, err
	}
	switch typ {
	case excelize.CellTypeBool:
		return sheetdiff.BoolValue(raw == "1" || strings.EqualFold(raw, "true")), nil
	case excelize.CellTypeError:
		return sheetdiff.ErrorValue(raw), nil
	case excelize.CellTypeDate:
		if t, ok := parseISODate(raw); ok {
			return sheetdiff.TimeValue(t), nil
		}
		return sheetdiff.TextValue(raw), nil
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		return sheetdiff.TextValue(raw), nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return sheetdiff.TextValue(raw), nil
	}
	isDate, err := r.isDateCell(sheet, axis)
	if err != nil {
		return sheetdiff.Absent, err
	}
	if isDate {
		if t, err := excelize.ExcelDateToTime(f, r.date1904); err == nil {
			return sheetdiff.TimeValue(t), nil
		}
	}
	return sheetdiff.NumberValue(f), nil
}

func (r reader) isDateCell(sheet, axis string) (bool, error) {
	id, err := r.f.GetCellStyle(sheet, axis)
	if err != nil {
		return false, err
	}
	if isDate, ok := r.dateStyles[id]; ok {
		return isDate, nil
	}
	var isDate bool
	if st, err := r.f.GetStyle(id); err == nil && st != nil {
		isDate = isDateNumFmt(st.NumFmt)
		if !isDate && st.CustomNumFmt != nil {
			isDate = IsDateFormat(*st.CustomNumFmt)
		}
	}
	r.dateStyles[id] = isDate
	return isDate, nil
}

func isDateNumFmt(id int) bool {
	return 14 <= id && id <= 22 || 27 <= id && id <= 36 || 45 <= id && id <= 47 || 50 <= id && id <= 58
}

// IsDateFormat reports whether the number format code renders a date or time.
func IsDateFormat(code string) bool {
	var inQuote, inBracket, escaped bool
	for _, c := range strings.ToLower(code) {
		switch {
		case escaped:
			escaped = false
		case c == '\\':
			escaped = true
		case c == '"':
			inQuote = !inQuote
		case inQuote:
		case c == '[':
			inBracket = true
		case c == ']':
			inBracket = false
		case inBracket:
		case c == ';':
			// only the positive section decides
			return false
		case strings.ContainsRune("ymdhs", c):
			return true
		}
	}
	return false
}

func parseISODate(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02T15:04:05.999", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
