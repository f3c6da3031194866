// Copyright 2020, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsx

import (
	"database/sql/driver"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/UNO-SOFT/sheetdiff/spreadsheet"
	"github.com/xuri/excelize/v2"
)

var _ = (spreadsheet.Writer)((*XLSXWriter)(nil))

type XLSXWriter struct {
	w      io.Writer
	xl     *excelize.File
	styles map[spreadsheet.Style]int
	sheets []string
	mu     sync.Mutex
}

type XLSXSheet struct {
	xl   *excelize.File
	Name string
	row  int64
	mu   sync.Mutex
}

// NewWriter returns a new spreadsheet.Writer.
//
// This writer allows concurrent writes to separate sheets.
//
// This writer collects everything in memory, so big sheets may impose problems.
func NewWriter(w io.Writer) *XLSXWriter {
	return &XLSXWriter{w: w, xl: excelize.NewFile()}
}

func (xlw *XLSXWriter) Close() error {
	if xlw == nil {
		return nil
	}
	xlw.mu.Lock()
	defer xlw.mu.Unlock()
	xl, w := xlw.xl, xlw.w
	xlw.xl, xlw.w = nil, nil
	if xl == nil || w == nil {
		return nil
	}
	defer xl.Close()
	_, err := xl.WriteTo(w)
	return err
}

// NewSheet adds a sheet, writing the column names as a frozen header row.
func (xlw *XLSXWriter) NewSheet(name string, columns []spreadsheet.Column) (spreadsheet.Sheet, error) {
	xlw.mu.Lock()
	defer xlw.mu.Unlock()
	xlw.sheets = append(xlw.sheets, name)
	if len(xlw.sheets) == 1 { // first
		if err := xlw.xl.SetSheetName("Sheet1", name); err != nil {
			return nil, err
		}
	} else if _, err := xlw.xl.NewSheet(name); err != nil {
		return nil, err
	}
	var hasHeader bool
	for i, c := range columns {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if c.Width > 0 {
			if err = xlw.xl.SetColWidth(name, col, col, c.Width); err != nil {
				return nil, err
			}
		}
		if s, err := xlw.getStyle(c.Column); err != nil {
			return nil, err
		} else if s != 0 {
			if err = xlw.xl.SetColStyle(name, col, s); err != nil {
				return nil, err
			}
		}
		if s, err := xlw.getStyle(c.Header); err != nil {
			return nil, err
		} else if s != 0 {
			if err = xlw.xl.SetCellStyle(name, col+"1", col+"1", s); err != nil {
				return nil, err
			}
		}
		if c.Name != "" {
			hasHeader = true
			if err = xlw.xl.SetCellStr(name, col+"1", c.Name); err != nil {
				return nil, err
			}
		}
	}
	xls := &XLSXSheet{xl: xlw.xl, Name: name}
	if hasHeader {
		xls.row++
		if err := xlw.xl.SetPanes(name, &excelize.Panes{
			Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft",
		}); err != nil {
			return nil, err
		}
	}
	return xls, nil
}

func (xlw *XLSXWriter) getStyle(style spreadsheet.Style) (int, error) {
	if style.IsZero() {
		return 0, nil
	}
	if s, ok := xlw.styles[style]; ok {
		return s, nil
	}
	var st excelize.Style
	if style.FontBold || style.FontColor != "" {
		st.Font = &excelize.Font{Bold: style.FontBold, Color: style.FontColor}
	}
	if style.Fill != "" {
		st.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{style.Fill}}
	}
	if style.Format != "" {
		st.CustomNumFmt = &style.Format
	}
	s, err := xlw.xl.NewStyle(&st)
	if err != nil {
		return 0, fmt.Errorf("new style %+v: %w", style, err)
	}
	if xlw.styles == nil {
		xlw.styles = make(map[spreadsheet.Style]int)
	}
	xlw.styles[style] = s
	return s, nil
}

// MaxRowCount is the number of maximum rows.
const MaxRowCount = 1_048_576

func (xls *XLSXSheet) Close() error { return nil }

// AppendRow writes values into the next row.
func (xls *XLSXSheet) AppendRow(values ...any) error {
	xls.mu.Lock()
	defer xls.mu.Unlock()
	if xls.row >= MaxRowCount {
		return spreadsheet.ErrTooManyRows
	}
	xls.row++
	for i, v := range values {
		axis, err := excelize.CoordinatesToCellName(i+1, int(xls.row))
		if err != nil {
			return fmt.Errorf("%d/%d: %w", i, int(xls.row), err)
		}
		if err = xls.setCell(axis, v); err != nil {
			return fmt.Errorf("%s[%s]: %w", xls.Name, axis, err)
		}
	}
	return nil
}

// setCell stores v with its native cell type.
// nil, the zero time and a driver.Valuer returning nil leave the cell empty.
func (xls *XLSXSheet) setCell(axis string, v any) error {
	if vr, ok := v.(driver.Valuer); ok {
		vv, err := vr.Value()
		if err != nil {
			return err
		}
		v = vv
	}
	switch x := v.(type) {
	case nil:
		return nil
	case string:
		return xls.xl.SetCellStr(xls.Name, axis, x)
	case spreadsheet.Number:
		return xls.xl.SetCellStr(xls.Name, axis, string(x))
	case float64:
		return xls.xl.SetCellFloat(xls.Name, axis, x, -1, 64)
	case int64:
		return xls.xl.SetCellInt(xls.Name, axis, x)
	case bool:
		return xls.xl.SetCellBool(xls.Name, axis, x)
	case time.Time:
		if x.IsZero() {
			return nil
		}
		return xls.xl.SetCellStr(xls.Name, axis, spreadsheet.FormatValue(x))
	case fmt.Stringer:
		return xls.xl.SetCellStr(xls.Name, axis, x.String())
	}
	return xls.xl.SetCellValue(xls.Name, axis, v)
}
