// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package sheetdiff

import (
	"fmt"

	"github.com/UNO-SOFT/sheetdiff/spreadsheet"
)

// ExportSheetName is the name of the exported sheet.
const ExportSheetName = "Differences"

// The Error_name_* columns hold the key column values of the row.
var exportHeader = [...]string{
	"Sheet", "Cell", "Error_name_1", "Error_name_2", "Column",
	"Column Header (File 1)", "Column Header (File 2)",
	"File 1 Value", "File 2 Value",
}

var exportWidths = [len(exportHeader)]float64{15, 12, 15, 15, 12, 20, 20, 20, 20}

// HeaderStyle is the style of the exported header row.
var HeaderStyle = spreadsheet.Style{FontBold: true, FontColor: "FFFFFF", Fill: "4472C4"}

// ExportHeader returns the header row of the export.
func ExportHeader() []string { return append([]string(nil), exportHeader[:]...) }

// ExportColumns returns the exported columns with the header style and widths.
func ExportColumns() []spreadsheet.Column {
	cols := make([]spreadsheet.Column, len(exportHeader))
	for i, nm := range exportHeader {
		cols[i] = spreadsheet.Column{Name: nm, Header: HeaderStyle, Width: exportWidths[i]}
	}
	return cols
}

// Record returns the export row of the difference.
// The values are Values (driver.Valuer), keeping their native type.
func (d Difference) Record() []any {
	return []any{
		d.Sheet, d.Cell, d.Key1, d.Key2, d.ColumnName(),
		d.Header1, d.Header2, d.Value1, d.Value2,
	}
}

// TableRows returns the data rows of the export, in the order of diffs.
func TableRows(diffs []Difference) [][]any {
	rows := make([][]any, len(diffs))
	for i, d := range diffs {
		rows[i] = d.Record()
	}
	return rows
}

// Export writes diffs as the ExportSheetName sheet of w.
// It does not Close w.
//
// For an empty diffs Export returns ErrNothingToExport without touching w.
func Export(w spreadsheet.Writer, diffs []Difference) error {
	if len(diffs) == 0 {
		return ErrNothingToExport
	}
	sheet, err := w.NewSheet(ExportSheetName, ExportColumns())
	if err != nil {
		return fmt.Errorf("new sheet %q: %w", ExportSheetName, err)
	}
	for _, d := range diffs {
		if err := sheet.AppendRow(d.Record()...); err != nil {
			sheet.Close()
			return fmt.Errorf("%s!%s: %w", d.Sheet, d.Cell, err)
		}
	}
	return sheet.Close()
}
