// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package sheetdiff compares two workbooks cell by cell.
//
// Sheets with the same name are compared over the union of their occupied
// rectangles. Every differing cell yields a Difference carrying the cell
// address, both values, the recognized spreadsheet error code (or
// "Value Mismatch"), the key column value of the row and the header value
// of the column from both workbooks.
//
// The differences are collected by a Collector, which orders them by sheet,
// row and column for reporting and for Export to any spreadsheet.Writer.
//
// Reading workbook files is left to the xlsx package (and LoadCSV);
// this package works on the Workbook and Sheet interfaces only.
package sheetdiff
