// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package sheetdiff

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Sheet is a sparse grid of computed values addressed by 1-based row and column.
//
// MaxRow and MaxColumn are the bounds of the occupied rectangle, 0 for an empty sheet.
// CellValue returns Absent for an empty cell.
type Sheet interface {
	Name() string
	MaxRow() int
	MaxColumn() int
	CellValue(row, col int) (Value, error)
}

// Workbook is an ordered set of uniquely named sheets.
type Workbook interface {
	SheetNames() []string
	Sheet(name string) (Sheet, error)
}

type cellKey struct{ row, col int }

var _ = (Sheet)((*Grid)(nil))

// Grid is an in-memory Sheet.
type Grid struct {
	cells          map[cellKey]Value
	name           string
	maxRow, maxCol int
}

// NewGrid returns an empty sheet named name.
func NewGrid(name string) *Grid {
	return &Grid{name: name, cells: make(map[cellKey]Value)}
}

func (g *Grid) Name() string   { return g.name }
func (g *Grid) MaxRow() int    { return g.maxRow }
func (g *Grid) MaxColumn() int { return g.maxCol }

func (g *Grid) CellValue(row, col int) (Value, error) {
	if row < 1 || col < 1 {
		return Absent, fmt.Errorf("invalid coordinates %d/%d", row, col)
	}
	return g.cells[cellKey{row, col}], nil
}

// Set stores v at (row, col). Setting Absent clears the cell
// but does not shrink the occupied rectangle.
func (g *Grid) Set(row, col int, v Value) {
	if row < 1 || col < 1 {
		return
	}
	k := cellKey{row, col}
	if v.IsAbsent() {
		delete(g.cells, k)
		return
	}
	g.cells[k] = v
	g.maxRow = max(g.maxRow, row)
	g.maxCol = max(g.maxCol, col)
}

// SetRow stores values in row from column 1 on.
func (g *Grid) SetRow(row int, values ...Value) {
	for i, v := range values {
		g.Set(row, i+1, v)
	}
}

var _ = (Workbook)((*Book)(nil))

// Book is an in-memory Workbook.
type Book struct {
	sheets map[string]*Grid
	names  []string
}

func NewBook(sheets ...*Grid) (*Book, error) {
	b := &Book{sheets: make(map[string]*Grid, len(sheets))}
	for _, g := range sheets {
		if err := b.AddSheet(g); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// AddSheet appends g to the book.
func (b *Book) AddSheet(g *Grid) error {
	if _, ok := b.sheets[g.Name()]; ok {
		return fmt.Errorf("%q: %w", g.Name(), ErrDuplicateSheet)
	}
	b.sheets[g.Name()] = g
	b.names = append(b.names, g.Name())
	return nil
}

func (b *Book) SheetNames() []string { return append([]string(nil), b.names...) }

func (b *Book) Sheet(name string) (Sheet, error) {
	if g, ok := b.sheets[name]; ok {
		return g, nil
	}
	return nil, fmt.Errorf("%q: %w", name, ErrSheetNotFound)
}

// ColumnName returns the column letters of the 1-based col ("D" for 4).
func ColumnName(col int) string {
	s, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return ""
	}
	return s
}

// CellAddress returns the A1 style reference of (row, col).
func CellAddress(row, col int) string {
	s, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Sprintf("R%dC%d", row, col)
	}
	return s
}
