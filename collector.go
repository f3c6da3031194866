// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package sheetdiff

import (
	"cmp"
	"slices"
	"sync"
)

// Collector accumulates the differences of one comparison run.
//
// Add is safe for concurrent use; the orderings are computed on each call,
// so they never depend on the insertion order.
type Collector struct {
	diffs []Difference
	mu    sync.Mutex
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector { return &Collector{} }

// Add appends diffs to the collection.
func (c *Collector) Add(diffs ...Difference) {
	c.mu.Lock()
	c.diffs = append(c.diffs, diffs...)
	c.mu.Unlock()
}

func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.diffs)
}

func (c *Collector) IsEmpty() bool { return c.Len() == 0 }

// All returns the differences in insertion order.
func (c *Collector) All() []Difference {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.diffs)
}

func compareCells(a, b Difference) int {
	if n := cmp.Compare(a.Row, b.Row); n != 0 {
		return n
	}
	return cmp.Compare(a.Column, b.Column)
}

func compareForExport(a, b Difference) int {
	if n := cmp.Compare(a.Sheet, b.Sheet); n != 0 {
		return n
	}
	return compareCells(a, b)
}

// SortedForExport returns the differences ordered by sheet name, row and column.
func (c *Collector) SortedForExport() []Difference {
	diffs := c.All()
	slices.SortStableFunc(diffs, compareForExport)
	return diffs
}

// SheetGroup holds the differences of one sheet, ordered by row and column.
type SheetGroup struct {
	Sheet       string
	Differences []Difference
}

// GroupedBySheet returns the differences grouped by sheet,
// the groups ordered by sheet name.
func (c *Collector) GroupedBySheet() []SheetGroup {
	var groups []SheetGroup
	for _, d := range c.SortedForExport() {
		if len(groups) == 0 || groups[len(groups)-1].Sheet != d.Sheet {
			groups = append(groups, SheetGroup{Sheet: d.Sheet})
		}
		g := &groups[len(groups)-1]
		g.Differences = append(g.Differences, d)
	}
	return groups
}

// BySheet returns the differences keyed by sheet name.
func (c *Collector) BySheet() map[string][]Difference {
	m := make(map[string][]Difference)
	for _, g := range c.GroupedBySheet() {
		m[g.Sheet] = g.Differences
	}
	return m
}
