// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/UNO-SOFT/sheetdiff"
)

const ruleWidth = 100

func printAdvisories(w io.Writer, d sheetdiff.SheetDelta) {
	if len(d.OnlyA) != 0 {
		fmt.Fprintf(w, "⚠ Sheets in File 1 but not in File 2: %s\n", strings.Join(d.OnlyA, ", "))
	}
	if len(d.OnlyB) != 0 {
		fmt.Fprintf(w, "⚠ Sheets in File 2 but not in File 1: %s\n", strings.Join(d.OnlyB, ", "))
	}
	if !d.Equal() {
		fmt.Fprintln(w)
	}
}

// printReport lists the differences grouped by sheet, in row-major order.
func printReport(w io.Writer, c *sheetdiff.Collector) {
	if c.IsEmpty() {
		fmt.Fprintln(w, "✓ No differences found! Both files are identical.")
		return
	}
	fmt.Fprintf(w, "Found %d difference(s):\n", c.Len())
	fmt.Fprintln(w, strings.Repeat("=", ruleWidth))
	for _, g := range c.GroupedBySheet() {
		fmt.Fprintf(w, "\nSheet: '%s' (%d difference(s))\n", g.Sheet, len(g.Differences))
		fmt.Fprintln(w, strings.Repeat("-", ruleWidth))
		for _, d := range g.Differences {
			fmt.Fprintf(w, "  Cell: %s\n    File 1: %s\n    File 2: %s\n",
				d.Cell, d.Value1.Quote(), d.Value2.Quote())
		}
	}
	fmt.Fprintln(w, "\n"+strings.Repeat("=", ruleWidth))
	fmt.Fprintf(w, "Total differences: %d\n", c.Len())
}
