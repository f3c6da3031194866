// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package sheetdiff

import "slices"

// SheetDelta is the sheet name comparison of two workbooks.
// All three lists are sorted.
type SheetDelta struct {
	// OnlyA lists the sheets present only in the first workbook.
	OnlyA []string
	// OnlyB lists the sheets present only in the second workbook.
	OnlyB []string
	// Common lists the sheets to be compared.
	Common []string
}

// Equal reports whether the two workbooks have the same sheet names.
func (d SheetDelta) Equal() bool { return len(d.OnlyA) == 0 && len(d.OnlyB) == 0 }

// Reconcile compares the sheet names of two workbooks (case sensitively).
func Reconcile(namesA, namesB []string) SheetDelta {
	inA := make(map[string]struct{}, len(namesA))
	for _, n := range namesA {
		inA[n] = struct{}{}
	}
	inB := make(map[string]struct{}, len(namesB))
	for _, n := range namesB {
		inB[n] = struct{}{}
	}
	var d SheetDelta
	for n := range inA {
		if _, ok := inB[n]; ok {
			d.Common = append(d.Common, n)
		} else {
			d.OnlyA = append(d.OnlyA, n)
		}
	}
	for n := range inB {
		if _, ok := inA[n]; !ok {
			d.OnlyB = append(d.OnlyB, n)
		}
	}
	slices.Sort(d.OnlyA)
	slices.Sort(d.OnlyB)
	slices.Sort(d.Common)
	return d
}
