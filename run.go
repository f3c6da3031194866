// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package sheetdiff

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome of comparing two workbooks.
type Result struct {
	Differences *Collector
	Sheets      SheetDelta
}

// Compare compares the common sheets of a and b in sheet name order.
//
// The sheets present in only one of the workbooks are logged as warnings
// and are not compared. On error no partial Result is returned.
func Compare(ctx context.Context, a, b Workbook, opts Options) (*Result, error) {
	opts = opts.withDefaults()
	logger := opts.Logger
	res := Result{
		Sheets:      Reconcile(a.SheetNames(), b.SheetNames()),
		Differences: NewCollector(),
	}
	if len(res.Sheets.OnlyA) != 0 {
		logger.Warn("sheets in file 1 but not in file 2", "only_in_1", res.Sheets.OnlyA)
	}
	if len(res.Sheets.OnlyB) != 0 {
		logger.Warn("sheets in file 2 but not in file 1", "only_in_2", res.Sheets.OnlyB)
	}

	compare := func(ctx context.Context, name string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		sa, err := a.Sheet(name)
		if err != nil {
			return fmt.Errorf("file 1: %w", err)
		}
		sb, err := b.Sheet(name)
		if err != nil {
			return fmt.Errorf("file 2: %w", err)
		}
		diffs, err := CompareSheets(sa, sb, opts)
		if err != nil {
			return err
		}
		res.Differences.Add(diffs...)
		return nil
	}

	if opts.Concurrency <= 1 {
		for _, name := range res.Sheets.Common {
			if err := compare(ctx, name); err != nil {
				return nil, err
			}
		}
	} else {
		grp, grpCtx := errgroup.WithContext(ctx)
		grp.SetLimit(opts.Concurrency)
		for _, name := range res.Sheets.Common {
			grp.Go(func() error { return compare(grpCtx, name) })
		}
		if err := grp.Wait(); err != nil {
			return nil, err
		}
	}
	logger.Info("compared", "sheets", len(res.Sheets.Common), "differences", res.Differences.Len())
	return &res, nil
}
