// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/UNO-SOFT/sheetdiff"
	"github.com/UNO-SOFT/sheetdiff/pdf"
)

type app struct {
	In  io.Reader
	Out io.Writer

	Charset string
	Output  string
	Prompt  bool

	Options sheetdiff.Options
	PDF     pdf.Options

	in *bufio.Reader
}

var fileLabels = [2]string{"First", "Second"}

// Run compares the two files named by args (asking for the missing ones),
// prints the report and exports the differences.
func (a *app) Run(ctx context.Context, args []string) error {
	if len(args) > 2 {
		return fmt.Errorf("at most two files can be compared, got %d", len(args))
	}
	if a.in == nil {
		a.in = bufio.NewReader(a.In)
	}
	var paths [2]string
	for i := range paths {
		var arg string
		if i < len(args) {
			arg = args[i]
		}
		p, err := a.resolvePath(fileLabels[i], arg)
		if err != nil {
			return err
		}
		paths[i] = p
	}
	if same, err := sameFile(paths[0], paths[1]); err != nil {
		return err
	} else if same {
		return fmt.Errorf("%q and %q: %w", paths[0], paths[1], sheetdiff.ErrSamePath)
	}

	fmt.Fprintf(a.Out, "\nComparing '%s' and '%s'...\n\n", filepath.Base(paths[0]), filepath.Base(paths[1]))
	var books [2]*sheetdiff.Book
	for i, p := range paths {
		b, err := openWorkbook(p, a.Charset)
		if err != nil {
			return err
		}
		books[i] = b
	}
	// the sheet set advisories precede the cell comparison
	printAdvisories(a.Out, sheetdiff.Reconcile(books[0].SheetNames(), books[1].SheetNames()))
	res, err := sheetdiff.Compare(ctx, books[0], books[1], a.Options)
	if err != nil {
		return err
	}
	printReport(a.Out, res.Differences)
	if res.Differences.IsEmpty() {
		return nil
	}

	diffs := res.Differences.SortedForExport()
	if a.Output != "" {
		if err := exportFile(a.Output, diffs, a.Charset, a.PDF); err != nil {
			return err
		}
		fmt.Fprintf(a.Out, "\n✓ Differences exported to: %s\n", a.Output)
		return nil
	}
	if !a.Prompt {
		return nil
	}
	return a.exportInteractive(diffs)
}

// resolvePath returns the absolute path of an existing file,
// asking for it while it is missing or invalid.
func (a *app) resolvePath(label, path string) (string, error) {
	for {
		if path != "" {
			abs, err := validatePath(path)
			if err == nil {
				fmt.Fprintf(a.Out, "✓ %s file found at: %s\n", label, abs)
				return abs, nil
			}
			if !a.Prompt {
				return "", err
			}
			fmt.Fprintf(a.Out, "✗ %v\n", err)
		} else if !a.Prompt {
			return "", fmt.Errorf("%s file: missing path", label)
		}
		s, err := a.ask(fmt.Sprintf("Enter path for %s spreadsheet file: ", label))
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", fmt.Errorf("%s file: no path given", label)
			}
			return "", err
		}
		path = s
	}
}

func sameFile(a, b string) (bool, error) {
	if a == b {
		return true, nil
	}
	fa, err := os.Stat(a)
	if err != nil {
		return false, err
	}
	fb, err := os.Stat(b)
	if err != nil {
		return false, err
	}
	return os.SameFile(fa, fb), nil
}
