// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/UNO-SOFT/sheetdiff"
)

const defaultExportName = "differences"

// ask prints the question and reads one trimmed line.
// A last line without newline is returned, io.EOF only when nothing was read.
func (a *app) ask(question string) (string, error) {
	fmt.Fprint(a.Out, question)
	line, err := a.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (a *app) askYesNo(question string) (bool, error) {
	for {
		s, err := a.ask(question)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(s) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(a.Out, "Please answer yes or no.")
	}
}

func (a *app) askFormat() (string, error) {
	for {
		s, err := a.ask("Export format - (1) Excel, (2) CSV, (3) OpenDocument or (4) PDF? (1-4): ")
		if err != nil {
			return "", err
		}
		if len(s) == 1 && '1' <= s[0] && int(s[0]-'1') < len(exportExtensions) {
			return exportExtensions[s[0]-'1'], nil
		}
		fmt.Fprintln(a.Out, "Please enter 1, 2, 3 or 4.")
	}
}

// exportInteractive asks whether and where to export diffs,
// asking for another name while the export fails.
func (a *app) exportInteractive(diffs []sheetdiff.Difference) error {
	ok, err := a.askYesNo("\nWould you like to export differences? (yes/no): ")
	if err != nil || !ok {
		return ignoreEOF(err)
	}
	ext, err := a.askFormat()
	if err != nil {
		return ignoreEOF(err)
	}
	name, err := a.ask(fmt.Sprintf("Enter output filename (default: %s%s): ", defaultExportName, ext))
	if err != nil {
		return ignoreEOF(err)
	}
	for {
		if name == "" {
			name = defaultExportName
		}
		if !strings.EqualFold(filepath.Ext(name), ext) {
			name += ext
		}
		err := exportFile(name, diffs, a.Charset, a.PDF)
		if err == nil {
			abs, _ := filepath.Abs(name)
			fmt.Fprintf(a.Out, "\n✓ Differences exported to: %s\n", abs)
			return nil
		}
		if logger := a.Options.Logger; logger != nil {
			logger.Error("export", "file", name, "error", err)
		}
		fmt.Fprintf(a.Out, "✗ Export failed: %v\n", err)
		if name, err = a.ask("Enter another filename (empty to skip): "); err != nil || name == "" {
			return ignoreEOF(err)
		}
	}
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
