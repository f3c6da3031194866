// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/UNO-SOFT/sheetdiff"
	"github.com/UNO-SOFT/sheetdiff/ods"
	"github.com/UNO-SOFT/sheetdiff/pdf"
	"github.com/UNO-SOFT/sheetdiff/spreadsheet"
	"github.com/UNO-SOFT/sheetdiff/xlsx"
)

// exportExtensions are the output formats, in the order of the prompt.
var exportExtensions = []string{".xlsx", ".csv", ".ods", ".pdf"}

func newWriter(w io.Writer, path, charset string, pdfOpts pdf.Options) (spreadsheet.Writer, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return spreadsheet.NewCSVWriter(w, charset)
	case ".xlsx":
		return xlsx.NewWriter(w), nil
	case ".ods":
		return ods.NewWriter(w)
	case ".pdf":
		return pdf.NewWriter(w, pdfOpts), nil
	default:
		return nil, fmt.Errorf("%q: %w (use one of %s)", ext, sheetdiff.ErrUnsupportedFormat,
			strings.Join(exportExtensions, ", "))
	}
}

// exportFile writes diffs into path, in the format given by its extension.
//
// Nothing is created for an empty diffs, an unknown extension or charset.
func exportFile(path string, diffs []sheetdiff.Difference, charset string, pdfOpts pdf.Options) error {
	if len(diffs) == 0 {
		return sheetdiff.ErrNothingToExport
	}
	if ext := strings.ToLower(filepath.Ext(path)); !slices.Contains(exportExtensions, ext) {
		return fmt.Errorf("%q: %w (use one of %s)", ext, sheetdiff.ErrUnsupportedFormat,
			strings.Join(exportExtensions, ", "))
	}
	if isCSV(path) {
		if _, err := spreadsheet.GetEncoding(charset); err != nil {
			return err
		}
	}
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fh.Close()
	w, err := newWriter(fh, path, charset, pdfOpts)
	if err != nil {
		return err
	}
	if err = sheetdiff.Export(w, diffs); err != nil {
		w.Close()
		return err
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("write %q: %w", path, err)
	}
	return fh.Close()
}
