// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/UNO-SOFT/sheetdiff"
	"github.com/UNO-SOFT/sheetdiff/xlsx"
)

func isCSV(path string) bool { return strings.EqualFold(filepath.Ext(path), ".csv") }

func isSupported(path string) bool {
	return isCSV(path) || slices.Contains(xlsx.Extensions, strings.ToLower(filepath.Ext(path)))
}

// validatePath checks that path names an existing, regular file of a
// supported format, and returns its absolute form.
func validatePath(path string) (string, error) {
	path = strings.Trim(strings.TrimSpace(path), `"'`)
	if path == "" {
		return "", fmt.Errorf("empty path")
	}
	if strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	fi, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %s", abs)
		}
		return "", err
	}
	if !fi.Mode().IsRegular() {
		return "", fmt.Errorf("not a regular file: %s", abs)
	}
	if !isSupported(abs) {
		return "", fmt.Errorf("%s: %w (use %s or .csv)", abs, sheetdiff.ErrUnsupportedFormat,
			strings.Join(xlsx.Extensions, ", "))
	}
	return abs, nil
}

// openWorkbook loads the file by its extension.
func openWorkbook(path, charset string) (*sheetdiff.Book, error) {
	switch {
	case isCSV(path):
		return sheetdiff.LoadCSV(path, charset)
	case isSupported(path):
		return xlsx.Open(path)
	default:
		return nil, &sheetdiff.LoadError{Path: path, Err: sheetdiff.ErrUnsupportedFormat}
	}
}
