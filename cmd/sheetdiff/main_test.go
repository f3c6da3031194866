// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/UNO-SOFT/sheetdiff"
	"github.com/UNO-SOFT/sheetdiff/pdf"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(fn, []byte(content), 0o644))
	return fn
}

func newApp(in string) (*app, *bytes.Buffer) {
	var out bytes.Buffer
	return &app{
		In:      strings.NewReader(in),
		Out:     &out,
		Prompt:  true,
		Options: sheetdiff.Options{Logger: slog.New(slog.DiscardHandler)},
		PDF:     pdf.DefaultOptions(),
	}, &out
}

func TestParseColumn(t *testing.T) {
	for s, want := range map[string]int{"D": 4, "d": 4, "4": 4, "AA": 27, "1": 1} {
		got, err := parseColumn(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, got, s)
	}
	for _, s := range []string{"0", "-1", "", "A1"} {
		_, err := parseColumn(s)
		assert.Error(t, err, s)
	}
}

func TestValidatePath(t *testing.T) {
	dir := t.TempDir()
	fn := writeFile(t, dir, "a.csv", "x\n")
	abs, err := validatePath(" '" + fn + "' ")
	require.NoError(t, err)
	assert.Equal(t, fn, abs)

	_, err = validatePath(filepath.Join(dir, "missing.xlsx"))
	assert.ErrorContains(t, err, "not found")
	_, err = validatePath(dir)
	assert.ErrorContains(t, err, "not a regular file")
	_, err = validatePath(writeFile(t, dir, "a.xls", ""))
	assert.ErrorIs(t, err, sheetdiff.ErrUnsupportedFormat)
	_, err = validatePath("")
	assert.Error(t, err)
}

func TestOpenWorkbook(t *testing.T) {
	dir := t.TempDir()
	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", 1))
	xl := filepath.Join(dir, "a.xlsx")
	require.NoError(t, f.SaveAs(xl))
	require.NoError(t, f.Close())

	book, err := openWorkbook(xl, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Sheet1"}, book.SheetNames())

	book, err = openWorkbook(writeFile(t, dir, "b.csv", "a,b\n"), "")
	require.NoError(t, err)
	assert.Equal(t, []string{sheetdiff.CSVSheetName}, book.SheetNames())

	_, err = openWorkbook(writeFile(t, dir, "c.ods", ""), "")
	var le *sheetdiff.LoadError
	assert.ErrorAs(t, err, &le)
	assert.ErrorIs(t, err, sheetdiff.ErrUnsupportedFormat)
}

func sampleDiffs() []sheetdiff.Difference {
	return []sheetdiff.Difference{{
		Sheet:     "Data",
		Cell:      "B2",
		Row:       2,
		Column:    2,
		Value1:    sheetdiff.NumberValue(10),
		Value2:    sheetdiff.NumberValue(20),
		ErrorName: sheetdiff.ValueMismatch,
		Key1:      sheetdiff.TextValue("ID-2"),
		Key2:      sheetdiff.TextValue("ID-2"),
		Header1:   sheetdiff.TextValue("Score"),
		Header2:   sheetdiff.TextValue("Score"),
	}}
}

func TestExportFile(t *testing.T) {
	dir := t.TempDir()
	for _, ext := range exportExtensions {
		fn := filepath.Join(dir, "out"+ext)
		require.NoError(t, exportFile(fn, sampleDiffs(), "", pdf.DefaultOptions()), ext)
		fi, err := os.Stat(fn)
		require.NoError(t, err)
		assert.Positive(t, fi.Size(), ext)
	}
	b, err := os.ReadFile(filepath.Join(dir, "out.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "Data,B2,ID-2,ID-2,B,Score,Score,10,20\n")

	f, err := excelize.OpenFile(filepath.Join(dir, "out.xlsx"))
	require.NoError(t, err)
	defer f.Close()
	v, err := f.GetCellValue(sheetdiff.ExportSheetName, "I2")
	require.NoError(t, err)
	assert.Equal(t, "20", v)

	fn := filepath.Join(dir, "out.txt")
	assert.ErrorIs(t, exportFile(fn, sampleDiffs(), "", pdf.Options{}), sheetdiff.ErrUnsupportedFormat)
	assert.NoFileExists(t, fn)

	fn = filepath.Join(dir, "empty.csv")
	assert.ErrorIs(t, exportFile(fn, nil, "", pdf.Options{}), sheetdiff.ErrNothingToExport)
	assert.NoFileExists(t, fn)
}

func TestExportFileBadCharset(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "out.csv")
	assert.Error(t, exportFile(fn, sampleDiffs(), "no-such-charset", pdf.Options{}))
	assert.NoFileExists(t, fn)

	require.NoError(t, exportFile(fn, sampleDiffs(), "iso-8859-2", pdf.Options{}))
	assert.FileExists(t, fn)
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	printReport(&buf, sheetdiff.NewCollector())
	assert.Equal(t, "✓ No differences found! Both files are identical.\n", buf.String())

	c := sheetdiff.NewCollector()
	c.Add(sampleDiffs()...)
	c.Add(sheetdiff.Difference{Sheet: "Calc", Cell: "C3", Row: 3, Column: 3,
		Value1: sheetdiff.TextValue("#DIV/0!")})
	buf.Reset()
	printReport(&buf, c)
	out := buf.String()
	assert.Contains(t, out, "Found 2 difference(s):\n")
	assert.Contains(t, out, "Sheet: 'Calc' (1 difference(s))\n")
	assert.Contains(t, out, "  Cell: B2\n    File 1: 10\n    File 2: 20\n")
	assert.Contains(t, out, "    File 1: \"#DIV/0!\"\n    File 2: (empty)\n")
	assert.Less(t, strings.Index(out, "'Calc'"), strings.Index(out, "'Data'"))
	assert.True(t, strings.HasSuffix(out, "Total differences: 2\n"))

	buf.Reset()
	printAdvisories(&buf, sheetdiff.Reconcile([]string{"Data", "Old"}, []string{"Data", "Extra"}))
	assert.Equal(t, "⚠ Sheets in File 1 but not in File 2: Old\n"+
		"⚠ Sheets in File 2 but not in File 1: Extra\n\n", buf.String())
}

func TestRunOutput(t *testing.T) {
	dir := t.TempDir()
	fn1 := writeFile(t, dir, "a.csv", "Name,Score,x,ID\nAlice,10,,ID-2\n")
	fn2 := writeFile(t, dir, "b.csv", "Name,Score,x,ID\nAlice,20,,ID-2\n")
	a, out := newApp("")
	a.Prompt = false
	a.Output = filepath.Join(dir, "diff.csv")
	require.NoError(t, a.Run(context.Background(), []string{fn1, fn2}))

	assert.Contains(t, out.String(), "Comparing 'a.csv' and 'b.csv'")
	assert.Contains(t, out.String(), "Sheet: 'Sheet1' (1 difference(s))")
	assert.Contains(t, out.String(), "    File 1: \"10\"\n    File 2: \"20\"\n")
	b, err := os.ReadFile(a.Output)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(sheetdiff.ExportHeader(), ",")+"\n"+
		"Sheet1,B2,ID-2,ID-2,B,Score,Score,10,20\n", string(b))
}

func TestRunAdvisoriesFirst(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i, sheets := range [][]string{{"Data", "Old"}, {"Data", "Extra"}} {
		f := excelize.NewFile()
		require.NoError(t, f.SetSheetName("Sheet1", sheets[0]))
		_, err := f.NewSheet(sheets[1])
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue("Data", "B2", i))
		fn := filepath.Join(dir, sheets[1]+".xlsx")
		require.NoError(t, f.SaveAs(fn))
		require.NoError(t, f.Close())
		paths = append(paths, fn)
	}
	a, out := newApp("")
	a.Prompt = false
	require.NoError(t, a.Run(context.Background(), paths))

	s := out.String()
	i1 := strings.Index(s, "⚠ Sheets in File 1 but not in File 2: Old\n")
	i2 := strings.Index(s, "⚠ Sheets in File 2 but not in File 1: Extra\n")
	report := strings.Index(s, "Found 1 difference(s):")
	require.True(t, i1 >= 0 && i2 >= 0 && report >= 0, s)
	assert.Less(t, i1, report)
	assert.Less(t, i2, report)
	assert.Equal(t, 1, strings.Count(s, "⚠ Sheets in File 1"))
}

func TestRunIdentical(t *testing.T) {
	dir := t.TempDir()
	fn1 := writeFile(t, dir, "a.csv", "a,b\n")
	fn2 := writeFile(t, dir, "b.csv", "a,b\n")
	a, out := newApp("")
	require.NoError(t, a.Run(context.Background(), []string{fn1, fn2}))
	assert.Contains(t, out.String(), "No differences found")
	assert.NotContains(t, out.String(), "export")
}

func TestRunSameFile(t *testing.T) {
	fn := writeFile(t, t.TempDir(), "a.csv", "a\n")
	a, _ := newApp("")
	err := a.Run(context.Background(), []string{fn, fn})
	assert.ErrorIs(t, err, sheetdiff.ErrSamePath)

	err = a.Run(context.Background(), []string{fn, fn, fn})
	assert.Error(t, err)
}

func TestRunInteractive(t *testing.T) {
	dir := t.TempDir()
	fn1 := writeFile(t, dir, "a.csv", "x,1\n")
	fn2 := writeFile(t, dir, "b.csv", "x,2\n")
	outName := filepath.Join(dir, "report")
	a, out := newApp(strings.Join([]string{
		filepath.Join(dir, "missing.csv"),
		fn2,
		"maybe",
		"yes",
		"9",
		"2",
		outName,
	}, "\n") + "\n")
	require.NoError(t, a.Run(context.Background(), []string{fn1}))

	s := out.String()
	assert.Contains(t, s, "✓ First file found at: "+fn1)
	assert.Contains(t, s, "Enter path for Second spreadsheet file: ")
	assert.Contains(t, s, "file not found")
	assert.Contains(t, s, "✓ Second file found at: "+fn2)
	assert.Contains(t, s, "Please answer yes or no.")
	assert.Contains(t, s, "Please enter 1, 2, 3 or 4.")
	assert.Contains(t, s, "Differences exported to: "+outName+".csv")
	assert.FileExists(t, outName+".csv")
}

func TestRunInteractiveDecline(t *testing.T) {
	dir := t.TempDir()
	fn1 := writeFile(t, dir, "a.csv", "x,1\n")
	fn2 := writeFile(t, dir, "b.csv", "x,2\n")
	a, out := newApp("no\n")
	require.NoError(t, a.Run(context.Background(), []string{fn1, fn2}))
	assert.Contains(t, out.String(), "Would you like to export differences?")
	assert.NotContains(t, out.String(), "Export format")

	// EOF ends the prompting without an error
	a, _ = newApp("")
	require.NoError(t, a.Run(context.Background(), []string{fn1, fn2}))
}

func TestRunInteractiveRetry(t *testing.T) {
	dir := t.TempDir()
	fn1 := writeFile(t, dir, "a.csv", "x,1\n")
	fn2 := writeFile(t, dir, "b.csv", "x,2\n")
	bad := filepath.Join(dir, "no-such-dir", "out")
	good := filepath.Join(dir, "out.xlsx")
	a, out := newApp("y\n1\n" + bad + "\n" + good + "\n")
	require.NoError(t, a.Run(context.Background(), []string{fn1, fn2}))
	assert.Contains(t, out.String(), "✗ Export failed")
	assert.Contains(t, out.String(), "Enter another filename (empty to skip): ")
	assert.FileExists(t, good)
	assert.NoFileExists(t, bad+".xlsx")
}

func TestRunMissingPathNoPrompt(t *testing.T) {
	a, _ := newApp("")
	a.Prompt = false
	assert.Error(t, a.Run(context.Background(), nil))
}
