// Copyright 2021, 2026 Tamas Gulacsi. All rights reserved.

// Command sheetdiff compares two spreadsheet files cell by cell
// and reports or exports the differences.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/UNO-SOFT/zlog/v2"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"
	"github.com/xuri/excelize/v2"

	"github.com/UNO-SOFT/sheetdiff"
	"github.com/UNO-SOFT/sheetdiff/pdf"
	"github.com/UNO-SOFT/sheetdiff/spreadsheet"
)

var verbose zlog.VerboseVar
var logger = zlog.NewLogger(zlog.MaybeConsoleHandler(&verbose, os.Stderr)).SLog()

func main() {
	if err := Main(); err != nil {
		logger.Error("MAIN", "error", err)
		os.Exit(1)
	}
}

func Main() error {
	a := app{
		In:  os.Stdin,
		Out: os.Stdout,
		PDF: pdf.DefaultOptions(),
	}
	fs := flag.NewFlagSet("sheetdiff", flag.ContinueOnError)
	fs.Var(&verbose, "v", "logging verbosity")
	fs.StringVar(&a.Charset, "charset", spreadsheet.EncName, "csv charset name (input and output)")
	fs.StringVar(&a.Output, "o", "", "export the differences into this file (.csv, .xlsx, .ods or .pdf)")
	fs.BoolVar(&a.Prompt, "prompt", true, "ask for the missing paths and whether to export")
	flagKey := fs.String("key-column", sheetdiff.ColumnName(sheetdiff.DefaultKeyColumn), "column (letter or number) identifying the rows")
	fs.IntVar(&a.Options.HeaderRow, "header-row", sheetdiff.DefaultHeaderRow, "row of the column headers")
	fs.IntVar(&a.Options.Concurrency, "concurrency", 1, "number of sheets compared in parallel")
	fs.Var(&a.PDF.AlternateColor, "alternate-color", "alternate row color of the PDF export")
	fs.BoolVar(&a.PDF.Landscape, "L", false, "landscape PDF orientation (default: portrait)")
	fs.Float64Var(&a.PDF.FontSize, "f", a.PDF.FontSize, "PDF font size")
	_ = fs.String("config", "", "config file (optional)")

	cmd := ffcli.Command{Name: "sheetdiff", FlagSet: fs,
		ShortUsage: "sheetdiff [flags] [file1] [file2]",
		ShortHelp:  "compare two spreadsheets cell by cell",
		LongHelp: `Compares the sheets with the same name of the two files
(.xlsx, .xlsm, .xltx, .xltm or .csv) over the union of their used ranges,
and lists every differing cell with the key column value of its row
and the header of its column.

The missing file names are asked for interactively (unless -prompt=false).

Flags can be set from SHEETDIFF_* environment variables, or from a
config file (-config) with "name value" lines.`,
		Options: []ff.Option{
			ff.WithEnvVarPrefix("SHEETDIFF"),
			ff.WithConfigFileFlag("config"),
			ff.WithConfigFileParser(ff.PlainParser),
			ff.WithAllowMissingConfigFile(true),
		},
		Exec: func(ctx context.Context, args []string) error {
			col, err := parseColumn(*flagKey)
			if err != nil {
				return fmt.Errorf("-key-column=%q: %w", *flagKey, err)
			}
			a.Options.KeyColumn = col
			a.Options.Logger = logger
			return a.Run(ctx, args)
		},
	}
	if err := cmd.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return cmd.Run(ctx)
}

// parseColumn accepts a column letter ("D") or a 1-based number ("4").
func parseColumn(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > excelize.MaxColumns {
			return 0, fmt.Errorf("column number %d out of range", n)
		}
		return n, nil
	}
	return excelize.ColumnNameToNumber(s)
}
