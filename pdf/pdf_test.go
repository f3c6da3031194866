// Copyright 2021, 2026 Tamas Gulacsi. All rights reserved.

package pdf

import (
	"bytes"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UNO-SOFT/sheetdiff/spreadsheet"
)

func columns(widths ...float64) []spreadsheet.Column {
	cols := make([]spreadsheet.Column, len(widths))
	for i, w := range widths {
		cols[i] = spreadsheet.Column{Name: "c", Width: w}
	}
	return cols
}

func TestGridSizes(t *testing.T) {
	for name, tc := range map[string]struct {
		cols []spreadsheet.Column
		want []int
	}{
		"empty":  {nil, []int{}},
		"equal":  {columns(1, 1, 1), []int{4, 4, 4}},
		"one":    {columns(5), []int{12}},
		"export": {columns(15, 12, 15, 15, 12, 20, 20, 20, 20), []int{1, 1, 1, 1, 1, 1, 2, 2, 2}},
		"skewed": {columns(100, 1), []int{11, 1}},
		"names":  {[]spreadsheet.Column{{Name: "ab"}, {Name: "abcd"}, {Name: "ab"}}, []int{3, 6, 3}},
	} {
		t.Run(name, func(t *testing.T) {
			got := GridSizes(tc.cols)
			assert.Equal(t, tc.want, got)
			if len(got) != 0 {
				var sum int
				for _, s := range got {
					sum += s
				}
				assert.Equal(t, GridSize, sum)
			}
		})
	}
}

func TestColor(t *testing.T) {
	var c Color
	require.NoError(t, c.Parse("4472C4"))
	assert.Equal(t, 0x44, c.Red)
	assert.Equal(t, 0x72, c.Green)
	assert.Equal(t, 0xc4, c.Blue)
	assert.Equal(t, "4472c4", c.String())
	assert.Error(t, c.Parse("zzzzzz"))
	assert.Error(t, c.Parse("FFFF"))

	opts := DefaultOptions()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(&opts.AlternateColor, "alternate-color", "")
	require.NoError(t, fs.Parse([]string{"-alternate-color=ff0000"}))
	assert.Equal(t, "ff0000", opts.AlternateColor.String())
}

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, DefaultOptions())
	header := spreadsheet.Style{FontBold: true, FontColor: "FFFFFF", Fill: "4472C4"}
	sh, err := w.NewSheet("Differences", []spreadsheet.Column{
		{Name: "Sheet", Header: header, Width: 15},
		{Name: "Value", Header: header, Width: 20},
	})
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.NoError(t, sh.AppendRow("Data", float64(i), nil))
	}
	require.NoError(t, sh.Close())
	require.NoError(t, w.Close())
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))

	_, err = w.NewSheet("again", columns(1))
	assert.Error(t, err)
}

func TestWriterColumns(t *testing.T) {
	w := NewWriter(&bytes.Buffer{}, Options{})
	_, err := w.NewSheet("none", nil)
	assert.Error(t, err)
	_, err = w.NewSheet("many", columns(1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1))
	assert.Error(t, err)
	_, err = w.NewSheet("bad color", []spreadsheet.Column{{Name: "x", Header: spreadsheet.Style{Fill: "blue"}}})
	assert.Error(t, err)
}
