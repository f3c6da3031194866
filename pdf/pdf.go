// Copyright 2021, 2026 Tamas Gulacsi. All rights reserved.

// Package pdf writes spreadsheet tables as PDF documents.
package pdf

import (
	"encoding/hex"
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/UNO-SOFT/sheetdiff/spreadsheet"
)

// GridSize is the number of grid units of a maroto row.
const GridSize = 12

// Options of the PDF output.
type Options struct {
	// AlternateColor is the background of every second data row.
	AlternateColor Color
	// FontSize of the data rows, the header is 1.375 times bigger.
	FontSize float64
	// Landscape orientation instead of portrait.
	Landscape bool
}

// DefaultOptions returns the default PDF options.
func DefaultOptions() Options {
	return Options{
		AlternateColor: Color{Color: props.Color{Red: 230, Green: 230, Blue: 230}},
		FontSize:       8,
	}
}

var _ = (spreadsheet.Writer)((*PDFWriter)(nil))

// PDFWriter renders every sheet as a table, one after the other.
//
// This writer does not allow concurrent writes to separate sheets:
// rows are added to the document in the order of the AppendRow calls.
type PDFWriter struct {
	w    io.Writer
	m    core.Maroto
	opts Options
	mu   sync.Mutex
}

type PDFSheet struct {
	w     *PDFWriter
	Name  string
	sizes []int
	row   int
}

// NewWriter returns a spreadsheet.Writer writing a PDF into w on Close.
func NewWriter(w io.Writer, opts Options) *PDFWriter {
	if opts.FontSize <= 0 {
		opts.FontSize = 8
	}
	o := orientation.Vertical
	if opts.Landscape {
		o = orientation.Horizontal
	}
	cfg := config.NewBuilder().WithOrientation(o).Build()
	return &PDFWriter{w: w, m: maroto.New(cfg), opts: opts}
}

// NewSheet starts a new table with the sheet name as title and the column names as header.
func (pw *PDFWriter) NewSheet(name string, columns []spreadsheet.Column) (spreadsheet.Sheet, error) {
	pw.mu.Lock()
	defer pw.mu.Unlock()
	if pw.m == nil {
		return nil, fmt.Errorf("writer is closed")
	}
	if len(columns) == 0 || len(columns) > GridSize {
		return nil, fmt.Errorf("%d columns: must be between 1 and %d", len(columns), GridSize)
	}
	sh := &PDFSheet{w: pw, Name: name, sizes: GridSizes(columns)}
	fs := pw.opts.FontSize
	pw.m.AddRows(text.NewRow(fs*0.8, name, props.Text{Style: fontstyle.Bold, Size: fs * 1.5}))

	var hasHeader bool
	cols := make([]core.Col, len(columns))
	var bg *props.Color
	for i, c := range columns {
		hasHeader = hasHeader || c.Name != ""
		tp := props.Text{Size: fs * 1.375, Align: align.Center, Top: 1}
		if c.Header.FontBold {
			tp.Style = fontstyle.Bold
		}
		if c.Header.FontColor != "" {
			var col Color
			if err := col.Parse(c.Header.FontColor); err != nil {
				return nil, fmt.Errorf("header font color of %q: %w", c.Name, err)
			}
			tp.Color = &col.Color
		}
		if bg == nil && c.Header.Fill != "" {
			var col Color
			if err := col.Parse(c.Header.Fill); err != nil {
				return nil, fmt.Errorf("header fill of %q: %w", c.Name, err)
			}
			bg = &col.Color
		}
		cols[i] = text.NewCol(sh.sizes[i], c.Name, tp)
	}
	if hasHeader {
		r := row.New(fs * 1.2).Add(cols...)
		if bg != nil {
			r = r.WithStyle(&props.Cell{BackgroundColor: bg})
		}
		pw.m.AddRows(r)
	}
	return sh, nil
}

func (sh *PDFSheet) Close() error { return nil }

// AppendRow adds a row, values beyond the number of columns are dropped.
func (sh *PDFSheet) AppendRow(values ...any) error {
	pw := sh.w
	pw.mu.Lock()
	defer pw.mu.Unlock()
	if pw.m == nil {
		return fmt.Errorf("writer is closed")
	}
	fs := pw.opts.FontSize
	cols := make([]core.Col, len(sh.sizes))
	for i, size := range sh.sizes {
		var s string
		if i < len(values) {
			s = spreadsheet.FormatValue(values[i])
		}
		cols[i] = text.NewCol(size, s, props.Text{Size: fs, Align: align.Left, Left: 0.5, Top: 0.5})
	}
	r := row.New(fs * 0.6).Add(cols...)
	if sh.row%2 == 1 {
		alt := pw.opts.AlternateColor.Color
		r = r.WithStyle(&props.Cell{BackgroundColor: &alt})
	}
	sh.row++
	pw.m.AddRows(r)
	return nil
}

// Close renders the document into the underlying writer, which is not closed.
func (pw *PDFWriter) Close() error {
	if pw == nil {
		return nil
	}
	pw.mu.Lock()
	defer pw.mu.Unlock()
	m, w := pw.m, pw.w
	pw.m, pw.w = nil, nil
	if m == nil || w == nil {
		return nil
	}
	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("generate pdf: %w", err)
	}
	_, err = w.Write(doc.GetBytes())
	return err
}

// GridSizes distributes the GridSize units among the columns
// proportionally to their widths (equally when no width is given),
// each column getting at least one unit.
func GridSizes(columns []spreadsheet.Column) []int {
	sizes := make([]int, len(columns))
	if len(columns) == 0 {
		return sizes
	}
	widths := make([]float64, len(columns))
	var total float64
	for i, c := range columns {
		widths[i] = c.Width
		if widths[i] <= 0 {
			widths[i] = float64(max(len(c.Name), 1))
		}
		total += widths[i]
	}
	sum := 0
	for i, w := range widths {
		sizes[i] = max(1, int(math.Round(w/total*GridSize)))
		sum += sizes[i]
	}
	for sum > GridSize {
		j := -1
		for i, s := range sizes {
			if s > 1 && (j < 0 || s > sizes[j]) {
				j = i
			}
		}
		if j < 0 {
			break
		}
		sizes[j]--
		sum--
	}
	for i := 0; sum < GridSize; i = (i + 1) % len(sizes) {
		sizes[i]++
		sum++
	}
	return sizes
}

// Color is an RRGGBB color usable as a flag.Value.
type Color struct {
	props.Color
}

func (c *Color) String() string {
	return fmt.Sprintf("%02x%02x%02x", c.Red, c.Green, c.Blue)
}

func (c *Color) Parse(s string) error {
	b, err := hex.DecodeString(s)
	if err != nil {
		return err
	}
	if len(b) != 3 {
		return fmt.Errorf("%q: not an RRGGBB color", s)
	}
	c.Red, c.Green, c.Blue = int(b[0]), int(b[1]), int(b[2])
	return nil
}

func (c *Color) Set(s string) error { return c.Parse(s) }
