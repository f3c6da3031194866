// Copyright 2020, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package ods writes OpenDocument spreadsheets.
package ods

import (
	"bytes"
	"database/sql/driver"
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"

	"github.com/UNO-SOFT/sheetdiff/spreadsheet"
	"github.com/klauspost/compress/zip"
	"github.com/valyala/quicktemplate"
)

const MimeType = "application/vnd.oasis.opendocument.spreadsheet"

// MaxRowCount is the number of maximum rows.
const MaxRowCount = 1_048_576

// cmPerChar converts a column width given in characters to centimeters.
const cmPerChar = 0.19

var _ = (spreadsheet.Writer)((*ODSWriter)(nil))

// ODSWriter collects the sheets in memory and writes the zipped document on Close.
//
// This writer allows concurrent writes to separate sheets.
type ODSWriter struct {
	w         io.Writer
	styles    map[spreadsheet.Style]string
	colStyles map[float64]string
	sheets    []*ODSSheet
	mu        sync.Mutex
}

type ODSSheet struct {
	Name    string
	columns []string
	buf     bytes.Buffer
	row     int64
	mu      sync.Mutex
}

// NewWriter returns a spreadsheet.Writer producing an .ods document into w.
func NewWriter(w io.Writer) (*ODSWriter, error) {
	if w == nil {
		return nil, fmt.Errorf("nil writer")
	}
	return &ODSWriter{w: w,
		styles:    make(map[spreadsheet.Style]string),
		colStyles: make(map[float64]string),
	}, nil
}

// NewSheet adds a sheet. Only the font and fill of the styles are kept,
// number formats are ignored.
func (ow *ODSWriter) NewSheet(name string, columns []spreadsheet.Column) (spreadsheet.Sheet, error) {
	ow.mu.Lock()
	defer ow.mu.Unlock()
	if ow.w == nil {
		return nil, fmt.Errorf("writer is closed")
	}
	for _, s := range ow.sheets {
		if s.Name == name {
			return nil, fmt.Errorf("sheet %q already exists", name)
		}
	}
	sh := &ODSSheet{Name: name, columns: make([]string, len(columns))}
	var hasHeader bool
	headerStyles := make([]string, len(columns))
	for i, c := range columns {
		if c.Width > 0 {
			nm, ok := ow.colStyles[c.Width]
			if !ok {
				nm = "co" + strconv.Itoa(len(ow.colStyles)+1)
				ow.colStyles[c.Width] = nm
			}
			sh.columns[i] = nm
		}
		headerStyles[i] = ow.cellStyle(c.Header)
		hasHeader = hasHeader || c.Name != ""
	}
	if hasHeader {
		qw := quicktemplate.AcquireWriter(&sh.buf)
		qw.N().S(`<table:table-row>`)
		for i, c := range columns {
			qw.N().S(`<table:table-cell`)
			if headerStyles[i] != "" {
				qw.N().S(` table:style-name="`)
				qw.N().S(headerStyles[i])
				qw.N().S(`"`)
			}
			qw.N().S(` office:value-type="string"><text:p>`)
			qw.E().S(c.Name)
			qw.N().S(`</text:p></table:table-cell>`)
		}
		qw.N().S("</table:table-row>\n")
		quicktemplate.ReleaseWriter(qw)
		sh.row++
	}
	ow.sheets = append(ow.sheets, sh)
	return sh, nil
}

func (ow *ODSWriter) cellStyle(style spreadsheet.Style) string {
	if !style.FontBold && style.FontColor == "" && style.Fill == "" {
		return ""
	}
	style.Format = ""
	nm, ok := ow.styles[style]
	if !ok {
		nm = "ce" + strconv.Itoa(len(ow.styles)+1)
		ow.styles[style] = nm
	}
	return nm
}

func (sh *ODSSheet) Close() error { return nil }

// AppendRow appends a row of values; nil and driver.Valuer returning nil are empty cells.
func (sh *ODSSheet) AppendRow(values ...any) error {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	if sh.row >= MaxRowCount {
		return spreadsheet.ErrTooManyRows
	}
	sh.row++
	qw := quicktemplate.AcquireWriter(&sh.buf)
	defer quicktemplate.ReleaseWriter(qw)
	qw.N().S(`<table:table-row>`)
	for _, v := range values {
		if vr, ok := v.(driver.Valuer); ok {
			if vv, err := vr.Value(); err == nil {
				v = vv
			}
		}
		writeCell(qw, v)
	}
	qw.N().S("</table:table-row>\n")
	return nil
}

func writeCell(qw *quicktemplate.Writer, v any) {
	text := func(s string) {
		qw.N().S(`<text:p>`)
		qw.E().S(s)
		qw.N().S(`</text:p></table:table-cell>`)
	}
	float := func(s string) {
		qw.N().S(`<table:table-cell office:value-type="float" office:value="`)
		qw.E().S(s)
		qw.N().S(`">`)
		text(s)
	}
	switch x := v.(type) {
	case nil:
		qw.N().S(`<table:table-cell/>`)
	case float64:
		float(strconv.FormatFloat(x, 'f', -1, 64))
	case int:
		float(strconv.Itoa(x))
	case int64:
		float(strconv.FormatInt(x, 10))
	case spreadsheet.Number:
		float(string(x))
	case bool:
		qw.N().S(`<table:table-cell office:value-type="boolean" office:boolean-value="`)
		qw.N().S(strconv.FormatBool(x))
		qw.N().S(`">`)
		text(spreadsheet.FormatValue(x))
	case time.Time:
		if x.IsZero() {
			qw.N().S(`<table:table-cell/>`)
			return
		}
		qw.N().S(`<table:table-cell office:value-type="date" office:date-value="`)
		qw.N().S(x.Format("2006-01-02T15:04:05"))
		qw.N().S(`">`)
		text(spreadsheet.FormatValue(x))
	default:
		qw.N().S(`<table:table-cell office:value-type="string">`)
		text(spreadsheet.FormatValue(x))
	}
}

// Close writes the document. The underlying writer is not closed.
func (ow *ODSWriter) Close() error {
	if ow == nil {
		return nil
	}
	ow.mu.Lock()
	defer ow.mu.Unlock()
	w := ow.w
	ow.w = nil
	if w == nil {
		return nil
	}
	zw := zip.NewWriter(w)
	// the mimetype must be the first, uncompressed entry
	mw, err := zw.CreateHeader(&zip.FileHeader{Name: "mimetype", Method: zip.Store})
	if err != nil {
		return err
	}
	if _, err = io.WriteString(mw, MimeType); err != nil {
		return err
	}
	if mw, err = zw.Create("META-INF/manifest.xml"); err != nil {
		return err
	}
	if _, err = io.WriteString(mw, manifestXML); err != nil {
		return err
	}
	if mw, err = zw.Create("content.xml"); err != nil {
		return err
	}
	if err = ow.writeContent(mw); err != nil {
		return err
	}
	return zw.Close()
}

const manifestXML = `<?xml version="1.0" encoding="UTF-8"?>
<manifest:manifest xmlns:manifest="urn:oasis:names:tc:opendocument:xmlns:manifest:1.0" manifest:version="1.2">
 <manifest:file-entry manifest:full-path="/" manifest:version="1.2" manifest:media-type="` + MimeType + `"/>
 <manifest:file-entry manifest:full-path="content.xml" manifest:media-type="text/xml"/>
</manifest:manifest>
`

// errWriter remembers the first write error, as quicktemplate drops them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

func (ow *ODSWriter) writeContent(w io.Writer) error {
	ew := &errWriter{w: w}
	qw := quicktemplate.AcquireWriter(ew)
	defer quicktemplate.ReleaseWriter(qw)
	qw.N().S(`<?xml version="1.0" encoding="UTF-8"?>
<office:document-content xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0" xmlns:style="urn:oasis:names:tc:opendocument:xmlns:style:1.0" xmlns:text="urn:oasis:names:tc:opendocument:xmlns:text:1.0" xmlns:table="urn:oasis:names:tc:opendocument:xmlns:table:1.0" xmlns:fo="urn:oasis:names:tc:opendocument:xmlns:xsl-fo-compatible:1.0" office:version="1.2">
<office:automatic-styles>
`)
	for width, nm := range ow.colStyles {
		qw.N().S(`<style:style style:name="`)
		qw.N().S(nm)
		qw.N().S(`" style:family="table-column"><style:table-column-properties style:column-width="`)
		qw.N().FPrec(width*cmPerChar, 2)
		qw.N().S("cm\"/></style:style>\n")
	}
	for st, nm := range ow.styles {
		qw.N().S(`<style:style style:name="`)
		qw.N().S(nm)
		qw.N().S(`" style:family="table-cell">`)
		if st.Fill != "" {
			qw.N().S(`<style:table-cell-properties fo:background-color="#`)
			qw.E().S(st.Fill)
			qw.N().S(`"/>`)
		}
		if st.FontBold || st.FontColor != "" {
			qw.N().S(`<style:text-properties`)
			if st.FontBold {
				qw.N().S(` fo:font-weight="bold"`)
			}
			if st.FontColor != "" {
				qw.N().S(` fo:color="#`)
				qw.E().S(st.FontColor)
				qw.N().S(`"`)
			}
			qw.N().S(`/>`)
		}
		qw.N().S("</style:style>\n")
	}
	qw.N().S("</office:automatic-styles>\n<office:body><office:spreadsheet>\n")
	for _, sh := range ow.sheets {
		sh.mu.Lock()
		qw.N().S(`<table:table table:name="`)
		qw.E().S(sh.Name)
		qw.N().S("\">\n")
		for _, nm := range sh.columns {
			qw.N().S(`<table:table-column`)
			if nm != "" {
				qw.N().S(` table:style-name="`)
				qw.N().S(nm)
				qw.N().S(`"`)
			}
			qw.N().S(`/>`)
		}
		qw.N().Z(sh.buf.Bytes())
		qw.N().S("</table:table>\n")
		sh.mu.Unlock()
	}
	qw.N().S("</office:spreadsheet></office:body></office:document-content>\n")
	return ew.err
}
