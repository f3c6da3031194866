// Copyright 2020, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package spreadsheet

import (
	"bufio"
	"database/sql/driver"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// EncName is the default charset of CSV input and output.
var EncName = "utf-8"

func GetEncoding(encName string) (encoding.Encoding, error) {
	encName = strings.ToLower(encName)
	if encName == "" || encName == "utf-8" || encName == "utf8" {
		return nil, nil
	}
	enc, err := htmlindex.Get(encName)
	if err != nil {
		err = fmt.Errorf("%q: %w", encName, err)
	}
	return enc, err
}

type csvReadCloser struct {
	*csv.Reader
	io.Closer
}

// OpenCsv opens fn (stdin for "" or "-") for reading as CSV, decoding
// it from encName and sniffing the field separator from the first KiB.
func OpenCsv(fn, encName string) (csvReadCloser, error) {
	var enc encoding.Encoding
	if encName != "" {
		var err error
		if enc, err = GetEncoding(encName); err != nil {
			return csvReadCloser{}, err
		}
	}
	fh := os.Stdin
	if !(fn == "" || fn == "-") {
		var err error
		if fh, err = os.Open(fn); err != nil {
			return csvReadCloser{}, err
		}
	}
	r := io.ReadCloser(fh)
	if enc != nil {
		r = struct {
			io.Reader
			io.Closer
		}{enc.NewDecoder().Reader(r), r}
	}
	br := bufio.NewReaderSize(r, 1<<20)
	b, err := br.Peek(1024)
	if err != nil && len(b) == 0 {
		if err == io.EOF {
			cr := csv.NewReader(br)
			return csvReadCloser{cr, r}, nil
		}
		r.Close()
		return csvReadCloser{}, err
	}
	cr := csv.NewReader(br)
	cr.Comma = sniffSeparator(b)
	cr.FieldsPerRecord = -1
	return csvReadCloser{cr, r}, nil
}

// sniffSeparator returns the first of ",;\t|" in the first record of b,
// outside of quoted fields; ',' if there is none.
func sniffSeparator(b []byte) rune {
	var inQuote bool
	for _, r := range string(b) {
		switch {
		case r == '"':
			inQuote = !inQuote
		case inQuote:
		case r == '\n' || r == '\r':
			return ','
		case strings.ContainsRune(",;\t|", r):
			return r
		}
	}
	return ','
}

var _ = (Writer)((*CSVWriter)(nil))

// CSVWriter writes a single sheet as comma separated values.
type CSVWriter struct {
	enc   io.Closer
	cw    *csv.Writer
	sheet string
	mu    sync.Mutex
}

type csvSheet struct {
	*CSVWriter
}

// NewCSVWriter returns a Writer producing CSV encoded in encName
// (UTF-8 when empty).
//
// Only one sheet can be created, its header is the first record.
func NewCSVWriter(w io.Writer, encName string) (*CSVWriter, error) {
	enc, err := GetEncoding(encName)
	if err != nil {
		return nil, err
	}
	var ec io.Closer
	if enc != nil {
		tw := transform.NewWriter(w, enc.NewEncoder())
		w, ec = tw, tw
	}
	return &CSVWriter{enc: ec, cw: csv.NewWriter(w)}, nil
}

func (cw *CSVWriter) NewSheet(name string, columns []Column) (Sheet, error) {
	cw.mu.Lock()
	defer cw.mu.Unlock()
	if cw.sheet != "" {
		return nil, fmt.Errorf("%q: %w", name, ErrSingleSheet)
	}
	cw.sheet = name
	var hasHeader bool
	header := make([]string, len(columns))
	for i, c := range columns {
		header[i] = c.Name
		hasHeader = hasHeader || c.Name != ""
	}
	if hasHeader {
		if err := cw.cw.Write(header); err != nil {
			return nil, err
		}
	}
	return csvSheet{cw}, nil
}

func (cs csvSheet) AppendRow(values ...any) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	rec := make([]string, len(values))
	for i, v := range values {
		rec[i] = FormatValue(v)
	}
	return cs.cw.Write(rec)
}

func (cs csvSheet) Close() error {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.cw.Flush()
	return cs.cw.Error()
}

func (cw *CSVWriter) Close() error {
	if cw == nil {
		return nil
	}
	cw.mu.Lock()
	defer cw.mu.Unlock()
	cw.cw.Flush()
	if err := cw.cw.Error(); err != nil {
		return err
	}
	if cw.enc != nil {
		// flushes the charset encoder, the underlying writer stays open
		return cw.enc.Close()
	}
	return nil
}

// FormatValue renders v as the text a CSV field or PDF cell shows:
// nil is empty, times are ISO dates, booleans TRUE/FALSE.
func FormatValue(v any) string {
	if v == nil {
		return ""
	}
	if vr, ok := v.(driver.Valuer); ok {
		vv, err := vr.Value()
		if err != nil {
			return ""
		}
		if v = vv; v == nil {
			return ""
		}
	}
	switch x := v.(type) {
	case string:
		return x
	case Number:
		return string(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		if x {
			return "TRUE"
		}
		return "FALSE"
	case time.Time:
		if x.IsZero() {
			return ""
		}
		if x.Hour() == 0 && x.Minute() == 0 && x.Second() == 0 && x.Nanosecond() == 0 {
			return x.Format("2006-01-02")
		}
		return x.Format("2006-01-02 15:04:05")
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}
