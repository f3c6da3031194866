// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package sheetdiff

import (
	"database/sql/driver"
	"fmt"
	"reflect"
	"strconv"
	"time"
)

// Kind is the type of a cell value.
type Kind uint8

const (
	KindAbsent Kind = iota
	KindText
	KindNumber
	KindBool
	KindDateTime
	KindError
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindDateTime:
		return "datetime"
	case KindError:
		return "error"
	case KindOther:
		return "other"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a computed cell value. The zero Value is absent (empty cell).
type Value struct {
	other any
	t     time.Time
	str   string
	num   float64
	kind  Kind
	b     bool
}

// Absent is the value of an empty cell.
var Absent = Value{}

func TextValue(s string) Value     { return Value{kind: KindText, str: s} }
func NumberValue(f float64) Value  { return Value{kind: KindNumber, num: f} }
func BoolValue(b bool) Value       { return Value{kind: KindBool, b: b} }
func TimeValue(t time.Time) Value  { return Value{kind: KindDateTime, t: t} }
func ErrorValue(code string) Value { return Value{kind: KindError, str: code} }
func OtherValue(v any) Value {
	if v == nil {
		return Absent
	}
	return Value{kind: KindOther, other: v}
}

func (v Value) Kind() Kind      { return v.kind }
func (v Value) IsAbsent() bool  { return v.kind == KindAbsent }
func (v Value) Float() float64  { return v.num }
func (v Value) Bool() bool      { return v.b }
func (v Value) Time() time.Time { return v.t }

// String returns the canonical display form of the value,
// the empty string for an absent value.
func (v Value) String() string {
	switch v.kind {
	case KindText, KindError:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		if v.b {
			return "TRUE"
		}
		return "FALSE"
	case KindDateTime:
		if v.t.Hour() == 0 && v.t.Minute() == 0 && v.t.Second() == 0 && v.t.Nanosecond() == 0 {
			return v.t.Format("2006-01-02")
		}
		return v.t.Format("2006-01-02 15:04:05")
	case KindOther:
		return fmt.Sprint(v.other)
	}
	return ""
}

// Quote returns the value in a form which keeps the type visible:
// texts are quoted, absent is (empty).
func (v Value) Quote() string {
	switch v.kind {
	case KindAbsent:
		return "(empty)"
	case KindText:
		return strconv.Quote(v.str)
	}
	return v.String()
}

// Equal reports whether the two values are the same.
//
// Values of different kinds are never equal (number 5 is not text "5"),
// except that an error value equals the text of the same error marker.
func (v Value) Equal(o Value) bool {
	if v.kind == KindError || o.kind == KindError {
		return (v.kind == KindError || v.kind == KindText) &&
			(o.kind == KindError || o.kind == KindText) &&
			v.str == o.str
	}
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindAbsent:
		return true
	case KindText:
		return v.str == o.str
	case KindNumber:
		return v.num == o.num
	case KindBool:
		return v.b == o.b
	case KindDateTime:
		return v.t.Equal(o.t)
	default:
		return reflect.DeepEqual(v.other, o.other)
	}
}

var _ driver.Valuer = Value{}

// Value implements driver.Valuer, so the spreadsheet writers
// store the native type: nil, string, float64, bool or time.Time.
func (v Value) Value() (driver.Value, error) {
	switch v.kind {
	case KindAbsent:
		return nil, nil
	case KindText, KindError:
		return v.str, nil
	case KindNumber:
		return v.num, nil
	case KindBool:
		return v.b, nil
	case KindDateTime:
		return v.t, nil
	}
	return v.String(), nil
}
