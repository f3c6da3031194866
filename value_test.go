// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package sheetdiff

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValueEqual(t *testing.T) {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for _, tc := range []struct {
		name string
		a, b Value
		want bool
	}{
		{"absent", Absent, Absent, true},
		{"absent vs empty text", Absent, TextValue(""), false},
		{"same text", TextValue("x"), TextValue("x"), true},
		{"text case", TextValue("x"), TextValue("X"), false},
		{"same number", NumberValue(10), NumberValue(10.0), true},
		{"number vs text", NumberValue(5), TextValue("5"), false},
		{"bool vs number", BoolValue(true), NumberValue(1), false},
		{"bools", BoolValue(false), BoolValue(false), true},
		{"times", TimeValue(day), TimeValue(day.In(time.FixedZone("X", 3600))), true},
		{"time vs text", TimeValue(day), TextValue("2024-03-01"), false},
		{"error vs its text", ErrorValue("#DIV/0!"), TextValue("#DIV/0!"), true},
		{"different errors", ErrorValue("#N/A"), ErrorValue("#REF!"), false},
		{"error vs number", ErrorValue("#N/A"), NumberValue(0), false},
		{"other", OtherValue([]int{1}), OtherValue([]int{1}), true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Equal(tc.b))
			assert.Equal(t, tc.want, tc.b.Equal(tc.a), "symmetry")
		})
	}
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "", Absent.String())
	assert.Equal(t, "(empty)", Absent.Quote())
	assert.Equal(t, `"a b"`, TextValue("a b").Quote())
	assert.Equal(t, "10", NumberValue(10).Quote())
	assert.Equal(t, "1.5", NumberValue(1.5).String())
	assert.Equal(t, "TRUE", BoolValue(true).String())
	assert.Equal(t, "#N/A", ErrorValue("#N/A").Quote())
	assert.Equal(t, "2024-03-01", TimeValue(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)).String())
	assert.Equal(t, "2024-03-01 12:30:00", TimeValue(time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)).String())
}

func TestValueValuer(t *testing.T) {
	v, err := Absent.Value()
	assert.NoError(t, err)
	assert.Nil(t, v)
	v, _ = NumberValue(2).Value()
	assert.Equal(t, float64(2), v)
	v, _ = ErrorValue("#REF!").Value()
	assert.Equal(t, "#REF!", v)
	v, _ = BoolValue(true).Value()
	assert.Equal(t, true, v)
}

func TestClassify(t *testing.T) {
	for _, tc := range []struct {
		v    Value
		want ErrorCode
		ok   bool
	}{
		{TextValue("#DIV/0!"), CodeDiv0, true},
		{ErrorValue("#N/A"), CodeNA, true},
		{TextValue(" #REF! "), CodeRef, true},
		{TextValue("#REF!x"), "", false},
		{TextValue("#ref!"), "", false},
		{NumberValue(0), "", false},
		{Absent, "", false},
	} {
		got, ok := Classify(tc.v)
		assert.Equal(t, tc.ok, ok, tc.v.Quote())
		assert.Equal(t, tc.want, got, tc.v.Quote())
	}
	assert.Len(t, ErrorCodes(), 7)
}

func TestErrorName(t *testing.T) {
	assert.Equal(t, "#DIV/0!", errorName(TextValue("#DIV/0!"), NumberValue(0)))
	assert.Equal(t, "#N/A", errorName(NumberValue(1), ErrorValue("#N/A")))
	assert.Equal(t, "#NAME?", errorName(TextValue("#NAME?"), TextValue("#NUM!")))
	assert.Equal(t, ValueMismatch, errorName(NumberValue(10), NumberValue(20)))
	assert.Equal(t, ValueMismatch, errorName(Absent, TextValue("x")))
}
