// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package sheetdiff

import "strings"

// ErrorCode is a spreadsheet error marker a computed cell may hold.
type ErrorCode string

const (
	CodeDiv0  ErrorCode = "#DIV/0!"
	CodeNA    ErrorCode = "#N/A"
	CodeName  ErrorCode = "#NAME?"
	CodeNull  ErrorCode = "#NULL!"
	CodeNum   ErrorCode = "#NUM!"
	CodeRef   ErrorCode = "#REF!"
	CodeValue ErrorCode = "#VALUE!"
)

// ValueMismatch is the error name of a difference where neither side
// holds an error code.
const ValueMismatch = "Value Mismatch"

var errorCodes = [...]ErrorCode{CodeDiv0, CodeNA, CodeName, CodeNull, CodeNum, CodeRef, CodeValue}

// ErrorCodes returns the recognized error markers.
func ErrorCodes() []ErrorCode { return append([]ErrorCode(nil), errorCodes[:]...) }

// Classify returns the error code the value's display form is,
// after trimming surrounding white space. Matching is exact and case sensitive.
func Classify(v Value) (ErrorCode, bool) {
	if v.IsAbsent() {
		return "", false
	}
	s := strings.TrimSpace(v.String())
	for _, c := range errorCodes {
		if s == string(c) {
			return c, true
		}
	}
	return "", false
}

// errorName is the first recognized error code of v1 and v2,
// or ValueMismatch.
func errorName(v1, v2 Value) string {
	if c, ok := Classify(v1); ok {
		return string(c)
	}
	if c, ok := Classify(v2); ok {
		return string(c)
	}
	return ValueMismatch
}
