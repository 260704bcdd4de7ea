// Copyright (c) 2026 Keymaster Team
// kvbrowse - read-only key-value database browser
// This source code is licensed under the MIT license found in the LICENSE file.

// Package decode turns raw key and value bytes into display forms.
// Every function here is total: any byte sequence, including nil, yields a
// result and nothing returns an error.
package decode

import (
	"encoding/hex"
	"unicode"
	"unicode/utf8"
)

// Kind is the best-effort classification of a value.
type Kind int

const (
	// String values are valid UTF-8 without control characters.
	String Kind = iota
	// IntegerOrBytes values are not printable text but have the width of a
	// fixed-size integer (1, 2, 4 or 8 bytes).
	IntegerOrBytes
	// Bytes is the fallback for everything else.
	Bytes
)

// Label returns the short column label for the kind.
func (k Kind) Label() string {
	switch k {
	case String:
		return "str"
	case IntegerOrBytes:
		return "int/bytes"
	default:
		return "bytes"
	}
}

func (k Kind) String() string { return k.Label() }

// Classification is the kind of a value plus its length in bytes.
type Classification struct {
	Kind   Kind
	Length int
}

// IsPrintable reports whether b is valid UTF-8 and none of its runes is a
// control character. Control covers C0 (0x00-0x1F), DEL (0x7F) and C1
// (0x80-0x9F); every other code point counts as printable.
func IsPrintable(b []byte) bool {
	if !utf8.Valid(b) {
		return false
	}
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if unicode.IsControl(r) {
			return false
		}
		b = b[size:]
	}
	return true
}

// isIntegerWidth reports whether n is the size of a fixed-width integer.
func isIntegerWidth(n int) bool {
	switch n {
	case 1, 2, 4, 8:
		return true
	}
	return false
}

// RenderKey returns the key as text when it is printable UTF-8, otherwise as
// lowercase hex without separators.
func RenderKey(key []byte) string {
	if IsPrintable(key) {
		return string(key)
	}
	return hex.EncodeToString(key)
}

// ClassifyValue classifies a value. The printable check runs first, so an
// empty value is a String of length 0.
func ClassifyValue(value []byte) Classification {
	c := Classification{Length: len(value)}
	switch {
	case IsPrintable(value):
		c.Kind = String
	case isIntegerWidth(len(value)):
		c.Kind = IntegerOrBytes
	default:
		c.Kind = Bytes
	}
	return c
}
