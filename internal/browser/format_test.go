// Copyright (c) 2026 Keymaster Team
// kvbrowse - read-only key-value database browser
// This source code is licensed under the MIT license found in the LICENSE file.

package browser

import (
	"errors"
	"testing"

	"github.com/toeirei/kvbrowse/internal/decode"
	"github.com/toeirei/kvbrowse/internal/i18n"
	"github.com/toeirei/kvbrowse/internal/pagestore"
)

func TestStatusLine(t *testing.T) {
	i18n.Init("en")
	fr := Frame{
		Page: pagestore.Page{
			Index:     2,
			Rows:      []pagestore.Row{{Ordinal: 61}, {Ordinal: 65}},
			KeyCount:  65,
			PageCount: 3,
		},
		PageNumber: 3,
		PageTotal:  3,
	}
	if got := StatusLine(fr); got != "page 3 of 3 | keys 61-65 of 65" {
		t.Fatalf("unexpected status line: %q", got)
	}

	empty := Frame{Page: pagestore.Page{PageCount: 1}, PageNumber: 1, PageTotal: 1}
	if got := StatusLine(empty); got != "page 1 of 1 | keys 0-0 of 0" {
		t.Fatalf("unexpected empty status line: %q", got)
	}
}

func TestValueInfoAndErrorRow(t *testing.T) {
	i18n.Init("en")
	if got := ValueInfo(decode.ClassifyValue([]byte("hello"))); got != "str (5 bytes)" {
		t.Fatalf("unexpected value info: %q", got)
	}
	if got := ValueInfo(decode.Classification{Kind: decode.IntegerOrBytes, Length: 4}); got != "int/bytes (4 bytes)" {
		t.Fatalf("unexpected value info: %q", got)
	}
	if got := ErrorRow(errors.New("boom")); got != "error: boom" {
		t.Fatalf("unexpected error row: %q", got)
	}
}

func TestStatusLine_ErrorFrameOmitsRange(t *testing.T) {
	i18n.Init("en")
	fr := Frame{
		Page:       pagestore.Page{Index: 0, KeyCount: 65, PageCount: 3},
		PageNumber: 1,
		PageTotal:  3,
		Err:        errors.New("corrupt block"),
	}
	if got := StatusLine(fr); got != "page 1 of 3" {
		t.Fatalf("unexpected error status line: %q", got)
	}
}

func TestRowValue(t *testing.T) {
	i18n.Init("en")
	ok := pagestore.Row{Ordinal: 1, Key: "a", Value: decode.Classification{Kind: decode.Bytes, Length: 3}}
	if got := RowValue(ok); got != "bytes (3 bytes)" {
		t.Fatalf("unexpected row value: %q", got)
	}
	bad := pagestore.Row{Ordinal: 2, Key: "b", ValueErr: errors.New("vlog missing")}
	if got := RowValue(bad); got != "unreadable (vlog missing)" {
		t.Fatalf("unexpected placeholder: %q", got)
	}
}
