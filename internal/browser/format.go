// Copyright (c) 2026 Keymaster Team
// kvbrowse - read-only key-value database browser
// This source code is licensed under the MIT license found in the LICENSE file.

package browser

import (
	"github.com/toeirei/kvbrowse/internal/decode"
	"github.com/toeirei/kvbrowse/internal/i18n"
	"github.com/toeirei/kvbrowse/internal/pagestore"
)

// StatusLine renders "page P of N | keys a-b of K" for a frame. An error
// frame has no rows, so only the page part is shown.
func StatusLine(fr Frame) string {
	if fr.Err != nil {
		return i18n.T("browser.status", fr.PageNumber, fr.PageTotal)
	}
	return i18n.T("browser.status", fr.PageNumber, fr.PageTotal) + " | " +
		i18n.T("browser.range", fr.Page.FirstOrdinal(), fr.Page.LastOrdinal(), fr.Page.KeyCount)
}

// ValueInfo renders a classification as "label (n bytes)".
func ValueInfo(c decode.Classification) string {
	return i18n.T("browser.value_info", c.Kind.Label(), c.Length)
}

// RowValue renders the value column of a row, or a placeholder when the
// value could not be read.
func RowValue(r pagestore.Row) string {
	if r.ValueErr != nil {
		return i18n.T("browser.value_error", r.ValueErr)
	}
	return ValueInfo(r.Value)
}

// ErrorRow renders the inline row shown in place of a page that failed to load.
func ErrorRow(err error) string {
	return i18n.T("browser.read_error", err)
}
