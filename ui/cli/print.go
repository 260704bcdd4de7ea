// Copyright (c) 2026 Keymaster Team
// kvbrowse - read-only key-value database browser
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"io"

	"github.com/toeirei/kvbrowse/internal/browser"
)

// printPages walks the controller from the first to the last page and
// writes each frame as plain text. A page that cannot be read stops the walk
// and its error is returned.
func printPages(w io.Writer, src browser.PageSource, pageSize int) error {
	var writeErr, readErr error
	ctrl, err := browser.New(src, pageSize, func(fr browser.Frame) {
		if writeErr != nil {
			return
		}
		if fr.Err != nil {
			readErr = fr.Err
		}
		writeErr = writeFrame(w, fr)
	})
	if err != nil {
		src.Close()
		return err
	}
	defer ctrl.Close()

	ctrl.Start()
	for readErr == nil && writeErr == nil && ctrl.State().HasNext() {
		ctrl.Handle(browser.NextPage)
	}
	ctrl.Handle(browser.Quit)

	if readErr != nil {
		return readErr
	}
	return writeErr
}

func writeFrame(w io.Writer, fr browser.Frame) error {
	if _, err := fmt.Fprintln(w, browser.StatusLine(fr)); err != nil {
		return err
	}
	if fr.Err != nil {
		_, err := fmt.Fprintln(w, browser.ErrorRow(fr.Err))
		return err
	}
	for _, r := range fr.Page.Rows {
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\n", r.Ordinal, r.Key, browser.RowValue(r)); err != nil {
			return err
		}
	}
	return nil
}
