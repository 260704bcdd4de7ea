// Copyright (c) 2026 Keymaster Team
// kvbrowse - read-only key-value database browser
// This source code is licensed under the MIT license found in the LICENSE file.

package pagestore

import (
	"errors"
	"fmt"
)

// ErrInvalidPageSize is returned for a page size below 1.
var ErrInvalidPageSize = errors.New("page size must be a positive integer")

// OpenError is returned when a database cannot be opened read-only.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("cannot open database %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// ReadError is returned when the storage engine fails while reading a page.
type ReadError struct {
	PageIndex int
	Err       error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("cannot read page %d: %v", e.PageIndex+1, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }
