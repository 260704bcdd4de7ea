// Copyright (c) 2026 Keymaster Team
// kvbrowse - read-only key-value database browser
// This source code is licensed under the MIT license found in the LICENSE file.

// Package pagestore slices the ordered key space of a database into
// fixed-size pages of decoded rows. The key count is computed once when the
// store is opened; the database is never written to.
package pagestore

import (
	"fmt"
	"os"

	"github.com/toeirei/kvbrowse/internal/decode"
	"github.com/toeirei/kvbrowse/internal/engine"
	"github.com/toeirei/kvbrowse/internal/logging"
)

// Row is one decoded entry of a page.
type Row struct {
	// Ordinal is the 1-based position of the key in the whole key space.
	Ordinal int
	Key     string
	Value   decode.Classification

	// ValueErr is set when the engine could not read this row's value.
	// Value is then the zero Classification.
	ValueErr error
}

// Page is a bounded run of rows plus the totals needed for a status line.
type Page struct {
	Index     int
	Rows      []Row
	KeyCount  int
	PageCount int
}

// FirstOrdinal returns the ordinal of the first row, or 0 for an empty page.
func (p Page) FirstOrdinal() int {
	if len(p.Rows) == 0 {
		return 0
	}
	return p.Rows[0].Ordinal
}

// LastOrdinal returns the ordinal of the last row, or 0 for an empty page.
func (p Page) LastOrdinal() int {
	if len(p.Rows) == 0 {
		return 0
	}
	return p.Rows[len(p.Rows)-1].Ordinal
}

// Store is a read-only paged view over a storage engine.
type Store struct {
	eng      engine.Engine
	keyCount int
	closed   bool
}

// Open opens the database directory at path read-only with the given engine
// kind and counts its keys. Any failure is an *OpenError and leaves nothing
// open.
func Open(path string, kind engine.Kind) (*Store, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	if !info.IsDir() {
		return nil, &OpenError{Path: path, Err: fmt.Errorf("%w: %s is not a directory", engine.ErrNotDatabase, path)}
	}

	eng, err := engine.Open(path, kind)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	s, err := New(eng)
	if err != nil {
		eng.Close()
		return nil, &OpenError{Path: path, Err: err}
	}
	logging.Infof("opened %s with %d keys", path, s.keyCount)
	return s, nil
}

// New wraps an already open engine and counts its keys.
func New(eng engine.Engine) (*Store, error) {
	n, err := eng.Count()
	if err != nil {
		return nil, fmt.Errorf("counting keys: %w", err)
	}
	return &Store{eng: eng, keyCount: n}, nil
}

// KeyCount returns the number of keys counted at open.
func (s *Store) KeyCount() int { return s.keyCount }

// PageCount returns ceil(keyCount/pageSize), but at least 1.
func PageCount(keyCount, pageSize int) int {
	if pageSize < 1 || keyCount <= 0 {
		return 1
	}
	n := keyCount / pageSize
	if keyCount%pageSize != 0 {
		n++
	}
	return n
}

// PageCount returns the number of pages at the given page size.
func (s *Store) PageCount(pageSize int) int {
	return PageCount(s.keyCount, pageSize)
}

// GetPage reads page pageIndex. Callers clamp pageIndex to [0, PageCount);
// a page past the end comes back empty. The last page may be shorter than
// pageSize and is never padded. Engine failures are returned as *ReadError.
func (s *Store) GetPage(pageIndex, pageSize int) (Page, error) {
	if pageSize < 1 {
		return Page{}, ErrInvalidPageSize
	}
	if pageIndex < 0 {
		return Page{}, fmt.Errorf("page index %d out of range", pageIndex)
	}
	if s.closed {
		return Page{}, &ReadError{PageIndex: pageIndex, Err: engine.ErrClosed}
	}

	pages := s.PageCount(pageSize)
	if pageIndex >= pages {
		return Page{Index: pageIndex, KeyCount: s.keyCount, PageCount: pages}, nil
	}

	// pageIndex < pages keeps offset below keyCount.
	offset := pageIndex * pageSize
	limit := min(pageSize, s.keyCount-offset)
	entries, err := s.eng.Slice(offset, limit)
	if err != nil {
		logging.Warnf("reading page %d failed: %v", pageIndex+1, err)
		return Page{}, &ReadError{PageIndex: pageIndex, Err: err}
	}
	logging.Debugf("loaded page %d: %d rows from offset %d", pageIndex+1, len(entries), offset)

	rows := make([]Row, 0, len(entries))
	for i, e := range entries {
		r := Row{
			Ordinal: offset + i + 1,
			Key:     decode.RenderKey(e.Key),
		}
		if e.Err != nil {
			logging.Warnf("row %d: %v", r.Ordinal, e.Err)
			r.ValueErr = e.Err
		} else {
			r.Value = decode.ClassifyValue(e.Value)
		}
		rows = append(rows, r)
	}

	return Page{
		Index:     pageIndex,
		Rows:      rows,
		KeyCount:  s.keyCount,
		PageCount: pages,
	}, nil
}

// Close releases the engine. It is safe to call more than once.
func (s *Store) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.eng.Close()
}
