// Copyright (c) 2026 Keymaster Team
// kvbrowse - read-only key-value database browser
// This source code is licensed under the MIT license found in the LICENSE file.

package engine

import (
	"fmt"

	"github.com/cockroachdb/pebble"
	"github.com/toeirei/kvbrowse/internal/logging"
)

type pebbleEngine struct {
	db *pebble.DB
}

// OpenPebble opens a pebble database read-only.
func OpenPebble(path string) (Engine, error) {
	db, err := pebble.Open(path, &pebble.Options{
		ReadOnly:         true,
		ErrorIfNotExists: true,
		Logger:           logging.EngineLogger{Prefix: "pebble: "},
	})
	if err != nil {
		return nil, fmt.Errorf("pebble open: %w", err)
	}
	return &pebbleEngine{db: db}, nil
}

// withIter runs fn over a fresh iterator and always closes it.
func (e *pebbleEngine) withIter(fn func(*pebble.Iterator)) (err error) {
	if e.db == nil {
		return ErrClosed
	}
	iter, err := e.db.NewIter(nil)
	if err != nil {
		return fmt.Errorf("pebble iterator: %w", err)
	}
	defer func() {
		if cerr := iter.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("pebble iterator: %w", cerr)
		}
	}()
	fn(iter)
	return iter.Error()
}

func (e *pebbleEngine) Count() (int, error) {
	var n int
	err := e.withIter(func(it *pebble.Iterator) {
		n = countCursor(it)
	})
	return n, err
}

func (e *pebbleEngine) Slice(offset, limit int) ([]Entry, error) {
	if err := checkSlice(offset, limit); err != nil {
		return nil, err
	}
	var entries []Entry
	err := e.withIter(func(it *pebble.Iterator) {
		entries = sliceCursor(it, offset, limit)
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (e *pebbleEngine) Close() error {
	if e.db == nil {
		return nil
	}
	db := e.db
	e.db = nil
	return db.Close()
}
