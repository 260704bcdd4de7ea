// Copyright (c) 2026 Keymaster Team
// kvbrowse - read-only key-value database browser
// This source code is licensed under the MIT license found in the LICENSE file.

package engine

import (
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/toeirei/kvbrowse/internal/logging"
)

type badgerEngine struct {
	db *badger.DB
}

// OpenBadger opens a badger database read-only.
func OpenBadger(path string) (Engine, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(logging.EngineLogger{Prefix: "badger: "})
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("badger open: %w", err)
	}
	return &badgerEngine{db: db}, nil
}

func (e *badgerEngine) Count() (int, error) {
	if e.db == nil {
		return 0, ErrClosed
	}
	n := 0
	err := e.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{})
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			n++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("badger count: %w", err)
	}
	return n, nil
}

func (e *badgerEngine) Slice(offset, limit int) ([]Entry, error) {
	if err := checkSlice(offset, limit); err != nil {
		return nil, err
	}
	if e.db == nil {
		return nil, ErrClosed
	}
	entries := newEntries(limit)
	err := e.db.View(func(txn *badger.Txn) error {
		// Keys are skipped without touching the value log.
		it := txn.NewIterator(badger.IteratorOptions{})
		defer it.Close()

		it.Rewind()
		for i := 0; it.Valid() && i < offset; i++ {
			it.Next()
		}
		for ; it.Valid() && len(entries) < limit; it.Next() {
			item := it.Item()
			value, err := item.ValueCopy(nil)
			if err != nil {
				// The row stays on the page with the failure attached.
				entries = append(entries, Entry{Key: item.KeyCopy(nil), Err: fmt.Errorf("badger value: %w", err)})
				continue
			}
			entries = append(entries, Entry{Key: item.KeyCopy(nil), Value: value})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("badger slice: %w", err)
	}
	return entries, nil
}

func (e *badgerEngine) Close() error {
	if e.db == nil {
		return nil
	}
	db := e.db
	e.db = nil
	return db.Close()
}
