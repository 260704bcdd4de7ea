// Copyright (c) 2026 Keymaster Team
// kvbrowse - read-only key-value database browser
// This source code is licensed under the MIT license found in the LICENSE file.

package engine

import (
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

type levelEngine struct {
	db *leveldb.DB
}

// OpenLevelDB opens a LevelDB database read-only.
func OpenLevelDB(path string) (Engine, error) {
	db, err := leveldb.OpenFile(path, &opt.Options{
		ReadOnly:       true,
		ErrorIfMissing: true,
	})
	if err != nil {
		return nil, fmt.Errorf("leveldb open: %w", err)
	}
	return &levelEngine{db: db}, nil
}

// withSnapshot runs fn over an iterator of a fresh snapshot; both are
// released on every path.
func (e *levelEngine) withSnapshot(fn func(cursor)) error {
	if e.db == nil {
		return ErrClosed
	}
	snap, err := e.db.GetSnapshot()
	if err != nil {
		return fmt.Errorf("leveldb snapshot: %w", err)
	}
	defer snap.Release()

	iter := snap.NewIterator(nil, nil)
	defer iter.Release()

	fn(iter)
	if err := iter.Error(); err != nil {
		return fmt.Errorf("leveldb iterator: %w", err)
	}
	return nil
}

func (e *levelEngine) Count() (int, error) {
	var n int
	err := e.withSnapshot(func(c cursor) {
		n = countCursor(c)
	})
	return n, err
}

func (e *levelEngine) Slice(offset, limit int) ([]Entry, error) {
	if err := checkSlice(offset, limit); err != nil {
		return nil, err
	}
	var entries []Entry
	err := e.withSnapshot(func(c cursor) {
		entries = sliceCursor(c, offset, limit)
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (e *levelEngine) Close() error {
	if e.db == nil {
		return nil
	}
	db := e.db
	e.db = nil
	return db.Close()
}
