// Copyright (c) 2026 Keymaster Team
// kvbrowse - read-only key-value database browser
// This source code is licensed under the MIT license found in the LICENSE file.

package engine

import (
	"fmt"

	"github.com/PowerDNS/lmdb-go/lmdb"
)

type lmdbEngine struct {
	env *lmdb.Env
}

// OpenLMDB opens the unnamed database of an LMDB environment directory
// read-only. No lock file is taken, so the environment must not be written
// while it is browsed.
func OpenLMDB(path string) (Engine, error) {
	env, err := lmdb.NewEnv()
	if err != nil {
		return nil, fmt.Errorf("lmdb env: %w", err)
	}
	if err := env.Open(path, lmdb.Readonly|lmdb.NoLock, 0o644); err != nil {
		env.Close()
		return nil, fmt.Errorf("lmdb open: %w", err)
	}
	return &lmdbEngine{env: env}, nil
}

// Count uses the entry count LMDB keeps for the main database.
func (e *lmdbEngine) Count() (int, error) {
	if e.env == nil {
		return 0, ErrClosed
	}
	st, err := e.env.Stat()
	if err != nil {
		return 0, fmt.Errorf("lmdb stat: %w", err)
	}
	return int(st.Entries), nil
}

func (e *lmdbEngine) Slice(offset, limit int) ([]Entry, error) {
	if err := checkSlice(offset, limit); err != nil {
		return nil, err
	}
	if e.env == nil {
		return nil, ErrClosed
	}
	entries := newEntries(limit)
	err := e.env.View(func(txn *lmdb.Txn) error {
		txn.RawRead = true
		dbi, err := txn.OpenRoot(0)
		if err != nil {
			return err
		}
		cur, err := txn.OpenCursor(dbi)
		if err != nil {
			return err
		}
		defer cur.Close()

		op := uint(lmdb.First)
		for i := 0; i < offset; i++ {
			if _, _, err := cur.Get(nil, nil, op); err != nil {
				if lmdb.IsNotFound(err) {
					return nil
				}
				return err
			}
			op = lmdb.Next
		}
		for len(entries) < limit {
			k, v, err := cur.Get(nil, nil, op)
			if lmdb.IsNotFound(err) {
				return nil
			}
			if err != nil {
				return err
			}
			// RawRead slices point into the map and die with the txn.
			entries = append(entries, copyEntry(k, v))
			op = lmdb.Next
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("lmdb slice: %w", err)
	}
	return entries, nil
}

func (e *lmdbEngine) Close() error {
	if e.env == nil {
		return nil
	}
	env := e.env
	e.env = nil
	return env.Close()
}
