// Copyright (c) 2026 Keymaster Team
// kvbrowse - read-only key-value database browser
// This source code is licensed under the MIT license found in the LICENSE file.

// Package engine wraps embedded key-value storage engines behind a narrow,
// read-only interface: open, count, read a slice at an offset, close.
// Engines are opened read-only and never written to.
package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/toeirei/kvbrowse/internal/logging"
)

var (
	// ErrUnknownEngine is returned for an engine name that is not supported.
	ErrUnknownEngine = errors.New("unknown storage engine")
	// ErrNotDatabase is returned when a directory has no recognizable database files.
	ErrNotDatabase = errors.New("not a database directory")
	// ErrClosed is returned when an engine is used after Close.
	ErrClosed = errors.New("engine is closed")
)

// Entry is a single key/value pair. The slices are copies owned by the caller.
type Entry struct {
	Key   []byte
	Value []byte

	// Err is set when the key was read but its value was not. Value is nil.
	Err error
}

// Engine is a read-only view over an ordered key space.
type Engine interface {
	// Count returns the number of keys.
	Count() (int, error)
	// Slice returns up to limit entries in key order, skipping the first
	// offset entries. It returns fewer entries when the key space runs out.
	Slice(offset, limit int) ([]Entry, error)
	// Close releases the engine. Closing twice is a no-op.
	Close() error
}

// Kind names a storage engine implementation.
type Kind string

const (
	Auto    Kind = "auto"
	Pebble  Kind = "pebble"
	LevelDB Kind = "leveldb"
	Badger  Kind = "badger"
	LMDB    Kind = "lmdb"
)

// Kinds lists the selectable engine kinds.
var Kinds = []Kind{Auto, Pebble, LevelDB, Badger, LMDB}

// ParseKind maps a user-supplied name onto a Kind. The empty string is Auto.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "":
		return Auto, nil
	case "pebbledb":
		return Pebble, nil
	case "goleveldb":
		return LevelDB, nil
	}
	for _, k := range Kinds {
		if string(k) == name {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEngine, s)
}

// Open opens the database at path read-only. With Auto the engine is
// detected from the files in the directory.
func Open(path string, kind Kind) (Engine, error) {
	if kind == Auto || kind == "" {
		detected, err := Detect(path)
		if err != nil {
			return nil, err
		}
		logging.Debugf("detected %s database at %s", detected, path)
		kind = detected
	}

	switch kind {
	case Pebble:
		return OpenPebble(path)
	case LevelDB:
		return OpenLevelDB(path)
	case Badger:
		return OpenBadger(path)
	case LMDB:
		return OpenLMDB(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, string(kind))
	}
}

// cursor is the iterator surface shared by pebble and goleveldb.
type cursor interface {
	First() bool
	Next() bool
	Key() []byte
	Value() []byte
}

// maxPrealloc caps the capacity reserved for a slice result, so a huge
// limit does not allocate up front.
const maxPrealloc = 256

func newEntries(limit int) []Entry {
	return make([]Entry, 0, min(limit, maxPrealloc))
}

func copyEntry(key, value []byte) Entry {
	return Entry{
		Key:   append([]byte(nil), key...),
		Value: append([]byte(nil), value...),
	}
}

// countCursor walks the whole key space.
func countCursor(c cursor) int {
	n := 0
	for ok := c.First(); ok; ok = c.Next() {
		n++
	}
	return n
}

// sliceCursor skips offset entries and collects up to limit entries.
func sliceCursor(c cursor, offset, limit int) []Entry {
	entries := newEntries(limit)
	ok := c.First()
	for i := 0; ok && i < offset; i++ {
		ok = c.Next()
	}
	for ; ok && len(entries) < limit; ok = c.Next() {
		entries = append(entries, copyEntry(c.Key(), c.Value()))
	}
	return entries
}

func checkSlice(offset, limit int) error {
	if offset < 0 || limit < 0 {
		return fmt.Errorf("invalid slice offset=%d limit=%d", offset, limit)
	}
	return nil
}
