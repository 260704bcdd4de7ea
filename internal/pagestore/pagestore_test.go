// Copyright (c) 2026 Keymaster Team
// kvbrowse - read-only key-value database browser
// This source code is licensed under the MIT license found in the LICENSE file.

package pagestore

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/pebble"
	"github.com/toeirei/kvbrowse/internal/decode"
	"github.com/toeirei/kvbrowse/internal/engine"
)

// fakeEngine is an in-memory engine.Engine over pre-sorted entries.
type fakeEngine struct {
	entries  []engine.Entry
	countErr error
	sliceErr error
	closes   int
	slices   int

	// lastLimit is the limit of the most recent Slice call.
	lastLimit int
}

func newFake(n int) *fakeEngine {
	f := &fakeEngine{}
	for i := 0; i < n; i++ {
		f.entries = append(f.entries, engine.Entry{
			Key:   []byte(fmt.Sprintf("k%03d", i)),
			Value: []byte{byte(i), 0, 0, 0},
		})
	}
	return f
}

func (f *fakeEngine) Count() (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return len(f.entries), nil
}

func (f *fakeEngine) Slice(offset, limit int) ([]engine.Entry, error) {
	f.slices++
	f.lastLimit = limit
	if f.sliceErr != nil {
		return nil, f.sliceErr
	}
	if offset >= len(f.entries) {
		return nil, nil
	}
	end := min(offset+limit, len(f.entries))
	return f.entries[offset:end], nil
}

func (f *fakeEngine) Close() error {
	f.closes++
	return nil
}

func TestPageCount(t *testing.T) {
	cases := []struct{ keys, size, want int }{
		{0, 30, 1},
		{1, 30, 1},
		{30, 30, 1},
		{31, 30, 2},
		{65, 30, 3},
		{90, 30, 3},
		{5, 1, 5},
		{65, math.MaxInt, 1},
		{math.MaxInt, math.MaxInt, 1},
		{math.MaxInt, math.MaxInt - 1, 2},
		{math.MaxInt, 2, math.MaxInt/2 + 1},
	}
	for _, tc := range cases {
		if got := PageCount(tc.keys, tc.size); got != tc.want {
			t.Fatalf("PageCount(%d,%d): expected %d got %d", tc.keys, tc.size, tc.want, got)
		}
	}
}

func TestGetPage_EmptyStore(t *testing.T) {
	s, err := New(newFake(0))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if s.PageCount(30) != 1 {
		t.Fatalf("expected 1 page for empty store, got %d", s.PageCount(30))
	}
	p, err := s.GetPage(0, 30)
	if err != nil {
		t.Fatalf("get page: %v", err)
	}
	if len(p.Rows) != 0 || p.PageCount != 1 || p.KeyCount != 0 {
		t.Fatalf("unexpected empty page: %+v", p)
	}
	if p.FirstOrdinal() != 0 || p.LastOrdinal() != 0 {
		t.Fatalf("expected zero ordinals for empty page")
	}
}

func TestGetPage_SixtyFiveKeys(t *testing.T) {
	s, err := New(newFake(65))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if s.PageCount(30) != 3 {
		t.Fatalf("expected 3 pages, got %d", s.PageCount(30))
	}

	var all []Row
	for i, want := range []int{30, 30, 5} {
		p, err := s.GetPage(i, 30)
		if err != nil {
			t.Fatalf("page %d: %v", i, err)
		}
		if len(p.Rows) != want {
			t.Fatalf("page %d: expected %d rows, got %d", i, want, len(p.Rows))
		}
		if p.Index != i || p.PageCount != 3 || p.KeyCount != 65 {
			t.Fatalf("page %d: unexpected totals %+v", i, p)
		}
		all = append(all, p.Rows...)
	}

	if len(all) != 65 {
		t.Fatalf("expected 65 rows across pages, got %d", len(all))
	}
	for i, r := range all {
		if r.Ordinal != i+1 {
			t.Fatalf("row %d: expected ordinal %d got %d", i, i+1, r.Ordinal)
		}
		if want := fmt.Sprintf("k%03d", i); r.Key != want {
			t.Fatalf("row %d: expected key %q got %q", i, want, r.Key)
		}
	}
}

func TestGetPage_HugePageSize(t *testing.T) {
	f := newFake(3)
	s, err := New(f)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	p, err := s.GetPage(0, math.MaxInt)
	if err != nil {
		t.Fatalf("get page: %v", err)
	}
	if len(p.Rows) != 3 || p.PageCount != 1 {
		t.Fatalf("expected one page with 3 rows, got %+v", p)
	}
	if f.lastLimit != 3 {
		t.Fatalf("expected the engine limit bounded by the key count, got %d", f.lastLimit)
	}

	p, err = s.GetPage(1, math.MaxInt)
	if err != nil || len(p.Rows) != 0 {
		t.Fatalf("expected empty page past the end, got %+v %v", p, err)
	}
}

func TestGetPage_ValueErrorKeepsRow(t *testing.T) {
	bad := errors.New("value log missing")
	f := &fakeEngine{entries: []engine.Entry{
		{Key: []byte("a"), Value: []byte("1")},
		{Key: []byte("b"), Err: bad},
		{Key: []byte("c"), Value: []byte("3")},
	}}
	s, err := New(f)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	p, err := s.GetPage(0, 10)
	if err != nil {
		t.Fatalf("a bad row must not fail the page: %v", err)
	}
	if len(p.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(p.Rows))
	}
	if !errors.Is(p.Rows[1].ValueErr, bad) || p.Rows[1].Key != "b" || p.Rows[1].Ordinal != 2 {
		t.Fatalf("unexpected placeholder row: %+v", p.Rows[1])
	}
	if p.Rows[0].ValueErr != nil || p.Rows[2].Value.Kind != decode.String {
		t.Fatalf("neighbouring rows affected: %+v", p.Rows)
	}
}

func TestGetPage_DecodesRows(t *testing.T) {
	f := &fakeEngine{entries: []engine.Entry{
		{Key: []byte("greeting"), Value: []byte("hello")},
		{Key: []byte{0x00, 0x01}, Value: []byte{0xDE, 0xAD, 0xBE, 0xEF}},
		{Key: []byte("blob"), Value: []byte{0xff, 0xfe, 0xfd}},
	}}
	s, err := New(f)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	p, err := s.GetPage(0, 10)
	if err != nil {
		t.Fatalf("get page: %v", err)
	}
	want := []Row{
		{Ordinal: 1, Key: "greeting", Value: decode.Classification{Kind: decode.String, Length: 5}},
		{Ordinal: 2, Key: "0001", Value: decode.Classification{Kind: decode.IntegerOrBytes, Length: 4}},
		{Ordinal: 3, Key: "blob", Value: decode.Classification{Kind: decode.Bytes, Length: 3}},
	}
	for i := range want {
		if p.Rows[i] != want[i] {
			t.Fatalf("row %d: expected %+v got %+v", i, want[i], p.Rows[i])
		}
	}
}

func TestGetPage_ReadError(t *testing.T) {
	f := newFake(10)
	s, err := New(f)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	boom := errors.New("corrupt block")
	f.sliceErr = boom

	_, err = s.GetPage(0, 5)
	var rerr *ReadError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected *ReadError, got %T %v", err, err)
	}
	if rerr.PageIndex != 0 || !errors.Is(err, boom) {
		t.Fatalf("unexpected read error: %v", err)
	}
}

func TestGetPage_InvalidArguments(t *testing.T) {
	s, _ := New(newFake(3))
	if _, err := s.GetPage(0, 0); !errors.Is(err, ErrInvalidPageSize) {
		t.Fatalf("expected ErrInvalidPageSize, got %v", err)
	}
	if _, err := s.GetPage(-1, 10); err == nil {
		t.Fatalf("expected error for negative page index")
	}
	p, err := s.GetPage(5, 10)
	if err != nil || len(p.Rows) != 0 {
		t.Fatalf("expected empty page past the end, got %+v %v", p, err)
	}
}

func TestNew_CountError(t *testing.T) {
	f := newFake(1)
	f.countErr = errors.New("count failed")
	if _, err := New(f); err == nil {
		t.Fatalf("expected count error")
	}
}

func TestClose_Idempotent(t *testing.T) {
	f := newFake(3)
	s, _ := New(f)
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	if f.closes != 1 {
		t.Fatalf("expected engine closed once, got %d", f.closes)
	}
	_, err := s.GetPage(0, 10)
	var rerr *ReadError
	if !errors.As(err, &rerr) || !errors.Is(err, engine.ErrClosed) {
		t.Fatalf("expected ReadError wrapping ErrClosed, got %v", err)
	}
}

func TestOpen_MissingPath(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope"), engine.Auto)
	var oerr *OpenError
	if !errors.As(err, &oerr) {
		t.Fatalf("expected *OpenError, got %T %v", err, err)
	}
	if !os.IsNotExist(errors.Unwrap(err)) {
		t.Fatalf("expected not-exist cause, got %v", oerr.Err)
	}
}

func TestOpen_NotADatabase(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := Open(dir, engine.Auto)
	var oerr *OpenError
	if !errors.As(err, &oerr) || !errors.Is(err, engine.ErrNotDatabase) {
		t.Fatalf("expected OpenError wrapping ErrNotDatabase, got %v", err)
	}

	_, err = Open(filepath.Join(dir, "notes.txt"), engine.Auto)
	if !errors.As(err, &oerr) {
		t.Fatalf("expected OpenError for a regular file, got %v", err)
	}
}

func TestOpen_Pebble(t *testing.T) {
	dir := t.TempDir()
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		t.Fatalf("seed open: %v", err)
	}
	for i := 0; i < 65; i++ {
		if err := db.Set([]byte(fmt.Sprintf("key-%02d", i)), []byte("v"), pebble.Sync); err != nil {
			t.Fatalf("seed set: %v", err)
		}
	}
	if err := db.Close(); err != nil {
		t.Fatalf("seed close: %v", err)
	}

	s, err := Open(dir, engine.Auto)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	if s.KeyCount() != 65 || s.PageCount(30) != 3 {
		t.Fatalf("unexpected counts: keys=%d pages=%d", s.KeyCount(), s.PageCount(30))
	}
	p, err := s.GetPage(2, 30)
	if err != nil {
		t.Fatalf("get page: %v", err)
	}
	if len(p.Rows) != 5 || p.Rows[0].Key != "key-60" || p.Rows[0].Ordinal != 61 {
		t.Fatalf("unexpected last page: %+v", p.Rows)
	}

	p, err = s.GetPage(0, math.MaxInt)
	if err != nil {
		t.Fatalf("get page with max page size: %v", err)
	}
	if len(p.Rows) != 65 || p.PageCount != 1 {
		t.Fatalf("expected all 65 keys on one page, got %d rows of %d pages", len(p.Rows), p.PageCount)
	}
}
