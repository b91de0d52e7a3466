package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/lumipallolabs/codemap/internal/counter"
	"github.com/lumipallolabs/codemap/internal/model"
	"github.com/stretchr/testify/assert"
)

// fakeCounter returns canned records and records every call
type fakeCounter struct {
	records map[string][]counter.Record
	fail    map[string]bool
	partial map[string]bool
	calls   map[string]int
}

func newFakeCounter() *fakeCounter {
	return &fakeCounter{
		records: make(map[string][]counter.Record),
		fail:    make(map[string]bool),
		partial: make(map[string]bool),
		calls:   make(map[string]int),
	}
}

func (f *fakeCounter) Count(_ context.Context, path string) ([]counter.Record, error) {
	f.calls[path]++
	if f.fail[path] {
		return nil, errors.New("exit status 1")
	}
	if f.partial[path] {
		return f.records[path], errors.New("exit status 1")
	}
	return f.records[path], nil
}

func TestGetCountsOncePerPath(t *testing.T) {
	fc := newFakeCounter()
	fc.records["/src/a.go"] = []counter.Record{{Language: "Go", Lines: 10, Code: 8, Blank: 1, Comment: 1}}
	c := New(fc)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		got := c.Get(ctx, "/src/a.go")
		assert.Equal(t, model.Stats{Lines: 10, Code: 8, Blank: 1, Comment: 1}, got)
	}
	c.Get(ctx, "/src/b.go")
	c.Get(ctx, "/src/b.go")

	assert.Equal(t, 1, fc.calls["/src/a.go"])
	assert.Equal(t, 1, fc.calls["/src/b.go"])
	assert.Equal(t, 2, c.Len())
}

func TestGetFoldsLanguages(t *testing.T) {
	fc := newFakeCounter()
	fc.records["/src"] = []counter.Record{
		{Language: "Go", Lines: 100, Code: 80, Blank: 10, Comment: 10},
		{Language: "Markdown", Lines: 20, Code: 15, Blank: 5},
	}

	got := New(fc).Get(context.Background(), "/src")
	assert.Equal(t, model.Stats{Lines: 120, Code: 95, Blank: 15, Comment: 10}, got)
}

func TestGetFailureCachesZero(t *testing.T) {
	fc := newFakeCounter()
	fc.fail["/src/binary.bin"] = true
	c := New(fc)
	ctx := context.Background()

	assert.True(t, c.Get(ctx, "/src/binary.bin").IsZero())
	assert.True(t, c.Get(ctx, "/src/binary.bin").IsZero())
	assert.Equal(t, 1, fc.calls["/src/binary.bin"], "failures are cached too")

	// no records at all also degrades to zero
	assert.True(t, c.Get(ctx, "/src/empty").IsZero())
}

func TestGetFailureDiscardsPartialRecords(t *testing.T) {
	fc := newFakeCounter()
	fc.records["/src/half.go"] = []counter.Record{{Language: "Go", Lines: 7, Code: 7}}
	fc.partial["/src/half.go"] = true
	c := New(fc)
	ctx := context.Background()

	assert.Equal(t, model.Stats{}, c.Get(ctx, "/src/half.go"))
	assert.Equal(t, model.Stats{}, c.Get(ctx, "/src/half.go"))
	assert.Equal(t, 1, fc.calls["/src/half.go"])
}

func TestInvalidateAll(t *testing.T) {
	fc := newFakeCounter()
	fc.records["/src/a.go"] = []counter.Record{{Lines: 1, Code: 1}}
	c := New(fc)
	ctx := context.Background()

	c.Get(ctx, "/src/a.go")
	c.Get(ctx, "/src")
	c.InvalidateAll()
	assert.Zero(t, c.Len())

	fc.records["/src/a.go"] = []counter.Record{{Lines: 2, Code: 2}}
	assert.Equal(t, int64(2), c.Get(ctx, "/src/a.go").Lines)
	assert.Equal(t, 2, fc.calls["/src/a.go"])
}
