package store

import (
	"fmt"
	"testing"

	"github.com/claude/vincera/internal/storage"
)

// flakyStore wraps a real record store and fails writes on demand, to
// exercise the rollback half of the mutation protocol.
type flakyStore struct {
	inner RecordStore
	fail  bool
}

func (f *flakyStore) Read(rec storage.Record, v any) error {
	return f.inner.Read(rec, v)
}

func (f *flakyStore) Write(rec storage.Record, v any) error {
	if f.fail {
		return fmt.Errorf("%w: %s: disk full", storage.ErrWrite, rec)
	}
	return f.inner.Write(rec, v)
}

func newRecordStore(t *testing.T) *storage.Store {
	t.Helper()
	rs, err := storage.New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return rs
}
