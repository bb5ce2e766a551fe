package store

import (
	"errors"
	"testing"

	"github.com/claude/vincera/internal/models"
)

// TestDayCreateRollback verifies a failed persist leaves the day list empty.
func TestDayCreateRollback(t *testing.T) {
	fs := &flakyStore{inner: newRecordStore(t)}
	s := NewDayStore(fs)

	fs.fail = true
	if err := s.Create(models.NewDay("Push")); err == nil {
		t.Fatal("expected write error")
	}
	if got := s.List(); len(got) != 0 {
		t.Fatalf("list = %d days after failed create, want 0", len(got))
	}
}

// TestDayCRUD covers create, edit, delete and reload from disk.
func TestDayCRUD(t *testing.T) {
	rs := newRecordStore(t)
	s := NewDayStore(rs)

	d := models.NewDay("Push")
	if err := s.Create(d); err != nil {
		t.Fatal(err)
	}

	d.Name = "Push A"
	if err := s.Edit(d); err != nil {
		t.Fatal(err)
	}
	if got, ok := s.Get(d.ID); !ok || got.Name != "Push A" {
		t.Fatalf("get = %v, %v", got.Name, ok)
	}

	reloaded := NewDayStore(rs)
	if got := reloaded.List(); len(got) != 1 || got[0].Name != "Push A" {
		t.Fatalf("reload list = %v", got)
	}

	if err := s.Delete(d.ID); err != nil {
		t.Fatal(err)
	}
	if _, ok := s.Get(d.ID); ok {
		t.Fatal("day still present after delete")
	}
}

// TestDayEditUnknown verifies edits to missing days fail.
func TestDayEditUnknown(t *testing.T) {
	s := NewDayStore(newRecordStore(t))
	if err := s.Edit(models.NewDay("Ghost")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

// TestDayDeleteRollback verifies a failed persist restores the deleted day
// at its original position.
func TestDayDeleteRollback(t *testing.T) {
	fs := &flakyStore{inner: newRecordStore(t)}
	s := NewDayStore(fs)

	a, b := models.NewDay("Pull"), models.NewDay("Push")
	if err := s.Create(a); err != nil {
		t.Fatal(err)
	}
	if err := s.Create(b); err != nil {
		t.Fatal(err)
	}

	fs.fail = true
	if err := s.Delete(b.ID); err == nil {
		t.Fatal("expected write error")
	}
	got := s.List()
	if len(got) != 2 || got[0].ID != b.ID || got[1].ID != a.ID {
		t.Fatalf("order after rollback = %v", got)
	}
}
