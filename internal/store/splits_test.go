package store

import (
	"errors"
	"testing"

	"github.com/claude/vincera/internal/models"
)

func newSplitWithDays(name string, days ...string) models.Split {
	s := models.NewSplit()
	s.Name = name
	for _, d := range days {
		s.Days = append(s.Days, models.NewDay(d))
	}
	return s
}

// TestSplitCreateSelectsFirst verifies that the first created split becomes
// current automatically and later creations leave the selection alone.
func TestSplitCreateSelectsFirst(t *testing.T) {
	s := NewSplitStore(newRecordStore(t))

	first := newSplitWithDays("Upper Lower", "Upper", "Lower")
	if err := s.Create(first); err != nil {
		t.Fatal(err)
	}
	if cur, ok := s.Current(); !ok || cur.ID != first.ID {
		t.Fatalf("current = %v, %v, want %s", cur.ID, ok, first.ID)
	}

	second := newSplitWithDays("Full Body", "A")
	if err := s.Create(second); err != nil {
		t.Fatal(err)
	}
	if cur, _ := s.Current(); cur.ID != first.ID {
		t.Fatalf("current changed to %s after second create", cur.ID)
	}
	if got := s.List(); len(got) != 2 || got[0].ID != second.ID {
		t.Fatalf("list = %v, want newest first", got)
	}
}

// TestSplitGetBuiltin verifies templates resolve by id without being stored.
func TestSplitGetBuiltin(t *testing.T) {
	s := NewSplitStore(newRecordStore(t))

	got, ok := s.Get("PUSH_PULL_LEGS")
	if !ok {
		t.Fatal("builtin split not found")
	}
	if got.Name != "Push Pull Legs" {
		t.Fatalf("name = %q", got.Name)
	}
	if len(s.List()) != 0 {
		t.Fatal("builtins must not appear in the user list")
	}
}

// TestSplitEditBuiltinCopies verifies editing a template creates an
// independent user copy and leaves the template untouched.
func TestSplitEditBuiltinCopies(t *testing.T) {
	s := NewSplitStore(newRecordStore(t))

	tpl, _ := s.Get("PUSH_PULL_LEGS")
	tpl.Name = "My PPL"
	if err := s.Edit(tpl); err != nil {
		t.Fatal(err)
	}

	list := s.List()
	if len(list) != 1 {
		t.Fatalf("list = %d splits, want 1", len(list))
	}
	if list[0].ID == tpl.ID {
		t.Fatal("copy kept the template id")
	}
	if list[0].Name != "My PPL" {
		t.Fatalf("copy name = %q", list[0].Name)
	}
	if orig, _ := s.Get("PUSH_PULL_LEGS"); orig.Name != "Push Pull Legs" {
		t.Fatalf("template mutated: %q", orig.Name)
	}
}

// TestSplitDeleteBuiltin verifies templates cannot be removed.
func TestSplitDeleteBuiltin(t *testing.T) {
	s := NewSplitStore(newRecordStore(t))
	if err := s.Delete("PUSH_PULL_LEGS"); !errors.Is(err, ErrImmutable) {
		t.Fatalf("err = %v, want ErrImmutable", err)
	}
}

// TestSplitDeleteDeselects verifies deleting the current split clears the
// selection.
func TestSplitDeleteDeselects(t *testing.T) {
	s := NewSplitStore(newRecordStore(t))

	sp := newSplitWithDays("Bro Split", "Chest")
	if err := s.Create(sp); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(sp.ID); err != nil {
		t.Fatal(err)
	}
	if _, ok := s.Current(); ok {
		t.Fatal("selection survived deleting the current split")
	}
	if len(s.List()) != 0 {
		t.Fatal("split still listed after delete")
	}
}

// TestSplitCreateRollback verifies a failed persist leaves the store exactly
// as it was.
func TestSplitCreateRollback(t *testing.T) {
	fs := &flakyStore{inner: newRecordStore(t)}
	s := NewSplitStore(fs)

	fs.fail = true
	if err := s.Create(newSplitWithDays("Doomed", "A")); err == nil {
		t.Fatal("expected write error")
	}
	if len(s.List()) != 0 {
		t.Fatal("split kept in memory after failed write")
	}
	if _, ok := s.Current(); ok {
		t.Fatal("selection set after failed create")
	}
}

// TestSplitSelectUnknown verifies selecting a nonexistent id fails.
func TestSplitSelectUnknown(t *testing.T) {
	s := NewSplitStore(newRecordStore(t))
	id := "nope"
	if err := s.Select(&id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

// TestSplitDayRotation walks the cursor forward and back through a
// three-day split, checking wraparound at both ends.
func TestSplitDayRotation(t *testing.T) {
	s := NewSplitStore(newRecordStore(t))

	sp := newSplitWithDays("PPL", "Push", "Pull", "Legs")
	if err := s.Create(sp); err != nil {
		t.Fatal(err)
	}

	day := func() string {
		t.Helper()
		d, ok := s.CurrentDay()
		if !ok {
			t.Fatal("no current day")
		}
		return d.Name
	}

	if got := day(); got != "Push" {
		t.Fatalf("initial day = %q, want Push", got)
	}
	for _, want := range []string{"Pull", "Legs", "Push"} {
		if err := s.NextDay(); err != nil {
			t.Fatal(err)
		}
		if got := day(); got != want {
			t.Fatalf("day = %q, want %q", got, want)
		}
	}
	if err := s.PrevDay(); err != nil {
		t.Fatal(err)
	}
	if got := day(); got != "Legs" {
		t.Fatalf("day after prev = %q, want Legs", got)
	}

	if err := s.SetDayIndex(1); err != nil {
		t.Fatal(err)
	}
	if got := day(); got != "Pull" {
		t.Fatalf("day after set index = %q, want Pull", got)
	}
	if err := s.SetDayIndex(7); !errors.Is(err, ErrNotFound) {
		t.Fatalf("out-of-range index: err = %v, want ErrNotFound", err)
	}
}

// TestSplitRotationRollback verifies a failed cursor write leaves the cursor
// where it was.
func TestSplitRotationRollback(t *testing.T) {
	fs := &flakyStore{inner: newRecordStore(t)}
	s := NewSplitStore(fs)

	if err := s.Create(newSplitWithDays("PPL", "Push", "Pull", "Legs")); err != nil {
		t.Fatal(err)
	}
	fs.fail = true
	if err := s.NextDay(); err == nil {
		t.Fatal("expected write error")
	}
	if d, _ := s.CurrentDay(); d.Name != "Push" {
		t.Fatalf("cursor moved despite failed write: %q", d.Name)
	}
}

// TestSplitStoreReload verifies splits and the selection survive a reload
// from disk.
func TestSplitStoreReload(t *testing.T) {
	rs := newRecordStore(t)
	s := NewSplitStore(rs)
	sp := newSplitWithDays("Upper Lower", "Upper", "Lower")
	if err := s.Create(sp); err != nil {
		t.Fatal(err)
	}
	if err := s.NextDay(); err != nil {
		t.Fatal(err)
	}

	reloaded := NewSplitStore(rs)
	if cur, ok := reloaded.Current(); !ok || cur.ID != sp.ID {
		t.Fatalf("current after reload = %v, %v", cur.ID, ok)
	}
	if d, _ := reloaded.CurrentDay(); d.Name != "Lower" {
		t.Fatalf("day after reload = %q, want Lower", d.Name)
	}
}
