package store

import (
	"slices"
	"sync"

	"github.com/claude/vincera/internal/models"
	"github.com/claude/vincera/internal/storage"
)

// SplitStore owns the user's splits and the rotation cursor (selected split +
// current day index).
type SplitStore struct {
	mu     sync.Mutex
	rs     RecordStore
	splits []models.Split
	meta   models.SplitMeta
}

// NewSplitStore loads splits and the cursor, treating absent or unreadable
// collections as empty.
func NewSplitStore(rs RecordStore) *SplitStore {
	s := &SplitStore{rs: rs}
	if err := rs.Read(storage.RecSplits, &s.splits); err != nil {
		s.splits = nil
	}
	if err := rs.Read(storage.RecSplitMeta, &s.meta); err != nil {
		s.meta = models.SplitMeta{}
	}
	return s
}

// List returns the user's splits, newest first.
func (s *SplitStore) List() []models.Split {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.splits)
}

// Get finds a split by id among user splits and built-in templates.
func (s *SplitStore) Get(id string) (models.Split, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.find(id)
}

func (s *SplitStore) find(id string) (models.Split, bool) {
	for _, b := range models.BuiltinSplits {
		if b.ID == id {
			return b, true
		}
	}
	for _, sp := range s.splits {
		if sp.ID == id {
			return sp, true
		}
	}
	return models.Split{}, false
}

// Create front-inserts the split. If nothing is selected yet the new split
// becomes current (best effort).
func (s *SplitStore) Create(split models.Split) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.splits = append([]models.Split{split}, s.splits...)
	if err := s.rs.Write(storage.RecSplits, s.splits); err != nil {
		s.splits = s.splits[1:]
		return err
	}
	if s.meta.SplitID == nil {
		_ = s.selectLocked(&split.ID)
	}
	return nil
}

// Edit replaces the stored split. Editing a built-in template creates an
// independent copy instead of mutating the template.
func (s *SplitStore) Edit(split models.Split) error {
	if split.IsBuiltin() {
		return s.Create(split.Clone())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.splits, func(sp models.Split) bool { return sp.ID == split.ID })
	if i < 0 {
		return ErrNotFound
	}
	original := s.splits[i]
	s.splits[i] = split
	if err := s.rs.Write(storage.RecSplits, s.splits); err != nil {
		s.splits[i] = original
		return err
	}
	return nil
}

// Delete removes the split by id. Built-in templates cannot be deleted.
func (s *SplitStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if (models.Split{ID: id}).IsBuiltin() {
		return ErrImmutable
	}
	i := slices.IndexFunc(s.splits, func(sp models.Split) bool { return sp.ID == id })
	if i < 0 {
		return ErrNotFound
	}
	original := s.splits[i]
	s.splits = slices.Delete(s.splits, i, i+1)
	if err := s.rs.Write(storage.RecSplits, s.splits); err != nil {
		s.splits = slices.Insert(s.splits, i, original)
		return err
	}
	if s.meta.SplitID != nil && *s.meta.SplitID == id {
		_ = s.selectLocked(nil)
	}
	return nil
}

// Select makes the split with the given id current; nil deselects.
func (s *SplitStore) Select(id *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id != nil {
		if _, ok := s.find(*id); !ok {
			return ErrNotFound
		}
	}
	return s.selectLocked(id)
}

func (s *SplitStore) selectLocked(id *string) error {
	prev := s.meta
	s.meta.SplitID = id
	s.meta.DayIndex = nil
	if err := s.rs.Write(storage.RecSplitMeta, s.meta); err != nil {
		s.meta = prev
		return err
	}
	return nil
}

// Current returns the selected split, if any.
func (s *SplitStore) Current() (models.Split, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentLocked()
}

func (s *SplitStore) currentLocked() (models.Split, bool) {
	if s.meta.SplitID == nil {
		return models.Split{}, false
	}
	return s.find(*s.meta.SplitID)
}

// CurrentDay returns the day the rotation cursor points at, defaulting to the
// split's first day.
func (s *SplitStore) CurrentDay() (models.Day, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.currentLocked()
	if !ok || len(cur.Days) == 0 {
		return models.Day{}, false
	}
	i := 0
	if s.meta.DayIndex != nil && *s.meta.DayIndex >= 0 && *s.meta.DayIndex < len(cur.Days) {
		i = *s.meta.DayIndex
	}
	return cur.Days[i], true
}

// SetDayIndex moves the cursor to the given day of the current split.
func (s *SplitStore) SetDayIndex(index int) error {
	return s.stepDay(func(_, n int) int {
		return index
	})
}

// NextDay advances the cursor, wrapping to the first day.
func (s *SplitStore) NextDay() error {
	return s.stepDay(func(i, n int) int {
		return (i + 1) % n
	})
}

// PrevDay moves the cursor back, wrapping to the last day.
func (s *SplitStore) PrevDay() error {
	return s.stepDay(func(i, n int) int {
		return (i - 1 + n) % n
	})
}

func (s *SplitStore) stepDay(next func(current, count int) int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.currentLocked()
	if !ok || len(cur.Days) == 0 {
		return ErrNotFound
	}
	i := 0
	if s.meta.DayIndex != nil {
		i = *s.meta.DayIndex
	}
	n := next(i, len(cur.Days))
	if n < 0 || n >= len(cur.Days) {
		return ErrNotFound
	}

	prev := s.meta.DayIndex
	s.meta.DayIndex = &n
	if err := s.rs.Write(storage.RecSplitMeta, s.meta); err != nil {
		s.meta.DayIndex = prev
		return err
	}
	return nil
}
