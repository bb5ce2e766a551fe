package store

import (
	"slices"
	"sync"

	"github.com/claude/vincera/internal/models"
	"github.com/claude/vincera/internal/storage"
)

// DayStore owns standalone days (sessions planned outside a split).
type DayStore struct {
	mu   sync.Mutex
	rs   RecordStore
	days []models.Day
}

// NewDayStore loads the day collection, treating absence as empty.
func NewDayStore(rs RecordStore) *DayStore {
	s := &DayStore{rs: rs}
	if err := rs.Read(storage.RecDays, &s.days); err != nil {
		s.days = nil
	}
	return s
}

// List returns the days, newest first.
func (s *DayStore) List() []models.Day {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.days)
}

// Get finds a day by id.
func (s *DayStore) Get(id string) (models.Day, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.days, func(d models.Day) bool { return d.ID == id })
	if i < 0 {
		return models.Day{}, false
	}
	return s.days[i], true
}

// Create front-inserts the day.
func (s *DayStore) Create(day models.Day) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.days = append([]models.Day{day}, s.days...)
	if err := s.rs.Write(storage.RecDays, s.days); err != nil {
		s.days = s.days[1:]
		return err
	}
	return nil
}

// Edit replaces the stored day.
func (s *DayStore) Edit(day models.Day) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.days, func(d models.Day) bool { return d.ID == day.ID })
	if i < 0 {
		return ErrNotFound
	}
	original := s.days[i]
	s.days[i] = day
	if err := s.rs.Write(storage.RecDays, s.days); err != nil {
		s.days[i] = original
		return err
	}
	return nil
}

// Delete removes the day by id.
func (s *DayStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.days, func(d models.Day) bool { return d.ID == id })
	if i < 0 {
		return ErrNotFound
	}
	original := s.days[i]
	s.days = slices.Delete(s.days, i, i+1)
	if err := s.rs.Write(storage.RecDays, s.days); err != nil {
		s.days = slices.Insert(s.days, i, original)
		return err
	}
	return nil
}
