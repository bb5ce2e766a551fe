package store

import (
	"slices"
	"strings"
	"sync"

	"github.com/claude/vincera/internal/models"
	"github.com/claude/vincera/internal/storage"
)

// ExerciseStore owns the merged exercise catalog: the loaded base/remote
// catalog plus the user-created overlay. Only user-created entries (full
// UUID ids) are ever written back, to the overlay file.
type ExerciseStore struct {
	mu        sync.Mutex
	rs        RecordStore
	exercises []models.ListExercise
}

// NewExerciseStore merges the loaded catalog with the user overlay. The
// overlay is appended after the catalog, matching lookup precedence.
func NewExerciseStore(rs RecordStore, catalog []models.ListExercise) *ExerciseStore {
	s := &ExerciseStore{rs: rs, exercises: slices.Clone(catalog)}
	var custom []models.ListExercise
	if err := rs.Read(storage.RecExercisesMut, &custom); err == nil {
		s.exercises = append(s.exercises, custom...)
	}
	return s
}

// List returns the full merged catalog.
func (s *ExerciseStore) List() []models.ListExercise {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.exercises)
}

// Get finds a catalog entry by id.
func (s *ExerciseStore) Get(id string) (models.ListExercise, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.exercises, func(e models.ListExercise) bool { return e.ID == id })
	if i < 0 {
		return models.ListExercise{}, false
	}
	return s.exercises[i], true
}

// Lookup adapts Get to the models.ExerciseLookup signature.
func (s *ExerciseStore) Lookup(id string) (models.ListExercise, bool) {
	return s.Get(id)
}

func (s *ExerciseStore) customLocked() []models.ListExercise {
	var custom []models.ListExercise
	for _, e := range s.exercises {
		if e.IsCustom() {
			custom = append(custom, e)
		}
	}
	return custom
}

// Create front-inserts a user-created entry and persists the overlay.
func (s *ExerciseStore) Create(e models.ListExercise) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !e.IsCustom() {
		return ErrImmutable
	}
	s.exercises = append([]models.ListExercise{e}, s.exercises...)
	if err := s.rs.Write(storage.RecExercisesMut, s.customLocked()); err != nil {
		s.exercises = s.exercises[1:]
		return err
	}
	return nil
}

// Edit replaces a user-created entry. Catalog entries are immutable.
func (s *ExerciseStore) Edit(e models.ListExercise) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !e.IsCustom() {
		return ErrImmutable
	}
	i := slices.IndexFunc(s.exercises, func(x models.ListExercise) bool { return x.ID == e.ID })
	if i < 0 {
		return ErrNotFound
	}
	original := s.exercises[i]
	s.exercises[i] = e
	if err := s.rs.Write(storage.RecExercisesMut, s.customLocked()); err != nil {
		s.exercises[i] = original
		return err
	}
	return nil
}

// Delete removes a user-created entry. Catalog entries are immutable.
func (s *ExerciseStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(id) != models.UUIDSize {
		return ErrImmutable
	}
	i := slices.IndexFunc(s.exercises, func(x models.ListExercise) bool { return x.ID == id })
	if i < 0 {
		return ErrNotFound
	}
	original := s.exercises[i]
	s.exercises = slices.Delete(s.exercises, i, i+1)
	if err := s.rs.Write(storage.RecExercisesMut, s.customLocked()); err != nil {
		s.exercises = slices.Insert(s.exercises, i, original)
		return err
	}
	return nil
}

// Filter narrows catalog listings.
type Filter struct {
	Search         string
	ExerciseTypes  []models.ExerciseType
	EquipmentTypes []models.EquipmentType
	BodyParts      []models.BodyPart
}

// ListFiltered returns entries matching every non-empty filter dimension.
func (s *ExerciseStore) ListFiltered(f Filter) []models.ListExercise {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.ListExercise
	for _, e := range s.exercises {
		if f.Search != "" && !strings.Contains(strings.ToLower(e.Name), strings.ToLower(f.Search)) {
			continue
		}
		if len(f.ExerciseTypes) > 0 && !slices.Contains(f.ExerciseTypes, models.ExerciseType(e.ExerciseType)) {
			continue
		}
		if len(f.EquipmentTypes) > 0 && !slices.Contains(f.EquipmentTypes, models.EquipmentType(e.EquipmentType)) {
			continue
		}
		if len(f.BodyParts) > 0 && !slices.Contains(f.BodyParts, models.BodyPart(e.BodyPart)) {
			continue
		}
		out = append(out, e)
	}
	return out
}
