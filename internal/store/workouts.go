package store

import (
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/claude/vincera/internal/models"
	"github.com/claude/vincera/internal/storage"
)

// WorkoutStore owns the workout history (newest first), the single active
// session, and the workout meta (PR trackers + unit preference).
type WorkoutStore struct {
	mu       sync.Mutex
	rs       RecordStore
	workouts []models.Workout
	meta     models.WorkoutMeta
	active   *models.Workout

	now func() time.Time
}

// NewWorkoutStore loads history and meta, treating absence as empty.
func NewWorkoutStore(rs RecordStore) *WorkoutStore {
	s := &WorkoutStore{rs: rs, now: time.Now}
	if err := rs.Read(storage.RecWorkouts, &s.workouts); err != nil {
		s.workouts = nil
	}
	if err := rs.Read(storage.RecWorkoutMeta, &s.meta); err != nil {
		s.meta = models.NewWorkoutMeta()
	}
	return s
}

// List returns the workouts inside the timeframe, newest first.
func (s *WorkoutStore) List(t models.Timeframe) []models.Workout {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.FilterByTimeframe(s.workouts, t, s.now())
}

// Filtered returns timeframe-filtered workouts whose name contains search.
func (s *WorkoutStore) Filtered(search string, t models.Timeframe) []models.Workout {
	all := s.List(t)
	if search == "" {
		return all
	}
	var out []models.Workout
	for _, w := range all {
		if strings.Contains(strings.ToLower(w.Name), strings.ToLower(search)) {
			out = append(out, w)
		}
	}
	return out
}

// Get finds a workout by id.
func (s *WorkoutStore) Get(id string) (models.Workout, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.workouts, func(w models.Workout) bool { return w.ID == id })
	if i < 0 {
		return models.Workout{}, false
	}
	return s.workouts[i], true
}

// Create front-inserts the workout into history.
func (s *WorkoutStore) Create(w models.Workout) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createLocked(w)
}

func (s *WorkoutStore) createLocked(w models.Workout) error {
	s.workouts = append([]models.Workout{w}, s.workouts...)
	if err := s.rs.Write(storage.RecWorkouts, s.workouts); err != nil {
		s.workouts = s.workouts[1:]
		return err
	}
	return nil
}

// Edit replaces a historical workout.
func (s *WorkoutStore) Edit(w models.Workout) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.workouts, func(x models.Workout) bool { return x.ID == w.ID })
	if i < 0 {
		return ErrNotFound
	}
	original := s.workouts[i]
	s.workouts[i] = w
	if err := s.rs.Write(storage.RecWorkouts, s.workouts); err != nil {
		s.workouts[i] = original
		return err
	}
	return nil
}

// Delete removes a workout from history by id.
func (s *WorkoutStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.workouts, func(w models.Workout) bool { return w.ID == id })
	if i < 0 {
		return ErrNotFound
	}
	original := s.workouts[i]
	s.workouts = slices.Delete(s.workouts, i, i+1)
	if err := s.rs.Write(storage.RecWorkouts, s.workouts); err != nil {
		s.workouts = slices.Insert(s.workouts, i, original)
		return err
	}
	return nil
}

// Start begins a session as a deep clone of the day (nil for an empty shell).
// Only one session may be active at a time.
func (s *WorkoutStore) Start(day *models.Day) (models.Workout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active != nil {
		return models.Workout{}, ErrExistingWorkout
	}
	w := models.NewWorkout(day, s.now())
	s.active = &w
	return w, nil
}

// Active returns the in-progress workout, if any.
func (s *WorkoutStore) Active() (models.Workout, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return models.Workout{}, false
	}
	return *s.active, true
}

// UpdateActive replaces the in-progress workout (set values being logged).
func (s *WorkoutStore) UpdateActive(w models.Workout) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil || s.active.ID != w.ID {
		return ErrNoActiveWorkout
	}
	s.active = &w
	return nil
}

// Finish validates and persists the active workout, then clears it. With
// autoFill, missing set values are zero-filled first; otherwise any unfilled
// set fails with ErrInvalidWorkout and the session stays active.
func (s *WorkoutStore) Finish(autoFill bool) (models.Workout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return models.Workout{}, ErrNoActiveWorkout
	}
	w := *s.active
	if autoFill {
		w.FillEmpty()
	}
	if !w.IsValid() {
		return models.Workout{}, ErrInvalidWorkout
	}
	end := s.now()
	w.End = &end
	if err := s.createLocked(w); err != nil {
		return models.Workout{}, err
	}
	s.active = nil
	return w, nil
}

// Cancel discards the active workout unconditionally. Nothing is persisted.
func (s *WorkoutStore) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = nil
}

// Trackers returns the PR trackers.
func (s *WorkoutStore) Trackers() []models.PRTracker {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.meta.PRs)
}

// AddTrackers appends the given trackers, skipping pairs already tracked.
func (s *WorkoutStore) AddTrackers(trackers []models.PRTracker) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	original := slices.Clone(s.meta.PRs)
	for _, tr := range trackers {
		if !slices.Contains(s.meta.PRs, tr) {
			s.meta.PRs = append(s.meta.PRs, tr)
		}
	}
	if err := s.rs.Write(storage.RecWorkoutMeta, s.meta); err != nil {
		s.meta.PRs = original
		return err
	}
	return nil
}

// DeleteTracker removes a (listID, unit) tracker.
func (s *WorkoutStore) DeleteTracker(listID string, unit models.ExerciseUnit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.Index(s.meta.PRs, models.PRTracker{ListID: listID, Unit: unit})
	if i < 0 {
		return ErrNotFound
	}
	original := s.meta.PRs[i]
	s.meta.PRs = slices.Delete(s.meta.PRs, i, i+1)
	if err := s.rs.Write(storage.RecWorkoutMeta, s.meta); err != nil {
		s.meta.PRs = slices.Insert(s.meta.PRs, i, original)
		return err
	}
	return nil
}

// PersonalRecords computes current PR values for every tracker.
func (s *WorkoutStore) PersonalRecords() []models.PRValues {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.PersonalRecords(s.meta.PRs, s.workouts)
}

// Volume sums set counts per body part over the timeframe, ordered by
// descending share of the total.
func (s *WorkoutStore) Volume(lookup models.ExerciseLookup, t models.Timeframe) []models.Volume {
	s.mu.Lock()
	windowed := models.FilterByTimeframe(s.workouts, t, s.now())
	s.mu.Unlock()

	var exercises []models.Exercise
	for _, w := range windowed {
		exercises = append(exercises, w.Exercises.Flatten()...)
	}
	return models.SortByShare(models.VolumeByBodyPart(exercises, lookup))
}

// PreviousExercises returns the most recent instance per catalog id, skipping
// history up to and including afterWorkoutID when set.
func (s *WorkoutStore) PreviousExercises(listIDs []string, afterWorkoutID string) []models.Exercise {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.PreviousExercises(s.workouts, listIDs, afterWorkoutID)
}

// UnitSystem returns the user's weight unit preference.
func (s *WorkoutStore) UnitSystem() models.UnitSystem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.meta.Units
}

// SetUnitSystem persists the unit preference. Historical set values are left
// unconverted; they keep the unit they were logged in.
func (s *WorkoutStore) SetUnitSystem(units models.UnitSystem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.meta.Units == units {
		return nil
	}
	prev := s.meta.Units
	s.meta.Units = units
	if err := s.rs.Write(storage.RecWorkoutMeta, s.meta); err != nil {
		s.meta.Units = prev
		return err
	}
	return nil
}
