package mcp

import (
	"context"

	"github.com/claude/vincera/internal/models"
	"github.com/claude/vincera/internal/store"
)

// DataSource abstracts the data layer for MCP tools. Both LocalSource (in
// process) and HTTPClient (remote via REST API) satisfy this interface.
type DataSource interface {
	Workouts(ctx context.Context, timeframe models.Timeframe, search string) ([]models.Workout, error)
	ActiveWorkout(ctx context.Context) (*models.Workout, error)
	CurrentSplit(ctx context.Context) (*models.Split, *models.Day, error)
	Splits(ctx context.Context) ([]models.Split, error)
	PersonalRecords(ctx context.Context) ([]models.PRValues, error)
	Volume(ctx context.Context, timeframe models.Timeframe) ([]models.Volume, error)
	PreviousExercises(ctx context.Context, listIDs []string, afterWorkoutID string) ([]models.Exercise, error)
	Exercises(ctx context.Context, search string) ([]models.ListExercise, error)
}

// LocalSource implements DataSource over in-process stores.
type LocalSource struct {
	splits    *store.SplitStore
	workouts  *store.WorkoutStore
	exercises *store.ExerciseStore
}

// NewLocalSource wraps the given stores as a DataSource.
func NewLocalSource(splits *store.SplitStore, workouts *store.WorkoutStore, exercises *store.ExerciseStore) *LocalSource {
	return &LocalSource{splits: splits, workouts: workouts, exercises: exercises}
}

// Compile-time check: *LocalSource satisfies DataSource.
var _ DataSource = (*LocalSource)(nil)

func (l *LocalSource) Workouts(ctx context.Context, t models.Timeframe, search string) ([]models.Workout, error) {
	return l.workouts.Filtered(search, t), nil
}

func (l *LocalSource) ActiveWorkout(ctx context.Context) (*models.Workout, error) {
	w, ok := l.workouts.Active()
	if !ok {
		return nil, nil
	}
	return &w, nil
}

func (l *LocalSource) CurrentSplit(ctx context.Context) (*models.Split, *models.Day, error) {
	split, ok := l.splits.Current()
	if !ok {
		return nil, nil, nil
	}
	day, ok := l.splits.CurrentDay()
	if !ok {
		return &split, nil, nil
	}
	return &split, &day, nil
}

func (l *LocalSource) Splits(ctx context.Context) ([]models.Split, error) {
	return l.splits.List(), nil
}

func (l *LocalSource) PersonalRecords(ctx context.Context) ([]models.PRValues, error) {
	return l.workouts.PersonalRecords(), nil
}

func (l *LocalSource) Volume(ctx context.Context, t models.Timeframe) ([]models.Volume, error) {
	return l.workouts.Volume(l.exercises.Lookup, t), nil
}

func (l *LocalSource) PreviousExercises(ctx context.Context, listIDs []string, afterWorkoutID string) ([]models.Exercise, error) {
	return l.workouts.PreviousExercises(listIDs, afterWorkoutID), nil
}

func (l *LocalSource) Exercises(ctx context.Context, search string) ([]models.ListExercise, error) {
	return l.exercises.ListFiltered(store.Filter{Search: search}), nil
}
