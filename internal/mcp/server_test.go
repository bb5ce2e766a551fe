package mcp

import (
	"context"
	"testing"

	"github.com/claude/vincera/internal/models"
	"github.com/claude/vincera/internal/storage"
	"github.com/claude/vincera/internal/store"
)

// TestParseTimeframe verifies timeframe parsing falls back to all time for
// unknown values.
func TestParseTimeframe(t *testing.T) {
	cases := map[string]models.Timeframe{
		"week":    models.Week,
		"month":   models.Month,
		"year":    models.Year,
		"all":     models.AllTime,
		"":        models.AllTime,
		"decade":  models.AllTime,
		"fortnight": models.AllTime,
	}
	for in, want := range cases {
		if got := parseTimeframe(in); got != want {
			t.Errorf("parseTimeframe(%q) = %q, want %q", in, got, want)
		}
	}
}

func newLocalSource(t *testing.T) *LocalSource {
	t.Helper()
	rs, err := storage.New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	splits := store.NewSplitStore(rs)
	workouts := store.NewWorkoutStore(rs)
	exercises := store.NewExerciseStore(rs, []models.ListExercise{
		{ID: "52", Name: "Pull Up", BodyPart: "back", PrimaryGroup: "lats", ExerciseType: "compound", EquipmentType: "bodyweight"},
	})
	return NewLocalSource(splits, workouts, exercises)
}

// TestLocalSourceActiveWorkoutNone verifies a nil workout is reported when no
// session is running.
func TestLocalSourceActiveWorkoutNone(t *testing.T) {
	ds := newLocalSource(t)
	workout, err := ds.ActiveWorkout(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if workout != nil {
		t.Errorf("active workout = %+v, want nil", workout)
	}
}

// TestLocalSourceCurrentSplitNone verifies the no-selection case returns nils
// without error.
func TestLocalSourceCurrentSplitNone(t *testing.T) {
	ds := newLocalSource(t)
	split, day, err := ds.CurrentSplit(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if split != nil || day != nil {
		t.Errorf("current split = %+v/%+v, want nil/nil", split, day)
	}
}

// TestLocalSourceExercises verifies catalog search through the data source.
func TestLocalSourceExercises(t *testing.T) {
	ds := newLocalSource(t)
	exercises, err := ds.Exercises(context.Background(), "pull")
	if err != nil {
		t.Fatal(err)
	}
	if len(exercises) != 1 || exercises[0].ID != "52" {
		t.Fatalf("exercises = %+v, want the pull up entry", exercises)
	}
}
