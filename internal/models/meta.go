package models

// SplitMeta is the cursor through the selected split's rotation.
type SplitMeta struct {
	SplitID  *string `json:"splitId"`
	DayIndex *int    `json:"dayIndex"`
}

// WorkoutMeta holds PR trackers and the unit-system preference.
type WorkoutMeta struct {
	PRs   []PRTracker `json:"prs"`
	Units UnitSystem  `json:"units"`
}

// NewWorkoutMeta returns the default meta (imperial, no trackers).
func NewWorkoutMeta() WorkoutMeta {
	return WorkoutMeta{PRs: []PRTracker{}, Units: Imperial}
}

// PRTracker is a user-selected (catalog exercise, unit) pair whose best
// historical value is surfaced as a personal record.
type PRTracker struct {
	ListID string       `json:"listId"`
	Unit   ExerciseUnit `json:"type"`
}

// PRValues is a tracker plus its computed record. Nil values mean no
// historical data matched.
type PRValues struct {
	ListID string       `json:"listId"`
	Unit   ExerciseUnit `json:"type"`
	ValOne *float64     `json:"valOne"`
	ValTwo *float64     `json:"valTwo"`
}

// PersonalRecords computes the best historical value for each tracker by
// scanning every exercise instance in the history.
func PersonalRecords(trackers []PRTracker, history []Workout) []PRValues {
	out := make([]PRValues, 0, len(trackers))
	for _, tr := range trackers {
		pr := PRValues{ListID: tr.ListID, Unit: tr.Unit}
		for _, w := range history {
			for _, e := range w.Exercises.Flatten() {
				if e.ListID != tr.ListID {
					continue
				}
				best, paired, ok := e.MaxValue(tr.Unit)
				if !ok {
					continue
				}
				if pr.ValOne == nil || *pr.ValOne < best {
					b, p := best, paired
					pr.ValOne, pr.ValTwo = &b, &p
				}
			}
		}
		out = append(out, pr)
	}
	return out
}

// PreviousExercises scans history newest-first and returns the most recent
// instance per requested catalog id. A non-empty afterWorkoutID skips
// workouts up to and including that workout, so editors can look past the
// session being edited. The scan stops once all ids are satisfied.
func PreviousExercises(history []Workout, listIDs []string, afterWorkoutID string) []Exercise {
	wanted := make(map[string]bool, len(listIDs))
	for _, id := range listIDs {
		wanted[id] = true
	}

	var out []Exercise
	started := afterWorkoutID == ""
	for _, w := range history {
		if !started {
			if w.ID == afterWorkoutID {
				started = true
			}
			continue
		}
		for _, e := range w.Exercises.Flatten() {
			if !wanted[e.ListID] {
				continue
			}
			delete(wanted, e.ListID)
			out = append(out, e)
			if len(out) == len(listIDs) {
				return out
			}
		}
	}
	return out
}
