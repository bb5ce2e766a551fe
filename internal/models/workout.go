package models

import "time"

// Workout is a time-stamped, executed instance derived from a Day.
type Workout struct {
	ID        string         `json:"id"`
	DayID     string         `json:"dayId"`
	Name      string         `json:"name"`
	Color     string         `json:"color"`
	Start     time.Time      `json:"start"`
	End       *time.Time     `json:"end"`
	Exercises ExerciseGroups `json:"exercises"`
}

// NewWorkout materializes a workout from a day: fresh ids throughout, empty
// set values, start stamped now. A nil day yields an empty shell.
func NewWorkout(day *Day, start time.Time) Workout {
	w := Workout{
		ID:    NewID(),
		Name:  "Empty",
		Color: randomColor(),
		Start: start,
	}
	if day != nil {
		w.DayID = day.ID
		w.Name = day.Name
		w.Color = day.Color
		w.Exercises = day.Exercises.CloneEmpty()
	}
	return w
}

// Progress is the fraction of sets with both values filled.
func (w Workout) Progress() float64 {
	total := w.Exercises.SetCount()
	if total == 0 {
		return 0
	}
	filled := 0
	for _, e := range w.Exercises.Flatten() {
		for _, s := range e.Sets {
			if s.Filled() {
				filled++
			}
		}
	}
	return float64(filled) / float64(total)
}

// Minutes is the workout duration in whole minutes; zero while unfinished.
func (w Workout) Minutes() int {
	if w.End == nil {
		return 0
	}
	return int(w.End.Sub(w.Start).Minutes())
}

// IsValid reports whether every set has both values filled.
func (w Workout) IsValid() bool {
	for _, e := range w.Exercises.Flatten() {
		for _, s := range e.Sets {
			if !s.Filled() {
				return false
			}
		}
	}
	return true
}

// FillEmpty zero-fills only the missing set values, never overwriting
// present ones.
func (w *Workout) FillEmpty() {
	for i := range w.Exercises {
		for j := range w.Exercises[i] {
			for k := range w.Exercises[i][j].Sets {
				w.Exercises[i][j].Sets[k].FillEmpty()
			}
		}
	}
}

// Timeframe selects a history window ending now.
type Timeframe string

const (
	Week    Timeframe = "week"
	Month   Timeframe = "month"
	Year    Timeframe = "year"
	AllTime Timeframe = "all"
)

// Cutoff returns the inclusive start of the window relative to now.
func (t Timeframe) Cutoff(now time.Time) time.Time {
	switch t {
	case Week:
		return now.AddDate(0, 0, -7)
	case Month:
		return now.AddDate(0, 0, -30)
	case Year:
		return now.AddDate(0, 0, -365)
	}
	return time.Unix(0, 0)
}

// FilterByTimeframe returns the workouts inside the window. History is sorted
// newest-first, so the scan stops at the first out-of-window workout.
func FilterByTimeframe(workouts []Workout, t Timeframe, now time.Time) []Workout {
	cutoff := t.Cutoff(now)
	var out []Workout
	for _, w := range workouts {
		if w.Start.Before(cutoff) {
			break
		}
		out = append(out, w)
	}
	return out
}
