package models

import "sync/atomic"

// Day is one training session template within a split.
type Day struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Color       string         `json:"color"`
	Exercises   ExerciseGroups `json:"exercises"`
}

// NewDay returns an empty day with a fresh id.
func NewDay(name string) Day {
	return Day{
		ID:    NewID(),
		Name:  name,
		Color: randomColor(),
	}
}

// Clone returns a deep copy with fresh ids throughout.
func (d Day) Clone() Day {
	c := d
	c.ID = NewID()
	c.Exercises = d.Exercises.Clone()
	return c
}

// CloneKeepID deep-copies the day's exercises but preserves the day id,
// for in-place edits of a draft.
func (d Day) CloneKeepID() Day {
	c := d
	c.Exercises = d.Exercises.Clone()
	return c
}

var dayColors = []string{
	"#ff0000", "#ff8800", "#ffcc00", "#00cc44",
	"#0066ff", "#8800ff", "#ff00ff",
}

var colorCursor atomic.Uint64

// randomColor cycles through the palette; good enough for defaults. Handlers
// create days and workouts concurrently, so the cursor is atomic.
func randomColor() string {
	n := colorCursor.Add(1) - 1
	return dayColors[n%uint64(len(dayColors))]
}
