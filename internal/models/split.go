package models

import "fmt"

// Split is a named multi-day workout program.
type Split struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Days        []Day  `json:"days"`
}

// NewSplit returns an empty split with a fresh id.
func NewSplit() Split {
	return Split{ID: NewID()}
}

// Clone returns a deep copy with fresh ids throughout. Used when editing a
// built-in template or importing a shared split.
func (s Split) Clone() Split {
	c := s
	c.ID = NewID()
	c.Days = make([]Day, len(s.Days))
	for i, d := range s.Days {
		c.Days[i] = d.Clone()
	}
	return c
}

// CloneKeepID deep-copies the split's days but preserves the split id.
func (s Split) CloneKeepID() Split {
	c := s
	c.Days = make([]Day, len(s.Days))
	for i, d := range s.Days {
		c.Days[i] = d.CloneKeepID()
	}
	return c
}

// AddDay appends an empty day named after its position.
func (s *Split) AddDay() {
	s.Days = append(s.Days, NewDay(fmt.Sprintf("Day %d", len(s.Days)+1)))
}

// MoveDay reorders a day from one index to another.
func (s *Split) MoveDay(from, to int) {
	if from < 0 || from >= len(s.Days) || to < 0 || to >= len(s.Days) {
		return
	}
	d := s.Days[from]
	s.Days = append(s.Days[:from], s.Days[from+1:]...)
	s.Days = append(s.Days[:to], append([]Day{d}, s.Days[to:]...)...)
}

// DeleteDay removes the day at the given index.
func (s *Split) DeleteDay(index int) {
	if index < 0 || index >= len(s.Days) {
		return
	}
	s.Days = append(s.Days[:index], s.Days[index+1:]...)
}

// IsBuiltin reports whether the split is one of the immutable templates.
func (s Split) IsBuiltin() bool {
	for _, b := range BuiltinSplits {
		if b.ID == s.ID {
			return true
		}
	}
	return false
}
