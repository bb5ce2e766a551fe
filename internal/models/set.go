package models

import "github.com/google/uuid"

// UUIDSize is the length of generated ids. Catalog ids are short literals,
// user-created ids are full UUID strings; the overlay store tells them apart
// by length.
const UUIDSize = 36

// NewID returns a fresh UUID string id.
func NewID() string {
	return uuid.NewString()
}

// SetType tags how a set was performed.
type SetType string

const (
	SetNormal   SetType = "normal"
	SetMyo      SetType = "myo"
	SetDrop     SetType = "drop"
	SetWarmup   SetType = "warmup"
	SetCooldown SetType = "cooldown"
)

// Set is a single logged set. The meaning of the two values depends on the
// owning exercise's units (e.g. weight/reps). Nil means not yet entered.
type Set struct {
	ID       string   `json:"id"`
	ValueOne *float64 `json:"valueOne"`
	ValueTwo *float64 `json:"valueTwo"`
	Type     SetType  `json:"type"`
}

// NewSet returns an empty normal set with a fresh id.
func NewSet() Set {
	return Set{ID: NewID(), Type: SetNormal}
}

// NewRepsSet returns a set with only the second value (reps) pre-filled.
func NewRepsSet(reps float64) Set {
	return Set{ID: NewID(), ValueTwo: &reps, Type: SetNormal}
}

// Clone returns a copy with a fresh id, preserving values.
func (s Set) Clone() Set {
	c := s
	c.ID = NewID()
	if s.ValueOne != nil {
		v := *s.ValueOne
		c.ValueOne = &v
	}
	if s.ValueTwo != nil {
		v := *s.ValueTwo
		c.ValueTwo = &v
	}
	return c
}

// Filled reports whether both values have been entered.
func (s Set) Filled() bool {
	return s.ValueOne != nil && s.ValueTwo != nil
}

// FillEmpty sets only the missing values to zero.
func (s *Set) FillEmpty() {
	zero := 0.0
	if s.ValueOne == nil {
		v := zero
		s.ValueOne = &v
	}
	if s.ValueTwo == nil {
		v := zero
		s.ValueTwo = &v
	}
}
