package models

// Exercise is a planned or performed occurrence of a catalog exercise, with
// its own sets. Days and workouts hold exercises in wrapper groups
// ([][]Exercise): exercises in one group are performed back-to-back.
type Exercise struct {
	ID      string       `json:"id"`
	ListID  string       `json:"listId"`
	RPE     int          `json:"rpe"`
	UnitOne ExerciseUnit `json:"unitOne"`
	UnitTwo ExerciseUnit `json:"unitTwo"`
	Sets    []Set        `json:"sets"`
}

const defaultRPE = 5

// NewExercise creates an instance of a catalog exercise with three empty sets.
// Bodyweight exercises measure added weight.
func NewExercise(list ListExercise) Exercise {
	unitOne := UnitWeight
	if list.EquipmentType == string(Bodyweight) {
		unitOne = UnitWeightPlus
	}
	return Exercise{
		ID:      NewID(),
		ListID:  list.ID,
		RPE:     defaultRPE,
		UnitOne: unitOne,
		UnitTwo: UnitReps,
		Sets:    []Set{NewSet(), NewSet(), NewSet()},
	}
}

// NewPlannedExercise builds a planned exercise with target reps per set.
// Used for the built-in split templates.
func NewPlannedExercise(listID string, reps ...float64) Exercise {
	sets := make([]Set, 0, len(reps))
	for _, r := range reps {
		sets = append(sets, NewRepsSet(r))
	}
	return Exercise{
		ID:      NewID(),
		ListID:  listID,
		RPE:     defaultRPE,
		UnitOne: UnitWeight,
		UnitTwo: UnitReps,
		Sets:    sets,
	}
}

// Clone returns a deep copy with fresh ids, preserving set values.
func (e Exercise) Clone() Exercise {
	c := e
	c.ID = NewID()
	c.Sets = make([]Set, len(e.Sets))
	for i, s := range e.Sets {
		c.Sets[i] = s.Clone()
	}
	return c
}

// CloneEmpty returns a fresh instance with the same shape but empty set
// values, the way starting a workout materializes a day's plan.
func (e Exercise) CloneEmpty() Exercise {
	c := Exercise{
		ID:      NewID(),
		ListID:  e.ListID,
		RPE:     defaultRPE,
		UnitOne: e.UnitOne,
		UnitTwo: e.UnitTwo,
		Sets:    make([]Set, len(e.Sets)),
	}
	for i := range e.Sets {
		c.Sets[i] = NewSet()
	}
	return c
}

// AddSet appends an empty set.
func (e *Exercise) AddSet() {
	e.Sets = append(e.Sets, NewSet())
}

// RemoveSet drops the last set, keeping at least one.
func (e *Exercise) RemoveSet() {
	if len(e.Sets) <= 1 {
		return
	}
	e.Sets = e.Sets[:len(e.Sets)-1]
}

// MaxValue returns the best value for the given unit across sets, paired with
// the co-occurring other value from the same set. False when the exercise does
// not measure that unit or no set has it filled.
func (e Exercise) MaxValue(unit ExerciseUnit) (float64, float64, bool) {
	var pick func(Set) (*float64, *float64)
	switch unit {
	case e.UnitOne:
		pick = func(s Set) (*float64, *float64) { return s.ValueOne, s.ValueTwo }
	case e.UnitTwo:
		pick = func(s Set) (*float64, *float64) { return s.ValueTwo, s.ValueOne }
	default:
		return 0, 0, false
	}

	var best, paired float64
	found := false
	for _, s := range e.Sets {
		p, q := pick(s)
		if p == nil {
			continue
		}
		if !found || *p > best {
			best = *p
			paired = 0
			if q != nil {
				paired = *q
			}
			found = true
		}
	}
	return best, paired, found
}

// CanFillDown reports whether set values can be copied from index to index+1.
func (e Exercise) CanFillDown(index int) bool {
	return index+1 < len(e.Sets) &&
		e.Sets[index].Filled() &&
		e.Sets[index+1].ValueOne == nil &&
		e.Sets[index+1].ValueTwo == nil
}

// FillDown copies the values of the set at index into the next set.
func (e *Exercise) FillDown(index int) {
	if !e.CanFillDown(index) {
		return
	}
	one, two := *e.Sets[index].ValueOne, *e.Sets[index].ValueTwo
	e.Sets[index+1].ValueOne = &one
	e.Sets[index+1].ValueTwo = &two
}
