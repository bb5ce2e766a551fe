package models

// ExerciseGroups is an ordered sequence of wrapper groups. Each group is an
// ordered sequence of exercises performed as a superset.
type ExerciseGroups [][]Exercise

// Flatten returns all exercises in plan order.
func (g ExerciseGroups) Flatten() []Exercise {
	var out []Exercise
	for _, group := range g {
		out = append(out, group...)
	}
	return out
}

// Clone deep-copies the groups with fresh ids, preserving set values.
func (g ExerciseGroups) Clone() ExerciseGroups {
	out := make(ExerciseGroups, len(g))
	for i, group := range g {
		out[i] = make([]Exercise, len(group))
		for j, e := range group {
			out[i][j] = e.Clone()
		}
	}
	return out
}

// CloneEmpty deep-copies the groups with fresh ids and empty set values.
func (g ExerciseGroups) CloneEmpty() ExerciseGroups {
	out := make(ExerciseGroups, len(g))
	for i, group := range g {
		out[i] = make([]Exercise, len(group))
		for j, e := range group {
			out[i][j] = e.CloneEmpty()
		}
	}
	return out
}

// ListIDs returns the catalog ids referenced by the groups, in plan order.
func (g ExerciseGroups) ListIDs() []string {
	var ids []string
	for _, group := range g {
		for _, e := range group {
			ids = append(ids, e.ListID)
		}
	}
	return ids
}

// SetCount is the total number of sets across all groups.
func (g ExerciseGroups) SetCount() int {
	n := 0
	for _, group := range g {
		for _, e := range group {
			n += len(e.Sets)
		}
	}
	return n
}

// AddExercises appends each catalog exercise as its own wrapper group.
func (g *ExerciseGroups) AddExercises(list []ListExercise) {
	for _, le := range list {
		*g = append(*g, []Exercise{NewExercise(le)})
	}
}
