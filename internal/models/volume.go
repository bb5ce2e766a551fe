package models

import "sort"

// Volume is the set count attributed to one body part.
type Volume struct {
	BodyPart BodyPart `json:"bodyPart"`
	Sets     int      `json:"sets"`
}

// ExerciseLookup resolves a catalog id to its definition.
type ExerciseLookup func(listID string) (ListExercise, bool)

// VolumeByBodyPart sums set counts per body part across the given exercises.
// Every body part appears in the result, zero-filled when unused. Exercises
// whose catalog entry is unknown are skipped.
func VolumeByBodyPart(exercises []Exercise, lookup ExerciseLookup) []Volume {
	parts := make([]Volume, len(BodyParts))
	index := make(map[BodyPart]int, len(BodyParts))
	for i, bp := range BodyParts {
		parts[i] = Volume{BodyPart: bp}
		index[bp] = i
	}

	for _, e := range exercises {
		le, ok := lookup(e.ListID)
		if !ok {
			continue
		}
		i, ok := index[BodyPart(le.BodyPart)]
		if !ok {
			continue
		}
		parts[i].Sets += len(e.Sets)
	}
	return parts
}

// Share returns the target body part's percentage of total sets, zero when
// the total is zero.
func Share(volumes []Volume, target BodyPart) int {
	total := 0
	var sets int
	for _, v := range volumes {
		total += v.Sets
		if v.BodyPart == target {
			sets = v.Sets
		}
	}
	if total == 0 {
		return 0
	}
	return sets * 100 / total
}

// SortByShare orders volumes by descending percentage share.
func SortByShare(volumes []Volume) []Volume {
	out := make([]Volume, len(volumes))
	copy(out, volumes)
	sort.SliceStable(out, func(i, j int) bool {
		return Share(volumes, out[i].BodyPart) > Share(volumes, out[j].BodyPart)
	})
	return out
}
