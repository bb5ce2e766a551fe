package models

// ExerciseUnit is a measurement dimension for one of an exercise's two values.
type ExerciseUnit string

const (
	UnitReps       ExerciseUnit = "Reps"
	UnitWeight     ExerciseUnit = "Weight"
	UnitWeightPlus ExerciseUnit = "Weight(+)"
	UnitTime       ExerciseUnit = "Time"
	UnitDistance   ExerciseUnit = "Distance"
)

// ExerciseUnits lists all units in display order.
var ExerciseUnits = []ExerciseUnit{UnitReps, UnitWeight, UnitWeightPlus, UnitTime, UnitDistance}

// Compressed returns the one-character code used by the compact split encoding.
func (u ExerciseUnit) Compressed() string {
	switch u {
	case UnitReps:
		return "r"
	case UnitWeight:
		return "w"
	case UnitWeightPlus:
		return "p"
	case UnitTime:
		return "t"
	case UnitDistance:
		return "d"
	}
	return ""
}

// UnitFromCompressed is the inverse of Compressed. The second return is false
// for unknown codes.
func UnitFromCompressed(code string) (ExerciseUnit, bool) {
	switch code {
	case "r":
		return UnitReps, true
	case "w":
		return UnitWeight, true
	case "p":
		return UnitWeightPlus, true
	case "t":
		return UnitTime, true
	case "d":
		return UnitDistance, true
	}
	return "", false
}

// UnitSystem is the user's weight unit preference.
type UnitSystem string

const (
	Metric   UnitSystem = "Kg"
	Imperial UnitSystem = "Lbs"
)
