package models

// BodyPart is a coarse training region used for volume breakdowns.
type BodyPart string

const (
	Chest     BodyPart = "chest"
	Arms      BodyPart = "arms"
	Back      BodyPart = "back"
	Shoulders BodyPart = "shoulders"
	Legs      BodyPart = "legs"
	Calves    BodyPart = "calves"
	Abs       BodyPart = "abs"
)

// BodyParts lists all body parts in display order.
var BodyParts = []BodyPart{Chest, Arms, Back, Shoulders, Legs, Calves, Abs}

// EquipmentType classifies the equipment a catalog exercise uses.
type EquipmentType string

const (
	Barbell    EquipmentType = "barbell"
	Dumbbell   EquipmentType = "dumbbell"
	Machine    EquipmentType = "machine"
	Bodyweight EquipmentType = "bodyweight"
	Cable      EquipmentType = "cable"
)

// ExerciseType classifies the movement pattern.
type ExerciseType string

const (
	Compound  ExerciseType = "compound"
	Isolation ExerciseType = "isolation"
	Cardio    ExerciseType = "cardio"
)

// ListExercise is a catalog definition. Instances reference it by ListID.
type ListExercise struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Directions      []string `json:"directions"`
	Cues            []string `json:"cues"`
	Image           string   `json:"image"`
	VideoID         string   `json:"videoId"`
	BodyPart        string   `json:"bodyPart"`
	PrimaryGroup    string   `json:"primaryGroup"`
	SecondaryGroups []string `json:"secondaryGroups"`
	ExerciseType    string   `json:"exerciseType"`
	EquipmentType   string   `json:"equipmentType"`
	RepsLow         int      `json:"repsLow"`
	RepsHigh        int      `json:"repsHigh"`
}

// IsCustom reports whether the entry was created by the user (generated ids
// are full UUID strings; catalog ids are short literals).
func (l ListExercise) IsCustom() bool {
	return len(l.ID) == UUIDSize
}

// GroupByPrimaryGroup buckets catalog entries by primary muscle group.
func GroupByPrimaryGroup(list []ListExercise) map[string][]ListExercise {
	groups := make(map[string][]ListExercise)
	for _, e := range list {
		groups[e.PrimaryGroup] = append(groups[e.PrimaryGroup], e)
	}
	return groups
}
