package models

// BuiltinSplits are the immutable program templates shipped with the app.
// Editing one goes through the create-as-copy path; they are never persisted.
var BuiltinSplits = []Split{pushPullLegs, upperLower, fullBody}

var pushPullLegs = Split{
	ID:          "PUSH_PULL_LEGS",
	Name:        "Push Pull Legs",
	Description: "Three day split geared towards those looking for growth in both size and strength",
	Days: []Day{
		{
			ID:          "ppl-push",
			Name:        "Push",
			Description: "Strength and hypertrophy centered chest, shoulders, and triceps workout",
			Color:       "#ff0000",
			Exercises: ExerciseGroups{
				{NewPlannedExercise("0", 6, 6, 6)},
				{NewPlannedExercise("1", 10, 10, 10)},
				{NewPlannedExercise("33", 12, 12, 12)},
				{NewPlannedExercise("31", 12, 12, 12)},
				{
					NewPlannedExercise("18", 15, 15, 15),
					NewPlannedExercise("24", 10, 10, 10),
				},
			},
		},
		{
			ID:          "ppl-pull",
			Name:        "Pull",
			Description: "Hypertrophy focused back and bicep workout with a focus on lats",
			Color:       "#0000ff",
			Exercises: ExerciseGroups{
				{NewPlannedExercise("52", 8, 8, 8)},
				{NewPlannedExercise("53", 12, 12, 12)},
				{NewPlannedExercise("80", 15, 15, 15)},
				{NewPlannedExercise("42", 12, 12, 12)},
				{NewPlannedExercise("40", 12, 12, 12)},
			},
		},
		{
			ID:          "ppl-legs",
			Name:        "Legs",
			Description: "Hypertrophy focused leg workout",
			Color:       "#ff00ff",
			Exercises: ExerciseGroups{
				{NewPlannedExercise("68", 8, 8, 8)},
				{NewPlannedExercise("58", 8, 8, 8)},
				{NewPlannedExercise("70", 12, 12, 12)},
				{NewPlannedExercise("63", 12, 12, 12)},
				{NewPlannedExercise("81", 15, 15, 15)},
			},
		},
	},
}

var upperLower = Split{
	ID:   "UPPER_LOWER",
	Name: "Upper Lower",
	Days: []Day{
		{
			ID:    "ul-upper-a",
			Name:  "Upper A",
			Color: "#ff8800",
			Exercises: ExerciseGroups{
				{NewPlannedExercise("1", 10, 10, 10)},
				{NewPlannedExercise("52", 10, 10)},
				{NewPlannedExercise("34", 12, 12, 12)},
				{NewPlannedExercise("53", 12, 12)},
				{NewPlannedExercise("44", 15, 15, 15)},
				{NewPlannedExercise("88", 15, 15, 15)},
			},
		},
		{
			ID:    "ul-lower-a",
			Name:  "Lower A",
			Color: "#00cc44",
			Exercises: ExerciseGroups{
				{NewPlannedExercise("68", 12, 12, 12)},
				{NewPlannedExercise("63", 15, 15, 15)},
				{NewPlannedExercise("70", 15, 15, 15)},
				{NewPlannedExercise("81", 20, 20)},
			},
		},
		{
			ID:    "ul-upper-b",
			Name:  "Upper B",
			Color: "#ff8800",
			Exercises: ExerciseGroups{
				{NewPlannedExercise("48", 10, 10, 10)},
				{NewPlannedExercise("76", 10, 10)},
				{NewPlannedExercise("25", 12, 12)},
				{NewPlannedExercise("38", 12, 12, 12)},
				{NewPlannedExercise("31", 15, 15, 15)},
			},
		},
		{
			ID:    "ul-lower-b",
			Name:  "Lower B",
			Color: "#00cc44",
			Exercises: ExerciseGroups{
				{NewPlannedExercise("58", 12, 12, 12)},
				{NewPlannedExercise("70", 15, 15, 15)},
				{NewPlannedExercise("63", 15, 15, 15)},
				{NewPlannedExercise("84", 20, 20)},
			},
		},
	},
}

var fullBody = Split{
	ID:   "FULL_BODY",
	Name: "Full Body",
	Days: []Day{
		{
			ID:    "fb-1",
			Name:  "Full Body 1",
			Color: "#0066ff",
			Exercises: ExerciseGroups{
				{NewPlannedExercise("0", 8, 8, 8)},
				{NewPlannedExercise("68", 10, 10, 10)},
				{NewPlannedExercise("52", 12, 12, 12)},
				{NewPlannedExercise("63", 12, 12, 12)},
				{NewPlannedExercise("42", 12, 12, 12)},
				{NewPlannedExercise("18", 15, 15, 15)},
			},
		},
		{
			ID:    "fb-2",
			Name:  "Full Body 2",
			Color: "#0066ff",
			Exercises: ExerciseGroups{
				{NewPlannedExercise("51", 10, 10, 10)},
				{NewPlannedExercise("58", 10, 10, 10)},
				{NewPlannedExercise("77", 10, 10, 10)},
				{NewPlannedExercise("90", 10, 10, 10)},
				{NewPlannedExercise("32", 12, 12, 12)},
				{NewPlannedExercise("18", 15, 15, 15)},
			},
		},
		{
			ID:    "fb-3",
			Name:  "Full Body 3",
			Color: "#0066ff",
			Exercises: ExerciseGroups{
				{NewPlannedExercise("66", 10, 10, 10)},
				{NewPlannedExercise("53", 12, 12, 12)},
				{NewPlannedExercise("63", 12, 12, 12)},
				{NewPlannedExercise("107", 10, 10, 10)},
				{NewPlannedExercise("40", 12, 12, 12)},
				{NewPlannedExercise("31", 12, 12, 12)},
			},
		},
	},
}
