package catalog

import "github.com/2beens/undergroundgym/internal/workout"

// PredefinedExercises is the catalog inserted into an empty database, in
// catalog order. IDs are assigned on insert.
func PredefinedExercises() []workout.Exercise {
	return []workout.Exercise{
		{Name: "Bench Press", MuscleGroup: "Chest", Equipment: strPtr("Barbell")},
		{Name: "Incline Dumbbell Press", MuscleGroup: "Chest", Equipment: strPtr("Dumbbells")},
		{Name: "Dips", MuscleGroup: "Chest", Equipment: strPtr("Bodyweight")},
		{Name: "Push-ups", MuscleGroup: "Chest", Equipment: strPtr("Bodyweight")},
		{Name: "Chest Flyes", MuscleGroup: "Chest", Equipment: strPtr("Dumbbells")},
		{Name: "Cable Crossovers", MuscleGroup: "Chest", Equipment: strPtr("Cable")},
		{Name: "Decline Bench Press", MuscleGroup: "Chest", Equipment: strPtr("Barbell")},

		{Name: "Pull-ups", MuscleGroup: "Back", Equipment: strPtr("Bodyweight")},
		{Name: "Bent-over Row", MuscleGroup: "Back", Equipment: strPtr("Barbell")},
		{Name: "Lat Pulldown", MuscleGroup: "Back", Equipment: strPtr("Cable")},
		{Name: "Deadlift", MuscleGroup: "Back", Equipment: strPtr("Barbell")},
		{Name: "T-Bar Row", MuscleGroup: "Back", Equipment: strPtr("T-Bar")},
		{Name: "Cable Rows", MuscleGroup: "Back", Equipment: strPtr("Cable")},
		{Name: "Face Pulls", MuscleGroup: "Back", Equipment: strPtr("Cable")},

		{Name: "Overhead Press", MuscleGroup: "Shoulders", Equipment: strPtr("Barbell")},
		{Name: "Lateral Raises", MuscleGroup: "Shoulders", Equipment: strPtr("Dumbbells")},
		{Name: "Rear Delt Flyes", MuscleGroup: "Shoulders", Equipment: strPtr("Dumbbells")},
		{Name: "Arnold Press", MuscleGroup: "Shoulders", Equipment: strPtr("Dumbbells")},
		{Name: "Upright Rows", MuscleGroup: "Shoulders", Equipment: strPtr("Barbell")},
		{Name: "Front Raises", MuscleGroup: "Shoulders", Equipment: strPtr("Dumbbells")},
		{Name: "Shrugs", MuscleGroup: "Shoulders", Equipment: strPtr("Dumbbells")},

		{Name: "Bicep Curls", MuscleGroup: "Arms", Equipment: strPtr("Dumbbells")},
		{Name: "Tricep Dips", MuscleGroup: "Arms", Equipment: strPtr("Bodyweight")},
		{Name: "Hammer Curls", MuscleGroup: "Arms", Equipment: strPtr("Dumbbells")},
		{Name: "Tricep Extensions", MuscleGroup: "Arms", Equipment: strPtr("Dumbbells")},
		{Name: "Close-Grip Bench Press", MuscleGroup: "Arms", Equipment: strPtr("Barbell")},
		{Name: "Cable Curls", MuscleGroup: "Arms", Equipment: strPtr("Cable")},
		{Name: "Diamond Push-ups", MuscleGroup: "Arms", Equipment: strPtr("Bodyweight")},

		{Name: "Squats", MuscleGroup: "Legs", Equipment: strPtr("Barbell")},
		{Name: "Leg Press", MuscleGroup: "Legs", Equipment: strPtr("Machine")},
		{Name: "Lunges", MuscleGroup: "Legs", Equipment: strPtr("Dumbbells")},
		{Name: "Leg Curls", MuscleGroup: "Legs", Equipment: strPtr("Machine")},
		{Name: "Calf Raises", MuscleGroup: "Legs", Equipment: strPtr("Bodyweight")},
		{Name: "Romanian Deadlift", MuscleGroup: "Legs", Equipment: strPtr("Barbell")},
		{Name: "Bulgarian Split Squats", MuscleGroup: "Legs", Equipment: strPtr("Bodyweight")},

		{Name: "Plank", MuscleGroup: "Core", Equipment: strPtr("Bodyweight")},
		{Name: "Russian Twists", MuscleGroup: "Core", Equipment: strPtr("Bodyweight")},
		{Name: "Bicycle Crunches", MuscleGroup: "Core", Equipment: strPtr("Bodyweight")},
		{Name: "Mountain Climbers", MuscleGroup: "Core", Equipment: strPtr("Bodyweight")},
		{Name: "Dead Bug", MuscleGroup: "Core", Equipment: strPtr("Bodyweight")},
		{Name: "Hanging Leg Raises", MuscleGroup: "Core", Equipment: strPtr("Pull-up Bar")},
		{Name: "Ab Wheel Rollouts", MuscleGroup: "Core", Equipment: strPtr("Ab Wheel")},
	}
}

// Templates are the predefined split layouts, keyed by template name.
func Templates() map[string]workout.Template {
	return map[string]workout.Template{
		"push_pull_legs": {
			Name:        "Push/Pull/Legs (3-Day)",
			DaysPerWeek: 3,
			Days: []workout.Day{
				{DayNumber: 1, DayName: "Push Day", MuscleGroups: []string{"Chest", "Shoulders", "Arms"}},
				{DayNumber: 2, DayName: "Pull Day", MuscleGroups: []string{"Back", "Arms"}},
				{DayNumber: 3, DayName: "Leg Day", MuscleGroups: []string{"Legs", "Core"}},
			},
		},
		"upper_lower": {
			Name:        "Upper/Lower (4-Day)",
			DaysPerWeek: 4,
			Days: []workout.Day{
				{DayNumber: 1, DayName: "Upper Body 1", MuscleGroups: []string{"Chest", "Back", "Shoulders", "Arms"}},
				{DayNumber: 2, DayName: "Lower Body 1", MuscleGroups: []string{"Legs", "Core"}},
				{DayNumber: 3, DayName: "Upper Body 2", MuscleGroups: []string{"Chest", "Back", "Shoulders", "Arms"}},
				{DayNumber: 4, DayName: "Lower Body 2", MuscleGroups: []string{"Legs", "Core"}},
			},
		},
		"full_body": {
			Name:        "Full Body (3-Day)",
			DaysPerWeek: 3,
			Days: []workout.Day{
				{DayNumber: 1, DayName: "Full Body 1", MuscleGroups: []string{"Chest", "Back", "Legs"}},
				{DayNumber: 2, DayName: "Full Body 2", MuscleGroups: []string{"Shoulders", "Arms", "Core"}},
				{DayNumber: 3, DayName: "Full Body 3", MuscleGroups: []string{"Chest", "Back", "Legs"}},
			},
		},
	}
}

func strPtr(s string) *string {
	return &s
}
