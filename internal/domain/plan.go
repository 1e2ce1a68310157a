package domain

// WorkoutDay identifies one day program of the built-in training split.
type WorkoutDay string

const (
	DayUpperPush    WorkoutDay = "Day 1: Upper Body Push (Chest, Shoulders, Triceps)"
	DayLowerCore    WorkoutDay = "Day 2: Lower Body + Core"
	DayCircuit      WorkoutDay = "Day 3: Full-Body Circuit (Metabolic Conditioning)"
	DayUpperPull    WorkoutDay = "Day 4: Upper Body Pull (Back, Biceps)"
	DayStrengthHIIT WorkoutDay = "Day 5: Full-Body Strength + HIIT"
	DayRecovery     WorkoutDay = "Day 6 & 7: Active Recovery/Optional Light Cardio"
)

// WorkoutDays lists the day programs in plan order.
var WorkoutDays = []WorkoutDay{
	DayUpperPush,
	DayLowerCore,
	DayCircuit,
	DayUpperPull,
	DayStrengthHIIT,
	DayRecovery,
}

// planExercises maps each day program to the exercises that may be logged
// under it. Selection membership is validated server-side instead of trusting
// whatever the client sends.
var planExercises = map[WorkoutDay][]string{
	DayUpperPush: {
		"Barbell Bench Press",
		"Incline Dumbbell Press + Lateral Raises (Superset)",
		"Overhead Barbell Press",
		"Cable Tricep Pushdowns + Overhead Tricep Extension (Superset)",
		"Drop set of push-ups to failure + 10-min HIIT",
	},
	DayLowerCore: {
		"Barbell Squats",
		"Romanian Deadlifts + Walking Lunges (Superset)",
		"Leg Press (Drop Set on Final Set)",
		"Hanging Leg Raises + Cable Woodchoppers (Superset)",
		"Plank Hold",
	},
	DayCircuit: {
		"Circuit (4 Rounds, 60 sec rest between rounds)",
		"light cardio + stretching",
	},
	DayUpperPull: {
		"Deadlifts",
		"Pull-Ups + Face Pulls (Superset)",
		"Barbell Rows",
		"Dumbbell Hammer Curls + EZ Bar Curls (Superset)",
		"Drop set of bicep curls to failure + 10-min rowing machine",
	},
	DayStrengthHIIT: {
		"Clean and Press",
		"Front Squats + Pull-Ups (Superset)",
		"Bench Press",
		"HIIT Finisher",
	},
	DayRecovery: {
		"30-45 min brisk walk or light jog",
	},
}

// ExercisesForDay returns the allowed exercise list for a day program.
// The second return value is false for an unknown day.
func ExercisesForDay(day WorkoutDay) ([]string, bool) {
	exercises, ok := planExercises[day]
	return exercises, ok
}

// ValidPlanSelection reports whether the exercise belongs to the given day
// program.
func ValidPlanSelection(day WorkoutDay, exercise string) bool {
	exercises, ok := planExercises[day]
	if !ok {
		return false
	}
	for _, e := range exercises {
		if e == exercise {
			return true
		}
	}
	return false
}
