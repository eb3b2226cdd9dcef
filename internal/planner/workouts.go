package planner

import "lg/fitplan-go-api/internal/catalog"

// Experience levels used as workout catalog tags.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// GeneralFitness is the catalog tag that the maintain goal maps to.
const GeneralFitness = "general_fitness"

// LevelForWeeks derives an experience level from the plan timeframe.
func LevelForWeeks(weeks float64) string {
	switch {
	case weeks <= 8:
		return LevelBeginner
	case weeks <= 20:
		return LevelIntermediate
	default:
		return LevelAdvanced
	}
}

// CatalogGoal maps a profile goal onto the workout catalog's goal tag.
func CatalogGoal(g Goal) string {
	if g == Maintain {
		return GeneralFitness
	}
	return string(g)
}

type workoutTier func(w catalog.Workout) bool

// workoutTiers returns the fallback order: goal and level, goal only, level
// only, then the whole catalog.
func workoutTiers(goal, level string) []workoutTier {
	return []workoutTier{
		func(w catalog.Workout) bool { return w.Goal == goal && w.Level == level },
		func(w catalog.Workout) bool { return w.Goal == goal },
		func(w catalog.Workout) bool { return w.Level == level },
		func(catalog.Workout) bool { return true },
	}
}

// SelectWorkouts returns the workouts matched by the first tier that matches
// anything, in catalog order. ok is false only when workouts is empty.
func SelectWorkouts(workouts []catalog.Workout, goal Goal, weeks float64) (selected []catalog.Workout, ok bool) {
	for _, match := range workoutTiers(CatalogGoal(goal), LevelForWeeks(weeks)) {
		for _, w := range workouts {
			if match(w) {
				selected = append(selected, w)
			}
		}
		if len(selected) > 0 {
			return selected, true
		}
	}
	return nil, false
}
