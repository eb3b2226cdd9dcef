package planner

import (
	"fmt"
	"math"
	"slices"

	"lg/fitplan-go-api/internal/catalog"
)

// Totals sums calories and macros across a meal plan.
type Totals struct {
	Calories int     `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

// MealPlan is one day of meals picked from the filtered catalog.
type MealPlan struct {
	Meals         []catalog.Meal `json:"meals"`
	PerMealTarget float64        `json:"per_meal_target"`
	Totals        Totals         `json:"totals"`
}

// AssembleMeals picks mealsPerDay meals whose calories are closest to an
// equal share of totalCalories. Each pick is removed from a private copy of
// the pool, so no meal appears twice; ties go to the earliest remaining meal.
// A pool smaller than mealsPerDay is an *InsufficientCatalogError and no
// partial plan is returned.
func AssembleMeals(meals []catalog.Meal, totalCalories, mealsPerDay int) (MealPlan, error) {
	if mealsPerDay < MinMealsPerDay || mealsPerDay > MaxMealsPerDay {
		return MealPlan{}, invalid("meals_per_day",
			fmt.Sprintf("must be between %d and %d", MinMealsPerDay, MaxMealsPerDay))
	}
	if len(meals) < mealsPerDay {
		return MealPlan{}, &InsufficientCatalogError{Requested: mealsPerDay, Available: len(meals)}
	}

	perMeal := float64(totalCalories) / float64(mealsPerDay)
	pool := slices.Clone(meals)
	plan := MealPlan{
		Meals:         make([]catalog.Meal, 0, mealsPerDay),
		PerMealTarget: perMeal,
	}

	for n := 0; n < mealsPerDay; n++ {
		best := 0
		bestDiff := math.Abs(float64(pool[0].Calories) - perMeal)
		for i := 1; i < len(pool); i++ {
			if d := math.Abs(float64(pool[i].Calories) - perMeal); d < bestDiff {
				best, bestDiff = i, d
			}
		}

		m := pool[best]
		pool = slices.Delete(pool, best, best+1)
		plan.Meals = append(plan.Meals, m)

		plan.Totals.Calories += m.Calories
		plan.Totals.ProteinG += m.ProteinG
		plan.Totals.CarbsG += m.CarbsG
		plan.Totals.FatG += m.FatG
	}
	return plan, nil
}
