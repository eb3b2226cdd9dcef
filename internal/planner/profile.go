// Package planner turns a biometric profile into calorie targets, a meal
// plan and a workout selection. Everything here is pure: no I/O, no shared
// mutable state, and identical inputs always give identical outputs.
package planner

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Sex selects the Mifflin-St Jeor constant.
type Sex string

const (
	Male   Sex = "male"
	Female Sex = "female"
)

// ActivityLevel is a key into the TDEE multiplier table.
type ActivityLevel string

const (
	Sedentary     ActivityLevel = "sedentary"
	LightlyActive ActivityLevel = "light"
	Moderate      ActivityLevel = "moderate"
	Active        ActivityLevel = "active"
	VeryActive    ActivityLevel = "very"
)

// Goal decides the daily change cap and the workout catalog tag.
type Goal string

const (
	FatLoss    Goal = "fat_loss"
	MuscleGain Goal = "muscle_gain"
	Maintain   Goal = "maintain"
	Endurance  Goal = "endurance"
)

// Goals lists the accepted goals in display order.
var Goals = []Goal{FatLoss, MuscleGain, Maintain, Endurance}

// Diet is a dietary preference; it must appear verbatim as a meal tag.
type Diet string

const (
	Balanced     Diet = "balanced"
	Vegetarian   Diet = "veg"
	Vegan        Diet = "vegan"
	NonVegGlobal Diet = "nonveg_global"
	HighProtein  Diet = "high_protein"
)

// Diets lists the accepted diet preferences in display order.
var Diets = []Diet{Balanced, Vegetarian, Vegan, NonVegGlobal, HighProtein}

// Bounds on meals per day.
const (
	MinMealsPerDay = 1
	MaxMealsPerDay = 5
)

// Profile is the full set of user inputs for one plan computation.
type Profile struct {
	Sex            Sex           `json:"sex"`
	Age            int           `json:"age"`
	HeightCM       float64       `json:"height_cm"`
	WeightKG       float64       `json:"weight_kg"`
	Activity       ActivityLevel `json:"activity"`
	TargetWeightKG float64       `json:"target_weight_kg"`
	Weeks          float64       `json:"weeks"`
	Goal           Goal          `json:"goal"`
	MealsPerDay    int           `json:"meals_per_day"`
	Diet           Diet          `json:"diet"`
	Restrictions   []string      `json:"restrictions"`
}

// Validate checks every field and returns the first problem found. Range
// failures are *ProfileError; an unknown activity key wraps
// ErrUnknownActivityLevel.
func (p Profile) Validate() error {
	if p.Sex != Male && p.Sex != Female {
		return invalid("sex", fmt.Sprintf("must be %q or %q", Male, Female))
	}
	if p.Age < 1 || p.Age > 130 {
		return invalid("age", "must be between 1 and 130")
	}
	if err := positive("height_cm", p.HeightCM); err != nil {
		return err
	}
	if err := positive("weight_kg", p.WeightKG); err != nil {
		return err
	}
	if err := positive("target_weight_kg", p.TargetWeightKG); err != nil {
		return err
	}
	if _, ok := activityMultipliers[p.Activity]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownActivityLevel, p.Activity)
	}
	if !finite(p.Weeks) || p.Weeks < 1 {
		return invalid("weeks", "must be at least 1")
	}
	if !slices.Contains(Goals, p.Goal) {
		return invalid("goal", fmt.Sprintf("unknown goal %q", p.Goal))
	}
	if p.MealsPerDay < MinMealsPerDay || p.MealsPerDay > MaxMealsPerDay {
		return invalid("meals_per_day", fmt.Sprintf("must be between %d and %d", MinMealsPerDay, MaxMealsPerDay))
	}
	if !slices.Contains(Diets, p.Diet) {
		return invalid("diet", fmt.Sprintf("unknown diet %q", p.Diet))
	}
	return nil
}

// ParseRestrictions splits a comma-separated restriction string into
// lower-cased, trimmed, non-empty entries.
func ParseRestrictions(s string) []string {
	return normalizeRestrictions(strings.Split(s, ","))
}

func normalizeRestrictions(in []string) []string {
	out := make([]string, 0, len(in))
	for _, r := range in {
		r = strings.ToLower(strings.TrimSpace(r))
		if r != "" {
			out = append(out, r)
		}
	}
	return out
}

func positive(field string, v float64) error {
	if !finite(v) || v <= 0 {
		return invalid(field, "must be a positive number")
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
