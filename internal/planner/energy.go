package planner

import (
	"fmt"
	"math"
)

// activityMultipliers maps activity levels to their TDEE multiplier. This is
// the single source of truth for valid activity levels.
var activityMultipliers = map[ActivityLevel]float64{
	Sedentary:     1.2,
	LightlyActive: 1.375,
	Moderate:      1.55,
	Active:        1.725,
	VeryActive:    1.9,
}

// ActivityLevels lists the accepted activity levels from least to most active.
var ActivityLevels = []ActivityLevel{Sedentary, LightlyActive, Moderate, Active, VeryActive}

// Multiplier returns the TDEE multiplier for a, or false if a is unknown.
func Multiplier(a ActivityLevel) (float64, bool) {
	m, ok := activityMultipliers[a]
	return m, ok
}

// ComputeEnergy returns BMR (Mifflin-St Jeor) and TDEE, both unrounded.
// TDEE is derived from the unrounded BMR; round only for display.
func ComputeEnergy(sex Sex, weightKG, heightCM float64, age int, activity ActivityLevel) (bmr, tdee float64, err error) {
	mult, ok := activityMultipliers[activity]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownActivityLevel, activity)
	}

	bmr = 10*weightKG + 6.25*heightCM - 5*float64(age)
	switch sex {
	case Male:
		bmr += 5
	case Female:
		bmr -= 161
	default:
		return 0, 0, invalid("sex", fmt.Sprintf("must be %q or %q", Male, Female))
	}
	// Extreme but individually valid inputs can drive the estimate below
	// zero; no target derived from that is meaningful.
	if bmr <= 0 || math.IsNaN(bmr) {
		return 0, 0, invalid("profile", "gives a non-positive BMR estimate")
	}
	return bmr, bmr * mult, nil
}
