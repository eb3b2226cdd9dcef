package planner

import "math"

// KcalPerKG is the energy equivalent of one kilogram of body mass.
const KcalPerKG = 7700

// dailyChangeCaps bounds |daily change| per goal. Goals without an entry
// (maintain, endurance) are held at zero change.
var dailyChangeCaps = map[Goal]float64{
	FatLoss:    1000,
	MuscleGain: 600,
}

// Metrics is the derived, display-ready energy summary for a profile.
type Metrics struct {
	BMR            int `json:"bmr"`
	TDEE           int `json:"tdee"`
	TargetCalories int `json:"target_calories"`
	DailyChange    int `json:"daily_change"`
}

// PlanCalories spreads the energy cost of the weight change over the
// timeframe, clamps the daily change to the goal's cap and applies it to
// tdee. A timeframe under half a day still counts as one day.
func PlanCalories(tdee, weightKG, targetKG, weeks float64, goal Goal) (target, dailyChange int) {
	days := math.Max(1, math.Round(weeks*7))
	daily := (targetKG - weightKG) * KcalPerKG / days

	limit := dailyChangeCaps[goal]
	daily = math.Max(-limit, math.Min(limit, daily))

	return int(math.Round(tdee + daily)), int(math.Round(daily))
}

// ComputeMetrics validates p and returns its BMR, TDEE, target calories and
// applied daily change.
func ComputeMetrics(p Profile) (Metrics, error) {
	if err := p.Validate(); err != nil {
		return Metrics{}, err
	}
	bmr, tdee, err := ComputeEnergy(p.Sex, p.WeightKG, p.HeightCM, p.Age, p.Activity)
	if err != nil {
		return Metrics{}, err
	}
	target, change := PlanCalories(tdee, p.WeightKG, p.TargetWeightKG, p.Weeks, p.Goal)
	return Metrics{
		BMR:            int(math.Round(bmr)),
		TDEE:           int(math.Round(tdee)),
		TargetCalories: target,
		DailyChange:    change,
	}, nil
}
