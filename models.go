package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"lg/fitplan-go-api/internal/planner"
)

// number is a float64 that also accepts numeric strings in JSON, since form
// inputs arrive as text. null and "" decode to zero and are left for profile
// validation to reject.
type number float64

func (n *number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = 0
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*n = 0
			return nil
		}
		b = []byte(s)
	}
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("not a number: %s", b)
	}
	*n = number(v)
	return nil
}

/* ─── Request / Response types ───────────────────────────────────────── */

// planRequest is the request body for POST /api/plan and /api/plan/export.
// Restrictions is the raw comma-separated text from the form.
type planRequest struct {
	Sex            string `json:"sex"`
	Age            number `json:"age"`
	HeightCM       number `json:"height_cm"`
	WeightKG       number `json:"weight_kg"`
	Activity       string `json:"activity"`
	TargetWeightKG number `json:"target_weight_kg"`
	Weeks          number `json:"weeks"`
	Goal           string `json:"goal"`
	MealsPerDay    number `json:"meals_per_day"`
	Diet           string `json:"diet"`
	Restrictions   string `json:"restrictions"`
}

// toProfile coerces the request into a planner.Profile. Integer fields must
// hold whole numbers; everything else is checked by Profile.Validate.
func (r planRequest) toProfile() (planner.Profile, error) {
	age, err := wholeNumber("age", r.Age)
	if err != nil {
		return planner.Profile{}, err
	}
	meals, err := wholeNumber("meals_per_day", r.MealsPerDay)
	if err != nil {
		return planner.Profile{}, err
	}
	return planner.Profile{
		Sex:            planner.Sex(strings.ToLower(strings.TrimSpace(r.Sex))),
		Age:            age,
		HeightCM:       float64(r.HeightCM),
		WeightKG:       float64(r.WeightKG),
		Activity:       planner.ActivityLevel(strings.TrimSpace(r.Activity)),
		TargetWeightKG: float64(r.TargetWeightKG),
		Weeks:          float64(r.Weeks),
		Goal:           planner.Goal(strings.TrimSpace(r.Goal)),
		MealsPerDay:    meals,
		Diet:           planner.Diet(strings.TrimSpace(r.Diet)),
		Restrictions:   planner.ParseRestrictions(r.Restrictions),
	}, nil
}

func wholeNumber(field string, n number) (int, error) {
	v := float64(n)
	if v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
		return 0, &planner.ProfileError{Field: field, Reason: "must be a whole number"}
	}
	return int(v), nil
}

// optionsResponse lists the accepted enum values for building the form.
type optionsResponse struct {
	Sexes            []planner.Sex    `json:"sexes"`
	ActivityLevels   []activityOption `json:"activity_levels"`
	Goals            []planner.Goal   `json:"goals"`
	Diets            []planner.Diet   `json:"diets"`
	MinMealsPerDay   int              `json:"min_meals_per_day"`
	MaxMealsPerDay   int              `json:"max_meals_per_day"`
	AllergenMatching string           `json:"allergen_matching"`
}

type activityOption struct {
	Key        planner.ActivityLevel `json:"key"`
	Multiplier float64               `json:"multiplier"`
}
