package planner_test

import (
	"errors"
	"math"
	"slices"
	"testing"

	"lg/fitplan-go-api/internal/planner"
)

func TestValidate_ReferenceProfile(t *testing.T) {
	if err := referenceProfile().Validate(); err != nil {
		t.Fatalf("expected valid profile, got %v", err)
	}
}

// TestValidate_InvalidFields breaks one field at a time on an otherwise
// valid profile and checks which field is reported.
func TestValidate_InvalidFields(t *testing.T) {
	cases := []struct {
		name      string
		mutFn     func(p *planner.Profile)
		wantField string
	}{
		{"unknown sex", func(p *planner.Profile) { p.Sex = "x" }, "sex"},
		{"zero age", func(p *planner.Profile) { p.Age = 0 }, "age"},
		{"implausible age", func(p *planner.Profile) { p.Age = 200 }, "age"},
		{"negative height", func(p *planner.Profile) { p.HeightCM = -170 }, "height_cm"},
		{"NaN weight", func(p *planner.Profile) { p.WeightKG = math.NaN() }, "weight_kg"},
		{"zero target weight", func(p *planner.Profile) { p.TargetWeightKG = 0 }, "target_weight_kg"},
		{"weeks below one", func(p *planner.Profile) { p.Weeks = 0.5 }, "weeks"},
		{"infinite weeks", func(p *planner.Profile) { p.Weeks = math.Inf(1) }, "weeks"},
		{"unknown goal", func(p *planner.Profile) { p.Goal = "bulk" }, "goal"},
		{"zero meals", func(p *planner.Profile) { p.MealsPerDay = 0 }, "meals_per_day"},
		{"six meals", func(p *planner.Profile) { p.MealsPerDay = 6 }, "meals_per_day"},
		{"unknown diet", func(p *planner.Profile) { p.Diet = "carnivore" }, "diet"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := referenceProfile()
			tc.mutFn(&p)
			err := p.Validate()
			if !errors.Is(err, planner.ErrInvalidProfile) {
				t.Fatalf("expected ErrInvalidProfile, got %v", err)
			}
			var pe *planner.ProfileError
			if !errors.As(err, &pe) || pe.Field != tc.wantField {
				t.Errorf("expected field %q, got %v", tc.wantField, err)
			}
		})
	}
}

func TestValidate_UnknownActivityLevel(t *testing.T) {
	p := referenceProfile()
	p.Activity = "couch"
	err := p.Validate()
	if !errors.Is(err, planner.ErrUnknownActivityLevel) {
		t.Fatalf("expected ErrUnknownActivityLevel, got %v", err)
	}
	if errors.Is(err, planner.ErrInvalidProfile) {
		t.Error("unknown activity should not also be reported as ErrInvalidProfile")
	}
}

func TestParseRestrictions(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{"Egg", []string{"egg"}},
		{" nuts ,  , DAIRY,", []string{"nuts", "dairy"}},
		{"peanut butter, Shellfish", []string{"peanut butter", "shellfish"}},
	}
	for _, tc := range cases {
		if got := planner.ParseRestrictions(tc.in); !slices.Equal(got, tc.want) {
			t.Errorf("ParseRestrictions(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
