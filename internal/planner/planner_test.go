package planner_test

import (
	"errors"
	"reflect"
	"slices"
	"testing"

	"lg/fitplan-go-api/internal/catalog"
	"lg/fitplan-go-api/internal/planner"
)

func embeddedPlanner(t *testing.T, opts ...planner.Option) *planner.Planner {
	t.Helper()
	cat, err := catalog.LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded: %v", err)
	}
	return planner.New(cat, opts...)
}

func TestPlan_ReferenceProfile(t *testing.T) {
	p := embeddedPlanner(t)
	res, err := p.Plan(referenceProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := planner.Metrics{BMR: 1849, TDEE: 2866, TargetCalories: 1866, DailyChange: -1000}
	if res.Metrics != want {
		t.Errorf("metrics = %+v, want %+v", res.Metrics, want)
	}
	if len(res.MealPlan.Meals) != 3 {
		t.Fatalf("expected 3 meals, got %d", len(res.MealPlan.Meals))
	}
	for _, m := range res.MealPlan.Meals {
		if !m.HasTag(string(planner.Balanced)) {
			t.Errorf("meal %q is not tagged balanced", m.ID)
		}
	}
	if res.Level != planner.LevelIntermediate {
		t.Errorf("level = %q, want intermediate", res.Level)
	}
	if !res.WorkoutsFound || len(res.Workouts) == 0 {
		t.Fatal("expected workouts")
	}
	for _, w := range res.Workouts {
		if w.Goal != "fat_loss" || w.Level != planner.LevelIntermediate {
			t.Errorf("unexpected workout %q (%s/%s)", w.ID, w.Goal, w.Level)
		}
	}
}

func TestPlan_Deterministic(t *testing.T) {
	p := embeddedPlanner(t)
	prof := referenceProfile()
	prof.MealsPerDay = 5
	prof.Restrictions = []string{"nuts"}

	a, errA := p.Plan(prof)
	b, errB := p.Plan(prof)
	if errA != nil || errB != nil {
		t.Fatalf("unexpected errors: %v, %v", errA, errB)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("two runs over the same profile differ")
	}
}

func TestPlan_RestrictionsApplied(t *testing.T) {
	p := embeddedPlanner(t)
	prof := referenceProfile()
	prof.Diet = planner.Vegetarian
	prof.Restrictions = planner.ParseRestrictions("Egg, dairy")
	prof.MealsPerDay = 4

	res, err := p.Plan(prof)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, m := range res.MealPlan.Meals {
		if m.HasTag("egg") || m.HasTag("dairy") || m.ID == "eggplant-parm" {
			t.Errorf("restricted meal %q selected", m.ID)
		}
	}
}

// TestPlan_TokenPolicy checks the planner passes its policy to the filter:
// with token matching, "egg" no longer hides the eggplant dish.
func TestPlan_TokenPolicy(t *testing.T) {
	substr := embeddedPlanner(t)
	token := embeddedPlanner(t, planner.WithMatchPolicy(planner.MatchToken))

	has := func(meals []catalog.Meal, id string) bool {
		return slices.ContainsFunc(meals, func(m catalog.Meal) bool { return m.ID == id })
	}
	if has(substr.FilterMeals(planner.Vegetarian, []string{"egg"}), "eggplant-parm") {
		t.Error("substring policy should exclude eggplant-parm for egg")
	}
	if !has(token.FilterMeals(planner.Vegetarian, []string{"egg"}), "eggplant-parm") {
		t.Error("token policy should keep eggplant-parm for egg")
	}
	if token.Policy() != planner.MatchToken {
		t.Errorf("policy = %v", token.Policy())
	}
}

func TestPlan_InsufficientCatalog(t *testing.T) {
	cat, err := catalog.New([]catalog.Meal{
		{ID: "a", Name: "A", Calories: 400, Tags: []string{"veg"}},
		{ID: "b", Name: "B", Calories: 500, Tags: []string{"veg"}},
		{ID: "c", Name: "C", Calories: 600, Tags: []string{"veg"}},
		{ID: "d", Name: "D", Calories: 600, Tags: []string{"vegan"}},
	}, nil)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	prof := referenceProfile()
	prof.Diet = planner.Vegetarian
	prof.MealsPerDay = 5

	res, err := planner.New(cat).Plan(prof)
	if !errors.Is(err, planner.ErrInsufficientCatalog) {
		t.Fatalf("expected ErrInsufficientCatalog, got %v", err)
	}
	if res != nil {
		t.Error("expected no result alongside the error")
	}
}

func TestPlan_EmptyWorkoutCatalog(t *testing.T) {
	cat, err := catalog.New([]catalog.Meal{
		{ID: "a", Name: "A", Calories: 600, Tags: []string{"balanced"}},
		{ID: "b", Name: "B", Calories: 700, Tags: []string{"balanced"}},
		{ID: "c", Name: "C", Calories: 500, Tags: []string{"balanced"}},
	}, nil)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}

	res, err := planner.New(cat).Plan(referenceProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.WorkoutsFound || len(res.Workouts) != 0 {
		t.Errorf("expected no workouts, got %v", res.Workouts)
	}
}

func TestPlan_InvalidProfile(t *testing.T) {
	p := embeddedPlanner(t)
	prof := referenceProfile()
	prof.MealsPerDay = 9
	if _, err := p.Plan(prof); !errors.Is(err, planner.ErrInvalidProfile) {
		t.Errorf("expected ErrInvalidProfile, got %v", err)
	}

	prof = referenceProfile()
	prof.Activity = "very_active"
	if _, err := p.Plan(prof); !errors.Is(err, planner.ErrUnknownActivityLevel) {
		t.Errorf("expected ErrUnknownActivityLevel, got %v", err)
	}
}
