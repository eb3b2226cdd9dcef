package planner_test

import (
	"slices"
	"testing"

	"lg/fitplan-go-api/internal/catalog"
	"lg/fitplan-go-api/internal/planner"
)

func filterFixture() []catalog.Meal {
	return []catalog.Meal{
		{ID: "omelette", Name: "Cheese Omelette", Calories: 350, Tags: []string{"veg", "balanced", "egg", "dairy"}},
		{ID: "eggplant", Name: "Grilled Eggplant", Calories: 280, Tags: []string{"veg", "vegan", "balanced"}},
		{ID: "dal", Name: "Lentil Dal", Calories: 450, Tags: []string{"veg", "vegan", "balanced"}},
		{ID: "chicken", Name: "Chicken Rice", Calories: 560, Tags: []string{"nonveg_global", "balanced"}},
		{ID: "pbj", Name: "Peanut Butter Toast", Calories: 400, Tags: []string{"veg", "vegan", "nuts"}},
	}
}

func mealIDs(meals []catalog.Meal) []string {
	ids := make([]string, len(meals))
	for i, m := range meals {
		ids[i] = m.ID
	}
	return ids
}

func TestFilterMeals(t *testing.T) {
	cases := []struct {
		name         string
		diet         planner.Diet
		restrictions []string
		policy       planner.MatchPolicy
		want         []string
	}{
		{"diet only", planner.Vegan, nil, planner.MatchSubstring, []string{"eggplant", "dal", "pbj"}},
		{"balanced", planner.Balanced, nil, planner.MatchSubstring, []string{"omelette", "eggplant", "dal", "chicken"}},
		{"nonveg_global", planner.NonVegGlobal, nil, planner.MatchSubstring, []string{"chicken"}},
		{"substring egg also drops eggplant", planner.Vegetarian, []string{"egg"}, planner.MatchSubstring, []string{"dal", "pbj"}},
		{"token egg keeps eggplant", planner.Vegetarian, []string{"egg"}, planner.MatchToken, []string{"eggplant", "dal", "pbj"}},
		{"case-insensitive name match", planner.Vegan, []string{"  LENTIL "}, planner.MatchSubstring, []string{"eggplant", "pbj"}},
		{"multi-word token", planner.Vegan, []string{"peanut butter"}, planner.MatchToken, []string{"eggplant", "dal"}},
		{"partial word is not a token", planner.Vegan, []string{"peanut but"}, planner.MatchToken, []string{"eggplant", "dal", "pbj"}},
		{"empty restrictions ignored", planner.Vegan, []string{"", " "}, planner.MatchSubstring, []string{"eggplant", "dal", "pbj"}},
		{"everything excluded", planner.HighProtein, nil, planner.MatchSubstring, []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := mealIDs(planner.FilterMeals(filterFixture(), tc.diet, tc.restrictions, tc.policy))
			if !slices.Equal(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

// TestFilterMeals_Idempotent re-filters a filtered result with the same
// inputs and expects the same meals back.
func TestFilterMeals_Idempotent(t *testing.T) {
	for _, policy := range []planner.MatchPolicy{planner.MatchSubstring, planner.MatchToken} {
		once := planner.FilterMeals(filterFixture(), planner.Balanced, []string{"dairy"}, policy)
		twice := planner.FilterMeals(once, planner.Balanced, []string{"dairy"}, policy)
		if !slices.Equal(mealIDs(once), mealIDs(twice)) {
			t.Errorf("%s: %v then %v", policy, mealIDs(once), mealIDs(twice))
		}
	}
}

func TestParseMatchPolicy(t *testing.T) {
	cases := []struct {
		in     string
		want   planner.MatchPolicy
		wantOK bool
	}{
		{"", planner.MatchSubstring, true},
		{"substring", planner.MatchSubstring, true},
		{" Token ", planner.MatchToken, true},
		{"regex", planner.MatchSubstring, false},
	}
	for _, tc := range cases {
		got, ok := planner.ParseMatchPolicy(tc.in)
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("ParseMatchPolicy(%q) = %v, %v; want %v, %v", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}
