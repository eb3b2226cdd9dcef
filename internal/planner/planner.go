package planner

import "lg/fitplan-go-api/internal/catalog"

// Result is everything derived from one profile.
type Result struct {
	Profile       Profile           `json:"profile"`
	Metrics       Metrics           `json:"metrics"`
	MealPlan      MealPlan          `json:"meal_plan"`
	Level         string            `json:"level"`
	Workouts      []catalog.Workout `json:"workouts"`
	WorkoutsFound bool              `json:"workouts_found"`
}

// Planner runs the full pipeline against a read-only catalog. It holds no
// mutable state and is safe for concurrent use.
type Planner struct {
	catalog *catalog.Catalog
	policy  MatchPolicy
}

// Option configures a Planner.
type Option func(*Planner)

// WithMatchPolicy sets how restrictions are matched. The default is
// MatchSubstring.
func WithMatchPolicy(p MatchPolicy) Option {
	return func(pl *Planner) { pl.policy = p }
}

// New returns a Planner over cat.
func New(cat *catalog.Catalog, opts ...Option) *Planner {
	p := &Planner{catalog: cat, policy: MatchSubstring}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Catalog returns the catalog the planner selects from.
func (p *Planner) Catalog() *catalog.Catalog { return p.catalog }

// Policy returns the restriction match policy in use.
func (p *Planner) Policy() MatchPolicy { return p.policy }

// Plan validates prof and computes its metrics, meal plan and workouts.
func (p *Planner) Plan(prof Profile) (*Result, error) {
	metrics, err := ComputeMetrics(prof)
	if err != nil {
		return nil, err
	}

	meals := p.FilterMeals(prof.Diet, prof.Restrictions)
	mealPlan, err := AssembleMeals(meals, metrics.TargetCalories, prof.MealsPerDay)
	if err != nil {
		return nil, err
	}

	workouts, found := SelectWorkouts(p.catalog.Workouts(), prof.Goal, prof.Weeks)
	if workouts == nil {
		workouts = []catalog.Workout{}
	}
	return &Result{
		Profile:       prof,
		Metrics:       metrics,
		MealPlan:      mealPlan,
		Level:         LevelForWeeks(prof.Weeks),
		Workouts:      workouts,
		WorkoutsFound: found,
	}, nil
}

// FilterMeals applies FilterMeals to the planner's catalog and policy.
func (p *Planner) FilterMeals(diet Diet, restrictions []string) []catalog.Meal {
	return FilterMeals(p.catalog.Meals(), diet, restrictions, p.policy)
}

// SelectWorkouts applies SelectWorkouts to the planner's catalog.
func (p *Planner) SelectWorkouts(goal Goal, weeks float64) ([]catalog.Workout, bool) {
	return SelectWorkouts(p.catalog.Workouts(), goal, weeks)
}
