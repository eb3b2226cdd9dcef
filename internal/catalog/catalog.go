// Package catalog holds the static meal and workout tables the planner
// selects from. A Catalog is loaded once at startup (embedded YAML, a YAML
// directory, or Postgres) and is read-only afterwards.
package catalog

import (
	"fmt"
	"slices"
	"strings"
)

// Meal is one entry of the food catalog. Tags drive both diet-preference
// matching and allergen exclusion.
type Meal struct {
	ID       string   `json:"id"        yaml:"id"        db:"id"`
	Name     string   `json:"name"      yaml:"name"      db:"name"`
	Calories int      `json:"calories"  yaml:"calories"  db:"calories"`
	ProteinG float64  `json:"protein_g" yaml:"protein_g" db:"protein_g"`
	CarbsG   float64  `json:"carbs_g"   yaml:"carbs_g"   db:"carbs_g"`
	FatG     float64  `json:"fat_g"     yaml:"fat_g"     db:"fat_g"`
	Link     string   `json:"link"      yaml:"link"      db:"link"`
	Tags     []string `json:"tags"      yaml:"tags"      db:"tags"`
}

// HasTag reports whether tag is one of the meal's tags.
func (m Meal) HasTag(tag string) bool {
	return slices.Contains(m.Tags, tag)
}

// Block is a single step of a workout. Everything except Name is optional.
type Block struct {
	Name     string `json:"name"               yaml:"name"`
	Sets     string `json:"sets,omitempty"     yaml:"sets,omitempty"`
	Duration string `json:"duration,omitempty" yaml:"duration,omitempty"`
	Rest     string `json:"rest,omitempty"     yaml:"rest,omitempty"`
	Tip      string `json:"tip,omitempty"      yaml:"tip,omitempty"`
	Link     string `json:"link,omitempty"     yaml:"link,omitempty"`
}

// Workout is one plan of the exercise catalog, tagged with the goal and
// experience level it targets.
type Workout struct {
	ID     string  `json:"id"     yaml:"id"     db:"id"`
	Title  string  `json:"title"  yaml:"title"  db:"title"`
	Goal   string  `json:"goal"   yaml:"goal"   db:"goal"`
	Level  string  `json:"level"  yaml:"level"  db:"level"`
	Blocks []Block `json:"blocks" yaml:"blocks" db:"blocks"`
}

// Catalog is the loaded-once pair of meal and workout tables. The zero value
// is an empty catalog.
type Catalog struct {
	meals    []Meal
	workouts []Workout
}

// New validates meals and workouts and returns a Catalog holding private
// copies of both.
func New(meals []Meal, workouts []Workout) (*Catalog, error) {
	if err := validateMeals(meals); err != nil {
		return nil, err
	}
	if err := validateWorkouts(workouts); err != nil {
		return nil, err
	}
	c := &Catalog{
		meals:    make([]Meal, len(meals)),
		workouts: make([]Workout, len(workouts)),
	}
	for i, m := range meals {
		m.Tags = slices.Clone(m.Tags)
		c.meals[i] = m
	}
	for i, w := range workouts {
		w.Blocks = slices.Clone(w.Blocks)
		c.workouts[i] = w
	}
	return c, nil
}

// Meals returns the meal table in catalog order. The slice is a copy; tag
// slices are shared and must not be modified.
func (c *Catalog) Meals() []Meal {
	if c == nil {
		return nil
	}
	return slices.Clone(c.meals)
}

// Workouts returns the workout table in catalog order. The slice is a copy;
// block slices are shared and must not be modified.
func (c *Catalog) Workouts() []Workout {
	if c == nil {
		return nil
	}
	return slices.Clone(c.workouts)
}

func validateMeals(meals []Meal) error {
	seen := make(map[string]bool, len(meals))
	for i, m := range meals {
		if strings.TrimSpace(m.ID) == "" {
			return fmt.Errorf("meal %d: id is required", i)
		}
		if seen[m.ID] {
			return fmt.Errorf("meal %q: duplicate id", m.ID)
		}
		seen[m.ID] = true
		if strings.TrimSpace(m.Name) == "" {
			return fmt.Errorf("meal %q: name is required", m.ID)
		}
		if m.Calories < 0 || m.ProteinG < 0 || m.CarbsG < 0 || m.FatG < 0 {
			return fmt.Errorf("meal %q: calories and macros must not be negative", m.ID)
		}
	}
	return nil
}

func validateWorkouts(workouts []Workout) error {
	seen := make(map[string]bool, len(workouts))
	for i, w := range workouts {
		if strings.TrimSpace(w.ID) == "" {
			return fmt.Errorf("workout %d: id is required", i)
		}
		if seen[w.ID] {
			return fmt.Errorf("workout %q: duplicate id", w.ID)
		}
		seen[w.ID] = true
		if w.Goal == "" || w.Level == "" {
			return fmt.Errorf("workout %q: goal and level are required", w.ID)
		}
		for j, b := range w.Blocks {
			if strings.TrimSpace(b.Name) == "" {
				return fmt.Errorf("workout %q block %d: name is required", w.ID, j)
			}
		}
	}
	return nil
}
