package planner

import (
	"slices"
	"strings"
	"unicode"

	"lg/fitplan-go-api/internal/catalog"
)

// MatchPolicy decides how a restriction is compared against a meal's name
// and tags.
type MatchPolicy int

const (
	// MatchSubstring excludes a meal when the restriction appears anywhere in
	// its lower-cased name and tags, so "egg" also excludes "eggplant".
	MatchSubstring MatchPolicy = iota
	// MatchToken excludes a meal only when the restriction's words appear as
	// whole consecutive words.
	MatchToken
)

// ParseMatchPolicy accepts "substring" (or "") and "token".
func ParseMatchPolicy(s string) (MatchPolicy, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "substring":
		return MatchSubstring, true
	case "token":
		return MatchToken, true
	}
	return MatchSubstring, false
}

func (p MatchPolicy) String() string {
	if p == MatchToken {
		return "token"
	}
	return "substring"
}

// FilterMeals keeps the meals tagged with diet and drops any that match one
// of the restrictions under policy. Catalog order is preserved and the result
// may be empty. Restrictions are normalised the same way ParseRestrictions
// does, so raw user input is accepted.
func FilterMeals(meals []catalog.Meal, diet Diet, restrictions []string, policy MatchPolicy) []catalog.Meal {
	restrictions = normalizeRestrictions(restrictions)
	out := make([]catalog.Meal, 0, len(meals))
	for _, m := range meals {
		if !m.HasTag(string(diet)) {
			continue
		}
		if restricted(m, restrictions, policy) {
			continue
		}
		out = append(out, m)
	}
	return out
}

func restricted(m catalog.Meal, restrictions []string, policy MatchPolicy) bool {
	if len(restrictions) == 0 {
		return false
	}
	haystack := strings.ToLower(m.Name + " " + strings.Join(m.Tags, " "))
	var words []string
	if policy == MatchToken {
		words = splitWords(haystack)
	}
	for _, r := range restrictions {
		switch policy {
		case MatchToken:
			if containsRun(words, splitWords(r)) {
				return true
			}
		default:
			if strings.Contains(haystack, r) {
				return true
			}
		}
	}
	return false
}

func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// containsRun reports whether needle occurs as a consecutive run in words.
func containsRun(words, needle []string) bool {
	if len(needle) == 0 {
		return false
	}
	for i := 0; i+len(needle) <= len(words); i++ {
		if slices.Equal(words[i:i+len(needle)], needle) {
			return true
		}
	}
	return false
}
