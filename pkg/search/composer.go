package search

import (
	"Recipe-Book-Backend/domain"
	"Recipe-Book-Backend/entities"
	"Recipe-Book-Backend/pkg/recipe"
	"sort"

	"github.com/google/uuid"
)

// MatchMode controls how the include-food filter combines multiple foods.
type MatchMode int

const (
	// MatchAny keeps recipes containing at least one of the listed foods.
	MatchAny MatchMode = iota
	// MatchAll keeps only recipes containing every listed food.
	MatchAll
)

type Filters struct {
	// TermMatches is the id set returned by the full-text collaborator;
	// nil means no term filter was requested.
	TermMatches     map[uuid.UUID]struct{}
	CategoryIDs     []uuid.UUID
	FoodIDs         []uuid.UUID
	ExcludedFoodIDs []uuid.UUID
	Mode            MatchMode
}

// Compose applies the search pipeline over an already materialized recipe
// universe: visibility, full-text matches, categories, included foods,
// excluded foods, then a deterministic title sort. Pure; safe to re-run for
// pagination.
func Compose(identity domain.Identity, recipes []*entities.Recipe, f Filters) []*entities.Recipe {
	results := recipe.FilterVisible(identity, recipes, false)

	if f.TermMatches != nil {
		kept := results[:0]
		for _, r := range results {
			if _, ok := f.TermMatches[r.ID]; ok {
				kept = append(kept, r)
			}
		}
		results = kept
	}

	if len(f.CategoryIDs) > 0 {
		kept := results[:0]
		for _, r := range results {
			if hasAnyCategory(r, f.CategoryIDs) {
				kept = append(kept, r)
			}
		}
		results = kept
	}

	if len(f.FoodIDs) > 0 {
		kept := results[:0]
		for _, r := range results {
			if matchesFoods(r, f.FoodIDs, f.Mode) {
				kept = append(kept, r)
			}
		}
		results = kept
	}

	if len(f.ExcludedFoodIDs) > 0 {
		kept := results[:0]
		for _, r := range results {
			if !containsAnyFood(r, f.ExcludedFoodIDs) {
				kept = append(kept, r)
			}
		}
		results = kept
	}

	// case-sensitive title order; ties keep input (creation) order
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Title < results[j].Title
	})
	return results
}

func hasAnyCategory(r *entities.Recipe, ids []uuid.UUID) bool {
	for _, c := range r.Categories {
		for _, id := range ids {
			if c.ID == id {
				return true
			}
		}
	}
	return false
}

func containsFood(r *entities.Recipe, id uuid.UUID) bool {
	for _, ing := range r.Ingredients {
		if ing.FoodID == id {
			return true
		}
	}
	return false
}

func containsAnyFood(r *entities.Recipe, ids []uuid.UUID) bool {
	for _, id := range ids {
		if containsFood(r, id) {
			return true
		}
	}
	return false
}

func matchesFoods(r *entities.Recipe, ids []uuid.UUID, mode MatchMode) bool {
	if mode == MatchAll {
		for _, id := range ids {
			if !containsFood(r, id) {
				return false
			}
		}
		return true
	}
	return containsAnyFood(r, ids)
}
