package recipe

import (
	"Recipe-Book-Backend/domain"
	"Recipe-Book-Backend/entities"
)

// CanView is the single-recipe access guard. Admins may see everything,
// public recipes are visible to anyone, and authors see their own recipes.
func CanView(identity domain.Identity, r *entities.Recipe) error {
	if identity.IsAdmin {
		return nil
	}
	if r.Public {
		return nil
	}
	if identity.IsAuthenticated && r.AuthorID != nil && *r.AuthorID == identity.UserID {
		return nil
	}
	return domain.ErrPermissionDenied
}

// IsComplete reports whether a recipe is ready for public listings.
// Recipes missing an introduction, directions or a servings value are drafts.
func IsComplete(r *entities.Recipe) bool {
	return r.Introduction != "" && r.Directions != "" && r.Servings != nil
}

// FilterVisible silently drops recipes the identity may not view. With
// filterIncomplete set, drafts are dropped as well; the owner's own listing
// keeps them.
func FilterVisible(identity domain.Identity, recipes []*entities.Recipe, filterIncomplete bool) []*entities.Recipe {
	visible := make([]*entities.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if CanView(identity, r) != nil {
			continue
		}
		if filterIncomplete && !IsComplete(r) {
			continue
		}
		visible = append(visible, r)
	}
	return visible
}
