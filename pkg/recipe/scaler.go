package recipe

import (
	"Recipe-Book-Backend/domain"
	"Recipe-Book-Backend/entities"
	"Recipe-Book-Backend/pkg/quantity"
)

// FormatIngredients renders a recipe's stored ingredients without rescaling.
// Output order follows input order.
func FormatIngredients(ingredients []*entities.Ingredient) ([]domain.IngredientView, error) {
	views := make([]domain.IngredientView, 0, len(ingredients))
	for _, ing := range ingredients {
		amount, err := quantity.Parse(ing.Amount)
		if err != nil {
			return nil, err
		}
		views = append(views, ingredientView(ing, amount))
	}
	return views, nil
}

// ScaledIngredients produces transient ingredient views rescaled from the
// recipe's stored servings to targetServings. Unit, food and notes are
// preserved; nothing is persisted. A recipe with unknown servings cannot be
// scaled.
func ScaledIngredients(r *entities.Recipe, targetServings string) ([]domain.IngredientView, error) {
	if r.Servings == nil {
		return nil, domain.ErrInvalidServings
	}
	original, err := quantity.Parse(*r.Servings)
	if err != nil {
		return nil, domain.ErrInvalidServings
	}
	target, err := quantity.Parse(targetServings)
	if err != nil {
		return nil, domain.ErrInvalidServings
	}

	views := make([]domain.IngredientView, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		amount, err := quantity.Parse(ing.Amount)
		if err != nil {
			return nil, err
		}
		scaled, err := quantity.Scale(amount, original, target)
		if err != nil {
			return nil, err
		}
		views = append(views, ingredientView(ing, scaled))
	}
	return views, nil
}

func ingredientView(ing *entities.Ingredient, amount quantity.Amount) domain.IngredientView {
	view := domain.IngredientView{
		Amount: amount.String(),
		Unit:   ing.Unit,
		Notes:  ing.Notes,
	}
	if ing.Food != nil {
		view.FoodName = ing.Food.Name
	}
	return view
}
