package domain

import "errors"

var (
	MessageSuccessGetShoppingLists  = "success get shopping lists"
	MessageSuccessSaveShoppingList  = "shopping list saved successfully"
	MessageSuccessDeleteShoppingLst = "shopping list deleted successfully"
	MessageSuccessAddRecipeItems    = "recipe ingredients added to shopping list"
	MessageSuccessUpdateItem        = "shopping list item updated successfully"
	MessageSuccessDeleteItem        = "shopping list item deleted successfully"

	MessageFailedGetShoppingLists  = "failed to get shopping lists"
	MessageFailedSaveShoppingList  = "failed to save shopping list"
	MessageFailedDeleteShoppingLst = "failed to delete shopping list"
	MessageFailedAddRecipeItems    = "failed to add recipe ingredients"
	MessageFailedUpdateItem        = "failed to update shopping list item"
	MessageFailedDeleteItem        = "failed to delete shopping list item"

	ErrShoppingListNotFound = errors.New("shopping list not found")
	ErrShoppingItemNotFound = errors.New("shopping list item not found")
)

type (
	CreateShoppingListRequest struct {
		Name string `json:"name" validate:"required,max=255"`
	}

	AddRecipeToListRequest struct {
		RecipeID string  `json:"recipe_id" validate:"required,uuid"`
		Servings *string `json:"servings"`
	}

	UpdateShoppingItemRequest struct {
		FoodName *string `json:"food_name,omitempty"`
		Amount   *string `json:"amount,omitempty"`
		Unit     *string `json:"unit,omitempty"`
		Notes    *string `json:"notes,omitempty"`
		Checked  *bool   `json:"checked,omitempty"`
	}
)
