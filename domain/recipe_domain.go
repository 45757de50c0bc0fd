package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessSaveRecipe      = "recipe saved successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessUploadImage     = "image uploaded successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedSaveRecipe      = "failed to save recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedUploadImage     = "failed to upload image"

	ErrRecipeNotFound  = errors.New("recipe not found")
	ErrInvalidServings = errors.New("invalid servings")
	ErrInvalidAmount   = errors.New("ingredient amount must be positive")
	ErrOnePrimaryImage = errors.New("only one image may be the primary image")
)

type (
	IngredientRequest struct {
		Amount   string `json:"amount" validate:"required"`
		Unit     string `json:"unit"`
		FoodName string `json:"food_name" validate:"required"`
		Notes    string `json:"notes"`
	}

	ImageRequest struct {
		ObjectKey string `json:"object_key"`
		URL       string `json:"url"`
		IsPrimary bool   `json:"is_primary"`
	}

	SaveRecipeRequest struct {
		Title          string              `json:"title" validate:"required,max=255"`
		Introduction   string              `json:"introduction"`
		Directions     string              `json:"directions"`
		PrepTime       string              `json:"prep_time" validate:"max=100"`
		Servings       *string             `json:"servings"`
		Notes          string              `json:"notes"`
		Public         bool                `json:"public"`
		CategoryIDs    []string            `json:"category_ids" validate:"dive,uuid"`
		RelatedRecipes []string            `json:"related_recipe_ids" validate:"dive,uuid"`
		Ingredients    []IngredientRequest `json:"ingredients" validate:"dive"`
		Images         []ImageRequest      `json:"images" validate:"dive"`
	}

	RecipeSummary struct {
		ID           string    `json:"id"`
		Title        string    `json:"title"`
		Introduction string    `json:"introduction"`
		PrepTime     string    `json:"prep_time"`
		Servings     string    `json:"servings"`
		Public       bool      `json:"public"`
		Author       string    `json:"author,omitempty"`
		PrimaryImage string    `json:"primary_image,omitempty"`
		Categories   []string  `json:"categories,omitempty"`
		CreatedAt    time.Time `json:"created_at"`
		ModifiedAt   time.Time `json:"modified_at"`
	}

	IngredientView struct {
		Amount   string `json:"amount"`
		Unit     string `json:"unit"`
		FoodName string `json:"food_name"`
		Notes    string `json:"notes"`
	}

	ImageView struct {
		ID        string `json:"id"`
		URL       string `json:"url"`
		IsPrimary bool   `json:"is_primary"`
	}

	RecipeDetail struct {
		RecipeSummary
		Directions     string           `json:"directions"`
		Notes          string           `json:"notes"`
		Ingredients    []IngredientView `json:"ingredients"`
		Images         []ImageView      `json:"images"`
		RelatedRecipes []RecipeSummary  `json:"related_recipes,omitempty"`
	}
)
