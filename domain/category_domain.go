package domain

import "errors"

var (
	MessageSuccessGetCategories   = "success get categories"
	MessageSuccessCreateCategory  = "category created successfully"
	MessageFailedGetCategories    = "failed to get categories"
	MessageFailedCreateCategory   = "failed to create category"
	MessageFailedCategoryNotFound = "category not found"

	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category title already exists")
)

type (
	CreateCategoryRequest struct {
		Title string `json:"title" validate:"required,max=255"`
	}

	CategoryOverview struct {
		ID           string         `json:"id"`
		Title        string         `json:"title"`
		RandomRecipe *RecipeSummary `json:"random_recipe,omitempty"`
	}
)
