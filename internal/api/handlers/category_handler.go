package handlers

import (
	"Recipe-Book-Backend/domain"
	"Recipe-Book-Backend/internal/api/presenters"
	"Recipe-Book-Backend/internal/middleware"
	"Recipe-Book-Backend/pkg/category"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CategoryHandler interface {
		GetOverview(c *fiber.Ctx) error
		CreateCategory(c *fiber.Ctx) error
		GetCategoryRecipes(c *fiber.Ctx) error
	}

	categoryHandler struct {
		categoryService category.CategoryService
		validator       *validator.Validate
	}
)

func NewCategoryHandler(categoryService category.CategoryService, validator *validator.Validate) CategoryHandler {
	return &categoryHandler{
		categoryService: categoryService,
		validator:       validator,
	}
}

func (h *categoryHandler) GetOverview(c *fiber.Ctx) error {
	identity := middleware.IdentityFromLocals(c)

	res, err := h.categoryService.GetOverview(c.Context(), identity)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetCategories, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCategories)
}

func (h *categoryHandler) CreateCategory(c *fiber.Ctx) error {
	req := new(domain.CreateCategoryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCategory, err)
	}

	res, err := h.categoryService.CreateCategory(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedCreateCategory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateCategory)
}

func (h *categoryHandler) GetCategoryRecipes(c *fiber.Ctx) error {
	identity := middleware.IdentityFromLocals(c)
	title := c.Params("title")
	page, limit := pagination(c)

	recipes, count, err := h.categoryService.GetCategoryRecipes(c.Context(), identity, title, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetCategories, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"category":   title,
		"recipes":    recipes,
		"pagination": paginationMap(page, limit, count),
	}, fiber.StatusOK, domain.MessageSuccessGetCategories)
}
