package handlers

import (
	"Recipe-Book-Backend/domain"
	"Recipe-Book-Backend/internal/api/presenters"
	"Recipe-Book-Backend/pkg/food"

	"github.com/gofiber/fiber/v2"
)

type (
	FoodHandler interface {
		GetFoods(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodService food.FoodService
	}
)

func NewFoodHandler(foodService food.FoodService) FoodHandler {
	return &foodHandler{foodService: foodService}
}

func (h *foodHandler) GetFoods(c *fiber.Ctx) error {
	res, err := h.foodService.GetFoods(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetFoods, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFoods)
}
