package handlers

import (
	"Recipe-Book-Backend/domain"
	"Recipe-Book-Backend/internal/api/presenters"
	"Recipe-Book-Backend/internal/middleware"
	"Recipe-Book-Backend/pkg/shoppinglist"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ShoppingListHandler interface {
		GetLists(c *fiber.Ctx) error
		CreateList(c *fiber.Ctx) error
		GetList(c *fiber.Ctx) error
		DeleteList(c *fiber.Ctx) error
		AddRecipeIngredients(c *fiber.Ctx) error
		UpdateItem(c *fiber.Ctx) error
		DeleteItem(c *fiber.Ctx) error
	}

	shoppingListHandler struct {
		shoppingListService shoppinglist.ShoppingListService
		validator           *validator.Validate
	}
)

func NewShoppingListHandler(shoppingListService shoppinglist.ShoppingListService, validator *validator.Validate) ShoppingListHandler {
	return &shoppingListHandler{
		shoppingListService: shoppingListService,
		validator:           validator,
	}
}

func (h *shoppingListHandler) GetLists(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.shoppingListService.GetLists(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetShoppingLists, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetShoppingLists)
}

func (h *shoppingListHandler) CreateList(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateShoppingListRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveShoppingList, err)
	}

	res, err := h.shoppingListService.CreateList(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedSaveShoppingList, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSaveShoppingList)
}

func (h *shoppingListHandler) GetList(c *fiber.Ctx) error {
	identity := middleware.IdentityFromLocals(c)
	listID := c.Params("id")

	res, err := h.shoppingListService.GetList(c.Context(), identity, listID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetShoppingLists, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetShoppingLists)
}

func (h *shoppingListHandler) DeleteList(c *fiber.Ctx) error {
	identity := middleware.IdentityFromLocals(c)
	listID := c.Params("id")

	if err := h.shoppingListService.DeleteList(c.Context(), identity, listID); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedDeleteShoppingLst, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteShoppingLst)
}

func (h *shoppingListHandler) AddRecipeIngredients(c *fiber.Ctx) error {
	identity := middleware.IdentityFromLocals(c)
	listID := c.Params("id")
	req := new(domain.AddRecipeToListRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddRecipeItems, err)
	}

	res, err := h.shoppingListService.AddRecipeIngredients(c.Context(), identity, listID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedAddRecipeItems, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAddRecipeItems)
}

func (h *shoppingListHandler) UpdateItem(c *fiber.Ctx) error {
	identity := middleware.IdentityFromLocals(c)
	listID := c.Params("id")
	itemID := c.Params("itemID")
	req := new(domain.UpdateShoppingItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.shoppingListService.UpdateItem(c.Context(), identity, listID, itemID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedUpdateItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateItem)
}

func (h *shoppingListHandler) DeleteItem(c *fiber.Ctx) error {
	identity := middleware.IdentityFromLocals(c)
	listID := c.Params("id")
	itemID := c.Params("itemID")

	if err := h.shoppingListService.DeleteItem(c.Context(), identity, listID, itemID); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedDeleteItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteItem)
}
