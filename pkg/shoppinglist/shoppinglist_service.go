package shoppinglist

import (
	"Recipe-Book-Backend/domain"
	"Recipe-Book-Backend/entities"
	"Recipe-Book-Backend/pkg/recipe"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ShoppingListService interface {
		CreateList(ctx context.Context, req domain.CreateShoppingListRequest, userID string) (*entities.ShoppingList, error)
		GetLists(ctx context.Context, userID string) ([]*entities.ShoppingList, error)
		GetList(ctx context.Context, identity domain.Identity, listID string) (*entities.ShoppingList, error)
		DeleteList(ctx context.Context, identity domain.Identity, listID string) error
		AddRecipeIngredients(ctx context.Context, identity domain.Identity, listID string, req domain.AddRecipeToListRequest) (*entities.ShoppingList, error)
		UpdateItem(ctx context.Context, identity domain.Identity, listID, itemID string, req domain.UpdateShoppingItemRequest) (*entities.ShoppingListItem, error)
		DeleteItem(ctx context.Context, identity domain.Identity, listID, itemID string) error
	}

	shoppingListService struct {
		listRepository   ShoppingListRepository
		recipeRepository recipe.RecipeRepository
	}
)

func NewShoppingListService(listRepository ShoppingListRepository, recipeRepository recipe.RecipeRepository) ShoppingListService {
	return &shoppingListService{
		listRepository:   listRepository,
		recipeRepository: recipeRepository,
	}
}

func (s *shoppingListService) CreateList(ctx context.Context, req domain.CreateShoppingListRequest, userID string) (*entities.ShoppingList, error) {
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	list := &entities.ShoppingList{
		ID:     uuid.New(),
		UserID: ownerID,
		Name:   req.Name,
	}
	if err := s.listRepository.CreateList(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *shoppingListService) GetLists(ctx context.Context, userID string) ([]*entities.ShoppingList, error) {
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	return s.listRepository.GetLists(ctx, ownerID)
}

func (s *shoppingListService) GetList(ctx context.Context, identity domain.Identity, listID string) (*entities.ShoppingList, error) {
	return s.ownedList(ctx, identity, listID)
}

func (s *shoppingListService) DeleteList(ctx context.Context, identity domain.Identity, listID string) error {
	if _, err := s.ownedList(ctx, identity, listID); err != nil {
		return err
	}
	return s.listRepository.DeleteList(ctx, listID)
}

// AddRecipeIngredients appends a recipe's ingredients to the list, scaled to
// the requested servings when given, formatted as stored otherwise.
func (s *shoppingListService) AddRecipeIngredients(ctx context.Context, identity domain.Identity, listID string, req domain.AddRecipeToListRequest) (*entities.ShoppingList, error) {
	list, err := s.ownedList(ctx, identity, listID)
	if err != nil {
		return nil, err
	}

	r, err := s.recipeRepository.GetRecipeByID(ctx, req.RecipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	if err := recipe.CanView(identity, r); err != nil {
		return nil, err
	}

	var views []domain.IngredientView
	if req.Servings != nil {
		views, err = recipe.ScaledIngredients(r, *req.Servings)
	} else {
		views, err = recipe.FormatIngredients(r.Ingredients)
	}
	if err != nil {
		return nil, err
	}

	items := make([]*entities.ShoppingListItem, 0, len(views))
	for _, v := range views {
		items = append(items, &entities.ShoppingListItem{
			ID:             uuid.New(),
			ShoppingListID: list.ID,
			FoodName:       v.FoodName,
			Amount:         v.Amount,
			Unit:           v.Unit,
			Notes:          v.Notes,
		})
	}
	if err := s.listRepository.AddItems(ctx, items); err != nil {
		return nil, err
	}

	return s.listRepository.GetListByID(ctx, listID)
}

func (s *shoppingListService) UpdateItem(ctx context.Context, identity domain.Identity, listID, itemID string, req domain.UpdateShoppingItemRequest) (*entities.ShoppingListItem, error) {
	if _, err := s.ownedList(ctx, identity, listID); err != nil {
		return nil, err
	}

	item, err := s.listRepository.GetItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrShoppingItemNotFound
		}
		return nil, err
	}
	if item.ShoppingListID.String() != listID {
		return nil, domain.ErrShoppingItemNotFound
	}

	if req.FoodName != nil {
		item.FoodName = *req.FoodName
	}
	if req.Amount != nil {
		item.Amount = *req.Amount
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.Notes != nil {
		item.Notes = *req.Notes
	}
	if req.Checked != nil {
		item.Checked = *req.Checked
	}

	if err := s.listRepository.UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *shoppingListService) DeleteItem(ctx context.Context, identity domain.Identity, listID, itemID string) error {
	if _, err := s.ownedList(ctx, identity, listID); err != nil {
		return err
	}

	item, err := s.listRepository.GetItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrShoppingItemNotFound
		}
		return err
	}
	if item.ShoppingListID.String() != listID {
		return domain.ErrShoppingItemNotFound
	}

	return s.listRepository.DeleteItem(ctx, itemID)
}

func (s *shoppingListService) ownedList(ctx context.Context, identity domain.Identity, listID string) (*entities.ShoppingList, error) {
	list, err := s.listRepository.GetListByID(ctx, listID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrShoppingListNotFound
		}
		return nil, err
	}
	if !identity.IsAuthenticated || list.UserID != identity.UserID {
		return nil, domain.ErrUserNotAllowed
	}
	return list, nil
}
