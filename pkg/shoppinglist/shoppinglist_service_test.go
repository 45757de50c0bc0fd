package shoppinglist

import (
	"Recipe-Book-Backend/domain"
	"Recipe-Book-Backend/entities"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeListRepository struct {
	lists map[uuid.UUID]*entities.ShoppingList
	items map[uuid.UUID]*entities.ShoppingListItem
}

func newFakeListRepository() *fakeListRepository {
	return &fakeListRepository{
		lists: make(map[uuid.UUID]*entities.ShoppingList),
		items: make(map[uuid.UUID]*entities.ShoppingListItem),
	}
}

func (f *fakeListRepository) CreateList(_ context.Context, list *entities.ShoppingList) error {
	f.lists[list.ID] = list
	return nil
}

func (f *fakeListRepository) GetLists(_ context.Context, userID uuid.UUID) ([]*entities.ShoppingList, error) {
	var out []*entities.ShoppingList
	for _, l := range f.lists {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeListRepository) GetListByID(_ context.Context, id string) (*entities.ShoppingList, error) {
	listID, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	list, ok := f.lists[listID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	list.Items = list.Items[:0]
	for _, item := range f.items {
		if item.ShoppingListID == list.ID {
			list.Items = append(list.Items, item)
		}
	}
	return list, nil
}

func (f *fakeListRepository) DeleteList(_ context.Context, id string) error {
	listID, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	delete(f.lists, listID)
	return nil
}

func (f *fakeListRepository) AddItems(_ context.Context, items []*entities.ShoppingListItem) error {
	for _, item := range items {
		f.items[item.ID] = item
	}
	return nil
}

func (f *fakeListRepository) GetItemByID(_ context.Context, id string) (*entities.ShoppingListItem, error) {
	itemID, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	item, ok := f.items[itemID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (f *fakeListRepository) UpdateItem(_ context.Context, item *entities.ShoppingListItem) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeListRepository) DeleteItem(_ context.Context, id string) error {
	itemID, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	delete(f.items, itemID)
	return nil
}

type fakeRecipeRepository struct {
	recipes map[uuid.UUID]*entities.Recipe
}

func (f *fakeRecipeRepository) SaveRecipe(_ context.Context, recipe *entities.Recipe, _ []*entities.Ingredient, _ []*entities.Image) error {
	f.recipes[recipe.ID] = recipe
	return nil
}

func (f *fakeRecipeRepository) GetRecipeByID(_ context.Context, id string) (*entities.Recipe, error) {
	recipeID, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	r, ok := f.recipes[recipeID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r, nil
}

func (f *fakeRecipeRepository) GetRecipesByIDs(_ context.Context, ids []uuid.UUID) ([]*entities.Recipe, error) {
	var out []*entities.Recipe
	for _, id := range ids {
		if r, ok := f.recipes[id]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRecipeRepository) GetCategoriesByIDs(_ context.Context, _ []uuid.UUID) ([]*entities.Category, error) {
	return nil, nil
}

func (f *fakeRecipeRepository) GetRecipes(_ context.Context, _ domain.Identity, _ bool, _, _ int) ([]*entities.Recipe, int64, error) {
	return nil, 0, nil
}

func (f *fakeRecipeRepository) GetRecipesByAuthor(_ context.Context, _ string) ([]*entities.Recipe, error) {
	return nil, nil
}

func (f *fakeRecipeRepository) ListAll(_ context.Context) ([]*entities.Recipe, error) {
	return nil, nil
}

func (f *fakeRecipeRepository) DeleteRecipe(_ context.Context, _ string) error { return nil }

func (f *fakeRecipeRepository) AddImage(_ context.Context, _ *entities.Image) error { return nil }

func strptr(s string) *string { return &s }

func testBreadRecipe(authorID uuid.UUID) *entities.Recipe {
	return &entities.Recipe{
		ID:       uuid.New(),
		Title:    "Bread",
		Servings: strptr("4"),
		Public:   true,
		AuthorID: &authorID,
		Ingredients: []*entities.Ingredient{
			{
				ID:     uuid.New(),
				Amount: "500.000",
				Unit:   "g",
				Food:   &entities.Food{ID: uuid.New(), Name: "Flour"},
			},
			{
				ID:     uuid.New(),
				Amount: "1.000",
				Unit:   "tsp",
				Food:   &entities.Food{ID: uuid.New(), Name: "Salt"},
			},
		},
	}
}

func testService(t *testing.T) (ShoppingListService, *fakeListRepository, *fakeRecipeRepository) {
	t.Helper()
	listRepo := newFakeListRepository()
	recipeRepo := &fakeRecipeRepository{recipes: make(map[uuid.UUID]*entities.Recipe)}
	return NewShoppingListService(listRepo, recipeRepo), listRepo, recipeRepo
}

func TestCreateAndGetList(t *testing.T) {
	service, _, _ := testService(t)
	ownerID := uuid.New()
	owner := domain.Identity{IsAuthenticated: true, UserID: ownerID}

	list, err := service.CreateList(context.Background(), domain.CreateShoppingListRequest{Name: "Weekly"}, ownerID.String())
	require.NoError(t, err)
	assert.Equal(t, "Weekly", list.Name)
	assert.Equal(t, ownerID, list.UserID)

	got, err := service.GetList(context.Background(), owner, list.ID.String())
	require.NoError(t, err)
	assert.Equal(t, list.ID, got.ID)
}

func TestGetListRejectsOtherUsers(t *testing.T) {
	service, _, _ := testService(t)
	ownerID := uuid.New()

	list, err := service.CreateList(context.Background(), domain.CreateShoppingListRequest{Name: "Weekly"}, ownerID.String())
	require.NoError(t, err)

	stranger := domain.Identity{IsAuthenticated: true, UserID: uuid.New()}
	_, err = service.GetList(context.Background(), stranger, list.ID.String())
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)

	_, err = service.GetList(context.Background(), domain.Identity{}, list.ID.String())
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)
}

func TestGetListNotFound(t *testing.T) {
	service, _, _ := testService(t)
	identity := domain.Identity{IsAuthenticated: true, UserID: uuid.New()}

	_, err := service.GetList(context.Background(), identity, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrShoppingListNotFound)
}

func TestAddRecipeIngredients(t *testing.T) {
	service, _, recipeRepo := testService(t)
	ownerID := uuid.New()
	owner := domain.Identity{IsAuthenticated: true, UserID: ownerID}

	r := testBreadRecipe(uuid.New())
	recipeRepo.recipes[r.ID] = r

	list, err := service.CreateList(context.Background(), domain.CreateShoppingListRequest{Name: "Baking"}, ownerID.String())
	require.NoError(t, err)

	got, err := service.AddRecipeIngredients(context.Background(), owner, list.ID.String(), domain.AddRecipeToListRequest{
		RecipeID: r.ID.String(),
	})
	require.NoError(t, err)
	require.Len(t, got.Items, 2)

	byFood := make(map[string]*entities.ShoppingListItem)
	for _, item := range got.Items {
		byFood[item.FoodName] = item
	}
	require.Contains(t, byFood, "Flour")
	assert.Equal(t, "500", byFood["Flour"].Amount)
	assert.Equal(t, "g", byFood["Flour"].Unit)
	require.Contains(t, byFood, "Salt")
	assert.Equal(t, "1", byFood["Salt"].Amount)
}

func TestAddRecipeIngredientsScaled(t *testing.T) {
	service, _, recipeRepo := testService(t)
	ownerID := uuid.New()
	owner := domain.Identity{IsAuthenticated: true, UserID: ownerID}

	r := testBreadRecipe(uuid.New())
	recipeRepo.recipes[r.ID] = r

	list, err := service.CreateList(context.Background(), domain.CreateShoppingListRequest{Name: "Baking"}, ownerID.String())
	require.NoError(t, err)

	got, err := service.AddRecipeIngredients(context.Background(), owner, list.ID.String(), domain.AddRecipeToListRequest{
		RecipeID: r.ID.String(),
		Servings: strptr("2"),
	})
	require.NoError(t, err)
	require.Len(t, got.Items, 2)

	byFood := make(map[string]string)
	for _, item := range got.Items {
		byFood[item.FoodName] = item.Amount
	}
	assert.Equal(t, "250", byFood["Flour"])
	assert.Equal(t, "1/2", byFood["Salt"])
}

func TestAddRecipeIngredientsPermission(t *testing.T) {
	service, _, recipeRepo := testService(t)
	ownerID := uuid.New()
	owner := domain.Identity{IsAuthenticated: true, UserID: ownerID}

	r := testBreadRecipe(uuid.New())
	r.Public = false
	recipeRepo.recipes[r.ID] = r

	list, err := service.CreateList(context.Background(), domain.CreateShoppingListRequest{Name: "Baking"}, ownerID.String())
	require.NoError(t, err)

	_, err = service.AddRecipeIngredients(context.Background(), owner, list.ID.String(), domain.AddRecipeToListRequest{
		RecipeID: r.ID.String(),
	})
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	_, err = service.AddRecipeIngredients(context.Background(), owner, list.ID.String(), domain.AddRecipeToListRequest{
		RecipeID: uuid.NewString(),
	})
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestAddRecipeIngredientsUnknownServings(t *testing.T) {
	service, _, recipeRepo := testService(t)
	ownerID := uuid.New()
	owner := domain.Identity{IsAuthenticated: true, UserID: ownerID}

	r := testBreadRecipe(uuid.New())
	r.Servings = nil
	recipeRepo.recipes[r.ID] = r

	list, err := service.CreateList(context.Background(), domain.CreateShoppingListRequest{Name: "Baking"}, ownerID.String())
	require.NoError(t, err)

	_, err = service.AddRecipeIngredients(context.Background(), owner, list.ID.String(), domain.AddRecipeToListRequest{
		RecipeID: r.ID.String(),
		Servings: strptr("2"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidServings)

	// without a target the stored amounts go in as they are
	got, err := service.AddRecipeIngredients(context.Background(), owner, list.ID.String(), domain.AddRecipeToListRequest{
		RecipeID: r.ID.String(),
	})
	require.NoError(t, err)
	assert.Len(t, got.Items, 2)
}

func TestUpdateItem(t *testing.T) {
	service, listRepo, _ := testService(t)
	ownerID := uuid.New()
	owner := domain.Identity{IsAuthenticated: true, UserID: ownerID}

	list, err := service.CreateList(context.Background(), domain.CreateShoppingListRequest{Name: "Weekly"}, ownerID.String())
	require.NoError(t, err)

	item := &entities.ShoppingListItem{
		ID:             uuid.New(),
		ShoppingListID: list.ID,
		FoodName:       "Milk",
		Amount:         "1",
		Unit:           "l",
	}
	require.NoError(t, listRepo.AddItems(context.Background(), []*entities.ShoppingListItem{item}))

	checked := true
	updated, err := service.UpdateItem(context.Background(), owner, list.ID.String(), item.ID.String(), domain.UpdateShoppingItemRequest{
		Amount:  strptr("2"),
		Checked: &checked,
	})
	require.NoError(t, err)
	assert.Equal(t, "2", updated.Amount)
	assert.True(t, updated.Checked)
	assert.Equal(t, "Milk", updated.FoodName)
	assert.Equal(t, "l", updated.Unit)
}

func TestUpdateItemFromOtherList(t *testing.T) {
	service, listRepo, _ := testService(t)
	ownerID := uuid.New()
	owner := domain.Identity{IsAuthenticated: true, UserID: ownerID}

	list, err := service.CreateList(context.Background(), domain.CreateShoppingListRequest{Name: "Weekly"}, ownerID.String())
	require.NoError(t, err)
	other, err := service.CreateList(context.Background(), domain.CreateShoppingListRequest{Name: "Party"}, ownerID.String())
	require.NoError(t, err)

	item := &entities.ShoppingListItem{
		ID:             uuid.New(),
		ShoppingListID: other.ID,
		FoodName:       "Milk",
	}
	require.NoError(t, listRepo.AddItems(context.Background(), []*entities.ShoppingListItem{item}))

	_, err = service.UpdateItem(context.Background(), owner, list.ID.String(), item.ID.String(), domain.UpdateShoppingItemRequest{})
	assert.ErrorIs(t, err, domain.ErrShoppingItemNotFound)
}

func TestDeleteListAndItem(t *testing.T) {
	service, listRepo, _ := testService(t)
	ownerID := uuid.New()
	owner := domain.Identity{IsAuthenticated: true, UserID: ownerID}

	list, err := service.CreateList(context.Background(), domain.CreateShoppingListRequest{Name: "Weekly"}, ownerID.String())
	require.NoError(t, err)

	item := &entities.ShoppingListItem{
		ID:             uuid.New(),
		ShoppingListID: list.ID,
		FoodName:       "Milk",
	}
	require.NoError(t, listRepo.AddItems(context.Background(), []*entities.ShoppingListItem{item}))

	require.NoError(t, service.DeleteItem(context.Background(), owner, list.ID.String(), item.ID.String()))
	assert.ErrorIs(t, service.DeleteItem(context.Background(), owner, list.ID.String(), item.ID.String()), domain.ErrShoppingItemNotFound)

	require.NoError(t, service.DeleteList(context.Background(), owner, list.ID.String()))
	_, err = service.GetList(context.Background(), owner, list.ID.String())
	assert.ErrorIs(t, err, domain.ErrShoppingListNotFound)
}
