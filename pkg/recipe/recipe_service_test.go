package recipe

import (
	"Recipe-Book-Backend/domain"
	"Recipe-Book-Backend/entities"
	"context"
	"mime/multipart"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubRecipeRepository struct {
	recipes    map[uuid.UUID]*entities.Recipe
	categories map[uuid.UUID]*entities.Category
	byAuthor   []*entities.Recipe
}

func newStubRecipeRepository() *stubRecipeRepository {
	return &stubRecipeRepository{
		recipes:    make(map[uuid.UUID]*entities.Recipe),
		categories: make(map[uuid.UUID]*entities.Category),
	}
}

func (s *stubRecipeRepository) SaveRecipe(_ context.Context, r *entities.Recipe, ingredients []*entities.Ingredient, _ []*entities.Image) error {
	r.Ingredients = ingredients
	s.recipes[r.ID] = r
	return nil
}

func (s *stubRecipeRepository) GetRecipeByID(_ context.Context, id string) (*entities.Recipe, error) {
	recipeID, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	r, ok := s.recipes[recipeID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r, nil
}

func (s *stubRecipeRepository) GetRecipesByIDs(_ context.Context, ids []uuid.UUID) ([]*entities.Recipe, error) {
	var out []*entities.Recipe
	for _, id := range ids {
		if r, ok := s.recipes[id]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubRecipeRepository) GetCategoriesByIDs(_ context.Context, ids []uuid.UUID) ([]*entities.Category, error) {
	var out []*entities.Category
	for _, id := range ids {
		if c, ok := s.categories[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *stubRecipeRepository) GetRecipes(_ context.Context, _ domain.Identity, _ bool, _, _ int) ([]*entities.Recipe, int64, error) {
	return nil, 0, nil
}

func (s *stubRecipeRepository) GetRecipesByAuthor(_ context.Context, _ string) ([]*entities.Recipe, error) {
	return s.byAuthor, nil
}

func (s *stubRecipeRepository) ListAll(_ context.Context) ([]*entities.Recipe, error) {
	return nil, nil
}

func (s *stubRecipeRepository) DeleteRecipe(_ context.Context, _ string) error { return nil }

func (s *stubRecipeRepository) AddImage(_ context.Context, _ *entities.Image) error { return nil }

type stubFoodRepository struct{}

func (stubFoodRepository) GetOrCreateByName(_ context.Context, name string) (*entities.Food, error) {
	return &entities.Food{ID: uuid.New(), Name: name}, nil
}

func (stubFoodRepository) GetFoods(_ context.Context) ([]*entities.Food, error) { return nil, nil }

type stubStorage struct{}

func (stubStorage) UploadFile(_ context.Context, key string, _ *multipart.FileHeader) (string, error) {
	return "https://bucket.example.test/" + key, nil
}

func (stubStorage) DefaultImageURL() string {
	return "https://bucket.example.test/default_recipe.png"
}

func newTestRecipeService(t *testing.T) (RecipeService, *stubRecipeRepository) {
	t.Helper()
	repo := newStubRecipeRepository()
	return NewRecipeService(repo, stubFoodRepository{}, stubStorage{}), repo
}

func TestGetRecipesForUserHidesOthersDrafts(t *testing.T) {
	service, repo := newTestRecipeService(t)
	authorID := uuid.New()

	complete := newRecipe(&authorID, true)
	draft := newRecipe(&authorID, true)
	draft.Directions = ""
	repo.byAuthor = []*entities.Recipe{complete, draft}

	anonymous, err := service.GetRecipesForUser(context.Background(), domain.Identity{}, "anna")
	require.NoError(t, err)
	require.Len(t, anonymous, 1)
	assert.Equal(t, complete.ID.String(), anonymous[0].ID)

	other := domain.Identity{IsAuthenticated: true, UserID: uuid.New()}
	visible, err := service.GetRecipesForUser(context.Background(), other, "anna")
	require.NoError(t, err)
	assert.Len(t, visible, 1)

	author := domain.Identity{IsAuthenticated: true, UserID: authorID}
	own, err := service.GetRecipesForUser(context.Background(), author, "anna")
	require.NoError(t, err)
	assert.Len(t, own, 2)

	admin := domain.Identity{IsAuthenticated: true, IsAdmin: true, UserID: uuid.New()}
	all, err := service.GetRecipesForUser(context.Background(), admin, "anna")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCreateRecipeUnknownCategory(t *testing.T) {
	service, _ := newTestRecipeService(t)

	_, err := service.CreateRecipe(context.Background(), domain.SaveRecipeRequest{
		Title:       "Brot",
		CategoryIDs: []string{uuid.NewString()},
	}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestCreateRecipeUnknownRelatedRecipe(t *testing.T) {
	service, _ := newTestRecipeService(t)

	_, err := service.CreateRecipe(context.Background(), domain.SaveRecipeRequest{
		Title:          "Brot",
		RelatedRecipes: []string{uuid.NewString()},
	}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestCreateRecipeResolvesCategories(t *testing.T) {
	service, repo := newTestRecipeService(t)
	category := &entities.Category{ID: uuid.New(), Title: "Backen"}
	repo.categories[category.ID] = category

	detail, err := service.CreateRecipe(context.Background(), domain.SaveRecipeRequest{
		Title:       "Brot",
		CategoryIDs: []string{category.ID.String(), category.ID.String()},
	}, uuid.NewString())
	require.NoError(t, err)
	assert.Equal(t, []string{"Backen"}, detail.Categories)

	saved := repo.recipes[uuid.MustParse(detail.ID)]
	require.Len(t, saved.Categories, 1)
	assert.Equal(t, "Backen", saved.Categories[0].Title)
}

func TestSummarizeDefaultImage(t *testing.T) {
	authorID := uuid.New()
	r := newRecipe(&authorID, true)

	summary := Summarize(r, "https://bucket.example.test/default_recipe.png")
	assert.Equal(t, "https://bucket.example.test/default_recipe.png", summary.PrimaryImage)

	r.Images = []*entities.Image{{ID: uuid.New(), URL: "https://bucket.example.test/brot.png", IsPrimary: true}}
	summary = Summarize(r, "https://bucket.example.test/default_recipe.png")
	assert.Equal(t, "https://bucket.example.test/brot.png", summary.PrimaryImage)
}
