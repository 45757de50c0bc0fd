package recipe

import (
	"Recipe-Book-Backend/domain"
	"Recipe-Book-Backend/entities"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newRecipe(author *uuid.UUID, public bool) *entities.Recipe {
	return &entities.Recipe{
		ID:           uuid.New(),
		Title:        "Brot",
		Introduction: "intro",
		Directions:   "bake",
		Servings:     strPtr("4.00"),
		Public:       public,
		AuthorID:     author,
	}
}

func TestCanViewAnonymous(t *testing.T) {
	authorID := uuid.New()
	anonymous := domain.Identity{}

	assert.NoError(t, CanView(anonymous, newRecipe(&authorID, true)))
	assert.ErrorIs(t, CanView(anonymous, newRecipe(&authorID, false)), domain.ErrPermissionDenied)
}

func TestCanViewAuthor(t *testing.T) {
	authorID := uuid.New()
	author := domain.Identity{IsAuthenticated: true, UserID: authorID}

	assert.NoError(t, CanView(author, newRecipe(&authorID, false)))
}

func TestCanViewOtherUser(t *testing.T) {
	authorID := uuid.New()
	other := domain.Identity{IsAuthenticated: true, UserID: uuid.New()}

	assert.ErrorIs(t, CanView(other, newRecipe(&authorID, false)), domain.ErrPermissionDenied)
	assert.NoError(t, CanView(other, newRecipe(&authorID, true)))
}

func TestCanViewAdmin(t *testing.T) {
	authorID := uuid.New()
	admin := domain.Identity{IsAuthenticated: true, IsAdmin: true, UserID: uuid.New()}

	assert.NoError(t, CanView(admin, newRecipe(&authorID, false)))
	assert.NoError(t, CanView(admin, newRecipe(nil, false)))
}

func TestIsComplete(t *testing.T) {
	authorID := uuid.New()

	complete := newRecipe(&authorID, true)
	assert.True(t, IsComplete(complete))

	draft := newRecipe(&authorID, true)
	draft.Introduction = ""
	assert.False(t, IsComplete(draft))

	draft = newRecipe(&authorID, true)
	draft.Directions = ""
	assert.False(t, IsComplete(draft))

	draft = newRecipe(&authorID, true)
	draft.Servings = nil
	assert.False(t, IsComplete(draft))
}

func TestFilterVisible(t *testing.T) {
	authorID := uuid.New()
	author := domain.Identity{IsAuthenticated: true, UserID: authorID}

	private := newRecipe(&authorID, false)
	public := newRecipe(&authorID, true)
	draft := newRecipe(&authorID, true)
	draft.Directions = ""

	recipes := []*entities.Recipe{private, public, draft}

	anonymous := domain.Identity{}
	got := FilterVisible(anonymous, recipes, true)
	require.Len(t, got, 1)
	assert.Equal(t, public.ID, got[0].ID)

	// the owner's own view keeps drafts and private recipes
	got = FilterVisible(author, recipes, false)
	assert.Len(t, got, 3)
}

func TestScaledIngredientsPreservesOrderAndFields(t *testing.T) {
	authorID := uuid.New()
	r := newRecipe(&authorID, true)
	r.Ingredients = []*entities.Ingredient{
		{Amount: "500.000", Unit: "g", Notes: "sifted", Food: &entities.Food{Name: "Flour"}},
		{Amount: "1.000", Unit: "", Food: &entities.Food{Name: "Egg"}},
	}

	views, err := ScaledIngredients(r, "2")
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.Equal(t, "250", views[0].Amount)
	assert.Equal(t, "g", views[0].Unit)
	assert.Equal(t, "Flour", views[0].FoodName)
	assert.Equal(t, "sifted", views[0].Notes)
	assert.Equal(t, "1/2", views[1].Amount)
	assert.Equal(t, "Egg", views[1].FoodName)
}

func TestScaledIngredientsUnknownServings(t *testing.T) {
	authorID := uuid.New()
	r := newRecipe(&authorID, true)
	r.Servings = nil

	_, err := ScaledIngredients(r, "2")
	assert.ErrorIs(t, err, domain.ErrInvalidServings)
}

func TestScaledIngredientsBadTarget(t *testing.T) {
	authorID := uuid.New()
	r := newRecipe(&authorID, true)
	r.Ingredients = []*entities.Ingredient{
		{Amount: "500.000", Unit: "g", Food: &entities.Food{Name: "Flour"}},
	}

	_, err := ScaledIngredients(r, "0")
	assert.ErrorIs(t, err, domain.ErrInvalidServings)

	_, err = ScaledIngredients(r, "-2")
	assert.ErrorIs(t, err, domain.ErrInvalidServings)
}
