package recipe

import (
	"Recipe-Book-Backend/domain"
	"Recipe-Book-Backend/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	RecipeRepository interface {
		SaveRecipe(ctx context.Context, recipe *entities.Recipe, ingredients []*entities.Ingredient, images []*entities.Image) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetRecipesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Recipe, error)
		GetCategoriesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Category, error)
		GetRecipes(ctx context.Context, identity domain.Identity, completeOnly bool, page, limit int) ([]*entities.Recipe, int64, error)
		GetRecipesByAuthor(ctx context.Context, username string) ([]*entities.Recipe, error)
		ListAll(ctx context.Context) ([]*entities.Recipe, error)
		DeleteRecipe(ctx context.Context, id string) error
		AddImage(ctx context.Context, image *entities.Image) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// ScopeVisible narrows a recipe query to what the identity may view,
// mirroring the CanView decision table at the SQL level.
func ScopeVisible(identity domain.Identity) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if identity.IsAdmin {
			return db
		}
		if identity.IsAuthenticated {
			return db.Where("recipes.public = ? OR recipes.author_id = ?", true, identity.UserID)
		}
		return db.Where("recipes.public = ?", true)
	}
}

// ScopeComplete excludes draft recipes from listings.
func ScopeComplete(db *gorm.DB) *gorm.DB {
	return db.Where("recipes.introduction <> '' AND recipes.directions <> '' AND recipes.servings IS NOT NULL")
}

func withAssociations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("ingredients.created_at asc")
		}).
		Preload("Ingredients.Food").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("images.is_primary desc")
		}).
		Preload("Categories").
		Preload("RelatedRecipes").
		Preload("Author")
}

// SaveRecipe stores a recipe together with its ingredient and image batches
// in one transaction; an invalid row leaves no partial update behind.
// Associations are omitted on the save and replaced explicitly so gorm never
// auto-upserts category or related-recipe rows from unchecked IDs.
func (r *recipeRepository) SaveRecipe(ctx context.Context, recipe *entities.Recipe, ingredients []*entities.Ingredient, images []*entities.Image) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(recipe).Error; err != nil {
			return err
		}
		if err := tx.Model(recipe).Association("Categories").Replace(recipe.Categories); err != nil {
			return err
		}
		if err := tx.Model(recipe).Association("RelatedRecipes").Replace(recipe.RelatedRecipes); err != nil {
			return err
		}

		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&entities.Ingredient{}).Error; err != nil {
			return err
		}
		for _, ing := range ingredients {
			ing.RecipeID = recipe.ID
			if err := tx.Create(ing).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&entities.Image{}).Error; err != nil {
			return err
		}
		for _, img := range images {
			img.RecipeID = recipe.ID
			if err := tx.Create(img).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := withAssociations(r.db.WithContext(ctx)).Where("recipes.id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Recipe, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetCategoriesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var categories []*entities.Category
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *recipeRepository) GetRecipes(ctx context.Context, identity domain.Identity, completeOnly bool, page, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64
	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.Recipe{}).Scopes(ScopeVisible(identity))
	if completeOnly {
		query = query.Scopes(ScopeComplete)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := withAssociations(query).
		Offset(offset).
		Limit(limit).
		Order("recipes.updated_at desc").
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

func (r *recipeRepository) GetRecipesByAuthor(ctx context.Context, username string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := withAssociations(r.db.WithContext(ctx)).
		Joins("JOIN users ON users.id = recipes.author_id").
		Where("users.username = ?", username).
		Order("recipes.updated_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) ListAll(ctx context.Context) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := withAssociations(r.db.WithContext(ctx)).
		Order("recipes.created_at asc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Recipe{}).Error
}

func (r *recipeRepository) AddImage(ctx context.Context, image *entities.Image) error {
	return r.db.WithContext(ctx).Create(image).Error
}
