package category

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
	CategoryRepository interface {
		CreateCategory(ctx context.Context, category *entities.Category) error
		GetCategories(ctx context.Context) ([]*entities.Category, error)
		GetCategoryByTitle(ctx context.Context, title string) (*entities.Category, error)
		GetCategoryRecipes(ctx context.Context, categoryID uuid.UUID, identity domain.Identity, page, limit int) ([]*entities.Recipe, int64, error)
		GetRandomVisibleRecipe(ctx context.Context, categoryID uuid.UUID, identity domain.Identity) (*entities.Recipe, error)
	}

	categoryRepository struct {
		db *gorm.DB
	}
)

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) CreateCategory(ctx context.Context, category *entities.Category) error {
	var existing entities.Category
	err := r.db.WithContext(ctx).Where("title = ?", category.Title).First(&existing).Error
	if err == nil {
		return domain.ErrCategoryExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) GetCategories(ctx context.Context) ([]*entities.Category, error) {
	var categories []*entities.Category
	if err := r.db.WithContext(ctx).Order("title asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) GetCategoryByTitle(ctx context.Context, title string) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.WithContext(ctx).Where("title = ?", title).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// categoryRecipesQuery narrows to the identity's view of a category; with
// completeOnly set, drafts are filtered out as in the main overview.
func (r *categoryRepository) categoryRecipesQuery(ctx context.Context, categoryID uuid.UUID, identity domain.Identity, completeOnly bool) *gorm.DB {
	query := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Joins("JOIN recipe_categories ON recipe_categories.recipe_id = recipes.id").
		Where("recipe_categories.category_id = ?", categoryID).
		Scopes(recipe.ScopeVisible(identity))
	if completeOnly {
		query = query.Scopes(recipe.ScopeComplete)
	}
	return query
}

func (r *categoryRepository) GetCategoryRecipes(ctx context.Context, categoryID uuid.UUID, identity domain.Identity, page, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64
	offset := (page - 1) * limit

	if err := r.categoryRecipesQuery(ctx, categoryID, identity, true).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.categoryRecipesQuery(ctx, categoryID, identity, true).
		Preload("Images").
		Preload("Categories").
		Preload("Author").
		Offset(offset).
		Limit(limit).
		Order("recipes.updated_at desc").
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

func (r *categoryRepository) GetRandomVisibleRecipe(ctx context.Context, categoryID uuid.UUID, identity domain.Identity) (*entities.Recipe, error) {
	var result entities.Recipe
	err := r.categoryRecipesQuery(ctx, categoryID, identity, false).
		Preload("Images").
		Preload("Author").
		Order("RANDOM()").
		First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}
