package category

import (
	"Recipe-Book-Backend/domain"
	"Recipe-Book-Backend/entities"
	"Recipe-Book-Backend/internal/utils/storage"
	"Recipe-Book-Backend/pkg/recipe"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CategoryService interface {
		CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (domain.CategoryOverview, error)
		GetOverview(ctx context.Context, identity domain.Identity) ([]domain.CategoryOverview, error)
		GetCategoryRecipes(ctx context.Context, identity domain.Identity, title string, page, limit int) ([]domain.RecipeSummary, int64, error)
	}

	categoryService struct {
		categoryRepository CategoryRepository
		s3                 storage.AwsS3
	}
)

func NewCategoryService(categoryRepository CategoryRepository, s3 storage.AwsS3) CategoryService {
	return &categoryService{
		categoryRepository: categoryRepository,
		s3:                 s3,
	}
}

func (s *categoryService) CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (domain.CategoryOverview, error) {
	category := &entities.Category{
		ID:    uuid.New(),
		Title: req.Title,
	}
	if err := s.categoryRepository.CreateCategory(ctx, category); err != nil {
		return domain.CategoryOverview{}, err
	}
	return domain.CategoryOverview{
		ID:    category.ID.String(),
		Title: category.Title,
	}, nil
}

// GetOverview lists all categories alphabetically, each with one random
// recipe the identity may view.
func (s *categoryService) GetOverview(ctx context.Context, identity domain.Identity) ([]domain.CategoryOverview, error) {
	categories, err := s.categoryRepository.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	overview := make([]domain.CategoryOverview, 0, len(categories))
	for _, c := range categories {
		entry := domain.CategoryOverview{
			ID:    c.ID.String(),
			Title: c.Title,
		}

		random, err := s.categoryRepository.GetRandomVisibleRecipe(ctx, c.ID, identity)
		if err != nil {
			return nil, err
		}
		if random != nil {
			summary := recipe.Summarize(random, s.s3.DefaultImageURL())
			entry.RandomRecipe = &summary
		}

		overview = append(overview, entry)
	}
	return overview, nil
}

func (s *categoryService) GetCategoryRecipes(ctx context.Context, identity domain.Identity, title string, page, limit int) ([]domain.RecipeSummary, int64, error) {
	category, err := s.categoryRepository.GetCategoryByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, domain.ErrCategoryNotFound
		}
		return nil, 0, err
	}

	recipes, count, err := s.categoryRepository.GetCategoryRecipes(ctx, category.ID, identity, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.RecipeSummary, 0, len(recipes))
	for _, r := range recipes {
		result = append(result, recipe.Summarize(r, s.s3.DefaultImageURL()))
	}
	return result, count, nil
}
