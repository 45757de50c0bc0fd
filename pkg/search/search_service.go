package search

import (
	"Recipe-Book-Backend/domain"
	"Recipe-Book-Backend/internal/utils/storage"
	"Recipe-Book-Backend/pkg/recipe"
	"context"

	"github.com/google/uuid"
)

type (
	SearchService interface {
		Search(ctx context.Context, identity domain.Identity, req domain.SearchRequest) ([]domain.RecipeSummary, error)
	}

	searchService struct {
		recipeRepository recipe.RecipeRepository
		searcher         Searcher
		s3               storage.AwsS3
	}
)

func NewSearchService(recipeRepository recipe.RecipeRepository, searcher Searcher, s3 storage.AwsS3) SearchService {
	return &searchService{
		recipeRepository: recipeRepository,
		searcher:         searcher,
		s3:               s3,
	}
}

func (s *searchService) Search(ctx context.Context, identity domain.Identity, req domain.SearchRequest) ([]domain.RecipeSummary, error) {
	filters := Filters{}
	if req.RequireAll {
		filters.Mode = MatchAll
	}

	var err error
	if filters.CategoryIDs, err = parseIDs(req.CategoryIDs); err != nil {
		return nil, err
	}
	if filters.FoodIDs, err = parseIDs(req.FoodIDs); err != nil {
		return nil, err
	}
	if filters.ExcludedFoodIDs, err = parseIDs(req.ExcludedIDs); err != nil {
		return nil, err
	}

	if req.Term != "" {
		matches, err := s.searcher.Search(ctx, req.Term)
		if err != nil {
			return nil, err
		}
		filters.TermMatches = matches
	}

	recipes, err := s.recipeRepository.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	results := Compose(identity, recipes, filters)

	summaries := make([]domain.RecipeSummary, 0, len(results))
	for _, r := range results {
		summaries = append(summaries, recipe.Summarize(r, s.s3.DefaultImageURL()))
	}
	return summaries, nil
}

func parseIDs(raw []string) ([]uuid.UUID, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		ids = append(ids, id)
	}
	return ids, nil
}
