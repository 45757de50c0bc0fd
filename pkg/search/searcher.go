package search

import (
	"Recipe-Book-Backend/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Searcher is the full-text collaborator. The composer only uses membership
// of the returned id set, never rank.
type Searcher interface {
	Search(ctx context.Context, term string) (map[uuid.UUID]struct{}, error)
}

// likeSearcher is a keyword scan over title, directions and notes (recipe
// and ingredient notes alike). A dedicated search index can replace it
// without touching the composer.
type likeSearcher struct {
	db *gorm.DB
}

func NewLikeSearcher(db *gorm.DB) Searcher {
	return &likeSearcher{db: db}
}

func (s *likeSearcher) Search(ctx context.Context, term string) (map[uuid.UUID]struct{}, error) {
	pattern := "%" + term + "%"

	var ids []uuid.UUID
	if err := s.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Distinct("recipes.id").
		Joins("LEFT JOIN ingredients ON ingredients.recipe_id = recipes.id").
		Where(
			"recipes.title ILIKE ? OR recipes.directions ILIKE ? OR recipes.notes ILIKE ? OR ingredients.notes ILIKE ?",
			pattern, pattern, pattern, pattern,
		).
		Pluck("recipes.id", &ids).Error; err != nil {
		return nil, err
	}

	matches := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		matches[id] = struct{}{}
	}
	return matches, nil
}
