package food

import (
	"Recipe-Book-Backend/entities"
	"context"
)

type (
	// FoodService lists the known foods; the advanced-search form feeds its
	// include and exclude pickers from this.
	FoodService interface {
		GetFoods(ctx context.Context) ([]*entities.Food, error)
	}

	foodService struct {
		foodRepository FoodRepository
	}
)

func NewFoodService(foodRepository FoodRepository) FoodService {
	return &foodService{foodRepository: foodRepository}
}

func (s *foodService) GetFoods(ctx context.Context) ([]*entities.Food, error) {
	return s.foodRepository.GetFoods(ctx)
}
