package food

import (
	"Recipe-Book-Backend/entities"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		GetOrCreateByName(ctx context.Context, name string) (*entities.Food, error)
		GetFoods(ctx context.Context) ([]*entities.Food, error)
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

// GetOrCreateByName returns the food with the given name, creating it on
// first use. Names are case-sensitive so "Mehl" and "mehl" stay distinct.
func (r *foodRepository) GetOrCreateByName(ctx context.Context, name string) (*entities.Food, error) {
	var food entities.Food
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&food).Error
	if err == nil {
		return &food, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	food = entities.Food{Name: name}
	if err := r.db.WithContext(ctx).Create(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *foodRepository) GetFoods(ctx context.Context) ([]*entities.Food, error) {
	var foods []*entities.Food
	if err := r.db.WithContext(ctx).Order("name asc").Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}
