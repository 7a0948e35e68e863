package meal

import (
	"Nutrition-Density-Backend/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MealRepository interface {
		CreateMeal(ctx context.Context, meal *entities.Meal) error
		GetMealsByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Meal, error)
	}

	mealRepository struct {
		db *gorm.DB
	}
)

func NewMealRepository(db *gorm.DB) MealRepository {
	return &mealRepository{db: db}
}

// CreateMeal inserts every nutrient column explicitly so zero values are
// written as 0 instead of being skipped in favour of column defaults.
func (r *mealRepository) CreateMeal(ctx context.Context, meal *entities.Meal) error {
	return r.db.WithContext(ctx).Select("*").Omit("User").Create(meal).Error
}

func (r *mealRepository) GetMealsByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Meal, error) {
	var meals []*entities.Meal
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}
