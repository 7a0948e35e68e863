package meal

import (
	"Nutrition-Density-Backend/entities"
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Skipf("Failed to connect to test database: %v", err)
	}

	require.NoError(t, db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error)
	require.NoError(t, db.AutoMigrate(&entities.User{}, &entities.Meal{}))
	require.NoError(t, db.Exec("DELETE FROM meal_history").Error)
	require.NoError(t, db.Exec("DELETE FROM users").Error)

	return db
}

func TestMealRepository_CreateAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMealRepository(db)
	ctx := context.Background()

	owner := &entities.User{ID: uuid.New(), Username: "repo-user", PasswordHash: "x"}
	require.NoError(t, db.Create(owner).Error)

	base := time.Now().UTC().Truncate(time.Second)
	older := &entities.Meal{
		ID:         uuid.New(),
		UserID:     &owner.ID,
		MealName:   "Apple",
		Nutrients:  entities.Nutrients{CaloricValue: 52, Sugars: 10},
		Prediction: 1.5,
		CreatedAt:  base,
	}
	newer := &entities.Meal{
		ID:         uuid.New(),
		UserID:     &owner.ID,
		MealName:   "Pear",
		Prediction: 2.5,
		CreatedAt:  base.Add(time.Minute),
	}
	anonymous := &entities.Meal{ID: uuid.New(), MealName: "Water", CreatedAt: base}

	require.NoError(t, repo.CreateMeal(ctx, older))
	require.NoError(t, repo.CreateMeal(ctx, newer))
	require.NoError(t, repo.CreateMeal(ctx, anonymous))

	meals, err := repo.GetMealsByUserID(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, meals, 2)
	assert.Equal(t, "Pear", meals[0].MealName)
	assert.Equal(t, "Apple", meals[1].MealName)
	assert.Equal(t, 52.0, meals[1].CaloricValue)
	assert.Equal(t, 0.0, meals[1].Zinc)

	var nulls int64
	require.NoError(t, db.Raw("SELECT COUNT(*) FROM meal_history WHERE caloric_value IS NULL OR zinc IS NULL").Scan(&nulls).Error)
	assert.Zero(t, nulls)
}
