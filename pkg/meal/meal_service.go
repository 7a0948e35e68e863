package meal

import (
	"Nutrition-Density-Backend/domain"
	"Nutrition-Density-Backend/entities"
	"Nutrition-Density-Backend/internal/utils/metrics"
	"Nutrition-Density-Backend/pkg/regression"
	"Nutrition-Density-Backend/pkg/user"
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

type (
	MealService interface {
		Predict(ctx context.Context, req domain.MealRequest, identity domain.Identity) (domain.MealResponse, error)
		ListMeals(ctx context.Context, identity domain.Identity) ([]domain.MealResponse, error)
	}

	mealService struct {
		mealRepository MealRepository
		userRepository user.UserRepository
		model          regression.Model
	}
)

func NewMealService(mealRepository MealRepository, userRepository user.UserRepository, model regression.Model) MealService {
	return &mealService{
		mealRepository: mealRepository,
		userRepository: userRepository,
		model:          model,
	}
}

func (s *mealService) resolveOwner(ctx context.Context, identity domain.Identity) (*uuid.UUID, error) {
	switch identity.State {
	case domain.IdentityAnonymous:
		return nil, nil
	case domain.IdentityIdentified:
		u, err := s.userRepository.GetUserByUsername(ctx, identity.Username)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				return nil, domain.ErrUnauthorized
			}
			return nil, err
		}
		return &u.ID, nil
	default:
		return nil, domain.ErrUnauthorized
	}
}

func (s *mealService) Predict(ctx context.Context, req domain.MealRequest, identity domain.Identity) (domain.MealResponse, error) {
	ownerID, err := s.resolveOwner(ctx, identity)
	if err != nil {
		return domain.MealResponse{}, err
	}

	nutrients := req.Nutrients()

	prediction, err := s.model.Predict(ctx, nutrients.FeatureVector())
	if err == nil && (math.IsNaN(prediction) || math.IsInf(prediction, 0)) {
		err = fmt.Errorf("non-finite prediction %v", prediction)
	}
	if err != nil {
		metrics.PredictionFailures.Inc()
		log.Errorf("model prediction failed: %v", err)
		return domain.MealResponse{}, fmt.Errorf("%w: %v", domain.ErrPredictionFailed, err)
	}

	mealName := strings.TrimSpace(req.MealName)
	if mealName == "" {
		mealName = domain.DefaultMealName
	}

	meal := &entities.Meal{
		ID:         uuid.New(),
		UserID:     ownerID,
		MealName:   mealName,
		Nutrients:  nutrients,
		Prediction: prediction,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.mealRepository.CreateMeal(ctx, meal); err != nil {
		return domain.MealResponse{}, err
	}

	owner := metrics.OwnerAnonymous
	if ownerID != nil {
		owner = metrics.OwnerIdentified
	}
	metrics.Predictions.WithLabelValues(owner).Inc()

	return domain.NewMealResponse(meal), nil
}

// ListMeals returns the caller's meals, newest first. Callers without a
// resolvable identity get an empty list.
func (s *mealService) ListMeals(ctx context.Context, identity domain.Identity) ([]domain.MealResponse, error) {
	response := []domain.MealResponse{}
	if !identity.IsIdentified() {
		return response, nil
	}

	u, err := s.userRepository.GetUserByUsername(ctx, identity.Username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return response, nil
		}
		return nil, err
	}

	meals, err := s.mealRepository.GetMealsByUserID(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	for _, m := range meals {
		response = append(response, domain.NewMealResponse(m))
	}
	return response, nil
}
