package handlers

import (
	"Nutrition-Density-Backend/domain"
	"Nutrition-Density-Backend/internal/api/presenters"
	"Nutrition-Density-Backend/internal/middleware"
	"Nutrition-Density-Backend/pkg/meal"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MealHandler interface {
		Predict(c *fiber.Ctx) error
		GetMeals(c *fiber.Ctx) error
	}

	mealHandler struct {
		mealService meal.MealService
		validator   *validator.Validate
	}
)

func NewMealHandler(mealService meal.MealService, validator *validator.Validate) MealHandler {
	return &mealHandler{
		mealService: mealService,
		validator:   validator,
	}
}

// Predict accepts anonymous and identified callers; a rejected token is a 401.
func (h *mealHandler) Predict(c *fiber.Ctx) error {
	identity := middleware.GetIdentity(c)
	if identity.IsRejected() {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, identity.Reason)
	}

	req := new(domain.MealRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedValidation, err)
	}

	res, err := h.mealService.Predict(c.Context(), *req, identity)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
		case errors.Is(err, domain.ErrPredictionFailed):
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedPredict, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

// GetMeals accepts every identity state; only identified callers see meals.
func (h *mealHandler) GetMeals(c *fiber.Ctx) error {
	meals, err := h.mealService.ListMeals(c.Context(), middleware.GetIdentity(c))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetMeals, err)
	}

	return presenters.SuccessResponse(c, meals, fiber.StatusOK)
}
