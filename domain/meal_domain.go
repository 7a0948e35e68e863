package domain

import (
	"Nutrition-Density-Backend/entities"
	"errors"
	"time"
)

const DefaultMealName = "Manual Entry"

var (
	MessageFailedPredict    = "Model prediction failed"
	MessageFailedGetMeals   = "failed to retrieve meals"
	MessageFailedValidation = "invalid meal input"

	ErrPredictionFailed = errors.New("model prediction failed")
)

// NutrientNames lists the nutrient keys in model feature order.
var NutrientNames = []string{
	"Caloric_Value", "Carbohydrates", "Sugars", "Protein", "Dietary_Fiber", "Cholesterol",
	"Sodium", "Water", "Vitamin_A", "Vitamin_B1", "Vitamin_B11", "Vitamin_B12",
	"Vitamin_B2", "Vitamin_B3", "Vitamin_B5", "Vitamin_B6", "Vitamin_C", "Vitamin_D",
	"Vitamin_E", "Vitamin_K", "Calcium", "Copper", "Iron", "Magnesium", "Manganese",
	"Phosporus", "Selenium", "Zinc",
}

func IsNutrientName(name string) bool {
	for _, n := range NutrientNames {
		if n == name {
			return true
		}
	}
	return false
}

type (
	// MealRequest carries the optional nutrient fields of a meal. A nil field
	// means the client omitted it.
	MealRequest struct {
		MealName      string   `json:"meal_name" validate:"max=255"`
		CaloricValue  *float64 `json:"Caloric_Value" validate:"omitempty,gte=0"`
		Carbohydrates *float64 `json:"Carbohydrates" validate:"omitempty,gte=0"`
		Sugars        *float64 `json:"Sugars" validate:"omitempty,gte=0"`
		Protein       *float64 `json:"Protein" validate:"omitempty,gte=0"`
		DietaryFiber  *float64 `json:"Dietary_Fiber" validate:"omitempty,gte=0"`
		Cholesterol   *float64 `json:"Cholesterol" validate:"omitempty,gte=0"`
		Sodium        *float64 `json:"Sodium" validate:"omitempty,gte=0"`
		Water         *float64 `json:"Water" validate:"omitempty,gte=0"`
		VitaminA      *float64 `json:"Vitamin_A" validate:"omitempty,gte=0"`
		VitaminB1     *float64 `json:"Vitamin_B1" validate:"omitempty,gte=0"`
		VitaminB11    *float64 `json:"Vitamin_B11" validate:"omitempty,gte=0"`
		VitaminB12    *float64 `json:"Vitamin_B12" validate:"omitempty,gte=0"`
		VitaminB2     *float64 `json:"Vitamin_B2" validate:"omitempty,gte=0"`
		VitaminB3     *float64 `json:"Vitamin_B3" validate:"omitempty,gte=0"`
		VitaminB5     *float64 `json:"Vitamin_B5" validate:"omitempty,gte=0"`
		VitaminB6     *float64 `json:"Vitamin_B6" validate:"omitempty,gte=0"`
		VitaminC      *float64 `json:"Vitamin_C" validate:"omitempty,gte=0"`
		VitaminD      *float64 `json:"Vitamin_D" validate:"omitempty,gte=0"`
		VitaminE      *float64 `json:"Vitamin_E" validate:"omitempty,gte=0"`
		VitaminK      *float64 `json:"Vitamin_K" validate:"omitempty,gte=0"`
		Calcium       *float64 `json:"Calcium" validate:"omitempty,gte=0"`
		Copper        *float64 `json:"Copper" validate:"omitempty,gte=0"`
		Iron          *float64 `json:"Iron" validate:"omitempty,gte=0"`
		Magnesium     *float64 `json:"Magnesium" validate:"omitempty,gte=0"`
		Manganese     *float64 `json:"Manganese" validate:"omitempty,gte=0"`
		Phosphorus    *float64 `json:"Phosporus" validate:"omitempty,gte=0"`
		Selenium      *float64 `json:"Selenium" validate:"omitempty,gte=0"`
		Zinc          *float64 `json:"Zinc" validate:"omitempty,gte=0"`
	}

	MealResponse struct {
		ID       string  `json:"id"`
		UserID   *string `json:"user_id"`
		MealName string  `json:"meal_name"`

		entities.Nutrients

		Prediction float64   `json:"prediction"`
		CreatedAt  time.Time `json:"created_at"`
	}
)

func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// Nutrients normalises the request, substituting 0 for every omitted field.
func (r MealRequest) Nutrients() entities.Nutrients {
	return entities.Nutrients{
		CaloricValue:  orZero(r.CaloricValue),
		Carbohydrates: orZero(r.Carbohydrates),
		Sugars:        orZero(r.Sugars),
		Protein:       orZero(r.Protein),
		DietaryFiber:  orZero(r.DietaryFiber),
		Cholesterol:   orZero(r.Cholesterol),
		Sodium:        orZero(r.Sodium),
		Water:         orZero(r.Water),
		VitaminA:      orZero(r.VitaminA),
		VitaminB1:     orZero(r.VitaminB1),
		VitaminB11:    orZero(r.VitaminB11),
		VitaminB12:    orZero(r.VitaminB12),
		VitaminB2:     orZero(r.VitaminB2),
		VitaminB3:     orZero(r.VitaminB3),
		VitaminB5:     orZero(r.VitaminB5),
		VitaminB6:     orZero(r.VitaminB6),
		VitaminC:      orZero(r.VitaminC),
		VitaminD:      orZero(r.VitaminD),
		VitaminE:      orZero(r.VitaminE),
		VitaminK:      orZero(r.VitaminK),
		Calcium:       orZero(r.Calcium),
		Copper:        orZero(r.Copper),
		Iron:          orZero(r.Iron),
		Magnesium:     orZero(r.Magnesium),
		Manganese:     orZero(r.Manganese),
		Phosphorus:    orZero(r.Phosphorus),
		Selenium:      orZero(r.Selenium),
		Zinc:          orZero(r.Zinc),
	}
}

func NewMealResponse(meal *entities.Meal) MealResponse {
	var userID *string
	if meal.UserID != nil {
		id := meal.UserID.String()
		userID = &id
	}

	return MealResponse{
		ID:         meal.ID.String(),
		UserID:     userID,
		MealName:   meal.MealName,
		Nutrients:  meal.Nutrients,
		Prediction: meal.Prediction,
		CreatedAt:  meal.CreatedAt,
	}
}
