package entities

import (
	"time"

	"github.com/google/uuid"
)

// Nutrients is the fixed nutrient set scored by the regression model. Every
// column is NOT NULL; missing input is stored as 0.
type Nutrients struct {
	CaloricValue  float64 `gorm:"not null;default:0" json:"Caloric_Value"`
	Carbohydrates float64 `gorm:"not null;default:0" json:"Carbohydrates"`
	Sugars        float64 `gorm:"not null;default:0" json:"Sugars"`
	Protein       float64 `gorm:"not null;default:0" json:"Protein"`
	DietaryFiber  float64 `gorm:"not null;default:0" json:"Dietary_Fiber"`
	Cholesterol   float64 `gorm:"not null;default:0" json:"Cholesterol"`
	Sodium        float64 `gorm:"not null;default:0" json:"Sodium"`
	Water         float64 `gorm:"not null;default:0" json:"Water"`
	VitaminA      float64 `gorm:"column:vitamin_a;not null;default:0" json:"Vitamin_A"`
	VitaminB1     float64 `gorm:"column:vitamin_b1;not null;default:0" json:"Vitamin_B1"`
	VitaminB11    float64 `gorm:"column:vitamin_b11;not null;default:0" json:"Vitamin_B11"`
	VitaminB12    float64 `gorm:"column:vitamin_b12;not null;default:0" json:"Vitamin_B12"`
	VitaminB2     float64 `gorm:"column:vitamin_b2;not null;default:0" json:"Vitamin_B2"`
	VitaminB3     float64 `gorm:"column:vitamin_b3;not null;default:0" json:"Vitamin_B3"`
	VitaminB5     float64 `gorm:"column:vitamin_b5;not null;default:0" json:"Vitamin_B5"`
	VitaminB6     float64 `gorm:"column:vitamin_b6;not null;default:0" json:"Vitamin_B6"`
	VitaminC      float64 `gorm:"column:vitamin_c;not null;default:0" json:"Vitamin_C"`
	VitaminD      float64 `gorm:"column:vitamin_d;not null;default:0" json:"Vitamin_D"`
	VitaminE      float64 `gorm:"column:vitamin_e;not null;default:0" json:"Vitamin_E"`
	VitaminK      float64 `gorm:"column:vitamin_k;not null;default:0" json:"Vitamin_K"`
	Calcium       float64 `gorm:"not null;default:0" json:"Calcium"`
	Copper        float64 `gorm:"not null;default:0" json:"Copper"`
	Iron          float64 `gorm:"not null;default:0" json:"Iron"`
	Magnesium     float64 `gorm:"not null;default:0" json:"Magnesium"`
	Manganese     float64 `gorm:"not null;default:0" json:"Manganese"`
	Phosphorus    float64 `gorm:"column:phosporus;not null;default:0" json:"Phosporus"`
	Selenium      float64 `gorm:"not null;default:0" json:"Selenium"`
	Zinc          float64 `gorm:"not null;default:0" json:"Zinc"`
}

// FeatureVector returns the nutrients in the order the model was trained on.
func (n Nutrients) FeatureVector() []float64 {
	return []float64{
		n.CaloricValue, n.Carbohydrates, n.Sugars, n.Protein, n.DietaryFiber, n.Cholesterol,
		n.Sodium, n.Water, n.VitaminA, n.VitaminB1, n.VitaminB11, n.VitaminB12,
		n.VitaminB2, n.VitaminB3, n.VitaminB5, n.VitaminB6, n.VitaminC, n.VitaminD,
		n.VitaminE, n.VitaminK, n.Calcium, n.Copper, n.Iron, n.Magnesium, n.Manganese,
		n.Phosphorus, n.Selenium, n.Zinc,
	}
}

type Meal struct {
	ID       uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   *uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	MealName string     `gorm:"not null" json:"meal_name"`

	Nutrients `gorm:"embedded"`

	Prediction float64   `gorm:"not null" json:"prediction"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

func (Meal) TableName() string {
	return "meal_history"
}
