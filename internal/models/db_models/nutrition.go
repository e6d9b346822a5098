package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type NutritionPlan struct {
	BaseModel
	UserID        uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	DailyCalories float64   `json:"daily_calories,omitempty"`
	ProteinGrams  float64   `json:"protein_grams,omitempty"`
	CarbsGrams    float64   `json:"carbs_grams,omitempty"`
	FatGrams      float64   `json:"fat_grams,omitempty"`
	DietaryType   string    `json:"dietary_type,omitempty"`
	IsActive      bool      `gorm:"default:true" json:"is_active"`

	Meals []Meal `gorm:"foreignKey:NutritionPlanID" json:"meals,omitempty"`
}

type Meal struct {
	BaseModel
	UserID          uuid.UUID      `gorm:"type:uuid;index" json:"user_id"`
	NutritionPlanID *uuid.UUID     `gorm:"type:uuid;index" json:"nutrition_plan_id,omitempty"`
	Name            string         `json:"name"`
	MealType        string         `json:"meal_type,omitempty"` // breakfast, lunch, dinner, snack
	Calories        float64        `json:"calories,omitempty"`
	Protein         float64        `json:"protein,omitempty"`
	Carbs           float64        `json:"carbs,omitempty"`
	Fat             float64        `json:"fat,omitempty"`
	Ingredients     datatypes.JSON `json:"ingredients,omitempty"` // list of {name, quantity}
	DayOfWeek       string         `json:"day_of_week,omitempty"` // Monday, Tuesday, ...
	LoggedAt        int64          `json:"logged_at"`
}

type NutritionLog struct {
	BaseModel
	UserID        uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Date          int64     `json:"date"`
	TotalCalories float64   `json:"total_calories,omitempty"`
	TotalProtein  float64   `json:"total_protein,omitempty"`
	TotalCarbs    float64   `json:"total_carbs,omitempty"`
	TotalFat      float64   `json:"total_fat,omitempty"`
	Notes         string    `json:"notes,omitempty"`
}
