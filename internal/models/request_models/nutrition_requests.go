package request_models

import "encoding/json"

type CreateNutritionPlanRequest struct {
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	DailyCalories float64 `json:"daily_calories"`
	ProteinGrams  float64 `json:"protein_grams"`
	CarbsGrams    float64 `json:"carbs_grams"`
	FatGrams      float64 `json:"fat_grams"`
	DietaryType   string  `json:"dietary_type"`
	IsActive      *bool   `json:"is_active"`
}

type LogMealRequest struct {
	Name            string          `json:"name" binding:"required"`
	MealType        string          `json:"meal_type"`
	Calories        float64         `json:"calories"`
	Protein         float64         `json:"protein"`
	Carbs           float64         `json:"carbs"`
	Fat             float64         `json:"fat"`
	Ingredients     json.RawMessage `json:"ingredients"`
	DayOfWeek       string          `json:"day_of_week"`
	NutritionPlanID string          `json:"nutrition_plan_id"`
}

// PlanMealItem is one meal of a bulk plan-meal submission.
type PlanMealItem struct {
	Name        string          `json:"name"`
	MealType    string          `json:"meal_type"`
	Calories    float64         `json:"calories"`
	ProteinG    float64         `json:"protein_g"`
	CarbsG      float64         `json:"carbs_g"`
	FatG        float64         `json:"fat_g"`
	Ingredients json.RawMessage `json:"ingredients"`
	DayOfWeek   string          `json:"day_of_week"`
}
