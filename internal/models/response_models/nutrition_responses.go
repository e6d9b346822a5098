package response_models

// DailyTotals aggregates macros for all meals logged on a single day.
type DailyTotals struct {
	Date     string  `json:"date"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Ingredient is a Spoonacular ingredient search hit.
type Ingredient struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// IngredientInfo carries per-serving nutrition for one ingredient.
type IngredientInfo struct {
	ID        int              `json:"id"`
	Name      string           `json:"name"`
	Nutrients []NutrientAmount `json:"nutrients,omitempty"`
}

type NutrientAmount struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}
