package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"arogya/internal/models/db_models"
	"arogya/internal/models/request_models"
	"arogya/internal/models/response_models"
	"arogya/internal/repositories"
	"arogya/pkg/utils"
)

type NutritionServiceInterface interface {
	ListPlans(ctx context.Context, userID uuid.UUID) ([]db_models.NutritionPlan, error)
	CreatePlan(ctx context.Context, userID uuid.UUID, request request_models.CreateNutritionPlanRequest) (*db_models.NutritionPlan, error)
	DeletePlan(ctx context.Context, userID uuid.UUID, planID string) error
	AddPlanMeals(ctx context.Context, userID uuid.UUID, planID string, items []request_models.PlanMealItem) (int, error)

	ListMeals(ctx context.Context, userID uuid.UUID) ([]db_models.Meal, error)
	LogMeal(ctx context.Context, userID uuid.UUID, request request_models.LogMealRequest) (*db_models.Meal, error)
	GetMeal(ctx context.Context, userID uuid.UUID, id string) (*db_models.Meal, error)
	DeleteMeal(ctx context.Context, userID uuid.UUID, id string) error

	ListLogs(ctx context.Context, userID uuid.UUID) ([]db_models.NutritionLog, error)
	DailyTotals(ctx context.Context, userID uuid.UUID, day time.Time) (*response_models.DailyTotals, error)
}

type NutritionService struct {
	nutritionRepo repositories.NutritionRepository
}

func NewNutritionService(nutritionRepo repositories.NutritionRepository) NutritionServiceInterface {
	return &NutritionService{nutritionRepo: nutritionRepo}
}

func (n *NutritionService) ListPlans(ctx context.Context, userID uuid.UUID) ([]db_models.NutritionPlan, error) {
	plans, err := n.nutritionRepo.ListPlansByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return plans, nil
}

func (n *NutritionService) CreatePlan(ctx context.Context, userID uuid.UUID, request request_models.CreateNutritionPlanRequest) (*db_models.NutritionPlan, error) {
	active := true
	if request.IsActive != nil {
		active = *request.IsActive
	}
	plan := &db_models.NutritionPlan{
		UserID:        userID,
		Name:          request.Name,
		Description:   request.Description,
		DailyCalories: request.DailyCalories,
		ProteinGrams:  request.ProteinGrams,
		CarbsGrams:    request.CarbsGrams,
		FatGrams:      request.FatGrams,
		DietaryType:   request.DietaryType,
		IsActive:      active,
	}
	if err := n.nutritionRepo.InsertPlan(ctx, plan); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return plan, nil
}

// DeletePlan removes the plan together with every meal referencing it.
func (n *NutritionService) DeletePlan(ctx context.Context, userID uuid.UUID, planID string) error {
	// Malformed ids read as absent rather than reaching the uuid column.
	if _, err := uuid.Parse(planID); err != nil {
		return utils.ErrNutritionPlanNotFound
	}
	plan, err := n.nutritionRepo.FindPlanByID(ctx, userID, planID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if plan == nil {
		return utils.ErrNutritionPlanNotFound
	}
	if err := n.nutritionRepo.DeletePlanWithMeals(ctx, userID, planID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (n *NutritionService) AddPlanMeals(ctx context.Context, userID uuid.UUID, planID string, items []request_models.PlanMealItem) (int, error) {
	if _, err := uuid.Parse(planID); err != nil {
		return 0, utils.ErrNutritionPlanNotFound
	}
	plan, err := n.nutritionRepo.FindPlanByID(ctx, userID, planID)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}
	if plan == nil {
		return 0, utils.ErrNutritionPlanNotFound
	}

	now := time.Now().Unix()
	meals := make([]db_models.Meal, 0, len(items))
	for _, item := range items {
		meal := db_models.Meal{
			UserID:          userID,
			NutritionPlanID: &plan.ID,
			Name:            item.Name,
			MealType:        item.MealType,
			Calories:        item.Calories,
			Protein:         item.ProteinG,
			Carbs:           item.CarbsG,
			Fat:             item.FatG,
			DayOfWeek:       item.DayOfWeek,
			LoggedAt:        now,
		}
		if len(item.Ingredients) > 0 {
			meal.Ingredients = datatypes.JSON(item.Ingredients)
		}
		meals = append(meals, meal)
	}
	if err := n.nutritionRepo.InsertMeals(ctx, meals); err != nil {
		return 0, utils.ErrDatabaseError
	}
	return len(meals), nil
}

func (n *NutritionService) ListMeals(ctx context.Context, userID uuid.UUID) ([]db_models.Meal, error) {
	meals, err := n.nutritionRepo.ListMealsByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return meals, nil
}

func (n *NutritionService) LogMeal(ctx context.Context, userID uuid.UUID, request request_models.LogMealRequest) (*db_models.Meal, error) {
	meal := &db_models.Meal{
		UserID:    userID,
		Name:      request.Name,
		MealType:  request.MealType,
		Calories:  request.Calories,
		Protein:   request.Protein,
		Carbs:     request.Carbs,
		Fat:       request.Fat,
		DayOfWeek: request.DayOfWeek,
		LoggedAt:  time.Now().Unix(),
	}
	if len(request.Ingredients) > 0 {
		meal.Ingredients = datatypes.JSON(request.Ingredients)
	}
	if request.NutritionPlanID != "" {
		planID, err := uuid.Parse(request.NutritionPlanID)
		if err != nil {
			return nil, utils.ErrNutritionPlanNotFound
		}
		plan, err := n.nutritionRepo.FindPlanByID(ctx, userID, request.NutritionPlanID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if plan == nil {
			return nil, utils.ErrNutritionPlanNotFound
		}
		meal.NutritionPlanID = &planID
	}

	if err := n.nutritionRepo.InsertMeal(ctx, meal); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return meal, nil
}

func (n *NutritionService) GetMeal(ctx context.Context, userID uuid.UUID, id string) (*db_models.Meal, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, utils.ErrMealNotFound
	}
	meal, err := n.nutritionRepo.FindMealByID(ctx, userID, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if meal == nil {
		return nil, utils.ErrMealNotFound
	}
	return meal, nil
}

// DeleteMeal removes one meal; the parent plan and sibling meals are
// untouched.
func (n *NutritionService) DeleteMeal(ctx context.Context, userID uuid.UUID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return utils.ErrMealNotFound
	}
	meal, err := n.nutritionRepo.FindMealByID(ctx, userID, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if meal == nil {
		return utils.ErrMealNotFound
	}
	if err := n.nutritionRepo.DeleteMeal(ctx, userID, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (n *NutritionService) ListLogs(ctx context.Context, userID uuid.UUID) ([]db_models.NutritionLog, error) {
	logs, err := n.nutritionRepo.ListLogsByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return logs, nil
}

// DailyTotals sums macros over the meals logged on the given calendar
// day (UTC).
func (n *NutritionService) DailyTotals(ctx context.Context, userID uuid.UUID, day time.Time) (*response_models.DailyTotals, error) {
	if day.IsZero() {
		day = time.Now().UTC()
	}
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	totals, err := n.nutritionRepo.SumMealsBetween(ctx, userID, start, end)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := &response_models.DailyTotals{Date: start.Format("2006-01-02")}
	if totals != nil {
		out.Calories = totals.Calories
		out.Protein = totals.Protein
		out.Carbs = totals.Carbs
		out.Fat = totals.Fat
	}
	return out, nil
}
