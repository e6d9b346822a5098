package repositories

import (
	"context"
	"errors"
	"time"

	"arogya/internal/models/db_models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NutritionRepository interface {
	ListPlansByUser(ctx context.Context, userID uuid.UUID) ([]db_models.NutritionPlan, error)
	InsertPlan(ctx context.Context, plan *db_models.NutritionPlan) error
	FindPlanByID(ctx context.Context, userID uuid.UUID, id string) (*db_models.NutritionPlan, error)
	DeletePlanWithMeals(ctx context.Context, userID uuid.UUID, id string) error

	ListMealsByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Meal, error)
	InsertMeal(ctx context.Context, meal *db_models.Meal) error
	InsertMeals(ctx context.Context, meals []db_models.Meal) error
	FindMealByID(ctx context.Context, userID uuid.UUID, id string) (*db_models.Meal, error)
	DeleteMeal(ctx context.Context, userID uuid.UUID, id string) error
	SumMealsBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) (*MealTotals, error)

	ListLogsByUser(ctx context.Context, userID uuid.UUID) ([]db_models.NutritionLog, error)
	CountMeals(ctx context.Context) (int64, error)
}

// MealTotals is the macro aggregate of a set of meals.
type MealTotals struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

type nutritionRepository struct {
	db *gorm.DB
}

func NewNutritionRepository(db *gorm.DB) NutritionRepository {
	return &nutritionRepository{db: db}
}

func (r *nutritionRepository) ListPlansByUser(ctx context.Context, userID uuid.UUID) ([]db_models.NutritionPlan, error) {
	var plans []db_models.NutritionPlan
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Meals", "user_id = ?", userID).
		Order("created_at desc").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *nutritionRepository) InsertPlan(ctx context.Context, plan *db_models.NutritionPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *nutritionRepository) FindPlanByID(ctx context.Context, userID uuid.UUID, id string) (*db_models.NutritionPlan, error) {
	var plan db_models.NutritionPlan
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

// DeletePlanWithMeals removes the plan and every meal referencing it in
// one transaction so no orphaned meals survive.
func (r *nutritionRepository) DeletePlanWithMeals(ctx context.Context, userID uuid.UUID, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("nutrition_plan_id = ?", id).
			Delete(&db_models.Meal{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ? AND user_id = ?", id, userID).
			Delete(&db_models.NutritionPlan{}).Error
	})
}

func (r *nutritionRepository) ListMealsByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Meal, error) {
	var meals []db_models.Meal
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("logged_at desc").
		Find(&meals).Error
	if err != nil {
		return nil, err
	}
	return meals, nil
}

func (r *nutritionRepository) InsertMeal(ctx context.Context, meal *db_models.Meal) error {
	return r.db.WithContext(ctx).Create(meal).Error
}

func (r *nutritionRepository) InsertMeals(ctx context.Context, meals []db_models.Meal) error {
	if len(meals) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&meals).Error
}

func (r *nutritionRepository) FindMealByID(ctx context.Context, userID uuid.UUID, id string) (*db_models.Meal, error) {
	var meal db_models.Meal
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&meal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &meal, nil
}

func (r *nutritionRepository) DeleteMeal(ctx context.Context, userID uuid.UUID, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&db_models.Meal{}).Error
}

func (r *nutritionRepository) SumMealsBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) (*MealTotals, error) {
	var totals MealTotals
	err := r.db.WithContext(ctx).
		Model(&db_models.Meal{}).
		Select("COALESCE(SUM(calories),0) as calories, COALESCE(SUM(protein),0) as protein, COALESCE(SUM(carbs),0) as carbs, COALESCE(SUM(fat),0) as fat").
		Where("user_id = ? AND logged_at >= ? AND logged_at < ?", userID, start.Unix(), end.Unix()).
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return &totals, nil
}

func (r *nutritionRepository) ListLogsByUser(ctx context.Context, userID uuid.UUID) ([]db_models.NutritionLog, error) {
	var logs []db_models.NutritionLog
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date desc").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *nutritionRepository) CountMeals(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Meal{}).Count(&count).Error
	return count, err
}
