package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arogya/internal/models/db_models"
	"arogya/internal/models/request_models"
	"arogya/internal/repositories"
	"arogya/pkg/utils"
)

type fakeNutritionRepo struct {
	plans []*db_models.NutritionPlan
	meals []*db_models.Meal
	logs  []*db_models.NutritionLog
}

func (f *fakeNutritionRepo) ListPlansByUser(ctx context.Context, userID uuid.UUID) ([]db_models.NutritionPlan, error) {
	var out []db_models.NutritionPlan
	for _, p := range f.plans {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeNutritionRepo) InsertPlan(ctx context.Context, plan *db_models.NutritionPlan) error {
	if plan.ID == uuid.Nil {
		plan.ID = uuid.New()
	}
	f.plans = append(f.plans, plan)
	return nil
}

func (f *fakeNutritionRepo) FindPlanByID(ctx context.Context, userID uuid.UUID, id string) (*db_models.NutritionPlan, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, errInvalidUUIDSyntax
	}
	for _, p := range f.plans {
		if p.ID.String() == id && p.UserID == userID {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeNutritionRepo) DeletePlanWithMeals(ctx context.Context, userID uuid.UUID, id string) error {
	var keptPlans []*db_models.NutritionPlan
	for _, p := range f.plans {
		if p.ID.String() == id && p.UserID == userID {
			continue
		}
		keptPlans = append(keptPlans, p)
	}
	f.plans = keptPlans

	var keptMeals []*db_models.Meal
	for _, m := range f.meals {
		if m.NutritionPlanID != nil && m.NutritionPlanID.String() == id {
			continue
		}
		keptMeals = append(keptMeals, m)
	}
	f.meals = keptMeals
	return nil
}

func (f *fakeNutritionRepo) ListMealsByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Meal, error) {
	var out []db_models.Meal
	for _, m := range f.meals {
		if m.UserID == userID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeNutritionRepo) InsertMeal(ctx context.Context, meal *db_models.Meal) error {
	if meal.ID == uuid.Nil {
		meal.ID = uuid.New()
	}
	f.meals = append(f.meals, meal)
	return nil
}

func (f *fakeNutritionRepo) InsertMeals(ctx context.Context, meals []db_models.Meal) error {
	for i := range meals {
		m := meals[i]
		if err := f.InsertMeal(ctx, &m); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeNutritionRepo) FindMealByID(ctx context.Context, userID uuid.UUID, id string) (*db_models.Meal, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, errInvalidUUIDSyntax
	}
	for _, m := range f.meals {
		if m.ID.String() == id && m.UserID == userID {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeNutritionRepo) DeleteMeal(ctx context.Context, userID uuid.UUID, id string) error {
	var kept []*db_models.Meal
	for _, m := range f.meals {
		if m.ID.String() == id && m.UserID == userID {
			continue
		}
		kept = append(kept, m)
	}
	f.meals = kept
	return nil
}

func (f *fakeNutritionRepo) SumMealsBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) (*repositories.MealTotals, error) {
	totals := &repositories.MealTotals{}
	for _, m := range f.meals {
		if m.UserID != userID {
			continue
		}
		if m.LoggedAt < start.Unix() || m.LoggedAt >= end.Unix() {
			continue
		}
		totals.Calories += m.Calories
		totals.Protein += m.Protein
		totals.Carbs += m.Carbs
		totals.Fat += m.Fat
	}
	return totals, nil
}

func (f *fakeNutritionRepo) ListLogsByUser(ctx context.Context, userID uuid.UUID) ([]db_models.NutritionLog, error) {
	var out []db_models.NutritionLog
	for _, l := range f.logs {
		if l.UserID == userID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (f *fakeNutritionRepo) CountMeals(ctx context.Context) (int64, error) {
	return int64(len(f.meals)), nil
}

func TestDeletePlanCascadesMeals(t *testing.T) {
	repo := &fakeNutritionRepo{}
	svc := NewNutritionService(repo)
	userID := uuid.New()

	plan, err := svc.CreatePlan(context.Background(), userID, request_models.CreateNutritionPlanRequest{Name: "Cut"})
	require.NoError(t, err)

	added, err := svc.AddPlanMeals(context.Background(), userID, plan.ID.String(), []request_models.PlanMealItem{
		{Name: "Oats", MealType: "breakfast", Calories: 350},
		{Name: "Dal", MealType: "lunch", Calories: 500},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	// A standalone logged meal must survive the plan delete.
	_, err = svc.LogMeal(context.Background(), userID, request_models.LogMealRequest{Name: "Snack", Calories: 120})
	require.NoError(t, err)

	require.NoError(t, svc.DeletePlan(context.Background(), userID, plan.ID.String()))

	meals, err := svc.ListMeals(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, meals, 1)
	assert.Equal(t, "Snack", meals[0].Name)
}

func TestDeletePlanForeignOwnerIsNotFound(t *testing.T) {
	repo := &fakeNutritionRepo{}
	svc := NewNutritionService(repo)
	owner := uuid.New()

	plan, err := svc.CreatePlan(context.Background(), owner, request_models.CreateNutritionPlanRequest{Name: "Bulk"})
	require.NoError(t, err)

	err = svc.DeletePlan(context.Background(), uuid.New(), plan.ID.String())
	assert.ErrorIs(t, err, utils.ErrNutritionPlanNotFound)
	assert.Len(t, repo.plans, 1)
}

func TestLogMealRejectsForeignPlan(t *testing.T) {
	repo := &fakeNutritionRepo{}
	svc := NewNutritionService(repo)
	owner := uuid.New()

	plan, err := svc.CreatePlan(context.Background(), owner, request_models.CreateNutritionPlanRequest{Name: "Bulk"})
	require.NoError(t, err)

	_, err = svc.LogMeal(context.Background(), uuid.New(), request_models.LogMealRequest{
		Name:            "Paneer",
		NutritionPlanID: plan.ID.String(),
	})
	assert.ErrorIs(t, err, utils.ErrNutritionPlanNotFound)
}

func TestLogMealKeepsIngredientsPayload(t *testing.T) {
	repo := &fakeNutritionRepo{}
	svc := NewNutritionService(repo)
	userID := uuid.New()

	ingredients := json.RawMessage(`[{"name":"rice","grams":150}]`)
	meal, err := svc.LogMeal(context.Background(), userID, request_models.LogMealRequest{
		Name:        "Rice bowl",
		Calories:    420,
		Ingredients: ingredients,
	})
	require.NoError(t, err)
	assert.JSONEq(t, string(ingredients), string(meal.Ingredients))
	assert.NotZero(t, meal.LoggedAt)
}

func TestDailyTotalsSumsOnlyThatDay(t *testing.T) {
	repo := &fakeNutritionRepo{}
	svc := NewNutritionService(repo)
	userID := uuid.New()

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	repo.meals = append(repo.meals,
		&db_models.Meal{UserID: userID, Calories: 300, Protein: 20, LoggedAt: day.Add(8 * time.Hour).Unix()},
		&db_models.Meal{UserID: userID, Calories: 500, Protein: 35, LoggedAt: day.Add(13 * time.Hour).Unix()},
		&db_models.Meal{UserID: userID, Calories: 999, LoggedAt: day.Add(-2 * time.Hour).Unix()},
		&db_models.Meal{UserID: uuid.New(), Calories: 777, LoggedAt: day.Add(9 * time.Hour).Unix()},
	)

	totals, err := svc.DailyTotals(context.Background(), userID, day)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-10", totals.Date)
	assert.Equal(t, 800.0, totals.Calories)
	assert.Equal(t, 55.0, totals.Protein)
}

func TestNutritionMalformedIDsAreNotFound(t *testing.T) {
	svc := NewNutritionService(&fakeNutritionRepo{})
	userID := uuid.New()

	err := svc.DeletePlan(context.Background(), userID, "abc")
	assert.ErrorIs(t, err, utils.ErrNutritionPlanNotFound)

	_, err = svc.AddPlanMeals(context.Background(), userID, "abc", nil)
	assert.ErrorIs(t, err, utils.ErrNutritionPlanNotFound)

	_, err = svc.GetMeal(context.Background(), userID, "abc")
	assert.ErrorIs(t, err, utils.ErrMealNotFound)

	err = svc.DeleteMeal(context.Background(), userID, "abc")
	assert.ErrorIs(t, err, utils.ErrMealNotFound)
}

func TestGetMealForeignOwnerIsNotFound(t *testing.T) {
	repo := &fakeNutritionRepo{}
	svc := NewNutritionService(repo)
	owner := uuid.New()

	meal, err := svc.LogMeal(context.Background(), owner, request_models.LogMealRequest{Name: "Idli"})
	require.NoError(t, err)

	_, err = svc.GetMeal(context.Background(), uuid.New(), meal.ID.String())
	assert.ErrorIs(t, err, utils.ErrMealNotFound)
}
