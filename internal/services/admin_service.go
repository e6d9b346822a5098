package services

import (
	"context"

	"arogya/internal/models/response_models"
	"arogya/internal/repositories"
	"arogya/pkg/utils"
)

type AdminServiceInterface interface {
	ListUsers(ctx context.Context) ([]response_models.UserResponse, error)
	Stats(ctx context.Context) (*response_models.AdminStats, error)
}

type AdminService struct {
	userRepo      repositories.UserRepository
	workoutRepo   repositories.WorkoutRepository
	nutritionRepo repositories.NutritionRepository
	chatRepo      repositories.ChatRepository
}

func NewAdminService(
	userRepo repositories.UserRepository,
	workoutRepo repositories.WorkoutRepository,
	nutritionRepo repositories.NutritionRepository,
	chatRepo repositories.ChatRepository,
) AdminServiceInterface {
	return &AdminService{
		userRepo:      userRepo,
		workoutRepo:   workoutRepo,
		nutritionRepo: nutritionRepo,
		chatRepo:      chatRepo,
	}
}

func (a *AdminService) ListUsers(ctx context.Context) ([]response_models.UserResponse, error) {
	users, err := a.userRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, response_models.UserResponse{
			ID:       u.ID.String(),
			Email:    u.Email,
			FullName: u.FullName,
			IsActive: u.IsActive,
			IsAdmin:  u.IsAdmin,
		})
	}
	return out, nil
}

func (a *AdminService) Stats(ctx context.Context) (*response_models.AdminStats, error) {
	users, err := a.userRepo.Count(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	workouts, err := a.workoutRepo.Count(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	meals, err := a.nutritionRepo.CountMeals(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	sessions, err := a.chatRepo.CountSessions(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.AdminStats{
		Users:        users,
		Workouts:     workouts,
		Meals:        meals,
		ChatSessions: sessions,
	}, nil
}
