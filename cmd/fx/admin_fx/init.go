package admin_fx

import (
	"go.uber.org/fx"

	"arogya/internal/api/controllers"
	"arogya/internal/repositories"
	"arogya/internal/services"
)

var Module = fx.Provide(
	provideAdminService,
	provideAdminController,
)

func provideAdminService(
	userRepo repositories.UserRepository,
	workoutRepo repositories.WorkoutRepository,
	nutritionRepo repositories.NutritionRepository,
	chatRepo repositories.ChatRepository,
) services.AdminServiceInterface {
	return services.NewAdminService(userRepo, workoutRepo, nutritionRepo, chatRepo)
}

func provideAdminController(adminService services.AdminServiceInterface) *controllers.AdminController {
	return controllers.NewAdminController(adminService)
}
