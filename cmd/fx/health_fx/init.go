package health_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"arogya/internal/api/controllers"
	"arogya/internal/repositories"
	"arogya/internal/services"
)

var Module = fx.Provide(
	provideHealthRepo,
	provideHealthService,
	provideHealthController,
)

func provideHealthRepo(db *gorm.DB) repositories.HealthRepository {
	return repositories.NewHealthRepository(db)
}

func provideHealthService(healthRepo repositories.HealthRepository) services.HealthServiceInterface {
	return services.NewHealthService(healthRepo)
}

func provideHealthController(healthService services.HealthServiceInterface) *controllers.HealthController {
	return controllers.NewHealthController(healthService)
}
