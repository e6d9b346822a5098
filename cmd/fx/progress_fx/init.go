package progress_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"arogya/internal/api/controllers"
	"arogya/internal/repositories"
	"arogya/internal/services"
)

var Module = fx.Provide(
	provideProgressRepo,
	provideProgressService,
	provideProgressController,
)

func provideProgressRepo(db *gorm.DB) repositories.ProgressRepository {
	return repositories.NewProgressRepository(db)
}

func provideProgressService(progressRepo repositories.ProgressRepository) services.ProgressServiceInterface {
	return services.NewProgressService(progressRepo)
}

func provideProgressController(progressService services.ProgressServiceInterface) *controllers.ProgressController {
	return controllers.NewProgressController(progressService)
}
